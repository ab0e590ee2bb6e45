package main

import (
	"context"
	"fmt"

	"solidaria/internal/snapshot"
	"solidaria/internal/storage"
	"solidaria/pkg/types"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/kelseyhightower/envconfig"
)

func loadConfig() (*types.Config, error) {
	c := new(types.Config)
	if err := envconfig.Process("", c); err != nil {
		return nil, fmt.Errorf("process environment config: %w", err)
	}

	if c.SnapshotBackend == "postgres" && c.DatabaseURL == "" {
		return nil, fmt.Errorf("set DATABASE_URL for the postgres snapshot backend")
	}

	return c, nil
}

// openSnapshot builds the configured snapshot backend. The returned cleanup
// closes any underlying pool.
func openSnapshot(ctx context.Context, cfg *types.Config) (snapshot.Blob, func(), error) {
	switch cfg.SnapshotBackend {
	case "file":
		return snapshot.NewFile(cfg.SnapshotPath), func() {}, nil
	case "postgres":
		pool, err := snapshot.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		return snapshot.NewPostgres(pool, cfg.SnapshotKey), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown snapshot backend %q", cfg.SnapshotBackend)
	}
}

// openEvidenceStore returns nil when no bucket is configured.
func openEvidenceStore(ctx context.Context, cfg *types.Config) (*storage.EvidenceStore, error) {
	if cfg.EvidenceBucket == "" {
		return nil, nil
	}

	awsConfig, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig)
	return storage.NewEvidenceStore(client, cfg.EvidenceBucket, cfg.EvidenceBaseURL), nil
}
