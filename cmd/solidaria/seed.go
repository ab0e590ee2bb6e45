package main

import (
	"context"
	"fmt"

	"solidaria/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Reset the persisted state to the default seed",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		ctx := context.Background()

		snap, closeSnap, err := openSnapshot(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeSnap()

		logger := logrus.New()

		state, err := store.New(logger, snap).Reset(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed state: %w", err)
		}

		logger.WithFields(logrus.Fields{
			"users":    len(state.Users),
			"requests": len(state.Requests),
		}).Info("seed state written")

		return nil
	},
}
