package main

import (
	"context"
	"fmt"

	"solidaria/internal/store"

	"github.com/k0kubun/pp/v3"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var dumpCommand = &cli.Command{
	Name:  "dump",
	Usage: "Pretty-print the current persisted state",
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

		state, err := store.New(logrus.New(), snap).State(ctx)
		if err != nil {
			return fmt.Errorf("failed to load state: %w", err)
		}

		pp.Println(state)
		return nil
	},
}
