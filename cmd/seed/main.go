// Package main seeds the identifier counters.
//
// Request paths never create counters: a missing counter row fails entity
// creation with NOT_FOUND. Run this once per database after migrating.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"storekeep/internal/config"
	corenumerator "storekeep/internal/core/numerator"
	"storekeep/internal/infrastructure/numerator"
	"storekeep/internal/infrastructure/storage/postgres"
	"storekeep/pkg/logger"
)

func main() {
	start := flag.Int64("start", 1, "first value handed out by each new counter")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.App.LogLevel, Development: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	log = log.WithComponent("seed")
	ctx := logger.WithLogger(context.Background(), log)

	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		DSN:             cfg.DB.DSN,
		ApplicationName: "storekeep-seed",
		MaxConns:        2,
	})
	if err != nil {
		logger.Fatal(ctx, "failed to connect to database", "error", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool, postgres.DefaultTxOptions())
	counters := numerator.New(txm, nil)

	err = txm.RunInTransaction(ctx, func(ctx context.Context) error {
		for _, name := range corenumerator.Counters {
			created, err := counters.Seed(ctx, name, *start)
			if err != nil {
				return err
			}
			if created {
				log.Infow("counter created", "counter", name, "value", *start)
			} else {
				log.Infow("counter already present", "counter", name)
			}
		}
		return nil
	})
	if err != nil {
		log.Errorw("seeding failed", "error", err)
		pool.Close()
		os.Exit(1)
	}

	snapshot, err := counters.Snapshot(ctx)
	if err != nil {
		log.Warnw("failed to read counters back", "error", err)
		return
	}
	log.Infow("seeding completed", "counters", snapshot)
}
