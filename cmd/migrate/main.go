// Package main applies the embedded schema migrations.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"storekeep/internal/config"
	"storekeep/internal/infrastructure/storage/postgres"
	"storekeep/pkg/logger"
)

func main() {
	cmd := flag.String("cmd", postgres.MigrateUp, "migration command: up|down|status|version|list")
	version := flag.String("version", "", "target version for -cmd=version")
	flag.Parse()

	// Listing needs neither config nor database.
	if *cmd == "list" {
		files, err := postgres.MigrationFiles()
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read migrations: %v\n", err)
			os.Exit(1)
		}
		for _, f := range files {
			fmt.Println(f)
		}
		return
	}

	if *cmd == postgres.MigrateVersion && *version == "" {
		fmt.Fprintln(os.Stderr, "missing -version for version command")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{Level: cfg.App.LogLevel, Development: cfg.App.IsDev()})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	log = log.WithComponent("migrate")
	ctx := logger.WithLogger(context.Background(), log)

	pool, err := postgres.NewPool(ctx, postgres.PoolConfig{
		DSN:             cfg.DB.DSN,
		ApplicationName: "storekeep-migrate",
		MaxConns:        2,
	})
	if err != nil {
		logger.Fatal(ctx, "failed to connect to database", "error", err)
	}
	defer pool.Close()

	db := postgres.OpenSQL(pool)
	defer db.Close()

	if err := postgres.Migrate(ctx, db, *cmd, *version); err != nil {
		log.Errorw("migration failed", "cmd", *cmd, "error", err)
		pool.Close()
		os.Exit(1)
	}

	log.Infow("migration finished", "cmd", *cmd)
}
