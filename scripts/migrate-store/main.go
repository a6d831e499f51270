// scripts/migrate-store/main.go
//
// Copies every task from a JSON task file into PostgreSQL, replacing what
// the table held. Configuration comes from config.yaml / env as for the
// server; store.postgres_dsn (or DATABASE_URL) must be set.
//
// Usage:
//
//	go run scripts/migrate-store/main.go [daycraft-tasks.json]
package main

import (
	"context"
	"fmt"
	"os"

	"daycraft/config"
	fileRepo "daycraft/internal/task/repository/file"
	pgRepo "daycraft/internal/task/repository/postgre"
	"daycraft/pkg/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	path := cfg.Store.Path
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if cfg.Store.PostgresDSN == "" {
		fmt.Println("store.postgres_dsn (or DATABASE_URL) is required")
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	source := fileRepo.New(path, logger)
	tasks, err := source.ListTasks(ctx)
	if err != nil {
		logger.Fatalf(ctx, "Failed to read %s: %v", path, err)
	}
	logger.Infof(ctx, "Found %d tasks in %s", len(tasks), path)

	pool, err := pgRepo.Connect(ctx, cfg.Store.PostgresDSN)
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to PostgreSQL: %v", err)
	}
	defer pool.Close()

	if err := pgRepo.New(pool, logger).ReplaceAll(ctx, tasks); err != nil {
		logger.Fatalf(ctx, "Failed to import tasks: %v", err)
	}

	logger.Infof(ctx, "Migration complete: %d tasks now in PostgreSQL", len(tasks))
}
