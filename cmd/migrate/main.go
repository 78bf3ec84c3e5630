package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/abdhesh369/portfolio-backend/internal/config"
	"github.com/abdhesh369/portfolio-backend/internal/logging"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"github.com/abdhesh369/portfolio-backend/migrations"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   apply pending migrations
  reset       drop every table, then apply all migrations
  list        print the embedded migrations in apply order`)
	os.Exit(1)
}

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	if cmd == "list" {
		names, err := migrations.UpFiles()
		if err != nil {
			logging.Fatal("read migrations failed", "error", err)
		}
		for _, n := range names {
			fmt.Println(n)
		}
		return
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	switch cmd {
	case "":
	case "reset":
		slog.Info("dropping all tables")
		if err := migrations.DropAll(ctx, pool); err != nil {
			logging.Fatal("drop all failed", "error", err)
		}
	default:
		usage()
	}

	applied, err := migrations.Up(ctx, pool)
	if err != nil {
		logging.Fatal("migration failed", "error", err, "applied", applied)
	}
	if applied == 0 {
		slog.Info("all migrations already applied")
	} else {
		slog.Info("migrations completed", "count", applied)
	}
}
