// Package migrations embeds the SQL schema and applies it in file-name order.
// Applied migrations are recorded in schema_migrations so reruns only apply new files.
package migrations

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed *.sql
var files embed.FS

const dropAllFile = "000_drop_all.sql"

// UpFiles returns the names of the *.up.sql files in apply order.
func UpFiles() ([]string, error) {
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func ensureSchemaMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name TEXT PRIMARY KEY,
		applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`)
	return err
}

// Up applies every migration not yet recorded and returns how many ran.
func Up(ctx context.Context, pool *pgxpool.Pool) (int, error) {
	if err := ensureSchemaMigrations(ctx, pool); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}
	names, err := UpFiles()
	if err != nil {
		return 0, err
	}

	applied := 0
	for _, filename := range names {
		name := strings.TrimSuffix(filename, ".up.sql")

		var exists bool
		if err := pool.QueryRow(ctx,
			"SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE name=$1)", name,
		).Scan(&exists); err != nil {
			return applied, fmt.Errorf("check %s: %w", name, err)
		}
		if exists {
			continue
		}

		sql, err := files.ReadFile(filename)
		if err != nil {
			return applied, err
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return applied, fmt.Errorf("apply %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
			return applied, fmt.Errorf("record %s: %w", name, err)
		}
		applied++
		slog.Info("migration applied", "migration", name)
	}
	return applied, nil
}

// DropAll removes every table created by the migrations, schema_migrations included.
func DropAll(ctx context.Context, pool *pgxpool.Pool) error {
	sql, err := files.ReadFile(dropAllFile)
	if err != nil {
		return err
	}
	if _, err := pool.Exec(ctx, string(sql)); err != nil {
		return fmt.Errorf("drop all: %w", err)
	}
	return nil
}
