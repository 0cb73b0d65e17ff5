package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/ougirez/landscape/internal/pkg/logger"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Views are re-created on every run outside of goose versioning. They may
// fail without failing the run: line listing falls back to the fact table
// when the effective view is missing.
//
//go:embed views/*.sql
var viewsFS embed.FS

// Migrate brings the tables up to the latest goose version, then applies
// the views.
func Migrate(ctx context.Context, pool Pool) error {
	provider, err := newMigrationProvider(pool.StdDB())
	if err != nil {
		return err
	}
	defer provider.Close()

	results, err := provider.Up(ctx)
	for _, res := range results {
		logger.Infof(ctx, "applied %s in %s", res.Source.Path, res.Duration)
	}
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return applyViews(ctx, pool)
}

func newMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	migrations, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("migrations dir: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("goose.NewProvider: %w", err)
	}

	return provider, nil
}

func applyViews(ctx context.Context, pool Pool) error {
	files, err := fs.Glob(viewsFS, "views/*.sql")
	if err != nil {
		return fmt.Errorf("list views: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		body, err := viewsFS.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(body)); err != nil {
			logger.Warnf(ctx, "view %s not applied: %s", file, err.Error())
			continue
		}
		logger.Infof(ctx, "applied %s", file)
	}

	return nil
}
