package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"business-directory/pkg/utils"

	"github.com/jackc/pgx/v5"
	tern "github.com/jackc/tern/v2/migrate"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

const versionTable = "schema_version"

// Migrate brings the businesses and reviews tables up to the latest
// embedded migration. Running it against an up-to-date schema is a no-op.
func Migrate(ctx context.Context, config utils.DatabaseConfig, logger *zap.Logger) error {
	log := logger.With(zap.String("component", "migrator"))

	// Single connection, the migrator does not need a pool
	conn, err := pgx.Connect(ctx, DSN(config))
	if err != nil {
		return fmt.Errorf("connect for migrations: %w", err)
	}
	defer conn.Close(ctx)

	m, err := tern.NewMigrator(ctx, conn, versionTable)
	if err != nil {
		return fmt.Errorf("construct migrator: %w", err)
	}

	subtree, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}

	if err := m.LoadMigrations(subtree); err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	from, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	m.OnStart = func(sequence int32, name, direction, _ string) {
		log.Info("Applying migration",
			zap.Int32("sequence", sequence),
			zap.String("name", name),
			zap.String("direction", direction),
		)
	}

	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	if from == int32(len(m.Migrations)) {
		log.Info("Database schema up to date", zap.Int32("version", from))
		return nil
	}

	log.Info("Database schema migrated",
		zap.Int32("from", from),
		zap.Int("to", len(m.Migrations)),
	)
	return nil
}
