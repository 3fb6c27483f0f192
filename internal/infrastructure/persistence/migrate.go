package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/tutorscontactpro/contacts/config"
	"github.com/tutorscontactpro/contacts/internal/infrastructure/persistence/postgres"
	"github.com/tutorscontactpro/contacts/pkg/logger"
)

// Migration actions understood by Migrations.
const (
	MigrationsStatus   = "status"
	MigrationsRollback = "rollback"
)

// Migrations runs a schema maintenance action against the configured
// PostgreSQL database. Status returns every known migration; rollback returns
// the reverted one, or nothing when the schema is empty.
func Migrations(ctx context.Context, cfg *config.Config, action string, log *logger.Logger) ([]postgres.Migration, error) {
	if action != MigrationsStatus && action != MigrationsRollback {
		return nil, fmt.Errorf("unknown migrations action %q (want %s or %s)", action, MigrationsStatus, MigrationsRollback)
	}
	if cfg.Database.URL == "" {
		return nil, errors.New("DATABASE_URL is required for migrations")
	}
	if log == nil {
		log = logger.Nop()
	}

	conn, err := postgres.NewConnection(ctx, PostgresConfig(cfg), nil, log.With(logger.Backend(config.BackendPostgres)))
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	defer conn.Close()

	migrator := postgres.NewMigrator(conn)
	if action == MigrationsStatus {
		return migrator.Status(ctx)
	}

	reverted, err := migrator.Rollback(ctx)
	if err != nil || reverted == nil {
		return nil, err
	}
	return []postgres.Migration{*reverted}, nil
}
