package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"

	"portfolio-builder/pkg/logger"
)

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// RunMigrations executes all necessary database migrations on startup
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	log := logger.L()
	log.Info("starting database migrations")

	migrations := []Migration{
		{Name: "create_portfolios_table", Up: createPortfoliosTable},
		{Name: "create_portfolios_email_index", Up: createPortfoliosEmailIndex},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			log.Error("migration failed", zap.String("name", m.Name), zap.Error(err))
			return err
		}
		log.Info("migration completed", zap.String("name", m.Name))
	}

	return nil
}

func createPortfoliosTable(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS portfolios (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL,
			doc JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
	_, err := pool.Exec(ctx, query)
	return err
}

func createPortfoliosEmailIndex(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE UNIQUE INDEX IF NOT EXISTS portfolios_email_key ON portfolios (email);
	`
	_, err := pool.Exec(ctx, query)
	return err
}
