// Package migration applies versioned schema migrations at startup.
package migration

import (
	"embed"
	"fmt"
	"log/slog"
	"net/url"

	"taskhive/config"
	"taskhive/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Run applies all pending up migrations against the configured primary.
// It is a no-op when migrations are disabled or the schema is current.
func Run(cfg *config.Config, logger *slog.Logger) error {
	if cfg.Migration == nil || !cfg.Migration.Enabled {
		logger.Info("schema migrations disabled, skipping")

		return nil
	}

	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return errors.Wrap(err, "failed to open embedded migrations")
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", source, buildPostgresURL(cfg))
	if err != nil {
		return errors.Wrap(err, "failed to init migrator")
	}
	defer func() {
		_, _ = migrator.Close()
	}()

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("schema is up to date")

			return nil
		}

		return errors.Wrap(err, "failed to apply migrations")
	}

	version, dirty, err := migrator.Version()
	if err != nil {
		return errors.Wrap(err, "failed to read migration version")
	}
	logger.Info("schema migrations applied",
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)

	return nil
}

func buildPostgresURL(cfg *config.Config) string {
	master := cfg.Postgres.Master

	u := &url.URL{
		Scheme: "postgres",
		Host:   fmt.Sprintf("%s:%s", master.Host, master.Port),
		User:   url.UserPassword(master.UserName, master.Password),
		Path:   cfg.Postgres.Database,
	}
	q := u.Query()
	sslMode := cfg.Postgres.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	q.Set("sslmode", sslMode)
	u.RawQuery = q.Encode()

	return u.String()
}
