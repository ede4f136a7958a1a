package helper

//nolint:revive
import (
	"errors"
	"fmt"

	"chefbook/config"
	"chefbook/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

var ErrUnknownAction = errors.New("unknown migration action")

// Actions lists the supported migration commands.
var Actions = map[string]func(*migrate.Migrate) error{
	"up":      func(m *migrate.Migrate) error { return m.Up() },
	"down":    func(m *migrate.Migrate) error { return m.Steps(-1) },
	"step-up": func(m *migrate.Migrate) error { return m.Steps(1) },
	"drop":    func(m *migrate.Migrate) error { return m.Down() },
	"version": logVersion,
}

// ConnectionString builds the migrate DSN against the write database.
func ConnectionString(config *config.Config) string {
	return postgres.WriteEndpoint(config).DSN() + "&x-migrations-table=" + config.DB.Postgres.MigrationTable
}

func Runner(config *config.Config, action string) error {
	run, ok := Actions[action]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}

	mig, err := migrate.New(migrationsSource, ConnectionString(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", action).Msg("Database migration finished")

	return nil
}

func logVersion(m *migrate.Migrate) error {
	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("reading migration version: %w", err)
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current migration version")

	return nil
}

// AutoMigrate applies pending migrations on startup when DB_POSTGRES_AUTO_MIGRATE is set.
func AutoMigrate(config *config.Config) error {
	if !config.DB.Postgres.AutoMigrate {
		return nil
	}

	return Runner(config, "up")
}
