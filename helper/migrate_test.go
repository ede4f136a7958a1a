package helper_test

import (
	"testing"

	"chefbook/config"
	"chefbook/helper"

	"github.com/stretchr/testify/assert"
)

func TestConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "test_"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.Write.Username = "chef"
	cfg.DB.Postgres.Write.Password = "secret"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "chefbook"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	assert.Equal(t,
		"postgres://chef:secret@db:5432/test_chefbook?sslmode=disable&x-migrations-table=schema_migrations",
		helper.ConnectionString(cfg),
	)
}

func TestRunner_UnknownAction(t *testing.T) {
	err := helper.Runner(&config.Config{}, "sideways")

	assert.ErrorIs(t, err, helper.ErrUnknownAction)
}

func TestAutoMigrate_Disabled(t *testing.T) {
	assert.NoError(t, helper.AutoMigrate(&config.Config{}))
}
