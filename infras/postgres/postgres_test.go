package postgres_test

import (
	"testing"

	"chefbook/config"
	"chefbook/infras/postgres"

	"github.com/stretchr/testify/assert"
)

func TestEndpoints(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "stg_"
	cfg.DB.Postgres.Read.Host = "replica"
	cfg.DB.Postgres.Read.Port = "5433"
	cfg.DB.Postgres.Read.Username = "reader"
	cfg.DB.Postgres.Read.Password = "r"
	cfg.DB.Postgres.Read.Name = "chefbook"
	cfg.DB.Postgres.Read.SSLMode = "disable"
	cfg.DB.Postgres.Write.Host = "primary"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Username = "writer"
	cfg.DB.Postgres.Write.Password = "w"
	cfg.DB.Postgres.Write.Name = "chefbook"
	cfg.DB.Postgres.Write.SSLMode = "require"

	read := postgres.ReadEndpoint(cfg)
	write := postgres.WriteEndpoint(cfg)

	assert.Equal(t, "read", read.Role)
	assert.Equal(t, "postgres://reader:r@replica:5433/stg_chefbook?sslmode=disable", read.DSN())
	assert.Equal(t, "write", write.Role)
	assert.Equal(t, "postgres://writer:w@primary:5432/stg_chefbook?sslmode=require", write.DSN())
}
