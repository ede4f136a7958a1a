package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"chefbook/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName      = "postgres"
	maxIdleConns    = 10
	maxOpenConns    = 10
	connMaxIdleTime = 5 * time.Minute
)

// Connection splits reads (listings, calendars) from writes (bookings, availability).
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint is one side of the read/write pair.
type Endpoint struct {
	Role     string
	Host     string
	Port     string
	Username string
	Password string
	Name     string
	SSLMode  string
}

func New(config *config.Config) *Connection {
	retries, wait := config.DB.Postgres.MaxRetry, time.Duration(config.DB.Postgres.RetryWaitTime)*time.Second

	return &Connection{
		Read:  Open(ReadEndpoint(config), retries, wait),
		Write: Open(WriteEndpoint(config), retries, wait),
	}
}

func ReadEndpoint(config *config.Config) Endpoint {
	read := config.DB.Postgres.Read

	return Endpoint{
		Role:     "read",
		Host:     read.Host,
		Port:     read.Port,
		Username: read.Username,
		Password: read.Password,
		Name:     config.DB.Postgres.Prefix + read.Name,
		SSLMode:  read.SSLMode,
	}
}

func WriteEndpoint(config *config.Config) Endpoint {
	write := config.DB.Postgres.Write

	return Endpoint{
		Role:     "write",
		Host:     write.Host,
		Port:     write.Port,
		Username: write.Username,
		Password: write.Password,
		Name:     config.DB.Postgres.Prefix + write.Name,
		SSLMode:  write.SSLMode,
	}
}

// DSN renders the endpoint as a lib/pq connection URL.
func (e Endpoint) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		e.Username, e.Password, net.JoinHostPort(e.Host, e.Port), e.Name, e.SSLMode)
}

// Open connects to the endpoint, retrying up to attempts times before giving up fatally.
func Open(endpoint Endpoint, attempts int, wait time.Duration) *sqlx.DB {
	logger := log.With().Str("role", endpoint.Role).Str("host", endpoint.Host).Str("db", endpoint.Name).Logger()

	for attempt := 1; attempt <= attempts; attempt++ {
		db, err := sqlx.Connect(driverName, endpoint.DSN())
		if err == nil {
			db.SetMaxIdleConns(maxIdleConns)
			db.SetMaxOpenConns(maxOpenConns)
			db.SetConnMaxIdleTime(connMaxIdleTime)
			logger.Info().Int("attempt", attempt).Msg("Postgres connection established")

			return db
		}

		logger.Warn().Err(err).Int("attempt", attempt).Msg("Postgres not reachable yet")
		time.Sleep(wait)
	}

	logger.Fatal().Int("attempts", attempts).Msg("Postgres connection attempts exhausted")

	return nil
}
