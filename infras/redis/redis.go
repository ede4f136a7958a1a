package redis

import (
	"context"
	"net"
	"time"

	"chefbook/config"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 5 * time.Second

// New connects to the primary Redis node backing the response cache and the rate limiter.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary
	client := goRedis.NewClient(Options(config))

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal().Err(err).Str("host", primary.Host).Msg("Failed to reach Redis primary")
	}

	log.Info().
		Str("addr", net.JoinHostPort(primary.Host, primary.Port)).
		Int("db", primary.DB).
		Msg("Redis primary ready")

	return client
}

// Options builds client options from the primary node configuration.
func Options(config *config.Config) *goRedis.Options {
	primary := config.Cache.Redis.Primary

	return &goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	}
}
