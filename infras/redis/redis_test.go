package redis_test

import (
	"context"
	"net"
	"testing"

	"chefbook/config"
	"chefbook/infras/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(t *testing.T, addr string) *config.Config {
	t.Helper()

	host, port, err := net.SplitHostPort(addr)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.Cache.Redis.Primary.Host = host
	cfg.Cache.Redis.Primary.Port = port
	cfg.Cache.Redis.Primary.DB = 2

	return cfg
}

func TestOptions(t *testing.T) {
	cfg := newConfig(t, "10.0.0.5:6380")
	cfg.Cache.Redis.Primary.Password = "secret"

	opts := redis.Options(cfg)

	assert.Equal(t, "10.0.0.5:6380", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
}

func TestNew(t *testing.T) {
	server := miniredis.RunT(t)

	client := redis.New(newConfig(t, server.Addr()))
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, client.Set(context.Background(), "chef:1", "ok", 0).Err())
	value, err := server.DB(2).Get("chef:1")
	require.NoError(t, err)
	assert.Equal(t, "ok", value)
}
