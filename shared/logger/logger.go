package logger

import (
	"io"
	"os"
	"time"

	"chefbook/config"
	"chefbook/shared/constant"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global logger. Development gets a human-readable console writer,
// every other environment logs JSON lines with the app name attached.
func Init(config *config.Config) {
	Configure(config, os.Stdout)
}

// Configure is Init with an explicit sink.
func Configure(config *config.Config, out io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if config.Server.Env == constant.ServerEnvDevelopment {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(out).With().Timestamp()
	if config.App.Name != constant.Empty {
		ctx = ctx.Str("app", config.App.Name)
	}

	log.Logger = ctx.Logger()

	SetLogLevel(config)
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// Swallow records a side-effect failure that must not affect the primary operation.
func Swallow(err error, msg string, fields map[string]any) {
	if err == nil {
		return
	}

	log.Warn().Err(err).Fields(fields).Msg(msg)
}

// SetLogLevel applies the configured level, falling back to info.
func SetLogLevel(config *config.Config) {
	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || config.Server.LogLevel == constant.Empty {
		level = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Str("level", level.String()).Msg("Log level applied")
}
