package di

import (
	"context"
	"errors"

	"chefbook/infras/kafka"
	"chefbook/infras/otel"
	wizardService "chefbook/internal/domains/wizard/service"
	"chefbook/transport/http"

	"github.com/rs/zerolog/log"
)

// App holds the server plus the long-lived pieces that need starting or closing around it.
type App struct {
	HTTP   *http.HTTP
	Wizard wizardService.Wizard
	Kafka  kafka.Client
	Otel   otel.Otel
}

// Run serves until ctx is cancelled and then releases the notification writer and tracer.
func (a *App) Run(ctx context.Context) error {
	go a.Wizard.Run(ctx)

	serveErr := a.HTTP.Serve(ctx)

	closeErr := a.Kafka.Close()
	if closeErr != nil {
		log.Error().Err(closeErr).Msg("failed to close kafka writer")
	}

	shutdownErr := otel.Shutdown(context.WithoutCancel(ctx), a.Otel)
	if shutdownErr != nil {
		log.Error().Err(shutdownErr).Msg("failed to flush traces")
	}

	return errors.Join(serveErr, closeErr, shutdownErr)
}
