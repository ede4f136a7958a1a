package otel_test

import (
	"context"
	"errors"
	"testing"

	"chefbook/config"
	"chefbook/infras/otel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "chefbook-test"

	tracer := otel.New(cfg)
	require.NotNil(t, tracer)

	ctx, scope := tracer.NewScope(context.Background(), "service", "booking.Create")
	assert.NotNil(t, ctx)

	scope.SetAttributes(map[string]any{
		"booking.id":    "b-1",
		"booking.guest": 4,
		"booking.paid":  false,
		"booking.tags":  []string{"vegan"},
		"booking.price": 12.5,
		"booking.cents": int64(1250),
	})
	scope.AddEvent("created")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	assert.NoError(t, otel.Shutdown(context.Background(), tracer))
}
