package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"chefbook/config"
	"chefbook/infras/kafka"
	"chefbook/infras/otel"
	"chefbook/internal/domains/notification/model"
	"chefbook/shared/constant"
	"chefbook/shared/failure"
	"chefbook/shared/metrics"
	"chefbook/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Dispatcher delivers a notification to one recipient. Callers treat it as fire-and-forget.
type Dispatcher interface {
	Send(ctx context.Context, kind, recipient string, payload any) error
}

type serviceImpl struct {
	kafka kafka.Client
	topic string
	otel  otel.Otel
}

func New(client kafka.Client, cfg *config.Config, otel otel.Otel) Dispatcher {
	return &serviceImpl{
		kafka: client,
		topic: cfg.Kafka.NotificationTopic,
		otel:  otel,
	}
}

func (s *serviceImpl) Send(ctx context.Context, kind, recipient string, payload any) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".notification.Send")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	defer func() { metrics.NotificationsDispatched.WithLabelValues(kind, metrics.Result(err)).Inc() }()

	scope.SetAttributes(map[string]any{
		"notification.kind":      kind,
		"notification.recipient": recipient,
	})

	msg := kafka.Message{
		Key: recipient,
		Value: model.Envelope{
			Kind:      kind,
			Recipient: recipient,
			Payload:   payload,
			SentAt:    timezone.Now(),
		},
		Headers: map[string]string{model.HeaderKind: kind},
	}

	if err = s.kafka.SendMessages(ctx, s.topic, msg); err != nil {
		log.Error().Err(err).Str("kind", kind).Str("recipient", recipient).Msg("failed to dispatch notification")

		return failure.ExternalService(err) //nolint:wrapcheck
	}

	return nil
}
