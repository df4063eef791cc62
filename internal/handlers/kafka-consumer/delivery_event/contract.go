//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_event_test
package delivery_event

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type Service interface {
	HandleDeliveryEvent(ctx context.Context, event entities.DeliveryEvent) (*entities.TransitionResult, error)
}
