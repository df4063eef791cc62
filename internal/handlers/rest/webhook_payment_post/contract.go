//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=webhook_payment_post_test
package webhook_payment_post

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

type Service interface {
	HandlePaymentEvent(ctx context.Context, event entities.PaymentEvent) (*entities.TransitionResult, error)
}
