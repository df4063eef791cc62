//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_delivery_post_test
package order_delivery_post

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
	AssignDelivery(ctx context.Context, orderID string, provider entities.DeliveryProvider) (*entities.TransitionResult, error)
}
