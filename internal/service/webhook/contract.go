//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=webhook_test
package webhook

import (
	"context"

	"marketplace/internal/entities"
)

type Coordinator interface {
	RequestTransition(ctx context.Context, req entities.TransitionRequest) (*entities.TransitionResult, error)
}

type DeliveryRepository interface {
	GetByExternalID(ctx context.Context, externalID string) (*entities.Delivery, error)
}

type RuleFactory interface {
	GetPaymentRule(eventType string) (*entities.PaymentRule, error)
	GetDeliveryRule(event entities.DeliveryStatus) (*entities.DeliveryRule, error)
}
