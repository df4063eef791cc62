package webhook_rule

import (
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/service/webhook"
)

const (
	PaymentIntentSucceeded = "payment_intent.succeeded"
	PaymentIntentFailed    = "payment_intent.payment_failed"
	ChargeRefunded         = "charge.refunded"
)

type RuleFactory struct{}

func New() *RuleFactory {
	return &RuleFactory{}
}

func (f *RuleFactory) GetPaymentRule(eventType string) (*entities.PaymentRule, error) {
	switch eventType {
	case PaymentIntentSucceeded:
		return &entities.PaymentRule{PaymentStatus: entities.PaymentPaid, OrderStatus: entities.OrderCompleted}, nil
	case PaymentIntentFailed:
		return &entities.PaymentRule{PaymentStatus: entities.PaymentFailed, OrderStatus: entities.OrderPending}, nil
	case ChargeRefunded:
		return &entities.PaymentRule{PaymentStatus: entities.PaymentRefunded, OrderStatus: entities.OrderRefunded}, nil
	default:
		return nil, fmt.Errorf("%w: %s", webhook.ErrUndefinedEvent, eventType)
	}
}

func (f *RuleFactory) GetDeliveryRule(event entities.DeliveryStatus) (*entities.DeliveryRule, error) {
	switch event {
	case entities.DeliveryAssigned:
		return &entities.DeliveryRule{DeliveryStatus: event}, nil
	case entities.DeliveryPickedUp, entities.DeliveryInTransit:
		return deliveryRule(event, entities.OrderOnWay), nil
	case entities.DeliveryDelivered:
		return deliveryRule(event, entities.OrderCompleted), nil
	case entities.DeliveryFailed:
		return deliveryRule(event, entities.OrderCancelled), nil
	default:
		return nil, fmt.Errorf("%w: %s", webhook.ErrUndefinedEvent, event)
	}
}

func deliveryRule(event entities.DeliveryStatus, status entities.OrderStatus) *entities.DeliveryRule {
	return &entities.DeliveryRule{
		DeliveryStatus: event,
		OrderStatus:    &status,
	}
}
