package webhook

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

const (
	sourcePayment  = "payment"
	sourceDelivery = "delivery"
)

// Service переводит события внешних провайдеров в запросы к координатору.
type Service struct {
	coordinator        Coordinator
	deliveryRepository DeliveryRepository
	ruleFactory        RuleFactory
}

func New(coordinator Coordinator, deliveryRepository DeliveryRepository, ruleFactory RuleFactory) *Service {
	return &Service{
		coordinator:        coordinator,
		deliveryRepository: deliveryRepository,
		ruleFactory:        ruleFactory,
	}
}

// HandlePaymentEvent возвращает nil без ошибки, если событие принято, но не
// касается ни одного заказа.
func (s *Service) HandlePaymentEvent(ctx context.Context, event entities.PaymentEvent) (*entities.TransitionResult, error) {
	rule, err := s.ruleFactory.GetPaymentRule(event.Type)
	if err != nil {
		if errors.Is(err, ErrUndefinedEvent) {
			return nil, nil
		}
		return nil, fmt.Errorf("payment rule: %w", err)
	}
	if strings.TrimSpace(event.OrderID) == "" {
		return nil, nil
	}

	note := fmt.Sprintf("Payment event: %s", event.Type)
	req := entities.TransitionRequest{
		OrderID:       event.OrderID,
		Next:          &rule.OrderStatus,
		Note:          &note,
		Origin:        entities.OriginPayment,
		PaymentStatus: &rule.PaymentStatus,
	}
	if event.TransactionID != "" {
		req.TransactionID = &event.TransactionID
	}
	if event.ID != "" {
		req.EventKey = &entities.EventKey{Source: sourcePayment, Key: event.ID}
	}

	result, err := s.coordinator.RequestTransition(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("apply payment event %s: %w", event.Type, err)
	}
	return result, nil
}

func (s *Service) HandleDeliveryEvent(ctx context.Context, event entities.DeliveryEvent) (*entities.TransitionResult, error) {
	externalID := strings.TrimSpace(event.ExternalID)
	if externalID == "" || event.Event == "" {
		return nil, ErrMissingRequiredFields
	}

	eventStatus := entities.DeliveryStatus(strings.ToUpper(strings.TrimSpace(event.Event.String())))
	rule, err := s.ruleFactory.GetDeliveryRule(eventStatus)
	if err != nil {
		if errors.Is(err, ErrUndefinedEvent) {
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedEvent, event.Event)
		}
		return nil, fmt.Errorf("delivery rule: %w", err)
	}

	delivery, err := s.deliveryRepository.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}

	note := event.Note
	if note == nil {
		defaultNote := fmt.Sprintf("Update via %s: %s", delivery.Provider.DisplayName(), eventStatus)
		note = &defaultNote
	}

	result, err := s.coordinator.RequestTransition(ctx, entities.TransitionRequest{
		OrderID:        delivery.OrderID,
		Next:           rule.OrderStatus,
		Note:           note,
		Origin:         entities.OriginDelivery,
		DeliveryStatus: &rule.DeliveryStatus,
		EventKey: &entities.EventKey{
			Source: sourceDelivery,
			Key:    externalID + ":" + eventStatus.String(),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("apply delivery event %s: %w", eventStatus, err)
	}
	return result, nil
}
