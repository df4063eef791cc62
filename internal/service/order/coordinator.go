package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/entities"
)

type transitionOutcome struct {
	from    entities.OrderStatus
	applied bool
}

// RequestTransition единственная точка смены статуса заказа. Блокировка строки
// заказа, проверка перехода и все побочные эффекты (история, доставка, оплата,
// outbox) выполняются в одной транзакции.
func (s *Service) RequestTransition(ctx context.Context, req entities.TransitionRequest) (*entities.TransitionResult, error) {
	if err := validateTransitionRequest(req); err != nil {
		return nil, err
	}

	var (
		order   *entities.Order
		outcome transitionOutcome
	)
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		current, err := s.repository.LockByID(ctx, req.OrderID)
		if err != nil {
			return fmt.Errorf("lock order: %w", err)
		}
		outcome.from = current.Status

		outcome.applied, err = s.transition(ctx, current, req)
		if err != nil {
			return err
		}

		order, err = s.repository.GetByID(ctx, req.OrderID)
		if err != nil {
			return fmt.Errorf("reload order: %w", err)
		}
		return nil
	})
	s.observe(req, outcome, order, err)
	if err != nil {
		return nil, err
	}

	return &entities.TransitionResult{
		Order:   order,
		Applied: outcome.applied,
	}, nil
}

// transition выполняется под блокировкой строки заказа. Возвращает true,
// если статус заказа изменился.
func (s *Service) transition(ctx context.Context, current *entities.Order, req entities.TransitionRequest) (bool, error) {
	if req.EventKey != nil {
		fresh, err := s.eventRepository.MarkProcessed(ctx, *req.EventKey, current.ID)
		if err != nil {
			return false, fmt.Errorf("mark event processed: %w", err)
		}
		if !fresh {
			return false, nil
		}
	}

	if req.Next == nil || *req.Next == current.Status {
		if current.Status.IsTerminal() {
			return false, s.syncPaymentStatus(ctx, current, req)
		}
		return false, s.syncProviderStatuses(ctx, current, req)
	}

	next := *req.Next
	if !CanTransition(current.Status, next, req.Origin) {
		if current.Status.IsTerminal() {
			// статус заказа не трогаем, но запись оплаты всё равно сверяем
			if req.Origin == entities.OriginPayment {
				return false, s.syncPaymentStatus(ctx, current, req)
			}
			return false, fmt.Errorf("%w: order %s is %s", ErrTerminalState, current.ID, current.Status)
		}
		return false, &TransitionError{
			From:    current.Status,
			To:      next,
			Allowed: AllowedNext(current.Status, req.Origin),
		}
	}

	paymentStatus := resolvePaymentStatus(current, next, req)
	update := entities.OrderStatusUpdate{
		ID:            current.ID,
		Status:        next,
		PaymentStatus: paymentStatus,
	}
	if next == entities.OrderCancelled {
		update.CancellationReason = req.CancellationReason
	}

	err := s.repository.UpdateStatus(ctx, update)
	if err != nil {
		return false, fmt.Errorf("update order status: %w", err)
	}

	note := req.Note
	if note == nil {
		defaultNote := fmt.Sprintf("Status changed from %s to %s", current.Status, next)
		note = &defaultNote
	}
	err = s.repository.AppendHistory(ctx, current.ID, next, note)
	if err != nil {
		return false, fmt.Errorf("append history: %w", err)
	}

	if req.Delivery != nil {
		deliveryModify := *req.Delivery
		deliveryModify.OrderID = &current.ID
		err = s.deliveryRepository.Upsert(ctx, deliveryModify)
		if err != nil {
			return false, fmt.Errorf("attach delivery: %w", err)
		}
	}

	deliveryStatus, ok := resolveDeliveryStatus(next, req)
	if ok {
		_, err = s.deliveryRepository.UpdateStatusByOrderID(ctx, current.ID, deliveryStatus)
		if err != nil {
			return false, fmt.Errorf("sync delivery status: %w", err)
		}
	}

	if paymentStatus != nil {
		err = s.paymentRepository.UpdateStatusByOrderID(ctx, current.ID, *paymentStatus, req.TransactionID)
		if err != nil {
			return false, fmt.Errorf("sync payment status: %w", err)
		}
	}

	err = s.enqueueStatusChanged(ctx, current, next, req.Origin)
	if err != nil {
		return false, err
	}

	return true, nil
}

// syncProviderStatuses статус заказа не меняется, но провайдер сообщил
// собственный статус доставки или оплаты.
func (s *Service) syncProviderStatuses(ctx context.Context, current *entities.Order, req entities.TransitionRequest) error {
	if req.DeliveryStatus != nil {
		_, err := s.deliveryRepository.UpdateStatusByOrderID(ctx, current.ID, *req.DeliveryStatus)
		if err != nil {
			return fmt.Errorf("sync delivery status: %w", err)
		}
	}
	return s.syncPaymentStatus(ctx, current, req)
}

func (s *Service) syncPaymentStatus(ctx context.Context, current *entities.Order, req entities.TransitionRequest) error {
	if req.PaymentStatus != nil && *req.PaymentStatus != current.PaymentStatus {
		err := s.repository.UpdateStatus(ctx, entities.OrderStatusUpdate{
			ID:            current.ID,
			Status:        current.Status,
			PaymentStatus: req.PaymentStatus,
		})
		if err != nil {
			return fmt.Errorf("update order payment status: %w", err)
		}

		err = s.paymentRepository.UpdateStatusByOrderID(ctx, current.ID, *req.PaymentStatus, req.TransactionID)
		if err != nil {
			return fmt.Errorf("sync payment status: %w", err)
		}
	}
	return nil
}

func resolveDeliveryStatus(next entities.OrderStatus, req entities.TransitionRequest) (entities.DeliveryStatus, bool) {
	if req.DeliveryStatus != nil {
		return *req.DeliveryStatus, true
	}
	return DeliveryStatusFor(next)
}

func resolvePaymentStatus(current *entities.Order, next entities.OrderStatus, req entities.TransitionRequest) *entities.PaymentStatus {
	if req.PaymentStatus != nil {
		return req.PaymentStatus
	}

	var status entities.PaymentStatus
	switch {
	case next == entities.OrderRefunded:
		status = entities.PaymentRefunded
	case next == entities.OrderCancelled && current.PaymentStatus == entities.PaymentPending:
		status = entities.PaymentFailed
	default:
		return nil
	}
	return &status
}

func (s *Service) enqueueStatusChanged(ctx context.Context, current *entities.Order, next entities.OrderStatus, origin entities.TransitionOrigin) error {
	payload, err := json.Marshal(entities.OrderStatusChangedEvent{
		OrderID:     current.ID,
		OrderNumber: current.Number,
		UserID:      current.UserID,
		From:        current.Status,
		To:          next,
		Origin:      origin,
		ChangedAt:   time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal status changed event: %w", err)
	}

	err = s.eventRepository.Enqueue(ctx, entities.OutboxMessage{
		EventType: entities.EventTypeOrderStatusChanged,
		Key:       current.ID,
		Payload:   payload,
	})
	if err != nil {
		return fmt.Errorf("enqueue status changed event: %w", err)
	}
	return nil
}

func (s *Service) observe(req entities.TransitionRequest, outcome transitionOutcome, order *entities.Order, err error) {
	if err != nil {
		OrderTransitionRejectionsTotal.WithLabelValues(req.Origin.String(), rejectionReason(err)).Inc()
		return
	}
	if outcome.applied && order != nil {
		OrderTransitionsTotal.WithLabelValues(outcome.from.String(), order.Status.String(), req.Origin.String()).Inc()
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ErrTerminalState):
		return "terminal_state"
	case errors.Is(err, ErrIllegalTransition):
		return "illegal_transition"
	case errors.Is(err, ErrContention):
		return "contention"
	case errors.Is(err, ErrOrderNotFound):
		return "not_found"
	case errors.Is(err, ErrValidation):
		return "validation"
	default:
		return "internal"
	}
}
