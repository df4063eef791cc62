package delivery_event

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	"marketplace/internal/service/order"
	"marketplace/internal/service/webhook"
	"marketplace/pkg/logger"
)

type Handler struct {
	webhookService           Service
	retrier                  retrier
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

// New retrier повторяет обработку события, пока IsRetryable считает ошибку
// временной.
func New(log handlerLogger, webhookService Service, retrier retrier, timeout time.Duration) *Handler {
	handlerLog := log.With(logger.NewField("handler", "delivery.event"))

	return &Handler{
		webhookService:           webhookService,
		retrier:                  retrier,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

// IsRetryable временные ошибки: конкуренция за строку заказа и сбои хранилища.
// Отказы бизнес-правил и отмена контекста повторять бессмысленно.
func IsRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, order.ErrValidation),
		errors.Is(err, webhook.ErrDeliveryNotFound),
		errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, order.ErrTerminalState),
		errors.Is(err, order.ErrIllegalTransition):
		return false
	default:
		return true
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("delivery.event: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("delivery.event: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing возвращает true, если ConsumeClaim нужно прервать: контекст
// отменён или временная ошибка пережила все повторы. Сообщение не помечено и
// будет прочитано повторно.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event deliveryEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("delivery.event handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("external_id", event.ExternalID),
		logger.NewField("event", event.Event),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("delivery.event processing")

	var result *entities.TransitionResult
	err = h.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		var err error
		result, err = h.webhookService.HandleDeliveryEvent(ctx, entities.DeliveryEvent{
			ExternalID: event.ExternalID,
			Event:      entities.DeliveryStatus(event.Event),
			Note:       event.Note,
		})
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.event handler context cancelled, message will be reprocessed")
			return true

		case IsRetryable(err):
			// повторы исчерпаны; без MarkMessage событие перечитается после перезапуска сессии
			msgLog.With(
				logger.NewField("error", err),
			).Error("delivery.event handler retries exhausted, message will be reprocessed")
			return true

		case errors.Is(err, order.ErrValidation):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.event handler rejected malformed event")

		case errors.Is(err, webhook.ErrDeliveryNotFound),
			errors.Is(err, order.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.event handler unknown delivery")

		case errors.Is(err, order.ErrTerminalState),
			errors.Is(err, order.ErrIllegalTransition):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("delivery.event handler transition rejected")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("order", result.Order.ID),
		logger.NewField("current_status", result.Order.Status.String()),
		logger.NewField("applied", result.Applied),
	).Info("delivery.event: processed")

	sess.MarkMessage(message, "")
	return false
}
