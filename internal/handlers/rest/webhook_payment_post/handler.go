package webhook_payment_post

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/pkg/response"
	"marketplace/pkg/logger"
)

const (
	SignatureHeader = "Stripe-Signature"

	maxBodyBytes = int64(65536)

	orderIDMetadataKey = "orderId"
)

var errMalformedEvent = errors.New("malformed payment event")

type Handler struct {
	log     handlerLogger
	service Service
	secret  string
}

func New(log handlerLogger, service Service, secret string) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "webhooks.payment"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
		secret:  secret,
	}
}

// ServeHTTP подпись проверяется по сырому телу до какого-либо разбора.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		response.Fail(w, h.log, http.StatusBadRequest, "unable to read request body")
		return
	}

	event, err := webhook.ConstructEventWithOptions(
		payload,
		r.Header.Get(SignatureHeader),
		h.secret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true},
	)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("remote_addr", r.RemoteAddr),
		).Warn("payment webhook signature rejected")
		response.Fail(w, h.log, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	paymentEvent, err := toPaymentEvent(event)
	if err != nil {
		response.Fail(w, h.log, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.HandlePaymentEvent(r.Context(), paymentEvent)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	received := dto.PaymentWebhookResponse{Received: true}
	if result != nil {
		status := result.Order.Status.String()
		received.OrderId = &result.Order.ID
		received.Applied = &result.Applied
		received.Status = &status

		h.log.With(
			logger.NewField("event_id", paymentEvent.ID),
			logger.NewField("event_type", paymentEvent.Type),
			logger.NewField("order_id", result.Order.ID),
			logger.NewField("applied", result.Applied),
		).Info("payment event processed")
	}

	response.OK(w, h.log, http.StatusOK, received)
}

func toPaymentEvent(event stripe.Event) (entities.PaymentEvent, error) {
	paymentEvent := entities.PaymentEvent{
		ID:   event.ID,
		Type: string(event.Type),
	}
	if event.Data == nil || len(event.Data.Raw) == 0 {
		return paymentEvent, errMalformedEvent
	}

	var object paymentObject
	if err := json.Unmarshal(event.Data.Raw, &object); err != nil {
		return paymentEvent, fmt.Errorf("%w: %v", errMalformedEvent, err)
	}

	paymentEvent.OrderID = object.Metadata[orderIDMetadataKey]
	paymentEvent.TransactionID = object.transactionID()
	return paymentEvent, nil
}
