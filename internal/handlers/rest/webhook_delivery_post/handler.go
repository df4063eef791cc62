package webhook_delivery_post

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/presenter"
	"marketplace/internal/pkg/response"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "webhooks.delivery"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP секрет провайдера проверяется middleware до вызова обработчика.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var deliveryWebhookDTO dto.DeliveryWebhookRequest
	err := json.NewDecoder(r.Body).Decode(&deliveryWebhookDTO)
	if err != nil {
		response.Fail(w, h.log, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.service.HandleDeliveryEvent(r.Context(), entities.DeliveryEvent{
		ExternalID: deliveryWebhookDTO.ExternalId,
		Event:      entities.DeliveryStatus(deliveryWebhookDTO.Event),
		Note:       deliveryWebhookDTO.Note,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("external_id", deliveryWebhookDTO.ExternalId),
		logger.NewField("event", deliveryWebhookDTO.Event),
		logger.NewField("order_id", result.Order.ID),
		logger.NewField("applied", result.Applied),
	).Info("delivery event processed")

	response.OK(w, h.log, http.StatusOK, presenter.Order(result.Order))
}
