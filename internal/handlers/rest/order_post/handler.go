package order_post

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
		logger.NewField("handler", "orders.create"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		response.Fail(w, h.log, http.StatusBadRequest, "invalid JSON body")
		return
	}

	draft := entities.OrderDraft{
		UserID:        orderCreateDTO.UserId,
		ServiceID:     orderCreateDTO.ServiceId,
		AddressID:     orderCreateDTO.AddressId,
		PaymentMethod: entities.PaymentMethod(orderCreateDTO.PaymentMethod),
		Notes:         orderCreateDTO.Notes,
		TotalAmount:   orderCreateDTO.TotalAmount,
	}
	if !orderCreateDTO.ScheduledAt.IsZero() {
		draft.ScheduledAt = &orderCreateDTO.ScheduledAt
	}

	order, err := h.service.CreateOrder(r.Context(), draft)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("order_id", order.ID),
		logger.NewField("order_number", order.Number),
	).Info("order created")

	response.OK(w, h.log, http.StatusCreated, presenter.Order(order))
}
