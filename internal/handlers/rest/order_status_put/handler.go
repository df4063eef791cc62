package order_status_put

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
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
		logger.NewField("handler", "orders.status"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var statusUpdateDTO dto.OrderStatusUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		response.Fail(w, h.log, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.service.ChangeStatus(
		r.Context(),
		orderID,
		strings.ToUpper(strings.TrimSpace(statusUpdateDTO.Status)),
		statusUpdateDTO.Notes,
	)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	if result.Applied {
		h.log.With(
			logger.NewField("order_id", orderID),
			logger.NewField("status", result.Order.Status.String()),
		).Info("order status changed")
	}

	response.OK(w, h.log, http.StatusOK, presenter.Order(result.Order))
}
