package order_delete

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

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
		logger.NewField("handler", "orders.cancel"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP заказ не удаляется, а отменяется. Тело с reason необязательно.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var orderCancelDTO dto.OrderCancelRequest
	err := json.NewDecoder(r.Body).Decode(&orderCancelDTO)
	if err != nil && !errors.Is(err, io.EOF) {
		response.Fail(w, h.log, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.service.CancelOrder(r.Context(), orderID, orderCancelDTO.Reason)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.OK(w, h.log, http.StatusOK, presenter.Order(result.Order))
}
