package order_patch

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/presenter"
	"marketplace/internal/pkg/response"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "orders.update"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var orderUpdateDTO dto.OrderUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&orderUpdateDTO)
	if err != nil {
		response.Fail(w, h.log, http.StatusBadRequest, "invalid JSON body")
		return
	}

	orderModify := entities.OrderModify{
		ID:          &orderID,
		Notes:       orderUpdateDTO.Notes,
		ProviderID:  orderUpdateDTO.ProviderId,
		AddressID:   orderUpdateDTO.AddressId,
		ScheduledAt: orderUpdateDTO.ScheduledAt,
	}
	if orderUpdateDTO.Status != nil {
		status, err := entities.ParseOrderStatus(strings.ToUpper(*orderUpdateDTO.Status))
		if err != nil {
			response.Error(w, h.log, order.ErrInvalidStatus)
			return
		}
		orderModify.Status = &status
	}

	updated, err := h.service.UpdateOrder(r.Context(), orderModify)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.OK(w, h.log, http.StatusOK, presenter.Order(updated))
}
