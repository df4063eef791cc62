package order_delivery_post

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
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
		logger.NewField("handler", "orders.delivery"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	var deliveryAssignDTO dto.DeliveryAssignRequest
	err := json.NewDecoder(r.Body).Decode(&deliveryAssignDTO)
	if err != nil {
		response.Fail(w, h.log, http.StatusBadRequest, "invalid JSON body")
		return
	}

	provider := entities.DeliveryProvider(strings.ToLower(strings.TrimSpace(deliveryAssignDTO.Provider)))

	result, err := h.service.AssignDelivery(r.Context(), orderID, provider)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	h.log.With(
		logger.NewField("order_id", orderID),
		logger.NewField("provider", provider.String()),
	).Info("delivery assigned")

	response.OK(w, h.log, http.StatusOK, presenter.Order(result.Order))
}
