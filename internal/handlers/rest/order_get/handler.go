package order_get

import (
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/handlers/rest/presenter"
	"marketplace/internal/pkg/response"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]

	order, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.OK(w, h.log, http.StatusOK, presenter.Order(order))
}
