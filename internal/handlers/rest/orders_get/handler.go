package orders_get

import (
	"net/http"
	"strconv"
	"strings"

	"marketplace/internal/entities"
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
		logger.NewField("handler", "orders.list"),
	)

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := entities.OrderFilter{
		UserID:     optionalParam(query.Get("userId")),
		ProviderID: optionalParam(query.Get("providerId")),
		Query:      optionalParam(query.Get("q")),
	}
	if status := optionalParam(query.Get("status")); status != nil {
		orderStatus := entities.OrderStatus(strings.ToUpper(*status))
		filter.Status = &orderStatus
	}

	var err error
	if filter.Page, err = intParam(query.Get("page")); err != nil {
		response.Fail(w, h.log, http.StatusBadRequest, "invalid page")
		return
	}
	if filter.PageSize, err = intParam(query.Get("pageSize")); err != nil {
		response.Fail(w, h.log, http.StatusBadRequest, "invalid pageSize")
		return
	}

	page, err := h.service.ListOrders(r.Context(), filter)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.OK(w, h.log, http.StatusOK, presenter.OrderList(page))
}

func optionalParam(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

// intParam пустое значение отдаёт как 0, нормализацию делает сервис.
func intParam(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
