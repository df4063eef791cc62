package ping_get

import (
	"net/http"

	"marketplace/internal/generated/dto"
	"marketplace/internal/pkg/response"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	return &Handler{
		log: log.With(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	message := "pong"
	response.OK(w, h.log, http.StatusOK, dto.PingResponse{Message: &message})
}
