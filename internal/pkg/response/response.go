package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"marketplace/internal/generated/dto"
	"marketplace/internal/service/delivery"
	"marketplace/internal/service/order"
	"marketplace/internal/service/webhook"
	"marketplace/pkg/logger"
)

const internalErrorMessage = "Internal Server Error"

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

type envelope struct {
	Ok   bool `json:"ok"`
	Data any  `json:"data"`
}

var (
	notFoundErrors = []error{
		order.ErrOrderNotFound,
		order.ErrUserNotFound,
		order.ErrProviderNotFound,
		order.ErrServiceNotFound,
		order.ErrAddressNotFound,
		webhook.ErrDeliveryNotFound,
	}

	conflictErrors = []error{
		order.ErrTerminalState,
		order.ErrIllegalTransition,
		order.ErrContention,
		order.ErrOrderNumberConflict,
		delivery.ErrAlreadyAssigned,
	}
)

// OK пишет {"ok":true,"data":...}.
func OK(w http.ResponseWriter, log errorLogger, status int, data any) {
	write(w, log, status, envelope{Ok: true, Data: data})
}

// Fail пишет {"ok":false,"error":"..."}.
func Fail(w http.ResponseWriter, log errorLogger, status int, message string) {
	write(w, log, status, dto.ErrorResponse{Ok: false, Error: message})
}

// Error сопоставляет ошибку сервисного слоя с HTTP-статусом. Всё, что не
// распознано, логируется и уходит клиенту как 500 без деталей.
func Error(w http.ResponseWriter, log errorLogger, err error) {
	status, message := Classify(err)
	if status == http.StatusInternalServerError {
		log.Error("request failed", logger.NewField("error", err))
	}
	if errors.Is(err, order.ErrContention) {
		w.Header().Set("Retry-After", "1")
	}
	Fail(w, log, status, message)
}

func Classify(err error) (int, string) {
	var transitionErr *order.TransitionError
	if errors.As(err, &transitionErr) {
		return http.StatusConflict, transitionErr.Error()
	}

	if errors.Is(err, order.ErrValidation) {
		return http.StatusBadRequest, publicMessage(err, order.ErrValidation)
	}
	for _, target := range notFoundErrors {
		if errors.Is(err, target) {
			return http.StatusNotFound, publicMessage(err, target)
		}
	}
	for _, target := range conflictErrors {
		if errors.Is(err, target) {
			return http.StatusConflict, publicMessage(err, target)
		}
	}

	return http.StatusInternalServerError, internalErrorMessage
}

// publicMessage срезает обёртки вызывающих слоёв: берётся первое звено цепочки,
// текст которого начинается с текста sentinel-ошибки.
func publicMessage(err, target error) string {
	prefix := target.Error()
	for e := err; e != nil; e = errors.Unwrap(e) {
		if strings.HasPrefix(e.Error(), prefix) {
			return e.Error()
		}
	}
	return prefix
}

func write(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}
