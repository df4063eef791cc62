package auth

import (
	"net/http"

	"marketplace/internal/pkg/response"
	"marketplace/pkg/logger"
)

const (
	APIKeyHeader         = "X-API-Key"
	DeliverySecretHeader = "X-Delivery-Secret"
)

// APIKeyMiddleware пропускает запрос только с ключом из KeyStore.
func APIKeyMiddleware(log handlerLogger, store *KeyStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !store.Verify(r.Header.Get(APIKeyHeader)) {
				unauthorized(w, r, log, "invalid api key")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SecretMiddleware проверяет общий секрет в заголовке header.
func SecretMiddleware(log handlerLogger, header, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !secretsEqual(r.Header.Get(header), secret) {
				unauthorized(w, r, log, "invalid shared secret")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, log handlerLogger, reason string) {
	log.With(
		logger.NewField("method", r.Method),
		logger.NewField("path", r.URL.Path),
		logger.NewField("remote_addr", r.RemoteAddr),
	).Warn(reason)

	UnauthorizedTotal.WithLabelValues(r.Method).Inc()
	response.Fail(w, log, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
}
