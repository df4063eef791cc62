package rate_limiter

import (
	"net"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/pkg/response"
	"marketplace/pkg/logger"
)

// Middleware ограничивает запросы по адресу клиента. burst попадает в
// заголовок X-RateLimit-Limit.
func Middleware(log handlerLogger, burst int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientKey := clientAddr(r)
			if limiter.Allow(clientKey) {
				next.ServeHTTP(w, r)
				return
			}

			handlerPath := r.URL.Path
			if route := mux.CurrentRoute(r); route != nil {
				if template, err := route.GetPathTemplate(); err == nil {
					handlerPath = template
				}
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", handlerPath),
				logger.NewField("client", clientKey),
			).Warn("rate limit exceeded")

			RateLimitedTotal.WithLabelValues(handlerPath).Inc()

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(burst))
			w.Header().Set("Retry-After", "1")
			response.Fail(w, log, http.StatusTooManyRequests, "Rate limit exceeded. Try again later.")
		})
	}
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
