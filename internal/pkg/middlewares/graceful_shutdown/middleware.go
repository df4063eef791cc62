package graceful_shutdown

import (
	"context"
	"net/http"
	"sync/atomic"
)

// Middleware после начала остановки отвечает 503, чтобы балансировщик
// перестал слать новые запросы.
func Middleware(isShuttingDown *atomic.Bool, ongoingCtx context.Context) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() || ongoingCtx.Err() != nil {
				w.Header().Set("Connection", "close")
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"ok":false,"error":"Service is shutting down"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
