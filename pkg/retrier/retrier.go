package retrier

import (
	"context"
	"time"
)

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// ShouldRetryFunc false означает постоянную ошибку, повторов не будет.
type ShouldRetryFunc func(error) bool

// NotifyFunc вызывается перед каждой паузой: ошибка попытки и длительность паузы.
type NotifyFunc func(err error, wait time.Duration)

// Config экспоненциальная пауза между попытками. Ограничивается и общим
// временем MaxElapsedTime, и числом повторов MaxRetries (0 без ограничения).
type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64
	MaxRetries      uint64

	// nil ретраит все ошибки
	ShouldRetry ShouldRetryFunc
	OnRetry     NotifyFunc
}
