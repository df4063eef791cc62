package deliveryprovider

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/delivery"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3
)

type Gateway struct {
	client  client
	retrier retrier
}

func New(client client) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) CreateShipment(ctx context.Context, req entities.ShipmentRequest) (*entities.Shipment, error) {
	var shipment *entities.Shipment

	err := g.executeWithMetrics(ctx, req.Provider, "CreateShipment", func(ctx context.Context) error {
		var err error
		shipment, err = g.client.CreateShipment(ctx, req)
		return err
	})
	if err != nil {
		if errors.Is(err, delivery.ErrUnsupportedProvider) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", delivery.ErrProviderUnavailable, req.Provider, err)
	}

	if shipment == nil || shipment.ExternalID == "" {
		return nil, fmt.Errorf("%w: %s returned empty tracking id", delivery.ErrProviderUnavailable, req.Provider)
	}
	return shipment, nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, delivery.ErrUnsupportedProvider) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

func (g *Gateway) executeWithMetrics(ctx context.Context, provider entities.DeliveryProvider, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	result := resultLabel(err)
	GatewayRequestDuration.WithLabelValues(provider.String(), method, result).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(provider.String(), method, result).Inc()
	}

	return err
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, delivery.ErrUnsupportedProvider):
		return "unsupported"
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}
