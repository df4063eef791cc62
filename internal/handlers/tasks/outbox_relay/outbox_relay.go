package outbox_relay

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/service/outbox"
	"marketplace/pkg/logger"
)

type Service interface {
	RelayPending(ctx context.Context) (int, error)
}

type OutboxRelay struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOutboxRelay(log logger.Logger, service Service, interval time.Duration) *OutboxRelay {
	return &OutboxRelay{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

// Do ошибка брокера не считается ошибкой задачи: сообщения остаются в outbox
// и уйдут на следующем тике.
func (o *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	published, err := o.service.RelayPending(ctxWithTimeout)

	if published > 0 {
		o.log.With(
			logger.NewField("published", published),
		).Info("outbox relay")
	}

	if errors.Is(err, outbox.ErrPublishFailed) {
		o.log.Warn("outbox relay: publish failed, will retry",
			logger.NewField("error", err),
		)
		return nil
	}
	return err
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
