//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_test
package outbox

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Repository interface {
	FetchUnpublished(ctx context.Context, limit int) ([]entities.OutboxMessage, error)
	MarkPublished(ctx context.Context, ids []int64, publishedAt time.Time) error
}

type Publisher interface {
	Publish(ctx context.Context, message entities.OutboxMessage) error
}
