package outbox

import (
	"context"
	"fmt"
	"time"
)

// Relay переносит закоммиченные outbox-сообщения в брокер. Публикация идёт
// вне транзакции, поэтому доставка at-least-once: сообщение, опубликованное
// перед падением и не отмеченное, уйдёт повторно.
type Relay struct {
	repository Repository
	publisher  Publisher
	batchSize  int
}

func New(repository Repository, publisher Publisher, batchSize int) *Relay {
	return &Relay{
		repository: repository,
		publisher:  publisher,
		batchSize:  batchSize,
	}
}

// RelayPending публикует одну пачку сообщений в порядке создания. На первой
// ошибке публикации останавливается, чтобы не нарушить порядок событий
// одного заказа, и отмечает уже опубликованные.
func (r *Relay) RelayPending(ctx context.Context) (int, error) {
	if r.batchSize <= 0 {
		return 0, ErrInvalidBatchSize
	}

	messages, err := r.repository.FetchUnpublished(ctx, r.batchSize)
	if err != nil {
		return 0, fmt.Errorf("fetch unpublished: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	published := make([]int64, 0, len(messages))
	var publishErr error
	for _, message := range messages {
		err = r.publisher.Publish(ctx, message)
		if err != nil {
			OutboxPublishFailuresTotal.WithLabelValues(message.EventType).Inc()
			publishErr = fmt.Errorf("%w: message %d: %w", ErrPublishFailed, message.ID, err)
			break
		}
		OutboxPublishedTotal.WithLabelValues(message.EventType).Inc()
		published = append(published, message.ID)
	}

	if len(published) > 0 {
		err = r.repository.MarkPublished(ctx, published, time.Now().UTC())
		if err != nil {
			return 0, fmt.Errorf("mark published: %w", err)
		}
	}

	return len(published), publishErr
}
