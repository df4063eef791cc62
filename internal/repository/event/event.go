package event

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/entities"
)

// Repository inbox обработанных событий и outbox исходящих сообщений.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// MarkProcessed false, если событие с таким ключом уже было обработано.
func (r *Repository) MarkProcessed(ctx context.Context, key entities.EventKey, orderID string) (bool, error) {
	query := `
		INSERT INTO processed_events (source, event_key, order_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (source, event_key) DO NOTHING
	`

	result, err := r.querier.Exec(ctx, query, key.Source, key.Key, orderID)
	if err != nil {
		return false, fmt.Errorf("unexpected event repository mark processed error: %w", err)
	}

	return result.RowsAffected() == 1, nil
}

func (r *Repository) Enqueue(ctx context.Context, message entities.OutboxMessage) error {
	query := `
		INSERT INTO outbox (event_type, key, payload)
		VALUES ($1, $2, $3)
	`

	_, err := r.querier.Exec(ctx, query, message.EventType, message.Key, message.Payload)
	if err != nil {
		return fmt.Errorf("unexpected event repository enqueue error: %w", err)
	}

	return nil
}

func (r *Repository) FetchUnpublished(ctx context.Context, limit int) ([]entities.OutboxMessage, error) {
	query := `
		SELECT id, event_type, key, payload, created_at
		FROM outbox
		WHERE published_at IS NULL
		ORDER BY id
		LIMIT $1
	`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected event repository fetch unpublished error: %w", err)
	}
	defer rows.Close()

	messages := make([]entities.OutboxMessage, 0, limit)
	for rows.Next() {
		var message entities.OutboxMessage
		err := rows.Scan(
			&message.ID,
			&message.EventType,
			&message.Key,
			&message.Payload,
			&message.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected event repository outbox scan error: %w", err)
		}
		messages = append(messages, message)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected event repository outbox rows error: %w", err)
	}

	return messages, nil
}

func (r *Repository) MarkPublished(ctx context.Context, ids []int64, publishedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query := `
		UPDATE outbox
		SET published_at = $2
		WHERE id = ANY($1) AND published_at IS NULL
	`

	_, err := r.querier.Exec(ctx, query, ids, publishedAt)
	if err != nil {
		return fmt.Errorf("unexpected event repository mark published error: %w", err)
	}

	return nil
}
