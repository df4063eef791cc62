package delivery

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/webhook"
)

var errIncompleteDelivery = errors.New("delivery requires order id, provider, external id and status")

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert у заказа не больше одной доставки: повторное назначение заменяет запись.
func (r *Repository) Upsert(ctx context.Context, deliveryModify entities.DeliveryModify) error {
	deliveryModifyDB := FromDomainModify(&deliveryModify)
	if deliveryModifyDB.OrderID == nil || deliveryModifyDB.Provider == nil ||
		deliveryModifyDB.ExternalID == nil || deliveryModifyDB.Status == nil {
		return errIncompleteDelivery
	}

	trackingURL := ""
	if deliveryModifyDB.TrackingURL != nil {
		trackingURL = *deliveryModifyDB.TrackingURL
	}

	query := `
		INSERT INTO deliveries (order_id, provider, external_id, tracking_url, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id) DO UPDATE
		SET provider = EXCLUDED.provider,
			external_id = EXCLUDED.external_id,
			tracking_url = EXCLUDED.tracking_url,
			status = EXCLUDED.status,
			updated_at = NOW()
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		deliveryModifyDB.OrderID,
		deliveryModifyDB.Provider,
		deliveryModifyDB.ExternalID,
		trackingURL,
		deliveryModifyDB.Status,
	)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository upsert error: %w", err)
	}

	return nil
}

// UpdateStatusByOrderID возвращает число обновлённых строк: 0, если доставки нет.
func (r *Repository) UpdateStatusByOrderID(ctx context.Context, orderID string, status entities.DeliveryStatus) (int64, error) {
	query := `
		UPDATE deliveries
		SET status = $2,
			updated_at = NOW()
		WHERE order_id = $1
	`

	result, err := r.querier.Exec(ctx, query, orderID, status.String())
	if err != nil {
		return 0, fmt.Errorf("unexpected delivery repository update status error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) GetByExternalID(ctx context.Context, externalID string) (*entities.Delivery, error) {
	query := `
		SELECT id, order_id, provider, external_id, tracking_url, status, created_at, updated_at
		FROM deliveries
		WHERE external_id = $1
	`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(ctx, query, externalID).Scan(
		&deliveryDB.ID,
		&deliveryDB.OrderID,
		&deliveryDB.Provider,
		&deliveryDB.ExternalID,
		&deliveryDB.TrackingURL,
		&deliveryDB.Status,
		&deliveryDB.CreatedAt,
		&deliveryDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, webhook.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get by external id error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}
