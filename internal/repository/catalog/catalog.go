package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
	"marketplace/internal/service/order"
)

// Repository справочники маркетплейса: пользователи, услуги и адреса.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) UserExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id)
}

func (r *Repository) AddressExists(ctx context.Context, id string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM addresses WHERE id = $1)`, id)
}

func (r *Repository) GetService(ctx context.Context, id string) (*entities.CatalogService, error) {
	query := `
		SELECT id, name, price
		FROM services
		WHERE id = $1
	`

	var (
		serviceID string
		name      string
		price     decimal.Decimal
	)
	err := r.querier.QueryRow(ctx, query, id).Scan(&serviceID, &name, &price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrServiceNotFound
		}
		return nil, fmt.Errorf("unexpected catalog repository get service error: %w", err)
	}

	return &entities.CatalogService{
		ID:    serviceID,
		Name:  name,
		Price: price,
	}, nil
}

func (r *Repository) exists(ctx context.Context, query, id string) (bool, error) {
	var exists bool
	err := r.querier.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected catalog repository exists error: %w", err)
	}
	return exists, nil
}
