package payment

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, payment entities.Payment) error {
	query := `
		INSERT INTO payments (order_id, method, amount, transaction_id, status)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		payment.OrderID,
		payment.Method.String(),
		payment.Amount,
		payment.TransactionID,
		payment.Status.String(),
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return order.ErrOrderNotFound
		}
		return fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return nil
}

// UpdateStatusByOrderID transactionID перезаписывается, только если передан.
func (r *Repository) UpdateStatusByOrderID(
	ctx context.Context,
	orderID string,
	status entities.PaymentStatus,
	transactionID *string,
) error {
	query := `
		UPDATE payments
		SET status = $2,
			transaction_id = COALESCE($3, transaction_id),
			updated_at = NOW()
		WHERE order_id = $1
	`

	_, err := r.querier.Exec(ctx, query, orderID, status.String(), transactionID)
	if err != nil {
		return fmt.Errorf("unexpected payment repository update status error: %w", err)
	}

	return nil
}
