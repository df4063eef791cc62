package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var errLockOutsideTransaction = errors.New("order row lock requires a transaction")

var orderColumns = []string{
	"o.id", "o.number", "o.user_id", "o.provider_id", "o.service_id", "o.address_id",
	"o.status", "o.payment_status", "o.payment_method",
	"o.total_amount", "o.vat", "o.final_amount",
	"o.scheduled_at", "o.notes", "o.cancellation_reason", "o.created_at", "o.updated_at",
}

type scanner interface {
	Scan(dest ...any) error
}

type Repository struct {
	querier     Querier
	lockTimeout time.Duration
}

// New lockTimeout ограничивает ожидание блокировки строки в LockByID,
// нулевое значение оставляет настройку сервера.
func New(querier Querier, lockTimeout time.Duration) *Repository {
	return &Repository{
		querier:     querier,
		lockTimeout: lockTimeout,
	}
}

func (r *Repository) Create(ctx context.Context, orderCreate entities.OrderCreate) error {
	query := `
		INSERT INTO orders (
			id, number, user_id, service_id, address_id, status, payment_status, payment_method,
			total_amount, vat, final_amount, scheduled_at, notes
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		orderCreate.ID,
		orderCreate.Number,
		orderCreate.UserID,
		orderCreate.ServiceID,
		orderCreate.AddressID,
		entities.OrderPending,
		entities.PaymentPending,
		orderCreate.PaymentMethod,
		orderCreate.TotalAmount,
		orderCreate.VAT,
		orderCreate.FinalAmount,
		orderCreate.ScheduledAt,
		orderCreate.Notes,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return order.ErrOrderNumberConflict
		}
		return fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return nil
}

// GetByID заказ вместе с историей (по возрастанию), доставкой и оплатой.
func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns...).
		From("orders o").
		Where(sq.Eq{"o.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	orderEntity := ToDomain(orderModel)

	orderEntity.History, err = r.getHistory(ctx, id)
	if err != nil {
		return nil, err
	}

	orderEntity.Delivery, err = r.getDelivery(ctx, id)
	if err != nil {
		return nil, err
	}

	orderEntity.Payment, err = r.getPayment(ctx, id)
	if err != nil {
		return nil, err
	}

	return orderEntity, nil
}

// LockByID берёт строку заказа под FOR UPDATE до конца транзакции.
func (r *Repository) LockByID(ctx context.Context, id string) (*entities.Order, error) {
	if !r.querier.InTransaction(ctx) {
		return nil, errLockOutsideTransaction
	}

	if r.lockTimeout > 0 {
		_, err := r.querier.Exec(ctx, `SELECT set_config('lock_timeout', $1, true)`,
			fmt.Sprintf("%dms", r.lockTimeout.Milliseconds()))
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository lock timeout error: %w", err)
		}
	}

	query, args, err := qb.
		Select(orderColumns...).
		From("orders o").
		Where(sq.Eq{"o.id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository lock error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		if repository.IsContention(err) {
			return nil, order.ErrContention
		}
		return nil, fmt.Errorf("unexpected order repository lock error: %w", err)
	}

	return ToDomain(orderModel), nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) (*entities.OrderPage, error) {
	where := sq.And{}
	if filter.Status != nil {
		where = append(where, sq.Eq{"o.status": filter.Status.String()})
	}
	if filter.UserID != nil {
		where = append(where, sq.Eq{"o.user_id": *filter.UserID})
	}
	if filter.ProviderID != nil {
		where = append(where, sq.Eq{"o.provider_id": *filter.ProviderID})
	}
	if filter.Query != nil && *filter.Query != "" {
		pattern := "%" + *filter.Query + "%"
		where = append(where, sq.Or{
			sq.ILike{"o.number": pattern},
			sq.ILike{"a.address": pattern},
		})
	}

	countQuery, countArgs, err := qb.
		Select("COUNT(*)").
		From("orders o").
		LeftJoin("addresses a ON a.id = o.address_id").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	var total int64
	err = r.querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count error: %w", err)
	}

	query, args, err := qb.
		Select(orderColumns...).
		From("orders o").
		LeftJoin("addresses a ON a.id = o.address_id").
		Where(where).
		OrderBy("o.created_at DESC", "o.id").
		Limit(uint64(filter.PageSize)).
		Offset(uint64((filter.Page - 1) * filter.PageSize)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	items := make([]entities.Order, 0, filter.PageSize)
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list scan error: %w", err)
		}
		items = append(items, *ToDomain(orderModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list rows error: %w", err)
	}

	return &entities.OrderPage{
		Items:    items,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
	}, nil
}

func (r *Repository) Update(ctx context.Context, orderModify entities.OrderModify) error {
	if orderModify.ID == nil {
		return order.ErrInvalidOrderID
	}

	builder := qb.Update("orders")

	// опциональные поля
	if orderModify.Notes != nil {
		builder = builder.Set("notes", orderModify.Notes)
	}
	if orderModify.ProviderID != nil {
		builder = builder.Set("provider_id", orderModify.ProviderID)
	}
	if orderModify.AddressID != nil {
		builder = builder.Set("address_id", orderModify.AddressID)
	}
	if orderModify.ScheduledAt != nil {
		builder = builder.Set("scheduled_at", orderModify.ScheduledAt.UTC())
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": *orderModify.ID})

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository update error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) UpdateStatus(ctx context.Context, update entities.OrderStatusUpdate) error {
	builder := qb.
		Update("orders").
		Set("status", update.Status.String())

	if update.CancellationReason != nil {
		builder = builder.Set("cancellation_reason", update.CancellationReason)
	}
	if update.PaymentStatus != nil {
		builder = builder.Set("payment_status", update.PaymentStatus.String())
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": update.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected order repository update status error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) AppendHistory(ctx context.Context, orderID string, status entities.OrderStatus, note *string) error {
	query := `
		INSERT INTO order_status_history (order_id, status, note)
		VALUES ($1, $2, $3)
	`

	_, err := r.querier.Exec(ctx, query, orderID, status.String(), note)
	if err != nil {
		return fmt.Errorf("unexpected order repository append history error: %w", err)
	}

	return nil
}

func (r *Repository) getHistory(ctx context.Context, orderID string) ([]entities.OrderStatusHistory, error) {
	query := `
		SELECT id, order_id, status, note, created_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get history error: %w", err)
	}
	defer rows.Close()

	history := make([]entities.OrderStatusHistory, 0, 8)
	for rows.Next() {
		var historyModel OrderStatusHistoryDB
		err := rows.Scan(
			&historyModel.ID,
			&historyModel.OrderID,
			&historyModel.Status,
			&historyModel.Note,
			&historyModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository history scan error: %w", err)
		}
		history = append(history, ToHistoryDomain(&historyModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository history rows error: %w", err)
	}

	return history, nil
}

func (r *Repository) getDelivery(ctx context.Context, orderID string) (*entities.Delivery, error) {
	query := `
		SELECT id, order_id, provider, external_id, tracking_url, status, created_at, updated_at
		FROM deliveries
		WHERE order_id = $1
	`

	var deliveryModel DeliveryDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&deliveryModel.ID,
		&deliveryModel.OrderID,
		&deliveryModel.Provider,
		&deliveryModel.ExternalID,
		&deliveryModel.TrackingURL,
		&deliveryModel.Status,
		&deliveryModel.CreatedAt,
		&deliveryModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected order repository get delivery error: %w", err)
	}

	return ToDeliveryDomain(&deliveryModel), nil
}

func (r *Repository) getPayment(ctx context.Context, orderID string) (*entities.Payment, error) {
	query := `
		SELECT id, order_id, method, amount, transaction_id, status, created_at, updated_at
		FROM payments
		WHERE order_id = $1
	`

	var paymentModel PaymentDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&paymentModel.ID,
		&paymentModel.OrderID,
		&paymentModel.Method,
		&paymentModel.Amount,
		&paymentModel.TransactionID,
		&paymentModel.Status,
		&paymentModel.CreatedAt,
		&paymentModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected order repository get payment error: %w", err)
	}

	return ToPaymentDomain(&paymentModel), nil
}

func scanOrder(row scanner) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.Number,
		&orderModel.UserID,
		&orderModel.ProviderID,
		&orderModel.ServiceID,
		&orderModel.AddressID,
		&orderModel.Status,
		&orderModel.PaymentStatus,
		&orderModel.PaymentMethod,
		&orderModel.TotalAmount,
		&orderModel.VAT,
		&orderModel.FinalAmount,
		&orderModel.ScheduledAt,
		&orderModel.Notes,
		&orderModel.CancellationReason,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}
