//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.OrderCreate) error
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	LockByID(ctx context.Context, id string) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) (*entities.OrderPage, error)
	Update(ctx context.Context, orderModify entities.OrderModify) error
	UpdateStatus(ctx context.Context, update entities.OrderStatusUpdate) error
	AppendHistory(ctx context.Context, orderID string, status entities.OrderStatus, note *string) error
}

type DeliveryRepository interface {
	Upsert(ctx context.Context, deliveryModify entities.DeliveryModify) error
	UpdateStatusByOrderID(ctx context.Context, orderID string, status entities.DeliveryStatus) (int64, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment entities.Payment) error
	UpdateStatusByOrderID(ctx context.Context, orderID string, status entities.PaymentStatus, transactionID *string) error
}

type EventRepository interface {
	MarkProcessed(ctx context.Context, key entities.EventKey, orderID string) (bool, error)
	Enqueue(ctx context.Context, message entities.OutboxMessage) error
}

type CatalogRepository interface {
	UserExists(ctx context.Context, id string) (bool, error)
	AddressExists(ctx context.Context, id string) (bool, error)
	GetService(ctx context.Context, id string) (*entities.CatalogService, error)
}

type NumberFactory interface {
	Generate(now time.Time) string
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error
}
