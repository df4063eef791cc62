package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID                 string
	Number             string
	UserID             string
	ServiceID          string
	AddressID          string
	ProviderID         *string
	Status             OrderStatus
	PaymentStatus      PaymentStatus
	PaymentMethod      PaymentMethod
	TotalAmount        decimal.Decimal
	VAT                decimal.Decimal
	FinalAmount        decimal.Decimal
	ScheduledAt        time.Time
	Notes              *string
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time

	History  []OrderStatusHistory
	Delivery *Delivery
	Payment  *Payment
}

type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderAssigned   OrderStatus = "ASSIGNED"
	OrderOnWay      OrderStatus = "ON_WAY"
	OrderArrived    OrderStatus = "ARRIVED"
	OrderInProgress OrderStatus = "IN_PROGRESS"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
	OrderRefunded   OrderStatus = "REFUNDED"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch status := OrderStatus(s); status {
	case OrderPending, OrderConfirmed, OrderAssigned, OrderOnWay, OrderArrived,
		OrderInProgress, OrderCompleted, OrderCancelled, OrderRefunded:
		return status, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidOrderStatus, s)
	}
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderCompleted || s == OrderCancelled || s == OrderRefunded
}

func (s OrderStatus) String() string {
	return string(s)
}

type OrderCreate struct {
	ID            string
	Number        string
	UserID        string
	ServiceID     string
	AddressID     string
	PaymentMethod PaymentMethod
	TotalAmount   decimal.Decimal
	VAT           decimal.Decimal
	FinalAmount   decimal.Decimal
	ScheduledAt   time.Time
	Notes         *string
}

// OrderModify частичное обновление заказа (PATCH). Status проходит через координатор.
type OrderModify struct {
	ID          *string
	Notes       *string
	ProviderID  *string
	AddressID   *string
	ScheduledAt *time.Time
	Status      *OrderStatus
}

func (m OrderModify) HasFieldChanges() bool {
	return m.Notes != nil || m.ProviderID != nil || m.AddressID != nil || m.ScheduledAt != nil
}

type OrderStatusUpdate struct {
	ID                 string
	Status             OrderStatus
	CancellationReason *string
	PaymentStatus      *PaymentStatus
}

type OrderFilter struct {
	Page       int
	PageSize   int
	Status     *OrderStatus
	UserID     *string
	ProviderID *string
	Query      *string
}

type OrderPage struct {
	Items    []Order
	Page     int
	PageSize int
	Total    int64
}

func (p OrderPage) TotalPages() int64 {
	if p.PageSize <= 0 {
		return 0
	}
	return (p.Total + int64(p.PageSize) - 1) / int64(p.PageSize)
}

type OrderStatusHistory struct {
	ID        int64
	OrderID   string
	Status    OrderStatus
	Note      *string
	CreatedAt time.Time
}

// OrderDraft входные данные для создания заказа.
type OrderDraft struct {
	UserID        string
	ServiceID     string
	AddressID     string
	PaymentMethod PaymentMethod
	TotalAmount   *decimal.Decimal
	ScheduledAt   *time.Time
	Notes         *string
}
