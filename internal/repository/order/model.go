package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID                 string
	Number             string
	UserID             string
	ProviderID         *string
	ServiceID          string
	AddressID          string
	Status             string
	PaymentStatus      string
	PaymentMethod      string
	TotalAmount        decimal.Decimal
	VAT                decimal.Decimal
	FinalAmount        decimal.Decimal
	ScheduledAt        time.Time
	Notes              *string
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type OrderStatusHistoryDB struct {
	ID        int64
	OrderID   string
	Status    string
	Note      *string
	CreatedAt time.Time
}

type DeliveryDB struct {
	ID          int64
	OrderID     string
	Provider    string
	ExternalID  string
	TrackingURL string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type PaymentDB struct {
	ID            int64
	OrderID       string
	Method        string
	Amount        decimal.Decimal
	TransactionID *string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
