package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	ID            int64
	OrderID       string
	Method        PaymentMethod
	Amount        decimal.Decimal
	TransactionID *string
	Status        PaymentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

func (s PaymentStatus) String() string {
	return string(s)
}

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentCash   PaymentMethod = "cash"
	PaymentStcPay PaymentMethod = "stc_pay"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCard, PaymentCash, PaymentStcPay:
		return true
	default:
		return false
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}
