package entities

import "time"

// TransitionOrigin источник запроса на смену статуса.
type TransitionOrigin string

const (
	OriginAPI      TransitionOrigin = "api"
	OriginPayment  TransitionOrigin = "payment"
	OriginDelivery TransitionOrigin = "delivery"
)

func (o TransitionOrigin) String() string {
	return string(o)
}

type EventKey struct {
	Source string
	Key    string
}

type TransitionRequest struct {
	OrderID            string
	Next               *OrderStatus
	Note               *string
	Origin             TransitionOrigin
	CancellationReason *string

	// Явные статусы провайдеров, если событие их сообщает.
	DeliveryStatus *DeliveryStatus
	PaymentStatus  *PaymentStatus
	TransactionID  *string

	Delivery *DeliveryModify
	EventKey *EventKey
}

type TransitionResult struct {
	Order   *Order
	Applied bool
}

// OrderStatusChangedEvent полезная нагрузка outbox-сообщения.
type OrderStatusChangedEvent struct {
	OrderID     string           `json:"orderId"`
	OrderNumber string           `json:"orderNumber"`
	UserID      string           `json:"userId"`
	From        OrderStatus      `json:"from"`
	To          OrderStatus      `json:"to"`
	Origin      TransitionOrigin `json:"origin"`
	ChangedAt   time.Time        `json:"changedAt"`
}
