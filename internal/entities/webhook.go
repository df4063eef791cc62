package entities

type PaymentEvent struct {
	ID            string
	Type          string
	OrderID       string
	TransactionID string
}

type DeliveryEvent struct {
	ExternalID string
	Event      DeliveryStatus
	Note       *string
}

// PaymentRule строка таблицы сопоставления платёжных событий.
type PaymentRule struct {
	PaymentStatus PaymentStatus
	OrderStatus   OrderStatus
}

// DeliveryRule строка таблицы сопоставления событий доставки. OrderStatus == nil
// означает, что меняется только статус доставки.
type DeliveryRule struct {
	DeliveryStatus DeliveryStatus
	OrderStatus    *OrderStatus
}
