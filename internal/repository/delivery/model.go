package delivery

import "time"

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

type DeliveryModifyDB struct {
	OrderID     *string
	Provider    *string
	ExternalID  *string
	TrackingURL *string
	Status      *string
}
