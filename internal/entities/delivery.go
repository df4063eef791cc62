package entities

import "time"

type Delivery struct {
	ID          int64
	OrderID     string
	Provider    DeliveryProvider
	ExternalID  string
	TrackingURL string
	Status      DeliveryStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type DeliveryProvider string

const (
	ProviderNinja  DeliveryProvider = "ninja"
	ProviderCareem DeliveryProvider = "careem"
	ProviderMrsool DeliveryProvider = "mrsool"
)

func (p DeliveryProvider) IsValid() bool {
	switch p {
	case ProviderNinja, ProviderCareem, ProviderMrsool:
		return true
	default:
		return false
	}
}

func (p DeliveryProvider) String() string {
	return string(p)
}

func (p DeliveryProvider) DisplayName() string {
	switch p {
	case ProviderNinja:
		return "Ninja"
	case ProviderCareem:
		return "Careem"
	case ProviderMrsool:
		return "Mrsool"
	default:
		return string(p)
	}
}

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliveryAssigned  DeliveryStatus = "ASSIGNED"
	DeliveryPickedUp  DeliveryStatus = "PICKED_UP"
	DeliveryInTransit DeliveryStatus = "IN_TRANSIT"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryFailed    DeliveryStatus = "FAILED"
)

func (s DeliveryStatus) String() string {
	return string(s)
}

// DeliveryModify запись о доставке, которую координатор прикрепляет к заказу.
type DeliveryModify struct {
	OrderID     *string
	Provider    *DeliveryProvider
	ExternalID  *string
	TrackingURL *string
	Status      *DeliveryStatus
}

type Shipment struct {
	Provider    DeliveryProvider
	ExternalID  string
	TrackingURL string
}

type ShipmentRequest struct {
	OrderID     string
	OrderNumber string
	AddressID   string
	Amount      string
	Provider    DeliveryProvider
}
