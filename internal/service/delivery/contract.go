//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"marketplace/internal/entities"
)

type OrderService interface {
	GetOrder(ctx context.Context, id string) (*entities.Order, error)
	RequestTransition(ctx context.Context, req entities.TransitionRequest) (*entities.TransitionResult, error)
}

type ProviderGateway interface {
	CreateShipment(ctx context.Context, req entities.ShipmentRequest) (*entities.Shipment, error)
}
