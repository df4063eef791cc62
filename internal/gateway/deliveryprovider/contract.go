//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveryprovider_test
package deliveryprovider

import (
	"context"

	"marketplace/internal/entities"
)

type client interface {
	CreateShipment(ctx context.Context, req entities.ShipmentRequest) (*entities.Shipment, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
