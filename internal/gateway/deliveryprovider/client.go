package deliveryprovider

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/service/delivery"
)

var trackingHosts = map[entities.DeliveryProvider]string{
	entities.ProviderNinja:  "https://ninjavan.co/tracking/",
	entities.ProviderCareem: "https://careem.com/tracking/",
	entities.ProviderMrsool: "https://mrsool.com/tracking/",
}

// StubClient заглушка API провайдеров доставки: у партнёров пока нет
// тестовых стендов, поэтому трек-номер выдаётся локально.
type StubClient struct {
	now func() time.Time
}

func NewStubClient() *StubClient {
	return &StubClient{now: time.Now}
}

func (c *StubClient) CreateShipment(ctx context.Context, req entities.ShipmentRequest) (*entities.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	host, ok := trackingHosts[req.Provider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", delivery.ErrUnsupportedProvider, req.Provider)
	}

	externalID := fmt.Sprintf("%s-%d", strings.ToUpper(req.Provider.String()), c.now().UnixMilli())
	return &entities.Shipment{
		Provider:    req.Provider,
		ExternalID:  externalID,
		TrackingURL: host + externalID,
	}, nil
}
