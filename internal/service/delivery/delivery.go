package delivery

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/service/order"
)

type Delivery struct {
	orderService    OrderService
	providerGateway ProviderGateway
}

func New(orderService OrderService, providerGateway ProviderGateway) *Delivery {
	return &Delivery{
		orderService:    orderService,
		providerGateway: providerGateway,
	}
}

// AssignDelivery регистрирует отправку у провайдера и переводит заказ в
// ASSIGNED. Вызов провайдера идёт до транзакции координатора, чтобы не
// держать блокировку строки заказа на время сетевого запроса.
func (d *Delivery) AssignDelivery(ctx context.Context, orderID string, provider entities.DeliveryProvider) (*entities.TransitionResult, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidProvider(provider) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedProvider, provider)
	}

	current, err := d.orderService.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	if current.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: order %s is %s", order.ErrTerminalState, current.ID, current.Status)
	}
	if !order.CanTransition(current.Status, entities.OrderAssigned, entities.OriginAPI) {
		return nil, &order.TransitionError{
			From:    current.Status,
			To:      entities.OrderAssigned,
			Allowed: order.AllowedNext(current.Status, entities.OriginAPI),
		}
	}

	shipment, err := d.providerGateway.CreateShipment(ctx, entities.ShipmentRequest{
		OrderID:     current.ID,
		OrderNumber: current.Number,
		AddressID:   current.AddressID,
		Amount:      current.FinalAmount.StringFixed(2),
		Provider:    provider,
	})
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	assigned := entities.OrderAssigned
	deliveryStatus := entities.DeliveryAssigned
	note := fmt.Sprintf("Assigned to %s", provider.DisplayName())

	result, err := d.orderService.RequestTransition(ctx, entities.TransitionRequest{
		OrderID: current.ID,
		Next:    &assigned,
		Note:    &note,
		Origin:  entities.OriginAPI,
		Delivery: &entities.DeliveryModify{
			Provider:    &shipment.Provider,
			ExternalID:  &shipment.ExternalID,
			TrackingURL: &shipment.TrackingURL,
			Status:      &deliveryStatus,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("assign order: %w", err)
	}

	// параллельный вызов успел назначить свою отправку, наша осталась без заказа
	if !result.Applied && !isSameShipment(result.Order, shipment) {
		return nil, fmt.Errorf("%w: order %s, orphaned shipment %s %s",
			ErrAlreadyAssigned, current.ID, shipment.Provider, shipment.ExternalID)
	}
	return result, nil
}

func isSameShipment(current *entities.Order, shipment *entities.Shipment) bool {
	if current == nil || current.Delivery == nil {
		return false
	}
	return current.Delivery.Provider == shipment.Provider &&
		current.Delivery.ExternalID == shipment.ExternalID
}
