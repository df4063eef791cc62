package delivery

import (
	"strings"

	"marketplace/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidProvider(provider entities.DeliveryProvider) bool {
	return provider.IsValid()
}
