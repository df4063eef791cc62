package delivery

import (
	"errors"
	"fmt"

	"marketplace/internal/service/order"
)

var (
	ErrInvalidOrderID      = fmt.Errorf("%w: invalid order id", order.ErrValidation)
	ErrUnsupportedProvider = fmt.Errorf("%w: unsupported delivery provider", order.ErrValidation)

	ErrProviderUnavailable = errors.New("delivery provider unavailable")
	ErrAlreadyAssigned     = errors.New("order already has another shipment")
)
