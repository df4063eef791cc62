package webhook

import (
	"errors"
	"fmt"

	"marketplace/internal/service/order"
)

var (
	ErrUndefinedEvent = errors.New("undefined webhook event")

	ErrMissingRequiredFields = fmt.Errorf("%w: externalId and event are required", order.ErrValidation)
	ErrUnsupportedEvent      = fmt.Errorf("%w: unsupported delivery event", order.ErrValidation)

	ErrDeliveryNotFound = errors.New("delivery not found")
)
