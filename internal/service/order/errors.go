package order

import (
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

var (
	ErrValidation = errors.New("validation failed")

	ErrMissingRequiredFields = fmt.Errorf("%w: missing required fields", ErrValidation)
	ErrInvalidOrderID        = fmt.Errorf("%w: invalid order id", ErrValidation)
	ErrInvalidStatus         = fmt.Errorf("%w: invalid status", ErrValidation)
	ErrInvalidPaymentMethod  = fmt.Errorf("%w: invalid payment method", ErrValidation)
	ErrInvalidScheduledAt    = fmt.Errorf("%w: invalid scheduledAt", ErrValidation)
	ErrInvalidOrigin         = fmt.Errorf("%w: invalid transition origin", ErrValidation)

	ErrOrderNotFound    = errors.New("order not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrProviderNotFound = errors.New("provider not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrAddressNotFound  = errors.New("address not found")

	ErrTerminalState       = errors.New("order is in a terminal state")
	ErrIllegalTransition   = errors.New("illegal status transition")
	ErrContention          = errors.New("order is being modified concurrently")
	ErrOrderNumberConflict = errors.New("order number already exists")
)

// TransitionError отказ по таблице переходов: содержит текущий статус и
// допустимые следующие статусы.
type TransitionError struct {
	From    entities.OrderStatus
	To      entities.OrderStatus
	Allowed []entities.OrderStatus
}

func (e *TransitionError) Error() string {
	allowed := make([]string, 0, len(e.Allowed))
	for _, s := range e.Allowed {
		allowed = append(allowed, s.String())
	}
	if len(allowed) == 0 {
		return fmt.Sprintf("%s: %s -> %s, no transitions allowed", ErrIllegalTransition, e.From, e.To)
	}
	return fmt.Sprintf("%s: %s -> %s, allowed: %s", ErrIllegalTransition, e.From, e.To, strings.Join(allowed, ", "))
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrIllegalTransition
}
