package order

import (
	"strings"

	"marketplace/internal/entities"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidOrigin(origin entities.TransitionOrigin) bool {
	switch origin {
	case entities.OriginAPI, entities.OriginPayment, entities.OriginDelivery:
		return true
	default:
		return false
	}
}

func validateDraft(draft entities.OrderDraft) error {
	if strings.TrimSpace(draft.UserID) == "" ||
		strings.TrimSpace(draft.ServiceID) == "" ||
		strings.TrimSpace(draft.AddressID) == "" ||
		draft.PaymentMethod == "" {
		return ErrMissingRequiredFields
	}
	if !draft.PaymentMethod.IsValid() {
		return ErrInvalidPaymentMethod
	}
	if draft.ScheduledAt == nil || draft.ScheduledAt.IsZero() {
		return ErrInvalidScheduledAt
	}
	return nil
}

func validateTransitionRequest(req entities.TransitionRequest) error {
	if !isValidOrderID(req.OrderID) {
		return ErrInvalidOrderID
	}
	if !isValidOrigin(req.Origin) {
		return ErrInvalidOrigin
	}
	if req.Next != nil {
		if _, err := entities.ParseOrderStatus(req.Next.String()); err != nil {
			return ErrInvalidStatus
		}
	}
	return nil
}

func normalizeFilter(filter entities.OrderFilter) entities.OrderFilter {
	if filter.Page < 1 {
		filter.Page = 1
	}
	switch {
	case filter.PageSize < 1:
		filter.PageSize = defaultPageSize
	case filter.PageSize > maxPageSize:
		filter.PageSize = maxPageSize
	}
	return filter
}
