package order

import "marketplace/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:                 o.ID,
		Number:             o.Number,
		UserID:             o.UserID,
		ServiceID:          o.ServiceID,
		AddressID:          o.AddressID,
		ProviderID:         o.ProviderID,
		Status:             entities.OrderStatus(o.Status),
		PaymentStatus:      entities.PaymentStatus(o.PaymentStatus),
		PaymentMethod:      entities.PaymentMethod(o.PaymentMethod),
		TotalAmount:        o.TotalAmount,
		VAT:                o.VAT,
		FinalAmount:        o.FinalAmount,
		ScheduledAt:        o.ScheduledAt,
		Notes:              o.Notes,
		CancellationReason: o.CancellationReason,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func ToHistoryDomain(h *OrderStatusHistoryDB) entities.OrderStatusHistory {
	return entities.OrderStatusHistory{
		ID:        h.ID,
		OrderID:   h.OrderID,
		Status:    entities.OrderStatus(h.Status),
		Note:      h.Note,
		CreatedAt: h.CreatedAt,
	}
}

func ToDeliveryDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:          d.ID,
		OrderID:     d.OrderID,
		Provider:    entities.DeliveryProvider(d.Provider),
		ExternalID:  d.ExternalID,
		TrackingURL: d.TrackingURL,
		Status:      entities.DeliveryStatus(d.Status),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func ToPaymentDomain(p *PaymentDB) *entities.Payment {
	if p == nil {
		return nil
	}
	return &entities.Payment{
		ID:            p.ID,
		OrderID:       p.OrderID,
		Method:        entities.PaymentMethod(p.Method),
		Amount:        p.Amount,
		TransactionID: p.TransactionID,
		Status:        entities.PaymentStatus(p.Status),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
