package presenter

import (
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
)

func Order(order *entities.Order) dto.Order {
	orderDTO := dto.Order{
		Id:                 order.ID,
		Number:             order.Number,
		UserId:             order.UserID,
		ServiceId:          order.ServiceID,
		AddressId:          order.AddressID,
		ProviderId:         order.ProviderID,
		Status:             order.Status.String(),
		PaymentStatus:      order.PaymentStatus.String(),
		PaymentMethod:      order.PaymentMethod.String(),
		TotalAmount:        order.TotalAmount.StringFixed(2),
		Vat:                order.VAT.StringFixed(2),
		FinalAmount:        order.FinalAmount.StringFixed(2),
		ScheduledAt:        order.ScheduledAt,
		Notes:              order.Notes,
		CancellationReason: order.CancellationReason,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
		History:            make([]dto.OrderStatusHistory, len(order.History)),
	}

	for i, entry := range order.History {
		orderDTO.History[i] = dto.OrderStatusHistory{
			Id:        entry.ID,
			Status:    entry.Status.String(),
			Note:      entry.Note,
			CreatedAt: entry.CreatedAt,
		}
	}

	if order.Delivery != nil {
		orderDTO.Delivery = &dto.Delivery{
			Provider:    order.Delivery.Provider.String(),
			ExternalId:  order.Delivery.ExternalID,
			TrackingUrl: order.Delivery.TrackingURL,
			Status:      order.Delivery.Status.String(),
			CreatedAt:   order.Delivery.CreatedAt,
			UpdatedAt:   order.Delivery.UpdatedAt,
		}
	}

	if order.Payment != nil {
		orderDTO.Payment = &dto.Payment{
			Method:        order.Payment.Method.String(),
			Amount:        order.Payment.Amount.StringFixed(2),
			TransactionId: order.Payment.TransactionID,
			Status:        order.Payment.Status.String(),
			CreatedAt:     order.Payment.CreatedAt,
			UpdatedAt:     order.Payment.UpdatedAt,
		}
	}

	return orderDTO
}

func OrderList(page *entities.OrderPage) dto.OrderList {
	items := make([]dto.Order, len(page.Items))
	for i := range page.Items {
		items[i] = Order(&page.Items[i])
	}

	return dto.OrderList{
		Items:      items,
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      page.Total,
		TotalPages: page.TotalPages(),
	}
}
