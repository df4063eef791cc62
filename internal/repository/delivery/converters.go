package delivery

import "marketplace/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
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

func FromDomainModify(d *entities.DeliveryModify) *DeliveryModifyDB {
	if d == nil {
		return nil
	}
	deliveryModifyDB := &DeliveryModifyDB{
		OrderID:     d.OrderID,
		ExternalID:  d.ExternalID,
		TrackingURL: d.TrackingURL,
	}

	if d.Provider != nil {
		provider := d.Provider.String()
		deliveryModifyDB.Provider = &provider
	}
	if d.Status != nil {
		status := d.Status.String()
		deliveryModifyDB.Status = &status
	}

	return deliveryModifyDB
}
