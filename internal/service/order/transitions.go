package order

import "marketplace/internal/entities"

// Базовая таблица переходов (ручные переходы через API).
var baseTransitions = map[entities.OrderStatus][]entities.OrderStatus{
	entities.OrderPending:    {entities.OrderConfirmed, entities.OrderCancelled},
	entities.OrderConfirmed:  {entities.OrderAssigned, entities.OrderCancelled},
	entities.OrderAssigned:   {entities.OrderOnWay, entities.OrderCancelled},
	entities.OrderOnWay:      {entities.OrderArrived, entities.OrderCancelled},
	entities.OrderArrived:    {entities.OrderInProgress, entities.OrderCancelled},
	entities.OrderInProgress: {entities.OrderCompleted, entities.OrderCancelled},
	entities.OrderCompleted:  {},
	entities.OrderCancelled:  {},
	entities.OrderRefunded:   {},
}

// Расширения для событий провайдеров. Доставка может перескочить промежуточные
// статусы, платёжный провайдер переводит любой незавершённый заказ в
// COMPLETED, PENDING или REFUNDED. COMPLETED -> REFUNDED единственный выход
// из терминального статуса и доступен только по событию возврата.
var originTransitions = map[entities.TransitionOrigin]map[entities.OrderStatus][]entities.OrderStatus{
	entities.OriginDelivery: {
		entities.OrderConfirmed:  {entities.OrderOnWay},
		entities.OrderOnWay:      {entities.OrderCompleted},
		entities.OrderArrived:    {entities.OrderCompleted},
		entities.OrderInProgress: {entities.OrderCompleted},
	},
	entities.OriginPayment: {
		entities.OrderPending:    {entities.OrderCompleted, entities.OrderRefunded},
		entities.OrderConfirmed:  {entities.OrderCompleted, entities.OrderPending, entities.OrderRefunded},
		entities.OrderAssigned:   {entities.OrderCompleted, entities.OrderPending, entities.OrderRefunded},
		entities.OrderOnWay:      {entities.OrderCompleted, entities.OrderPending, entities.OrderRefunded},
		entities.OrderArrived:    {entities.OrderCompleted, entities.OrderPending, entities.OrderRefunded},
		entities.OrderInProgress: {entities.OrderPending, entities.OrderRefunded},
		entities.OrderCompleted:  {entities.OrderRefunded},
	},
}

// AllowedNext допустимые следующие статусы; порядок стабилен: сначала базовые, затем расширения источника.
func AllowedNext(from entities.OrderStatus, origin entities.TransitionOrigin) []entities.OrderStatus {
	base := baseTransitions[from]
	extra := originTransitions[origin][from]

	allowed := make([]entities.OrderStatus, 0, len(base)+len(extra))
	allowed = append(allowed, base...)
	for _, s := range extra {
		if !contains(allowed, s) {
			allowed = append(allowed, s)
		}
	}
	return allowed
}

func CanTransition(from, to entities.OrderStatus, origin entities.TransitionOrigin) bool {
	return contains(AllowedNext(from, origin), to)
}

// DeliveryStatusFor статус доставки, который следует из нового статуса заказа.
func DeliveryStatusFor(status entities.OrderStatus) (entities.DeliveryStatus, bool) {
	switch status {
	case entities.OrderOnWay:
		return entities.DeliveryInTransit, true
	case entities.OrderArrived:
		return entities.DeliveryPickedUp, true
	case entities.OrderCompleted:
		return entities.DeliveryDelivered, true
	case entities.OrderCancelled:
		return entities.DeliveryFailed, true
	default:
		return "", false
	}
}

func contains(statuses []entities.OrderStatus, s entities.OrderStatus) bool {
	for _, status := range statuses {
		if status == s {
			return true
		}
	}
	return false
}
