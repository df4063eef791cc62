package app

import (
	"time"

	"marketplace/internal/handlers/kafka-consumer/delivery_event"
	"marketplace/internal/handlers/rest/order_delete"
	"marketplace/internal/handlers/rest/order_delivery_post"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_patch"
	"marketplace/internal/handlers/rest/order_post"
	"marketplace/internal/handlers/rest/order_status_put"
	"marketplace/internal/handlers/rest/orders_get"
	"marketplace/internal/handlers/rest/webhook_delivery_post"
	"marketplace/internal/handlers/rest/webhook_payment_post"
	"marketplace/pkg/background"
)

type (
	OutboxRelayInterval time.Duration
	OutboxBatchSize     int
)

type Application struct {
	OrderService      ServiceOrder
	DeliveryService   ServiceDelivery
	WebhookService    ServiceWebhook
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_get.Service
	order_get.Service
	order_post.Service
	order_patch.Service
	order_delete.Service
	order_status_put.Service
}

type ServiceDelivery interface {
	order_delivery_post.Service
}

type ServiceWebhook interface {
	webhook_payment_post.Service
	webhook_delivery_post.Service
}

type KafkaWorkerApp struct {
	WebhookService delivery_event.Service
}
