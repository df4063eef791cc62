//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"marketplace/internal/gateway/deliveryprovider"
	"marketplace/internal/gateway/eventbus"
	"marketplace/internal/handlers/kafka-consumer/delivery_event"
	"marketplace/internal/handlers/tasks/outbox_relay"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/order_number"
	"marketplace/internal/pkg/factory/webhook_rule"

	catalogRepo "marketplace/internal/repository/catalog"
	deliveryRepo "marketplace/internal/repository/delivery"
	eventRepo "marketplace/internal/repository/event"
	orderRepo "marketplace/internal/repository/order"
	paymentRepo "marketplace/internal/repository/payment"
	deliveryService "marketplace/internal/service/delivery"
	orderService "marketplace/internal/service/order"
	outboxService "marketplace/internal/service/outbox"
	webhookService "marketplace/internal/service/webhook"

	"marketplace/pkg/logger"
	"marketplace/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

// coordinatorSet общая часть HTTP сервиса и воркера: репозитории,
// координатор переходов и обработка вебхуков.
var coordinatorSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideOrderRepository,
	provideDeliveryRepository,
	providePaymentRepository,
	provideEventRepository,
	provideCatalogRepository,

	order_number.New,
	webhook_rule.New,
	provideServiceOrder,
	provideServiceWebhook,

	wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
	wire.Bind(new(orderService.DeliveryRepository), new(*deliveryRepo.Repository)),
	wire.Bind(new(orderService.PaymentRepository), new(*paymentRepo.Repository)),
	wire.Bind(new(orderService.EventRepository), new(*eventRepo.Repository)),
	wire.Bind(new(orderService.CatalogRepository), new(*catalogRepo.Repository)),
	wire.Bind(new(orderService.NumberFactory), new(*order_number.NumberFactory)),
	wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

	wire.Bind(new(webhookService.Coordinator), new(*orderService.Service)),
	wire.Bind(new(webhookService.DeliveryRepository), new(*deliveryRepo.Repository)),
	wire.Bind(new(webhookService.RuleFactory), new(*webhook_rule.RuleFactory)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		coordinatorSet,
		provideOutboxRelayInterval,
		provideOutboxBatchSize,

		deliveryprovider.NewStubClient,
		provideProviderGateway,
		provideServiceDelivery,

		provideEventPublisher,
		provideOutboxRelay,

		provideOutboxRelayTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceWebhook), new(*webhookService.Service)),

		wire.Bind(new(deliveryService.OrderService), new(*orderService.Service)),
		wire.Bind(new(deliveryService.ProviderGateway), new(*deliveryprovider.Gateway)),

		wire.Bind(new(outboxService.Repository), new(*eventRepo.Repository)),
		wire.Bind(new(outboxService.Publisher), new(*eventbus.Publisher)),
		wire.Bind(new(outbox_relay.Service), new(*outboxService.Relay)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-delivery-events)
func InitializeKafkaWorkerApp(
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		coordinatorSet,

		wire.Bind(new(delivery_event.Service), new(*webhookService.Service)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
