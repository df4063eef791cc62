package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"marketplace/internal/gateway/deliveryprovider"
	"marketplace/internal/gateway/eventbus"
	"marketplace/internal/handlers/tasks/outbox_relay"
	"marketplace/internal/pkg/config"
	catalogRepo "marketplace/internal/repository/catalog"
	deliveryRepo "marketplace/internal/repository/delivery"
	eventRepo "marketplace/internal/repository/event"
	orderRepo "marketplace/internal/repository/order"
	paymentRepo "marketplace/internal/repository/payment"
	deliveryService "marketplace/internal/service/delivery"
	orderService "marketplace/internal/service/order"
	outboxService "marketplace/internal/service/outbox"
	webhookService "marketplace/internal/service/webhook"
	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier, cfg *config.Config) *orderRepo.Repository {
	return orderRepo.New(querier, cfg.Database.LockTimeout)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideEventRepository(querier *querier.Querier) *eventRepo.Repository {
	return eventRepo.New(querier)
}

func provideCatalogRepository(querier *querier.Querier) *catalogRepo.Repository {
	return catalogRepo.New(querier)
}

func provideServiceOrder(
	repository orderService.Repository,
	deliveryRepository orderService.DeliveryRepository,
	paymentRepository orderService.PaymentRepository,
	eventRepository orderService.EventRepository,
	catalogRepository orderService.CatalogRepository,
	numberFactory orderService.NumberFactory,
	txManager orderService.TxManager,
) *orderService.Service {
	return orderService.New(
		repository,
		deliveryRepository,
		paymentRepository,
		eventRepository,
		catalogRepository,
		numberFactory,
		txManager,
	)
}

func provideServiceWebhook(
	coordinator webhookService.Coordinator,
	deliveryRepository webhookService.DeliveryRepository,
	ruleFactory webhookService.RuleFactory,
) *webhookService.Service {
	return webhookService.New(coordinator, deliveryRepository, ruleFactory)
}

func provideProviderGateway(client *deliveryprovider.StubClient) *deliveryprovider.Gateway {
	return deliveryprovider.New(client)
}

func provideServiceDelivery(
	orderService deliveryService.OrderService,
	providerGateway deliveryService.ProviderGateway,
) *deliveryService.Delivery {
	return deliveryService.New(orderService, providerGateway)
}

func provideEventPublisher(producer sarama.SyncProducer, cfg *config.Config) *eventbus.Publisher {
	return eventbus.New(producer, cfg.Kafka.OrderEventsTopic)
}

func provideOutboxRelay(
	repository outboxService.Repository,
	publisher outboxService.Publisher,
	batchSize OutboxBatchSize,
) *outboxService.Relay {
	return outboxService.New(repository, publisher, int(batchSize))
}

func provideOutboxRelayInterval(cfg *config.Config) OutboxRelayInterval {
	return OutboxRelayInterval(cfg.Tasks.OutboxRelayInterval)
}

func provideOutboxBatchSize(cfg *config.Config) OutboxBatchSize {
	return OutboxBatchSize(cfg.Tasks.OutboxBatchSize)
}

func provideOutboxRelayTask(
	log logger.Logger,
	service outbox_relay.Service,
	interval OutboxRelayInterval,
) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, service, time.Duration(interval))
}

func provideTaskList(
	outboxRelayTask *outbox_relay.OutboxRelay,
) []background.Task {
	return []background.Task{
		outboxRelayTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
