//go:build integration

package integration_test

import (
	"context"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/migrations"
	"marketplace/internal/pkg/postgres"
	"marketplace/pkg/logger/zap_adapter"
	"marketplace/pkg/querier"
)

const (
	postgresImage = "postgres:15-alpine"
	dbName        = "marketplace_test"
	dbUser        = "test"
	dbPassword    = "test"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	suiteOnce       sync.Once
)

// Один контейнер на пакет тестов: поднимается при первом обращении,
// схема накатывается встроенными миграциями.
func setup() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		postgresImage,
		tcpostgres.WithDatabase(dbName),
		tcpostgres.WithUsername(dbUser),
		tcpostgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		log.Fatalf("failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		log.Fatalf("failed to get container port: %v", err)
	}

	cfg := &config.Database{
		Host:     host,
		Port:     port.Port(),
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		SSLMode:  "disable",
	}

	poolInstance, err = postgres.NewConnPool(ctx, zap_adapter.NewNop(), cfg)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	if err := migrations.Up(ctx, poolInstance); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	querierInstance = querier.New(poolInstance, pgxv5.DefaultCtxGetter)
}

func GetPool() *pgxpool.Pool {
	suiteOnce.Do(setup)
	return poolInstance
}

func GetQuerier() *querier.Querier {
	suiteOnce.Do(setup)
	return querierInstance
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE outbox, processed_events, payments, deliveries, order_status_history,
			orders, addresses, services, users RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}

// CatalogFixture пользователь, услуга и адрес, на которые ссылаются заказы.
const CatalogFixture = `
	INSERT INTO users (id, name, phone, role)
	VALUES
		('user-1', 'Customer', '+966500000001', 'customer'),
		('provider-1', 'Provider', '+966500000002', 'provider');

	INSERT INTO services (id, name, price)
	VALUES ('service-1', 'Home cleaning', 100.00);

	INSERT INTO addresses (id, user_id, address)
	VALUES
		('address-1', 'user-1', 'Riyadh, King Fahd Road 12'),
		('address-2', 'user-1', 'Jeddah, Corniche 7');
`

// OrderFixture заказ order-1 в статусе PENDING с оплатой и первой записью истории.
const OrderFixture = CatalogFixture + `
	INSERT INTO orders (
		id, number, user_id, service_id, address_id, status, payment_status, payment_method,
		total_amount, vat, final_amount, scheduled_at, created_at, updated_at
	)
	VALUES (
		'order-1', 'ORD-250115-0001', 'user-1', 'service-1', 'address-1', 'PENDING', 'PENDING', 'card',
		100.00, 15.00, 115.00, '2025-01-16 10:00:00+00', '2025-01-15 11:00:00+00', '2025-01-15 11:00:00+00'
	);

	INSERT INTO payments (order_id, method, amount, status)
	VALUES ('order-1', 'card', 115.00, 'PENDING');

	INSERT INTO order_status_history (order_id, status, note)
	VALUES ('order-1', 'PENDING', 'Order created');
`
