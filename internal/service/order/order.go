package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

const createAttempts = 3

type Service struct {
	repository         Repository
	deliveryRepository DeliveryRepository
	paymentRepository  PaymentRepository
	eventRepository    EventRepository
	catalogRepository  CatalogRepository
	numberFactory      NumberFactory
	txManager          TxManager
}

func New(
	repository Repository,
	deliveryRepository DeliveryRepository,
	paymentRepository PaymentRepository,
	eventRepository EventRepository,
	catalogRepository CatalogRepository,
	numberFactory NumberFactory,
	txManager TxManager,
) *Service {
	return &Service{
		repository:         repository,
		deliveryRepository: deliveryRepository,
		paymentRepository:  paymentRepository,
		eventRepository:    eventRepository,
		catalogRepository:  catalogRepository,
		numberFactory:      numberFactory,
		txManager:          txManager,
	}
}

func (s *Service) CreateOrder(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	// номер заказа случайный, при коллизии пробуем ещё раз в новой транзакции
	for attempt := 1; ; attempt++ {
		order, err := s.createOrder(ctx, draft)
		if errors.Is(err, ErrOrderNumberConflict) && attempt < createAttempts {
			continue
		}
		return order, err
	}
}

func (s *Service) createOrder(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	var order *entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		service, err := s.checkReferences(ctx, draft)
		if err != nil {
			return err
		}

		total := service.Price
		if draft.TotalAmount != nil && !draft.TotalAmount.IsNegative() {
			total = *draft.TotalAmount
		}
		total, vat, final := CalculateAmounts(total)

		now := time.Now().UTC()
		orderCreate := entities.OrderCreate{
			ID:            uuid.NewString(),
			Number:        s.numberFactory.Generate(now),
			UserID:        draft.UserID,
			ServiceID:     draft.ServiceID,
			AddressID:     draft.AddressID,
			PaymentMethod: draft.PaymentMethod,
			TotalAmount:   total,
			VAT:           vat,
			FinalAmount:   final,
			ScheduledAt:   draft.ScheduledAt.UTC(),
			Notes:         draft.Notes,
		}

		err = s.repository.Create(ctx, orderCreate)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		err = s.paymentRepository.Create(ctx, entities.Payment{
			OrderID: orderCreate.ID,
			Method:  orderCreate.PaymentMethod,
			Amount:  orderCreate.FinalAmount,
			Status:  entities.PaymentPending,
		})
		if err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		note := "Order created"
		err = s.repository.AppendHistory(ctx, orderCreate.ID, entities.OrderPending, &note)
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		order, err = s.repository.GetByID(ctx, orderCreate.ID)
		if err != nil {
			return fmt.Errorf("reload order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) checkReferences(ctx context.Context, draft entities.OrderDraft) (*entities.CatalogService, error) {
	exists, err := s.catalogRepository.UserExists(ctx, draft.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, ErrUserNotFound
	}

	service, err := s.catalogRepository.GetService(ctx, draft.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("get service: %w", err)
	}

	exists, err = s.catalogRepository.AddressExists(ctx, draft.AddressID)
	if err != nil {
		return nil, fmt.Errorf("check address: %w", err)
	}
	if !exists {
		return nil, ErrAddressNotFound
	}
	return service, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *Service) ListOrders(ctx context.Context, filter entities.OrderFilter) (*entities.OrderPage, error) {
	if filter.Status != nil {
		if _, err := entities.ParseOrderStatus(filter.Status.String()); err != nil {
			return nil, ErrInvalidStatus
		}
	}

	page, err := s.repository.List(ctx, normalizeFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return page, nil
}

// UpdateOrder правит поля заказа и, если передан status, проводит переход
// через координатор в той же транзакции.
func (s *Service) UpdateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || !isValidOrderID(*orderModify.ID) {
		return nil, ErrInvalidOrderID
	}
	if !orderModify.HasFieldChanges() && orderModify.Status == nil {
		return nil, ErrMissingRequiredFields
	}
	if orderModify.ScheduledAt != nil && orderModify.ScheduledAt.IsZero() {
		return nil, ErrInvalidScheduledAt
	}

	req := entities.TransitionRequest{
		OrderID: *orderModify.ID,
		Next:    orderModify.Status,
		Origin:  entities.OriginAPI,
	}
	if err := validateTransitionRequest(req); err != nil {
		return nil, err
	}

	var (
		order   *entities.Order
		outcome transitionOutcome
	)
	err := s.txManager.DoReadCommitted(ctx, func(ctx context.Context) error {
		current, err := s.repository.LockByID(ctx, req.OrderID)
		if err != nil {
			return fmt.Errorf("lock order: %w", err)
		}
		outcome.from = current.Status

		if orderModify.HasFieldChanges() {
			if current.Status.IsTerminal() {
				return fmt.Errorf("%w: order %s is %s", ErrTerminalState, current.ID, current.Status)
			}
			if err := s.checkModifyReferences(ctx, orderModify); err != nil {
				return err
			}
			if err := s.repository.Update(ctx, orderModify); err != nil {
				return fmt.Errorf("update order: %w", err)
			}
		}

		if orderModify.Status != nil {
			outcome.applied, err = s.transition(ctx, current, req)
			if err != nil {
				return err
			}
		}

		order, err = s.repository.GetByID(ctx, req.OrderID)
		if err != nil {
			return fmt.Errorf("reload order: %w", err)
		}
		return nil
	})
	if orderModify.Status != nil {
		s.observe(req, outcome, order, err)
	}
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) checkModifyReferences(ctx context.Context, orderModify entities.OrderModify) error {
	if orderModify.AddressID != nil {
		exists, err := s.catalogRepository.AddressExists(ctx, *orderModify.AddressID)
		if err != nil {
			return fmt.Errorf("check address: %w", err)
		}
		if !exists {
			return ErrAddressNotFound
		}
	}
	if orderModify.ProviderID != nil {
		exists, err := s.catalogRepository.UserExists(ctx, *orderModify.ProviderID)
		if err != nil {
			return fmt.Errorf("check provider: %w", err)
		}
		if !exists {
			return ErrProviderNotFound
		}
	}
	return nil
}

// ChangeStatus ручная смена статуса (PUT /orders/{id}/status).
func (s *Service) ChangeStatus(ctx context.Context, orderID, rawStatus string, note *string) (*entities.TransitionResult, error) {
	status, err := entities.ParseOrderStatus(rawStatus)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	return s.RequestTransition(ctx, entities.TransitionRequest{
		OrderID: orderID,
		Next:    &status,
		Note:    note,
		Origin:  entities.OriginAPI,
	})
}

// CancelOrder заказы не удаляются, DELETE переводит заказ в CANCELLED.
func (s *Service) CancelOrder(ctx context.Context, orderID string, reason *string) (*entities.TransitionResult, error) {
	cancelled := entities.OrderCancelled
	req := entities.TransitionRequest{
		OrderID:            orderID,
		Next:               &cancelled,
		Origin:             entities.OriginAPI,
		CancellationReason: reason,
	}
	if reason != nil {
		note := fmt.Sprintf("Order cancelled: %s", *reason)
		req.Note = &note
	}

	return s.RequestTransition(ctx, req)
}
