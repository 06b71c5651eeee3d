package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// OrderUseCase реализует оформление заказов и административную смену статусов.
type OrderUseCase struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	cacheRepo   CacheRepository
	logger      logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	productRepo ProductRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		cacheRepo:   cacheRepo,
		logger:      logger,
	}
}

// PlaceOrder превращает снимок корзины в записи Order и OrderItem и списывает
// остатки товаров. Вся последовательность выполняется в одной транзакции:
// сбой на любом шаге откатывает заказ целиком.
//
// Нехватка остатка намеренно не считается ошибкой: позиция заказа создается,
// списание пропускается. Оформление никогда не блокируется гонкой за остаток.
func (o *OrderUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (order *domain.Order, err error) {
	const op = "OrderUseCase.PlaceOrder"

	// Валидация данных до какой-либо записи
	if err = o.validatePlaceOrder(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	order, err = o.orderRepo.Create(ctx, domain.NewOrder(req.CustomerName, req.CustomerEmail, req.TotalAmount))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	for _, line := range req.Lines {
		if _, err = o.orderRepo.CreateItem(ctx, domain.NewOrderItem(order.ID, line.ProductID, line.Quantity, line.Price)); err != nil {
			return nil, e.Wrap(op, err)
		}

		var applied bool
		applied, err = o.productRepo.DecrementStock(ctx, line.ProductID, line.Quantity)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		if !applied {
			o.logger.Warnf(
				"stock not decremented: order_id=%s, product_id=%s, qty=%d",
				order.ID, line.ProductID, line.Quantity,
			)
		}
	}

	if err = o.enqueueOrderEvent(ctx, EventOrderCreated, order); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Коммит изменений в бд
	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	// Сумме заказа доверяем как прислал клиент, но расхождение фиксируем в логах
	if computed := o.computeTotal(req.Lines); !computed.Equal(req.TotalAmount) {
		o.logger.Warnf(
			"order total mismatch: order_id=%s, supplied=%s, computed=%s",
			order.ID, req.TotalAmount.StringFixed(2), computed.StringFixed(2),
		)
	}

	// Удаление из кэша товаров с измененными остатками
	ids := make([]string, 0, len(req.Lines))
	for _, line := range req.Lines {
		ids = append(ids, line.ProductID)
	}
	if cacheErr := o.cacheRepo.DeleteProducts(ctx, ids); cacheErr != nil {
		o.logger.Warnf("failed to invalidate product cache: %v", e.Wrap(op, cacheErr))
	}

	return order, nil
}

// SetStatus переводит заказ в указанный статус. Значение вне перечисления
// отклоняется на границе; граф переходов не ограничивается.
func (o *OrderUseCase) SetStatus(ctx context.Context, req *SetStatusReq) (order *domain.Order, err error) {
	const op = "OrderUseCase.SetStatus"

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	order, err = o.orderRepo.UpdateStatus(ctx, req.OrderID, status)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = o.enqueueOrderEvent(ctx, EventOrderStatusChanged, order); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// ListOrders возвращает все заказы, новые первыми.
func (o *OrderUseCase) ListOrders(ctx context.Context) ([]domain.Order, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := o.orderRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// GetOrder возвращает заказ вместе с его позициями.
func (o *OrderUseCase) GetOrder(ctx context.Context, id string) (*OrderWithItems, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	items, err := o.orderRepo.ListItems(ctx, order.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewOrderWithItems(order, items), nil
}

// enqueueOrderEvent кладет событие заказа в outbox в рамках текущей транзакции.
func (o *OrderUseCase) enqueueOrderEvent(ctx context.Context, eventType OutboxEventType, order *domain.Order) error {
	eventID := uuid.NewString()

	payload, err := json.Marshal(OrderEventPayload{
		EventID:    eventID,
		EventType:  string(eventType),
		OccurredAt: time.Now().UTC(),
		OrderID:    order.ID,
		Status:     string(order.Status),
		Total:      order.TotalAmount.StringFixed(2),
	})
	if err != nil {
		return err
	}

	_, err = o.outboxRepo.Create(ctx, &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   order.ID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now().UTC(),
	})

	return err
}

// computeTotal считает сумму заказа по позициям в точной десятичной арифметике.
func (o *OrderUseCase) computeTotal(lines []OrderLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt32(line.Quantity)))
	}

	return total
}

// validatePlaceOrder проверяет корректность входных данных запроса на оформление заказа.
func (o *OrderUseCase) validatePlaceOrder(req *PlaceOrderReq) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return e.ErrCustomerNameRequired
	}

	if strings.TrimSpace(req.CustomerEmail) == "" {
		return e.ErrCustomerEmailRequired
	}

	if len(req.Lines) == 0 {
		return e.ErrEmptyOrder
	}

	for _, line := range req.Lines {
		if line.Quantity <= 0 {
			return e.ErrQuantityMustBePositive
		}
	}

	return nil
}
