package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/tr"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет шапку заказа и возвращает её с заполненными id и created_at.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := o.conv.ToModel(order)
	model.ID = uuid.NewString()

	query := `
		INSERT INTO orders (id, customer_name, customer_email, total_amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.ID,
		model.CustomerName,
		model.CustomerEmail,
		model.TotalAmount,
		model.Status,
	).Scan(&model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model), nil
}

// CreateItem сохраняет позицию заказа с ценой, зафиксированной на момент оформления.
func (o *OrderRepo) CreateItem(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := o.conv.ToItemModel(item)
	model.ID = uuid.NewString()

	query := `
		INSERT INTO order_items (id, order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4, $5);
	`

	if _, err := tx.Exec(ctx, query,
		model.ID,
		model.OrderID,
		model.ProductID,
		model.Quantity,
		model.Price,
	); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToItemEntity(model), nil
}

// List возвращает все заказы, начиная с самых свежих.
func (o *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT id, customer_name, customer_email, total_amount::text, status, created_at
		FROM orders
		ORDER BY created_at DESC
	`

	rows, err := o.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.OrderModel, 0)
	for rows.Next() {
		var model converter.OrderModel
		if err := rows.Scan(
			&model.ID, &model.CustomerName, &model.CustomerEmail,
			&model.TotalAmount, &model.Status, &model.CreatedAt,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToArrEntity(models), nil
}

func (o *OrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT id, customer_name, customer_email, total_amount::text, status, created_at
		FROM orders
		WHERE id = $1
	`

	var model converter.OrderModel
	err := o.pool.QueryRow(ctx, query, id).
		Scan(
			&model.ID, &model.CustomerName, &model.CustomerEmail,
			&model.TotalAmount, &model.Status, &model.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model), nil
}

// ListItems возвращает позиции одного заказа в порядке их добавления.
func (o *OrderRepo) ListItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, price::text
		FROM order_items
		WHERE order_id = $1
	`

	rows, err := o.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]converter.OrderItemModel, 0)
	for rows.Next() {
		var model converter.OrderItemModel
		if err := rows.Scan(
			&model.ID, &model.OrderID, &model.ProductID, &model.Quantity, &model.Price,
		); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToArrItemEntity(models), nil
}

// UpdateStatus переводит заказ в новый статус и возвращает обновлённую шапку.
func (o *OrderRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE orders
		SET status = $2
		WHERE id = $1
		RETURNING id, customer_name, customer_email, total_amount::text, status, created_at;
	`

	var model converter.OrderModel
	err = tx.QueryRow(ctx, query, id, converter.ConvertOrderStatusString(status)).
		Scan(
			&model.ID, &model.CustomerName, &model.CustomerEmail,
			&model.TotalAmount, &model.Status, &model.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model), nil
}
