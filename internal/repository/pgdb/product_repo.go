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

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// Create сохраняет новый продукт и возвращает его с заполненными id и created_at.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	model.ID = uuid.NewString()

	query := `
		INSERT INTO products (id, name, description, price, quantity, category_id, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.ID,
		model.Name,
		model.Description,
		model.Price,
		model.Quantity,
		model.CategoryID,
		model.ImageURL,
		model.IsActive,
	).Scan(&model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// Update перезаписывает изменяемые поля продукта целиком.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		UPDATE products
		SET name = $2,
			description = $3,
			price = $4,
			quantity = $5,
			category_id = $6,
			image_url = $7,
			is_active = $8
		WHERE id = $1
		RETURNING created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.ID,
		model.Name,
		model.Description,
		model.Price,
		model.Quantity,
		model.CategoryID,
		model.ImageURL,
		model.IsActive,
	).Scan(&model.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT id, name, description, price::text, quantity, category_id, image_url, is_active, created_at
		FROM products
		WHERE id = $1
	`

	var model converter.ProductModel
	err := p.pool.QueryRow(ctx, query, id).
		Scan(
			&model.ID, &model.Name, &model.Description, &model.Price,
			&model.Quantity, &model.CategoryID, &model.ImageURL,
			&model.IsActive, &model.CreatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// ListActive возвращает все продукты, доступные в витрине.
func (p *ProductRepo) ListActive(ctx context.Context) ([]domain.Product, error) {
	query := `
		SELECT id, name, description, price::text, quantity, category_id, image_url, is_active, created_at
		FROM products
		WHERE is_active = TRUE
		ORDER BY created_at DESC
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := p.scanProducts(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// ListActiveByCategory возвращает активные продукты одной категории.
func (p *ProductRepo) ListActiveByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	query := `
		SELECT id, name, description, price::text, quantity, category_id, image_url, is_active, created_at
		FROM products
		WHERE is_active = TRUE AND category_id = $1
		ORDER BY created_at DESC
	`

	rows, err := p.pool.Query(ctx, query, categoryID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := p.scanProducts(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// Archive скрывает продукт из витрины, не удаляя строку:
// на него по-прежнему ссылаются позиции уже оформленных заказов.
func (p *ProductRepo) Archive(ctx context.Context, id string) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `UPDATE products SET is_active = FALSE WHERE id = $1`

	result, err := tx.Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

// DecrementStock атомарно списывает остаток, только если его хватает.
// Возвращает false, когда остатка недостаточно и строка не изменилась.
func (p *ProductRepo) DecrementStock(ctx context.Context, id string, quantity int32) (bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products
		SET quantity = quantity - $2
		WHERE id = $1 AND quantity >= $2
	`

	result, err := tx.Exec(ctx, query, id, quantity)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (p *ProductRepo) scanProducts(rows pgx.Rows) ([]converter.ProductModel, error) {
	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := rows.Scan(
			&model.ID, &model.Name, &model.Description, &model.Price,
			&model.Quantity, &model.CategoryID, &model.ImageURL,
			&model.IsActive, &model.CreatedAt,
		); err != nil {
			return nil, err
		}

		models = append(models, model)
	}

	return models, rows.Err()
}
