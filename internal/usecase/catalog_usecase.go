package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// CatalogUseCase реализует бизнес-логику каталога: категории и товары.
type CatalogUseCase struct {
	productRepo  ProductRepository
	categoryRepo CategoryRepository
	cacheRepo    CacheRepository
	imagesInfra  ImagesInfra
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewCatalogUC(
	productRepo ProductRepository,
	categoryRepo CategoryRepository,
	cacheRepo CacheRepository,
	imagesInfra ImagesInfra,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		imagesInfra:  imagesInfra,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// ListCategories возвращает все категории каталога.
func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

// CreateCategory создает категорию с уникальным url-безопасным слагом.
func (c *CatalogUseCase) CreateCategory(ctx context.Context, req *CreateCategoryReq) (category *domain.Category, err error) {
	const op = "CatalogUseCase.CreateCategory"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrCategoryNameRequired)
	}
	if !slugRe.MatchString(req.Slug) {
		return nil, e.Wrap(op, e.ErrInvalidSlug)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	category, err = c.categoryRepo.Create(ctx, domain.NewCategory(req.Name, req.Slug, req.Description))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// ListProducts возвращает активные товары, новые первыми.
// При фильтре по неизвестному слагу категории возвращается пустой список.
func (c *CatalogUseCase) ListProducts(ctx context.Context, req *ListProductsReq) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	if req.CategorySlug == "" {
		products, err := c.productRepo.ListActive(ctx)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		return products, nil
	}

	category, err := c.categoryRepo.GetBySlug(ctx, req.CategorySlug)
	if err != nil {
		if errors.Is(err, e.ErrCategoryNotFound) {
			return []domain.Product{}, nil
		}
		return nil, e.Wrap(op, err)
	}

	products, err := c.productRepo.ListActiveByCategory(ctx, category.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// GetProduct возвращает товар по идентификатору, сначала заглядывая в кэш.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	cached, err := c.cacheRepo.GetProduct(ctx, id)
	if err != nil {
		c.logger.Warnf("product cache lookup failed: %v", e.Wrap(op, err))
	}
	if cached != nil {
		return cached, nil
	}

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Фоновое добавление товара в кэш
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := c.cacheRepo.SetProduct(bgCtx, product); err != nil {
			c.logger.Warnf("failed to cache product in background: %v", e.Wrap(op, err))
		}
	}()

	return product, nil
}

// CreateProduct создает товар, при необходимости загружая изображение в хранилище.
func (c *CatalogUseCase) CreateProduct(ctx context.Context, req *CreateProductReq) (product *domain.Product, err error) {
	const op = "CatalogUseCase.CreateProduct"

	if err = c.validateProduct(req.Name, req.Price, req.Quantity); err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		imageRes *UploadImageRes
		imageURL *string
	)
	if req.Image != nil {
		imageRes, err = c.imagesInfra.UploadImage(ctx, NewUploadImageReq(req.Name, *req.Image))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		imageURL = &imageRes.URL
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции и очистка загруженного изображения
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}
			if imageRes != nil {
				c.logger.Warnf(
					"cleaning up orphaned image after transaction failure. product_name: %s, error: %v",
					req.Name, e.Wrap(op, err),
				)
				c.imagesInfra.CleanupImage(imageRes.Key)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	// Категория должна существовать до вставки товара
	if _, err = c.categoryRepo.GetByID(ctx, req.CategoryID); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err = c.productRepo.Create(ctx, domain.NewProduct(
		req.Name, req.Description, req.Price, req.Quantity, req.CategoryID, imageURL,
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// UpdateProduct частично обновляет товар; nil-поля запроса не изменяются.
func (c *CatalogUseCase) UpdateProduct(ctx context.Context, req *UpdateProductReq) (product *domain.Product, err error) {
	const op = "CatalogUseCase.UpdateProduct"

	current, err := c.productRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Description != nil {
		current.Description = req.Description
	}
	if req.Price != nil {
		current.Price = *req.Price
	}
	if req.Quantity != nil {
		current.Quantity = *req.Quantity
	}
	if req.CategoryID != nil {
		current.CategoryID = *req.CategoryID
	}

	if err = c.validateProduct(current.Name, current.Price, current.Quantity); err != nil {
		return nil, e.Wrap(op, err)
	}

	var imageRes *UploadImageRes
	if req.Image != nil {
		imageRes, err = c.imagesInfra.UploadImage(ctx, NewUploadImageReq(current.Name, *req.Image))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		current.ImageURL = &imageRes.URL
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}
			if imageRes != nil {
				c.imagesInfra.CleanupImage(imageRes.Key)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	product, err = c.productRepo.Update(ctx, current)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	if cacheErr := c.cacheRepo.DeleteProducts(ctx, []string{product.ID}); cacheErr != nil {
		c.logger.Warnf("failed to invalidate product cache: %v", e.Wrap(op, cacheErr))
	}

	return product, nil
}

// DeleteProduct мягко удаляет товар: запись остается, товар скрывается из каталога.
func (c *CatalogUseCase) DeleteProduct(ctx context.Context, id string) (err error) {
	const op = "CatalogUseCase.DeleteProduct"

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = c.productRepo.Archive(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	if cacheErr := c.cacheRepo.DeleteProducts(ctx, []string{id}); cacheErr != nil {
		c.logger.Warnf("failed to invalidate product cache: %v", e.Wrap(op, cacheErr))
	}

	return nil
}

// validateProduct проверяет корректность данных товара.
func (c *CatalogUseCase) validateProduct(name string, price decimal.Decimal, quantity int32) error {
	if strings.TrimSpace(name) == "" {
		return e.ErrProductNameRequired
	}

	if price.LessThanOrEqual(decimal.Zero) {
		return e.ErrInvalidPrice
	}

	if quantity < 0 {
		return e.ErrQuantityMustBePositive
	}

	return nil
}
