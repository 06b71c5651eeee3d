package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/jackc/pgx/v5"
)

// nopLogger глушит логи в тестах.
type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// fakeTx подменяет pgx.Tx внутри транзакционной обертки.
// Остальные методы pgx.Tx в тестах не вызываются.
type fakeTx struct {
	pgx.Tx

	committed  bool
	rolledBack bool
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return nil
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	f.rolledBack = true
	return nil
}

// fakeTxPool выдает fakeTx вместо соединения с базой.
type fakeTxPool struct {
	lastTx *fakeTx
}

func (f *fakeTxPool) Begin(ctx context.Context) (pgx.Tx, error) {
	f.lastTx = &fakeTx{}
	return f.lastTx, nil
}

func (f *fakeTxPool) BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error) {
	return f.Begin(ctx)
}

// fakeOrderRepo хранит заказы и позиции в памяти.
type fakeOrderRepo struct {
	orders []*domain.Order
	items  []*domain.OrderItem

	createErr     error
	createItemErr error
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	created := *order
	created.ID = fmt.Sprintf("order-%d", len(f.orders)+1)
	created.CreatedAt = time.Now().UTC()
	f.orders = append(f.orders, &created)

	res := created
	return &res, nil
}

func (f *fakeOrderRepo) CreateItem(ctx context.Context, item *domain.OrderItem) (*domain.OrderItem, error) {
	if f.createItemErr != nil {
		return nil, f.createItemErr
	}

	created := *item
	created.ID = fmt.Sprintf("item-%d", len(f.items)+1)
	f.items = append(f.items, &created)

	res := created
	return &res, nil
}

func (f *fakeOrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(f.orders))
	for i := len(f.orders) - 1; i >= 0; i-- {
		orders = append(orders, *f.orders[i])
	}
	return orders, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	for _, order := range f.orders {
		if order.ID == id {
			res := *order
			return &res, nil
		}
	}
	return nil, e.ErrOrderNotFound
}

func (f *fakeOrderRepo) ListItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	var items []domain.OrderItem
	for _, item := range f.items {
		if item.OrderID == orderID {
			items = append(items, *item)
		}
	}
	return items, nil
}

func (f *fakeOrderRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	for _, order := range f.orders {
		if order.ID == id {
			order.Status = status
			res := *order
			return &res, nil
		}
	}
	return nil, e.ErrOrderNotFound
}

// fakeProductRepo хранит товары в памяти; остаток живет в Quantity.
type fakeProductRepo struct {
	products map[string]*domain.Product

	updateErr error
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]*domain.Product)}
	for _, p := range products {
		repo.products[p.ID] = p
	}
	return repo
}

func (f *fakeProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	created := *product
	created.ID = fmt.Sprintf("product-%d", len(f.products)+1)
	created.CreatedAt = time.Now().UTC()
	f.products[created.ID] = &created

	res := created
	return &res, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	if _, ok := f.products[product.ID]; !ok {
		return nil, e.ErrProductNotFound
	}

	updated := *product
	f.products[product.ID] = &updated

	res := updated
	return &res, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	res := *product
	return &res, nil
}

func (f *fakeProductRepo) ListActive(ctx context.Context) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(f.products))
	for _, p := range f.products {
		if p.IsActive {
			products = append(products, *p)
		}
	}
	return products, nil
}

func (f *fakeProductRepo) ListActiveByCategory(ctx context.Context, categoryID string) ([]domain.Product, error) {
	var products []domain.Product
	for _, p := range f.products {
		if p.IsActive && p.CategoryID == categoryID {
			products = append(products, *p)
		}
	}
	return products, nil
}

func (f *fakeProductRepo) Archive(ctx context.Context, id string) error {
	product, ok := f.products[id]
	if !ok {
		return e.ErrProductNotFound
	}

	product.IsActive = false
	return nil
}

func (f *fakeProductRepo) DecrementStock(ctx context.Context, id string, quantity int32) (bool, error) {
	product, ok := f.products[id]
	if !ok || product.Quantity < quantity {
		return false, nil
	}

	product.Quantity -= quantity
	return true, nil
}

// fakeCategoryRepo хранит категории в памяти.
type fakeCategoryRepo struct {
	categories []*domain.Category
}

func (f *fakeCategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	for _, c := range f.categories {
		if c.Slug == category.Slug {
			return nil, e.ErrSlugTaken
		}
	}

	created := *category
	created.ID = fmt.Sprintf("category-%d", len(f.categories)+1)
	f.categories = append(f.categories, &created)

	res := created
	return &res, nil
}

func (f *fakeCategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	categories := make([]domain.Category, 0, len(f.categories))
	for _, c := range f.categories {
		categories = append(categories, *c)
	}
	return categories, nil
}

func (f *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			res := *c
			return &res, nil
		}
	}
	return nil, e.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	for _, c := range f.categories {
		if c.Slug == slug {
			res := *c
			return &res, nil
		}
	}
	return nil, e.ErrCategoryNotFound
}

// fakeCacheRepo отслеживает обращения к кэшу товаров.
type fakeCacheRepo struct {
	mu sync.Mutex

	products map[string]*domain.Product
	deleted  []string
	setCalls int

	getErr    error
	deleteErr error
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{products: make(map[string]*domain.Product)}
}

func (f *fakeCacheRepo) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}

	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}

	res := *product
	return &res, nil
}

func (f *fakeCacheRepo) SetProduct(ctx context.Context, product *domain.Product) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	cached := *product
	f.products[cached.ID] = &cached
	f.setCalls++
	return nil
}

func (f *fakeCacheRepo) DeleteProducts(ctx context.Context, ids []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}

	for _, id := range ids {
		delete(f.products, id)
	}
	f.deleted = append(f.deleted, ids...)
	return nil
}

func (f *fakeCacheRepo) setCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.setCalls
}

func (f *fakeCacheRepo) deletedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

// fakeOutboxRepo накапливает события вместо таблицы outbox_events.
type fakeOutboxRepo struct {
	events []*OutboxEvent

	createErr error
}

func (f *fakeOutboxRepo) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}

	created := *event
	created.ID = int64(len(f.events) + 1)
	f.events = append(f.events, &created)

	res := created
	return &res, nil
}

func (f *fakeOutboxRepo) GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error) {
	var batch []*OutboxEvent
	for _, event := range f.events {
		if event.Status != Pending {
			continue
		}
		event.Status = Processing
		batch = append(batch, event)
		if len(batch) == limit {
			break
		}
	}
	return batch, nil
}

func (f *fakeOutboxRepo) MarkAsProcessed(ctx context.Context, id int64) error {
	for _, event := range f.events {
		if event.ID == id {
			event.Status = Processed
			return nil
		}
	}
	return fmt.Errorf("event %d not found", id)
}

// fakeImagesInfra отслеживает загрузку и очистку изображений.
type fakeImagesInfra struct {
	uploaded []string
	cleaned  []string

	uploadErr error
}

func (f *fakeImagesInfra) UploadImage(ctx context.Context, req *UploadImageReq) (*UploadImageRes, error) {
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}

	key := fmt.Sprintf("products/%s-%d.jpg", req.ProductName, len(f.uploaded)+1)
	f.uploaded = append(f.uploaded, key)
	return NewUploadImageRes(key, "http://minio.local/images/"+key), nil
}

func (f *fakeImagesInfra) CleanupImage(key string) {
	f.cleaned = append(f.cleaned, key)
}
