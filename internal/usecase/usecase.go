package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
)

type OrderUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error)
	SetStatus(ctx context.Context, req *SetStatusReq) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id string) (*OrderWithItems, error)
}

type CatalogUC interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, req *CreateCategoryReq) (*domain.Category, error)
	ListProducts(ctx context.Context, req *ListProductsReq) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	CreateProduct(ctx context.Context, req *CreateProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, req *UpdateProductReq) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	EventOrderCreated       OutboxEventType = "order.created"
	EventOrderStatusChanged OutboxEventType = "order.status_changed"
)

// OutboxEvent — запись таблицы outbox_events, публикуемая воркером в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}
