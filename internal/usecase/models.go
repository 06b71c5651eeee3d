package usecase

import (
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// ORDER USECASE

// OrderLine — одна позиция корзины в запросе на оформление заказа.
// Цена — снимок на момент добавления в корзину, ей доверяем как есть.
type OrderLine struct {
	ProductID string
	Quantity  int32
	Price     decimal.Decimal
}

// PlaceOrderReq — запрос на оформление заказа из корзины.
type PlaceOrderReq struct {
	CustomerName  string
	CustomerEmail string
	Lines         []OrderLine
	TotalAmount   decimal.Decimal
}

// SetStatusReq — запрос на смену статуса заказа администратором.
type SetStatusReq struct {
	OrderID string
	Status  string
}

// OrderWithItems — заказ вместе с его позициями.
type OrderWithItems struct {
	Order *domain.Order
	Items []domain.OrderItem
}

// CATALOG USECASE

type CreateCategoryReq struct {
	Name        string
	Slug        string
	Description *string
}

// ListProductsReq — фильтр каталога. Пустой CategorySlug означает весь каталог.
type ListProductsReq struct {
	CategorySlug string
}

type CreateProductReq struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Quantity    int32
	CategoryID  string
	Image       *ProductImage
}

// UpdateProductReq — частичное обновление товара: nil-поля не трогаем.
type UpdateProductReq struct {
	ID          string
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int32
	CategoryID  *string
	Image       *ProductImage
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// INFRASTRUCTURE

type UploadImageReq struct {
	ProductName string
	Image       ProductImage
}

type UploadImageRes struct {
	Key string
	URL string
}

type WriteRawMessageReq struct {
	Key     string
	Payload []byte
}

// EVENTS

// OrderEventPayload — JSON-тело события заказа для Kafka.
type OrderEventPayload struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	Total      string    `json:"total"`
}

// MAPPERS

func NewPlaceOrderReq(name string, email string, lines []OrderLine, total decimal.Decimal) *PlaceOrderReq {
	return &PlaceOrderReq{
		CustomerName:  name,
		CustomerEmail: email,
		Lines:         lines,
		TotalAmount:   total,
	}
}

func NewSetStatusReq(orderID string, status string) *SetStatusReq {
	return &SetStatusReq{
		OrderID: orderID,
		Status:  status,
	}
}

func NewOrderWithItems(order *domain.Order, items []domain.OrderItem) *OrderWithItems {
	return &OrderWithItems{
		Order: order,
		Items: items,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewUploadImageReq(productName string, image ProductImage) *UploadImageReq {
	return &UploadImageReq{
		ProductName: productName,
		Image:       image,
	}
}

func NewUploadImageRes(key string, url string) *UploadImageRes {
	return &UploadImageRes{
		Key: key,
		URL: url,
	}
}

func NewWriteRawMessageReq(key string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		Key:     key,
		Payload: payload,
	}
}
