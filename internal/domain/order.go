package domain

import (
	"time"

	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// Status — замкнутое перечисление статусов заказа.
// Переходы не ограничены: администратор может перевести заказ
// из любого статуса в любой другой, включая обратные переходы.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

// ParseStatus проверяет строку на принадлежность перечислению статусов.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusCompleted, StatusCancelled:
		return Status(s), nil
	default:
		return "", e.ErrInvalidOrderStatus
	}
}

// Order описывает оформленный заказ
type Order struct {
	ID            string
	CustomerName  string
	CustomerEmail string
	TotalAmount   decimal.Decimal
	Status        Status
	CreatedAt     time.Time
}

func NewOrder(customerName string, customerEmail string, totalAmount decimal.Decimal) *Order {
	return &Order{
		CustomerName:  customerName,
		CustomerEmail: customerEmail,
		TotalAmount:   totalAmount,
		Status:        StatusPending,
	}
}

// OrderItem — одна позиция заказа. Цена фиксируется на момент оформления,
// последующие изменения цены товара не влияют на историю заказов.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int32
	Price     decimal.Decimal
}

func NewOrderItem(orderID string, productID string, quantity int32, price decimal.Decimal) *OrderItem {
	return &OrderItem{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}
}
