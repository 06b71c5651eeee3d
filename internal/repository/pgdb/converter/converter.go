//go:generate goverter gen github.com/DRSN-tech/storefront-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/shopspring/decimal"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertDecimal
// goverter:extend ConvertDecimalString
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
// goverter:converter
type CategoryConverter interface {
	ToModel(entity *domain.Category) *CategoryModel
	ToEntity(model *CategoryModel) *domain.Category
	ToArrEntity(models []CategoryModel) []domain.Category
}

// OrderConverter преобразует сущности Order/OrderItem между domain и моделями PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertDecimal
// goverter:extend ConvertDecimalString
// goverter:extend ConvertOrderStatus
// goverter:extend ConvertOrderStatusString
type OrderConverter interface {
	ToModel(entity *domain.Order) *OrderModel
	ToEntity(model *OrderModel) *domain.Order
	ToArrEntity(models []OrderModel) []domain.Order
	ToItemModel(entity *domain.OrderItem) *OrderItemModel
	ToItemEntity(model *OrderItemModel) *domain.OrderItem
	ToArrItemEntity(models []OrderItemModel) []domain.OrderItem
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutboxStatus
// goverter:extend ConvertOutboxStatusString
// goverter:extend ConvertOutboxEventType
// goverter:extend ConvertOutboxEventTypeString
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

// ConvertDecimal парсит строку numeric из PostgreSQL в точное десятичное значение.
// Значение, прошедшее через БД, всегда корректно, поэтому ошибка парсинга невозможна.
func ConvertDecimal(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func ConvertDecimalString(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func ConvertOrderStatus(s string) domain.Status {
	return domain.Status(s)
}

func ConvertOrderStatusString(s domain.Status) string {
	return string(s)
}

func ConvertOutboxStatus(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertOutboxStatusString(s usecase.OutboxStatus) string {
	return string(s)
}

func ConvertOutboxEventType(s string) usecase.OutboxEventType {
	return usecase.OutboxEventType(s)
}

func ConvertOutboxEventTypeString(t usecase.OutboxEventType) string {
	return string(t)
}
