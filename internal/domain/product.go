package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product описывает товар каталога
type Product struct {
	ID          string
	Name        string
	Description *string
	Price       decimal.Decimal // Денежные суммы храним как точные десятичные значения
	Quantity    int32           // Остаток на складе, не может быть отрицательным
	CategoryID  string
	ImageURL    *string
	IsActive    bool // Мягкое удаление: неактивный товар скрыт из каталога
	CreatedAt   time.Time
}

func NewProduct(name string, description *string, price decimal.Decimal, quantity int32, categoryID string, imageURL *string) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		CategoryID:  categoryID,
		ImageURL:    imageURL,
		IsActive:    true,
	}
}

// InStock сообщает, достаточно ли остатка для указанного количества.
func (p *Product) InStock(quantity int32) bool {
	return p.Quantity >= quantity
}
