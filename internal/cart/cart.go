// Package cart реализует корзину покупателя: локально персистентный список
// позиций с подпиской на изменения для всех заинтересованных представлений.
package cart

import "github.com/shopspring/decimal"

// Line — позиция корзины. Название, цена и изображение фиксируются
// в момент добавления и не меняются при изменении товара в каталоге.
type Line struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  *string         `json:"image_url,omitempty"`
	Quantity  int32           `json:"quantity"`
}

func NewLine(productID, name string, price decimal.Decimal, imageURL *string, quantity int32) Line {
	return Line{
		ProductID: productID,
		Name:      name,
		Price:     price,
		ImageURL:  imageURL,
		Quantity:  quantity,
	}
}

// Storage персистирует список позиций корзины под единственным ключом.
type Storage interface {
	Load() ([]Line, error)
	Save(lines []Line) error
}
