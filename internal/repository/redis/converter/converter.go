//go:generate goverter gen github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter

package converter

import (
	"time"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertDecimal
// goverter:extend ConvertDecimalString
type ProductCacheConverter interface {
	// goverter:map Price | ConvertDecimalString
	ToRedisModel(entity *domain.Product) *ProductRedisModel
	// goverter:map Price | ConvertDecimal
	ToEntity(model *ProductRedisModel) *domain.Product
}

func ConvertTime(t time.Time) time.Time {
	return t
}

// ConvertDecimal парсит денежное значение из кэша.
// Значения пишутся этим же конвертером, поэтому ошибка парсинга исключена.
func ConvertDecimal(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func ConvertDecimalString(d decimal.Decimal) string {
	return d.StringFixed(2)
}
