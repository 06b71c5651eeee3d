package domain

import (
	"testing"

	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	valid := []string{"pending", "processing", "shipped", "completed", "cancelled"}
	for _, s := range valid {
		status, err := ParseStatus(s)
		require.NoError(t, err, s)
		assert.Equal(t, Status(s), status)
	}

	invalid := []string{"", "delivered", "PENDING", "Shipped", "pending ", "canceled"}
	for _, s := range invalid {
		_, err := ParseStatus(s)
		require.ErrorIs(t, err, e.ErrInvalidOrderStatus, s)
	}
}

func TestNewOrder(t *testing.T) {
	order := NewOrder("Jane Doe", "jane@example.com", decimal.RequireFromString("75.00"))

	assert.Equal(t, StatusPending, order.Status)
	assert.Empty(t, order.ID)
	assert.Equal(t, "75.00", order.TotalAmount.StringFixed(2))
}

func TestProductInStock(t *testing.T) {
	product := &Product{Quantity: 3}

	assert.True(t, product.InStock(1))
	assert.True(t, product.InStock(3))
	assert.False(t, product.InStock(4))
}
