package cart

import (
	"path/filepath"
	"testing"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStorage — хранилище корзины в памяти для тестов менеджера.
type memStorage struct {
	lines []Line
	saves int
}

func (s *memStorage) Load() ([]Line, error) {
	return append([]Line(nil), s.lines...), nil
}

func (s *memStorage) Save(lines []Line) error {
	s.lines = append([]Line(nil), lines...)
	s.saves++
	return nil
}

func testProduct(id, name, price string) *domain.Product {
	return &domain.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Quantity: 100,
		IsActive: true,
	}
}

func TestManagerAddItem(t *testing.T) {
	storage := &memStorage{}
	m, err := NewManager(storage)
	require.NoError(t, err)

	require.NoError(t, m.AddItem(testProduct("p1", "Sneakers", "19.99")))
	require.NoError(t, m.AddItem(testProduct("p2", "Cap", "5.00")))

	items := m.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Sneakers", items[0].Name)
	assert.Equal(t, int32(1), items[0].Quantity)

	// Повторное добавление схлопывается в количество, а не в новую позицию
	require.NoError(t, m.AddItem(testProduct("p1", "Sneakers", "19.99")))

	items = m.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int32(2), items[0].Quantity)

	assert.Equal(t, "44.98", m.Total().StringFixed(2))
	assert.Equal(t, 3, storage.saves)
}

func TestManagerPriceSnapshot(t *testing.T) {
	m, err := NewManager(&memStorage{})
	require.NoError(t, err)

	product := testProduct("p1", "Sneakers", "19.99")
	require.NoError(t, m.AddItem(product))

	// Изменение товара в каталоге не трогает снимок в корзине
	product.Price = decimal.RequireFromString("99.99")
	product.Name = "Renamed"

	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Sneakers", items[0].Name)
	assert.Equal(t, "19.99", items[0].Price.StringFixed(2))
}

func TestManagerChangeQuantity(t *testing.T) {
	m, err := NewManager(&memStorage{})
	require.NoError(t, err)

	require.NoError(t, m.AddItem(testProduct("p1", "Sneakers", "19.99")))
	require.NoError(t, m.ChangeQuantity("p1", 4))
	assert.Equal(t, int32(5), m.Items()[0].Quantity)

	require.NoError(t, m.ChangeQuantity("p1", -3))
	assert.Equal(t, int32(2), m.Items()[0].Quantity)

	// Снижение до нуля и ниже удаляет позицию целиком
	require.NoError(t, m.ChangeQuantity("p1", -10))
	assert.Empty(t, m.Items())

	// Неизвестный товар — no-op
	require.NoError(t, m.ChangeQuantity("ghost", 1))
	assert.Empty(t, m.Items())
}

func TestManagerRemoveAndClear(t *testing.T) {
	m, err := NewManager(&memStorage{})
	require.NoError(t, err)

	require.NoError(t, m.AddItem(testProduct("p1", "Sneakers", "19.99")))
	require.NoError(t, m.AddItem(testProduct("p2", "Cap", "5.00")))

	require.NoError(t, m.RemoveItem("p1"))
	items := m.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)

	require.NoError(t, m.Clear())
	assert.Empty(t, m.Items())
	assert.Equal(t, "0.00", m.Total().StringFixed(2))
}

func TestManagerTotalEmpty(t *testing.T) {
	m, err := NewManager(&memStorage{})
	require.NoError(t, err)

	assert.True(t, m.Total().IsZero())
}

func TestManagerSubscribe(t *testing.T) {
	m, err := NewManager(&memStorage{})
	require.NoError(t, err)

	var notified int
	var seenTotal decimal.Decimal

	// Подписчик читает состояние через Items/Total прямо из уведомления
	unsubscribe := m.Subscribe(func() {
		notified++
		seenTotal = m.Total()
	})

	require.NoError(t, m.AddItem(testProduct("p1", "Sneakers", "19.99")))
	assert.Equal(t, 1, notified)
	assert.Equal(t, "19.99", seenTotal.StringFixed(2))

	require.NoError(t, m.ChangeQuantity("p1", 1))
	assert.Equal(t, 2, notified)
	assert.Equal(t, "39.98", seenTotal.StringFixed(2))

	unsubscribe()
	require.NoError(t, m.Clear())
	assert.Equal(t, 2, notified)
}

func TestManagerPersistsAcrossRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")

	m, err := NewManager(NewFileStorage(path))
	require.NoError(t, err)
	require.NoError(t, m.AddItem(testProduct("p1", "Sneakers", "19.99")))
	require.NoError(t, m.AddItem(testProduct("p1", "Sneakers", "19.99")))

	// Новый менеджер поверх того же файла видит сохраненную корзину
	restored, err := NewManager(NewFileStorage(path))
	require.NoError(t, err)

	items := restored.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p1", items[0].ProductID)
	assert.Equal(t, int32(2), items[0].Quantity)
	assert.Equal(t, "39.98", restored.Total().StringFixed(2))
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	storage := NewFileStorage(path)

	// Отсутствие файла — пустая корзина
	lines, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, lines)

	imageURL := "http://minio.local/images/p1.jpg"
	saved := []Line{
		NewLine("p1", "Sneakers", decimal.RequireFromString("19.99"), &imageURL, 2),
		NewLine("p2", "Cap", decimal.RequireFromString("5.00"), nil, 1),
	}
	require.NoError(t, storage.Save(saved))

	loaded, err := storage.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "p1", loaded[0].ProductID)
	assert.Equal(t, "19.99", loaded[0].Price.StringFixed(2))
	require.NotNil(t, loaded[0].ImageURL)
	assert.Equal(t, imageURL, *loaded[0].ImageURL)
	assert.Nil(t, loaded[1].ImageURL)

	// Перезапись, а не дозапись
	require.NoError(t, storage.Save(nil))
	loaded, err = storage.Load()
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
