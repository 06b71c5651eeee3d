package cart

import (
	"sync"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// Manager владеет состоянием корзины. Все мутации проходят через его методы:
// каждая сначала персистирует обновлённый список, затем оповещает подписчиков,
// чтобы те перечитали авторитетное состояние.
type Manager struct {
	mu          sync.Mutex
	lines       []Line
	storage     Storage
	subscribers map[int64]func()
	nextSubID   int64
}

func NewManager(storage Storage) (*Manager, error) {
	const op = "cart.NewManager"

	lines, err := storage.Load()
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &Manager{
		lines:       lines,
		storage:     storage,
		subscribers: make(map[int64]func()),
	}, nil
}

// AddItem добавляет товар в корзину: существующая позиция получает +1 к количеству,
// новая создаётся с количеством 1 и снимком названия/цены/изображения.
func (m *Manager) AddItem(product *domain.Product) error {
	const op = "Manager.AddItem"

	m.mu.Lock()

	found := false
	for i := range m.lines {
		if m.lines[i].ProductID == product.ID {
			m.lines[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		m.lines = append(m.lines, NewLine(product.ID, product.Name, product.Price, product.ImageURL, 1))
	}

	if err := m.persistLocked(); err != nil {
		m.mu.Unlock()
		return e.Wrap(op, err)
	}
	m.mu.Unlock()

	m.notify()
	return nil
}

// ChangeQuantity прибавляет delta к количеству позиции с зажимом в нуле.
// Ровно ноль удаляет позицию целиком: количество 0 в корзине не хранится.
func (m *Manager) ChangeQuantity(productID string, delta int32) error {
	const op = "Manager.ChangeQuantity"

	m.mu.Lock()

	changed := false
	for i := range m.lines {
		if m.lines[i].ProductID != productID {
			continue
		}

		quantity := m.lines[i].Quantity + delta
		if quantity <= 0 {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
		} else {
			m.lines[i].Quantity = quantity
		}
		changed = true
		break
	}

	if !changed {
		m.mu.Unlock()
		return nil
	}

	if err := m.persistLocked(); err != nil {
		m.mu.Unlock()
		return e.Wrap(op, err)
	}
	m.mu.Unlock()

	m.notify()
	return nil
}

// RemoveItem безусловно удаляет позицию.
func (m *Manager) RemoveItem(productID string) error {
	const op = "Manager.RemoveItem"

	m.mu.Lock()

	changed := false
	for i := range m.lines {
		if m.lines[i].ProductID != productID {
			continue
		}

		m.lines = append(m.lines[:i], m.lines[i+1:]...)
		changed = true
		break
	}

	if !changed {
		m.mu.Unlock()
		return nil
	}

	if err := m.persistLocked(); err != nil {
		m.mu.Unlock()
		return e.Wrap(op, err)
	}
	m.mu.Unlock()

	m.notify()
	return nil
}

// Clear опустошает корзину. Вызывается после успешного оформления заказа.
func (m *Manager) Clear() error {
	const op = "Manager.Clear"

	m.mu.Lock()

	m.lines = nil

	if err := m.persistLocked(); err != nil {
		m.mu.Unlock()
		return e.Wrap(op, err)
	}
	m.mu.Unlock()

	m.notify()
	return nil
}

// Items возвращает копию позиций корзины.
func (m *Manager) Items() []Line {
	m.mu.Lock()
	defer m.mu.Unlock()

	items := make([]Line, len(m.lines))
	copy(items, m.lines)
	return items
}

// Total возвращает точную десятичную сумму по всем позициям: Σ цена × количество.
func (m *Manager) Total() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := decimal.Zero
	for _, line := range m.lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt32(line.Quantity)))
	}

	return total
}

// Subscribe регистрирует наблюдателя, вызываемого после каждой мутации.
// Возвращает функцию отписки.
func (m *Manager) Subscribe(fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}

func (m *Manager) persistLocked() error {
	return m.storage.Save(m.lines)
}

// notify вызывает подписчиков без удержания мьютекса,
// чтобы наблюдатель мог перечитать состояние через Items/Total.
func (m *Manager) notify() {
	m.mu.Lock()
	fns := make([]func(), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
