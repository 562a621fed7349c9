// Package store implements the order store: the single owner of cart
// mutation, total computation, payment finalization and order history.
// Views call its operations and render its snapshot; they hold no order
// state of their own.
//
// A Store is meant for a single goroutine. Storage failures never
// propagate to callers: operations either return a nil order or leave
// state unchanged, and the failure is logged.
package store

import (
	"time"

	"cafe-kiosk/internal/logger"
	"cafe-kiosk/internal/models"
	"cafe-kiosk/internal/storage"
)

// Fixed keys in the durable storage key space
const (
	keyCart   = "cart"
	keyOrders = "orders"
)

// Store holds the cart, the loaded order history and the transient UI flags
type Store struct {
	storage storage.Storage
	logger  *logger.Logger

	cart             []models.CartItem
	orders           []models.Order
	showPaymentModal bool
	showNotification bool

	lastOrderID int64
}

// New creates a store with an empty cart, empty history and cleared flags
func New(st storage.Storage, log *logger.Logger) *Store {
	return &Store{
		storage: st,
		logger:  log,
	}
}

// AddToCart adds one unit of item. A repeat add only increments the
// existing entry's quantity; its name and price are not re-copied.
func (s *Store) AddToCart(item models.MenuItem) {
	for i := range s.cart {
		if s.cart[i].ID == item.ID {
			s.cart[i].Quantity++
			return
		}
	}
	s.cart = append(s.cart, models.CartItem{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	})
}

// RemoveFromCart removes one unit of the item with itemID. The entry
// disappears when its quantity reaches zero. Unknown ids are a no-op.
func (s *Store) RemoveFromCart(itemID int) {
	for i := range s.cart {
		if s.cart[i].ID != itemID {
			continue
		}
		if s.cart[i].Quantity > 1 {
			s.cart[i].Quantity--
		} else {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
		}
		return
	}
}

// ClearCart empties the cart unconditionally
func (s *Store) ClearCart() {
	s.cart = nil
}

// Cart returns a copy of the current cart in insertion order
func (s *Store) Cart() []models.CartItem {
	return append([]models.CartItem(nil), s.cart...)
}

// Orders returns a copy of the loaded order history
func (s *Store) Orders() []models.Order {
	return append([]models.Order(nil), s.orders...)
}

// TotalPrice returns the sum of price times quantity over the cart
func (s *Store) TotalPrice() float64 {
	return models.CartTotal(s.cart)
}

// SetShowPaymentModal sets the payment modal flag
func (s *Store) SetShowPaymentModal(open bool) {
	s.showPaymentModal = open
}

// ShowPaymentModal reports the payment modal flag
func (s *Store) ShowPaymentModal() bool {
	return s.showPaymentModal
}

// SetShowNotification sets the success notification flag
func (s *Store) SetShowNotification(show bool) {
	s.showNotification = show
}

// ShowNotification reports the success notification flag
func (s *Store) ShowNotification() bool {
	return s.showNotification
}

// LoadFromStorage replaces the in-memory cart with the persisted one.
// An absent key, a malformed payload or a read failure leaves the cart
// unchanged.
func (s *Store) LoadFromStorage() {
	requestID := logger.GenerateRequestID()

	payload, ok, err := s.storage.Get(keyCart)
	if err != nil {
		s.logger.Error("cart_load_failed", requestID, "Failed to read cart from storage", err)
		return
	}
	if !ok {
		return
	}

	cart, err := models.DecodeCart(payload)
	if err != nil {
		s.logger.Error("cart_load_failed", requestID, "Stored cart payload is malformed", err)
		return
	}
	s.cart = cart
}

// SaveCartToStorage writes the current cart to storage. Failures are
// swallowed; the in-memory cart is unaffected either way.
func (s *Store) SaveCartToStorage() {
	requestID := logger.GenerateRequestID()

	payload, err := models.EncodeCart(s.cart)
	if err != nil {
		s.logger.Error("cart_save_failed", requestID, "Failed to encode cart", err)
		return
	}
	if err := s.storage.Set(keyCart, payload); err != nil {
		s.logger.Error("cart_save_failed", requestID, "Failed to write cart to storage", err)
	}
}

// ProcessPayment finalizes the current cart into a new pending order,
// appends it to the persisted history, clears the cart and removes the
// persisted cart entry. It returns nil on an empty cart and on any storage
// failure before the order is durably written; in the failure case the
// cart is left intact.
func (s *Store) ProcessPayment() *models.Order {
	requestID := logger.GenerateRequestID()

	if len(s.cart) == 0 {
		return nil
	}

	now := time.Now()
	order := models.Order{
		ID:     s.nextOrderID(now),
		Items:  models.SnapshotCart(s.cart),
		Total:  s.TotalPrice(),
		Date:   now.UTC().Format(time.RFC3339),
		Status: models.StatusPending,
	}

	history, err := s.readOrderHistory(requestID)
	if err != nil {
		return nil
	}
	history = append(history, order)

	payload, err := models.EncodeOrders(history)
	if err != nil {
		s.logger.Error("payment_failed", requestID, "Failed to encode order history", err)
		return nil
	}
	if err := s.storage.Set(keyOrders, payload); err != nil {
		s.logger.Error("payment_failed", requestID, "Failed to write order history", err)
		return nil
	}

	// The order is durable from here on: clear the cart even if removing
	// the persisted copy fails.
	s.cart = nil
	if err := s.storage.Remove(keyCart); err != nil {
		s.logger.Error("cart_remove_failed", requestID, "Failed to remove persisted cart", err)
	}

	s.logger.Info("order_placed", requestID, "Order placed")
	return &order
}

// LoadOrders replaces the in-memory order history with the persisted one.
// An absent key means an empty history; a malformed payload or read
// failure leaves the in-memory history unchanged.
func (s *Store) LoadOrders() {
	requestID := logger.GenerateRequestID()

	payload, ok, err := s.storage.Get(keyOrders)
	if err != nil {
		s.logger.Error("orders_load_failed", requestID, "Failed to read order history", err)
		return
	}
	if !ok {
		s.orders = nil
		return
	}

	orders, err := models.DecodeOrders(payload)
	if err != nil {
		s.logger.Error("orders_load_failed", requestID, "Stored order history is malformed", err)
		return
	}
	s.orders = orders
}

// UpdateOrderStatus moves the matching order to newStatus and rewrites the
// full history to storage. The history is rewritten even when nothing
// matched. Terminal orders keep their status.
func (s *Store) UpdateOrderStatus(orderID int64, newStatus models.OrderStatus) {
	requestID := logger.GenerateRequestID()

	for i := range s.orders {
		if s.orders[i].ID != orderID {
			continue
		}
		if !s.orders[i].Status.CanTransitionTo(newStatus) {
			s.logger.Debug("status_update_rejected", requestID, "Order status transition not allowed")
			break
		}
		s.orders[i].Status = newStatus
		break
	}

	s.saveOrderHistory(requestID)
}

// DeleteOrder removes the matching order from the history and rewrites the
// full history to storage. Unknown ids still rewrite the unchanged list.
func (s *Store) DeleteOrder(orderID int64) {
	requestID := logger.GenerateRequestID()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			break
		}
	}

	s.saveOrderHistory(requestID)
}

// nextOrderID returns the current millisecond timestamp, bumped past the
// previous id when two orders land in the same millisecond
func (s *Store) nextOrderID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= s.lastOrderID {
		id = s.lastOrderID + 1
	}
	s.lastOrderID = id
	return id
}

// readOrderHistory reads the persisted history for appending. An absent
// key is an empty history; read or decode failures abort the caller.
func (s *Store) readOrderHistory(requestID string) ([]models.Order, error) {
	payload, ok, err := s.storage.Get(keyOrders)
	if err != nil {
		s.logger.Error("payment_failed", requestID, "Failed to read order history", err)
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	orders, err := models.DecodeOrders(payload)
	if err != nil {
		s.logger.Error("payment_failed", requestID, "Stored order history is malformed", err)
		return nil, err
	}
	return orders, nil
}

func (s *Store) saveOrderHistory(requestID string) {
	payload, err := models.EncodeOrders(s.orders)
	if err != nil {
		s.logger.Error("orders_save_failed", requestID, "Failed to encode order history", err)
		return
	}
	if err := s.storage.Set(keyOrders, payload); err != nil {
		s.logger.Error("orders_save_failed", requestID, "Failed to write order history", err)
	}
}
