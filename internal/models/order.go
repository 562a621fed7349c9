package models

// OrderStatus represents the status of a placed order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s is an endpoint of the order lifecycle.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether an order may move from s to next.
// Only pending orders may change status, and only to a terminal one.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return s == StatusPending && next.Terminal()
}

// MenuItem identifies a purchasable item from the menu catalog
type MenuItem struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// CartItem is a menu item plus the quantity currently in the cart
type CartItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// LineTotal returns price times quantity for this cart entry
func (ci CartItem) LineTotal() float64 {
	return ci.Price * float64(ci.Quantity)
}

// OrderItem is a frozen snapshot of a cart entry at payment time
type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is a finalized purchase. Everything except Status is immutable
// after creation.
type Order struct {
	ID     int64       `json:"id"`
	Items  []OrderItem `json:"items"`
	Total  float64     `json:"total"`
	Date   string      `json:"date"`
	Status OrderStatus `json:"status"`
}

// CartTotal returns the sum of price times quantity over all cart entries
func CartTotal(cart []CartItem) float64 {
	var total float64
	for _, item := range cart {
		total += item.LineTotal()
	}
	return total
}

// SnapshotCart copies cart entries into order items, decoupling the order
// from future cart mutation
func SnapshotCart(cart []CartItem) []OrderItem {
	items := make([]OrderItem, len(cart))
	for i, ci := range cart {
		items[i] = OrderItem{
			ID:       ci.ID,
			Name:     ci.Name,
			Price:    ci.Price,
			Quantity: ci.Quantity,
		}
	}
	return items
}
