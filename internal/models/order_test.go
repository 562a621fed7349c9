package models

import (
	"reflect"
	"testing"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "pending to completed", from: StatusPending, to: StatusCompleted, want: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "pending to pending", from: StatusPending, to: StatusPending, want: false},
		{name: "completed is terminal", from: StatusCompleted, to: StatusCancelled, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusCompleted, want: false},
		{name: "unknown target", from: StatusPending, to: OrderStatus("shipped"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
				t.Errorf("CanTransitionTo(%q -> %q) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestCartTotal(t *testing.T) {
	tests := []struct {
		name string
		cart []CartItem
		want float64
	}{
		{name: "empty cart", cart: nil, want: 0},
		{
			name: "single item",
			cart: []CartItem{{ID: 1, Name: "Coffee", Price: 3.5, Quantity: 2}},
			want: 7.0,
		},
		{
			name: "mixed items",
			cart: []CartItem{
				{ID: 1, Name: "Coffee", Price: 3.5, Quantity: 2},
				{ID: 2, Name: "Tea", Price: 2.5, Quantity: 1},
			},
			want: 9.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CartTotal(tt.cart); got != tt.want {
				t.Errorf("CartTotal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnapshotCart(t *testing.T) {
	cart := []CartItem{
		{ID: 1, Name: "Coffee", Price: 3.5, Quantity: 2},
		{ID: 5, Name: "Muffin", Price: 2.0, Quantity: 1},
	}

	items := SnapshotCart(cart)
	if len(items) != len(cart) {
		t.Fatalf("SnapshotCart() returned %d items, want %d", len(items), len(cart))
	}

	// Mutating the cart afterwards must not affect the snapshot
	cart[0].Quantity = 99
	if items[0].Quantity != 2 {
		t.Errorf("snapshot quantity changed with the cart: got %d, want 2", items[0].Quantity)
	}
}

func TestDecodeCart_RoundTrip(t *testing.T) {
	cart := []CartItem{
		{ID: 1, Name: "Coffee", Price: 3.5, Quantity: 2},
		{ID: 2, Name: "Tea", Price: 2.5, Quantity: 1},
	}

	payload, err := EncodeCart(cart)
	if err != nil {
		t.Fatalf("EncodeCart returned error: %v", err)
	}

	got, err := DecodeCart(payload)
	if err != nil {
		t.Fatalf("DecodeCart returned error: %v", err)
	}
	if !reflect.DeepEqual(got, cart) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, cart)
	}
}

func TestDecodeOrders_RoundTrip(t *testing.T) {
	orders := []Order{
		{
			ID:     1700000000000,
			Items:  []OrderItem{{ID: 1, Name: "Coffee", Price: 3.5, Quantity: 2}},
			Total:  7.0,
			Date:   "2026-08-28T10:00:00Z",
			Status: StatusPending,
		},
	}

	payload, err := EncodeOrders(orders)
	if err != nil {
		t.Fatalf("EncodeOrders returned error: %v", err)
	}

	got, err := DecodeOrders(payload)
	if err != nil {
		t.Fatalf("DecodeOrders returned error: %v", err)
	}
	if !reflect.DeepEqual(got, orders) {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, orders)
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "{{{"},
		{name: "wrong shape", payload: `{"id":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeCart(tt.payload); err == nil {
				t.Errorf("DecodeCart(%q) expected error", tt.payload)
			}
			if _, err := DecodeOrders(tt.payload); err == nil {
				t.Errorf("DecodeOrders(%q) expected error", tt.payload)
			}
		})
	}
}

func TestDecodeOrders_UnknownStatus(t *testing.T) {
	payload := `[{"id":1,"items":[],"total":0,"date":"2026-08-28T10:00:00Z","status":"shipped"}]`
	if _, err := DecodeOrders(payload); err == nil {
		t.Error("DecodeOrders expected error for unknown status")
	}
}
