package models

import (
	"encoding/json"
	"fmt"
)

// The cart and order history persist as JSON arrays under fixed storage
// keys. Decoding is explicit so callers can tell a malformed payload from
// an empty one.

// EncodeCart serializes cart entries for storage
func EncodeCart(cart []CartItem) (string, error) {
	if cart == nil {
		cart = []CartItem{}
	}
	data, err := json.Marshal(cart)
	if err != nil {
		return "", fmt.Errorf("failed to encode cart: %w", err)
	}
	return string(data), nil
}

// DecodeCart parses a stored cart payload
func DecodeCart(payload string) ([]CartItem, error) {
	var cart []CartItem
	if err := json.Unmarshal([]byte(payload), &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	return cart, nil
}

// EncodeOrders serializes the order history for storage
func EncodeOrders(orders []Order) (string, error) {
	if orders == nil {
		orders = []Order{}
	}
	data, err := json.Marshal(orders)
	if err != nil {
		return "", fmt.Errorf("failed to encode orders: %w", err)
	}
	return string(data), nil
}

// DecodeOrders parses a stored order history payload
func DecodeOrders(payload string) ([]Order, error) {
	var orders []Order
	if err := json.Unmarshal([]byte(payload), &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}
	for i, o := range orders {
		if !o.Status.Valid() {
			return nil, fmt.Errorf("failed to decode orders: unknown status %q at index %d", o.Status, i)
		}
	}
	return orders, nil
}
