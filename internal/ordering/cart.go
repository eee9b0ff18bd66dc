package ordering

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidLineItem is returned when a line item is constructed with a
// non-positive quantity or a negative unit price.
var ErrInvalidLineItem = errors.New("invalid line item")

// CartItem is one named item with its unit price and quantity. Money is
// decimal so repeated additions never accumulate float drift.
type CartItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

func NewCartItem(name string, unitPrice decimal.Decimal, quantity int) (CartItem, error) {
	if quantity < 1 {
		return CartItem{}, fmt.Errorf("%w: quantity must be at least 1, got %d", ErrInvalidLineItem, quantity)
	}
	if unitPrice.IsNegative() {
		return CartItem{}, fmt.Errorf("%w: unit price must not be negative, got %s", ErrInvalidLineItem, unitPrice)
	}
	return CartItem{Name: name, UnitPrice: unitPrice, Quantity: quantity}, nil
}

func (i CartItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartLine is one row of a cart snapshot.
type CartLine struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Cart is the mutable collection of line items for one in-progress
// order. Items are unique by name (case-sensitive) and keep insertion
// order. All mutation goes through AddItem and RemoveItem.
type Cart struct {
	items []CartItem
}

func NewCart() *Cart { return &Cart{} }

// AddItem merges into an existing line when the name already exists,
// otherwise appends a new line. The first-seen unit price stays
// authoritative on re-adds. Returns a UI-facing confirmation message.
func (c *Cart) AddItem(name string, unitPrice decimal.Decimal, quantity int) (string, error) {
	item, err := NewCartItem(name, unitPrice, quantity)
	if err != nil {
		return "", err
	}
	for idx := range c.items {
		if c.items[idx].Name == name {
			c.items[idx].Quantity += quantity
			return fmt.Sprintf("Added %d x %s to cart", quantity, name), nil
		}
	}
	c.items = append(c.items, item)
	return fmt.Sprintf("Added %d x %s to cart", quantity, name), nil
}

// RemoveItem deletes the line with the given name. Removing a name that
// is not present, or from an empty cart, is a no-op.
func (c *Cart) RemoveItem(name string) {
	for idx := range c.items {
		if c.items[idx].Name == name {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return
		}
	}
}

// ViewCart returns a fresh snapshot of the cart in insertion order.
func (c *Cart) ViewCart() []CartLine {
	lines := make([]CartLine, 0, len(c.items))
	for _, item := range c.items {
		lines = append(lines, CartLine{Name: item.Name, Quantity: item.Quantity, Subtotal: item.Subtotal()})
	}
	return lines
}

// Items returns a copy of the line items. Callers cannot reach the
// backing slice, so the uniqueness invariant stays with the Cart.
func (c *Cart) Items() []CartItem {
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int { return len(c.items) }

// Clear empties the cart; a new order starts from scratch.
func (c *Cart) Clear() { c.items = nil }
