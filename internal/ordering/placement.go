package ordering

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Checkout pricing is fixed for the demo: 8% tax on the item subtotal
// plus a flat delivery fee.
var (
	taxRate     = decimal.NewFromFloat(0.08)
	deliveryFee = decimal.NewFromInt(5)
)

const deliveryEstimate = "45 minutes"

// UserProfile carries the delivery details used at checkout. Read-only
// for the duration of an order.
type UserProfile struct {
	DeliveryAddress string
}

// RestaurantMenu is the snapshot of item names currently orderable from
// the selected restaurant. Taken once at OrderPlacement construction,
// never refreshed mid-order.
type RestaurantMenu struct {
	names     []string
	available map[string]struct{}
}

func NewRestaurantMenu(items ...string) *RestaurantMenu {
	m := &RestaurantMenu{available: make(map[string]struct{}, len(items))}
	for _, name := range items {
		if _, ok := m.available[name]; ok {
			continue
		}
		m.available[name] = struct{}{}
		m.names = append(m.names, name)
	}
	return m
}

func (m *RestaurantMenu) IsAvailable(name string) bool {
	_, ok := m.available[name]
	return ok
}

func (m *RestaurantMenu) AvailableItems() []string {
	out := make([]string, len(m.names))
	copy(out, m.names)
	return out
}

// Result is the outcome of order validation.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type TotalInfo struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

// CheckoutSummary is the preview shown before payment.
type CheckoutSummary struct {
	Items           []CartLine `json:"items"`
	TotalInfo       TotalInfo  `json:"total_info"`
	DeliveryAddress string     `json:"delivery_address"`
}

// Confirmation is the outcome of confirming an order. OrderID and
// EstimatedDelivery are set only on success.
type Confirmation struct {
	Success           bool   `json:"success"`
	Message           string `json:"message"`
	OrderID           string `json:"order_id,omitempty"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
}

// OrderPlacement walks one cart through validate, checkout preview and
// confirm against a single user profile and menu snapshot. One instance
// per checkout attempt.
type OrderPlacement struct {
	cart    *Cart
	profile UserProfile
	menu    *RestaurantMenu
	ids     IDGenerator
}

func NewOrderPlacement(cart *Cart, profile UserProfile, menu *RestaurantMenu) *OrderPlacement {
	return &OrderPlacement{cart: cart, profile: profile, menu: menu, ids: NewDailySequence()}
}

// UseIDGenerator swaps the order id strategy. Tests pin a static id.
func (p *OrderPlacement) UseIDGenerator(g IDGenerator) { p.ids = g }

// ValidateOrder checks the cart against the menu snapshot. Read-only and
// idempotent; the first unavailable item in insertion order wins.
func (p *OrderPlacement) ValidateOrder() Result {
	if p.cart.Len() == 0 {
		return Result{Success: false, Message: "Cart is empty"}
	}
	for _, item := range p.cart.Items() {
		if !p.menu.IsAvailable(item.Name) {
			return Result{Success: false, Message: fmt.Sprintf("%s is not available", item.Name)}
		}
	}
	return Result{Success: true, Message: "Order is valid"}
}

// ProceedToCheckout computes the checkout preview. Pure read; callers
// are expected to have validated the order first.
func (p *OrderPlacement) ProceedToCheckout() CheckoutSummary {
	return CheckoutSummary{
		Items:           p.cart.ViewCart(),
		TotalInfo:       p.totals(),
		DeliveryAddress: p.profile.DeliveryAddress,
	}
}

// ConfirmOrder charges the injected payment method for the checkout
// total. On success the cart is cleared so the next order starts empty;
// on a declined payment the cart is left untouched for retry.
func (p *OrderPlacement) ConfirmOrder(ctx context.Context, pm PaymentMethod) Confirmation {
	total := p.totals().Total
	ok, err := pm.ProcessPayment(ctx, total)
	if err != nil || !ok {
		return Confirmation{Success: false, Message: "Payment failed"}
	}
	p.cart.Clear()
	return Confirmation{
		Success:           true,
		Message:           "Order confirmed",
		OrderID:           p.ids.OrderID(),
		EstimatedDelivery: deliveryEstimate,
	}
}

func (p *OrderPlacement) totals() TotalInfo {
	subtotal := decimal.Zero
	for _, line := range p.cart.ViewCart() {
		subtotal = subtotal.Add(line.Subtotal)
	}
	tax := subtotal.Mul(taxRate).Round(2)
	return TotalInfo{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: deliveryFee,
		Total:       subtotal.Add(tax).Add(deliveryFee),
	}
}
