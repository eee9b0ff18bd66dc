package ordering

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func newTestPlacement(t *testing.T) (*OrderPlacement, *Cart) {
	t.Helper()
	cart := NewCart()
	profile := UserProfile{DeliveryAddress: "123 Main St"}
	menu := NewRestaurantMenu("Burger", "Pizza", "Salad")
	placement := NewOrderPlacement(cart, profile, menu)
	placement.UseIDGenerator(StaticIDs{ID: "ORD123456"})
	return placement, cart
}

type stubPayment struct {
	approve bool
	err     error
	charged []decimal.Decimal
}

func (s *stubPayment) ProcessPayment(_ context.Context, amount decimal.Decimal) (bool, error) {
	s.charged = append(s.charged, amount)
	return s.approve, s.err
}

func TestValidateOrder(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(*Cart)
		wantSuccess bool
		wantMessage string
	}{
		{
			name:        "empty cart",
			setup:       func(c *Cart) {},
			wantSuccess: false,
			wantMessage: "Cart is empty",
		},
		{
			name: "item not on menu",
			setup: func(c *Cart) {
				_, _ = c.AddItem("Pasta", price("15.99"), 1)
			},
			wantSuccess: false,
			wantMessage: "Pasta is not available",
		},
		{
			name: "first unavailable item wins",
			setup: func(c *Cart) {
				_, _ = c.AddItem("Pasta", price("15.99"), 1)
				_, _ = c.AddItem("Sushi", price("21.00"), 1)
			},
			wantSuccess: false,
			wantMessage: "Pasta is not available",
		},
		{
			name: "all items available",
			setup: func(c *Cart) {
				_, _ = c.AddItem("Burger", price("8.99"), 2)
			},
			wantSuccess: true,
			wantMessage: "Order is valid",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placement, cart := newTestPlacement(t)
			tt.setup(cart)
			got := placement.ValidateOrder()
			if got.Success != tt.wantSuccess || got.Message != tt.wantMessage {
				t.Errorf("ValidateOrder() = %+v, want success=%v message=%q", got, tt.wantSuccess, tt.wantMessage)
			}
		})
	}
}

func TestValidateOrderIdempotent(t *testing.T) {
	placement, cart := newTestPlacement(t)
	_, _ = cart.AddItem("Burger", price("8.99"), 2)

	first := placement.ValidateOrder()
	second := placement.ValidateOrder()
	if first != second {
		t.Errorf("repeated validation differs: %+v vs %+v", first, second)
	}
	if cart.Len() != 1 {
		t.Error("validation mutated the cart")
	}
}

func TestValidateOrderAfterRepeatedAdds(t *testing.T) {
	placement, cart := newTestPlacement(t)
	_, _ = cart.AddItem("Burger", price("8.99"), 2)
	_, _ = cart.AddItem("Burger", price("8.99"), 1)
	_, _ = cart.AddItem("Pizza", price("12.99"), 1)
	_, _ = cart.AddItem("Pizza", price("12.99"), 15)
	_, _ = cart.AddItem("Pizza", price("12.99"), 1)

	result := placement.ValidateOrder()
	if !result.Success || result.Message != "Order is valid" {
		t.Fatalf("ValidateOrder() = %+v, want valid order", result)
	}

	items := cart.Items()
	if len(items) != 2 {
		t.Fatalf("cart has %d lines, want 2", len(items))
	}
	quantities := map[string]int{}
	for _, item := range items {
		quantities[item.Name] = item.Quantity
	}
	if quantities["Burger"] != 3 {
		t.Errorf("Burger quantity = %d, want 3", quantities["Burger"])
	}
	if quantities["Pizza"] != 17 {
		t.Errorf("Pizza quantity = %d, want 17", quantities["Pizza"])
	}
}

func TestProceedToCheckout(t *testing.T) {
	placement, cart := newTestPlacement(t)
	_, _ = cart.AddItem("Burger", price("8.99"), 2) // 17.98
	_, _ = cart.AddItem("Pizza", price("12.99"), 1) // 12.99

	summary := placement.ProceedToCheckout()

	if summary.DeliveryAddress != "123 Main St" {
		t.Errorf("delivery address = %q, want %q", summary.DeliveryAddress, "123 Main St")
	}
	if len(summary.Items) != 2 {
		t.Fatalf("summary has %d items, want 2", len(summary.Items))
	}

	wantSubtotal := price("30.97")
	wantTax := price("2.48") // 30.97 * 0.08 rounded to cents
	wantTotal := wantSubtotal.Add(wantTax).Add(price("5"))

	info := summary.TotalInfo
	if !info.Subtotal.Equal(wantSubtotal) {
		t.Errorf("subtotal = %s, want %s", info.Subtotal, wantSubtotal)
	}
	if !info.Tax.Equal(wantTax) {
		t.Errorf("tax = %s, want %s", info.Tax, wantTax)
	}
	if !info.DeliveryFee.Equal(price("5")) {
		t.Errorf("delivery fee = %s, want 5", info.DeliveryFee)
	}
	if !info.Total.Equal(wantTotal) {
		t.Errorf("total = %s, want %s", info.Total, wantTotal)
	}
}

func TestProceedToCheckoutTotalIsExactSum(t *testing.T) {
	placement, cart := newTestPlacement(t)
	_, _ = cart.AddItem("Burger", price("8.99"), 3)
	_, _ = cart.AddItem("Salad", price("4.49"), 7)

	summary := placement.ProceedToCheckout()
	info := summary.TotalInfo

	sum := decimal.Zero
	for _, line := range summary.Items {
		sum = sum.Add(line.Subtotal)
	}
	if !info.Subtotal.Equal(sum) {
		t.Errorf("subtotal %s != sum of line subtotals %s", info.Subtotal, sum)
	}
	if !info.Total.Equal(info.Subtotal.Add(info.Tax).Add(info.DeliveryFee)) {
		t.Errorf("total %s != subtotal+tax+fee", info.Total)
	}
}

func TestProceedToCheckoutIsPureRead(t *testing.T) {
	placement, cart := newTestPlacement(t)
	_, _ = cart.AddItem("Pizza", price("12.99"), 1)

	first := placement.ProceedToCheckout()
	second := placement.ProceedToCheckout()
	if !first.TotalInfo.Total.Equal(second.TotalInfo.Total) {
		t.Error("repeated checkout previews differ")
	}
	if cart.Len() != 1 {
		t.Error("checkout preview mutated the cart")
	}
}

func TestConfirmOrderSuccess(t *testing.T) {
	placement, cart := newTestPlacement(t)
	_, _ = cart.AddItem("Pizza", price("12.99"), 1)

	pm := &stubPayment{approve: true}
	result := placement.ConfirmOrder(context.Background(), pm)

	if !result.Success || result.Message != "Order confirmed" {
		t.Fatalf("ConfirmOrder() = %+v, want confirmed", result)
	}
	if result.OrderID != "ORD123456" {
		t.Errorf("order id = %q, want ORD123456", result.OrderID)
	}
	if result.EstimatedDelivery == "" {
		t.Error("estimated delivery is empty")
	}

	// Charged exactly the checkout total: 12.99 + 1.04 tax + 5.00 fee.
	if len(pm.charged) != 1 || !pm.charged[0].Equal(price("19.03")) {
		t.Errorf("charged %v, want one charge of 19.03", pm.charged)
	}

	// A new order starts from an empty cart.
	if cart.Len() != 0 {
		t.Errorf("cart has %d lines after confirmation, want 0", cart.Len())
	}
}

func TestConfirmOrderDeclined(t *testing.T) {
	tests := []struct {
		name string
		pm   *stubPayment
	}{
		{name: "gateway returns false", pm: &stubPayment{approve: false}},
		{name: "gateway errors", pm: &stubPayment{approve: false, err: errors.New("network down")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			placement, cart := newTestPlacement(t)
			_, _ = cart.AddItem("Pizza", price("12.99"), 1)

			result := placement.ConfirmOrder(context.Background(), tt.pm)
			if result.Success || result.Message != "Payment failed" {
				t.Fatalf("ConfirmOrder() = %+v, want payment failure", result)
			}
			if result.OrderID != "" {
				t.Errorf("order id = %q on failure, want empty", result.OrderID)
			}

			// The cart is untouched so the user can retry.
			items := cart.Items()
			if len(items) != 1 || items[0].Name != "Pizza" || items[0].Quantity != 1 {
				t.Errorf("cart changed after failed payment: %+v", items)
			}
		})
	}
}

func TestDailySequenceIDs(t *testing.T) {
	gen := NewDailySequence()
	first := gen.OrderID()
	second := gen.OrderID()
	if !strings.HasPrefix(first, "ORD_") {
		t.Errorf("id %q missing ORD_ prefix", first)
	}
	if first == second {
		t.Errorf("sequence produced duplicate id %q", first)
	}
	if !strings.HasSuffix(first, "_001") || !strings.HasSuffix(second, "_002") {
		t.Errorf("sequence ids = %q, %q; want _001 then _002", first, second)
	}
}

func TestRandomIDs(t *testing.T) {
	gen := RandomIDs{}
	a, b := gen.OrderID(), gen.OrderID()
	if a == b {
		t.Errorf("random ids collided: %q", a)
	}
	if !strings.HasPrefix(a, "ORD") || len(a) != 11 {
		t.Errorf("id %q not in ORD<8 hex> form", a)
	}
}
