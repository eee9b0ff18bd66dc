package ordering

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the single capability OrderPlacement needs from a
// payment provider. The concrete gateway is injected by the caller;
// both a false result and an error surface as a declined payment.
type PaymentMethod interface {
	ProcessPayment(ctx context.Context, amount decimal.Decimal) (bool, error)
}

// NullPayment approves every charge. Default for manual runs.
type NullPayment struct{}

func (NullPayment) ProcessPayment(context.Context, decimal.Decimal) (bool, error) {
	return true, nil
}
