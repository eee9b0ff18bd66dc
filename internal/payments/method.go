package payments

import (
	"context"

	"github.com/shopspring/decimal"
)

// GatewayMethod adapts the gateway simulation to the single-capability
// payment interface the order workflow consumes. Method and details are
// fixed when the user picks them at checkout.
type GatewayMethod struct {
	Gateway *Processing
	Method  string
	Details CardDetails
}

func (g GatewayMethod) ProcessPayment(ctx context.Context, amount decimal.Decimal) (bool, error) {
	return g.Gateway.Charge(ctx, g.Method, g.Details, amount)
}
