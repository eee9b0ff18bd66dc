package payments

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel card number the mock gateway always declines.
const declinedCard = "1111222233334444"

var (
	ErrUnsupportedMethod = errors.New("invalid payment method")
	ErrInvalidCard       = errors.New("invalid credit card details")
)

// CardDetails is the credit-card shape the gateway validates: a 16-digit
// number and a 3-digit CVV.
type CardDetails struct {
	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// Processing simulates a payment gateway. It validates the selected
// method and card shape, then fakes the gateway round trip.
type Processing struct {
	gateways map[string]struct{}
}

func NewProcessing() *Processing {
	return &Processing{gateways: map[string]struct{}{
		"credit_card": {},
		"paypal":      {},
	}}
}

// ValidatePaymentMethod checks that the method is supported and, for
// credit cards, that the details have a plausible shape.
func (p *Processing) ValidatePaymentMethod(method string, details CardDetails) error {
	if _, ok := p.gateways[method]; !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}
	if method == "credit_card" && !validCard(details) {
		return ErrInvalidCard
	}
	return nil
}

func validCard(d CardDetails) bool {
	if len(d.CardNumber) != 16 || len(d.CVV) != 3 {
		return false
	}
	return allDigits(d.CardNumber) && allDigits(d.CVV)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Charge validates the method and runs the mock gateway. It reports
// whether the charge was accepted; validation problems are errors.
func (p *Processing) Charge(ctx context.Context, method string, details CardDetails, amount decimal.Decimal) (bool, error) {
	if err := p.ValidatePaymentMethod(method, details); err != nil {
		return false, err
	}
	resp := p.mockGateway(method, details, amount)
	return resp.Status == "success", nil
}

type gatewayResponse struct {
	Status        string
	TransactionID string
	Message       string
}

func (p *Processing) mockGateway(method string, details CardDetails, amount decimal.Decimal) gatewayResponse {
	if method == "credit_card" && details.CardNumber == declinedCard {
		return gatewayResponse{Status: "failure", Message: "Card declined"}
	}
	return gatewayResponse{Status: "success", TransactionID: "abc123"}
}
