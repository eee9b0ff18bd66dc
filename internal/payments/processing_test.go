package payments

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func validDetails() CardDetails {
	return CardDetails{CardNumber: "1234567812345678", ExpiryDate: "12/27", CVV: "123"}
}

func TestValidatePaymentMethod(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		details CardDetails
		wantErr error
	}{
		{name: "credit card ok", method: "credit_card", details: validDetails()},
		{name: "paypal ok", method: "paypal"},
		{name: "unsupported gateway", method: "bitcoin", wantErr: ErrUnsupportedMethod},
		{
			name:    "short card number",
			method:  "credit_card",
			details: CardDetails{CardNumber: "1234", CVV: "123"},
			wantErr: ErrInvalidCard,
		},
		{
			name:    "short cvv",
			method:  "credit_card",
			details: CardDetails{CardNumber: "1234567812345678", CVV: "12"},
			wantErr: ErrInvalidCard,
		},
		{
			name:    "non-numeric card number",
			method:  "credit_card",
			details: CardDetails{CardNumber: "1234abcd12345678", CVV: "123"},
			wantErr: ErrInvalidCard,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewProcessing().ValidatePaymentMethod(tt.method, tt.details)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidatePaymentMethod() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidatePaymentMethod() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCharge(t *testing.T) {
	amount := decimal.RequireFromString("19.03")

	t.Run("successful charge", func(t *testing.T) {
		ok, err := NewProcessing().Charge(context.Background(), "credit_card", validDetails(), amount)
		if err != nil {
			t.Fatalf("Charge() error = %v", err)
		}
		if !ok {
			t.Error("Charge() declined a valid card")
		}
	})

	t.Run("sentinel card declines", func(t *testing.T) {
		details := validDetails()
		details.CardNumber = "1111222233334444"
		ok, err := NewProcessing().Charge(context.Background(), "credit_card", details, amount)
		if err != nil {
			t.Fatalf("Charge() error = %v", err)
		}
		if ok {
			t.Error("Charge() approved the declined sentinel card")
		}
	})

	t.Run("invalid details are an error not a decline", func(t *testing.T) {
		_, err := NewProcessing().Charge(context.Background(), "credit_card", CardDetails{}, amount)
		if !errors.Is(err, ErrInvalidCard) {
			t.Fatalf("Charge() error = %v, want ErrInvalidCard", err)
		}
	})
}

func TestGatewayMethodImplementsPaymentCapability(t *testing.T) {
	pm := GatewayMethod{Gateway: NewProcessing(), Method: "credit_card", Details: validDetails()}
	ok, err := pm.ProcessPayment(context.Background(), decimal.RequireFromString("10.00"))
	if err != nil || !ok {
		t.Fatalf("ProcessPayment() = %v, %v; want approved", ok, err)
	}

	pm.Details.CardNumber = "1111222233334444"
	ok, err = pm.ProcessPayment(context.Background(), decimal.RequireFromString("10.00"))
	if err != nil {
		t.Fatalf("ProcessPayment() error = %v", err)
	}
	if ok {
		t.Error("ProcessPayment() approved the sentinel decline card")
	}
}
