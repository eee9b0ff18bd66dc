package api

import (
	"github.com/shopspring/decimal"

	"food-delivery/internal/ordering"
	"food-delivery/internal/payments"
)

type registerRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type loginRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
}

type loginResponse struct {
	Token      string `json:"token"`
	Restaurant string `json:"restaurant"`
}

type selectRestaurantRequest struct {
	Name string `json:"name"`
}

type addItemRequest struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

type addItemResponse struct {
	Message string              `json:"message"`
	Cart    []ordering.CartLine `json:"cart"`
}

type confirmOrderRequest struct {
	PaymentMethod string               `json:"payment_method"`
	CardDetails   payments.CardDetails `json:"card_details"`
}

type errorResponse struct {
	Error string `json:"error"`
}
