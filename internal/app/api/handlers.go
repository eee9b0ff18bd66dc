package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"food-delivery/internal/browsing"
	"food-delivery/internal/ordering"
	"food-delivery/internal/payments"
	"food-delivery/internal/registration"
)

const sessionHeader = "X-Session-Token"

const menuCacheTTL = 5 * time.Minute

type sessionKey struct{}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	err := s.registration.Register(r.Context(), req.Email, req.Password, req.ConfirmPassword)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, map[string]string{
			"message": "Registration successful, confirmation email sent",
		})
	case errors.Is(err, registration.ErrInvalidEmail),
		errors.Is(err, registration.ErrPasswordMismatch),
		errors.Is(err, registration.ErrWeakPassword):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, registration.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, err.Error())
	default:
		s.log.Error("register_failed", err, map[string]any{"email": req.Email})
		writeError(w, http.StatusInternalServerError, "registration failed")
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	ok, err := s.registration.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		s.log.Error("login_failed", err, map[string]any{"email": req.Email})
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}
	if !ok {
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	address := req.DeliveryAddress
	if address == "" {
		address = defaultDeliveryAddress
	}
	sess := s.sessions.Create(req.Email, ordering.UserProfile{DeliveryAddress: address})

	items, err := s.menuFor(r.Context(), DefaultRestaurant)
	if err != nil {
		s.log.Error("menu_load_failed", err, map[string]any{"restaurant": DefaultRestaurant})
		writeError(w, http.StatusInternalServerError, "could not load menu")
		return
	}
	sess.SelectMenu(DefaultRestaurant, items, s.ids)

	s.log.Info("user_logged_in", map[string]any{"email": req.Email})
	writeJSON(w, http.StatusOK, loginResponse{Token: sess.Token, Restaurant: sess.Restaurant})
}

func (s *Server) handleListRestaurants(w http.ResponseWriter, r *http.Request) {
	results, err := s.browsing.SearchByFilters(r.Context(), browsing.Filters{})
	if err != nil {
		s.log.Error("restaurant_list_failed", err, nil)
		writeError(w, http.StatusInternalServerError, "could not list restaurants")
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleSearchRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := browsing.Filters{
		Cuisine:  q.Get("cuisine"),
		Location: q.Get("location"),
	}
	if raw := q.Get("min_rating"); raw != "" {
		rating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "min_rating must be a number")
			return
		}
		filters.MinRating = rating
	}
	results, err := s.browsing.SearchByFilters(r.Context(), filters)
	if err != nil {
		s.log.Error("restaurant_search_failed", err, nil)
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	items, err := s.menuFor(r.Context(), name)
	if err != nil {
		s.log.Error("menu_load_failed", err, map[string]any{"restaurant": name})
		writeError(w, http.StatusInternalServerError, "could not load menu")
		return
	}
	if len(items) == 0 {
		writeError(w, http.StatusNotFound, "restaurant not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"restaurant": name, "items": items})
}

// menuFor reads a menu snapshot through the cache.
func (s *Server) menuFor(ctx context.Context, restaurant string) ([]string, error) {
	key := s.cache.Key("menu", restaurant)
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
		var items []string
		if json.Unmarshal([]byte(cached), &items) == nil {
			return items, nil
		}
	}
	items, err := s.browsing.Menu(ctx, restaurant)
	if err != nil {
		return nil, err
	}
	if encoded, err := json.Marshal(items); err == nil {
		_ = s.cache.Set(ctx, key, string(encoded), menuCacheTTL)
	}
	return items, nil
}

func (s *Server) handleSelectRestaurant(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	var req selectRestaurantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	items, err := s.menuFor(r.Context(), req.Name)
	if err != nil {
		s.log.Error("menu_load_failed", err, map[string]any{"restaurant": req.Name})
		writeError(w, http.StatusInternalServerError, "could not load menu")
		return
	}
	if len(items) == 0 {
		writeError(w, http.StatusNotFound, "restaurant not found")
		return
	}
	sess.SelectMenu(req.Name, items, s.ids)
	writeJSON(w, http.StatusOK, map[string]any{"restaurant": req.Name, "items": items})
}

func (s *Server) handleViewCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).Cart.ViewCart())
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	msg, err := sess.Cart.AddItem(req.Name, req.UnitPrice, req.Quantity)
	if err != nil {
		if errors.Is(err, ordering.ErrInvalidLineItem) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "could not add item")
		return
	}
	writeJSON(w, http.StatusOK, addItemResponse{Message: msg, Cart: sess.Cart.ViewCart()})
}

func (s *Server) handleRemoveItem(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	sess.Cart.RemoveItem(chi.URLParam(r, "name"))
	writeJSON(w, http.StatusOK, sess.Cart.ViewCart())
}

func (s *Server) handleValidateOrder(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionFrom(r).Placement.ValidateOrder())
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	// The preview is only defined for a valid cart.
	if result := sess.Placement.ValidateOrder(); !result.Success {
		writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}
	writeJSON(w, http.StatusOK, sess.Placement.ProceedToCheckout())
}

func (s *Server) handleConfirmOrder(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	var req confirmOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if result := sess.Placement.ValidateOrder(); !result.Success {
		writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}
	if err := s.gateway.ValidatePaymentMethod(req.PaymentMethod, req.CardDetails); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	summary := sess.Placement.ProceedToCheckout()
	pm := payments.GatewayMethod{Gateway: s.gateway, Method: req.PaymentMethod, Details: req.CardDetails}
	result := sess.Placement.ConfirmOrder(r.Context(), pm)
	if !result.Success {
		s.log.Info("payment_declined", map[string]any{"email": sess.Email})
		writeJSON(w, http.StatusPaymentRequired, result)
		return
	}

	event := OrderConfirmedEvent{
		OrderID:           result.OrderID,
		Email:             sess.Email,
		Restaurant:        sess.Restaurant,
		DeliveryAddress:   summary.DeliveryAddress,
		Total:             summary.TotalInfo.Total,
		EstimatedDelivery: result.EstimatedDelivery,
		ConfirmedAt:       time.Now().UTC(),
	}
	if err := s.publisher.PublishOrderConfirmed(r.Context(), event); err != nil {
		// The order already went through; notification loss is logged,
		// not surfaced to the customer.
		s.log.Error("notification_publish_failed", err, map[string]any{"order_id": result.OrderID})
	}

	s.log.Info("order_confirmed", map[string]any{
		"order_id": result.OrderID,
		"email":    sess.Email,
		"total":    summary.TotalInfo.Total.String(),
	})
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := s.sessions.Get(r.Header.Get(sessionHeader))
		if !ok {
			writeError(w, http.StatusUnauthorized, "missing or unknown session token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
	})
}

func sessionFrom(r *http.Request) *Session {
	return r.Context().Value(sessionKey{}).(*Session)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
