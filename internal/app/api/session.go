package api

import (
	"sync"

	"github.com/google/uuid"

	"food-delivery/internal/ordering"
)

// Session is one logged-in user's workspace: their cart, profile and the
// order workflow bound to the currently selected restaurant menu.
type Session struct {
	Token      string
	Email      string
	Restaurant string
	Cart       *ordering.Cart
	Profile    ordering.UserProfile
	Placement  *ordering.OrderPlacement
}

// SelectMenu rebinds the order workflow to a new menu snapshot. The cart
// carries over; validation decides whether its items fit the new menu.
func (s *Session) SelectMenu(restaurant string, items []string, ids ordering.IDGenerator) {
	s.Restaurant = restaurant
	s.Placement = ordering.NewOrderPlacement(s.Cart, s.Profile, ordering.NewRestaurantMenu(items...))
	if ids != nil {
		s.Placement.UseIDGenerator(ids)
	}
}

// SessionManager owns every active session. The cart and order workflow
// inside a session are single-threaded; the manager only guards the map.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[string]*Session)}
}

func (m *SessionManager) Create(email string, profile ordering.UserProfile) *Session {
	sess := &Session{
		Token:   uuid.NewString(),
		Email:   email,
		Cart:    ordering.NewCart(),
		Profile: profile,
	}
	m.mu.Lock()
	m.sessions[sess.Token] = sess
	m.mu.Unlock()
	return sess
}

func (m *SessionManager) Get(token string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[token]
	return sess, ok
}

func (m *SessionManager) Drop(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}
