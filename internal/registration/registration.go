package registration

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"unicode"
)

var (
	ErrInvalidEmail     = errors.New("Invalid email format")
	ErrPasswordMismatch = errors.New("Passwords do not match")
	ErrWeakPassword     = errors.New("Password is not strong enough")
	ErrDuplicateEmail   = errors.New("Email already registered")
)

var emailPattern = regexp.MustCompile(`^\w+@(\w+\.)+[a-zA-Z]+$`)

// User is one registered account. Passwords are stored as entered; this
// is a demo identity store, not an auth system.
type User struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Confirmed bool   `json:"confirmed"`
}

// UserStore is the repository the registration service writes through.
// Implementations must make Put fail-safe for concurrent callers.
type UserStore interface {
	Get(ctx context.Context, email string) (User, bool, error)
	Put(ctx context.Context, user User) error
}

// Service validates and registers new accounts against a UserStore.
type Service struct {
	store UserStore
}

func NewService(store UserStore) *Service { return &Service{store: store} }

// Register checks email shape, password confirmation and strength, and
// rejects duplicate emails. The new account starts unconfirmed.
func (s *Service) Register(ctx context.Context, email, password, confirmPassword string) error {
	if !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}
	if password != confirmPassword {
		return ErrPasswordMismatch
	}
	if !strongPassword(password) {
		return ErrWeakPassword
	}
	_, exists, err := s.store.Get(ctx, email)
	if err != nil {
		return fmt.Errorf("look up %s: %w", email, err)
	}
	if exists {
		return ErrDuplicateEmail
	}
	if err := s.store.Put(ctx, User{Email: email, Password: password}); err != nil {
		return fmt.Errorf("store user %s: %w", email, err)
	}
	return nil
}

// Authenticate reports whether the email exists with a matching password.
func (s *Service) Authenticate(ctx context.Context, email, password string) (bool, error) {
	user, exists, err := s.store.Get(ctx, email)
	if err != nil {
		return false, fmt.Errorf("look up %s: %w", email, err)
	}
	return exists && user.Password == password, nil
}

// A strong password has at least 8 characters, one letter and one digit.
func strongPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
