package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"food-delivery/internal/common/db"
)

// PGStore keeps accounts in the users table.
type PGStore struct {
	conn *db.Conn
}

func NewPGStore(conn *db.Conn) *PGStore { return &PGStore{conn: conn} }

func (s *PGStore) Get(ctx context.Context, email string) (User, bool, error) {
	var u User
	err := s.conn.QueryRow(ctx,
		`SELECT email, password, confirmed FROM users WHERE email = $1`, email,
	).Scan(&u.Email, &u.Password, &u.Confirmed)
	if errors.Is(err, pgx.ErrNoRows) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, fmt.Errorf("query user: %w", err)
	}
	return u, true, nil
}

func (s *PGStore) Put(ctx context.Context, user User) error {
	_, err := s.conn.Exec(ctx, `
		INSERT INTO users (email, password, confirmed)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET password = EXCLUDED.password, confirmed = EXCLUDED.confirmed`,
		user.Email, user.Password, user.Confirmed)
	if err != nil {
		return fmt.Errorf("upsert user: %w", err)
	}
	return nil
}
