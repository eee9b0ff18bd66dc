package db

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		email      TEXT PRIMARY KEY,
		password   TEXT NOT NULL,
		confirmed  BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS restaurants (
		id           SERIAL PRIMARY KEY,
		name         TEXT NOT NULL UNIQUE,
		cuisine      TEXT NOT NULL,
		location     TEXT NOT NULL,
		phone_number TEXT NOT NULL DEFAULT '',
		rating       DOUBLE PRECISION NOT NULL DEFAULT 0,
		price_range  TEXT NOT NULL DEFAULT '$',
		delivery     BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS menu_items (
		id            SERIAL PRIMARY KEY,
		restaurant_id INT NOT NULL REFERENCES restaurants(id) ON DELETE CASCADE,
		name          TEXT NOT NULL,
		UNIQUE (restaurant_id, name)
	)`,
}

// Migrate creates the tables the services read from. Orders are not
// persisted; only users, restaurants and their menus live in Postgres.
func Migrate(ctx context.Context, c *Conn) error {
	for _, stmt := range schema {
		if _, err := c.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
