package browsing

import (
	"context"
	"fmt"

	"food-delivery/internal/common/db"
)

// PGStore reads the catalogue from Postgres.
type PGStore struct {
	conn *db.Conn
}

func NewPGStore(conn *db.Conn) *PGStore { return &PGStore{conn: conn} }

func (s *PGStore) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT name, cuisine, location, phone_number, rating, price_range, delivery
		FROM restaurants
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query restaurants: %w", err)
	}
	defer rows.Close()

	var out []Restaurant
	for rows.Next() {
		var r Restaurant
		if err := rows.Scan(&r.Name, &r.Cuisine, &r.Location, &r.PhoneNumber, &r.Rating, &r.PriceRange, &r.Delivery); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *PGStore) MenuItems(ctx context.Context, restaurant string) ([]string, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT mi.name
		FROM menu_items mi
		JOIN restaurants r ON r.id = mi.restaurant_id
		WHERE r.name = $1
		ORDER BY mi.id`, restaurant)
	if err != nil {
		return nil, fmt.Errorf("query menu items: %w", err)
	}
	defer rows.Close()

	var items []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, name)
	}
	return items, rows.Err()
}

// Seed inserts the demo catalogue so a fresh database behaves like the
// in-memory store. Existing rows are left alone.
func (s *PGStore) Seed(ctx context.Context) error {
	mem := NewMemoryStore()
	for _, r := range mem.restaurants {
		var id int
		err := s.conn.QueryRow(ctx, `
			INSERT INTO restaurants (name, cuisine, location, phone_number, rating, price_range, delivery)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (name) DO UPDATE SET rating = EXCLUDED.rating
			RETURNING id`,
			r.Name, r.Cuisine, r.Location, r.PhoneNumber, r.Rating, r.PriceRange, r.Delivery,
		).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed restaurant %s: %w", r.Name, err)
		}
		for _, item := range mem.menus[r.Name] {
			if _, err := s.conn.Exec(ctx, `
				INSERT INTO menu_items (restaurant_id, name)
				VALUES ($1, $2)
				ON CONFLICT (restaurant_id, name) DO NOTHING`, id, item); err != nil {
				return fmt.Errorf("seed menu item %s: %w", item, err)
			}
		}
	}
	return nil
}
