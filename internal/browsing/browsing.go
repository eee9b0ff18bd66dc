package browsing

import (
	"context"
	"fmt"
	"strings"
)

// Restaurant is one row of the restaurant catalogue.
type Restaurant struct {
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	Location    string  `json:"location"`
	PhoneNumber string  `json:"phonenumber"`
	Rating      float64 `json:"rating"`
	PriceRange  string  `json:"price_range"`
	Delivery    bool    `json:"delivery"`
}

// Store supplies the restaurant catalogue and per-restaurant menus.
type Store interface {
	ListRestaurants(ctx context.Context) ([]Restaurant, error)
	MenuItems(ctx context.Context, restaurant string) ([]string, error)
}

// Filters narrows a restaurant search. Zero values mean "no filter".
type Filters struct {
	Cuisine   string
	Location  string
	MinRating float64
}

// Browsing filters the catalogue by cuisine, location and rating.
type Browsing struct {
	store Store
}

func New(store Store) *Browsing { return &Browsing{store: store} }

func (b *Browsing) SearchByCuisine(ctx context.Context, cuisine string) ([]Restaurant, error) {
	return b.SearchByFilters(ctx, Filters{Cuisine: cuisine})
}

func (b *Browsing) SearchByLocation(ctx context.Context, location string) ([]Restaurant, error) {
	return b.SearchByFilters(ctx, Filters{Location: location})
}

func (b *Browsing) SearchByRating(ctx context.Context, minRating float64) ([]Restaurant, error) {
	return b.SearchByFilters(ctx, Filters{MinRating: minRating})
}

// SearchByFilters applies every non-zero filter: case-insensitive
// substring match for cuisine and location, inclusive threshold for the
// minimum rating.
func (b *Browsing) SearchByFilters(ctx context.Context, f Filters) ([]Restaurant, error) {
	all, err := b.store.ListRestaurants(ctx)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	results := make([]Restaurant, 0, len(all))
	for _, r := range all {
		if f.Cuisine != "" && !containsFold(r.Cuisine, f.Cuisine) {
			continue
		}
		if f.Location != "" && !containsFold(r.Location, f.Location) {
			continue
		}
		if f.MinRating > 0 && r.Rating < f.MinRating {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}

// Menu returns the orderable item names for a restaurant.
func (b *Browsing) Menu(ctx context.Context, restaurant string) ([]string, error) {
	items, err := b.store.MenuItems(ctx, restaurant)
	if err != nil {
		return nil, fmt.Errorf("menu for %s: %w", restaurant, err)
	}
	return items, nil
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
