package browsing

import "context"

// MemoryStore is the seeded in-memory catalogue used for the demo and
// in tests when no database is configured.
type MemoryStore struct {
	restaurants []Restaurant
	menus       map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		restaurants: []Restaurant{
			{Name: "Italian Bistro", Cuisine: "Italian", Location: "Downtown", PhoneNumber: "+535 836 7284", Rating: 4.5, PriceRange: "$$", Delivery: true},
			{Name: "Sushi House", Cuisine: "Japanese", Location: "Midtown", PhoneNumber: "+535 739 9483", Rating: 4.8, PriceRange: "$$$", Delivery: false},
			{Name: "Burger King", Cuisine: "Fast Food", Location: "Uptown", PhoneNumber: "+535 824 9274", Rating: 4.0, PriceRange: "$", Delivery: true},
			{Name: "Taco Town", Cuisine: "Mexican", Location: "Downtown", PhoneNumber: "+535 123 4325", Rating: 4.2, PriceRange: "$", Delivery: true},
			{Name: "Pizza Palace", Cuisine: "Italian", Location: "Uptown", PhoneNumber: "+535 223 5535", Rating: 3.9, PriceRange: "$$", Delivery: true},
		},
		menus: map[string][]string{
			"Italian Bistro": {"Pizza", "Salad", "Pasta"},
			"Sushi House":    {"Sushi", "Salad"},
			"Burger King":    {"Burger", "Pizza", "Salad"},
			"Taco Town":      {"Taco", "Burrito", "Salad"},
			"Pizza Palace":   {"Pizza", "Burger", "Salad"},
		},
	}
}

func (s *MemoryStore) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	out := make([]Restaurant, len(s.restaurants))
	copy(out, s.restaurants)
	return out, nil
}

func (s *MemoryStore) MenuItems(ctx context.Context, restaurant string) ([]string, error) {
	items := s.menus[restaurant]
	out := make([]string, len(items))
	copy(out, items)
	return out, nil
}
