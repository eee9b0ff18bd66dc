package browsing

import (
	"context"
	"testing"
)

type fakeStore struct {
	restaurants []Restaurant
}

func (f *fakeStore) ListRestaurants(context.Context) ([]Restaurant, error) {
	return f.restaurants, nil
}

func (f *fakeStore) MenuItems(context.Context, string) ([]string, error) {
	return nil, nil
}

func newTestBrowsing() *Browsing {
	return New(&fakeStore{restaurants: []Restaurant{
		{Name: "Pekan pitsa", Cuisine: "Pizza", Location: "NYC", PhoneNumber: "123-456", Rating: 4.5},
		{Name: "Pirjon pitsa", Cuisine: "Italian", Location: "LA", PhoneNumber: "987-654", Rating: 4.5},
		{Name: "Pirjon pitsa", Cuisine: "Italian", Location: "Downtown", PhoneNumber: "987-654", Rating: 3.0},
		{Name: "Kallen pitsa", Cuisine: "Finlandian", Location: "Kannus", PhoneNumber: "987-654", Rating: 5.0},
		{Name: "Italian Bistro", Cuisine: "Italian Bistro", Location: "Downtown", PhoneNumber: "987-654", Rating: 4.0},
	}})
}

func TestSearchByCuisine(t *testing.T) {
	b := newTestBrowsing()
	results, err := b.SearchByCuisine(context.Background(), "Italian")
	if err != nil {
		t.Fatalf("SearchByCuisine() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for _, r := range results {
		if !containsFold(r.Cuisine, "Italian") {
			t.Errorf("restaurant %s has cuisine %s, want Italian match", r.Name, r.Cuisine)
		}
	}
}

func TestSearchByLocation(t *testing.T) {
	b := newTestBrowsing()
	results, err := b.SearchByLocation(context.Background(), "Downtown")
	if err != nil {
		t.Fatalf("SearchByLocation() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Location != "Downtown" {
			t.Errorf("restaurant %s located in %s, want Downtown", r.Name, r.Location)
		}
	}
}

func TestSearchByRating(t *testing.T) {
	b := newTestBrowsing()
	results, err := b.SearchByRating(context.Background(), 4.0)
	if err != nil {
		t.Fatalf("SearchByRating() error = %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for _, r := range results {
		if r.Rating < 4.0 {
			t.Errorf("restaurant %s has rating %.1f, want >= 4.0", r.Name, r.Rating)
		}
	}
}

func TestSearchByFilters(t *testing.T) {
	tests := []struct {
		name      string
		filters   Filters
		wantCount int
		wantFirst string
	}{
		{
			name:      "all filters combined",
			filters:   Filters{Cuisine: "Italian", Location: "Downtown", MinRating: 4.0},
			wantCount: 1,
			wantFirst: "Italian Bistro",
		},
		{
			name:      "partial cuisine match",
			filters:   Filters{Cuisine: "Itali", Location: "Downtown", MinRating: 4.0},
			wantCount: 1,
			wantFirst: "Italian Bistro",
		},
		{
			name:      "partial cuisine and location",
			filters:   Filters{Cuisine: "ali", Location: "ownto", MinRating: 4.0},
			wantCount: 1,
			wantFirst: "Italian Bistro",
		},
		{
			name:      "rating only",
			filters:   Filters{MinRating: 2},
			wantCount: 5,
		},
		{
			name:      "no filters returns everything",
			filters:   Filters{},
			wantCount: 5,
		},
		{
			name:      "case-insensitive cuisine",
			filters:   Filters{Cuisine: "ITALIAN"},
			wantCount: 3,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBrowsing()
			results, err := b.SearchByFilters(context.Background(), tt.filters)
			if err != nil {
				t.Fatalf("SearchByFilters() error = %v", err)
			}
			if len(results) != tt.wantCount {
				t.Fatalf("got %d results, want %d", len(results), tt.wantCount)
			}
			if tt.wantFirst != "" && results[0].Name != tt.wantFirst {
				t.Errorf("first result = %s, want %s", results[0].Name, tt.wantFirst)
			}
		})
	}
}

func TestMemoryStoreMenu(t *testing.T) {
	b := New(NewMemoryStore())
	menu, err := b.Menu(context.Background(), "Burger King")
	if err != nil {
		t.Fatalf("Menu() error = %v", err)
	}
	want := []string{"Burger", "Pizza", "Salad"}
	if len(menu) != len(want) {
		t.Fatalf("menu = %v, want %v", menu, want)
	}
	for i := range want {
		if menu[i] != want[i] {
			t.Errorf("menu[%d] = %s, want %s", i, menu[i], want[i])
		}
	}
}

func TestMemoryStoreUnknownRestaurant(t *testing.T) {
	b := New(NewMemoryStore())
	menu, err := b.Menu(context.Background(), "Nowhere")
	if err != nil {
		t.Fatalf("Menu() error = %v", err)
	}
	if len(menu) != 0 {
		t.Errorf("menu for unknown restaurant = %v, want empty", menu)
	}
}
