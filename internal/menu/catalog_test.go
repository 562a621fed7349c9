package menu

import "testing"

func TestFind(t *testing.T) {
	tests := []struct {
		name      string
		id        int
		wantName  string
		wantPrice float64
		wantOK    bool
	}{
		{name: "coffee", id: 1, wantName: "Coffee", wantPrice: 3.5, wantOK: true},
		{name: "bagel", id: 8, wantName: "Bagel", wantPrice: 2.5, wantOK: true},
		{name: "unknown id", id: 99, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := Find(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("Find(%d) ok = %v, want %v", tt.id, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if item.Name != tt.wantName || item.Price != tt.wantPrice {
				t.Errorf("Find(%d) = %q %.2f, want %q %.2f", tt.id, item.Name, item.Price, tt.wantName, tt.wantPrice)
			}
		})
	}
}

func TestCategories_UniqueIDs(t *testing.T) {
	seen := make(map[int]bool)
	for _, cat := range Categories() {
		if len(cat.Items) == 0 {
			t.Errorf("category %q has no items", cat.Name)
		}
		for _, item := range cat.Items {
			if seen[item.ID] {
				t.Errorf("duplicate catalog id %d", item.ID)
			}
			seen[item.ID] = true
			if item.Price < 0 {
				t.Errorf("item %q has negative price %v", item.Name, item.Price)
			}
			if item.ImageURL == "" {
				t.Errorf("item %q has no image url", item.Name)
			}
		}
	}
}

func TestCategories_ReturnsCopy(t *testing.T) {
	cats := Categories()
	cats[0].Items[0].Price = 100

	again := Categories()
	if again[0].Items[0].Price == 100 {
		t.Error("mutating the returned catalog leaked into the package catalog")
	}
}

func TestItemMenuItem(t *testing.T) {
	item := Item{ID: 3, Name: "Latte", Price: 4.5, ImageURL: "x"}
	mi := item.MenuItem()
	if mi.ID != 3 || mi.Name != "Latte" || mi.Price != 4.5 {
		t.Errorf("MenuItem() = %+v", mi)
	}
}
