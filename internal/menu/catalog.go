// Package menu holds the static, read-only menu catalog. The order store
// never touches it; views read it to build add-to-cart calls.
package menu

import "cafe-kiosk/internal/models"

// Item is a catalog entry: a purchasable menu item plus its picture
type Item struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

// MenuItem converts the catalog entry into the order-domain item
func (i Item) MenuItem() models.MenuItem {
	return models.MenuItem{ID: i.ID, Name: i.Name, Price: i.Price}
}

// Category is a named group of catalog entries
type Category struct {
	Name  string `json:"category"`
	Items []Item `json:"items"`
}

var catalog = []Category{
	{
		Name: "Drinks",
		Items: []Item{
			{ID: 1, Name: "Coffee", Price: 3.5, ImageURL: "https://images.unsplash.com/photo-1509042239860-f550ce710b93?w=100&h=100&fit=crop&crop=center"},
			{ID: 2, Name: "Tea", Price: 2.5, ImageURL: "https://images.unsplash.com/photo-1544787219-7f47ccb76574?w=100&h=100&fit=crop&crop=center"},
			{ID: 3, Name: "Latte", Price: 4.5, ImageURL: "https://images.unsplash.com/photo-1561043433-9265f73e685f?w=100&h=100&fit=crop&crop=center"},
			{ID: 4, Name: "Cappuccino", Price: 4.0, ImageURL: "https://images.unsplash.com/photo-1572442388796-11668a67e53d?w=100&h=100&fit=crop&crop=center"},
		},
	},
	{
		Name: "Snacks",
		Items: []Item{
			{ID: 5, Name: "Muffin", Price: 2.0, ImageURL: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=100&h=100&fit=crop&crop=center"},
			{ID: 6, Name: "Cookie", Price: 1.5, ImageURL: "https://images.unsplash.com/photo-1499636136210-6f4ee915583e?w=100&h=100&fit=crop&crop=center"},
			{ID: 7, Name: "Croissant", Price: 3.0, ImageURL: "https://images.unsplash.com/photo-1555507036-ab1f4038808a?w=100&h=100&fit=crop&crop=center"},
			{ID: 8, Name: "Bagel", Price: 2.5, ImageURL: "https://images.unsplash.com/photo-1603046891744-76e6300df9e9?w=100&h=100&fit=crop&crop=center"},
		},
	},
}

// Categories returns the full catalog grouped by category
func Categories() []Category {
	out := make([]Category, len(catalog))
	for i, cat := range catalog {
		out[i] = Category{Name: cat.Name, Items: append([]Item(nil), cat.Items...)}
	}
	return out
}

// Find looks a catalog entry up by id
func Find(id int) (Item, bool) {
	for _, cat := range catalog {
		for _, item := range cat.Items {
			if item.ID == id {
				return item, true
			}
		}
	}
	return Item{}, false
}
