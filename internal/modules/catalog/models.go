package catalog

// Product is the backend's product record. The client never stores these;
// each page fetches its own transient copy.
type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Brand       string            `json:"brand"`
	Description string            `json:"description"`
	Price       float64           `json:"price"`
	Category    string            `json:"category"`
	Rating      float64           `json:"rating"`
	Images      []string          `json:"images"`
	Specs       map[string]string `json:"specs"`
	Stock       int               `json:"stock"`
}

// FirstImage returns the primary image URL or "" when the product has none.
func (p Product) FirstImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// Categories is the fixed category set shown in the header. "All" means no
// filter; free-text categories from the backend still render, they just have
// no dedicated nav entry.
var Categories = []string{"All", "Mobiles", "Laptops", "Accessories", "Fashion"}

// CategoryAll disables category filtering when selected.
const CategoryAll = "All"
