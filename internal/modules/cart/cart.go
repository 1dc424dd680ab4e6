package cart

import "flipkartmini.com/app/internal/modules/catalog"

// Item is one cart line: a product id plus a denormalized snapshot of the
// product's name, price and primary image taken at add time. Quantity is
// always >= 1; at most one line exists per product id.
type Item struct {
	ProductID string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Cart is the ordered list of line items. All mutations preserve the
// relative order of untouched lines.
type Cart struct {
	Items []Item `json:"items"`
}

// Add merges qty into an existing line for the same product, or appends a
// new line with a fresh snapshot. qty values below 1 count as 1.
func (c *Cart) Add(p catalog.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == p.ID {
			c.Items[i].Quantity += qty
			return
		}
	}
	c.Items = append(c.Items, Item{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.FirstImage(),
		Quantity:  qty,
	})
}

// UpdateQty adjusts the line at idx by delta, clamped to a minimum of 1.
// Decrementing a quantity of 1 leaves it at 1; lines are never removed here.
// Out-of-range indexes are ignored.
func (c *Cart) UpdateQty(idx, delta int) {
	if idx < 0 || idx >= len(c.Items) {
		return
	}
	q := c.Items[idx].Quantity + delta
	if q < 1 {
		q = 1
	}
	c.Items[idx].Quantity = q
}

// Remove deletes the line at idx. Out-of-range indexes are ignored.
func (c *Cart) Remove(idx int) {
	if idx < 0 || idx >= len(c.Items) {
		return
	}
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

// Total recomputes sum(price * quantity) on every call; it is never cached.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Count is the number of distinct lines.
func (c *Cart) Count() int { return len(c.Items) }

func (c *Cart) IsEmpty() bool { return len(c.Items) == 0 }
