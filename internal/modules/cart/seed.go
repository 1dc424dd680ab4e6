package cart

// DemoItems are the sample lines seeded into a first-time empty cart when
// demo seeding is enabled. Seeding is an explicit, opt-in policy
// (CART_SEED_DEMO) rather than a side effect of every empty read.
func DemoItems() []Item {
	return []Item{
		{
			ProductID: "demo1",
			Name:      "Sample Headphones",
			Price:     1999,
			Image:     "https://images.unsplash.com/photo-1632140016649-c71eb90f40e1",
			Quantity:  1,
		},
		{
			ProductID: "demo2",
			Name:      "Casual Sneakers",
			Price:     2999,
			Image:     "https://images.unsplash.com/photo-1525966222134-fcfa99b8ae77",
			Quantity:  2,
		},
	}
}

// SeedIfEmpty applies the demo seeding policy: when enabled and the cart is
// empty it fills in the demo lines and reports that a save is needed.
func SeedIfEmpty(crt *Cart, enabled bool) bool {
	if !enabled || !crt.IsEmpty() {
		return false
	}
	crt.Items = DemoItems()
	return true
}
