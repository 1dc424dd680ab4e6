package view

// CartLine is one row on the cart page. Index is the line's position in the
// stored cart; quantity and remove forms post it back.
type CartLine struct {
	Index     int
	ProductID string
	Name      string
	ImageURL  string
	Price     string
	Quantity  int
	LineTotal string
}

type CartPage struct {
	Layout
	Lines     []CartLine
	ItemCount int
	Total     string
	IsEmpty   bool
}
