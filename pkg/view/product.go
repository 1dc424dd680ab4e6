package view

// ProductCard is one tile on the listing grid.
type ProductCard struct {
	ID       string
	Name     string
	Brand    string
	ImageURL string
	Price    string
	Stars    string
}

type HomePage struct {
	Layout
	Products []ProductCard
	LoadErr  string
}

type SpecRow struct {
	Name  string
	Value string
}

type ProductDetailPage struct {
	Layout
	ID          string
	Name        string
	Brand       string
	Category    string
	Description string
	Price       string
	Stars       string
	Images      []string
	Specs       []SpecRow
	InStock     bool
	QtyOptions  []int
}
