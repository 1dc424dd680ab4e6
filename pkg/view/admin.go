package view

type AdminProductRow struct {
	ID    string
	Name  string
	Price string
}

// AdminProductForm keeps the create-product inputs as entered text so a
// failed validation round-trips the raw values.
type AdminProductForm struct {
	Name        string
	Brand       string
	Description string
	Price       string
	Category    string
	Rating      string
	Images      string
	Specs       string
	Stock       string
}

type AdminPage struct {
	Layout
	Products []AdminProductRow
	Form     AdminProductForm
	Errors   map[string]string
	// CategoryOptions is the create form's category list, without the "All"
	// pseudo-category the nav uses.
	CategoryOptions []string
	ListErr         string
}
