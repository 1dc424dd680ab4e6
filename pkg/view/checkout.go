package view

// CheckoutForm echoes the delivery form fields back on validation failure so
// the user never loses what they typed.
type CheckoutForm struct {
	Name          string
	Phone         string
	Address       string
	PaymentMethod string
}

type SummaryLine struct {
	Name      string
	Quantity  int
	LineTotal string
}

type CheckoutPage struct {
	Layout
	Form           CheckoutForm
	Errors         map[string]string
	PaymentMethods []string
	Summary        []SummaryLine
	Total          string
}
