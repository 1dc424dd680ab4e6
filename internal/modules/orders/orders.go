package orders

import (
	"context"

	"flipkartmini.com/app/internal/api"
	"flipkartmini.com/app/internal/modules/cart"
)

// Line is one ordered product inside an order payload.
type Line struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image"`
}

// Order is write-only from this client's perspective: it is assembled at
// checkout, handed to the backend, and no copy is retained afterwards.
type Order struct {
	UserID        string  `json:"user_id"`
	Items         []Line  `json:"items"`
	Total         float64 `json:"total"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Phone         string  `json:"phone"`
	PaymentMethod string  `json:"payment_method"`
}

// PaymentMethods are the accepted payment selections on the delivery form.
var PaymentMethods = []string{"COD", "Card", "UPI"}

type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// Build assembles an order from the session user, the current cart and the
// delivery form. Total is recomputed from the cart, not taken from a field.
func Build(userID string, crt cart.Cart, name, address, phone, paymentMethod string) Order {
	lines := make([]Line, 0, len(crt.Items))
	for _, it := range crt.Items {
		lines = append(lines, Line{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			Image:     it.Image,
		})
	}
	return Order{
		UserID:        userID,
		Items:         lines,
		Total:         crt.Total(),
		Name:          name,
		Address:       address,
		Phone:         phone,
		PaymentMethod: paymentMethod,
	}
}

// Place submits the order. One attempt, no retry; the caller decides how to
// surface a failure.
func (s *Service) Place(ctx context.Context, o Order, token string) error {
	return s.api.Post(ctx, "/orders", o, nil, token)
}
