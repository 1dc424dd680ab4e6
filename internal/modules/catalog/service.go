package catalog

import (
	"context"
	"net/url"

	"flipkartmini.com/app/internal/api"
)

// Service exposes the backend's product endpoints. Listing and detail are
// public; create and delete require an admin bearer token (also enforced
// server-side - the token is just forwarded).
type Service struct {
	api *api.Client
}

func NewService(client *api.Client) *Service {
	return &Service{api: client}
}

// List fetches products, optionally filtered by free-text query and
// category. Absent filters are omitted from the request entirely; the "All"
// category counts as absent.
func (s *Service) List(ctx context.Context, query, category string) ([]Product, error) {
	params := url.Values{}
	if query != "" {
		params.Set("q", query)
	}
	if category != "" && category != CategoryAll {
		params.Set("category", category)
	}

	path := "/products"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var out []Product
	if err := s.api.Get(ctx, path, &out, ""); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (Product, error) {
	var out Product
	if err := s.api.Get(ctx, "/products/"+url.PathEscape(id), &out, ""); err != nil {
		return Product{}, err
	}
	return out, nil
}

// CreateInput is the admin create-product payload. Images and Specs arrive
// already parsed; coercion from form text happens in the handler.
type CreateInput struct {
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

func (s *Service) Create(ctx context.Context, in CreateInput, token string) (Product, error) {
	var out Product
	if err := s.api.Post(ctx, "/products", in, &out, token); err != nil {
		return Product{}, err
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id, token string) error {
	return s.api.Delete(ctx, "/products/"+url.PathEscape(id), nil, token)
}
