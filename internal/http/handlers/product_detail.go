package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"flipkartmini.com/app/internal/http/render"
	"flipkartmini.com/app/internal/modules/cart"
	"flipkartmini.com/app/internal/modules/catalog"
	"flipkartmini.com/app/pkg/view"
)

type ProductHandler struct {
	Catalog *catalog.Service
	Cart    cart.Store
}

func NewProductHandler(svc *catalog.Service, store cart.Store) *ProductHandler {
	return &ProductHandler{Catalog: svc, Cart: store}
}

// Show handles GET /product/:id.
func (h *ProductHandler) Show(c *gin.Context) {
	id := c.Param("id")

	p, err := h.Catalog.Get(c.Request.Context(), id)
	if err != nil {
		render.Page(c, http.StatusNotFound, "not_found", view.HomePage{
			Layout: layoutFor(c, "Product not found", h.Cart),
		})
		return
	}

	specs := make([]view.SpecRow, 0, len(p.Specs))
	for k, v := range p.Specs {
		specs = append(specs, view.SpecRow{Name: k, Value: v})
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })

	vm := view.ProductDetailPage{
		Layout:      layoutFor(c, p.Name, h.Cart),
		ID:          p.ID,
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    p.Category,
		Description: p.Description,
		Price:       view.Money(p.Price),
		Stars:       view.Stars(p.Rating),
		Images:      p.Images,
		Specs:       specs,
		InStock:     p.Stock > 0,
		QtyOptions:  []int{1, 2, 3, 4, 5},
	}
	render.Page(c, http.StatusOK, "product_detail", vm)
}
