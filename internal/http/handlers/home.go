package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flipkartmini.com/app/internal/http/render"
	"flipkartmini.com/app/internal/modules/cart"
	"flipkartmini.com/app/internal/modules/catalog"
	"flipkartmini.com/app/pkg/view"
)

// HomeHandler renders the listing page with optional search/category filter.
type HomeHandler struct {
	Catalog *catalog.Service
	Cart    cart.Store
}

func NewHomeHandler(svc *catalog.Service, store cart.Store) *HomeHandler {
	return &HomeHandler{Catalog: svc, Cart: store}
}

// Get handles GET /?q=&cat=. "All" and absent both mean no category filter;
// one backend fetch per render, bound to the request context.
func (h *HomeHandler) Get(c *gin.Context) {
	vm := view.HomePage{Layout: layoutFor(c, "Top Deals", h.Cart)}

	prods, err := h.Catalog.List(c.Request.Context(), c.Query("q"), c.Query("cat"))
	if err != nil {
		vm.LoadErr = "Could not load products. Please try again."
		render.Page(c, http.StatusOK, "home", vm)
		return
	}

	vm.Products = make([]view.ProductCard, 0, len(prods))
	for _, p := range prods {
		vm.Products = append(vm.Products, view.ProductCard{
			ID:       p.ID,
			Name:     p.Name,
			Brand:    p.Brand,
			ImageURL: p.FirstImage(),
			Price:    view.Money(p.Price),
			Stars:    view.Stars(p.Rating),
		})
	}
	render.Page(c, http.StatusOK, "home", vm)
}
