package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"flipkartmini.com/app/internal/http/flash"
	"flipkartmini.com/app/internal/http/render"
	"flipkartmini.com/app/internal/modules/cart"
	"flipkartmini.com/app/internal/modules/catalog"
	"flipkartmini.com/app/pkg/view"
)

// CartHandler owns the cart page and its mutations. All state goes through
// the injected cart.Store; the handler never touches cookies directly.
type CartHandler struct {
	Catalog  *catalog.Service
	Store    cart.Store
	Flash    *flash.Codec
	SeedDemo bool
}

func NewCartHandler(svc *catalog.Service, store cart.Store, flashCodec *flash.Codec, seedDemo bool) *CartHandler {
	return &CartHandler{Catalog: svc, Store: store, Flash: flashCodec, SeedDemo: seedDemo}
}

// Get handles GET /cart. With demo seeding enabled, a first-time empty cart
// is filled with the sample lines and persisted immediately.
func (h *CartHandler) Get(c *gin.Context) {
	crt := h.Store.Load(c)
	if cart.SeedIfEmpty(&crt, h.SeedDemo) {
		h.Store.Save(c, crt)
	}

	vm := view.CartPage{
		Layout:    layoutFor(c, "Your Cart", h.Store),
		Lines:     make([]view.CartLine, 0, len(crt.Items)),
		ItemCount: crt.Count(),
		Total:     view.Money(crt.Total()),
		IsEmpty:   crt.IsEmpty(),
	}
	vm.Layout.CartCount = crt.Count()
	for i, it := range crt.Items {
		vm.Lines = append(vm.Lines, view.CartLine{
			Index:     i,
			ProductID: it.ProductID,
			Name:      it.Name,
			ImageURL:  it.Image,
			Price:     view.Money(it.Price),
			Quantity:  it.Quantity,
			LineTotal: view.Money(it.Price * float64(it.Quantity)),
		})
	}
	render.Page(c, http.StatusOK, "cart", vm)
}

// Add handles POST /cart/add - snapshots the product into the cart and sends
// the user to the cart page.
func (h *CartHandler) Add(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	if productID == "" {
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "No product selected.")
		return
	}

	qty := 1
	if v := strings.TrimSpace(c.PostForm("qty")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 99 {
			qty = n
		}
	}

	p, err := h.Catalog.Get(c.Request.Context(), productID)
	if err != nil {
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "Could not add to cart.")
		return
	}

	crt := h.Store.Load(c)
	crt.Add(p, qty)
	h.Store.Save(c, crt)

	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Added to cart.")
}

// Update handles POST /cart/items/update - adjusts a line's quantity by
// delta, clamped at 1. Decrementing a quantity of 1 is a no-op, never a
// removal.
func (h *CartHandler) Update(c *gin.Context) {
	idx, ok := formIndex(c)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Item not found.")
		return
	}

	delta, err := strconv.Atoi(strings.TrimSpace(c.PostForm("delta")))
	if err != nil || delta == 0 {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Invalid quantity change.")
		return
	}

	crt := h.Store.Load(c)
	if idx >= len(crt.Items) {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Item not found.")
		return
	}
	crt.UpdateQty(idx, delta)
	h.Store.Save(c, crt)

	c.Redirect(http.StatusFound, "/cart")
}

// Remove handles POST /cart/items/remove - deletes the line at index,
// preserving the order of the rest.
func (h *CartHandler) Remove(c *gin.Context) {
	idx, ok := formIndex(c)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Item not found.")
		return
	}

	crt := h.Store.Load(c)
	if idx >= len(crt.Items) {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Item not found.")
		return
	}
	crt.Remove(idx)
	h.Store.Save(c, crt)

	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Item removed.")
}

func formIndex(c *gin.Context) (int, bool) {
	idx, err := strconv.Atoi(strings.TrimSpace(c.PostForm("index")))
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}
