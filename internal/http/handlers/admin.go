package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"

	"flipkartmini.com/app/internal/http/flash"
	"flipkartmini.com/app/internal/http/middleware"
	"flipkartmini.com/app/internal/http/render"
	"flipkartmini.com/app/internal/http/validation"
	"flipkartmini.com/app/internal/modules/cart"
	"flipkartmini.com/app/internal/modules/catalog"
	"flipkartmini.com/app/pkg/view"
)

// AdminHandler is the product-management panel: list, create, delete. There
// is deliberately no edit operation. Entry is guarded by RequireAdmin; the
// backend still authorizes the forwarded token on every mutation.
type AdminHandler struct {
	Catalog *catalog.Service
	Cart    cart.Store
	Flash   *flash.Codec
}

func NewAdminHandler(svc *catalog.Service, store cart.Store, flashCodec *flash.Codec) *AdminHandler {
	return &AdminHandler{Catalog: svc, Cart: store, Flash: flashCodec}
}

func (h *AdminHandler) Get(c *gin.Context) {
	vm := h.pageVM(c)
	render.Page(c, http.StatusOK, "admin", vm)
}

// Create handles POST /admin/products. Numeric fields arrive as text and are
// coerced with recoverable per-field errors; a malformed specs JSON string
// is a field error, never a crash.
func (h *AdminHandler) Create(c *gin.Context) {
	form := view.AdminProductForm{
		Name:        strings.TrimSpace(c.PostForm("name")),
		Brand:       strings.TrimSpace(c.PostForm("brand")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Price:       strings.TrimSpace(c.PostForm("price")),
		Category:    strings.TrimSpace(c.PostForm("category")),
		Rating:      strings.TrimSpace(c.PostForm("rating")),
		Images:      strings.TrimSpace(c.PostForm("images")),
		Specs:       strings.TrimSpace(c.PostForm("specs")),
		Stock:       strings.TrimSpace(c.PostForm("stock")),
	}

	in, errs := parseProductForm(form)
	if len(errs) > 0 {
		vm := h.pageVM(c)
		vm.Form = form
		vm.Errors = errs
		render.Page(c, http.StatusBadRequest, "admin", vm)
		return
	}

	sess, _ := middleware.CurrentSession(c)
	if _, err := h.Catalog.Create(c.Request.Context(), in, sess.Token); err != nil {
		vm := h.pageVM(c)
		vm.Form = form
		vm.Layout.Flash = &view.Flash{Kind: view.FlashError, Message: "Could not create product."}
		render.Page(c, http.StatusOK, "admin", vm)
		return
	}

	render.RedirectWithFlash(c, h.Flash, "/admin", view.FlashSuccess, "Product added.")
}

// Delete handles POST /admin/products/delete, then reloads the list via the
// redirect.
func (h *AdminHandler) Delete(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("id"))
	if id == "" {
		render.RedirectWithFlash(c, h.Flash, "/admin", view.FlashError, "No product selected.")
		return
	}

	sess, _ := middleware.CurrentSession(c)
	if err := h.Catalog.Delete(c.Request.Context(), id, sess.Token); err != nil {
		render.RedirectWithFlash(c, h.Flash, "/admin", view.FlashError, "Could not delete product.")
		return
	}
	render.RedirectWithFlash(c, h.Flash, "/admin", view.FlashSuccess, "Product deleted.")
}

func (h *AdminHandler) pageVM(c *gin.Context) view.AdminPage {
	vm := view.AdminPage{
		Layout:          layoutFor(c, "Admin", h.Cart),
		CategoryOptions: catalog.Categories[1:],
		Form:            view.AdminProductForm{Category: "Mobiles", Rating: "4", Stock: "10"},
	}

	prods, err := h.Catalog.List(c.Request.Context(), "", "")
	if err != nil {
		vm.ListErr = "Could not load products."
		return vm
	}
	vm.Products = make([]view.AdminProductRow, 0, len(prods))
	for _, p := range prods {
		vm.Products = append(vm.Products, view.AdminProductRow{
			ID:    p.ID,
			Name:  p.Name,
			Price: view.Money(p.Price),
		})
	}
	return vm
}

// parseProductForm coerces the raw form text into a create payload. Every
// bad field comes back as a message keyed by the input name.
func parseProductForm(form view.AdminProductForm) (catalog.CreateInput, validation.FieldErrors) {
	errs := validation.FieldErrors{}

	if form.Name == "" {
		errs["name"] = "This field is required."
	}

	price, err := cast.ToFloat64E(form.Price)
	if err != nil || price < 0 {
		errs["price"] = "Enter a valid price."
	}

	rating := 0.0
	if form.Rating != "" {
		rating, err = cast.ToFloat64E(form.Rating)
		if err != nil || rating < 0 || rating > 5 {
			errs["rating"] = "Rating must be between 0 and 5."
		}
	}

	stock := 0
	if form.Stock != "" {
		stock, err = cast.ToIntE(form.Stock)
		if err != nil || stock < 0 {
			errs["stock"] = "Enter a valid stock count."
		}
	}

	images := splitImages(form.Images)

	specs, specErr := parseSpecs(form.Specs)
	if specErr != "" {
		errs["specs"] = specErr
	}

	if len(errs) > 0 {
		return catalog.CreateInput{}, errs
	}

	return catalog.CreateInput{
		Name:        form.Name,
		Brand:       form.Brand,
		Description: form.Description,
		Price:       price,
		Category:    form.Category,
		Rating:      rating,
		Images:      images,
		Specs:       specs,
		Stock:       stock,
	}, nil
}

func splitImages(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseSpecs validates the free-form specs JSON. Non-string values are
// stringified rather than rejected; anything that is not a JSON object is a
// field error.
func parseSpecs(s string) (map[string]string, string) {
	if s == "" {
		return map[string]string{}, ""
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(s), &raw); err != nil {
		return nil, `Specs must be a JSON object, e.g. {"ram":"8GB"}.`
	}

	out := make(map[string]string, len(raw))
	for k, v := range raw {
		out[k] = cast.ToString(v)
	}
	return out, ""
}
