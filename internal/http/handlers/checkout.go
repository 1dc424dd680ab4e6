package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flipkartmini.com/app/internal/http/flash"
	"flipkartmini.com/app/internal/http/middleware"
	"flipkartmini.com/app/internal/http/render"
	"flipkartmini.com/app/internal/http/validation"
	"flipkartmini.com/app/internal/modules/cart"
	"flipkartmini.com/app/internal/modules/orders"
	"flipkartmini.com/app/pkg/view"
)

// CheckoutHandler drives the linear checkout flow: collecting the delivery
// form, submitting the order, then success (cart cleared, home) or failure
// (back to the form with cart and fields intact).
type CheckoutHandler struct {
	Store  cart.Store
	Orders *orders.Service
	Flash  *flash.Codec
}

func NewCheckoutHandler(store cart.Store, osvc *orders.Service, flashCodec *flash.Codec) *CheckoutHandler {
	return &CheckoutHandler{Store: store, Orders: osvc, Flash: flashCodec}
}

type checkoutInput struct {
	Name          string `form:"name" binding:"required,min=2,max=100"`
	Phone         string `form:"phone" binding:"required,min=5,max=32"`
	Address       string `form:"address" binding:"required,min=5,max=500"`
	PaymentMethod string `form:"payment_method" binding:"required,oneof=COD Card UPI"`
}

// Get renders the delivery form. Name is prefilled from the session user
// when one exists; an empty cart bounces back to the cart page.
func (h *CheckoutHandler) Get(c *gin.Context) {
	crt := h.Store.Load(c)
	if crt.IsEmpty() {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Your cart is empty.")
		return
	}

	form := view.CheckoutForm{PaymentMethod: "COD"}
	if sess, ok := middleware.CurrentSession(c); ok {
		form.Name = sess.User.Name
	}

	h.renderForm(c, http.StatusOK, crt, form, nil)
}

// Post submits the order. Without a session the attempt is aborted and the
// user is sent to login; nothing is submitted. A backend failure returns the
// user to the form with the cart unchanged - there is no automatic retry.
func (h *CheckoutHandler) Post(c *gin.Context) {
	crt := h.Store.Load(c)
	if crt.IsEmpty() {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "Your cart is empty.")
		return
	}

	var in checkoutInput
	if err := c.ShouldBind(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		h.renderForm(c, http.StatusBadRequest, crt, view.CheckoutForm{
			Name:          in.Name,
			Phone:         in.Phone,
			Address:       in.Address,
			PaymentMethod: in.PaymentMethod,
		}, errs)
		return
	}

	sess, ok := middleware.CurrentSession(c)
	if !ok {
		render.RedirectWithFlash(c, h.Flash, "/login?return_to=%2Fcheckout",
			view.FlashWarning, "Please login to place your order.")
		return
	}

	order := orders.Build(sess.User.ID, crt, in.Name, in.Address, in.Phone, in.PaymentMethod)
	if err := h.Orders.Place(c.Request.Context(), order, sess.Token); err != nil {
		h.renderFormWithFlash(c, crt, view.CheckoutForm{
			Name:          in.Name,
			Phone:         in.Phone,
			Address:       in.Address,
			PaymentMethod: in.PaymentMethod,
		}, "Failed to place order. Please try again.")
		return
	}

	h.Store.Clear(c)
	render.RedirectWithFlash(c, h.Flash, "/", view.FlashSuccess, "Order placed successfully!")
}

func (h *CheckoutHandler) renderForm(c *gin.Context, status int, crt cart.Cart, form view.CheckoutForm, errs validation.FieldErrors) {
	vm := view.CheckoutPage{
		Layout:         layoutFor(c, "Checkout", h.Store),
		Form:           form,
		Errors:         errs,
		PaymentMethods: orders.PaymentMethods,
		Total:          view.Money(crt.Total()),
	}
	for _, it := range crt.Items {
		vm.Summary = append(vm.Summary, view.SummaryLine{
			Name:      it.Name,
			Quantity:  it.Quantity,
			LineTotal: view.Money(it.Price * float64(it.Quantity)),
		})
	}
	render.Page(c, status, "checkout", vm)
}

func (h *CheckoutHandler) renderFormWithFlash(c *gin.Context, crt cart.Cart, form view.CheckoutForm, msg string) {
	vm := view.CheckoutPage{
		Layout:         layoutFor(c, "Checkout", h.Store),
		Form:           form,
		PaymentMethods: orders.PaymentMethods,
		Total:          view.Money(crt.Total()),
	}
	vm.Layout.Flash = &view.Flash{Kind: view.FlashError, Message: msg}
	for _, it := range crt.Items {
		vm.Summary = append(vm.Summary, view.SummaryLine{
			Name:      it.Name,
			Quantity:  it.Quantity,
			LineTotal: view.Money(it.Price * float64(it.Quantity)),
		})
	}
	render.Page(c, http.StatusOK, "checkout", vm)
}
