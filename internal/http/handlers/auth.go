package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flipkartmini.com/app/internal/http/flash"
	"flipkartmini.com/app/internal/http/render"
	"flipkartmini.com/app/internal/http/sessioncookie"
	"flipkartmini.com/app/internal/http/validation"
	"flipkartmini.com/app/internal/modules/auth"
	"flipkartmini.com/app/internal/modules/cart"
	"flipkartmini.com/app/pkg/view"
)

// AuthHandlers contains handlers for the login/signup/logout routes. The
// backend owns credential verification; these handlers forward the forms and
// store the returned session in the cookie.
type AuthHandlers struct {
	Auth     *auth.Service
	Sessions *sessioncookie.Codec
	Cart     cart.Store
	Flash    *flash.Codec
}

func NewAuthHandlers(svc *auth.Service, sessions *sessioncookie.Codec, store cart.Store, flashCodec *flash.Codec) *AuthHandlers {
	return &AuthHandlers{Auth: svc, Sessions: sessions, Cart: store, Flash: flashCodec}
}

type loginInput struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type signupInput struct {
	Name     string `form:"name" binding:"required,min=2,max=100"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required,min=6"`
}

// LoginGet renders the login page.
func (h *AuthHandlers) LoginGet(c *gin.Context) {
	render.Page(c, http.StatusOK, "login", view.LoginPage{
		Layout:   layoutFor(c, "Login", h.Cart),
		ReturnTo: normalizeReturnTo(c.Query("return_to")),
	})
}

// LoginPost exchanges the form for a session via POST /auth/login.
func (h *AuthHandlers) LoginPost(c *gin.Context) {
	returnTo := normalizeReturnTo(c.PostForm("return_to"))

	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		render.Page(c, http.StatusBadRequest, "login", view.LoginPage{
			Layout:   layoutFor(c, "Login", h.Cart),
			Form:     view.LoginForm{Email: in.Email},
			Errors:   validation.FromBindError(err, &in),
			ReturnTo: returnTo,
		})
		return
	}

	sess, err := h.Auth.Login(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		render.Page(c, http.StatusUnauthorized, "login", view.LoginPage{
			Layout:   layoutFor(c, "Login", h.Cart),
			Form:     view.LoginForm{Email: in.Email},
			AuthErr:  "Invalid credentials.",
			ReturnTo: returnTo,
		})
		return
	}

	h.Sessions.Set(c, sess)

	dest := "/"
	if returnTo != "" {
		dest = returnTo
	}
	render.RedirectWithFlash(c, h.Flash, dest, view.FlashSuccess, "Login successful.")
}

// SignupGet renders the signup page.
func (h *AuthHandlers) SignupGet(c *gin.Context) {
	render.Page(c, http.StatusOK, "signup", view.SignupPage{
		Layout:   layoutFor(c, "Create Account", h.Cart),
		ReturnTo: normalizeReturnTo(c.Query("return_to")),
	})
}

// SignupPost registers via POST /auth/signup and logs the user straight in.
func (h *AuthHandlers) SignupPost(c *gin.Context) {
	returnTo := normalizeReturnTo(c.PostForm("return_to"))

	var in signupInput
	if err := c.ShouldBind(&in); err != nil {
		render.Page(c, http.StatusBadRequest, "signup", view.SignupPage{
			Layout:   layoutFor(c, "Create Account", h.Cart),
			Form:     view.SignupForm{Name: in.Name, Email: in.Email},
			Errors:   validation.FromBindError(err, &in),
			ReturnTo: returnTo,
		})
		return
	}

	sess, err := h.Auth.Signup(c.Request.Context(), in.Name, in.Email, in.Password)
	if err != nil {
		render.Page(c, http.StatusBadRequest, "signup", view.SignupPage{
			Layout:   layoutFor(c, "Create Account", h.Cart),
			Form:     view.SignupForm{Name: in.Name, Email: in.Email},
			AuthErr:  "Signup failed.",
			ReturnTo: returnTo,
		})
		return
	}

	h.Sessions.Set(c, sess)

	dest := "/"
	if returnTo != "" {
		dest = returnTo
	}
	render.RedirectWithFlash(c, h.Flash, dest, view.FlashSuccess, "Account created.")
}

// LogoutPost clears the session cookie. The bearer token is stateless from
// the client's point of view; there is nothing to revoke here.
func (h *AuthHandlers) LogoutPost(c *gin.Context) {
	h.Sessions.Clear(c)
	render.RedirectWithFlash(c, h.Flash, "/", view.FlashInfo, "Logged out.")
}
