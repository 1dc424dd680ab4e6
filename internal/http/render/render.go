package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"flipkartmini.com/app/internal/http/flash"
	"flipkartmini.com/app/internal/http/middleware"
	"flipkartmini.com/app/pkg/view"
)

// Page renders a named HTML template with its view model.
func Page(c *gin.Context, status int, name string, vm any) {
	c.HTML(status, name, vm)
}

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
