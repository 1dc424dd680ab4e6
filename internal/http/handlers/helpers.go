package handlers

import (
	"github.com/gin-gonic/gin"

	"flipkartmini.com/app/internal/http/middleware"
	"flipkartmini.com/app/internal/modules/cart"
	"flipkartmini.com/app/internal/modules/catalog"
	"flipkartmini.com/app/pkg/view"
)

// layoutFor assembles the shared shell state: flash, nav user, categories,
// current search/filter and the cart line count.
func layoutFor(c *gin.Context, title string, store cart.Store) view.Layout {
	l := view.Layout{
		Title:      title,
		Flash:      middleware.GetFlash(c),
		Categories: catalog.Categories,
		Query:      c.Query("q"),
		Category:   c.Query("cat"),
	}
	if l.Category == "" {
		l.Category = catalog.CategoryAll
	}
	if sess, ok := middleware.CurrentSession(c); ok {
		l.User = &view.NavUser{Name: sess.User.Name, IsAdmin: sess.User.IsAdmin}
	}
	if store != nil {
		crt := store.Load(c)
		l.CartCount = crt.Count()
	}
	return l
}

// normalizeReturnTo validates and sanitizes the return_to parameter.
// Open redirect protection: only relative paths are accepted.
func normalizeReturnTo(s string) string {
	if s == "" {
		return ""
	}
	if s[0] != '/' {
		return ""
	}
	// block protocol-relative targets like "//evil.com"
	if len(s) >= 2 && s[0:2] == "//" {
		return ""
	}
	if containsScheme(s) {
		return ""
	}
	return s
}

func containsScheme(s string) bool {
	for i := 0; i+2 < len(s); i++ {
		if s[i] == ':' && s[i+1] == '/' && s[i+2] == '/' {
			return true
		}
	}
	return false
}
