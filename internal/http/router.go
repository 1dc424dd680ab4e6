package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"flipkartmini.com/app/internal/api"
	"flipkartmini.com/app/internal/config"
	"flipkartmini.com/app/internal/http/cartcookie"
	"flipkartmini.com/app/internal/http/flash"
	"flipkartmini.com/app/internal/http/handlers"
	"flipkartmini.com/app/internal/http/middleware"
	"flipkartmini.com/app/internal/http/sessioncookie"
	"flipkartmini.com/app/internal/modules/auth"
	"flipkartmini.com/app/internal/modules/catalog"
	"flipkartmini.com/app/internal/modules/orders"
)

const flashCookieName = "fm_flash"

// NewRouter builds the full middleware chain and route table. The only
// downstream dependency is the backend API client; everything else is
// cookie-backed client state.
func NewRouter(logger *slog.Logger, cfg config.Config) *gin.Engine {
	r := gin.New()

	flashCodec := flash.NewCodec(cfg.CookieSecret, flashCookieName, cfg.CookieSecure)
	sessions := sessioncookie.New(cfg.CookieSecret, sessioncookie.DefaultCookieName, cfg.CookieSecure)
	cartStore := cartcookie.NewStore(cfg.CookieSecret, cartcookie.DefaultCookieName, cfg.CookieSecure)

	client := api.New(cfg.APIBaseURL, cfg.APITimeout)
	catalogSvc := catalog.NewService(client)
	authSvc := auth.NewService(client)
	orderSvc := orders.NewService(client)

	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.ErrorHandler(logger),
		middleware.FlashMiddleware(flashCodec),
		middleware.SessionMiddleware(sessions),
	)

	r.LoadHTMLGlob("web/templates/*.tmpl")

	home := handlers.NewHomeHandler(catalogSvc, cartStore)
	product := handlers.NewProductHandler(catalogSvc, cartStore)
	cartH := handlers.NewCartHandler(catalogSvc, cartStore, flashCodec, cfg.SeedDemoCart)
	checkout := handlers.NewCheckoutHandler(cartStore, orderSvc, flashCodec)
	authH := handlers.NewAuthHandlers(authSvc, sessions, cartStore, flashCodec)
	admin := handlers.NewAdminHandler(catalogSvc, cartStore, flashCodec)

	r.GET("/", home.Get)
	r.GET("/product/:id", product.Show)

	r.GET("/cart", cartH.Get)
	r.POST("/cart/add", cartH.Add)
	r.POST("/cart/items/update", cartH.Update)
	r.POST("/cart/items/remove", cartH.Remove)

	r.GET("/checkout", checkout.Get)
	r.POST("/checkout", middleware.RequireAuth(flashCodec), checkout.Post)

	r.GET("/login", authH.LoginGet)
	r.POST("/login", authH.LoginPost)
	r.GET("/signup", authH.SignupGet)
	r.POST("/signup", authH.SignupPost)
	r.POST("/logout", authH.LogoutPost)

	adminGroup := r.Group("/admin", middleware.RequireAdmin(flashCodec))
	adminGroup.GET("", admin.Get)
	adminGroup.POST("/products", admin.Create)
	adminGroup.POST("/products/delete", admin.Delete)

	return r
}
