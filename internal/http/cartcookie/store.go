// Package cartcookie persists the cart in a signed browser cookie. The cart
// is owned by the browser, not the server: two tabs racing on it resolve as
// last-write-wins.
package cartcookie

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"flipkartmini.com/app/internal/http/signed"
	"flipkartmini.com/app/internal/modules/cart"
)

const DefaultCookieName = "fm_cart"

// Store implements cart.Store on top of a signed cookie.
type Store struct {
	CookieName string
	Secure     bool

	signer *signed.Codec
}

func NewStore(secret []byte, cookieName string, secure bool) *Store {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Store{CookieName: cookieName, Secure: secure, signer: signed.NewCodec(secret)}
}

// Load reads the cart cookie. A missing, tampered or malformed cookie yields
// an empty cart and drops the bad cookie, so a corrupt blob can never take
// the page down.
func (s *Store) Load(c *gin.Context) cart.Cart {
	v, err := c.Cookie(s.CookieName)
	if err != nil || v == "" {
		return cart.Cart{}
	}

	raw, err := s.signer.Decode(v)
	if err != nil {
		s.Clear(c)
		return cart.Cart{}
	}

	var crt cart.Cart
	if err := json.Unmarshal(raw, &crt); err != nil {
		s.Clear(c)
		return cart.Cart{}
	}

	// Quantity >= 1 is a stored invariant; repair anything that slipped in.
	items := crt.Items[:0]
	for _, it := range crt.Items {
		if it.ProductID == "" {
			continue
		}
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		items = append(items, it)
	}
	crt.Items = items
	return crt
}

func (s *Store) Save(c *gin.Context, crt cart.Cart) {
	b, err := json.Marshal(crt)
	if err != nil {
		return
	}
	maxAge := int((30 * 24 * time.Hour).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.CookieName, s.signer.Encode(b), maxAge, "/", "", s.Secure, true)
}

func (s *Store) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.CookieName, "", -1, "/", "", s.Secure, true)
}
