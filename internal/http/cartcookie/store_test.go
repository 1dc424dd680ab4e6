package cartcookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flipkartmini.com/app/internal/modules/cart"
)

var secret = []byte("test-secret")

func ctxWithCookies(cookies []*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/cart", nil)
	for _, ck := range cookies {
		c.Request.AddCookie(ck)
	}
	return c, w
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := NewStore(secret, "", false)

	crt := cart.Cart{Items: []cart.Item{
		{ProductID: "p1", Name: "Phone", Price: 999, Image: "u1", Quantity: 2},
		{ProductID: "p2", Name: "Case", Price: 49.5, Quantity: 1},
	}}

	c, w := ctxWithCookies(nil)
	store.Save(c, crt)

	c2, _ := ctxWithCookies(w.Result().Cookies())
	got := store.Load(c2)

	require.Len(t, got.Items, 2)
	assert.Equal(t, crt.Items, got.Items)
	assert.Equal(t, 2047.5, got.Total())
}

func TestLoadMissingCookieIsEmptyCart(t *testing.T) {
	store := NewStore(secret, "", false)
	c, _ := ctxWithCookies(nil)

	got := store.Load(c)
	assert.True(t, got.IsEmpty())
}

func TestLoadTamperedCookieIsEmptyCartAndClears(t *testing.T) {
	store := NewStore(secret, "", false)

	c, w := ctxWithCookies(nil)
	store.Save(c, cart.Cart{Items: []cart.Item{{ProductID: "p1", Price: 10, Quantity: 1}}})

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	cookies[0].Value = "garbage" + cookies[0].Value

	c2, w2 := ctxWithCookies(cookies)
	got := store.Load(c2)
	assert.True(t, got.IsEmpty(), "corrupt blob degrades to empty cart")

	// the bad cookie is dropped so the next request starts clean
	var cleared bool
	for _, ck := range w2.Result().Cookies() {
		if ck.Name == store.CookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestLoadRepairsInvalidQuantities(t *testing.T) {
	store := NewStore(secret, "", false)

	c, w := ctxWithCookies(nil)
	store.Save(c, cart.Cart{Items: []cart.Item{
		{ProductID: "p1", Price: 10, Quantity: 0},
		{ProductID: "", Price: 5, Quantity: 3},
		{ProductID: "p2", Price: 20, Quantity: 2},
	}})

	c2, _ := ctxWithCookies(w.Result().Cookies())
	got := store.Load(c2)

	require.Len(t, got.Items, 2, "items without a product id are dropped")
	assert.Equal(t, 1, got.Items[0].Quantity, "stored quantity below 1 is repaired")
	assert.Equal(t, "p2", got.Items[1].ProductID)
}

func TestClear(t *testing.T) {
	store := NewStore(secret, "", false)
	c, w := ctxWithCookies(nil)

	store.Clear(c)

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, store.CookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}
