package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flipkartmini.com/app/internal/api"
	"flipkartmini.com/app/internal/http/flash"
	"flipkartmini.com/app/internal/http/middleware"
	"flipkartmini.com/app/internal/http/sessioncookie"
	"flipkartmini.com/app/internal/modules/auth"
	"flipkartmini.com/app/internal/modules/cart"
)

func newAuthApp(t *testing.T, backend http.HandlerFunc) (*gin.Engine, *sessioncookie.Codec) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := httptest.NewServer(backend)
	t.Cleanup(srv.Close)

	svc := auth.NewService(api.New(srv.URL, 5*time.Second))
	flashCodec := flash.NewCodec(testSecret, "fm_flash", false)
	sessions := sessioncookie.New(testSecret, "", false)

	r := gin.New()
	r.SetHTMLTemplate(pageStubs())
	r.Use(middleware.SessionMiddleware(sessions))

	h := NewAuthHandlers(svc, sessions, &cart.MemoryStore{}, flashCodec)
	r.GET("/login", h.LoginGet)
	r.POST("/login", h.LoginPost)
	r.GET("/signup", h.SignupGet)
	r.POST("/signup", h.SignupPost)
	r.POST("/logout", h.LogoutPost)
	return r, sessions
}

func loginBackend(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/auth/login" {
		http.NotFound(w, r)
		return
	}
	_, _ = w.Write([]byte(`{"token":"tok-9","user":{"id":"u1","name":"Asha","email":"asha@example.com","is_admin":false}}`))
}

func sessionCookieFrom(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name && ck.MaxAge >= 0 {
			return ck
		}
	}
	t.Fatalf("no %s cookie set", name)
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r, sessions := newAuthApp(t, loginBackend)

	w := postForm(r, "/login", url.Values{
		"email":    {"asha@example.com"},
		"password": {"secret1"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	ck := sessionCookieFrom(t, w, sessions.CookieName)

	// the cookie round-trips back into a session
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(ck)
	sess, ok := sessions.Get(c)
	require.True(t, ok)
	assert.Equal(t, "tok-9", sess.Token)
	assert.Equal(t, "Asha", sess.User.Name)
}

func TestLoginHonorsReturnTo(t *testing.T) {
	r, _ := newAuthApp(t, loginBackend)

	w := postForm(r, "/login", url.Values{
		"email":     {"asha@example.com"},
		"password":  {"secret1"},
		"return_to": {"/checkout"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/checkout", w.Header().Get("Location"))
}

func TestLoginRejectsExternalReturnTo(t *testing.T) {
	r, _ := newAuthApp(t, loginBackend)

	for _, target := range []string{"https://evil.com", "//evil.com", "/a/https://evil.com"} {
		w := postForm(r, "/login", url.Values{
			"email":     {"asha@example.com"},
			"password":  {"secret1"},
			"return_to": {target},
		})
		assert.Equal(t, "/", w.Header().Get("Location"), "return_to %q must not leave the site", target)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	r, sessions := newAuthApp(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid credentials"))
	})

	w := postForm(r, "/login", url.Values{
		"email":    {"asha@example.com"},
		"password": {"wrong"},
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	for _, ck := range w.Result().Cookies() {
		assert.NotEqual(t, sessions.CookieName, ck.Name, "no session cookie on a failed login")
	}
}

func TestLoginValidationFailure(t *testing.T) {
	var called bool
	r, _ := newAuthApp(t, func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	w := postForm(r, "/login", url.Values{"email": {"not-an-email"}, "password": {"x"}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, called, "the backend is not consulted for an invalid form")
}

func TestSignupLogsStraightIn(t *testing.T) {
	r, sessions := newAuthApp(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/signup", r.URL.Path)
		_, _ = w.Write([]byte(`{"token":"tok-new","user":{"id":"u2","name":"Ravi","email":"ravi@example.com"}}`))
	})

	w := postForm(r, "/signup", url.Values{
		"name":     {"Ravi"},
		"email":    {"ravi@example.com"},
		"password": {"secret1"},
	})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	sessionCookieFrom(t, w, sessions.CookieName)
}

func TestLogoutClearsSession(t *testing.T) {
	r, sessions := newAuthApp(t, loginBackend)

	w := postForm(r, "/logout", url.Values{}, sessionCookie(sessions, adminSession()))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var cleared bool
	for _, ck := range w.Result().Cookies() {
		if ck.Name == sessions.CookieName && ck.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}
