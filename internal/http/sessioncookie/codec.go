// Package sessioncookie keeps the auth session (bearer token + user record)
// in a signed cookie. The cookie is the only session record; no expiry is
// tracked beyond the cookie's own lifetime.
package sessioncookie

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"flipkartmini.com/app/internal/http/signed"
	"flipkartmini.com/app/internal/modules/auth"
)

const DefaultCookieName = "fm_session"

type Codec struct {
	CookieName string
	Secure     bool
	TTL        time.Duration

	signer *signed.Codec
}

func New(secret []byte, cookieName string, secure bool) *Codec {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Codec{
		CookieName: cookieName,
		Secure:     secure,
		TTL:        7 * 24 * time.Hour,
		signer:     signed.NewCodec(secret),
	}
}

// Get returns the session from the cookie, or false when there is none.
// Invalid cookies are cleared and treated as logged out.
func (s *Codec) Get(c *gin.Context) (auth.Session, bool) {
	v, err := c.Cookie(s.CookieName)
	if err != nil || v == "" {
		return auth.Session{}, false
	}

	raw, err := s.signer.Decode(v)
	if err != nil {
		s.Clear(c)
		return auth.Session{}, false
	}

	var sess auth.Session
	if err := json.Unmarshal(raw, &sess); err != nil || sess.Token == "" {
		s.Clear(c)
		return auth.Session{}, false
	}
	return sess, true
}

func (s *Codec) Set(c *gin.Context, sess auth.Session) {
	b, err := json.Marshal(sess)
	if err != nil {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.CookieName, s.signer.Encode(b), int(s.TTL.Seconds()), "/", "", s.Secure, true)
}

func (s *Codec) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.CookieName, "", -1, "/", "", s.Secure, true)
}
