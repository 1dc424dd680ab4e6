package middleware

import (
	"github.com/gin-gonic/gin"

	"flipkartmini.com/app/internal/http/sessioncookie"
	"flipkartmini.com/app/internal/modules/auth"
)

const ctxKeySession = "session"

// SessionMiddleware decodes the session cookie and puts the session in the
// request context. There is no server-side session record: the cookie is the
// session.
func SessionMiddleware(codec *sessioncookie.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess, ok := codec.Get(c); ok {
			c.Set(ctxKeySession, sess)
		}
		c.Next()
	}
}

// CurrentSession retrieves the authenticated session from the gin context.
// Returns the session and true if authenticated, or zero value and false.
func CurrentSession(c *gin.Context) (auth.Session, bool) {
	v, ok := c.Get(ctxKeySession)
	if !ok {
		return auth.Session{}, false
	}
	sess, ok := v.(auth.Session)
	if !ok || sess.Token == "" {
		return auth.Session{}, false
	}
	return sess, true
}
