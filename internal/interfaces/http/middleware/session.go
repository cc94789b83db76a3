package middleware

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName    = "soapbox_session"
	sessionContextKey    = "session_key"
	sessionCookieMaxAge  = 60 * 60 * 24 * 365
	sessionKeyByteLength = 16
)

// SessionKey gives every visitor a stable opaque key, used to remember
// per-board view preferences without requiring an account.
func SessionKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := c.Cookie(sessionCookieName)
		if err != nil || key == "" {
			key = newSessionKey()
			c.SetCookie(sessionCookieName, key, sessionCookieMaxAge, "/", "", false, true)
		}

		c.Set(sessionContextKey, key)
		c.Next()
	}
}

// SessionKeyFromContext returns the visitor's session key, empty when the
// session middleware did not run.
func SessionKeyFromContext(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}

func newSessionKey() string {
	buf := make([]byte, sessionKeyByteLength)
	if _, err := rand.Read(buf); err != nil {
		// rand.Read only fails when the OS entropy source is broken; an
		// empty key degrades to not remembering preferences.
		return ""
	}
	return hex.EncodeToString(buf)
}
