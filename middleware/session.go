package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wemovies/services"
)

const sessionKey = "session"

// SessionMiddleware attaches the caller's session, issuing a cookie when the
// request carries none or an unknown one.
func SessionMiddleware(store *services.SessionStore, cookieName string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(cookieName)

		sess, created := store.Resolve(id)
		if created {
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     cookieName,
				Value:    sess.ID,
				Path:     "/",
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

func CurrentSession(c *gin.Context) *services.Session {
	return c.MustGet(sessionKey).(*services.Session)
}
