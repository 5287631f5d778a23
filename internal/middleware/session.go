package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "chhaon_session"

// cookie lifetime; carts are in-memory only, so a stale cookie just
// resolves to a fresh empty store after a restart
const sessionMaxAge = 12 * 60 * 60

// Session resolves the patron's cart session from a cookie, minting a
// new id on first contact, and attaches it to the request context.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(sessionCookie)
		if err != nil || id == "" {
			id = uuid.New().String()
			c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		}

		c.Set("sessionID", id)
		c.Next()
	}
}
