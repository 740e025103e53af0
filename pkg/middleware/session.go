// Package middleware contains HTTP middleware shared across routes.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const sessionCookie = "storefront_session"

// Session assigns every visitor a stable session ID carried in a
// cookie. Carts and checkout prefills are keyed by it.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := c.Cookies(sessionCookie)
		if sid == "" {
			sid = uuid.NewString()
			c.Cookie(&fiber.Cookie{
				Name:     sessionCookie,
				Value:    sid,
				Expires:  time.Now().Add(180 * 24 * time.Hour),
				HTTPOnly: true,
				SameSite: fiber.CookieSameSiteLaxMode,
			})
		}
		c.Locals(sessionKey, sid)
		return c.Next()
	}
}

const sessionKey = "session_id"

// SessionID returns the session assigned by the Session middleware.
func SessionID(c *fiber.Ctx) string {
	sid, _ := c.Locals(sessionKey).(string)
	return sid
}
