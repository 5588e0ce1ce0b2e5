package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderSessionID carries the opaque client identity. The client is
// expected to persist it and resend it on every request.
const HeaderSessionID = "X-Session-Id"

// Session reads the session id from the request header, generating a fresh
// one when absent, and echoes it back on the response so the client can
// cache it. No server-side session state exists.
func Session() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Get(HeaderSessionID)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		c.Locals("session_id", sessionID)
		c.Set(HeaderSessionID, sessionID)
		return c.Next()
	}
}

// GetSession returns the session id attached by the Session middleware.
func GetSession(c *fiber.Ctx) string {
	sessionID, _ := c.Locals("session_id").(string)
	return sessionID
}
