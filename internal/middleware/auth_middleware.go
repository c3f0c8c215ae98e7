package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/yohanvishvajith/sintravels-sub000/internal/auth"
	"github.com/yohanvishvajith/sintravels-sub000/internal/config"
	"github.com/yohanvishvajith/sintravels-sub000/internal/util"
)

// Paths under these prefixes require a valid cookie-borne token; the
// admin prefix additionally requires the ADMIN role.
var protectedPrefixes = []string{"/api/admin", "/api/user/me", "/api/users"}

const adminPrefix = "/api/admin"

// AuthGate verifies the auth cookie before protected handlers run and
// injects the caller's id and role as request-scoped headers so
// downstream handlers never re-verify. Verification failures are always
// a 401, never a 500.
func AuthGate() fiber.Handler {
	cookieName := config.LoadAuthConfig().CookieName
	return func(c *fiber.Ctx) error {
		// identity headers are gate-owned; never trust inbound values
		c.Request().Header.Del("X-User-Id")
		c.Request().Header.Del("X-User-Role")

		payload := auth.VerifyToken(c.Cookies(cookieName))
		if payload != nil {
			c.Request().Header.Set("X-User-Id", payload.UserID)
			c.Request().Header.Set("X-User-Role", payload.Role)
			c.Locals("userId", payload.UserID)
			c.Locals("userRole", payload.Role)
		}

		path := c.Path()
		if !isProtected(path) {
			return c.Next()
		}
		if payload == nil {
			return util.ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		if strings.HasPrefix(path, adminPrefix) && payload.Role != "ADMIN" {
			return util.ErrorResponse(c, fiber.StatusForbidden, "Forbidden")
		}
		return c.Next()
	}
}

func isProtected(path string) bool {
	for _, p := range protectedPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
