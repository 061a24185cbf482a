package middleware

import (
	"github.com/gofiber/fiber/v2"

	"docshare/internal/auth"
)

// IdentityLocalKey is the key used to store the resolved identity in Fiber's
// context locals.
const IdentityLocalKey = "identity"

// RequireAuth resolves the bearer token into an identity and rejects the
// request when that fails: 401 when no credential is present, 403 when one is
// present but invalid or expired.
func RequireAuth(codec *auth.TokenCodec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, err := auth.ExtractBearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return writeAuthError(c, fiber.StatusUnauthorized, "TOKEN_REQUIRED", "access token required")
		}

		identity, err := codec.Verify(token)
		if err != nil {
			return writeAuthError(c, fiber.StatusForbidden, "INVALID_TOKEN", "invalid or expired token")
		}

		c.Locals(IdentityLocalKey, identity)
		return c.Next()
	}
}

// OptionalAuth attempts the same resolution as RequireAuth but never rejects:
// on a missing or invalid credential the request proceeds with no identity
// attached.
func OptionalAuth(codec *auth.TokenCodec) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if token, err := auth.ExtractBearerToken(c.Get(fiber.HeaderAuthorization)); err == nil {
			if identity, err := codec.Verify(token); err == nil {
				c.Locals(IdentityLocalKey, identity)
			}
		}
		return c.Next()
	}
}

// IdentityFromCtx extracts the identity previously stored by RequireAuth or
// OptionalAuth. The second return is false when the request is anonymous.
func IdentityFromCtx(c *fiber.Ctx) (*auth.Identity, bool) {
	identity, ok := c.Locals(IdentityLocalKey).(*auth.Identity)
	return identity, ok
}

// writeAuthError mirrors the handler package's error envelope. It lives here
// so the guard can reject requests without importing the handler package.
func writeAuthError(c *fiber.Ctx, status int, code, message string) error {
	rid, _ := c.Locals(RequestIDLocalKey).(string)
	return c.Status(status).JSON(fiber.Map{
		"request_id": rid,
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}
