package common

import (
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// HouseholdID scopes the ledger data. The whole household shares one ledger,
// so every authenticated member reads and writes the same rows regardless of
// which account they signed in with.
const HouseholdID int64 = 1

// TokenClaims returns the claims of the verified token the JWT middleware
// stored on the context, or nil when the route is unprotected.
func TokenClaims(c *fiber.Ctx) jwt.MapClaims {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}

// TokenRole returns the role claim of the current token, or "".
func TokenRole(c *fiber.Ctx) string {
	claims := TokenClaims(c)
	if claims == nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

// RequireAdmin writes a 403 and returns false when the current token does not
// carry the admin role.
func RequireAdmin(c *fiber.Ctx) bool {
	if TokenRole(c) != "admin" {
		ErrorResponseJSON(c, fiber.StatusForbidden, "Forbidden", "admin role required")
		return false
	}
	return true
}
