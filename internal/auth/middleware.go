package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const studentIDKey = "student_id"

// Middleware rejects requests without a valid Bearer session token and
// stores the verified student id on the request context.
func Middleware(jwtService *JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing authorization header",
			})
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid authorization header format",
			})
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid or expired session",
			})
		}

		c.Locals(studentIDKey, claims.StudentID)
		return c.Next()
	}
}

// StudentID returns the authenticated student id set by Middleware.
func StudentID(c *fiber.Ctx) string {
	if id, ok := c.Locals(studentIDKey).(string); ok {
		return id
	}
	return ""
}
