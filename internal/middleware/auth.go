package middleware

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"employee-portal/internal/domain"
)

const (
	ClaimsContextKey     = "claims"
	EmployeeIDContextKey = "employee_id"
)

// ParseAccessToken validates a token issued by the external identity system
// and extracts the claims the portal cares about. Shared with the websocket
// handshake, which cannot go through fiber middleware.
func ParseAccessToken(secret, tokenString string) (*domain.AccessClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("missing sub claim")
	}
	employeeID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid sub claim: %w", err)
	}

	role, _ := claims["role"].(string)
	return &domain.AccessClaims{
		EmployeeID: employeeID,
		Role:       domain.EmployeeRole(role),
	}, nil
}

func AuthRequired(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Missing authorization header",
			})
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid authorization header format",
			})
		}

		claims, err := ParseAccessToken(jwtSecret, parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Invalid or expired token",
			})
		}

		c.Locals(ClaimsContextKey, claims)
		c.Locals(EmployeeIDContextKey, claims.EmployeeID)

		return c.Next()
	}
}

func GetCurrentClaims(c *fiber.Ctx) *domain.AccessClaims {
	claims, ok := c.Locals(ClaimsContextKey).(*domain.AccessClaims)
	if !ok {
		return nil
	}
	return claims
}

func GetCurrentEmployeeID(c *fiber.Ctx) uuid.UUID {
	employeeID, ok := c.Locals(EmployeeIDContextKey).(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return employeeID
}
