package middleware

import (
	"errors"

	"github.com/Leestalion/quittance/internal/dto"
	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const userIDKey = "user_id"

// Identity resolves the caller from the verified JWT and stores the user id
// in locals. It must run after JWTProtected.
func Identity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := userIDFromToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		c.Locals(userIDKey, userID)

		if hub := sentryfiber.GetHubFromContext(c); hub != nil {
			hub.Scope().SetUser(sentry.User{ID: userID.String()})
		}
		return c.Next()
	}
}

// GetUserID returns the caller resolved by Identity.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := c.Locals(userIDKey).(uuid.UUID); ok {
		return id, nil
	}
	return userIDFromToken(c)
}

func userIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return uuid.Nil, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing sub claim")
	}

	return uuid.Parse(sub)
}
