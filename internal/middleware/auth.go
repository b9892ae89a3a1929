package middleware

import (
	"github.com/Leestalion/quittance/internal/config"
	"github.com/Leestalion/quittance/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// UnauthorizedMessage is the body message for every rejected token. The
// client store surfaces it verbatim once a session lapses.
const UnauthorizedMessage = "Unauthorized: invalid or expired token"

// JWTProtected admits requests carrying an HS256 token issued by AuthService.
// Identity reads the account id from its claims afterwards.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS256, Key: []byte(cfg.JWTSecret)},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error:   true,
				Message: UnauthorizedMessage,
			})
		},
	})
}
