package modules

import (
	"errors"
	"log/slog"

	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/middleware"
	"github.com/Leestalion/quittance/internal/services"
	"github.com/Leestalion/quittance/internal/validation"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Fail writes the standard error envelope.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

// FailFrom maps a service error to a status. notFound is the message for
// services.ErrNotFound; unknown errors are reported to Sentry, logged and
// hidden from the caller.
func FailFrom(c *fiber.Ctx, err error, notFound string) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return Fail(c, fiber.StatusNotFound, notFound)
	case validation.IsValidation(err):
		return Fail(c, fiber.StatusBadRequest, err.Error())
	}

	var bad *BadRequest
	if errors.As(err, &bad) {
		return Fail(c, fiber.StatusBadRequest, bad.Message)
	}
	var missing *NotFound
	if errors.As(err, &missing) {
		return Fail(c, fiber.StatusNotFound, missing.Message)
	}

	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
	slog.Error("request failed",
		"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		"method", c.Method(),
		"path", c.Path(),
		"error", err.Error(),
	)
	return Fail(c, fiber.StatusInternalServerError, "Internal server error")
}

// BadRequest carries a message meant for the caller verbatim.
type BadRequest struct {
	Message string
}

func (e *BadRequest) Error() string { return e.Message }

// NotFound reports a missing related record, such as the lease a receipt
// points at.
type NotFound struct {
	Message string
}

func (e *NotFound) Error() string { return e.Message }

// Caller resolves the authenticated user or writes a 401.
func Caller(c *fiber.Ctx) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		_ = Fail(c, fiber.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// PathID parses the named route parameter as a UUID or writes a 400.
func PathID(c *fiber.Ctx, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		_ = Fail(c, fiber.StatusBadRequest, "Invalid "+label+" ID")
		return uuid.Nil, false
	}
	return id, true
}

// ParseOptionalID reads an optional UUID, empty meaning absent.
func ParseOptionalID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
