package leases

import (
	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/modules"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const notFound = "Lease not found"

type LeaseHandler struct {
	service *LeaseService
}

func NewLeaseHandler(service *LeaseService) *LeaseHandler {
	return &LeaseHandler{service: service}
}

func (h *LeaseHandler) List(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}

	var propertyID *uuid.UUID
	if raw := c.Query("property_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return modules.Fail(c, fiber.StatusBadRequest, "Invalid property ID")
		}
		propertyID = &id
	}

	list, err := h.service.List(userID, propertyID)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.JSON(list)
}

func (h *LeaseHandler) Get(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "lease")
	if !ok {
		return nil
	}

	lease, err := h.service.Get(userID, id)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.JSON(lease)
}

func (h *LeaseHandler) Create(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}

	var req dto.CreateLease
	if err := c.BodyParser(&req); err != nil {
		return modules.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	lease, err := h.service.Create(userID, req)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.Status(fiber.StatusCreated).JSON(lease)
}

func (h *LeaseHandler) Update(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "lease")
	if !ok {
		return nil
	}

	var req dto.UpdateLease
	if err := c.BodyParser(&req); err != nil {
		return modules.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	lease, err := h.service.Update(userID, id, req)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.JSON(lease)
}

func (h *LeaseHandler) Delete(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "lease")
	if !ok {
		return nil
	}

	if err := h.service.Delete(userID, id); err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
