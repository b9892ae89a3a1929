package properties

import (
	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/modules"
	"github.com/gofiber/fiber/v2"
)

const notFound = "Property not found"

type PropertyHandler struct {
	service *PropertyService
}

func NewPropertyHandler(service *PropertyService) *PropertyHandler {
	return &PropertyHandler{service: service}
}

func (h *PropertyHandler) List(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}

	list, err := h.service.List(userID)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.JSON(list)
}

func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "property")
	if !ok {
		return nil
	}

	property, err := h.service.Get(userID, id)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.JSON(property)
}

func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}

	var req dto.CreateProperty
	if err := c.BodyParser(&req); err != nil {
		return modules.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	property, err := h.service.Create(userID, req)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.Status(fiber.StatusCreated).JSON(property)
}

func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "property")
	if !ok {
		return nil
	}

	var req dto.UpdateProperty
	if err := c.BodyParser(&req); err != nil {
		return modules.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	property, err := h.service.Update(userID, id, req)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.JSON(property)
}

func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "property")
	if !ok {
		return nil
	}

	if err := h.service.Delete(userID, id); err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
