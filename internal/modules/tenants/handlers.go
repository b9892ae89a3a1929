package tenants

import (
	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/modules"
	"github.com/gofiber/fiber/v2"
)

const notFound = "Tenant not found"

type TenantHandler struct {
	service *TenantService
}

func NewTenantHandler(service *TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

func (h *TenantHandler) List(c *fiber.Ctx) error {
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

func (h *TenantHandler) Get(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "tenant")
	if !ok {
		return nil
	}

	tenant, err := h.service.Get(userID, id)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.JSON(tenant)
}

func (h *TenantHandler) Create(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}

	var req dto.CreateTenant
	if err := c.BodyParser(&req); err != nil {
		return modules.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	tenant, err := h.service.Create(userID, req)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.Status(fiber.StatusCreated).JSON(tenant)
}

func (h *TenantHandler) Update(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "tenant")
	if !ok {
		return nil
	}

	var req dto.UpdateTenant
	if err := c.BodyParser(&req); err != nil {
		return modules.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	tenant, err := h.service.Update(userID, id, req)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.JSON(tenant)
}

func (h *TenantHandler) Delete(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "tenant")
	if !ok {
		return nil
	}

	if err := h.service.Delete(userID, id); err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
