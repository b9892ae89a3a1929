package organizations

import (
	"errors"

	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/modules"
	"github.com/gofiber/fiber/v2"
)

const notFound = "Organization not found"

type OrganizationHandler struct {
	service *OrganizationService
}

func NewOrganizationHandler(service *OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

func (h *OrganizationHandler) List(c *fiber.Ctx) error {
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

func (h *OrganizationHandler) Get(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "organization")
	if !ok {
		return nil
	}

	org, err := h.service.Get(userID, id)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.JSON(org)
}

func (h *OrganizationHandler) Create(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}

	var req dto.CreateOrganization
	if err := c.BodyParser(&req); err != nil {
		return modules.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	org, err := h.service.Create(userID, req)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.Status(fiber.StatusCreated).JSON(org)
}

func (h *OrganizationHandler) Update(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "organization")
	if !ok {
		return nil
	}

	var req dto.UpdateOrganization
	if err := c.BodyParser(&req); err != nil {
		return modules.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	org, err := h.service.Update(userID, id, req)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.JSON(org)
}

func (h *OrganizationHandler) Delete(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "organization")
	if !ok {
		return nil
	}

	if err := h.service.Delete(userID, id); err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *OrganizationHandler) AddMember(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	orgID, ok := modules.PathID(c, "id", "organization")
	if !ok {
		return nil
	}

	var req dto.AddOrganizationMember
	if err := c.BodyParser(&req); err != nil {
		return modules.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	member, err := h.service.AddMember(userID, orgID, req)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

func (h *OrganizationHandler) ListMembers(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	orgID, ok := modules.PathID(c, "id", "organization")
	if !ok {
		return nil
	}

	members, err := h.service.ListMembers(userID, orgID)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.JSON(members)
}

func (h *OrganizationHandler) RemoveMember(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	orgID, ok := modules.PathID(c, "id", "organization")
	if !ok {
		return nil
	}
	memberID, ok := modules.PathID(c, "memberId", "member")
	if !ok {
		return nil
	}

	err := h.service.RemoveMember(userID, orgID, memberID)
	if errors.Is(err, ErrMemberNotFound) {
		return modules.Fail(c, fiber.StatusNotFound, "Organization member not found")
	}
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
