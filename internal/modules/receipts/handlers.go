package receipts

import (
	"github.com/Leestalion/quittance/internal/dto"
	"github.com/Leestalion/quittance/internal/modules"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const notFound = "Receipt not found"

type ReceiptHandler struct {
	service *ReceiptService
}

func NewReceiptHandler(service *ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{service: service}
}

func (h *ReceiptHandler) List(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}

	var leaseID *uuid.UUID
	if raw := c.Query("lease_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return modules.Fail(c, fiber.StatusBadRequest, "Invalid lease ID")
		}
		leaseID = &id
	}

	list, err := h.service.List(userID, leaseID)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.JSON(list)
}

func (h *ReceiptHandler) Get(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "receipt")
	if !ok {
		return nil
	}

	receipt, err := h.service.Get(userID, id)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.JSON(receipt)
}

func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}

	var req dto.CreateReceipt
	if err := c.BodyParser(&req); err != nil {
		return modules.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	receipt, err := h.service.Create(userID, req)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

func (h *ReceiptHandler) Update(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "receipt")
	if !ok {
		return nil
	}

	var req dto.UpdateReceipt
	if err := c.BodyParser(&req); err != nil {
		return modules.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	receipt, err := h.service.Update(userID, id, req)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.JSON(receipt)
}

func (h *ReceiptHandler) Delete(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "receipt")
	if !ok {
		return nil
	}

	if err := h.service.Delete(userID, id); err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ReceiptHandler) Send(c *fiber.Ctx) error {
	userID, ok := modules.Caller(c)
	if !ok {
		return nil
	}
	id, ok := modules.PathID(c, "id", "receipt")
	if !ok {
		return nil
	}

	receipt, err := h.service.Send(userID, id)
	if err != nil {
		return modules.FailFrom(c, err, notFound)
	}
	return c.JSON(receipt)
}
