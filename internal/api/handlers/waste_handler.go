package handlers

import (
	"grocery-tracker/domain"
	"grocery-tracker/internal/api/presenters"
	"grocery-tracker/pkg/waste"

	"github.com/gofiber/fiber/v2"
)

type (
	WasteHandler interface {
		StoreWeeklyWaste(c *fiber.Ctx) error
		GetWasteHistory(c *fiber.Ctx) error
	}

	wasteHandler struct {
		wasteService waste.WasteService
	}
)

func NewWasteHandler(wasteService waste.WasteService) WasteHandler {
	return &wasteHandler{
		wasteService: wasteService,
	}
}

func (h *wasteHandler) StoreWeeklyWaste(c *fiber.Ctx) error {
	res, err := h.wasteService.StoreWeeklyWaste(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStoreWeeklyWaste, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessStoreWeeklyWaste)
}

func (h *wasteHandler) GetWasteHistory(c *fiber.Ctx) error {
	res, err := h.wasteService.GetWasteHistory(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetWasteHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetWasteHistory)
}
