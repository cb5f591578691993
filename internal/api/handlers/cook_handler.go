package handlers

import (
	"errors"

	"grocery-tracker/domain"
	"grocery-tracker/internal/api/presenters"
	"grocery-tracker/pkg/cooking"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CookHandler interface {
		CookRecipe(c *fiber.Ctx) error
		RecordWaste(c *fiber.Ctx) error
		GetCookingHistory(c *fiber.Ctx) error
	}

	cookHandler struct {
		cookingService cooking.CookingService
		validator      *validator.Validate
	}
)

func NewCookHandler(cookingService cooking.CookingService, validator *validator.Validate) CookHandler {
	return &cookHandler{
		cookingService: cookingService,
		validator:      validator,
	}
}

func (h *cookHandler) CookRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CookRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCookRecipe, err)
	}

	res, err := h.cookingService.CookRecipe(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedCookRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCookRecipe)
}

func (h *cookHandler) RecordWaste(c *fiber.Ctx) error {
	calculationID := c.Params("calculationId")
	req := new(domain.RecordWasteRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordWaste, err)
	}

	if err := h.cookingService.RecordWaste(c.Context(), calculationID, *req); err != nil {
		if errors.Is(err, domain.ErrCalculationNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedRecordWaste, err)
		}
		if errors.Is(err, domain.ErrInvalidWastePortion) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRecordWaste, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedRecordWaste, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRecordWaste)
}

func (h *cookHandler) GetCookingHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.cookingService.GetCookingHistory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetCookingHistory, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCookingHistory)
}
