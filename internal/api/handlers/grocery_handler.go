package handlers

import (
	"errors"

	"grocery-tracker/domain"
	"grocery-tracker/internal/api/presenters"
	"grocery-tracker/pkg/grocery"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	GroceryHandler interface {
		GetGroceries(c *fiber.Ctx) error
		AddGrocery(c *fiber.Ctx) error
		UpdateGrocery(c *fiber.Ctx) error
		DeleteGrocery(c *fiber.Ctx) error
		BulkAddGroceries(c *fiber.Ctx) error
	}

	groceryHandler struct {
		groceryService grocery.GroceryService
		validator      *validator.Validate
	}
)

func NewGroceryHandler(groceryService grocery.GroceryService, validator *validator.Validate) GroceryHandler {
	return &groceryHandler{
		groceryService: groceryService,
		validator:      validator,
	}
}

func (h *groceryHandler) GetGroceries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	groceries, err := h.groceryService.GetGroceries(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetGroceries, err)
	}

	return presenters.SuccessResponse(c, groceries, fiber.StatusOK, domain.MessageSuccessGetGroceries)
}

func (h *groceryHandler) AddGrocery(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.GroceryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGrocery, err)
	}

	res, err := h.groceryService.AddGrocery(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddGrocery, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddGrocery)
}

func (h *groceryHandler) UpdateGrocery(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groceryID := c.Params("id")
	req := new(domain.GroceryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGrocery, err)
	}

	if err := h.groceryService.UpdateGrocery(c.Context(), groceryID, *req, userID); err != nil {
		if errors.Is(err, domain.ErrGroceryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateGrocery, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateGrocery, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateGrocery)
}

func (h *groceryHandler) DeleteGrocery(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	groceryID := c.Params("id")

	if err := h.groceryService.DeleteGrocery(c.Context(), groceryID, userID); err != nil {
		if errors.Is(err, domain.ErrGroceryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteGrocery, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteGrocery, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteGrocery)
}

func (h *groceryHandler) BulkAddGroceries(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BulkAddGroceriesRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBulkAddGrocery, err)
	}

	if err := h.groceryService.BulkAddGroceries(c.Context(), *req, userID); err != nil {
		if errors.Is(err, domain.ErrInvalidGrocery) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBulkAddGrocery, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedBulkAddGrocery, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessBulkAddGrocery)
}
