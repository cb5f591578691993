package handlers

import (
	"errors"

	"grocery-tracker/domain"
	"grocery-tracker/internal/api/presenters"
	"grocery-tracker/pkg/synonym"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SynonymHandler interface {
		GetEntries(c *fiber.Ctx) error
		AddEntry(c *fiber.Ctx) error
		UpdateEntry(c *fiber.Ctx) error
		DeleteEntry(c *fiber.Ctx) error
	}

	synonymHandler struct {
		synonymService synonym.SynonymService
		validator      *validator.Validate
	}
)

func NewSynonymHandler(synonymService synonym.SynonymService, validator *validator.Validate) SynonymHandler {
	return &synonymHandler{
		synonymService: synonymService,
		validator:      validator,
	}
}

func (h *synonymHandler) GetEntries(c *fiber.Ctx) error {
	res, err := h.synonymService.ListEntries(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetSynonyms, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSynonyms)
}

func (h *synonymHandler) AddEntry(c *fiber.Ctx) error {
	req := new(domain.SynonymEntryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddSynonym, err)
	}

	res, err := h.synonymService.AddEntry(c.Context(), *req)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCommonName) {
			return presenters.ErrorResponse(c, fiber.StatusConflict, domain.MessageFailedAddSynonym, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedAddSynonym, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddSynonym)
}

func (h *synonymHandler) UpdateEntry(c *fiber.Ctx) error {
	entryID := c.Params("id")
	req := new(domain.UpdateSynonymsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateSynonym, err)
	}

	if err := h.synonymService.UpdateEntry(c.Context(), entryID, *req); err != nil {
		if errors.Is(err, domain.ErrSynonymEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateSynonym, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedUpdateSynonym, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateSynonym)
}

func (h *synonymHandler) DeleteEntry(c *fiber.Ctx) error {
	entryID := c.Params("id")

	if err := h.synonymService.DeleteEntry(c.Context(), entryID); err != nil {
		if errors.Is(err, domain.ErrSynonymEntryNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedDeleteSynonym, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedDeleteSynonym, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSynonym)
}
