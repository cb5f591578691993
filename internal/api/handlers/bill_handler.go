package handlers

import (
	"errors"

	"grocery-tracker/domain"
	"grocery-tracker/internal/api/presenters"
	"grocery-tracker/pkg/bill"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	BillHandler interface {
		ScanBill(c *fiber.Ctx) error
	}

	billHandler struct {
		billService bill.BillService
		validator   *validator.Validate
	}
)

func NewBillHandler(billService bill.BillService, validator *validator.Validate) BillHandler {
	return &billHandler{
		billService: billService,
		validator:   validator,
	}
}

func (h *billHandler) ScanBill(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.ScanBillRequest)

	file, err := c.FormFile("bill_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, domain.ErrBillImageRequired)
	}

	req.BillImage = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedScanBill, err)
	}

	res, err := h.billService.ScanBill(c.Context(), *req, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNoItemsDetected) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNoItemDetected, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedScanBill, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessScanBill)
}
