package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessScanBill = "bill scanned successfully"

	MessageFailedScanBill       = "failed to process bill"
	MessageFailedNoItemDetected = "no grocery items detected"

	ErrNoItemsDetected     = errors.New("no grocery items detected")
	ErrRecognizerFailed    = errors.New("text recognition failed")
	ErrBillImageRequired   = errors.New("no file uploaded")
	ErrInvalidBillImage    = errors.New("invalid bill image format")
	ErrBillProcessingError = errors.New("bill processing failed")
)

type (
	ScanBillRequest struct {
		BillImage *multipart.FileHeader `json:"bill_image" form:"bill_image" validate:"required"`
	}

	// GroceryCandidate is one parsed, normalized receipt line offered back to
	// the user for review. Nothing is persisted until the bulk commit call.
	GroceryCandidate struct {
		Name           string  `json:"name"`
		Quantity       float64 `json:"quantity"`
		Unit           string  `json:"unit"`
		Price          float64 `json:"price"`
		DateOfPurchase string  `json:"date_of_purchase"`
		DateOfExpiry   string  `json:"date_of_expiry"`
	}

	ScanBillResponse struct {
		Items    []GroceryCandidate `json:"items"`
		ImageURL string             `json:"image_url,omitempty"`
	}
)
