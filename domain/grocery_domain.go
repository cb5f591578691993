package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessAddGrocery     = "grocery added successfully"
	MessageSuccessUpdateGrocery  = "grocery updated successfully"
	MessageSuccessDeleteGrocery  = "grocery deleted successfully"
	MessageSuccessGetGroceries   = "groceries retrieved successfully"
	MessageSuccessBulkAddGrocery = "grocery items added successfully"

	MessageFailedAddGrocery     = "failed to add grocery"
	MessageFailedUpdateGrocery  = "failed to update grocery"
	MessageFailedDeleteGrocery  = "failed to delete grocery"
	MessageFailedGetGroceries   = "failed to retrieve groceries"
	MessageFailedBulkAddGrocery = "failed to add groceries to inventory"

	ErrGroceryNotFound = errors.New("grocery not found")
	ErrInvalidGrocery  = errors.New("invalid grocery item")
)

type (
	GroceryRequest struct {
		Name           string  `json:"name" validate:"required,max=255"`
		Quantity       float64 `json:"quantity" validate:"required,gt=0"`
		Unit           string  `json:"unit" validate:"required,max=50"`
		Price          float64 `json:"price" validate:"gte=0"`
		DateOfPurchase string  `json:"date_of_purchase" validate:"required"`
		DateOfExpiry   string  `json:"date_of_expiry" validate:"omitempty"`
	}

	BulkAddGroceriesRequest struct {
		Items []GroceryRequest `json:"items" validate:"required,min=1,dive"`
	}

	GroceryResponse struct {
		ID             string    `json:"id"`
		Name           string    `json:"name"`
		Quantity       float64   `json:"quantity"`
		Unit           string    `json:"unit"`
		Price          float64   `json:"price"`
		DateOfPurchase time.Time `json:"date_of_purchase"`
		DateOfExpiry   *string   `json:"date_of_expiry,omitempty"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
