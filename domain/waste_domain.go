package domain

import "time"

var (
	MessageSuccessStoreWeeklyWaste = "weekly food waste data saved"
	MessageSuccessGetWasteHistory  = "food waste history retrieved successfully"

	MessageFailedStoreWeeklyWaste = "failed to save weekly food waste data"
	MessageFailedGetWasteHistory  = "failed to retrieve food waste history"
)

type (
	WeeklyWasteResponse struct {
		WeekOf time.Time `json:"week_of"`
		Wasted float64   `json:"wasted"`
		Saved  float64   `json:"saved"`
	}
)
