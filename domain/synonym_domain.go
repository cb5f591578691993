package domain

import "errors"

var (
	MessageSuccessAddSynonym    = "grocery item added successfully"
	MessageSuccessUpdateSynonym = "synonyms updated successfully"
	MessageSuccessDeleteSynonym = "grocery item deleted successfully"
	MessageSuccessGetSynonyms   = "grocery items retrieved successfully"

	MessageFailedAddSynonym    = "failed to add grocery item"
	MessageFailedUpdateSynonym = "failed to update synonyms"
	MessageFailedDeleteSynonym = "failed to delete grocery item"
	MessageFailedGetSynonyms   = "failed to fetch grocery items"

	ErrSynonymEntryNotFound = errors.New("grocery item entry not found")
	ErrDuplicateCommonName  = errors.New("common name already exists")
)

type (
	SynonymEntryRequest struct {
		CommonName string   `json:"common_name" validate:"required,max=255"`
		Synonyms   []string `json:"synonyms" validate:"required,dive,required"`
	}

	UpdateSynonymsRequest struct {
		Synonyms []string `json:"synonyms" validate:"required,dive,required"`
	}

	SynonymEntryResponse struct {
		ID         string   `json:"id"`
		CommonName string   `json:"common_name"`
		Synonyms   []string `json:"synonyms"`
	}
)
