package synonym

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"grocery-tracker/domain"
	"grocery-tracker/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	SynonymService interface {
		ListEntries(ctx context.Context) ([]domain.SynonymEntryResponse, error)
		AddEntry(ctx context.Context, req domain.SynonymEntryRequest) (domain.SynonymEntryResponse, error)
		UpdateEntry(ctx context.Context, id string, req domain.UpdateSynonymsRequest) error
		DeleteEntry(ctx context.Context, id string) error
	}

	synonymService struct {
		synonymRepository SynonymRepository
		dictionary        *Dictionary
	}
)

func NewSynonymService(synonymRepository SynonymRepository, dictionary *Dictionary) SynonymService {
	return &synonymService{
		synonymRepository: synonymRepository,
		dictionary:        dictionary,
	}
}

func (s *synonymService) ListEntries(ctx context.Context) ([]domain.SynonymEntryResponse, error) {
	entries, err := s.synonymRepository.GetAllEntries(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.SynonymEntryResponse, 0, len(entries))
	for _, entry := range entries {
		var aliases []string
		if err := json.Unmarshal([]byte(entry.Synonyms), &aliases); err != nil {
			aliases = []string{}
		}
		response = append(response, domain.SynonymEntryResponse{
			ID:         entry.ID.String(),
			CommonName: entry.CommonName,
			Synonyms:   aliases,
		})
	}

	return response, nil
}

func (s *synonymService) AddEntry(ctx context.Context, req domain.SynonymEntryRequest) (domain.SynonymEntryResponse, error) {
	if _, err := s.synonymRepository.GetEntryByCommonName(ctx, req.CommonName); err == nil {
		return domain.SynonymEntryResponse{}, domain.ErrDuplicateCommonName
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.SynonymEntryResponse{}, err
	}

	aliasesJSON, err := json.Marshal(req.Synonyms)
	if err != nil {
		return domain.SynonymEntryResponse{}, err
	}

	entry := &entities.GroceryItem{
		ID:         uuid.New(),
		CommonName: req.CommonName,
		Synonyms:   string(aliasesJSON),
	}

	if err := s.synonymRepository.CreateEntry(ctx, entry); err != nil {
		return domain.SynonymEntryResponse{}, err
	}

	s.reloadDictionary(ctx)

	return domain.SynonymEntryResponse{
		ID:         entry.ID.String(),
		CommonName: entry.CommonName,
		Synonyms:   req.Synonyms,
	}, nil
}

func (s *synonymService) UpdateEntry(ctx context.Context, id string, req domain.UpdateSynonymsRequest) error {
	entry, err := s.synonymRepository.GetEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSynonymEntryNotFound
		}
		return err
	}

	aliasesJSON, err := json.Marshal(req.Synonyms)
	if err != nil {
		return err
	}

	entry.Synonyms = string(aliasesJSON)
	if err := s.synonymRepository.UpdateEntry(ctx, entry); err != nil {
		return err
	}

	s.reloadDictionary(ctx)
	return nil
}

func (s *synonymService) DeleteEntry(ctx context.Context, id string) error {
	if _, err := s.synonymRepository.GetEntryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrSynonymEntryNotFound
		}
		return err
	}

	if err := s.synonymRepository.DeleteEntry(ctx, id); err != nil {
		return err
	}

	s.reloadDictionary(ctx)
	return nil
}

// reloadDictionary rebuilds the in-memory cache after a mutation. The cache is
// stale until this succeeds; failures keep serving the previous snapshot.
func (s *synonymService) reloadDictionary(ctx context.Context) {
	if err := s.dictionary.Reload(ctx); err != nil {
		log.Printf("Error reloading synonym dictionary: %v", err)
	}
}
