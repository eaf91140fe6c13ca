package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"termsheet/internal/comparator"
	"termsheet/internal/config"
	"termsheet/internal/domain"
	"termsheet/internal/port"
)

// ComparisonService defines the contract for comparing two term sheets.
type ComparisonService interface {
	Compare(ctx context.Context, ideal, input DocumentInput) (*domain.ComparisonRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ComparisonRecord, error)
}

type comparisonService struct {
	comparisonRepo port.ComparisonRepository
	comparator     *comparator.Comparator
	maxBytes       int64
}

// NewComparisonService creates a new ComparisonService implementation.
func NewComparisonService(
	comparisonRepo port.ComparisonRepository,
	cmp *comparator.Comparator,
	uploadCfg *config.UploadConfig,
) ComparisonService {
	return &comparisonService{
		comparisonRepo: comparisonRepo,
		comparator:     cmp,
		maxBytes:       uploadCfg.MaxFileSizeMB * 1024 * 1024,
	}
}

func (s *comparisonService) Compare(ctx context.Context, ideal, input DocumentInput) (*domain.ComparisonRecord, error) {
	idealDoc, err := resolveDocument(ideal, s.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("ideal file: %w", err)
	}
	inputDoc, err := resolveDocument(input, s.maxBytes)
	if err != nil {
		return nil, fmt.Errorf("input file: %w", err)
	}

	result := s.comparator.Compare(ctx, idealDoc, inputDoc)
	record := &domain.ComparisonRecord{
		ID:            uuid.New(),
		IdealFileName: idealDoc.Name,
		InputFileName: inputDoc.Name,
		Result:        *result,
	}
	if err := s.comparisonRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("saving comparison: %w", err)
	}

	log.Printf("comparisonService.Compare: %s vs %s, changed fields %v",
		idealDoc.Name, inputDoc.Name, comparator.ChangedFields(result.Differences))
	return record, nil
}

func (s *comparisonService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ComparisonRecord, error) {
	return s.comparisonRepo.GetByID(ctx, id)
}
