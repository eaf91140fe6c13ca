package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"termsheet/internal/domain"
	"termsheet/internal/port"
	"termsheet/internal/validator"
)

// ValidationService defines the contract for validating stored uploads.
type ValidationService interface {
	Validate(ctx context.Context, uploadID uuid.UUID, deepCheck bool) (*domain.ValidationRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ValidationRecord, error)
	ListByUpload(ctx context.Context, uploadID uuid.UUID) ([]domain.ValidationRecord, error)
}

type validationService struct {
	uploadRepo     port.UploadRepository
	validationRepo port.ValidationRepository
	validator      *validator.Validator
}

// NewValidationService creates a new ValidationService implementation.
func NewValidationService(
	uploadRepo port.UploadRepository,
	validationRepo port.ValidationRepository,
	v *validator.Validator,
) ValidationService {
	return &validationService{
		uploadRepo:     uploadRepo,
		validationRepo: validationRepo,
		validator:      v,
	}
}

func (s *validationService) Validate(ctx context.Context, uploadID uuid.UUID, deepCheck bool) (*domain.ValidationRecord, error) {
	upload, err := s.uploadRepo.GetByID(ctx, uploadID)
	if err != nil {
		return nil, err
	}
	if len(upload.ExtractedFields) == 0 {
		return nil, domain.ErrNoExtractedFields
	}

	result := s.validator.Validate(ctx, upload.ExtractedFields, upload.DocumentType, deepCheck)
	record := &domain.ValidationRecord{
		ID:        uuid.New(),
		UploadID:  upload.ID,
		DeepCheck: deepCheck,
		Result:    *result,
	}
	if err := s.validationRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("saving validation: %w", err)
	}

	log.Printf("validationService.Validate: upload %s scored %d (%s, deep check %s)",
		upload.ID, result.Score, result.Status, result.DeepCheck)
	return record, nil
}

func (s *validationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ValidationRecord, error) {
	return s.validationRepo.GetByID(ctx, id)
}

func (s *validationService) ListByUpload(ctx context.Context, uploadID uuid.UUID) ([]domain.ValidationRecord, error) {
	if _, err := s.uploadRepo.GetByID(ctx, uploadID); err != nil {
		return nil, err
	}
	return s.validationRepo.ListByUpload(ctx, uploadID)
}
