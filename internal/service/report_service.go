package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"termsheet/internal/port"
	"termsheet/internal/report"
	"termsheet/internal/validator"
)

// XLSXContentType is the media type of exported workbooks.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Export is a rendered report ready for download.
type Export struct {
	FileName string
	Data     []byte
}

// ReportService defines the contract for exporting stored results.
type ReportService interface {
	ExportValidation(ctx context.Context, validationID uuid.UUID) (*Export, error)
	ExportComparison(ctx context.Context, comparisonID uuid.UUID) (*Export, error)
}

type reportService struct {
	uploadRepo     port.UploadRepository
	validationRepo port.ValidationRepository
	comparisonRepo port.ComparisonRepository
	validator      *validator.Validator
}

// NewReportService creates a new ReportService implementation.
func NewReportService(
	uploadRepo port.UploadRepository,
	validationRepo port.ValidationRepository,
	comparisonRepo port.ComparisonRepository,
	v *validator.Validator,
) ReportService {
	return &reportService{
		uploadRepo:     uploadRepo,
		validationRepo: validationRepo,
		comparisonRepo: comparisonRepo,
		validator:      v,
	}
}

func (s *reportService) ExportValidation(ctx context.Context, validationID uuid.UUID) (*Export, error) {
	rec, err := s.validationRepo.GetByID(ctx, validationID)
	if err != nil {
		return nil, err
	}
	upload, err := s.uploadRepo.GetByID(ctx, rec.UploadID)
	if err != nil {
		return nil, fmt.Errorf("loading upload %s: %w", rec.UploadID, err)
	}

	statuses := s.validator.ComputeFieldStatuses(upload.ExtractedFields, rec.Result.DocumentType)
	data, err := report.ValidationWorkbook(rec, statuses)
	if err != nil {
		return nil, fmt.Errorf("rendering validation %s: %w", rec.ID, err)
	}
	return &Export{FileName: "validation-" + rec.ID.String() + ".xlsx", Data: data}, nil
}

func (s *reportService) ExportComparison(ctx context.Context, comparisonID uuid.UUID) (*Export, error) {
	rec, err := s.comparisonRepo.GetByID(ctx, comparisonID)
	if err != nil {
		return nil, err
	}
	data, err := report.ComparisonWorkbook(rec)
	if err != nil {
		return nil, fmt.Errorf("rendering comparison %s: %w", rec.ID, err)
	}
	return &Export{FileName: "comparison-" + rec.ID.String() + ".xlsx", Data: data}, nil
}
