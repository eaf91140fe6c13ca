package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"termsheet/internal/domain"
	"termsheet/internal/service"
	"termsheet/mocks"
)

func TestReportService_ExportValidation(t *testing.T) {
	uploads := new(mocks.MockUploadRepo)
	validations := new(mocks.MockValidationRepo)
	svc := service.NewReportService(uploads, validations, new(mocks.MockComparisonRepo), newValidator(t, nil))

	upload := equityUpload(domain.FieldSet{"Company Name": domain.StringPtr("Acme Inc")})
	rec := &domain.ValidationRecord{
		ID:       uuid.New(),
		UploadID: upload.ID,
		Result: domain.ValidationResult{
			DocumentType: domain.DocumentTypeStartupEquity,
			Score:        25,
			Status:       domain.ValidationStatusFailed,
		},
	}
	validations.On("GetByID", mock.Anything, rec.ID).Return(rec, nil)
	uploads.On("GetByID", mock.Anything, upload.ID).Return(upload, nil)

	export, err := svc.ExportValidation(context.Background(), rec.ID)

	require.NoError(t, err)
	assert.Equal(t, "validation-"+rec.ID.String()+".xlsx", export.FileName)
	assert.NotEmpty(t, export.Data)
	// xlsx is a zip archive
	assert.Equal(t, []byte("PK"), export.Data[:2])
}

func TestReportService_ExportValidation_NotFound(t *testing.T) {
	validations := new(mocks.MockValidationRepo)
	svc := service.NewReportService(new(mocks.MockUploadRepo), validations, new(mocks.MockComparisonRepo), newValidator(t, nil))

	id := uuid.New()
	validations.On("GetByID", mock.Anything, id).Return(nil, domain.ErrValidationNotFound)

	export, err := svc.ExportValidation(context.Background(), id)

	assert.Nil(t, export)
	assert.ErrorIs(t, err, domain.ErrValidationNotFound)
}

func TestReportService_ExportComparison(t *testing.T) {
	comparisons := new(mocks.MockComparisonRepo)
	svc := service.NewReportService(new(mocks.MockUploadRepo), new(mocks.MockValidationRepo), comparisons, newValidator(t, nil))

	rec := &domain.ComparisonRecord{
		ID:            uuid.New(),
		IdealFileName: "ideal.txt",
		InputFileName: "input.txt",
		Result: domain.ComparisonResult{Differences: map[string]domain.FieldDiff{
			"amount": {Ideal: domain.StringPtr("Rs. 10"), Input: domain.StringPtr("Rs. 10"), Status: domain.DiffSame},
		}},
	}
	comparisons.On("GetByID", mock.Anything, rec.ID).Return(rec, nil)

	export, err := svc.ExportComparison(context.Background(), rec.ID)

	require.NoError(t, err)
	assert.Equal(t, "comparison-"+rec.ID.String()+".xlsx", export.FileName)
	assert.Equal(t, []byte("PK"), export.Data[:2])
}
