package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"termsheet/internal/domain"
	"termsheet/internal/service"
)

// MockUploadService is a mock implementation of service.UploadService.
type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) Upload(ctx context.Context, input service.UploadInput) (*domain.Upload, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockUploadService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Upload, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Upload), args.Error(1)
}

func (m *MockUploadService) List(ctx context.Context, offset, limit int) ([]domain.Upload, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Upload), args.Int(1), args.Error(2)
}

// MockValidationService is a mock implementation of service.ValidationService.
type MockValidationService struct {
	mock.Mock
}

func (m *MockValidationService) Validate(ctx context.Context, uploadID uuid.UUID, deepCheck bool) (*domain.ValidationRecord, error) {
	args := m.Called(ctx, uploadID, deepCheck)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationRecord), args.Error(1)
}

func (m *MockValidationService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ValidationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationRecord), args.Error(1)
}

func (m *MockValidationService) ListByUpload(ctx context.Context, uploadID uuid.UUID) ([]domain.ValidationRecord, error) {
	args := m.Called(ctx, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ValidationRecord), args.Error(1)
}

// MockComparisonService is a mock implementation of service.ComparisonService.
type MockComparisonService struct {
	mock.Mock
}

func (m *MockComparisonService) Compare(ctx context.Context, ideal, input service.DocumentInput) (*domain.ComparisonRecord, error) {
	args := m.Called(ctx, ideal, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComparisonRecord), args.Error(1)
}

func (m *MockComparisonService) GetByID(ctx context.Context, id uuid.UUID) (*domain.ComparisonRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComparisonRecord), args.Error(1)
}

// MockReportService is a mock implementation of service.ReportService.
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) ExportValidation(ctx context.Context, validationID uuid.UUID) (*service.Export, error) {
	args := m.Called(ctx, validationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Export), args.Error(1)
}

func (m *MockReportService) ExportComparison(ctx context.Context, comparisonID uuid.UUID) (*service.Export, error) {
	args := m.Called(ctx, comparisonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Export), args.Error(1)
}

// MockAssistantService is a mock implementation of service.AssistantService.
type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) Ask(ctx context.Context, query string) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}
