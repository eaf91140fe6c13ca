package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"termsheet/internal/domain"
)

// MockValidationRepo is a mock implementation of port.ValidationRepository.
type MockValidationRepo struct {
	mock.Mock
}

func (m *MockValidationRepo) Create(ctx context.Context, record *domain.ValidationRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockValidationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ValidationRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ValidationRecord), args.Error(1)
}

func (m *MockValidationRepo) ListByUpload(ctx context.Context, uploadID uuid.UUID) ([]domain.ValidationRecord, error) {
	args := m.Called(ctx, uploadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ValidationRecord), args.Error(1)
}
