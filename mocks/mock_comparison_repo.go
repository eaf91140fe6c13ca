package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"termsheet/internal/domain"
)

// MockComparisonRepo is a mock implementation of port.ComparisonRepository.
type MockComparisonRepo struct {
	mock.Mock
}

func (m *MockComparisonRepo) Create(ctx context.Context, record *domain.ComparisonRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockComparisonRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ComparisonRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComparisonRecord), args.Error(1)
}
