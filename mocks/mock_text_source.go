package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"termsheet/internal/port"
)

// MockTextSource is a mock implementation of port.TextSource.
type MockTextSource struct {
	mock.Mock
}

func (m *MockTextSource) ExtractText(ctx context.Context, doc port.Document) string {
	args := m.Called(ctx, doc)
	return args.String(0)
}
