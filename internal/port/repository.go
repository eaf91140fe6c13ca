package port

import (
	"context"

	"github.com/google/uuid"

	"termsheet/internal/domain"
)

// UploadRepository defines the contract for upload persistence.
type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Upload, error)
	List(ctx context.Context, offset, limit int) ([]domain.Upload, int, error)
}

// ValidationRepository defines the contract for validation result persistence.
type ValidationRepository interface {
	Create(ctx context.Context, record *domain.ValidationRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ValidationRecord, error)
	ListByUpload(ctx context.Context, uploadID uuid.UUID) ([]domain.ValidationRecord, error)
}

// ComparisonRepository defines the contract for comparison result persistence.
type ComparisonRepository interface {
	Create(ctx context.Context, record *domain.ComparisonRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ComparisonRecord, error)
}
