package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"termsheet/internal/domain"
	"termsheet/internal/port"
)

type uploadRepo struct {
	db *sqlx.DB
}

// NewUploadRepo creates a new PostgreSQL-backed UploadRepository.
func NewUploadRepo(db *sqlx.DB) port.UploadRepository {
	return &uploadRepo{db: db}
}

func (r *uploadRepo) Create(ctx context.Context, upload *domain.Upload) error {
	upload.CreatedAt = time.Now().UTC()
	if upload.ExtractedFields == nil {
		upload.ExtractedFields = domain.FieldSet{}
	}

	query := `INSERT INTO uploads (
		id, file_name, content_type, file_size, storage_key,
		document_type, classification, extracted_fields, status, created_at
	) VALUES (
		:id, :file_name, :content_type, :file_size, :storage_key,
		:document_type, :classification, :extracted_fields, :status, :created_at
	)`
	if _, err := r.db.NamedExecContext(ctx, query, upload); err != nil {
		return fmt.Errorf("uploadRepo.Create: %w", err)
	}
	return nil
}

func (r *uploadRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Upload, error) {
	var upload domain.Upload
	err := r.db.GetContext(ctx, &upload, "SELECT * FROM uploads WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUploadNotFound
		}
		return nil, fmt.Errorf("uploadRepo.GetByID: %w", err)
	}
	return &upload, nil
}

func (r *uploadRepo) List(ctx context.Context, offset, limit int) ([]domain.Upload, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM uploads"); err != nil {
		return nil, 0, fmt.Errorf("uploadRepo.List count: %w", err)
	}

	var uploads []domain.Upload
	err := r.db.SelectContext(ctx, &uploads,
		"SELECT * FROM uploads ORDER BY created_at DESC LIMIT $1 OFFSET $2", limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("uploadRepo.List: %w", err)
	}
	return uploads, total, nil
}
