package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"termsheet/internal/domain"
	"termsheet/internal/port"
)

// validationRow mirrors the validations table. The score, status and type
// columns are denormalized copies of the JSON result for filtering.
type validationRow struct {
	ID           uuid.UUID       `db:"id"`
	UploadID     uuid.UUID       `db:"upload_id"`
	DeepCheck    bool            `db:"deep_check_requested"`
	DocumentType string          `db:"document_type"`
	Score        int             `db:"score"`
	Status       string          `db:"status"`
	Result       json.RawMessage `db:"result"`
	CreatedAt    time.Time       `db:"created_at"`
}

func (row *validationRow) toDomain() (*domain.ValidationRecord, error) {
	rec := &domain.ValidationRecord{
		ID:        row.ID,
		UploadID:  row.UploadID,
		DeepCheck: row.DeepCheck,
		CreatedAt: row.CreatedAt,
	}
	if err := json.Unmarshal(row.Result, &rec.Result); err != nil {
		return nil, fmt.Errorf("decoding validation %s: %w", row.ID, err)
	}
	return rec, nil
}

type validationRepo struct {
	db *sqlx.DB
}

// NewValidationRepo creates a new PostgreSQL-backed ValidationRepository.
func NewValidationRepo(db *sqlx.DB) port.ValidationRepository {
	return &validationRepo{db: db}
}

func (r *validationRepo) Create(ctx context.Context, record *domain.ValidationRecord) error {
	record.CreatedAt = time.Now().UTC()
	result, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("validationRepo.Create marshal: %w", err)
	}

	query := `INSERT INTO validations (
		id, upload_id, deep_check_requested, document_type, score, status, result, created_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.db.ExecContext(ctx, query,
		record.ID, record.UploadID, record.DeepCheck, record.Result.DocumentType,
		record.Result.Score, record.Result.Status, result, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("validationRepo.Create: %w", err)
	}
	return nil
}

func (r *validationRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ValidationRecord, error) {
	var row validationRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM validations WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrValidationNotFound
		}
		return nil, fmt.Errorf("validationRepo.GetByID: %w", err)
	}
	return row.toDomain()
}

func (r *validationRepo) ListByUpload(ctx context.Context, uploadID uuid.UUID) ([]domain.ValidationRecord, error) {
	var rows []validationRow
	err := r.db.SelectContext(ctx, &rows,
		"SELECT * FROM validations WHERE upload_id = $1 ORDER BY created_at DESC", uploadID)
	if err != nil {
		return nil, fmt.Errorf("validationRepo.ListByUpload: %w", err)
	}

	records := make([]domain.ValidationRecord, 0, len(rows))
	for i := range rows {
		rec, err := rows[i].toDomain()
		if err != nil {
			return nil, fmt.Errorf("validationRepo.ListByUpload: %w", err)
		}
		records = append(records, *rec)
	}
	return records, nil
}
