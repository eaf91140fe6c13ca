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

type comparisonRow struct {
	ID            uuid.UUID       `db:"id"`
	IdealFileName string          `db:"ideal_file_name"`
	InputFileName string          `db:"input_file_name"`
	Result        json.RawMessage `db:"result"`
	CreatedAt     time.Time       `db:"created_at"`
}

type comparisonRepo struct {
	db *sqlx.DB
}

// NewComparisonRepo creates a new PostgreSQL-backed ComparisonRepository.
func NewComparisonRepo(db *sqlx.DB) port.ComparisonRepository {
	return &comparisonRepo{db: db}
}

func (r *comparisonRepo) Create(ctx context.Context, record *domain.ComparisonRecord) error {
	record.CreatedAt = time.Now().UTC()
	result, err := json.Marshal(record.Result)
	if err != nil {
		return fmt.Errorf("comparisonRepo.Create marshal: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO comparisons (id, ideal_file_name, input_file_name, result, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		record.ID, record.IdealFileName, record.InputFileName, result, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("comparisonRepo.Create: %w", err)
	}
	return nil
}

func (r *comparisonRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ComparisonRecord, error) {
	var row comparisonRow
	err := r.db.GetContext(ctx, &row, "SELECT * FROM comparisons WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrComparisonNotFound
		}
		return nil, fmt.Errorf("comparisonRepo.GetByID: %w", err)
	}

	rec := &domain.ComparisonRecord{
		ID:            row.ID,
		IdealFileName: row.IdealFileName,
		InputFileName: row.InputFileName,
		CreatedAt:     row.CreatedAt,
	}
	if err := json.Unmarshal(row.Result, &rec.Result); err != nil {
		return nil, fmt.Errorf("comparisonRepo.GetByID decode: %w", err)
	}
	return rec, nil
}
