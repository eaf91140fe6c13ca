package service

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"termsheet/internal/config"
	"termsheet/internal/domain"
	"termsheet/internal/extractor"
	"termsheet/internal/port"
)

// UploadInput is the DTO for uploading a term sheet.
type UploadInput struct {
	Document DocumentInput
	// DocumentType optionally overrides classification.
	DocumentType string
}

// UploadService defines the term-sheet upload contract.
type UploadService interface {
	Upload(ctx context.Context, input UploadInput) (*domain.Upload, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Upload, error)
	List(ctx context.Context, offset, limit int) ([]domain.Upload, int, error)
}

type uploadService struct {
	uploadRepo port.UploadRepository
	storage    port.ObjectStorage
	text       port.TextSource
	extractor  *extractor.Extractor
	bucket     string
	maxBytes   int64
}

// NewUploadService creates a new UploadService implementation.
func NewUploadService(
	uploadRepo port.UploadRepository,
	storage port.ObjectStorage,
	text port.TextSource,
	ext *extractor.Extractor,
	s3Cfg *config.S3Config,
	uploadCfg *config.UploadConfig,
) UploadService {
	return &uploadService{
		uploadRepo: uploadRepo,
		storage:    storage,
		text:       text,
		extractor:  ext,
		bucket:     s3Cfg.Bucket,
		maxBytes:   uploadCfg.MaxFileSizeMB * 1024 * 1024,
	}
}

func (s *uploadService) Upload(ctx context.Context, input UploadInput) (*domain.Upload, error) {
	var override domain.DocumentType
	if strings.TrimSpace(input.DocumentType) != "" {
		t, ok := domain.ParseDocumentType(input.DocumentType)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDocumentType, input.DocumentType)
		}
		override = t
	}

	doc, err := resolveDocument(input.Document, s.maxBytes)
	if err != nil {
		return nil, err
	}

	id := uuid.New()
	key := storageKey(id, doc.Name)
	log.Printf("uploadService.Upload: storing %s (%s, %d bytes) as %s", doc.Name, doc.ContentType, len(doc.Data), id)

	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.bucket,
		Key:         key,
		Body:        bytes.NewReader(doc.Data),
		ContentType: doc.ContentType,
		Size:        int64(len(doc.Data)),
	}); err != nil {
		log.Printf("uploadService.Upload: storage upload failed for %s: %v", id, err)
		return nil, domain.ErrUploadFailed
	}

	text := s.text.ExtractText(ctx, doc)
	extraction := s.extractor.ExtractWithType(ctx, text, override)

	upload := &domain.Upload{
		ID:              id,
		FileName:        doc.Name,
		ContentType:     doc.ContentType,
		FileSize:        int64(len(doc.Data)),
		StorageKey:      key,
		DocumentType:    extraction.DocumentType,
		Classification:  extraction.Classification,
		ExtractedFields: extraction.ExtractedFields,
		Status:          domain.UploadStatusParsed,
	}
	if strings.TrimSpace(text) == "" {
		upload.Status = domain.UploadStatusNoText
		log.Printf("uploadService.Upload: no text could be read from %s", id)
	}

	if err := s.uploadRepo.Create(ctx, upload); err != nil {
		if delErr := s.storage.Delete(ctx, s.bucket, key); delErr != nil {
			log.Printf("uploadService.Upload: cleaning up %s: %v", key, delErr)
		}
		return nil, fmt.Errorf("creating upload record: %w", err)
	}

	log.Printf("uploadService.Upload: %s classified as %s (%s), %d fields",
		id, upload.DocumentType, upload.Classification, len(upload.ExtractedFields))
	return upload, nil
}

func (s *uploadService) GetByID(ctx context.Context, id uuid.UUID) (*domain.Upload, error) {
	return s.uploadRepo.GetByID(ctx, id)
}

func (s *uploadService) List(ctx context.Context, offset, limit int) ([]domain.Upload, int, error) {
	return s.uploadRepo.List(ctx, offset, limit)
}
