package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"termsheet/internal/classifier"
	"termsheet/internal/config"
	"termsheet/internal/domain"
	"termsheet/internal/extractor"
	"termsheet/internal/port"
	"termsheet/internal/schema"
	"termsheet/internal/service"
	"termsheet/internal/textsource"
	"termsheet/mocks"
)

const equitySheet = `TERM SHEET
Company Name: Acme Inc
Investor: Fund I LP
Investment Amount: USD 2,000,000
Pre-Money Valuation: USD 8,000,000
Post-Money Valuation: USD 10,000,000
`

func testPipelineConfig() config.PipelineConfig {
	return config.PipelineConfig{ClassifyPrefixChars: 10000, AIPrefixChars: 6000, MinPatternFields: 5}
}

// offlineExtractor builds an extractor with no completion provider.
func offlineExtractor(t *testing.T) *extractor.Extractor {
	t.Helper()
	reg, err := schema.Default()
	require.NoError(t, err)
	cfg := testPipelineConfig()
	return extractor.New(nil, reg, classifier.New(nil, cfg), cfg)
}

func newUploadService(t *testing.T, repo *mocks.MockUploadRepo, storage *mocks.MockObjectStorage, text port.TextSource) service.UploadService {
	t.Helper()
	return service.NewUploadService(repo, storage, text, offlineExtractor(t),
		&config.S3Config{Bucket: "test-bucket"},
		&config.UploadConfig{MaxFileSizeMB: 1},
	)
}

func TestUploadService_Upload_ExtractsAndPersists(t *testing.T) {
	repo := new(mocks.MockUploadRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newUploadService(t, repo, storage, textsource.New(0))

	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.Bucket == "test-bucket" &&
			strings.HasPrefix(in.Key, "termsheets/") &&
			strings.HasSuffix(in.Key, "/series_a.txt") &&
			in.ContentType == "text/plain"
	})).Return(&port.UploadOutput{ETag: "abc"}, nil)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Upload")).Return(nil)

	upload, err := svc.Upload(context.Background(), service.UploadInput{
		Document: service.DocumentInput{FileName: "series_a.txt", Data: []byte(equitySheet)},
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, upload.ID)
	assert.Equal(t, domain.DocumentTypeStartupEquity, upload.DocumentType)
	assert.Equal(t, domain.ClassifiedByHeuristic, upload.Classification)
	assert.Equal(t, domain.UploadStatusParsed, upload.Status)
	assert.Equal(t, int64(len(equitySheet)), upload.FileSize)
	v, ok := upload.ExtractedFields.Get("Company Name")
	assert.True(t, ok)
	assert.Equal(t, "Acme Inc", v)
	storage.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUploadService_Upload_DocumentTypeOverride(t *testing.T) {
	repo := new(mocks.MockUploadRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newUploadService(t, repo, storage, textsource.New(0))

	storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	upload, err := svc.Upload(context.Background(), service.UploadInput{
		Document:     service.DocumentInput{FileName: "terms.txt", Data: []byte(equitySheet)},
		DocumentType: "Venture Debt",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DocumentTypeVentureDebt, upload.DocumentType)
	assert.Equal(t, domain.ClassifiedByCaller, upload.Classification)
}

func TestUploadService_Upload_NoText(t *testing.T) {
	repo := new(mocks.MockUploadRepo)
	storage := new(mocks.MockObjectStorage)
	text := new(mocks.MockTextSource)
	svc := newUploadService(t, repo, storage, text)

	storage.On("Upload", mock.Anything, mock.Anything).Return(&port.UploadOutput{}, nil)
	text.On("ExtractText", mock.Anything, mock.AnythingOfType("port.Document")).Return("")
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	upload, err := svc.Upload(context.Background(), service.UploadInput{
		Document: service.DocumentInput{FileName: "scan.pdf", Data: []byte("%PDF-1.4 scanned image only")},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.UploadStatusNoText, upload.Status)
	assert.Equal(t, domain.DocumentTypeUnknown, upload.DocumentType)
	assert.Equal(t, domain.ClassifiedByDefault, upload.Classification)
	assert.Empty(t, upload.ExtractedFields)
	assert.Equal(t, "application/pdf", upload.ContentType)
}

func TestUploadService_Upload_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		input   service.UploadInput
		wantErr error
	}{
		{
			name:    "empty file",
			input:   service.UploadInput{Document: service.DocumentInput{FileName: "a.txt"}},
			wantErr: domain.ErrEmptyFile,
		},
		{
			name:    "too large",
			input:   service.UploadInput{Document: service.DocumentInput{FileName: "a.txt", Data: make([]byte, 2*1024*1024)}},
			wantErr: domain.ErrFileTooLarge,
		},
		{
			name:    "unsupported extension",
			input:   service.UploadInput{Document: service.DocumentInput{FileName: "a.docx", ContentType: "application/msword", Data: []byte("x")}},
			wantErr: domain.ErrUnsupportedFileType,
		},
		{
			name:    "pdf extension without pdf content",
			input:   service.UploadInput{Document: service.DocumentInput{FileName: "a.pdf", Data: []byte("just text")}},
			wantErr: domain.ErrUnsupportedFileType,
		},
		{
			name: "unknown document type override",
			input: service.UploadInput{
				Document:     service.DocumentInput{FileName: "a.txt", Data: []byte("x")},
				DocumentType: "invoice",
			},
			wantErr: domain.ErrUnknownDocumentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mocks.MockUploadRepo)
			storage := new(mocks.MockObjectStorage)
			svc := newUploadService(t, repo, storage, textsource.New(0))

			upload, err := svc.Upload(context.Background(), tt.input)

			assert.Nil(t, upload)
			assert.ErrorIs(t, err, tt.wantErr)
			storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestUploadService_Upload_DeclaredContentTypeWithoutExtension(t *testing.T) {
	repo := new(mocks.MockUploadRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newUploadService(t, repo, storage, textsource.New(0))

	storage.On("Upload", mock.Anything, mock.MatchedBy(func(in port.UploadInput) bool {
		return in.ContentType == "text/html"
	})).Return(&port.UploadOutput{}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	upload, err := svc.Upload(context.Background(), service.UploadInput{
		Document: service.DocumentInput{
			FileName:    "termsheet",
			ContentType: "text/html; charset=utf-8",
			Data:        []byte("<html><body><p>Company Name: Acme Inc</p></body></html>"),
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "text/html", upload.ContentType)
}

func TestUploadService_Upload_StorageFailure(t *testing.T) {
	repo := new(mocks.MockUploadRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newUploadService(t, repo, storage, textsource.New(0))

	storage.On("Upload", mock.Anything, mock.Anything).Return(nil, errors.New("bucket unavailable"))

	upload, err := svc.Upload(context.Background(), service.UploadInput{
		Document: service.DocumentInput{FileName: "a.txt", Data: []byte(equitySheet)},
	})

	assert.Nil(t, upload)
	assert.ErrorIs(t, err, domain.ErrUploadFailed)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUploadService_Upload_RepoFailureRemovesObject(t *testing.T) {
	repo := new(mocks.MockUploadRepo)
	storage := new(mocks.MockObjectStorage)
	svc := newUploadService(t, repo, storage, textsource.New(0))

	var key string
	storage.On("Upload", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { key = args.Get(1).(port.UploadInput).Key }).
		Return(&port.UploadOutput{}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	storage.On("Delete", mock.Anything, "test-bucket", mock.AnythingOfType("string")).Return(nil)

	upload, err := svc.Upload(context.Background(), service.UploadInput{
		Document: service.DocumentInput{FileName: "a.txt", Data: []byte(equitySheet)},
	})

	assert.Nil(t, upload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating upload record")
	storage.AssertCalled(t, "Delete", mock.Anything, "test-bucket", key)
}

func TestUploadService_GetByID_NotFound(t *testing.T) {
	repo := new(mocks.MockUploadRepo)
	svc := newUploadService(t, repo, new(mocks.MockObjectStorage), textsource.New(0))

	id := uuid.New()
	repo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrUploadNotFound)

	upload, err := svc.GetByID(context.Background(), id)

	assert.Nil(t, upload)
	assert.ErrorIs(t, err, domain.ErrUploadNotFound)
}

func TestUploadService_List(t *testing.T) {
	repo := new(mocks.MockUploadRepo)
	svc := newUploadService(t, repo, new(mocks.MockObjectStorage), textsource.New(0))

	uploads := []domain.Upload{{ID: uuid.New()}, {ID: uuid.New()}}
	repo.On("List", mock.Anything, 0, 20).Return(uploads, 7, nil)

	got, total, err := svc.List(context.Background(), 0, 20)

	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 7, total)
}
