package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"termsheet/internal/domain"
	"termsheet/internal/handler"
	"termsheet/internal/service"
	"termsheet/mocks"
)

func newUploadRouter(svc *mocks.MockUploadService) *gin.Engine {
	h := handler.NewUploadHandler(svc, 1)
	r := gin.New()
	r.POST("/uploads", h.Upload)
	r.GET("/uploads", h.List)
	r.GET("/uploads/:id", h.GetByID)
	return r
}

func TestUploadHandler_Upload(t *testing.T) {
	svc := new(mocks.MockUploadService)
	r := newUploadRouter(svc)

	upload := &domain.Upload{ID: uuid.New(), FileName: "series_a.txt", DocumentType: domain.DocumentTypeStartupEquity}
	svc.On("Upload", mock.Anything, mock.MatchedBy(func(in service.UploadInput) bool {
		return in.Document.FileName == "series_a.txt" &&
			string(in.Document.Data) == "Company Name: Acme Inc" &&
			in.DocumentType == "startup_equity"
	})).Return(upload, nil)

	body, ct := multipartBody(t,
		[]filePart{{"file", "series_a.txt", "Company Name: Acme Inc"}},
		map[string]string{"document_type": "startup_equity"},
	)
	req, _ := http.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", ct)
	w := serve(r, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, upload.ID.String(), data["id"])
	assert.Equal(t, "startup_equity", data["document_type"])
	svc.AssertExpectations(t)
}

func TestUploadHandler_Upload_MissingFile(t *testing.T) {
	svc := new(mocks.MockUploadService)
	r := newUploadRouter(svc)

	body, ct := multipartBody(t, nil, map[string]string{"document_type": "bank_loan"})
	req, _ := http.NewRequest(http.MethodPost, "/uploads", body)
	req.Header.Set("Content-Type", ct)
	w := serve(r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "MISSING_FILE", decodeResponse(t, w).Error.Code)
	svc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestUploadHandler_Upload_DomainErrors(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
		wantCode   string
	}{
		{domain.ErrUnsupportedFileType, http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE"},
		{domain.ErrFileTooLarge, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
		{fmt.Errorf("%w: %q", domain.ErrUnknownDocumentType, "invoice"), http.StatusBadRequest, "UNKNOWN_DOCUMENT_TYPE"},
		{domain.ErrUploadFailed, http.StatusInternalServerError, "UPLOAD_FAILED"},
	}
	for _, tt := range tests {
		t.Run(tt.wantCode, func(t *testing.T) {
			svc := new(mocks.MockUploadService)
			r := newUploadRouter(svc)
			svc.On("Upload", mock.Anything, mock.Anything).Return(nil, tt.err)

			body, ct := multipartBody(t, []filePart{{"file", "a.txt", "x"}}, nil)
			req, _ := http.NewRequest(http.MethodPost, "/uploads", body)
			req.Header.Set("Content-Type", ct)
			w := serve(r, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestUploadHandler_GetByID(t *testing.T) {
	svc := new(mocks.MockUploadService)
	r := newUploadRouter(svc)

	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(&domain.Upload{ID: id}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/uploads/"+id.String(), http.NoBody)
	w := serve(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id.String(), decodeResponse(t, w).Data.(map[string]interface{})["id"])
}

func TestUploadHandler_GetByID_InvalidID(t *testing.T) {
	svc := new(mocks.MockUploadService)
	r := newUploadRouter(svc)

	req, _ := http.NewRequest(http.MethodGet, "/uploads/not-a-uuid", http.NoBody)
	w := serve(r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", decodeResponse(t, w).Error.Code)
}

func TestUploadHandler_GetByID_NotFound(t *testing.T) {
	svc := new(mocks.MockUploadService)
	r := newUploadRouter(svc)

	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(nil, domain.ErrUploadNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/uploads/"+id.String(), http.NoBody)
	w := serve(r, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "UPLOAD_NOT_FOUND", decodeResponse(t, w).Error.Code)
}

func TestUploadHandler_List_Pagination(t *testing.T) {
	svc := new(mocks.MockUploadService)
	r := newUploadRouter(svc)

	svc.On("List", mock.Anything, 10, 20).Return([]domain.Upload{{ID: uuid.New()}}, 11, nil)

	req, _ := http.NewRequest(http.MethodGet, "/uploads?offset=10&limit=500", http.NoBody)
	w := serve(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, &handler.PagMeta{Total: 11, Offset: 10, Limit: 20}, resp.Meta)
	assert.Len(t, resp.Data, 1)
}
