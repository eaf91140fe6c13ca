package handler_test

import (
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

func newValidationRouter(svc *mocks.MockValidationService, reports *mocks.MockReportService) *gin.Engine {
	h := handler.NewValidationHandler(svc, reports)
	r := gin.New()
	r.POST("/uploads/:id/validate", h.Validate)
	r.GET("/uploads/:id/validations", h.ListByUpload)
	r.GET("/validations/:id", h.GetByID)
	r.GET("/validations/:id/export", h.Export)
	return r
}

func TestValidationHandler_Validate(t *testing.T) {
	tests := []struct {
		query    string
		wantDeep bool
	}{
		{"", false},
		{"?deep_check=true", true},
		{"?deep_check=false", false},
		{"?deep_check=1", true},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			svc := new(mocks.MockValidationService)
			r := newValidationRouter(svc, new(mocks.MockReportService))

			uploadID := uuid.New()
			rec := &domain.ValidationRecord{
				ID:       uuid.New(),
				UploadID: uploadID,
				Result:   domain.ValidationResult{Score: 33, Status: domain.ValidationStatusFailed},
			}
			svc.On("Validate", mock.Anything, uploadID, tt.wantDeep).Return(rec, nil)

			req, _ := http.NewRequest(http.MethodPost, "/uploads/"+uploadID.String()+"/validate"+tt.query, http.NoBody)
			w := serve(r, req)

			assert.Equal(t, http.StatusCreated, w.Code)
			data := decodeResponse(t, w).Data.(map[string]interface{})
			result := data["result"].(map[string]interface{})
			assert.Equal(t, float64(33), result["score"])
			assert.Equal(t, "Failed", result["status"])
			svc.AssertExpectations(t)
		})
	}
}

func TestValidationHandler_Validate_InvalidDeepCheck(t *testing.T) {
	svc := new(mocks.MockValidationService)
	r := newValidationRouter(svc, new(mocks.MockReportService))

	req, _ := http.NewRequest(http.MethodPost, "/uploads/"+uuid.NewString()+"/validate?deep_check=maybe", http.NoBody)
	w := serve(r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_DEEP_CHECK", decodeResponse(t, w).Error.Code)
}

func TestValidationHandler_Validate_NoExtractedFields(t *testing.T) {
	svc := new(mocks.MockValidationService)
	r := newValidationRouter(svc, new(mocks.MockReportService))

	id := uuid.New()
	svc.On("Validate", mock.Anything, id, false).Return(nil, domain.ErrNoExtractedFields)

	req, _ := http.NewRequest(http.MethodPost, "/uploads/"+id.String()+"/validate", http.NoBody)
	w := serve(r, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "NO_EXTRACTED_FIELDS", decodeResponse(t, w).Error.Code)
}

func TestValidationHandler_GetByID_NotFound(t *testing.T) {
	svc := new(mocks.MockValidationService)
	r := newValidationRouter(svc, new(mocks.MockReportService))

	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(nil, domain.ErrValidationNotFound)

	req, _ := http.NewRequest(http.MethodGet, "/validations/"+id.String(), http.NoBody)
	w := serve(r, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "VALIDATION_NOT_FOUND", decodeResponse(t, w).Error.Code)
}

func TestValidationHandler_ListByUpload(t *testing.T) {
	svc := new(mocks.MockValidationService)
	r := newValidationRouter(svc, new(mocks.MockReportService))

	id := uuid.New()
	svc.On("ListByUpload", mock.Anything, id).Return([]domain.ValidationRecord{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/uploads/"+id.String()+"/validations", http.NoBody)
	w := serve(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeResponse(t, w).Data, 2)
}

func TestValidationHandler_Export(t *testing.T) {
	reports := new(mocks.MockReportService)
	r := newValidationRouter(new(mocks.MockValidationService), reports)

	id := uuid.New()
	reports.On("ExportValidation", mock.Anything, id).
		Return(&service.Export{FileName: "validation-" + id.String() + ".xlsx", Data: []byte("PK\x03\x04")}, nil)

	req, _ := http.NewRequest(http.MethodGet, "/validations/"+id.String()+"/export", http.NoBody)
	w := serve(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.XLSXContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="validation-`+id.String()+`.xlsx"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK\x03\x04", w.Body.String())
}
