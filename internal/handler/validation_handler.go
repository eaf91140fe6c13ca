package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"termsheet/internal/service"
)

// ValidationHandler handles validation endpoints.
type ValidationHandler struct {
	validationService service.ValidationService
	reportService     service.ReportService
}

// NewValidationHandler creates a new ValidationHandler.
func NewValidationHandler(validationService service.ValidationService, reportService service.ReportService) *ValidationHandler {
	return &ValidationHandler{validationService: validationService, reportService: reportService}
}

// Validate handles POST /api/v1/uploads/:id/validate
// @Summary Validate an upload
// @Description Score the upload's extracted fields against its schema, optionally with an AI consistency check
// @Tags validations
// @Produce json
// @Param id path string true "Upload ID"
// @Param deep_check query bool false "Run the AI consistency check" default(false)
// @Success 201 {object} APIResponse{data=domain.ValidationRecord}
// @Failure 400 {object} APIResponse "No extracted fields"
// @Failure 404 {object} APIResponse "Upload not found"
// @Security BearerAuth
// @Router /uploads/{id}/validate [post]
func (h *ValidationHandler) Validate(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deepCheck := false
	if raw := c.Query("deep_check"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_DEEP_CHECK", "deep_check must be a boolean")
			return
		}
		deepCheck = v
	}

	rec, err := h.validationService.Validate(c.Request.Context(), id, deepCheck)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, rec)
}

// ListByUpload handles GET /api/v1/uploads/:id/validations
// @Summary List validations of an upload
// @Tags validations
// @Produce json
// @Param id path string true "Upload ID"
// @Success 200 {object} APIResponse{data=[]domain.ValidationRecord}
// @Failure 404 {object} APIResponse "Upload not found"
// @Security BearerAuth
// @Router /uploads/{id}/validations [get]
func (h *ValidationHandler) ListByUpload(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	recs, err := h.validationService.ListByUpload(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, recs)
}

// GetByID handles GET /api/v1/validations/:id
// @Summary Get a validation
// @Tags validations
// @Produce json
// @Param id path string true "Validation ID"
// @Success 200 {object} APIResponse{data=domain.ValidationRecord}
// @Failure 404 {object} APIResponse "Validation not found"
// @Security BearerAuth
// @Router /validations/{id} [get]
func (h *ValidationHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rec, err := h.validationService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// Export handles GET /api/v1/validations/:id/export
// @Summary Export a validation
// @Description Download the validation as an XLSX workbook
// @Tags validations
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Validation ID"
// @Success 200 {file} file
// @Failure 404 {object} APIResponse "Validation not found"
// @Security BearerAuth
// @Router /validations/{id}/export [get]
func (h *ValidationHandler) Export(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	export, err := h.reportService.ExportValidation(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	sendExport(c, export)
}

func sendExport(c *gin.Context, export *service.Export) {
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	c.Data(http.StatusOK, service.XLSXContentType, export.Data)
}
