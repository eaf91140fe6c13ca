package handler

import (
	"github.com/gin-gonic/gin"

	"termsheet/internal/service"
)

// ComparisonHandler handles term-sheet comparison endpoints.
type ComparisonHandler struct {
	comparisonService service.ComparisonService
	reportService     service.ReportService
	maxBytes          int64
}

// NewComparisonHandler creates a new ComparisonHandler.
func NewComparisonHandler(comparisonService service.ComparisonService, reportService service.ReportService, maxFileSizeMB int64) *ComparisonHandler {
	return &ComparisonHandler{
		comparisonService: comparisonService,
		reportService:     reportService,
		maxBytes:          maxFileSizeMB * 1024 * 1024,
	}
}

// Compare handles POST /api/v1/compare/termsheets
// @Summary Compare two term sheets
// @Description Diff company name, amount, date, tenure and interest rate of an input term sheet against an ideal one
// @Tags comparisons
// @Accept multipart/form-data
// @Produce json
// @Param ideal_file formData file true "Ideal term sheet"
// @Param input_file formData file true "Input term sheet"
// @Success 201 {object} APIResponse{data=domain.ComparisonRecord}
// @Failure 400 {object} APIResponse "Missing file or unsupported type"
// @Security BearerAuth
// @Router /compare/termsheets [post]
func (h *ComparisonHandler) Compare(c *gin.Context) {
	ideal, ok := formFile(c, "ideal_file", h.maxBytes)
	if !ok {
		return
	}
	input, ok := formFile(c, "input_file", h.maxBytes)
	if !ok {
		return
	}

	rec, err := h.comparisonService.Compare(c.Request.Context(), ideal, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, rec)
}

// GetByID handles GET /api/v1/comparisons/:id
// @Summary Get a comparison
// @Tags comparisons
// @Produce json
// @Param id path string true "Comparison ID"
// @Success 200 {object} APIResponse{data=domain.ComparisonRecord}
// @Failure 404 {object} APIResponse "Comparison not found"
// @Security BearerAuth
// @Router /comparisons/{id} [get]
func (h *ComparisonHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	rec, err := h.comparisonService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, rec)
}

// Export handles GET /api/v1/comparisons/:id/export
// @Summary Export a comparison
// @Tags comparisons
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Comparison ID"
// @Success 200 {file} file
// @Failure 404 {object} APIResponse "Comparison not found"
// @Security BearerAuth
// @Router /comparisons/{id}/export [get]
func (h *ComparisonHandler) Export(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	export, err := h.reportService.ExportComparison(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	sendExport(c, export)
}
