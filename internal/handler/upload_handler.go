package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"termsheet/internal/service"
)

// UploadHandler handles term-sheet upload endpoints.
type UploadHandler struct {
	uploadService service.UploadService
	maxBytes      int64
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadService, maxFileSizeMB int64) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, maxBytes: maxFileSizeMB * 1024 * 1024}
}

// Upload handles POST /api/v1/uploads
// @Summary Upload a term sheet
// @Description Store a term sheet (PDF, TXT or HTML), classify it and extract its fields
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Term sheet"
// @Param document_type formData string false "Document type override"
// @Success 201 {object} APIResponse{data=domain.Upload}
// @Failure 400 {object} APIResponse "Missing file, unsupported type or unknown document type"
// @Failure 413 {object} APIResponse "File too large"
// @Failure 500 {object} APIResponse "Upload failed"
// @Security BearerAuth
// @Router /uploads [post]
func (h *UploadHandler) Upload(c *gin.Context) {
	doc, ok := formFile(c, "file", h.maxBytes)
	if !ok {
		return
	}

	upload, err := h.uploadService.Upload(c.Request.Context(), service.UploadInput{
		Document:     doc,
		DocumentType: c.PostForm("document_type"),
	})
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, upload)
}

// GetByID handles GET /api/v1/uploads/:id
// @Summary Get an upload
// @Tags uploads
// @Produce json
// @Param id path string true "Upload ID"
// @Success 200 {object} APIResponse{data=domain.Upload}
// @Failure 404 {object} APIResponse "Upload not found"
// @Security BearerAuth
// @Router /uploads/{id} [get]
func (h *UploadHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	upload, err := h.uploadService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, upload)
}

// List handles GET /api/v1/uploads
// @Summary List uploads
// @Tags uploads
// @Produce json
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit (max 100)" default(20)
// @Success 200 {object} APIResponse{data=[]domain.Upload,meta=PagMeta}
// @Security BearerAuth
// @Router /uploads [get]
func (h *UploadHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	uploads, total, err := h.uploadService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondPaginated(c, uploads, PagMeta{Total: total, Offset: offset, Limit: limit})
}

func parsePagination(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
