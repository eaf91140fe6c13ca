package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"termsheet/internal/service"
)

// formFile reads a multipart file field into a DocumentInput. At most
// maxBytes+1 bytes are read so the service can reject oversized files. On
// failure the error response is already written.
func formFile(c *gin.Context, field string, maxBytes int64) (service.DocumentInput, bool) {
	file, header, err := c.Request.FormFile(field)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", field+" field is required")
		return service.DocumentInput{}, false
	}
	defer func() { _ = file.Close() }()

	r := io.Reader(file)
	if maxBytes > 0 {
		r = io.LimitReader(file, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		HandleError(c, fmt.Errorf("reading %s: %w", field, err))
		return service.DocumentInput{}, false
	}
	return service.DocumentInput{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, true
}
