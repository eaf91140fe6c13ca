package service

import (
	"fmt"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"termsheet/internal/domain"
	"termsheet/internal/port"
)

// DocumentInput is an uploaded file as received by the transport layer.
type DocumentInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

// resolveDocument checks size and type of an uploaded file and returns the
// document handle with a normalized content type. The extension wins over the
// declared content type; the leading bytes must agree with the result.
func resolveDocument(in DocumentInput, maxBytes int64) (port.Document, error) {
	if len(in.Data) == 0 {
		return port.Document{}, domain.ErrEmptyFile
	}
	if maxBytes > 0 && int64(len(in.Data)) > maxBytes {
		return port.Document{}, domain.ErrFileTooLarge
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(in.FileName), "."))
	contentType, ok := domain.AllowedExtensions[ext]
	if !ok {
		declared, _, err := mime.ParseMediaType(in.ContentType)
		if err != nil {
			return port.Document{}, domain.ErrUnsupportedFileType
		}
		if _, known := domain.AllowedContentTypes[declared]; !known {
			return port.Document{}, domain.ErrUnsupportedFileType
		}
		contentType = declared
	}

	detected := http.DetectContentType(in.Data)
	if !sniffAgrees(contentType, detected) {
		return port.Document{}, fmt.Errorf("%w: content looks like %s", domain.ErrUnsupportedFileType, detected)
	}

	return port.Document{Name: in.FileName, ContentType: contentType, Data: in.Data}, nil
}

func sniffAgrees(contentType, detected string) bool {
	if contentType == "application/pdf" {
		return strings.HasPrefix(detected, "application/pdf")
	}
	return strings.HasPrefix(detected, "text/")
}

// storageKey builds the object key for an uploaded term sheet.
func storageKey(id fmt.Stringer, fileName string) string {
	name := strings.ReplaceAll(filepath.Base(fileName), " ", "_")
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "document"
	}
	return "termsheets/" + id.String() + "/" + name
}
