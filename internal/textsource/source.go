// Package textsource turns uploaded documents into plain text.
package textsource

import (
	"context"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"termsheet/internal/domain"
	"termsheet/internal/port"
)

// Source implements port.TextSource for PDF, HTML and plain-text documents.
// It never fails: unreadable or unsupported documents yield "".
type Source struct {
	maxBytes int64
}

// New creates a Source. Extracted text is capped at maxBytes (0 means 5 MiB).
func New(maxBytes int64) *Source {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	return &Source{maxBytes: maxBytes}
}

var _ port.TextSource = (*Source)(nil)

// ExtractText returns the document's text, or "" when none can be read.
func (s *Source) ExtractText(_ context.Context, doc port.Document) string {
	if len(doc.Data) == 0 {
		return ""
	}

	var (
		text string
		err  error
	)
	kind := DetectKind(doc)
	switch kind {
	case "pdf":
		text, err = pdfText(doc.Data, s.maxBytes)
	case "html":
		text, err = htmlText(doc.Data)
	case "txt":
		text = plainText(doc.Data)
	default:
		log.Printf("textsource.Source.ExtractText: unsupported document %q (content type %q)", doc.Name, doc.ContentType)
		return ""
	}
	if err != nil {
		log.Printf("textsource.Source.ExtractText: %s extraction failed for %q: %v", kind, doc.Name, err)
		return ""
	}

	text = strings.TrimSpace(text)
	if int64(len(text)) > s.maxBytes {
		text = strings.ToValidUTF8(text[:s.maxBytes], "")
	}
	log.Printf("textsource.Source.ExtractText: extracted %d chars from %q", utf8.RuneCountInString(text), doc.Name)
	return text
}

// DetectKind returns "pdf", "html", "txt" or "" for doc. The declared
// content type wins, then the file extension, then content sniffing.
func DetectKind(doc port.Document) string {
	if kind := kindForContentType(doc.ContentType); kind != "" {
		return kind
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(doc.Name)), ".")
	if ct, ok := domain.AllowedExtensions[ext]; ok {
		return domain.AllowedContentTypes[ct]
	}
	if len(doc.Data) == 0 {
		return ""
	}
	return kindForContentType(http.DetectContentType(doc.Data))
}

func kindForContentType(ct string) string {
	if ct == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ""
	}
	return domain.AllowedContentTypes[mediaType]
}

func plainText(data []byte) string {
	s := strings.TrimPrefix(string(data), "\ufeff")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ToValidUTF8(s, "")
}
