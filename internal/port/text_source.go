package port

import "context"

// Document is an opaque handle on an uploaded document.
type Document struct {
	Name        string
	ContentType string
	Data        []byte
}

// TextSource turns a document into plain text. Implementations never fail:
// an empty string means no usable text could be read.
type TextSource interface {
	ExtractText(ctx context.Context, doc Document) string
}
