package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"termsheet/internal/domain"
	"termsheet/internal/port"
)

// readDocument loads a local file as a document handle.
func readDocument(path string) (port.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return port.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return port.Document{Name: filepath.Base(path), Data: data}, nil
}

// parseTypeFlag turns the --type flag into a document type.
func parseTypeFlag(s string) (domain.DocumentType, error) {
	if s == "" {
		return "", nil
	}
	t, ok := domain.ParseDocumentType(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownDocumentType, s)
	}
	return t, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
