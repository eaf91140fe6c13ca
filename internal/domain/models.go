package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// FieldSet maps a field name to its extracted value. A nil value means the
// field was looked for but not found.
type FieldSet map[string]*string

// StringPtr returns a pointer to s.
func StringPtr(s string) *string {
	return &s
}

// Set stores value under name.
func (f FieldSet) Set(name, value string) {
	f[name] = &value
}

// Get returns the value for name and whether it is truthy (present, non-nil
// and not the empty string). Whitespace-only values count as present.
func (f FieldSet) Get(name string) (string, bool) {
	v, ok := f[name]
	if !ok || v == nil {
		return "", false
	}
	return *v, *v != ""
}

// Clone returns a copy whose values do not alias the receiver's.
func (f FieldSet) Clone() FieldSet {
	out := make(FieldSet, len(f))
	for k, v := range f {
		if v == nil {
			out[k] = nil
			continue
		}
		out.Set(k, *v)
	}
	return out
}

// Names returns the field names in sorted order.
func (f FieldSet) Names() []string {
	names := make([]string, 0, len(f))
	for k := range f {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Value stores the field set as JSON.
func (f FieldSet) Value() (driver.Value, error) {
	if f == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]*string(f))
}

// Scan reads a JSON object written by Value.
func (f *FieldSet) Scan(src any) error {
	var b []byte
	switch v := src.(type) {
	case nil:
		*f = FieldSet{}
		return nil
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("scanning FieldSet: unsupported type %T", src)
	}
	out := FieldSet{}
	if err := json.Unmarshal(b, &out); err != nil {
		return fmt.Errorf("scanning FieldSet: %w", err)
	}
	*f = out
	return nil
}

// Schema lists the required and optional fields for a document type.
type Schema struct {
	RequiredFields []string `json:"required_fields" yaml:"required_fields"`
	OptionalFields []string `json:"optional_fields" yaml:"optional_fields"`
}

// Extraction bundles a classified document's text and merged fields.
type Extraction struct {
	DocumentType    DocumentType         `json:"document_type"`
	Classification  ClassificationSource `json:"classification"`
	RawText         string               `json:"raw_text"`
	ExtractedFields FieldSet             `json:"extracted_fields"`
	Provenance      map[string]string    `json:"provenance,omitempty"`
}

// ValidationResult is the scored outcome of validating a field set.
type ValidationResult struct {
	DocumentType    DocumentType     `json:"document_type"`
	ValidatedFields FieldSet         `json:"validated_fields"`
	Issues          []string         `json:"issues"`
	Score           int              `json:"score"`
	Summary         string           `json:"summary"`
	Status          ValidationStatus `json:"status"`
	DeepCheck       DeepCheckOutcome `json:"deep_check"`
}

// FieldDiff is the comparison of one field across two documents.
type FieldDiff struct {
	Ideal  *string    `json:"ideal"`
	Input  *string    `json:"input"`
	Status DiffStatus `json:"status"`
}

// ComparisonResult is the field-by-field difference of two documents.
type ComparisonResult struct {
	IdealFields FieldSet             `json:"ideal_fields"`
	InputFields FieldSet             `json:"input_fields"`
	Differences map[string]FieldDiff `json:"differences"`
}

// Upload is a stored term sheet together with its extraction.
type Upload struct {
	ID              uuid.UUID            `db:"id" json:"id"`
	FileName        string               `db:"file_name" json:"file_name"`
	ContentType     string               `db:"content_type" json:"content_type"`
	FileSize        int64                `db:"file_size" json:"file_size"`
	StorageKey      string               `db:"storage_key" json:"storage_key"`
	DocumentType    DocumentType         `db:"document_type" json:"document_type"`
	Classification  ClassificationSource `db:"classification" json:"classification"`
	ExtractedFields FieldSet             `db:"extracted_fields" json:"extracted_fields"`
	Status          UploadStatus         `db:"status" json:"status"`
	CreatedAt       time.Time            `db:"created_at" json:"created_at"`
}

// ValidationRecord is a persisted validation of an upload.
type ValidationRecord struct {
	ID        uuid.UUID        `json:"id"`
	UploadID  uuid.UUID        `json:"upload_id"`
	DeepCheck bool             `json:"deep_check_requested"`
	Result    ValidationResult `json:"result"`
	CreatedAt time.Time        `json:"created_at"`
}

// ComparisonRecord is a persisted comparison of two term sheets.
type ComparisonRecord struct {
	ID            uuid.UUID        `json:"id"`
	IdealFileName string           `json:"ideal_file_name"`
	InputFileName string           `json:"input_file_name"`
	Result        ComparisonResult `json:"comparison"`
	CreatedAt     time.Time        `json:"created_at"`
}

// FieldSetFromJSON converts a decoded JSON object into a FieldSet. Strings are
// kept as-is, numbers and booleans are formatted, nested values are
// re-encoded as JSON and null becomes a nil value.
func FieldSetFromJSON(raw map[string]any) FieldSet {
	out := make(FieldSet, len(raw))
	for k, v := range raw {
		if v == nil {
			out[k] = nil
			continue
		}
		out.Set(k, JSONValueString(v))
	}
	return out
}

// JSONValueString renders a decoded JSON value as a plain string.
func JSONValueString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(b)
	}
}
