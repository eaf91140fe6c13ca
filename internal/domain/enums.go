package domain

import "strings"

// DocumentType tags the financial instrument a term sheet describes.
type DocumentType string

const (
	DocumentTypeStructuredNote DocumentType = "structured_note"
	DocumentTypeStartupEquity  DocumentType = "startup_equity"
	DocumentTypeVentureDebt    DocumentType = "venture_debt"
	DocumentTypeBankLoan       DocumentType = "bank_loan"
	DocumentTypeMAndA          DocumentType = "m_and_a"
	DocumentTypeRealEstate     DocumentType = "real_estate"
	DocumentTypeUnknown        DocumentType = "unknown"
)

// DocumentTypes lists the known types in declaration order, unknown last.
var DocumentTypes = []DocumentType{
	DocumentTypeStructuredNote,
	DocumentTypeStartupEquity,
	DocumentTypeVentureDebt,
	DocumentTypeBankLoan,
	DocumentTypeMAndA,
	DocumentTypeRealEstate,
	DocumentTypeUnknown,
}

// ParseDocumentType normalizes s (trim, lower-case, spaces to underscores) and
// reports whether the result is one of the known tags.
func ParseDocumentType(s string) (DocumentType, bool) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	for _, t := range DocumentTypes {
		if string(t) == norm {
			return t, true
		}
	}
	return DocumentTypeUnknown, false
}

// ClassificationSource records which path produced a document type.
type ClassificationSource string

const (
	ClassifiedByHeuristic ClassificationSource = "heuristic"
	ClassifiedByAI        ClassificationSource = "ai"
	ClassifiedByDefault   ClassificationSource = "default"
	ClassifiedByCaller    ClassificationSource = "caller"
)

// ValidationStatus is the outcome band of a validation.
type ValidationStatus string

const (
	ValidationStatusFailed      ValidationStatus = "Failed"
	ValidationStatusNeedsReview ValidationStatus = "Needs Review"
	ValidationStatusValidated   ValidationStatus = "Validated"
)

// Label returns the display form shown in reports.
func (s ValidationStatus) Label() string {
	switch s {
	case ValidationStatusFailed:
		return "Failed ❌"
	case ValidationStatusNeedsReview:
		return "Needs Review ⚠️"
	case ValidationStatusValidated:
		return "Validated ✅"
	default:
		return string(s)
	}
}

// DeepCheckOutcome tells whether the AI consistency pass ran and how it ended.
type DeepCheckOutcome string

const (
	DeepCheckSkipped   DeepCheckOutcome = "skipped"
	DeepCheckCompleted DeepCheckOutcome = "completed"
	DeepCheckDegraded  DeepCheckOutcome = "degraded"
)

// DiffStatus classifies how a field differs between an ideal and an input document.
type DiffStatus string

const (
	DiffSame           DiffStatus = "same"
	DiffChanged        DiffStatus = "changed"
	DiffMissingInInput DiffStatus = "missing_in_input"
	DiffExtraInInput   DiffStatus = "extra_in_input"
	DiffNotFoundInBoth DiffStatus = "not_found_in_both"
)

// UploadStatus represents the outcome of processing an uploaded term sheet.
type UploadStatus string

const (
	UploadStatusParsed UploadStatus = "parsed"
	UploadStatusNoText UploadStatus = "no_text"
)

// AllowedContentTypes maps accepted MIME types to a short file kind.
var AllowedContentTypes = map[string]string{
	"application/pdf": "pdf",
	"text/plain":      "txt",
	"text/html":       "html",
}

// AllowedExtensions maps file extensions (without dot) to MIME content types.
var AllowedExtensions = map[string]string{
	"pdf":  "application/pdf",
	"txt":  "text/plain",
	"text": "text/plain",
	"htm":  "text/html",
	"html": "text/html",
}
