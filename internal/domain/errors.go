package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrEmptyFile           = errors.New("file is empty")
	ErrUploadFailed        = errors.New("file upload to storage failed")

	ErrUploadNotFound      = errors.New("upload not found")
	ErrValidationNotFound  = errors.New("validation not found")
	ErrComparisonNotFound  = errors.New("comparison not found")
	ErrNoExtractedFields   = errors.New("no extracted fields to validate")
	ErrUnknownDocumentType = errors.New("unknown document type")
	ErrEmptyQuery          = errors.New("query must not be empty")
)
