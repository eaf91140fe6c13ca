// Package schema holds the per-document-type field schemas used by the
// extractor and the validator.
package schema

import (
	"termsheet/internal/domain"
)

// GenericRequiredFields is used whenever a resolved schema has no required
// fields. It spans the startup-equity and structured-note vocabularies.
var GenericRequiredFields = []string{
	"Company Name",
	"Date",
	"Investor",
	"Investment Amount",
	"Valuation (Pre-Money)",
	"Valuation (Post-Money)",
	"Equity to be Issued",
	"Issuer",
	"ISIN",
	"Issue Date",
	"Redemption Date",
}

// Registry is a read-only table of schemas keyed by document type. It is
// safe for concurrent use once built.
type Registry struct {
	schemas map[domain.DocumentType]domain.Schema
}

// NewRegistry builds a registry from an in-memory table. The input map is
// copied.
func NewRegistry(schemas map[domain.DocumentType]domain.Schema) *Registry {
	r := &Registry{schemas: make(map[domain.DocumentType]domain.Schema, len(schemas))}
	for t, s := range schemas {
		r.schemas[t] = domain.Schema{
			RequiredFields: append([]string(nil), s.RequiredFields...),
			OptionalFields: append([]string(nil), s.OptionalFields...),
		}
	}
	return r
}

// Lookup returns the schema stored for t, if any.
func (r *Registry) Lookup(t domain.DocumentType) (domain.Schema, bool) {
	s, ok := r.schemas[t]
	return s, ok
}

// Resolve returns the schema to validate a document of type t against: the
// type's own entry, else the unknown entry. An empty required list is
// replaced by GenericRequiredFields.
func (r *Registry) Resolve(t domain.DocumentType) domain.Schema {
	s, ok := r.schemas[t]
	if !ok {
		s = r.schemas[domain.DocumentTypeUnknown]
	}
	out := domain.Schema{
		RequiredFields: append([]string(nil), s.RequiredFields...),
		OptionalFields: append([]string(nil), s.OptionalFields...),
	}
	if len(out.RequiredFields) == 0 {
		out.RequiredFields = append([]string(nil), GenericRequiredFields...)
	}
	return out
}

// TargetFields returns required followed by optional fields for t, or nil
// when the registry has no non-empty entry for the type.
func (r *Registry) TargetFields(t domain.DocumentType) []string {
	s, ok := r.schemas[t]
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(s.RequiredFields)+len(s.OptionalFields))
	fields = append(fields, s.RequiredFields...)
	fields = append(fields, s.OptionalFields...)
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Types returns the document types with an entry, in enumeration order.
func (r *Registry) Types() []domain.DocumentType {
	var out []domain.DocumentType
	for _, t := range domain.DocumentTypes {
		if _, ok := r.schemas[t]; ok {
			out = append(out, t)
		}
	}
	return out
}
