package validator

import (
	"termsheet/internal/domain"
)

// FieldState is the per-field outcome shown in validation reports.
type FieldState string

const (
	FieldStatePresent  FieldState = "present"
	FieldStateMissing  FieldState = "missing"
	FieldStateOptional FieldState = "optional"
	FieldStateExtra    FieldState = "extra"
)

// FieldStatus is the computed report row for a single field.
type FieldStatus struct {
	Field    string     `json:"field"`
	Required bool       `json:"required"`
	State    FieldState `json:"state"`
	Value    *string    `json:"value"`
}

// ComputeFieldStatuses derives one row per schema field for docType, followed
// by any extracted fields outside the schema. Required fields come first in
// schema order, then optional ones, then extras sorted by name.
func (v *Validator) ComputeFieldStatuses(fields domain.FieldSet, docType domain.DocumentType) []FieldStatus {
	s := v.registry.Resolve(docType)
	seen := make(map[string]bool, len(s.RequiredFields)+len(s.OptionalFields))
	rows := make([]FieldStatus, 0, len(s.RequiredFields)+len(s.OptionalFields)+len(fields))

	for _, name := range s.RequiredFields {
		seen[name] = true
		row := FieldStatus{Field: name, Required: true, State: FieldStateMissing}
		if val, ok := fields.Get(name); ok {
			row.State = FieldStatePresent
			row.Value = domain.StringPtr(val)
		}
		rows = append(rows, row)
	}

	for _, name := range s.OptionalFields {
		if seen[name] {
			continue
		}
		seen[name] = true
		row := FieldStatus{Field: name, State: FieldStateOptional}
		if val, ok := fields.Get(name); ok {
			row.State = FieldStatePresent
			row.Value = domain.StringPtr(val)
		}
		rows = append(rows, row)
	}

	for _, name := range fields.Names() {
		if seen[name] {
			continue
		}
		val, ok := fields.Get(name)
		if !ok {
			continue
		}
		rows = append(rows, FieldStatus{Field: name, State: FieldStateExtra, Value: domain.StringPtr(val)})
	}
	return rows
}
