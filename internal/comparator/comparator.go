// Package comparator diffs two term sheets over a small, fixed field
// vocabulary using deterministic line patterns only.
package comparator

import (
	"context"
	"log"
	"sort"

	"termsheet/internal/domain"
	"termsheet/internal/port"
)

// Comparator reads two documents through a TextSource and diffs them.
type Comparator struct {
	source port.TextSource
}

// New creates a Comparator.
func New(source port.TextSource) *Comparator {
	return &Comparator{source: source}
}

// Compare extracts text from both documents and diffs their fields.
func (c *Comparator) Compare(ctx context.Context, ideal, input port.Document) *domain.ComparisonResult {
	idealText := c.source.ExtractText(ctx, ideal)
	inputText := c.source.ExtractText(ctx, input)
	if idealText == "" || inputText == "" {
		log.Printf("comparator.Comparator.Compare: empty text (ideal=%d chars, input=%d chars)", len(idealText), len(inputText))
	}
	return CompareText(idealText, inputText)
}

// CompareText diffs two already-extracted texts.
func CompareText(idealText, inputText string) *domain.ComparisonResult {
	idealFields := ExtractFields(idealText)
	inputFields := ExtractFields(inputText)
	return &domain.ComparisonResult{
		IdealFields: idealFields,
		InputFields: inputFields,
		Differences: DiffFields(idealFields, inputFields),
	}
}

// DiffFields classifies every field named in either set.
func DiffFields(ideal, input domain.FieldSet) map[string]domain.FieldDiff {
	names := make(map[string]struct{}, len(ideal)+len(input))
	for k := range ideal {
		names[k] = struct{}{}
	}
	for k := range input {
		names[k] = struct{}{}
	}

	out := make(map[string]domain.FieldDiff, len(names))
	for k := range names {
		iv, nv := ideal[k], input[k]
		out[k] = domain.FieldDiff{Ideal: iv, Input: nv, Status: diffStatus(iv, nv)}
	}
	return out
}

// diffStatus applies the decision table in order.
func diffStatus(ideal, input *string) domain.DiffStatus {
	switch {
	case ideal == nil && input == nil:
		return domain.DiffNotFoundInBoth
	case ideal != nil && input != nil && *ideal == *input:
		return domain.DiffSame
	case ideal == nil:
		return domain.DiffExtraInInput
	case input == nil:
		return domain.DiffMissingInInput
	default:
		return domain.DiffChanged
	}
}

// ChangedFields returns the names of fields whose status is not same or
// not_found_in_both, sorted.
func ChangedFields(diffs map[string]domain.FieldDiff) []string {
	var out []string
	for k, d := range diffs {
		if d.Status != domain.DiffSame && d.Status != domain.DiffNotFoundInBoth {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
