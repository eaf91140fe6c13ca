package validator

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"termsheet/internal/domain"
	"termsheet/internal/llm"
)

// review is the completion API's verdict on a field set.
type review struct {
	ValidatedFields domain.FieldSet
	Issues          []string
	Score           float64
	Summary         string
}

// rawReview mirrors the JSON the model is asked to return. Values are loosely
// typed because models do not always honor the requested shape.
type rawReview struct {
	ValidatedFields map[string]any `json:"validated_fields"`
	Issues          any            `json:"issues"`
	Score           any            `json:"score"`
	Summary         any            `json:"summary"`
}

// empty reports whether none of the review keys were present.
func (r rawReview) empty() bool {
	return r.ValidatedFields == nil && r.Issues == nil && r.Score == nil && r.Summary == nil
}

func (v *Validator) deepReview(ctx context.Context, fields domain.FieldSet, docType domain.DocumentType, required []string) (*review, error) {
	if v.completer == nil {
		return nil, fmt.Errorf("no completion provider configured")
	}

	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	answer, err := v.completer.Complete(ctx, buildPrompt(fields, docType, required))
	if err != nil {
		return nil, err
	}

	var raw rawReview
	if err := llm.DecodeJSONObject(answer, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", errUnparsable, err)
	}
	if raw.empty() {
		return nil, fmt.Errorf("%w: no review keys in answer", errUnparsable)
	}

	return &review{
		ValidatedFields: domain.FieldSetFromJSON(raw.ValidatedFields),
		Issues:          issueList(raw.Issues),
		Score:           clampScore(numberOf(raw.Score)),
		Summary:         domain.JSONValueString(raw.Summary),
	}, nil
}

func buildPrompt(fields domain.FieldSet, docType domain.DocumentType, required []string) string {
	fieldsJSON, _ := json.MarshalIndent(fields, "", "  ")
	requiredJSON, _ := json.MarshalIndent(required, "", "  ")
	return fmt.Sprintf(`You are validating a financial term sheet.

Document Type: %s

Extracted Fields:
%s

Required Fields:
%s

Perform:
- Format checking
- Logical consistency
- Percentage/currency checks
- Highlight incorrect values

Return ONLY valid JSON:
{
  "validated_fields": {},
  "issues": [],
  "score": 0,
  "summary": ""
}
`, docType, fieldsJSON, requiredJSON)
}

func issueList(v any) []string {
	switch val := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s := strings.TrimSpace(domain.JSONValueString(item)); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := strings.TrimSpace(domain.JSONValueString(val)); s != "" {
			return []string{s}
		}
		return nil
	}
}

func numberOf(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case string:
		f, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(val), "%"), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

func clampScore(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return math.Max(0, math.Min(100, f))
}
