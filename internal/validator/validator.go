// Package validator scores an extracted field set against its document
// type's schema and optionally asks the completion API for a consistency
// review.
package validator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"termsheet/internal/config"
	"termsheet/internal/domain"
	"termsheet/internal/llm"
	"termsheet/internal/port"
	"termsheet/internal/schema"
)

// Score bands. Below DeepCheckMinScore the AI review is never requested.
const (
	DeepCheckMinScore   = 30
	NeedsReviewMinScore = 60
	ValidatedMinScore   = 85
)

const (
	baseOnlySummary   = "Base validation only."
	parseFailureIssue = "could not parse deep validation"
)

// Validator produces a ValidationResult for a field set. It never returns an
// error; completion failures degrade to the completeness-only result.
type Validator struct {
	completer port.Completer
	registry  *schema.Registry
	timeout   time.Duration
}

// New creates a Validator. completer may be nil; deep checks then degrade.
func New(completer port.Completer, registry *schema.Registry, cfg config.PipelineConfig) *Validator {
	if registry == nil {
		registry = schema.NewRegistry(nil)
	}
	return &Validator{
		completer: completer,
		registry:  registry,
		timeout:   cfg.ValidationTimeout(),
	}
}

// Validate scores fields against the schema for docType.
func (v *Validator) Validate(ctx context.Context, fields domain.FieldSet, docType domain.DocumentType, deepCheck bool) *domain.ValidationResult {
	s := v.registry.Resolve(docType)
	log.Printf("validator.Validator.Validate: doc_type=%s required=%d deep_check=%t", docType, len(s.RequiredFields), deepCheck)

	chk := checkPresence(fields, s.RequiredFields)

	if !deepCheck || chk.ratio < DeepCheckMinScore {
		return chk.shallowResult(docType)
	}

	review, err := v.deepReview(ctx, fields, docType, s.RequiredFields)
	if err != nil {
		log.Printf("validator.Validator.Validate: deep check degraded: %v", err)
		return chk.degradedResult(docType, failureIssue(err))
	}
	return chk.deepResult(docType, review)
}

// Completeness returns round(100*present/required) using half-to-even
// rounding, or 100 when nothing is required.
func Completeness(present, required int) int {
	return int(math.RoundToEven(completenessRatio(present, required)))
}

func completenessRatio(present, required int) float64 {
	if required == 0 {
		return 100
	}
	return float64(present) / float64(required) * 100
}

// ShallowStatus is the status band for a completeness-only result, taken on
// the unrounded completeness percentage. It never reaches Validated.
func ShallowStatus(ratio float64) domain.ValidationStatus {
	if ratio < NeedsReviewMinScore {
		return domain.ValidationStatusFailed
	}
	return domain.ValidationStatusNeedsReview
}

// DeepStatus is the status band for a blended deep-check score.
func DeepStatus(score int) domain.ValidationStatus {
	switch {
	case score >= ValidatedMinScore:
		return domain.ValidationStatusValidated
	case score >= NeedsReviewMinScore:
		return domain.ValidationStatusNeedsReview
	default:
		return domain.ValidationStatusFailed
	}
}

// presence is the completeness check shared by every result variant.
type presence struct {
	required []string
	present  domain.FieldSet
	missing  []string
	ratio    float64
	score    int
}

func checkPresence(fields domain.FieldSet, required []string) presence {
	p := presence{required: required, present: domain.FieldSet{}}
	for _, name := range required {
		if val, ok := fields.Get(name); ok {
			p.present.Set(name, val)
		} else {
			p.missing = append(p.missing, name)
		}
	}
	p.ratio = completenessRatio(len(p.present), len(required))
	p.score = int(math.RoundToEven(p.ratio))
	return p
}

func (p presence) issues() []string {
	if len(p.missing) == 0 {
		return []string{}
	}
	return []string{"Missing required fields: " + strings.Join(p.missing, ", ")}
}

func (p presence) summary() string {
	return fmt.Sprintf("%d/%d required fields present.", len(p.present), len(p.required))
}

func (p presence) shallowResult(docType domain.DocumentType) *domain.ValidationResult {
	return &domain.ValidationResult{
		DocumentType:    docType,
		ValidatedFields: p.present,
		Issues:          p.issues(),
		Score:           p.score,
		Summary:         p.summary(),
		Status:          ShallowStatus(p.ratio),
		DeepCheck:       domain.DeepCheckSkipped,
	}
}

func (p presence) degradedResult(docType domain.DocumentType, issue string) *domain.ValidationResult {
	return &domain.ValidationResult{
		DocumentType:    docType,
		ValidatedFields: p.present,
		Issues:          append(p.issues(), issue),
		Score:           p.score,
		Summary:         baseOnlySummary,
		Status:          domain.ValidationStatusNeedsReview,
		DeepCheck:       domain.DeepCheckDegraded,
	}
}

func (p presence) deepResult(docType domain.DocumentType, r *review) *domain.ValidationResult {
	score := int(math.RoundToEven((r.Score + p.ratio) / 2))

	validated := r.ValidatedFields
	if len(validated) == 0 {
		validated = p.present
	}
	summary := strings.TrimSpace(r.Summary)
	if summary == "" {
		summary = p.summary()
	}

	return &domain.ValidationResult{
		DocumentType:    docType,
		ValidatedFields: validated,
		Issues:          append(p.issues(), r.Issues...),
		Score:           score,
		Summary:         summary,
		Status:          DeepStatus(score),
		DeepCheck:       domain.DeepCheckCompleted,
	}
}

// errUnparsable marks a completion whose body could not be read as a review.
var errUnparsable = errors.New(parseFailureIssue)

func failureIssue(err error) string {
	if errors.Is(err, errUnparsable) {
		return parseFailureIssue
	}
	var statusErr *llm.StatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("completion API error: %d", statusErr.StatusCode)
	}
	return fmt.Sprintf("completion API error: %v", err)
}
