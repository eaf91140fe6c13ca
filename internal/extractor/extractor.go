// Package extractor pulls term-sheet fields out of raw text with a
// deterministic pattern table, topped up by a completion-API pass when the
// patterns cover too little.
package extractor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"termsheet/internal/classifier"
	"termsheet/internal/config"
	"termsheet/internal/domain"
	"termsheet/internal/llm"
	"termsheet/internal/port"
	"termsheet/internal/schema"
)

// Result is the merged output of one extraction.
type Result struct {
	Fields       domain.FieldSet
	Provenance   map[string]string
	PatternCount int
	AIRequested  bool
	// AIDegraded holds the reason the AI pass contributed nothing, if it failed.
	AIDegraded string
}

// Extractor runs the pattern table and the AI pass. It never returns an error.
type Extractor struct {
	completer        port.Completer
	registry         *schema.Registry
	classifier       *classifier.Classifier
	aiPrefixChars    int
	minPatternFields int
	timeout          time.Duration
}

// New creates an Extractor. completer may be nil, which disables the AI pass.
func New(completer port.Completer, registry *schema.Registry, cls *classifier.Classifier, cfg config.PipelineConfig) *Extractor {
	aiPrefix := cfg.AIPrefixChars
	if aiPrefix <= 0 {
		aiPrefix = 6000
	}
	minFields := cfg.MinPatternFields
	if minFields <= 0 {
		minFields = 5
	}
	if registry == nil {
		registry = schema.NewRegistry(nil)
	}
	return &Extractor{
		completer:        completer,
		registry:         registry,
		classifier:       cls,
		aiPrefixChars:    aiPrefix,
		minPatternFields: minFields,
		timeout:          cfg.CompletionTimeout(),
	}
}

// Extract returns the merged field set for text of the given type.
func (e *Extractor) Extract(ctx context.Context, text string, docType domain.DocumentType) *Result {
	base := ExtractPatterns(text)
	res := &Result{PatternCount: len(base)}
	log.Printf("extractor.Extractor.Extract: pattern table matched %d fields", len(base))

	if !e.needsAI(docType, len(base)) {
		res.Fields, res.Provenance = Merge(base, nil)
		return res
	}

	res.AIRequested = true
	aiFields, err := e.extractWithAI(ctx, text, docType)
	if err != nil {
		log.Printf("extractor.Extractor.Extract: AI extraction failed: %v", err)
		res.AIDegraded = err.Error()
		aiFields = nil
	}

	res.Fields, res.Provenance = Merge(base, aiFields)
	return res
}

// ExtractWithType classifies text (unless override names a known type) and
// extracts its fields.
func (e *Extractor) ExtractWithType(ctx context.Context, text string, override domain.DocumentType) *domain.Extraction {
	out := &domain.Extraction{
		DocumentType:    domain.DocumentTypeUnknown,
		Classification:  domain.ClassifiedByDefault,
		RawText:         text,
		ExtractedFields: domain.FieldSet{},
	}

	if strings.TrimSpace(text) == "" {
		log.Printf("extractor.Extractor.ExtractWithType: no text, skipping classification and extraction")
		return out
	}

	switch {
	case override != "" && override != domain.DocumentTypeUnknown:
		out.DocumentType = override
		out.Classification = domain.ClassifiedByCaller
	case e.classifier != nil:
		cls := e.classifier.Classify(ctx, text)
		out.DocumentType = cls.Type
		out.Classification = cls.Source
	}

	res := e.Extract(ctx, text, out.DocumentType)
	out.ExtractedFields = res.Fields
	out.Provenance = res.Provenance
	return out
}

func (e *Extractor) needsAI(docType domain.DocumentType, patternCount int) bool {
	return docType == domain.DocumentTypeStructuredNote || patternCount < e.minPatternFields
}

// TargetFields returns the fields the AI pass asks for on a document type.
func (e *Extractor) TargetFields(docType domain.DocumentType) []string {
	if fields := e.registry.TargetFields(docType); len(fields) > 0 {
		return fields
	}
	return defaultTargetFields()
}

func (e *Extractor) extractWithAI(ctx context.Context, text string, docType domain.DocumentType) (domain.FieldSet, error) {
	if e.completer == nil {
		return nil, fmt.Errorf("no completion provider configured")
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	prompt := buildPrompt(e.TargetFields(docType), domain.Prefix(text, e.aiPrefixChars))
	answer, err := e.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("completion call: %w", err)
	}

	var raw map[string]any
	if err := llm.DecodeJSONObject(answer, &raw); err != nil {
		return nil, err
	}
	return cleanAIFields(raw), nil
}

// cleanAIFields drops empty, null and "null" values.
func cleanAIFields(raw map[string]any) domain.FieldSet {
	out := domain.FieldSet{}
	for k, v := range domain.FieldSetFromJSON(raw) {
		if v == nil || *v == "" || *v == "null" {
			continue
		}
		out[k] = v
	}
	return out
}
