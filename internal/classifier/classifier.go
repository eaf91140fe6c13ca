// Package classifier assigns a document type to term-sheet text using keyword
// heuristics, asking the completion API only when no keyword matches.
package classifier

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"termsheet/internal/config"
	"termsheet/internal/domain"
	"termsheet/internal/port"
)

// Result is the outcome of a classification.
type Result struct {
	Type   domain.DocumentType
	Source domain.ClassificationSource
	Scores map[domain.DocumentType]int
	// Degraded is set when the AI fallback failed and Type defaulted to unknown.
	Degraded bool
	Reason   string
}

// Classifier maps raw text to a document type. It never returns an error.
type Classifier struct {
	completer     port.Completer
	prefixChars   int
	aiPrefixChars int
	timeout       time.Duration
}

// New creates a Classifier. completer may be nil, in which case documents
// without keyword matches classify as unknown.
func New(completer port.Completer, cfg config.PipelineConfig) *Classifier {
	prefix := cfg.ClassifyPrefixChars
	if prefix <= 0 {
		prefix = 10000
	}
	aiPrefix := cfg.AIPrefixChars
	if aiPrefix <= 0 {
		aiPrefix = 6000
	}
	return &Classifier{
		completer:     completer,
		prefixChars:   prefix,
		aiPrefixChars: aiPrefix,
		timeout:       cfg.CompletionTimeout(),
	}
}

// Classify returns the document type for text.
func (c *Classifier) Classify(ctx context.Context, text string) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("classifier.Classifier.Classify: recovered from panic: %v", r)
			res = Result{
				Type:     domain.DocumentTypeUnknown,
				Source:   domain.ClassifiedByDefault,
				Degraded: true,
				Reason:   fmt.Sprintf("classification panicked: %v", r),
			}
		}
	}()

	snippet := domain.Prefix(text, c.prefixChars)
	scores := Score(snippet)

	best, bestScore := domain.DocumentTypeUnknown, 0
	for _, ks := range keywordTable {
		if scores[ks.Type] > bestScore {
			best, bestScore = ks.Type, scores[ks.Type]
		}
	}
	if bestScore > 0 {
		log.Printf("classifier.Classifier.Classify: heuristic match %s (score %d)", best, bestScore)
		return Result{Type: best, Source: domain.ClassifiedByHeuristic, Scores: scores}
	}

	t, err := c.classifyWithAI(ctx, snippet)
	if err != nil {
		log.Printf("classifier.Classifier.Classify: AI fallback failed: %v", err)
		return Result{
			Type:     domain.DocumentTypeUnknown,
			Source:   domain.ClassifiedByDefault,
			Scores:   scores,
			Degraded: true,
			Reason:   err.Error(),
		}
	}
	log.Printf("classifier.Classifier.Classify: AI classified as %s", t)
	return Result{Type: t, Source: domain.ClassifiedByAI, Scores: scores}
}

// Score counts, per document type, how many of its keywords occur in text
// (case-insensitive). Each keyword counts at most once.
func Score(text string) map[domain.DocumentType]int {
	lower := strings.ToLower(text)
	scores := make(map[domain.DocumentType]int, len(keywordTable))
	for _, ks := range keywordTable {
		scores[ks.Type] = 0
		for _, kw := range ks.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				scores[ks.Type]++
			}
		}
	}
	return scores
}

func (c *Classifier) classifyWithAI(ctx context.Context, snippet string) (domain.DocumentType, error) {
	if c.completer == nil {
		return domain.DocumentTypeUnknown, fmt.Errorf("no completion provider configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	answer, err := c.completer.Complete(ctx, buildPrompt(domain.Prefix(snippet, c.aiPrefixChars)))
	if err != nil {
		return domain.DocumentTypeUnknown, fmt.Errorf("completion call: %w", err)
	}
	return normalizeAnswer(answer), nil
}

func buildPrompt(snippet string) string {
	tags := make([]string, 0, len(domain.DocumentTypes))
	for _, t := range domain.DocumentTypes {
		tags = append(tags, string(t))
	}
	return fmt.Sprintf(`Classify the following term sheet into exactly ONE category:
%s.

Return ONLY the category.

TEXT:
%s
`, strings.Join(tags, ", "), snippet)
}

// normalizeAnswer maps a free-text model answer onto a known tag, or unknown.
func normalizeAnswer(answer string) domain.DocumentType {
	a := strings.TrimSpace(answer)
	a = strings.Trim(a, "`\"'")
	a = strings.TrimSuffix(a, ".")
	t, ok := domain.ParseDocumentType(a)
	if !ok {
		return domain.DocumentTypeUnknown
	}
	return t
}
