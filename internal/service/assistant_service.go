package service

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

// AssistantService answers free-form questions about term sheets.
type AssistantService interface {
	Ask(ctx context.Context, query string) (string, error)
}

type assistantService struct {
	completer port.Completer
	timeout   time.Duration
}

// NewAssistantService creates a new AssistantService implementation.
func NewAssistantService(completer port.Completer, cfg config.PipelineConfig) AssistantService {
	return &assistantService{completer: completer, timeout: cfg.CompletionTimeout()}
}

func (s *assistantService) Ask(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", domain.ErrEmptyQuery
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	answer, err := s.completer.Complete(ctx, query)
	if err != nil {
		log.Printf("assistantService.Ask: completion failed: %v", err)
		return "", fmt.Errorf("asking assistant: %w", err)
	}
	return strings.TrimSpace(answer), nil
}
