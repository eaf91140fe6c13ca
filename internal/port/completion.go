package port

import "context"

// Completer sends a single text prompt to a completion API and returns the
// model's text answer.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
