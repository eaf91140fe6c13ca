// Package providers registers the built-in completion providers with the llm
// factory. Import it for side effects before calling llm.NewFromConfig.
package providers

import (
	"termsheet/internal/config"
	"termsheet/internal/llm"
	"termsheet/internal/llm/claude"
	"termsheet/internal/llm/gemini"
	"termsheet/internal/llm/openai"
	"termsheet/internal/port"
)

func init() {
	llm.RegisterProvider("gemini", func(cfg *config.ProviderConfig) (port.Completer, error) {
		return gemini.NewClient(cfg), nil
	})
	llm.RegisterProvider("claude", func(cfg *config.ProviderConfig) (port.Completer, error) {
		return claude.NewClient(cfg), nil
	})
	llm.RegisterProvider("openai", func(cfg *config.ProviderConfig) (port.Completer, error) {
		return openai.NewClient(cfg), nil
	})
}
