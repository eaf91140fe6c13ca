package llm

import (
	"fmt"

	"termsheet/internal/config"
	"termsheet/internal/port"
)

// ProviderFactory is a function that creates a Completer from a provider config.
type ProviderFactory func(cfg *config.ProviderConfig) (port.Completer, error)

// registry of provider factories, populated by the providers package.
var providers = map[string]ProviderFactory{}

// RegisterProvider registers a completion provider factory by name.
func RegisterProvider(name string, factory ProviderFactory) {
	providers[name] = factory
}

// NewCompleter creates a Completer from a provider config using the registered factory.
func NewCompleter(cfg *config.ProviderConfig) (port.Completer, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown completion provider: %s", cfg.Provider)
	}
	return factory(cfg)
}

// NewFromConfig builds the primary completer, wrapping it in a FallbackCompleter
// when secondary or tertiary providers are configured.
func NewFromConfig(cfg *config.CompletionConfig) (port.Completer, error) {
	primaryCfg := cfg.PrimaryConfig()
	primary, err := NewCompleter(primaryCfg)
	if err != nil {
		return nil, fmt.Errorf("creating primary completer: %w", err)
	}

	completers := []port.Completer{primary}
	names := []string{primaryCfg.Provider}
	for _, extra := range []*config.ProviderConfig{cfg.SecondaryConfig(), cfg.TertiaryConfig()} {
		if extra == nil {
			continue
		}
		c, err := NewCompleter(extra)
		if err != nil {
			return nil, fmt.Errorf("creating %s completer: %w", extra.Provider, err)
		}
		completers = append(completers, c)
		names = append(names, extra.Provider)
	}

	if len(completers) == 1 {
		return primary, nil
	}
	return NewFallbackCompleter(completers, names), nil
}
