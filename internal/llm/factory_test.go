package llm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"termsheet/internal/config"
	"termsheet/internal/llm"
	"termsheet/internal/port"
)

// stubCompleter is a minimal Completer for testing the factory.
type stubCompleter struct {
	model string
}

func (s *stubCompleter) Complete(_ context.Context, _ string) (string, error) {
	return s.model, nil
}

func registerStub(name string) {
	llm.RegisterProvider(name, func(cfg *config.ProviderConfig) (port.Completer, error) {
		return &stubCompleter{model: cfg.DefaultModel}, nil
	})
}

func TestFactory_RegisterAndCreate(t *testing.T) {
	registerStub("test-provider")

	c, err := llm.NewCompleter(&config.ProviderConfig{
		Provider:     "test-provider",
		DefaultModel: "test-model",
	})

	require.NoError(t, err)
	out, err := c.Complete(context.Background(), "hi")
	require.NoError(t, err)
	assert.Equal(t, "test-model", out)
}

func TestFactory_UnknownProvider(t *testing.T) {
	c, err := llm.NewCompleter(&config.ProviderConfig{Provider: "nonexistent-provider-xyz"})

	assert.Nil(t, c)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown completion provider")
}

func TestNewFromConfig_SingleProviderIsNotWrapped(t *testing.T) {
	registerStub("single-provider")

	c, err := llm.NewFromConfig(&config.CompletionConfig{
		Primary: config.ProviderConfig{Provider: "single-provider", APIKey: "k", DefaultModel: "m1"},
	})

	require.NoError(t, err)
	_, isFallback := c.(*llm.FallbackCompleter)
	assert.False(t, isFallback)
}

func TestNewFromConfig_SecondaryBuildsFallbackChain(t *testing.T) {
	registerStub("chain-a")
	registerStub("chain-b")

	c, err := llm.NewFromConfig(&config.CompletionConfig{
		Primary:   config.ProviderConfig{Provider: "chain-a", APIKey: "k", DefaultModel: "m1"},
		Secondary: config.ProviderConfig{Provider: "chain-b", APIKey: "k", DefaultModel: "m2"},
	})

	require.NoError(t, err)
	_, isFallback := c.(*llm.FallbackCompleter)
	assert.True(t, isFallback)

	out, err := c.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "m1", out)
}

func TestNewFromConfig_UnknownSecondary(t *testing.T) {
	registerStub("chain-ok")

	_, err := llm.NewFromConfig(&config.CompletionConfig{
		Primary:   config.ProviderConfig{Provider: "chain-ok", APIKey: "k"},
		Secondary: config.ProviderConfig{Provider: "missing-xyz", APIKey: "k"},
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "creating missing-xyz completer")
}
