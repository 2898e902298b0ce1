package llmclient

import (
	"context"
	"fmt"
	"strings"
)

// New builds a TextClient for the named provider. Supported providers are
// "openai" (default) and "gemini"; model may be empty for the provider
// default.
func New(ctx context.Context, provider, model string) (TextClient, error) {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "", "openai":
		return NewOpenAIClient("", model)
	case "gemini":
		return NewGeminiClient(ctx, model)
	default:
		return nil, fmt.Errorf("llmclient: unknown provider %q", provider)
	}
}
