// Package llm provides decorators around llmclient.TextClient for
// cross-cutting concerns: logging and provider rate limiting. Clients stay
// focused on the API call itself.
package llm

import llmclient "soltrader/internal/llm/client"

// Middleware wraps a TextClient with additional behaviour.
type Middleware func(next llmclient.TextClient) llmclient.TextClient

// Chain applies middlewares so the first listed is outermost.
func Chain(base llmclient.TextClient, mws ...Middleware) llmclient.TextClient {
	wrapped := base
	for i := len(mws) - 1; i >= 0; i-- {
		wrapped = mws[i](wrapped)
	}
	return wrapped
}
