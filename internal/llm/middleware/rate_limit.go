package llm

import (
	"context"

	"golang.org/x/time/rate"

	llmclient "soltrader/internal/llm/client"
)

// WithRateLimit blocks requests until the provider limiter grants a token.
// rps is requests per second; burst below 1 is raised to 1.
func WithRateLimit(rps float64, burst int) Middleware {
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)
	return func(next llmclient.TextClient) llmclient.TextClient {
		return &limited{next: next, limiter: limiter}
	}
}

type limited struct {
	next    llmclient.TextClient
	limiter *rate.Limiter
}

func (l *limited) Name() string { return l.next.Name() }
func (l *limited) Close() error { return l.next.Close() }

func (l *limited) GenerateText(ctx context.Context, system, user string) (string, error) {
	if err := l.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return l.next.GenerateText(ctx, system, user)
}
