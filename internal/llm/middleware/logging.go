package llm

import (
	"context"
	"log"

	llmclient "soltrader/internal/llm/client"
)

// WithLogging logs request size and errors. Provide a custom logger or nil
// to use log.Default().
func WithLogging(logger *log.Logger) Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next llmclient.TextClient) llmclient.TextClient {
		return &logging{next: next, log: logger}
	}
}

type logging struct {
	next llmclient.TextClient
	log  *log.Logger
}

func (l *logging) Name() string { return l.next.Name() }
func (l *logging) Close() error { return l.next.Close() }

func (l *logging) GenerateText(ctx context.Context, system, user string) (string, error) {
	l.log.Printf("LLM request (%s): %d bytes", l.next.Name(), len(system)+len(user))
	text, err := l.next.GenerateText(ctx, system, user)
	if err != nil {
		l.log.Printf("LLM error (%s): %v", l.next.Name(), err)
	}
	return text, err
}
