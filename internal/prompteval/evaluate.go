// Package prompteval rates draft agent prompts before code generation.
// It runs the evaluator model over a prompt plus its conversation history and
// returns a rating with follow-up questions, appending both sides of the
// exchange to the caller-owned history.
package prompteval

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"soltrader/internal/codegen"
	"soltrader/internal/jsonutil"
	"soltrader/internal/refdocs"
	"soltrader/internal/tokens"
)

// Result is the evaluator verdict on a draft prompt.
type Result struct {
	Rating        int      `json:"rating"`
	Justification string   `json:"justification"`
	Questions     []string `json:"questions"`
}

// Evaluator drives the prompt-refinement loop. One Evaluate call is one turn;
// the caller owns the history and passes it back on the next turn.
type Evaluator struct {
	gen    codegen.Generator
	tokens string
	log    *log.Logger
}

// NewEvaluator binds the evaluator to gen. The popular-token documentation is
// rendered once here; it never changes between turns.
func NewEvaluator(gen codegen.Generator, logger *log.Logger) (*Evaluator, error) {
	doc, err := jsonutil.MarshalNoEscapeIndent(tokens.Popular, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("prompteval: render token documentation: %w", err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Evaluator{gen: gen, tokens: string(doc), log: logger}, nil
}

// Evaluate rates prompt against history and returns the verdict plus the
// updated history. Exactly two turns are appended on success: the human
// prompt and the evaluator reply as compact JSON. On error the input history
// is returned unchanged.
func (e *Evaluator) Evaluate(ctx context.Context, prompt string, history []string) (Result, []string, error) {
	rendered := strings.ReplaceAll(refdocs.EvaluatorPrompt, "{HISTORY}", formatHistory(history))
	rendered = strings.ReplaceAll(rendered, "{TOKENS}", e.tokens)

	raw, err := e.gen.GenerateText(ctx, rendered, prompt)
	if err != nil {
		return Result{}, history, fmt.Errorf("prompteval: evaluation failed: %w", err)
	}

	res, err := parseResult(raw)
	if err != nil {
		return Result{}, history, err
	}

	reply, err := jsonutil.MarshalNoEscape(res)
	if err != nil {
		return Result{}, history, fmt.Errorf("prompteval: encode reply: %w", err)
	}
	updated := append(append([]string{}, history...),
		"Human: "+prompt,
		"AI: "+string(reply),
	)
	e.log.Printf("prompteval: rated %d with %d follow-up questions", res.Rating, len(res.Questions))
	return res, updated, nil
}

func parseResult(raw string) (Result, error) {
	content := codegen.ExtractJSONBlock(raw)
	var res Result
	if err := json.Unmarshal([]byte(content), &res); err != nil {
		return Result{}, fmt.Errorf("prompteval: unparseable evaluator output: %w", err)
	}
	if res.Rating < 1 || res.Rating > 10 {
		return Result{}, fmt.Errorf("prompteval: rating %d out of range", res.Rating)
	}
	if res.Questions == nil {
		res.Questions = []string{}
	}
	return res, nil
}

func formatHistory(history []string) string {
	if len(history) == 0 {
		return "No previous conversation"
	}
	return strings.Join(history, "\n")
}
