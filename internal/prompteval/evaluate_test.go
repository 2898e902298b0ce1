package prompteval

import (
	"context"
	"errors"
	"io"
	"log"
	"strings"
	"testing"
)

type stubGen struct {
	response string
	err      error
	system   string
	user     string
	calls    int
}

func (s *stubGen) GenerateText(ctx context.Context, system, user string) (string, error) {
	s.calls++
	s.system = system
	s.user = user
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestEvaluate_AppendsTwoHistoryTurns(t *testing.T) {
	gen := &stubGen{response: "```json\n{\"rating\":7,\"justification\":\"clear enough\",\"questions\":[\"Which token?\"]}\n```"}
	e, err := NewEvaluator(gen, quietLogger())
	if err != nil {
		t.Fatal(err)
	}

	prior := []string{"Human: old prompt", "AI: old reply"}
	res, history, err := e.Evaluate(context.Background(), "Buy SOL daily", prior)
	if err != nil {
		t.Fatal(err)
	}
	if res.Rating != 7 || res.Justification != "clear enough" {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(res.Questions) != 1 || res.Questions[0] != "Which token?" {
		t.Fatalf("unexpected questions %v", res.Questions)
	}
	if len(history) != len(prior)+2 {
		t.Fatalf("expected exactly two new turns, got %d total", len(history))
	}
	if history[len(history)-2] != "Human: Buy SOL daily" {
		t.Fatalf("human turn = %q", history[len(history)-2])
	}
	if !strings.HasPrefix(history[len(history)-1], "AI: {") {
		t.Fatalf("assistant turn = %q", history[len(history)-1])
	}
	// Input history must not be mutated.
	if len(prior) != 2 {
		t.Fatalf("caller history mutated: %v", prior)
	}
}

func TestEvaluate_RendersHistoryAndTokens(t *testing.T) {
	gen := &stubGen{response: `{"rating":5,"justification":"ok","questions":[]}`}
	e, err := NewEvaluator(gen, quietLogger())
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := e.Evaluate(context.Background(), "p", nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.system, "No previous conversation") {
		t.Fatal("empty history not rendered as sentinel")
	}
	if !strings.Contains(gen.system, "So11111111111111111111111111111111111111112") {
		t.Fatal("token documentation missing from system prompt")
	}
	if strings.Contains(gen.system, "{HISTORY}") || strings.Contains(gen.system, "{TOKENS}") {
		t.Fatal("placeholders survived interpolation")
	}

	if _, _, err := e.Evaluate(context.Background(), "p", []string{"Human: earlier"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(gen.system, "Human: earlier") {
		t.Fatal("prior history missing from system prompt")
	}
}

func TestEvaluate_NilQuestionsBecomeEmptySlice(t *testing.T) {
	gen := &stubGen{response: `{"rating":9,"justification":"good"}`}
	e, err := NewEvaluator(gen, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	res, _, err := e.Evaluate(context.Background(), "p", nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Questions == nil || len(res.Questions) != 0 {
		t.Fatalf("questions = %#v", res.Questions)
	}
}

func TestEvaluate_RatingOutOfRange(t *testing.T) {
	for _, resp := range []string{
		`{"rating":0,"justification":"j","questions":[]}`,
		`{"rating":11,"justification":"j","questions":[]}`,
	} {
		gen := &stubGen{response: resp}
		e, err := NewEvaluator(gen, quietLogger())
		if err != nil {
			t.Fatal(err)
		}
		prior := []string{"Human: x"}
		_, history, err := e.Evaluate(context.Background(), "p", prior)
		if err == nil {
			t.Fatalf("expected error for %s", resp)
		}
		if len(history) != len(prior) {
			t.Fatal("history changed on failure")
		}
	}
}

func TestEvaluate_ProviderError(t *testing.T) {
	gen := &stubGen{err: errors.New("boom")}
	e, err := NewEvaluator(gen, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	_, history, err := e.Evaluate(context.Background(), "p", []string{"Human: x"})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(history) != 1 {
		t.Fatal("history changed on failure")
	}
}

func TestEvaluate_UnparseableReply(t *testing.T) {
	gen := &stubGen{response: "the prompt seems fine"}
	e, err := NewEvaluator(gen, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if _, _, err := e.Evaluate(context.Background(), "p", nil); err == nil {
		t.Fatal("expected error for prose reply")
	}
}
