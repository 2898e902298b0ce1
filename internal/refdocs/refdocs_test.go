package refdocs

import (
	"strings"
	"testing"
)

func TestDocumentsEmbedded(t *testing.T) {
	docs := map[string]string{
		"TransactionsCode":  TransactionsCode,
		"TransactionsUsage": TransactionsUsage,
		"HelperFunctions":   HelperFunctions,
		"UnifiedBaseline":   UnifiedBaseline,
		"BaselineDCA":       BaselineDCA,
		"BaselineRange":     BaselineRange,
		"StatusFormat":      StatusFormat,
		"CoderPrompt":       CoderPrompt,
		"GuardrailPrompt":   GuardrailPrompt,
		"EvaluatorPrompt":   EvaluatorPrompt,
	}
	for name, doc := range docs {
		if strings.TrimSpace(doc) == "" {
			t.Fatalf("%s is empty", name)
		}
	}
}

func TestPromptTemplatesCarryPlaceholders(t *testing.T) {
	for _, ph := range []string{
		"{TRANSACTIONS_CODE}", "{TRANSACTIONS_USAGE}", "{HELPER_FUNCTIONS}",
		"{UNIFIED_BASELINE_TEMPLATE}", "{STATUS_FORMAT}",
	} {
		if !strings.Contains(CoderPrompt, ph) {
			t.Fatalf("coder prompt missing %s", ph)
		}
	}
	if !strings.Contains(GuardrailPrompt, "{HELPER_VOCABULARY}") {
		t.Fatal("guardrail prompt missing {HELPER_VOCABULARY}")
	}
	if !strings.Contains(EvaluatorPrompt, "{HISTORY}") || !strings.Contains(EvaluatorPrompt, "{TOKENS}") {
		t.Fatal("evaluator prompt missing {HISTORY}/{TOKENS}")
	}
}
