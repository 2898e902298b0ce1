// Package refdocs carries the static reference documents the generation
// pipeline interpolates into model prompts: function documentation, usage
// examples, baseline skeletons, and the system prompts themselves. The
// documents are compiled in and immutable after process start.
package refdocs

import (
	"embed"
	"strings"
)

//go:embed docs
var docs embed.FS

var (
	// TransactionsCode documents the pre-defined trading functions.
	TransactionsCode = mustDoc("docs/transactions_code.js")
	// TransactionsUsage shows example calls of the trading functions.
	TransactionsUsage = mustDoc("docs/transactions_usage.js")
	// HelperFunctions documents wallet, balance, market-data, Twitter and
	// scheduling helpers.
	HelperFunctions = mustDoc("docs/helper_functions.js")
	// UnifiedBaseline is the baseline skeleton covering every execution type.
	UnifiedBaseline = mustDoc("docs/unified_baseline.js")
	// BaselineDCA is the scheduled-trading skeleton.
	BaselineDCA = mustDoc("docs/baseline_dca.js")
	// BaselineRange is the price-monitoring skeleton.
	BaselineRange = mustDoc("docs/baseline_range.js")
	// StatusFormat is the example shape of updateStatus() payloads.
	StatusFormat = mustDoc("docs/status_format.json")
	// CoderPrompt is the system prompt template for code generation.
	CoderPrompt = mustDoc("docs/coder_prompt.txt")
	// GuardrailPrompt is the system prompt template for the corrective pass.
	GuardrailPrompt = mustDoc("docs/guardrail_prompt.txt")
	// EvaluatorPrompt is the system prompt template for prompt evaluation.
	EvaluatorPrompt = mustDoc("docs/evaluator_prompt.txt")
)

func mustDoc(name string) string {
	b, err := docs.ReadFile(name)
	if err != nil {
		panic("refdocs: missing document " + name + ": " + err.Error())
	}
	return strings.TrimSpace(string(b)) + "\n"
}
