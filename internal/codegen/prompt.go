package codegen

import (
	"fmt"
	"regexp"
	"strings"

	"soltrader/internal/refdocs"
)

// Prompt is a fully interpolated instruction payload for the generative
// capability.
type Prompt struct {
	System string
	User   string
}

// ReferenceDocs are the fixed documents interpolated into the coder system
// prompt. Every field is required; a missing document is a configuration
// error, not a runtime condition.
type ReferenceDocs struct {
	TransactionsCode  string
	TransactionsUsage string
	HelperFunctions   string
	UnifiedBaseline   string
	StatusFormat      string
}

// DefaultReferenceDocs returns the compiled-in documents.
func DefaultReferenceDocs() ReferenceDocs {
	return ReferenceDocs{
		TransactionsCode:  refdocs.TransactionsCode,
		TransactionsUsage: refdocs.TransactionsUsage,
		HelperFunctions:   refdocs.HelperFunctions,
		UnifiedBaseline:   refdocs.UnifiedBaseline,
		StatusFormat:      refdocs.StatusFormat,
	}
}

var placeholderRe = regexp.MustCompile(`\{[A-Z][A-Z0-9_]*\}`)

// PromptAssembler renders the coder system prompt once at construction and
// pairs it with per-request task descriptions.
type PromptAssembler struct {
	system string
}

// NewPromptAssembler interpolates the reference documents into template and
// verifies that no placeholder is left unresolved.
func NewPromptAssembler(template string, docs ReferenceDocs) (*PromptAssembler, error) {
	required := map[string]string{
		"TRANSACTIONS_CODE":         docs.TransactionsCode,
		"TRANSACTIONS_USAGE":        docs.TransactionsUsage,
		"HELPER_FUNCTIONS":          docs.HelperFunctions,
		"UNIFIED_BASELINE_TEMPLATE": docs.UnifiedBaseline,
		"STATUS_FORMAT":             docs.StatusFormat,
	}
	oldnew := make([]string, 0, 2*len(required))
	for name, doc := range required {
		if strings.TrimSpace(doc) == "" {
			return nil, fmt.Errorf("codegen: missing reference document %s", name)
		}
		oldnew = append(oldnew, "{"+name+"}", doc)
	}
	system := strings.NewReplacer(oldnew...).Replace(template)
	if left := placeholderRe.FindString(system); left != "" {
		return nil, fmt.Errorf("codegen: unresolved placeholder %s in coder prompt", left)
	}
	return &PromptAssembler{system: system}, nil
}

// Assemble pairs the rendered system prompt with the task description.
// Pure function of its input; cannot fail at runtime.
func (a *PromptAssembler) Assemble(description string) Prompt {
	return Prompt{System: a.system, User: description}
}
