package codegen

import (
	"context"
	"fmt"
	"log"
	"strings"

	"soltrader/internal/refdocs"
)

// Guardrail is the corrective pass. It always runs, regardless of whether
// static checking found anything, and it can only improve an artifact: any
// failure in the corrective round trip falls back to the input unchanged.
type Guardrail struct {
	gen    Generator
	system string
	log    *log.Logger
}

// NewGuardrail renders the corrective system prompt and binds it to gen.
func NewGuardrail(gen Generator, logger *log.Logger) (*Guardrail, error) {
	system := strings.ReplaceAll(
		refdocs.GuardrailPrompt,
		"{HELPER_VOCABULARY}",
		strings.Join(HelperVocabulary, ", "),
	)
	if left := placeholderRe.FindString(system); left != "" {
		return nil, fmt.Errorf("codegen: unresolved placeholder %s in guardrail prompt", left)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Guardrail{gen: gen, system: system, log: logger}, nil
}

// Refine sends the artifact and any diagnostics through the corrective model
// call and returns the corrected artifact. The returned artifact is the
// original whenever the reply cannot be parsed or fails validation.
func (g *Guardrail) Refine(ctx context.Context, art Artifact, diags []Diagnostic) Artifact {
	user := g.buildUserMessage(art, diags)
	raw, err := g.gen.GenerateText(ctx, g.system, user)
	if err != nil {
		g.log.Printf("guardrail: generation failed, keeping original artifact: %v", err)
		return art
	}
	parsed, ok := ParseResponse(raw)
	if !ok {
		g.log.Printf("guardrail: unparseable reply, keeping original artifact")
		return art
	}
	if valid, reason := ValidateArtifact(parsed); !valid {
		g.log.Printf("guardrail: invalid reply (%s), keeping original artifact", reason)
		return art
	}
	return artifactFromObject(parsed.(map[string]any))
}

func (g *Guardrail) buildUserMessage(art Artifact, diags []Diagnostic) string {
	syntaxMsg, lintMsg := "None", "None"
	for _, d := range diags {
		switch d.Kind {
		case DiagnosticSyntax:
			syntaxMsg = d.Message
		case DiagnosticLint:
			lintMsg = d.Message
		}
	}
	interval := "None"
	if art.MonitoringInterval != nil {
		interval = fmt.Sprintf("%d", *art.MonitoringInterval)
	}
	var b strings.Builder
	b.WriteString("Here is the code to review:\n\n")
	b.WriteString("```js\n")
	b.WriteString(art.Code)
	b.WriteString("\n```\n\n")
	fmt.Fprintf(&b, "Execution type: %s\n", art.ExecutionType)
	fmt.Fprintf(&b, "Description: %s\n", art.Description)
	fmt.Fprintf(&b, "Monitoring interval: %s\n\n", interval)
	fmt.Fprintf(&b, "Syntax errors: %s\n", syntaxMsg)
	fmt.Fprintf(&b, "Lint errors: %s\n", lintMsg)
	return b.String()
}
