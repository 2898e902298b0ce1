package codegen

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

// Generator is the single capability the pipeline needs from a model
// provider. llm client implementations satisfy it directly.
type Generator interface {
	GenerateText(ctx context.Context, system, user string) (string, error)
}

// Stage identifies where in the pipeline a request currently is, or where it
// failed.
type Stage string

const (
	StageAssembling     Stage = "assembling"
	StageGenerating     Stage = "generating"
	StageParsing        Stage = "parsing"
	StageValidating     Stage = "validating"
	StageStaticChecking Stage = "static_checking"
	StageCorrecting     Stage = "correcting"
	StageFinalized      Stage = "finalized"
)

var (
	// ErrGeneration covers provider failures during the main generation call.
	ErrGeneration = errors.New("codegen: generation failed")
	// ErrGenerationTimeout is the deadline-specific generation failure.
	ErrGenerationTimeout = errors.New("codegen: generation timed out")
	// ErrParse means the model reply held no decodable JSON.
	ErrParse = errors.New("codegen: unparseable model output")
	// ErrValidation means the decoded reply was not a usable artifact.
	ErrValidation = errors.New("codegen: invalid model output")
)

// PipelineError reports which stage failed and why, keeping the raw model
// output for diagnosis.
type PipelineError struct {
	Stage  Stage
	Reason string
	Raw    string
	Err    error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("codegen: stage %s failed: %s", e.Stage, e.Reason)
}

func (e *PipelineError) Unwrap() error { return e.Err }

// Coder runs the full generation pipeline.
type Coder struct {
	gen       Generator
	assembler *PromptAssembler
	checker   StaticChecker
	guardrail *Guardrail
	timeout   time.Duration
	log       *log.Logger
}

// NewCoder wires the pipeline around gen. timeout bounds the main generation
// call only; zero disables the bound.
func NewCoder(gen Generator, assembler *PromptAssembler, checker StaticChecker, guardrail *Guardrail, timeout time.Duration, logger *log.Logger) *Coder {
	if logger == nil {
		logger = log.Default()
	}
	return &Coder{
		gen:       gen,
		assembler: assembler,
		checker:   checker,
		guardrail: guardrail,
		timeout:   timeout,
		log:       logger,
	}
}

// Generate runs assemble, generate, parse, validate, static-check, correct
// and finalize for one request. The corrective pass always runs exactly once;
// every earlier failure aborts with a PipelineError naming the stage.
func (c *Coder) Generate(ctx context.Context, req GenerationRequest) (Artifact, error) {
	prompt := c.assembler.Assemble(req.Description)

	raw, err := c.generate(ctx, prompt)
	if err != nil {
		return Artifact{}, err
	}

	parsed, ok := ParseResponse(raw)
	if !ok {
		return Artifact{}, &PipelineError{Stage: StageParsing, Reason: "model output is not valid JSON", Raw: raw, Err: ErrParse}
	}

	if valid, reason := ValidateArtifact(parsed); !valid {
		return Artifact{}, &PipelineError{Stage: StageValidating, Reason: reason, Raw: raw, Err: ErrValidation}
	}
	art := artifactFromObject(parsed.(map[string]any))

	var diags []Diagnostic
	if d := c.checker.CheckSyntax(art.Code); d != nil {
		c.log.Printf("codegen: syntax finding: %s", d.Message)
		diags = append(diags, *d)
	}
	if d := c.checker.CheckLint(art.Code); d != nil {
		c.log.Printf("codegen: lint findings:\n%s", d.Message)
		diags = append(diags, *d)
	}

	art = c.guardrail.Refine(ctx, art, diags)
	art.Code = StripFences(art.Code)
	return art, nil
}

func (c *Coder) generate(ctx context.Context, prompt Prompt) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	raw, err := c.gen.GenerateText(ctx, prompt.System, prompt.User)
	if err != nil {
		cause := ErrGeneration
		reason := err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			cause = ErrGenerationTimeout
			reason = "model did not answer before the deadline"
		}
		return "", &PipelineError{Stage: StageGenerating, Reason: reason, Err: errors.Join(cause, err)}
	}
	if strings.TrimSpace(raw) == "" {
		return "", &PipelineError{Stage: StageGenerating, Reason: "empty model output", Err: ErrGeneration}
	}
	return raw, nil
}

// StripFences removes a leading ```javascript or ```js fence line and a
// trailing ``` line from code. Code without fences passes through untouched.
func StripFences(code string) string {
	out := strings.TrimSpace(code)
	for _, prefix := range []string{"```javascript", "```js", "```"} {
		if strings.HasPrefix(out, prefix) {
			out = out[len(prefix):]
			break
		}
	}
	if strings.HasSuffix(strings.TrimSpace(out), "```") {
		trimmed := strings.TrimSpace(out)
		out = trimmed[:len(trimmed)-3]
	}
	return strings.TrimSpace(out)
}
