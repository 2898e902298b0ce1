// Package codegen implements the generation pipeline that turns a
// natural-language trading-strategy description into a complete baseline
// function: assemble prompt, generate, parse, validate, static-check, run
// one corrective pass, finalize.
package codegen

// ExecutionType classifies the strategy shape of a generated function.
type ExecutionType string

const (
	ExecutionImmediate       ExecutionType = "immediate"
	ExecutionScheduled       ExecutionType = "scheduled"
	ExecutionPriceMonitoring ExecutionType = "price_monitoring"
	ExecutionTwitterTrigger  ExecutionType = "twitter_trigger"
	ExecutionHybrid          ExecutionType = "hybrid"
)

// ExecutionTypes lists the accepted values in a stable order.
var ExecutionTypes = []ExecutionType{
	ExecutionImmediate,
	ExecutionScheduled,
	ExecutionPriceMonitoring,
	ExecutionTwitterTrigger,
	ExecutionHybrid,
}

// Valid reports whether t is one of the enumerated execution types.
func (t ExecutionType) Valid() bool {
	for _, v := range ExecutionTypes {
		if t == v {
			return true
		}
	}
	return false
}

// GenerationRequest is the immutable input to the pipeline.
type GenerationRequest struct {
	Description string
	History     []string
}

// Artifact is the structured code-generation result. Pipeline stages never
// mutate an Artifact in place; a stage that fixes one produces a new value.
type Artifact struct {
	Code               string        `json:"code"`
	ExecutionType      ExecutionType `json:"executionType"`
	Description        string        `json:"description"`
	MonitoringInterval *int          `json:"monitoringInterval"`
}

// DiagnosticKind distinguishes the two static analyses.
type DiagnosticKind string

const (
	DiagnosticSyntax DiagnosticKind = "syntax"
	DiagnosticLint   DiagnosticKind = "lint"
)

// Diagnostic is an advisory finding from static checking. Diagnostics feed
// the corrective pass and are then discarded; they never fail the pipeline.
type Diagnostic struct {
	Kind    DiagnosticKind
	Message string
}

// artifactFromObject builds an Artifact from a validated decoded object.
func artifactFromObject(obj map[string]any) Artifact {
	art := Artifact{}
	if s, ok := obj["code"].(string); ok {
		art.Code = s
	}
	if s, ok := obj["executionType"].(string); ok {
		art.ExecutionType = ExecutionType(s)
	}
	if s, ok := obj["description"].(string); ok {
		art.Description = s
	}
	if f, ok := obj["monitoringInterval"].(float64); ok {
		ms := int(f)
		art.MonitoringInterval = &ms
	}
	return art
}
