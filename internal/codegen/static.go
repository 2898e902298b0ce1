package codegen

// StaticChecker runs the two advisory analyses over an artifact's code.
// Findings feed the corrective pass; they never block the pipeline. The
// interface keeps the shallow implementation swappable without touching the
// orchestrator.
type StaticChecker interface {
	CheckSyntax(code string) *Diagnostic
	CheckLint(code string) *Diagnostic
}

type shallowChecker struct{}

// NewStaticChecker returns the default checker: a real JavaScript parse for
// syntax plus shallow pattern scans for lint.
func NewStaticChecker() StaticChecker {
	return shallowChecker{}
}
