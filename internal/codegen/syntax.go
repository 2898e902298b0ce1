package codegen

import (
	"strings"

	"github.com/dop251/goja/parser"
)

// CheckSyntax parses code as a standalone JavaScript program. Generated
// snippets are sometimes only valid as a function interior, so a failed
// parse is retried with the text wrapped in an async function body. If both
// attempts fail, the first line of the parser error becomes the diagnostic.
func (shallowChecker) CheckSyntax(code string) *Diagnostic {
	if _, err := parser.ParseFile(nil, "baseline.js", code, 0); err == nil {
		return nil
	}
	wrapped := "async function baselineWrapper() {\n" + code + "\n}"
	_, err := parser.ParseFile(nil, "baseline.js", wrapped, 0)
	if err == nil {
		return nil
	}
	msg := err.Error()
	if i := strings.IndexByte(msg, '\n'); i >= 0 {
		msg = msg[:i]
	}
	return &Diagnostic{Kind: DiagnosticSyntax, Message: msg}
}
