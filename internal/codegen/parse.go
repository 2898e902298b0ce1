package codegen

import (
	"strings"

	"soltrader/internal/jsonutil"
)

// ExtractJSONBlock strips a surrounding markdown code fence from raw model
// output. It locates the first fence marker and the last closing marker and
// takes the text strictly between them; with nested or malformed fences only
// the outermost pair is honored. Best-effort heuristic, not a guarantee.
func ExtractJSONBlock(raw string) string {
	content := strings.TrimSpace(raw)
	if !strings.HasPrefix(content, "```") {
		return content
	}
	start := 3
	if strings.HasPrefix(content, "```json") {
		start = len("```json")
	}
	end := strings.LastIndex(content, "```")
	if end > start {
		content = content[start:end]
	}
	return strings.TrimSpace(content)
}

// ParseResponse extracts and decodes a JSON value from raw model output.
// A decode failure is a recoverable condition: it returns (nil, false)
// rather than an error, and the caller surfaces it as a parse failure.
func ParseResponse(raw string) (any, bool) {
	content := ExtractJSONBlock(raw)
	if content == "" {
		return nil, false
	}
	var v any
	if err := jsonutil.UnmarshalFlex([]byte(content), &v); err != nil {
		return nil, false
	}
	return v, true
}
