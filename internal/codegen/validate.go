package codegen

import "fmt"

// ValidateArtifact confirms that a decoded value has the artifact shape:
// a JSON object with code, executionType and description keys, a non-empty
// code field, and an executionType from the enumerated set. Checks run in
// that order and short-circuit on the first violation, returning false plus
// a human-readable reason.
func ValidateArtifact(v any) (bool, string) {
	if v == nil {
		return false, "no output to validate"
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return false, "output is not a JSON object"
	}
	for _, key := range []string{"code", "executionType", "description"} {
		if _, ok := obj[key]; !ok {
			return false, fmt.Sprintf("missing '%s' key in output", key)
		}
	}
	if s, _ := obj["code"].(string); s == "" {
		return false, "code field is empty"
	}
	et, _ := obj["executionType"].(string)
	if !ExecutionType(et).Valid() {
		return false, fmt.Sprintf("invalid executionType: %v. Must be one of %v", obj["executionType"], ExecutionTypes)
	}
	return true, ""
}
