package codegen

import (
	"strings"
	"testing"
)

func TestValidateArtifact_Valid(t *testing.T) {
	obj := map[string]any{
		"code":          "export async function baselineFunction(ownerAddress, config = {}) {}",
		"executionType": "immediate",
		"description":   "swap once",
	}
	ok, reason := ValidateArtifact(obj)
	if !ok {
		t.Fatalf("expected valid artifact, got reason %q", reason)
	}
}

func TestValidateArtifact_Nil(t *testing.T) {
	ok, reason := ValidateArtifact(nil)
	if ok || reason != "no output to validate" {
		t.Fatalf("got ok=%v reason=%q", ok, reason)
	}
}

func TestValidateArtifact_NotObject(t *testing.T) {
	ok, reason := ValidateArtifact([]any{"code"})
	if ok || reason != "output is not a JSON object" {
		t.Fatalf("got ok=%v reason=%q", ok, reason)
	}
}

func TestValidateArtifact_MissingKeyOrder(t *testing.T) {
	// All three keys absent: the first missing key in declaration order wins.
	ok, reason := ValidateArtifact(map[string]any{})
	if ok || reason != "missing 'code' key in output" {
		t.Fatalf("got ok=%v reason=%q", ok, reason)
	}

	ok, reason = ValidateArtifact(map[string]any{"code": "x"})
	if ok || reason != "missing 'executionType' key in output" {
		t.Fatalf("got ok=%v reason=%q", ok, reason)
	}

	ok, reason = ValidateArtifact(map[string]any{"code": "x", "executionType": "immediate"})
	if ok || reason != "missing 'description' key in output" {
		t.Fatalf("got ok=%v reason=%q", ok, reason)
	}
}

func TestValidateArtifact_EmptyCode(t *testing.T) {
	ok, reason := ValidateArtifact(map[string]any{
		"code":          "",
		"executionType": "immediate",
		"description":   "d",
	})
	if ok || reason != "code field is empty" {
		t.Fatalf("got ok=%v reason=%q", ok, reason)
	}
}

func TestValidateArtifact_InvalidExecutionType(t *testing.T) {
	ok, reason := ValidateArtifact(map[string]any{
		"code":          "x",
		"executionType": "periodic",
		"description":   "d",
	})
	if ok {
		t.Fatal("expected invalid artifact")
	}
	if !strings.Contains(reason, "invalid executionType: periodic") {
		t.Fatalf("unexpected reason %q", reason)
	}
}

func TestExecutionTypeValid(t *testing.T) {
	for _, et := range ExecutionTypes {
		if !et.Valid() {
			t.Fatalf("%s should be valid", et)
		}
	}
	if ExecutionType("").Valid() || ExecutionType("cron").Valid() {
		t.Fatal("unknown execution types should be invalid")
	}
}
