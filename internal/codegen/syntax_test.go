package codegen

import "testing"

func TestCheckSyntax_ValidProgram(t *testing.T) {
	code := `async function baselineFunction(ownerAddress, config = {}) {
  const balances = await getBalances(ownerAddress);
  logger.log(balances.allBalances);
}`
	if d := NewStaticChecker().CheckSyntax(code); d != nil {
		t.Fatalf("valid program flagged: %q", d.Message)
	}
}

func TestCheckSyntax_FunctionInterior(t *testing.T) {
	// return outside a function only parses once wrapped in a function body.
	code := "if (price > 100) {\n  return;\n}"
	if d := NewStaticChecker().CheckSyntax(code); d != nil {
		t.Fatalf("function interior flagged: %q", d.Message)
	}
}

func TestCheckSyntax_Await(t *testing.T) {
	// Top-level await requires the async wrapper pass.
	code := "const r = await swap(a, \"SOL\", \"USDC\", 1);"
	if d := NewStaticChecker().CheckSyntax(code); d != nil {
		t.Fatalf("awaited call flagged: %q", d.Message)
	}
}

func TestCheckSyntax_Broken(t *testing.T) {
	d := NewStaticChecker().CheckSyntax("const a = {;")
	if d == nil {
		t.Fatal("expected a syntax diagnostic")
	}
	if d.Kind != DiagnosticSyntax {
		t.Fatalf("got kind %q", d.Kind)
	}
	if d.Message == "" {
		t.Fatal("diagnostic message is empty")
	}
}

func TestCheckSyntax_Idempotent(t *testing.T) {
	checker := NewStaticChecker()
	code := "const a = {;"
	first := checker.CheckSyntax(code)
	second := checker.CheckSyntax(code)
	if first == nil || second == nil {
		t.Fatal("expected diagnostics on both runs")
	}
	if first.Message != second.Message {
		t.Fatalf("checker not idempotent: %q vs %q", first.Message, second.Message)
	}
}
