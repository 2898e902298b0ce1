package codegen

import (
	"fmt"
	"regexp"
	"strings"
)

// asyncOperations are the pre-defined helpers that return promises; a call
// without await is almost always a bug in generated strategies.
var asyncOperations = []string{
	"swap",
	"transfer",
	"getBalances",
	"price",
	"marketData",
	"getTokenMintAddress",
	"checkPriceCondition",
	"waitForBalance",
}

// HelperVocabulary lists every externally pre-defined name available to
// generated code. The corrective pass uses it to suppress undefined-reference
// diagnostics for these functions.
var HelperVocabulary = []string{
	"swap", "transfer", "getTokenMintAddress", "checkTokenAccountExists",
	"createWallet", "getWallet", "getOrCreateWallet",
	"getBalances", "waitForBalance",
	"price", "marketData", "checkPriceCondition",
	"twitter",
	"scheduleInterval", "scheduleTimes", "stopSchedule", "stopAllSchedules",
	"logger.log", "logger.error", "logger.warn", "updateStatus",
}

var (
	constDeclRe = regexp.MustCompile(`\bconst\s+([A-Za-z_$][0-9A-Za-z_$]*)`)
	asyncCallRe = make(map[string]*regexp.Regexp, len(asyncOperations))
	awaitedRe   = make(map[string]*regexp.Regexp, len(asyncOperations))
)

func init() {
	for _, op := range asyncOperations {
		asyncCallRe[op] = regexp.MustCompile(`\b` + op + `\(`)
		awaitedRe[op] = regexp.MustCompile(`await\s+\b` + op + `\(`)
	}
}

// CheckLint scans code for common issues in generated JavaScript:
// const reassignment, missing await on known async helpers, a try block
// without catch, and console.log where the structured logger is mandated.
// Deliberately shallow pattern matching, not a parser; false negatives are
// accepted.
func (shallowChecker) CheckLint(code string) *Diagnostic {
	var errs []string

	for _, m := range constDeclRe.FindAllStringSubmatchIndex(code, -1) {
		name := code[m[2]:m[3]]
		rest := code[m[1]:]
		// Bare assignment only; skip ==, ===, =>.
		reassign := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\s*=([^=>]|$)`)
		if reassign.MatchString(rest) {
			errs = append(errs, fmt.Sprintf("Cannot reassign const `%s`", name))
		}
	}

	for _, op := range asyncOperations {
		calls := len(asyncCallRe[op].FindAllStringIndex(code, -1))
		awaited := len(awaitedRe[op].FindAllStringIndex(code, -1))
		if calls > awaited {
			errs = append(errs, fmt.Sprintf("Missing `await` for `%s()` call", op))
		}
	}

	if strings.Contains(code, "try") && !strings.Contains(code, "catch") {
		errs = append(errs, "Found `try` block without corresponding `catch`")
	}

	if strings.Contains(code, "console.log") {
		errs = append(errs, "Use `logger.log()` instead of `console.log()`")
	}

	if len(errs) == 0 {
		return nil
	}
	return &Diagnostic{Kind: DiagnosticLint, Message: strings.Join(errs, "\n")}
}
