package semantic

import (
	"testing"

	"hexen/internal/ast"
	"hexen/internal/errors"
	"hexen/internal/parser"

	"github.com/stretchr/testify/require"
)

// analyze parses source and runs the analyzer over it, failing the test
// immediately on any parse error (every test source string is expected to
// be syntactically valid; parse failures indicate a bad fixture, not a
// semantic-analyzer bug).
func analyze(t *testing.T, source string) (*ast.Program, []*errors.Diagnostic) {
	t.Helper()
	prog, parseErrs, lexErrs := parser.ParseSource("test.hxn", source)
	require.Empty(t, lexErrs, "unexpected lexer errors")
	require.Empty(t, parseErrs, "unexpected parser errors")

	a := NewAnalyzer(source)
	diags := a.AnalyzeProgram(prog)
	return prog, diags
}

func kindsOf(diags []*errors.Diagnostic) []errors.Kind {
	kinds := make([]errors.Kind, len(diags))
	for i, d := range diags {
		kinds[i] = d.Kind
	}
	return kinds
}

func hasKind(diags []*errors.Diagnostic, kind errors.Kind) bool {
	for _, d := range diags {
		if d.Kind == kind {
			return true
		}
	}
	return false
}

// parseOrFail parses source and fails the test on any lexer/parser error,
// returning the program for callers that need to run more than one
// Analyzer over it (e.g. round-trip tests).
func parseOrFail(t *testing.T, source string) *ast.Program {
	t.Helper()
	prog, parseErrs, lexErrs := parser.ParseSource("test.hxn", source)
	require.Empty(t, lexErrs, "unexpected lexer errors")
	require.Empty(t, parseErrs, "unexpected parser errors")
	return prog
}

func errorsOnly(diags []*errors.Diagnostic) []*errors.Diagnostic {
	var out []*errors.Diagnostic
	for _, d := range diags {
		if d.Severity == errors.Error {
			out = append(out, d)
		}
	}
	return out
}
