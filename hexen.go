// Package hexen implements the semantic front-end for the Hexen language:
// a dual-tier (comptime/concrete) statically-typed systems language. The
// package exposes a single entry point, Analyze, which type-checks a
// parsed program and returns the diagnostics accumulated along the way.
package hexen

import (
	"hexen/internal/ast"
	"hexen/internal/errors"
	"hexen/internal/parser"
	"hexen/internal/semantic"
)

// Analyze type-checks program and returns it unchanged alongside every
// diagnostic (errors and warnings) produced during analysis. Callers
// interested only in whether analysis succeeded can pass the returned
// slice to HasErrors, which looks for any diagnostic whose Severity is
// errors.Error.
func Analyze(program *ast.Program) (*ast.Program, []*errors.Diagnostic) {
	a := semantic.NewAnalyzer("")
	diags := a.AnalyzeProgram(program)
	return program, diags
}

// AnalyzeSource parses source (as Hexen source text) and analyzes the
// result in one step, using source to render caret excerpts in any
// diagnostic output, mirroring kanso's source-string test style. (The
// end-to-end tests in internal/semantic do the same parse-then-analyze
// steps through their own analyze helper.)
func AnalyzeSource(filename, source string) (*ast.Program, []*errors.Diagnostic) {
	prog, parseErrs, lexErrs := parser.ParseSource(filename, source)

	all := make([]*errors.Diagnostic, 0, len(lexErrs)+len(parseErrs))
	for _, e := range lexErrs {
		all = append(all, &errors.Diagnostic{
			Severity: errors.Error, Kind: errors.SyntaxError, Pos: e.Pos, Length: 1, Message: e.Message,
		})
	}
	for _, e := range parseErrs {
		all = append(all, &errors.Diagnostic{
			Severity: errors.Error, Kind: errors.SyntaxError, Pos: e.Pos, Length: 1, Message: e.Message,
		})
	}

	a := semantic.NewAnalyzer(source)
	all = append(all, a.AnalyzeProgram(prog)...)
	return prog, all
}

// HasErrors reports whether any diagnostic in diags is an error (as
// opposed to a warning).
func HasErrors(diags []*errors.Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == errors.Error {
			return true
		}
	}
	return false
}
