package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"hexen/internal/ast"
)

// Severity is the level of a Diagnostic.
type Severity string

const (
	Error   Severity = "error"
	Warning Severity = "warning"
)

// Diagnostic is the public record shape from spec section 6.2.
type Diagnostic struct {
	Severity   Severity
	Kind       Kind
	Pos        ast.Position
	Length     int
	Message    string
	Suggestion string
	Notes      []string
}

// Reporter accumulates diagnostics during one analysis run and continues
// after most errors by substituting Unknown types (spec section 4.3).
type Reporter struct {
	source string
	lines  []string
	diags  []*Diagnostic
}

// NewReporter creates a reporter. source may be empty; when present it
// enables the caret excerpt in Render.
func NewReporter(source string) *Reporter {
	return &Reporter{source: source, lines: strings.Split(source, "\n")}
}

func (r *Reporter) Add(d *Diagnostic) {
	r.diags = append(r.diags, d)
}

func (r *Reporter) Errorf(kind Kind, pos ast.Position, format string, args ...any) *Diagnostic {
	d := &Diagnostic{Severity: Error, Kind: kind, Pos: pos, Length: 1, Message: fmt.Sprintf(format, args...)}
	r.Add(d)
	return d
}

func (r *Reporter) Warnf(kind Kind, pos ast.Position, format string, args ...any) *Diagnostic {
	d := &Diagnostic{Severity: Warning, Kind: kind, Pos: pos, Length: 1, Message: fmt.Sprintf(format, args...)}
	r.Add(d)
	return d
}

// Diagnostics returns every diagnostic recorded so far, in emission
// (source) order (spec section 5, ordering guarantees).
func (r *Reporter) Diagnostics() []*Diagnostic {
	return r.diags
}

// HasErrors reports whether any Error-severity diagnostic was recorded
// (spec section 7: "on any error diagnostic, the compile fails as a
// whole").
func (r *Reporter) HasErrors() bool {
	for _, d := range r.diags {
		if d.Severity == Error {
			return true
		}
	}
	return false
}

// Render formats a diagnostic Rust-compiler style, colorized with
// github.com/fatih/color (spec section 6.2: "human-readable render
// includes the span and a caret excerpt when source is available").
func (r *Reporter) Render(d *Diagnostic) string {
	var b strings.Builder

	levelColor := color.New(color.FgRed, color.Bold)
	if d.Severity == Warning {
		levelColor = color.New(color.FgYellow, color.Bold)
	}
	dim := color.New(color.Faint).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	b.WriteString(fmt.Sprintf("%s[%s]: %s\n", levelColor.Sprint(string(d.Severity)), d.Kind, d.Message))

	width := lineNumberWidth(d.Pos.Line)
	indent := strings.Repeat(" ", width)
	b.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("-->"), d.Pos.String()))
	b.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if d.Pos.Line > 0 && d.Pos.Line <= len(r.lines) && r.source != "" {
		line := r.lines[d.Pos.Line-1]
		b.WriteString(fmt.Sprintf("%s %s %s\n", bold(fmt.Sprintf("%*d", width, d.Pos.Line)), dim("│"), line))
		marker := strings.Repeat(" ", max0(d.Pos.Column-1)) + strings.Repeat("^", max1(d.Length))
		b.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), levelColor.Sprint(marker)))
	}

	if d.Suggestion != "" {
		help := color.New(color.FgGreen).SprintFunc()
		b.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), help("help:"), d.Suggestion))
	}
	for _, note := range d.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		b.WriteString(fmt.Sprintf("%s %s %s %s\n", indent, dim("│"), noteColor("note:"), note))
	}

	return b.String()
}

func (r *Reporter) RenderAll() string {
	var b strings.Builder
	for _, d := range r.diags {
		b.WriteString(r.Render(d))
		b.WriteString("\n")
	}
	return b.String()
}

func lineNumberWidth(line int) int {
	w := len(fmt.Sprintf("%d", line))
	if w < 3 {
		return 3
	}
	return w
}

func max0(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
