package semantic

import (
	"testing"

	"hexen/internal/errors"

	"github.com/stretchr/testify/assert"
)

// TestLoopExpressionWithFiltering covers spec section 8.4 Scenario F: a
// for-in used in value position produces an array of only the elements
// whose path actually `->`s.
func TestLoopExpressionWithFiltering(t *testing.T) {
	source := `
func main() : void = {
    val evens : [_]i32 = for i in 1..20 {
        if i % 2 == 0 { -> i; }
    };
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))
}

// TestLabeledBreakAcrossNestedLoops covers Scenario G: `break outer` from
// inside a nested loop resolves to the outer for-in frame with no
// errors.
func TestLabeledBreakAcrossNestedLoops(t *testing.T) {
	source := `
func main() : void = {
    outer: for i in 1..10 {
        inner: for j in 1..10 {
            if i * j > 50 { break outer; }
        }
    }
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))
}

func TestBreakOutsideLoopIsError(t *testing.T) {
	source := `
func main() : void = {
    break;
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.BreakOutsideLoop))
}

func TestContinueOutsideLoopIsError(t *testing.T) {
	source := `
func main() : void = {
    continue;
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.ContinueOutsideLoop))
}

func TestBreakWithUnknownLabelIsError(t *testing.T) {
	source := `
func main() : void = {
    for i in 1..5 {
        break nowhere;
    }
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.UnknownLabel))
}

func TestDuplicateNestedLabelIsError(t *testing.T) {
	source := `
func main() : void = {
    again: for i in 1..5 {
        again: for j in 1..5 {
            break;
        }
    }
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.DuplicateLabel))
}

// TestUnboundedRangeInStatementLoopOK and
// TestUnboundedRangeInExpressionLoopIsError cover spec section 8.3's
// boundary behavior: an unbounded range is fine in a statement-mode for-in
// but rejected in a value-producing one.
func TestUnboundedRangeInStatementLoopOK(t *testing.T) {
	source := `
func main() : void = {
    for i in (1..) {
        if i > 3 { break; }
    }
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))
}

func TestUnboundedRangeInExpressionLoopIsError(t *testing.T) {
	source := `
func main() : void = {
    val xs : [_]i32 = for i in (1..) {
        -> i;
    };
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.UnboundedRangeInExpressionLoop))
}

func TestLoopVariableIsImmutable(t *testing.T) {
	source := `
func main() : void = {
    for i in 1..5 {
        i = 10;
    }
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.LoopVariableReassignment))
}

func TestWhileLoopBasic(t *testing.T) {
	source := `
func main() : void = {
    mut i : i32 = 0;
    while i < 10 {
        i = i + 1;
    }
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))
}
