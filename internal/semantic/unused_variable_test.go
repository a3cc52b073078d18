package semantic

import (
	"testing"

	"hexen/internal/errors"

	"github.com/stretchr/testify/assert"
)

// TestUnusedVariableDetection mirrors kanso's own unused_variable_test.go
// shape: these are ambient, non-binding diagnostics (SPEC_FULL.md) layered
// on top of the spec's own binding taxonomy.
func TestUnusedVariableDetection(t *testing.T) {
	t.Run("UnusedVariable", func(t *testing.T) {
		source := `
func main() : void = {
    val unused : i32 = 42;
}
`
		_, diags := analyze(t, source)
		assert.True(t, hasKind(diags, errors.UnusedVariable))
	})

	t.Run("UsedVariable", func(t *testing.T) {
		source := `
func main() : i32 = {
    val used : i32 = 42;
    val result : i32 = used + 10;
    return result;
}
`
		_, diags := analyze(t, source)
		assert.False(t, hasKind(diags, errors.UnusedVariable))
	})

	t.Run("MultipleUnusedVariables", func(t *testing.T) {
		source := `
func main() : void = {
    val unused1 : i32 = 42;
    val unused2 : bool = true;
    val unused3 : i32 = 7;
}
`
		_, diags := analyze(t, source)
		count := 0
		for _, d := range diags {
			if d.Kind == errors.UnusedVariable {
				count++
			}
		}
		assert.Equal(t, 3, count)
	})

	t.Run("ParamsAndLoopVarsAreExempt", func(t *testing.T) {
		source := `
func ignore(x : i32) : void = {
    for i in 1..3 {
    }
}
`
		_, diags := analyze(t, source)
		assert.False(t, hasKind(diags, errors.UnusedVariable))
	})
}

func TestUnusedVariableIsWarningSeverity(t *testing.T) {
	source := `
func main() : void = {
    val unused : i32 = 42;
}
`
	_, diags := analyze(t, source)
	for _, d := range diags {
		if d.Kind == errors.UnusedVariable {
			assert.Equal(t, errors.Warning, d.Severity)
		}
	}
}
