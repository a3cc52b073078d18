package semantic

import (
	"testing"

	"hexen/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestExplicitScalarConversionWidening(t *testing.T) {
	source := `
func main() : void = {
    val x : i32 = 10;
    val y : i64 = x:i64;
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))
}

func TestExplicitFloatToIntegerTruncation(t *testing.T) {
	source := `
func main() : void = {
    val f : f64 = 3.9;
    val n : i32 = f:i32;
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))
}

func TestBoolConversionIsNonsensical(t *testing.T) {
	source := `
func main() : void = {
    val b : bool = true;
    val n : i32 = b:i32;
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.NonsensicalConversion))
}

func TestImplicitConcreteToConcreteRejected(t *testing.T) {
	source := `
func main() : void = {
    val x : i32 = 10;
    val y : i64 = x;
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.MixedConcreteRequiresExplicit))
}

func TestComptimeFloatIntoIntegerIsUnsafe(t *testing.T) {
	source := `
func main() : void = {
    val x : i32 = 3.5;
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.UnsafeImplicitConversion))
}
