package semantic

import (
	"testing"

	"hexen/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestCallArgumentCountMismatch(t *testing.T) {
	source := `
func add(a : i32, b : i32) : i32 = {
    return a + b;
}
func main() : void = {
    val x : i32 = add(1);
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.ArgCountMismatch))
}

func TestCallArgumentTypeMismatch(t *testing.T) {
	source := `
func greet(flag : bool) : void = {
    return;
}
func main() : void = {
    val x : i32 = 5;
    greet(x);
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.ArgTypeMismatch))
}

func TestCallToUndefinedFunction(t *testing.T) {
	source := `
func main() : void = {
    val x : i32 = missing(1);
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.UndefinedIdentifier))
}

func TestForwardReferenceBetweenFunctions(t *testing.T) {
	source := `
func main() : i32 = {
    return helper();
}
func helper() : i32 = {
    return 42;
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))
}

func TestMutParamMutationRequiresReturn(t *testing.T) {
	source := `
func bump(mut x : i32) : void = {
    x = x + 1;
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.MutParamRequiresReturn))
}

func TestMutParamMutationWithReturnOK(t *testing.T) {
	source := `
func bump(mut x : i32) : i32 = {
    x = x + 1;
    return x;
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))
}

func TestPassByValueParamMutationNotObservedByCaller(t *testing.T) {
	// spec section 8.1's pass-by-value invariant: nothing here asserts on
	// runtime values (out of scope), but the analyzer still must accept
	// the caller's own copy of x staying untouched in its own scope.
	source := `
func bump(mut x : i32) : i32 = {
    x = x + 1;
    return x;
}
func main() : void = {
    val original : i32 = 5;
    val result : i32 = bump(original);
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))
}

func TestMissingReturnInNonVoidFunction(t *testing.T) {
	source := `
func always42() : i32 = {
    val x : i32 = 1;
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.MissingReturn))
}

func TestIfElseBothArmsReturnSatisfiesMissingReturn(t *testing.T) {
	source := `
func sign(x : i32) : i32 = {
    if x < 0 {
        return -1;
    } else {
        return 1;
    }
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))
}

func TestReturnValueInVoidFunctionIsError(t *testing.T) {
	source := `
func doit() : void = {
    return 1;
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.ReturnValueInVoid))
}

func TestUnusedFunctionWarning(t *testing.T) {
	source := `
func helper() : i32 = {
    return 1;
}
func main() : void = {
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.UnusedFunction))
}
