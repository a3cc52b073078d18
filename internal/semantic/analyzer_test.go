package semantic

import (
	"testing"

	"hexen/internal/errors"
	"hexen/internal/types"

	"github.com/stretchr/testify/assert"
)

// TestComptimeFlexibility covers spec section 8.4 Scenario A: a single
// comptime value adapts to i32, i64 and f64 at different use sites with no
// errors.
func TestComptimeFlexibility(t *testing.T) {
	source := `
func main() : void = {
    val flex = 42 + 100 * 5;
    val a : i32 = flex;
    val b : i64 = flex;
    val c : f64 = flex;
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags), "scenario A should produce no errors")
}

// TestMixedConcreteRequiresExplicit covers Scenario B: two different
// concrete types combined without an explicit conversion is an error;
// converting one operand fixes it.
func TestMixedConcreteRequiresExplicit(t *testing.T) {
	source := `
func main() : void = {
    val x : i32 = 10;
    val y : i64 = 20;
    val z = x + y;
    val w : i64 = x:i64 + y;
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.MixedConcreteRequiresExplicit))
}

func TestMixedConcreteExplicitConversionFixesIt(t *testing.T) {
	source := `
func main() : void = {
    val x : i32 = 10;
    val y : i64 = 20;
    val w : i64 = x:i64 + y;
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))
}

// TestDivisionOperators covers Scenario C: `/` always floats, `\` is
// integer-only and rejects a float operand.
func TestDivisionOperators(t *testing.T) {
	source := `
func main() : void = {
    val p : f64 = 10 / 3;
    val q : i32 = 10 \ 3;
    val r = 10.5 \ 2;
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.IntegerDivOnFloat))
}

func TestFloatDivOnSameConcreteIntegers(t *testing.T) {
	source := `
func main() : void = {
    val x : i32 = 10;
    val y : i32 = 3;
    val z = x / y;
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.FloatDivOnSameIntegers))
}

// TestExpressionBlockRequiresType covers Scenario D: an expression block
// with no surrounding context is an error; the same block with an
// annotation type-checks.
func TestExpressionBlockRequiresType(t *testing.T) {
	source := `
func main() : void = {
    val a = { val t = 42; -> t*2; };
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.ExpressionBlockMissingContext))
}

func TestExpressionBlockWithAnnotationOK(t *testing.T) {
	source := `
func main() : void = {
    val a : i32 = { val t = 42; -> t*2; };
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))
}

// TestIfExprReturnBranchMixedWithProduce covers spec section 8.3's boundary
// behavior: an if/else expression block type-checks when one arm's `->`
// converts to context and the other's `return` converts to the enclosing
// function's return type.
func TestIfExprReturnBranchMixedWithProduce(t *testing.T) {
	source := `
func pick(flag : bool) : i32 = {
    val v : i32 = if flag { -> 1; } else { return 2; };
    return v;
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))
}

// TestIntegerLiteralOverflow covers spec section 8.3's i32 boundary.
func TestIntegerLiteralOverflow(t *testing.T) {
	source := `
func main() : void = {
    val ok : i32 = 2147483647;
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))

	overflow := `
func main() : void = {
    val bad : i32 = 2147483648;
}
`
	_, diags = analyze(t, overflow)
	assert.NotEmpty(t, errorsOnly(diags))
}

// TestUndefOnValIsRejected: `undef` is only legal as a `mut` initializer.
func TestUndefOnValIsRejected(t *testing.T) {
	source := `
func main() : void = {
    val x = undef;
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.UndefOnVal))
}

func TestUndefOnMutOK(t *testing.T) {
	source := `
func main() : void = {
    mut x : i32 = undef;
    x = 5;
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))
}

func TestValReassignmentRejected(t *testing.T) {
	source := `
func main() : void = {
    val x : i32 = 1;
    x = 2;
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.ValReassignment))
}

func TestUndefinedIdentifier(t *testing.T) {
	source := `
func main() : void = {
    val x = y + 1;
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.UndefinedIdentifier))
}

func TestUseBeforeInitDetected(t *testing.T) {
	source := `
func main() : void = {
    mut x : i32 = undef;
    val y = x + 1;
}
`
	_, diags := analyze(t, source)
	assert.True(t, hasKind(diags, errors.UseBeforeInit))
}

// TestRoundTripAnalysisIsStable exercises spec section 8.2's round-trip
// property at the granularity this analyzer supports: re-analyzing the
// same parsed program from a fresh Analyzer produces the same diagnostic
// kinds in the same order.
func TestRoundTripAnalysisIsStable(t *testing.T) {
	source := `
func main() : void = {
    val x : i32 = 10;
    val y : i64 = 20;
    val z = x + y;
}
`
	prog1 := parseOrFail(t, source)
	a1 := NewAnalyzer(source)
	diags1 := a1.AnalyzeProgram(prog1)

	prog2 := parseOrFail(t, source)
	a2 := NewAnalyzer(source)
	diags2 := a2.AnalyzeProgram(prog2)

	assert.Equal(t, kindsOf(diags1), kindsOf(diags2))
}

func TestDoubleConversionIdempotent(t *testing.T) {
	source := `
func main() : void = {
    val x : i32 = 10;
    val y : i64 = x:i64:i64;
}
`
	_, diags := analyze(t, source)
	assert.Empty(t, errorsOnly(diags))
}

func TestWidenBinarySanity(t *testing.T) {
	widened, ok := types.WidenBinary(types.ComptimeInt, types.ComptimeFloat)
	assert.True(t, ok)
	assert.Equal(t, types.KindComptimeFloat, widened.Kind)
}
