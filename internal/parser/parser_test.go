package parser

import (
	"testing"

	"hexen/internal/ast"

	"github.com/stretchr/testify/assert"
)

func TestParseEmptyProgram(t *testing.T) {
	prog, parseErrs, lexErrs := ParseSource("test.hxn", "")
	assert.Empty(t, parseErrs)
	assert.Empty(t, lexErrs)
	assert.NotNil(t, prog)
	assert.Empty(t, prog.Funcs)
}

func TestParseSimpleFunction(t *testing.T) {
	source := `
func add(a : i32, b : i32) : i32 = {
    return a + b;
}
`
	prog, parseErrs, lexErrs := ParseSource("test.hxn", source)
	assert.Empty(t, parseErrs)
	assert.Empty(t, lexErrs)
	assert.Len(t, prog.Funcs, 1)

	fn := prog.Funcs[0]
	assert.Equal(t, "add", fn.Name)
	assert.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, "i32", fn.Return.Name)
	assert.Len(t, fn.Body.Stmts, 1)

	ret, ok := fn.Body.Stmts[0].(*ast.Return)
	assert.True(t, ok)
	bin, ok := ret.Value.(*ast.Binary)
	assert.True(t, ok)
	assert.Equal(t, ast.OpAdd, bin.Op)
}

func TestParseValAndMutDecl(t *testing.T) {
	source := `
func main() : void = {
    val x : i32 = 1;
    mut y : i32 = undef;
    y = x;
}
`
	prog, parseErrs, _ := ParseSource("test.hxn", source)
	assert.Empty(t, parseErrs)
	stmts := prog.Funcs[0].Body.Stmts
	assert.Len(t, stmts, 3)

	val, ok := stmts[0].(*ast.ValDecl)
	assert.True(t, ok)
	assert.Equal(t, "x", val.Name)

	mut, ok := stmts[1].(*ast.MutDecl)
	assert.True(t, ok)
	assert.Equal(t, "y", mut.Name)
	_, isUndef := mut.Init.(*ast.Undef)
	assert.True(t, isUndef)

	assign, ok := stmts[2].(*ast.Assign)
	assert.True(t, ok)
	assert.Equal(t, "y", assign.Name)
}

func TestParseArrayTypeAnnotation(t *testing.T) {
	source := `
func main() : void = {
    val m : [2][3]i32 = [[1,2,3],[4,5,6]];
}
`
	prog, parseErrs, _ := ParseSource("test.hxn", source)
	assert.Empty(t, parseErrs)
	val := prog.Funcs[0].Body.Stmts[0].(*ast.ValDecl)
	assert.True(t, val.Type.IsArray())
	assert.Equal(t, 2, len(val.Type.Dims))
	assert.Equal(t, 2, val.Type.Dims[0].Size)
	assert.Equal(t, 3, val.Type.Dims[1].Size)

	lit, ok := val.Init.(*ast.ArrayLit)
	assert.True(t, ok)
	assert.Len(t, lit.Elements, 2)
}

func TestParseInferredArrayDimension(t *testing.T) {
	source := `
func count(xs : [_]i32) : i32 = {
    return xs.length;
}
`
	prog, parseErrs, _ := ParseSource("test.hxn", source)
	assert.Empty(t, parseErrs)
	param := prog.Funcs[0].Params[0]
	assert.True(t, param.Type.Dims[0].Inferred)
}

func TestParseArrayCopyAndConversion(t *testing.T) {
	source := `
func main() : void = {
    val g : [6]i32 = m[..]:[6]i32;
}
`
	prog, parseErrs, _ := ParseSource("test.hxn", source)
	assert.Empty(t, parseErrs)
	val := prog.Funcs[0].Body.Stmts[0].(*ast.ValDecl)
	conv, ok := val.Init.(*ast.Conversion)
	assert.True(t, ok)
	_, isCopy := conv.Expr.(*ast.ArrayCopy)
	assert.True(t, isCopy)
}

func TestParseLabeledForLoopAndBreak(t *testing.T) {
	source := `
func main() : void = {
    outer: for i in 1..10 {
        break outer;
    }
}
`
	prog, parseErrs, _ := ParseSource("test.hxn", source)
	assert.Empty(t, parseErrs)
	forIn, ok := prog.Funcs[0].Body.Stmts[0].(*ast.ForIn)
	assert.True(t, ok)
	assert.Equal(t, "outer", forIn.Label)

	brk, ok := forIn.Body.Stmts[0].(*ast.Break)
	assert.True(t, ok)
	assert.Equal(t, "outer", brk.Label)
}

func TestParseRecoversFromMalformedStatement(t *testing.T) {
	source := `
func main() : void = {
    val = ;
}
`
	_, parseErrs, _ := ParseSource("test.hxn", source)
	assert.NotEmpty(t, parseErrs)
}
