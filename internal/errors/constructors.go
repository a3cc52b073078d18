package errors

import (
	"fmt"

	"hexen/internal/ast"
)

// The constructors below each build one Diagnostic for a taxonomy tag
// (ShadowingError, UnusedFunction and SyntaxError have none) with the
// suggestion text spec section 7 calls for ("add `:i32` to acknowledge
// truncation", "use `matrix[..]:[6]i32` to flatten", etc). They do not add
// the diagnostic to a Reporter — callers do that with Reporter.Add, the
// same two-step shape kanso's errors.NewSemanticError().Build() uses.

func NewUndefinedIdentifier(name string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: UndefinedIdentifier, Pos: pos, Length: len(name),
		Message:    fmt.Sprintf("undefined identifier '%s'", name),
		Suggestion: "declare it with `val` or `mut` before use",
	}
}

func NewDuplicateDeclaration(name string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: DuplicateDeclaration, Pos: pos, Length: len(name),
		Message: fmt.Sprintf("'%s' is already declared in this scope", name),
	}
}

func NewTypeMismatch(expected, found string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: TypeMismatch, Pos: pos, Length: 1,
		Message:    fmt.Sprintf("expected type '%s', found '%s'", expected, found),
		Suggestion: fmt.Sprintf("convert the value with `:%s` if this is intentional", expected),
	}
}

func NewMixedConcreteRequiresExplicit(left, right string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: MixedConcreteRequiresExplicit, Pos: pos, Length: 1,
		Message:    fmt.Sprintf("mixing concrete types '%s' and '%s' requires an explicit conversion", left, right),
		Suggestion: fmt.Sprintf("convert one operand explicitly, e.g. `expr:%s`", left),
	}
}

func NewUnsafeImplicitConversion(from, to string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: UnsafeImplicitConversion, Pos: pos, Length: 1,
		Message:    fmt.Sprintf("implicit conversion from '%s' to '%s' may lose precision", from, to),
		Suggestion: fmt.Sprintf("add `:%s` to acknowledge the truncation", to),
	}
}

func NewNonsensicalConversion(from, to string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: NonsensicalConversion, Pos: pos, Length: 1,
		Message: fmt.Sprintf("cannot convert '%s' to '%s'", from, to),
	}
}

func NewIntegerDivOnFloat(pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: IntegerDivOnFloat, Pos: pos, Length: 1,
		Message:    "integer division `\\` requires integer operands",
		Suggestion: "use `/` for float division, or convert operands to an integer type",
	}
}

func NewFloatDivOnSameIntegers(pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: FloatDivOnSameIntegers, Pos: pos, Length: 1,
		Message:    "float division `/` on two same-typed integers is not allowed",
		Suggestion: "use `\\` for integer division, or convert an operand to a float type",
	}
}

func NewModuloOnFloat(pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: ModuloOnFloat, Pos: pos, Length: 1,
		Message: "`%` requires integer operands",
	}
}

func NewValReassignment(name string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: ValReassignment, Pos: pos, Length: len(name),
		Message:    fmt.Sprintf("cannot assign to '%s': declared with `val`", name),
		Suggestion: "declare it with `mut` if it needs to change",
	}
}

func NewMutRequiresExplicitType(name string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: MutRequiresExplicitType, Pos: pos, Length: len(name),
		Message:    fmt.Sprintf("'mut %s' requires an explicit type annotation", name),
		Suggestion: "add `: T` after the name",
	}
}

func NewUseBeforeInit(name string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: UseBeforeInit, Pos: pos, Length: len(name),
		Message: fmt.Sprintf("'%s' is used before being initialized", name),
	}
}

func NewUndefOnVal(pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: UndefOnVal, Pos: pos, Length: 1,
		Message:    "`undef` is not allowed as a `val` initializer",
		Suggestion: "use `mut` if the value is assigned later",
	}
}

func NewMissingExplicitArrayCopy(pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: MissingExplicitArrayCopy, Pos: pos, Length: 1,
		Message:    "a concrete array flowing into a new owner must be copied explicitly",
		Suggestion: "write `expr[..]`",
	}
}

func NewArrayShapeMismatch(sourceCount int, target string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: ArrayShapeMismatch, Pos: pos, Length: 1,
		Message: fmt.Sprintf("cannot reshape %d elements into '%s'", sourceCount, target),
	}
}

func NewMultiInferredDimensionAmbiguous(pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: MultiInferredDimensionAmbiguous, Pos: pos, Length: 1,
		Message:    "at most one inferred dimension `_` is allowed in an array conversion target",
		Suggestion: "make all but one dimension concrete",
	}
}

func NewUnknownProperty(name string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: UnknownProperty, Pos: pos, Length: len(name),
		Message: fmt.Sprintf("arrays have no property '%s'", name),
		Suggestion: "did you mean `.length`?",
	}
}

func NewLengthOnUnsizedArray(pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: LengthOnUnsizedArray, Pos: pos, Length: 1,
		Message: "`.length` requires a statically known array shape",
	}
}

func NewExpressionBlockMissingContext(pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: ExpressionBlockMissingContext, Pos: pos, Length: 1,
		Message:    "an expression block requires an explicit target type from its surrounding context",
		Suggestion: "annotate the declaration, e.g. `val a : i32 = { ... }`",
	}
}

func NewExpressionBlockMissingProduce(pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: ExpressionBlockMissingProduce, Pos: pos, Length: 1,
		Message:    "every path through this expression block must end in `->` or `return`",
		Suggestion: "add a `-> expr` at the end of the block",
	}
}

func NewProduceOutsideExpressionBlock(pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: ProduceOutsideExpressionBlock, Pos: pos, Length: 1,
		Message: "`->` is only legal inside an expression block or a loop used as an expression",
	}
}

func NewReturnTypeMismatch(expected, found string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: ReturnTypeMismatch, Pos: pos, Length: 1,
		Message: fmt.Sprintf("function returns '%s' but this `return` produces '%s'", expected, found),
	}
}

func NewMissingReturn(pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: MissingReturn, Pos: pos, Length: 1,
		Message: "not all paths return a value",
	}
}

func NewReturnValueInVoid(pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: ReturnValueInVoid, Pos: pos, Length: 1,
		Message:    "a `void` function cannot `return` a value",
		Suggestion: "use a bare `return;`",
	}
}

func NewBreakOutsideLoop(pos ast.Position) *Diagnostic {
	return &Diagnostic{Severity: Error, Kind: BreakOutsideLoop, Pos: pos, Length: 1, Message: "`break` outside of any loop"}
}

func NewContinueOutsideLoop(pos ast.Position) *Diagnostic {
	return &Diagnostic{Severity: Error, Kind: ContinueOutsideLoop, Pos: pos, Length: 1, Message: "`continue` outside of any loop"}
}

func NewUnknownLabel(label string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: UnknownLabel, Pos: pos, Length: len(label),
		Message: fmt.Sprintf("no enclosing loop labeled '%s'", label),
	}
}

func NewDuplicateLabel(label string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: DuplicateLabel, Pos: pos, Length: len(label),
		Message: fmt.Sprintf("label '%s' is already used by an enclosing loop", label),
	}
}

func NewLabelNotOnLoop(label string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: LabelNotOnLoop, Pos: pos, Length: len(label),
		Message: fmt.Sprintf("label '%s' can only be attached to a loop", label),
	}
}

func NewUnboundedRangeInExpressionLoop(pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: UnboundedRangeInExpressionLoop, Pos: pos, Length: 1,
		Message:    "an unbounded range cannot be used in a value-producing loop",
		Suggestion: "bound the range, e.g. `lo..hi`",
	}
}

func NewLoopVariableReassignment(name string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: LoopVariableReassignment, Pos: pos, Length: len(name),
		Message: fmt.Sprintf("loop variable '%s' is immutable", name),
	}
}

func NewArgCountMismatch(fn string, want, got int, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: ArgCountMismatch, Pos: pos, Length: 1,
		Message: fmt.Sprintf("'%s' expects %d argument(s), got %d", fn, want, got),
	}
}

func NewArgTypeMismatch(fn, param, expected, found string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: ArgTypeMismatch, Pos: pos, Length: 1,
		Message: fmt.Sprintf("'%s' parameter '%s' expects '%s', found '%s'", fn, param, expected, found),
	}
}

func NewMutParamRequiresReturn(fn string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Error, Kind: MutParamRequiresReturn, Pos: pos, Length: 1,
		Message:    fmt.Sprintf("'%s' mutates a `mut` parameter but declares `void`", fn),
		Suggestion: "return the parameter's value so the modification is observable",
	}
}

func NewUnusedVariable(name string, pos ast.Position) *Diagnostic {
	return &Diagnostic{
		Severity: Warning, Kind: UnusedVariable, Pos: pos, Length: len(name),
		Message: fmt.Sprintf("'%s' is declared but never used", name),
	}
}
