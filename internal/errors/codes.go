// Package errors implements the structured diagnostic reporter described in
// spec section 4.3: an accumulating buffer of {severity, kind, span,
// message, suggestion} records drawn from the fixed taxonomy in section 7.
package errors

// Kind is one tag from the fixed diagnostic taxonomy (spec section 7). It
// is not exhaustive of every conceivable compiler error, but it is complete
// for everything section 4 specifies.
type Kind string

const (
	UndefinedIdentifier Kind = "UndefinedIdentifier"
	DuplicateDeclaration Kind = "DuplicateDeclaration"
	ShadowingError       Kind = "ShadowingError"

	TypeMismatch               Kind = "TypeMismatch"
	MixedConcreteRequiresExplicit Kind = "MixedConcreteRequiresExplicit"
	UnsafeImplicitConversion   Kind = "UnsafeImplicitConversion"
	NonsensicalConversion      Kind = "NonsensicalConversion"

	IntegerDivOnFloat    Kind = "IntegerDivOnFloat"
	FloatDivOnSameIntegers Kind = "FloatDivOnSameIntegers"
	ModuloOnFloat        Kind = "ModuloOnFloat"

	ValReassignment      Kind = "ValReassignment"
	MutRequiresExplicitType Kind = "MutRequiresExplicitType"
	UseBeforeInit        Kind = "UseBeforeInit"
	UndefOnVal           Kind = "UndefOnVal"

	MissingExplicitArrayCopy   Kind = "MissingExplicitArrayCopy"
	ArrayShapeMismatch         Kind = "ArrayShapeMismatch"
	MultiInferredDimensionAmbiguous Kind = "MultiInferredDimensionAmbiguous"
	UnknownProperty            Kind = "UnknownProperty"
	LengthOnUnsizedArray       Kind = "LengthOnUnsizedArray"

	ExpressionBlockMissingContext Kind = "ExpressionBlockMissingContext"
	ExpressionBlockMissingProduce Kind = "ExpressionBlockMissingProduce"
	ProduceOutsideExpressionBlock Kind = "ProduceOutsideExpressionBlock"
	ReturnTypeMismatch            Kind = "ReturnTypeMismatch"
	MissingReturn                 Kind = "MissingReturn"
	ReturnValueInVoid             Kind = "ReturnValueInVoid"

	BreakOutsideLoop Kind = "BreakOutsideLoop"
	ContinueOutsideLoop Kind = "ContinueOutsideLoop"
	UnknownLabel     Kind = "UnknownLabel"
	DuplicateLabel   Kind = "DuplicateLabel"
	LabelNotOnLoop   Kind = "LabelNotOnLoop"

	UnboundedRangeInExpressionLoop Kind = "UnboundedRangeInExpressionLoop"
	LoopVariableReassignment       Kind = "LoopVariableReassignment"

	ArgCountMismatch    Kind = "ArgCountMismatch"
	ArgTypeMismatch     Kind = "ArgTypeMismatch"
	MutParamRequiresReturn Kind = "MutParamRequiresReturn"

	// Ambient, non-binding diagnostics (SPEC_FULL.md); never fail a
	// compile by themselves, mirroring kanso's unused-variable warnings.
	UnusedVariable Kind = "UnusedVariable"
	UnusedFunction Kind = "UnusedFunction"

	// SyntaxError covers the AST-construction path SPEC_FULL.md adds ahead
	// of the semantic taxonomy: a lexer/parser failure reported through the
	// same Diagnostic shape so callers have one error surface end to end.
	SyntaxError Kind = "SyntaxError"
)

// IsWarningKind reports whether kind is always reported at Warning severity
// regardless of who constructs the diagnostic.
func IsWarningKind(k Kind) bool {
	return k == UnusedVariable || k == UnusedFunction
}
