package semantic

import (
	"strings"

	"hexen/internal/ast"
	"hexen/internal/errors"
	"hexen/internal/types"
)

// analyzeConversion implements the `expr:T` syntax (spec section 4.4):
// the operand is analyzed with no context (its own natural type is what's
// being converted), then checked against the target with explicit=true.
// Array targets additionally enforce the "[..] before :shape" rule (spec
// section 3.4) and resolve any inferred `_` dimension in the target shape.
func (a *Analyzer) analyzeConversion(n *ast.Conversion) *types.Type {
	srcType := a.analyzeExpr(n.Expr, nil)
	if srcType.IsUnknown() {
		return types.Unknown
	}
	target := a.resolveTypeExpr(n.TargetType)
	if target.IsUnknown() {
		return types.Unknown
	}

	if target.IsArray() && srcType.Kind == types.KindArray {
		if _, isCopy := n.Expr.(*ast.ArrayCopy); !isCopy {
			a.reporter.Add(errors.NewMissingExplicitArrayCopy(n.Expr.NodePos()))
			return types.Unknown
		}
	}

	result := types.CheckConvert(srcType, target, true)
	if !result.OK {
		a.reporter.Add(a.explicitConvError(srcType, target, result.Reason, n.Pos))
		return types.Unknown
	}

	if target.IsArray() {
		resolvedDims, reason := types.ResolveShape(srcType, target.Dims)
		if reason != "" {
			// CheckConvert already validated the shape; this should not
			// happen, but fall back to the target's own dims rather than
			// panic if it ever does.
			return target
		}
		return types.Array(target.Elem, resolvedDims)
	}
	return target
}

// explicitConvError picks the taxonomy tag matching an explicit
// conversion's failure reason (spec section 7): bool/string mismatches are
// NonsensicalConversion, array shape failures keep their specific tags,
// anything else falls back to NonsensicalConversion since an explicit `:T`
// that still doesn't type-check has no legal meaning to suggest.
func (a *Analyzer) explicitConvError(source, target *types.Type, reason string, pos ast.Position) *errors.Diagnostic {
	switch {
	case reason == "MultiInferredDimensionAmbiguous":
		return errors.NewMultiInferredDimensionAmbiguous(pos)
	case reason == "ArrayShapeMismatch":
		count, _ := source.ElementCount()
		return errors.NewArrayShapeMismatch(count, target.String(), pos)
	case strings.Contains(reason, "element type"):
		return errors.NewNonsensicalConversion(source.Elem.String(), target.Elem.String(), pos)
	default:
		return errors.NewNonsensicalConversion(source.String(), target.String(), pos)
	}
}
