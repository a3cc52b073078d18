package semantic

import (
	"math/big"
	"strings"

	"hexen/internal/ast"
	"hexen/internal/errors"
	"hexen/internal/types"
)

// analyzeExpr is the bidirectional core described in spec section 4.4:
// ctx is the target type this expression is expected to produce, or nil
// if there is none. It always returns a non-nil *types.Type; Unknown
// marks a node that already has a diagnostic attached, so callers must
// not pile another error on top of it.
func (a *Analyzer) analyzeExpr(expr ast.Expr, ctx *types.Type) *types.Type {
	t := a.analyzeExprDispatch(expr, ctx)
	return a.materializeComptimeArray(t, ctx, expr)
}

// materializeComptimeArray implements spec section 3.3 rule 1: a comptime
// array (typically reached through an identifier bound to an array
// literal, or a nested array-literal element) materializes implicitly
// against a concrete array target context, no `:shape` conversion needed.
// It is applied uniformly after every analyzeExpr dispatch rather than
// only at declaration sites, so the same rule covers identifiers, function
// arguments, nested literal elements and block/return contexts alike.
func (a *Analyzer) materializeComptimeArray(t, ctx *types.Type, expr ast.Expr) *types.Type {
	if t == nil || t.IsUnknown() || t.Kind != types.KindComptimeArray {
		return t
	}
	if ctx == nil || !ctx.IsArray() {
		return t
	}
	resolvedDims, reason := types.ResolveShape(t, ctx.Dims)
	if reason != "" {
		return t
	}
	elemConv := types.CheckConvert(t.Elem, ctx.Elem, false)
	if !elemConv.OK {
		return t
	}
	return types.Array(ctx.Elem, resolvedDims)
}

func (a *Analyzer) analyzeExprDispatch(expr ast.Expr, ctx *types.Type) *types.Type {
	switch n := expr.(type) {
	case nil:
		return types.Unknown
	case *ast.BadExpr:
		return types.Unknown
	case *ast.IntLit:
		return a.analyzeIntLit(n, ctx)
	case *ast.FloatLit:
		return a.analyzeFloatLit(n, ctx)
	case *ast.BoolLit:
		return a.analyzeScalarLit(types.Bool, n.Pos, ctx)
	case *ast.StrLit:
		return a.analyzeScalarLit(types.String, n.Pos, ctx)
	case *ast.Undef:
		return types.UndefT
	case *ast.Identifier:
		return a.analyzeIdentifier(n, ctx)
	case *ast.Binary:
		return a.analyzeBinary(n, ctx)
	case *ast.Unary:
		return a.analyzeUnary(n, ctx)
	case *ast.Conversion:
		return a.analyzeConversion(n)
	case *ast.ArrayLit:
		return a.analyzeArrayLit(n, ctx)
	case *ast.ArrayAccess:
		return a.analyzeArrayAccess(n)
	case *ast.ArrayCopy:
		return a.analyzeArrayCopy(n)
	case *ast.PropertyAccess:
		return a.analyzePropertyAccess(n)
	case *ast.RangeExpr:
		return a.analyzeRange(n)
	case *ast.Call:
		return a.analyzeCall(n, ctx)
	case *ast.ExprBlock:
		return a.analyzeExprBlockAsValue(n, ctx)
	case *ast.IfExpr:
		return a.analyzeIfExpr(n, ctx)
	case *ast.ForIn:
		return a.analyzeForInExpr(n, ctx)
	default:
		return types.Unknown
	}
}

func (a *Analyzer) analyzeIntLit(n *ast.IntLit, ctx *types.Type) *types.Type {
	if ctx != nil && ctx.IsConcrete() && ctx.IsInteger() && !literalFitsInt(n.Value, ctx) {
		a.reporter.Errorf(errors.TypeMismatch, n.Pos, "integer literal %s does not fit in %s", n.Value, ctx.String())
		return types.Unknown
	}
	return a.unifyLiteralOrError(types.ComptimeInt, ctx, n.Pos)
}

func (a *Analyzer) analyzeFloatLit(n *ast.FloatLit, ctx *types.Type) *types.Type {
	return a.unifyLiteralOrError(types.ComptimeFloat, ctx, n.Pos)
}

func (a *Analyzer) analyzeScalarLit(litType *types.Type, pos ast.Position, ctx *types.Type) *types.Type {
	if ctx == nil || ctx.IsUnknown() {
		return litType
	}
	if !types.Equal(litType, ctx) {
		a.reporter.Add(errors.NewTypeMismatch(ctx.String(), litType.String(), pos))
		return types.Unknown
	}
	return litType
}

// unifyLiteralOrError implements "resolve to ctx when numerically
// compatible, otherwise emit the taxonomy-matching diagnostic" shared by
// integer and float literals (spec section 4.4, rules for IntLit/FloatLit).
func (a *Analyzer) unifyLiteralOrError(litType, ctx *types.Type, pos ast.Position) *types.Type {
	resolved, ok := types.UnifyLiteral(ctx, litType)
	if ok {
		return resolved
	}
	if litType.Kind == types.KindComptimeFloat && ctx.IsInteger() {
		a.reporter.Add(errors.NewUnsafeImplicitConversion(litType.String(), ctx.String(), pos))
		return types.Unknown
	}
	a.reporter.Add(errors.NewTypeMismatch(ctx.String(), litType.String(), pos))
	return types.Unknown
}

func literalFitsInt(value string, target *types.Type) bool {
	clean := strings.ReplaceAll(value, "_", "")
	n := new(big.Int)
	if _, ok := n.SetString(clean, 10); !ok {
		return true
	}
	var max *big.Int
	switch target.Kind {
	case types.KindI32:
		max = big.NewInt(2147483647)
	case types.KindI64:
		max = new(big.Int).SetUint64(9223372036854775807)
	default:
		return true
	}
	return n.Cmp(max) <= 0
}

func (a *Analyzer) analyzeIdentifier(n *ast.Identifier, ctx *types.Type) *types.Type {
	sym := a.table.Lookup(n.Name)
	if sym == nil {
		a.reporter.Add(errors.NewUndefinedIdentifier(n.Name, n.Pos))
		return types.Unknown
	}
	if sym.IsFunction {
		a.reporter.Add(errors.NewUndefinedIdentifier(n.Name, n.Pos))
		return types.Unknown
	}
	if !sym.Initialized {
		a.reporter.Add(errors.NewUseBeforeInit(n.Name, n.Pos))
		return types.Unknown
	}
	sym.Used = true
	if ctx != nil && sym.Type.IsComptime() {
		if resolved, ok := types.UnifyLiteral(ctx, sym.Type); ok {
			return resolved
		}
	}
	return sym.Type
}

func (a *Analyzer) analyzeBinary(n *ast.Binary, ctx *types.Type) *types.Type {
	switch n.Op {
	case ast.OpAdd, ast.OpSub, ast.OpMul, ast.OpMod:
		return a.analyzeArith(n, ctx)
	case ast.OpFDiv, ast.OpIDiv:
		return a.analyzeDivision(n, ctx)
	case ast.OpLt, ast.OpGt, ast.OpLe, ast.OpGe, ast.OpEq, ast.OpNe:
		return a.analyzeComparison(n)
	case ast.OpAnd, ast.OpOr:
		return a.analyzeLogical(n)
	default:
		return types.Unknown
	}
}

// analyzeArith handles +, -, *, % (spec section 4.4): both operands
// analyzed with ctx threaded in, then combined per the comptime/concrete
// alignment rule, then (for %) checked for integer-only legality.
func (a *Analyzer) analyzeArith(n *ast.Binary, ctx *types.Type) *types.Type {
	left := a.analyzeExpr(n.Left, ctx)
	right := a.analyzeExpr(n.Right, ctx)
	if left.IsUnknown() || right.IsUnknown() {
		return types.Unknown
	}
	if !left.IsNumeric() || !right.IsNumeric() {
		a.reporter.Add(errors.NewTypeMismatch("numeric", left.String()+" / "+right.String(), n.Pos))
		return types.Unknown
	}
	aligned, ok := a.alignOperands(left, right, n.Pos)
	if !ok {
		return types.Unknown
	}
	if n.Op == ast.OpMod && !aligned.IsInteger() {
		a.reporter.Add(errors.NewModuloOnFloat(n.Pos))
		return types.Unknown
	}
	if aligned.IsComptime() && ctx != nil && ctx.IsNumeric() {
		if resolved, ok := types.UnifyLiteral(ctx, aligned); ok {
			return resolved
		}
	}
	return aligned
}

// analyzeDivision handles `/` (always-float division) and `\` (integer
// division), which share operand combination but diverge on result shape
// and op-specific legality (spec section 4.4).
func (a *Analyzer) analyzeDivision(n *ast.Binary, ctx *types.Type) *types.Type {
	left := a.analyzeExpr(n.Left, ctx)
	right := a.analyzeExpr(n.Right, ctx)
	if left.IsUnknown() || right.IsUnknown() {
		return types.Unknown
	}
	if !left.IsNumeric() || !right.IsNumeric() {
		a.reporter.Add(errors.NewTypeMismatch("numeric", left.String()+" / "+right.String(), n.Pos))
		return types.Unknown
	}
	aligned, ok := a.alignOperands(left, right, n.Pos)
	if !ok {
		return types.Unknown
	}

	if n.Op == ast.OpIDiv {
		if !aligned.IsInteger() {
			a.reporter.Add(errors.NewIntegerDivOnFloat(n.Pos))
			return types.Unknown
		}
		if aligned.IsComptime() && ctx != nil && ctx.IsInteger() {
			if resolved, ok := types.UnifyLiteral(ctx, aligned); ok {
				return resolved
			}
		}
		return aligned
	}

	// OpFDiv: always yields a float flavor.
	if aligned.IsComptime() {
		if ctx != nil && ctx.IsFloat() {
			if resolved, ok := types.UnifyLiteral(ctx, types.ComptimeFloat); ok {
				return resolved
			}
		}
		return types.ComptimeFloat
	}
	if aligned.IsFloat() {
		return aligned
	}
	a.reporter.Add(errors.NewFloatDivOnSameIntegers(n.Pos))
	return types.Unknown
}

func (a *Analyzer) analyzeComparison(n *ast.Binary) *types.Type {
	left := a.analyzeExpr(n.Left, nil)
	right := a.analyzeExpr(n.Right, nil)
	if left.IsUnknown() || right.IsUnknown() {
		return types.Unknown
	}

	if n.Op == ast.OpEq || n.Op == ast.OpNe {
		sameCategory := (left.IsNumeric() && right.IsNumeric()) ||
			(left.IsBool() && right.IsBool()) ||
			(left.IsString() && right.IsString())
		if !sameCategory {
			a.reporter.Add(errors.NewTypeMismatch(left.String(), right.String(), n.Pos))
			return types.Unknown
		}
		if left.IsBool() || left.IsString() {
			return types.Bool
		}
		if _, ok := a.alignOperands(left, right, n.Pos); !ok {
			return types.Unknown
		}
		return types.Bool
	}

	if !left.IsNumeric() || !right.IsNumeric() {
		a.reporter.Add(errors.NewTypeMismatch("numeric", left.String()+" / "+right.String(), n.Pos))
		return types.Unknown
	}
	if _, ok := a.alignOperands(left, right, n.Pos); !ok {
		return types.Unknown
	}
	return types.Bool
}

func (a *Analyzer) analyzeLogical(n *ast.Binary) *types.Type {
	left := a.analyzeExpr(n.Left, types.Bool)
	right := a.analyzeExpr(n.Right, types.Bool)
	if left.IsUnknown() || right.IsUnknown() {
		return types.Unknown
	}
	if !left.IsBool() || !right.IsBool() {
		a.reporter.Add(errors.NewTypeMismatch("bool", left.String()+" / "+right.String(), n.Pos))
		return types.Unknown
	}
	return types.Bool
}

func (a *Analyzer) analyzeUnary(n *ast.Unary, ctx *types.Type) *types.Type {
	if n.Op == ast.OpNeg {
		operand := a.analyzeExpr(n.Operand, ctx)
		if operand.IsUnknown() {
			return types.Unknown
		}
		if !operand.IsNumeric() {
			a.reporter.Add(errors.NewTypeMismatch("numeric", operand.String(), n.Pos))
			return types.Unknown
		}
		return operand
	}
	operand := a.analyzeExpr(n.Operand, types.Bool)
	if operand.IsUnknown() {
		return types.Unknown
	}
	if !operand.IsBool() {
		a.reporter.Add(errors.NewTypeMismatch("bool", operand.String(), n.Pos))
		return types.Unknown
	}
	return types.Bool
}

func (a *Analyzer) analyzeIfExpr(n *ast.IfExpr, ctx *types.Type) *types.Type {
	if ctx == nil {
		a.reporter.Add(errors.NewExpressionBlockMissingContext(n.Pos))
	}
	condType := a.analyzeExpr(n.Cond, types.Bool)
	if !condType.IsUnknown() && !condType.IsBool() {
		a.reporter.Add(errors.NewTypeMismatch("bool", condType.String(), n.Cond.NodePos()))
	}
	thenComplete := a.analyzeExprBlockBody(n.Then, ctx)
	elseComplete := a.analyzeExprBlockBody(n.Else, ctx)
	if ctx == nil {
		return types.Unknown
	}
	ok := true
	if !thenComplete {
		a.reporter.Add(errors.NewExpressionBlockMissingProduce(n.Then.Pos))
		ok = false
	}
	if !elseComplete {
		a.reporter.Add(errors.NewExpressionBlockMissingProduce(n.Else.Pos))
		ok = false
	}
	if !ok {
		return types.Unknown
	}
	return ctx
}
