package semantic

import (
	"hexen/internal/ast"
	"hexen/internal/errors"
	"hexen/internal/symbols"
	"hexen/internal/types"
)

// registerSignatures is the pre-pass of the two-pass top-level driver
// (spec section 4.7/4.10): every function's name, parameter list and
// return type become visible before any body is analyzed, so forward
// calls resolve.
func (a *Analyzer) registerSignatures(prog *ast.Program) {
	for _, fn := range prog.Funcs {
		params := make([]*symbols.Param, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = &symbols.Param{Name: p.Name, Mut: p.Mut, Type: a.resolveTypeExpr(p.Type)}
		}
		sym := &symbols.Symbol{
			Name:       fn.Name,
			IsFunction: true,
			Params:     params,
			Return:     a.resolveTypeExpr(fn.Return),
			DeclPos:    fn.Pos,
			Initialized: true,
		}
		for _, p := range params {
			if p.Mut {
				sym.HasMutParam = true
			}
		}
		if !a.table.Declare(sym) {
			a.reporter.Add(errors.NewDuplicateDeclaration(fn.Name, fn.Pos))
		}
	}
}

// analyzeCall implements call checking (spec section 4.7): argument count,
// per-argument context-directed type checking, the explicit-copy rule for
// concrete array arguments, and fixed/inferred array parameter shape
// matching. ctx is unused for ordinary calls (a call's type is always the
// function's declared return type, never adapted to context) but is part
// of the signature for symmetry with every other analyzeExpr helper.
func (a *Analyzer) analyzeCall(n *ast.Call, _ *types.Type) *types.Type {
	sym := a.table.Lookup(n.Callee)
	if sym == nil || !sym.IsFunction {
		a.reporter.Add(errors.NewUndefinedIdentifier(n.Callee, n.Pos))
		for _, arg := range n.Args {
			a.analyzeExpr(arg, nil)
		}
		return types.Unknown
	}
	sym.Used = true

	if len(n.Args) != len(sym.Params) {
		a.reporter.Add(errors.NewArgCountMismatch(n.Callee, len(sym.Params), len(n.Args), n.Pos))
		for _, arg := range n.Args {
			a.analyzeExpr(arg, nil)
		}
		return sym.Return
	}

	specialized := make([]*symbols.Param, len(sym.Params))
	allOK := true
	for i, p := range sym.Params {
		argType := a.analyzeExpr(n.Args[i], p.Type)
		specialized[i] = &symbols.Param{Name: p.Name, Mut: p.Mut, Type: p.Type}

		if argType.IsUnknown() {
			allOK = false
			continue
		}

		if p.Type.IsArray() {
			a.checkArrayCopyForArgument(n.Args[i], argType)
			resolved, reason := matchArrayArgShape(argType, p.Type)
			if reason != "" {
				a.reporter.Add(errors.NewArgTypeMismatch(n.Callee, p.Name, p.Type.String(), argType.String(), n.Args[i].NodePos()))
				allOK = false
				continue
			}
			specialized[i].Type = resolved
			continue
		}

		if !types.Equal(argType, p.Type) {
			a.reporter.Add(errors.NewArgTypeMismatch(n.Callee, p.Name, p.Type.String(), argType.String(), n.Args[i].NodePos()))
			allOK = false
		}
	}

	// Inferred-size ([_]T) parameters need a concrete call-site shape
	// before the callee's body can be checked at all (so that `.length`
	// inside it is a genuine comptime_int, spec sections 4.7/9): such
	// functions are skipped by the top-level driver and instead analyzed
	// here, once per well-typed call, specialized to this call's shapes.
	if allOK {
		if fn, exists := a.funcDecls[n.Callee]; exists && hasInferredParam(fn) {
			a.analyzeFuncBodySpecialized(fn, specialized, sym.Return)
		}
	}

	return sym.Return
}

// checkArrayCopyForArgument implements the function-argument branch of
// spec section 3.4: unlike an initializer, a concrete array argument
// always needs `[..]`, regardless of whether the parameter's shape
// matches the argument's shape exactly.
func (a *Analyzer) checkArrayCopyForArgument(expr ast.Expr, t *types.Type) {
	a.requireArrayCopy(expr, t, expr.NodePos())
}

// matchArrayArgShape implements the fixed-vs-inferred parameter matching
// rule (spec section 4.7): a fixed dimension must match the argument's
// dimension exactly; an inferred dimension ([_]T) accepts any concrete
// size, and that size becomes part of the resolved parameter type used to
// specialize the callee.
func matchArrayArgShape(argType, paramType *types.Type) (resolved *types.Type, reason string) {
	if !argType.IsArray() {
		return nil, "argument is not an array"
	}
	if !types.Equal(argType.Elem, paramType.Elem) {
		return nil, "element type mismatch"
	}
	if len(argType.Dims) != len(paramType.Dims) {
		return nil, "rank mismatch"
	}
	dims := make([]types.Dim, len(paramType.Dims))
	for i, pd := range paramType.Dims {
		ad := argType.Dims[i]
		if pd.Inferred {
			dims[i] = ad
			continue
		}
		if ad.Inferred || ad.Size != pd.Size {
			return nil, "shape mismatch"
		}
		dims[i] = pd
	}
	return types.Array(paramType.Elem, dims), ""
}
