package semantic

import (
	"hexen/internal/ast"
	"hexen/internal/errors"
	"hexen/internal/symbols"
	"hexen/internal/types"
)

// analyzeValDecl implements `val name [: T] = expr` (spec section 4.5).
func (a *Analyzer) analyzeValDecl(n *ast.ValDecl) {
	if _, isUndef := n.Init.(*ast.Undef); isUndef {
		a.reporter.Add(errors.NewUndefOnVal(n.Pos))
		a.declareSymbol(n.Name, types.Unknown, symbols.Val, true, n.Pos, false)
		return
	}

	if n.Type != nil {
		target := a.resolveTypeExpr(n.Type)
		valType, copyMissing := a.analyzeInitializerExpr(n.Init, target)
		if copyMissing {
			valType = types.Unknown
		} else if !valType.IsUnknown() && !types.Equal(valType, target) {
			if resolved, ok := a.resolveArrayOrConvert(valType, target); ok {
				valType = resolved
			} else {
				a.reporter.Add(a.implicitConvError(valType, target, n.Init.NodePos()))
				valType = types.Unknown
			}
		}
		a.declareSymbol(n.Name, valType, symbols.Val, true, n.Pos, false)
		return
	}

	// No annotation: the symbol's type is whatever the initializer
	// resolves to with no context; a comptime result stays comptime per
	// the "conservation of comptime" invariant (spec section 8.1), unless
	// the initializer is a call or other construct that already produced
	// a concrete "runtime" value (spec section 4.5's inference exception).
	valType, _ := a.analyzeInitializerExpr(n.Init, nil)
	a.declareSymbol(n.Name, valType, symbols.Val, true, n.Pos, false)
}

// analyzeInitializerExpr analyzes a declaration's initializer, enforcing
// the explicit-copy requirement (section 3.4) when a concrete array flows
// into a fresh owner: a `val`/`mut` declaration whose concrete array
// initializer has no declared type, or whose type does not reconcile with
// the declared type as the same array (a conversion or flattening), must
// be written `expr[..]`. The second return reports whether that copy requirement was
// violated, so callers can skip piling a shape/convert diagnostic on top
// of the one already reported here (spec section 7's propagation policy).
func (a *Analyzer) analyzeInitializerExpr(init ast.Expr, ctx *types.Type) (*types.Type, bool) {
	t := a.analyzeExpr(init, ctx)
	copyMissing := a.checkArrayCopyForInitializer(init, t, ctx)
	return t, copyMissing
}

// checkArrayCopyForInitializer implements the variable-initializer branch
// of spec section 3.4: unlike a function argument, an initializer only
// needs `[..]` when it "performs any conversion or flattening" — i.e. its
// resolved type isn't reconcilable with ctx as the same array. A plain
// same-shape rebinding of an existing concrete array is left alone by this
// rule (spec's own wording scopes the requirement to the
// conversion/flattening case).
func (a *Analyzer) checkArrayCopyForInitializer(expr ast.Expr, t, ctx *types.Type) bool {
	if t.IsUnknown() || !t.IsArray() {
		return false
	}
	if ctx != nil {
		if _, ok := reconcileArrayShape(t, ctx); ok {
			return false
		}
	}
	return a.requireArrayCopy(expr, t, expr.NodePos())
}

// analyzeMutDecl implements `mut name : T = expr` (spec section 4.5); T is
// always present (enforced by the parser requiring ':' after the name).
func (a *Analyzer) analyzeMutDecl(n *ast.MutDecl) {
	target := a.resolveTypeExpr(n.Type)
	if _, isUndef := n.Init.(*ast.Undef); isUndef {
		a.declareSymbol(n.Name, target, symbols.Mut, false, n.Pos, false)
		return
	}
	initType, copyMissing := a.analyzeInitializerExpr(n.Init, target)
	if !copyMissing && !initType.IsUnknown() && !types.Equal(initType, target) {
		if _, ok := a.resolveArrayOrConvert(initType, target); !ok {
			a.reporter.Add(a.implicitConvError(initType, target, n.Init.NodePos()))
		}
	}
	a.declareSymbol(n.Name, target, symbols.Mut, true, n.Pos, false)
}

// analyzeAssign implements `name = expr` (spec section 4.5): name must be
// `mut`; the rhs is analyzed with the symbol's declared type as context.
func (a *Analyzer) analyzeAssign(n *ast.Assign) {
	sym := a.table.Lookup(n.Name)
	if sym == nil {
		a.reporter.Add(errors.NewUndefinedIdentifier(n.Name, n.Pos))
		a.analyzeExpr(n.Value, nil)
		return
	}
	if sym.IsLoopVar {
		a.reporter.Add(errors.NewLoopVariableReassignment(n.Name, n.Pos))
		a.analyzeExpr(n.Value, sym.Type)
		return
	}
	if sym.Mutability != symbols.Mut {
		a.reporter.Add(errors.NewValReassignment(n.Name, n.Pos))
		a.analyzeExpr(n.Value, sym.Type)
		return
	}
	rhsType, copyMissing := a.analyzeInitializerExpr(n.Value, sym.Type)
	if !copyMissing && !rhsType.IsUnknown() && !types.Equal(rhsType, sym.Type) {
		if _, ok := a.resolveArrayOrConvert(rhsType, sym.Type); !ok {
			a.reporter.Add(a.implicitConvError(rhsType, sym.Type, n.Value.NodePos()))
		}
	}
	sym.Initialized = true
	sym.Modified = true
	a.table.MarkModified(n.Name)
}

// analyzeElementAssign implements `a[i] = expr` (spec section 4.5): the
// root identifier of the access path must be a `mut` array-typed symbol.
func (a *Analyzer) analyzeElementAssign(n *ast.ElementAssign) {
	elemType := a.analyzeArrayAccess(n.Target)
	rootName, rootSym := a.rootArraySymbol(n.Target)
	if rootSym == nil {
		if rootName != "" {
			a.reporter.Add(errors.NewUndefinedIdentifier(rootName, n.Pos))
		}
		a.analyzeExpr(n.Value, elemType)
		return
	}
	if rootSym.IsLoopVar {
		a.reporter.Add(errors.NewLoopVariableReassignment(rootName, n.Pos))
	} else if rootSym.Mutability != symbols.Mut {
		a.reporter.Add(errors.NewValReassignment(rootName, n.Pos))
	} else {
		rootSym.Modified = true
	}
	if elemType.IsUnknown() {
		a.analyzeExpr(n.Value, nil)
		return
	}
	valType := a.analyzeExpr(n.Value, elemType)
	if !valType.IsUnknown() && !types.Equal(valType, elemType) {
		if _, ok := a.resolveArrayOrConvert(valType, elemType); !ok {
			a.reporter.Add(a.implicitConvError(valType, elemType, n.Value.NodePos()))
		}
	}
}
