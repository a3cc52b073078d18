package semantic

import (
	"hexen/internal/ast"
	"hexen/internal/errors"
	"hexen/internal/symbols"
	"hexen/internal/types"
)

// analyzeReturn implements `return expr?` (spec section 4.6, role 1 and
// role 3's "return exits the enclosing function"): the expression (if any)
// is always checked against the nearest enclosing function frame's return
// type, never against a block's produce context, even when the return sits
// inside an expression block nested arbitrarily deep.
func (a *Analyzer) analyzeReturn(n *ast.Return) {
	retType, ok := a.table.CurrentFunctionReturn()
	if !ok {
		retType = types.Void
	}
	if n.Value == nil {
		if !retType.IsVoid() {
			a.reporter.Add(errors.NewReturnTypeMismatch(retType.String(), "void", n.Pos))
		}
		return
	}
	if retType.IsVoid() {
		a.analyzeExpr(n.Value, nil)
		a.reporter.Add(errors.NewReturnValueInVoid(n.Pos))
		return
	}
	valType, copyMissing := a.analyzeInitializerExpr(n.Value, retType)
	if valType.IsUnknown() || copyMissing {
		return
	}
	if !types.Equal(valType, retType) {
		if _, ok := a.resolveArrayOrConvert(valType, retType); !ok {
			a.reporter.Add(errors.NewReturnTypeMismatch(retType.String(), valType.String(), n.Value.NodePos()))
		}
	}
}

// analyzeFuncBody analyzes a function's body in its own function frame
// with params pre-declared (spec section 4.7/4.10). params carries the
// resolved per-call types so inferred-size ([_]T) parameters can be
// re-specialized per call site (see function.go).
func (a *Analyzer) analyzeFuncBody(fn *ast.FuncDecl, params []*symbols.Param, retType *types.Type) {
	a.table.PushFunctionScope(retType)
	a.analyzeFuncBodyCore(fn, params, retType)
	a.table.PopScope()
}

// analyzeFuncBodySpecialized re-analyzes fn's body for one call site whose
// arguments resolved its [_]T parameters to concrete sizes (spec sections
// 4.7, 9): a fresh function frame rooted at the global frame, independent
// of wherever the current call site happens to sit in the scope stack, so
// the callee never sees the caller's locals.
func (a *Analyzer) analyzeFuncBodySpecialized(fn *ast.FuncDecl, params []*symbols.Param, retType *types.Type) {
	a.table.WithFunctionScopeAtRoot(retType, func() {
		a.analyzeFuncBodyCore(fn, params, retType)
	})
}

// analyzeFuncBodyCore declares params and analyzes statements in whatever
// function frame is already current; it does not push or pop a scope
// itself so both analyzeFuncBody and analyzeFuncBodySpecialized can share
// it under their own scope-management discipline.
func (a *Analyzer) analyzeFuncBodyCore(fn *ast.FuncDecl, params []*symbols.Param, retType *types.Type) {
	for _, p := range params {
		a.declareSymbol(p.Name, p.Type, mutabilityOf(p.Mut), true, fn.Pos, false)
		if sym := a.table.LookupLocal(p.Name); sym != nil {
			sym.IsParam = true
		}
	}
	for _, s := range fn.Body.Stmts {
		a.analyzeStmt(s)
	}
	if !retType.IsVoid() && !blockPathsComplete(fn.Body.Stmts) {
		a.reporter.Add(errors.NewMissingReturn(fn.Body.EndPos))
	}

	mutated := false
	for _, p := range params {
		if !p.Mut {
			continue
		}
		if sym := a.table.LookupLocal(p.Name); sym != nil && sym.Modified {
			mutated = true
		}
	}
	if mutated && retType.IsVoid() {
		a.reporter.Add(errors.NewMutParamRequiresReturn(fn.Name, fn.Pos))
	}

	a.checkUnusedInScope()
}

// analyzeStmtBlock analyzes a `{ ... }` used purely as a statement (an
// `if`/`while`/`for` arm, or a bare nested block). It introduces a plain
// lexical scope; whatever produce context (if any) is already active is
// inherited unchanged, so a `->` legally nested inside it (e.g. inside an
// `if` arm within a loop-as-expression body) is still recognized by
// analyzeProduce.
func (a *Analyzer) analyzeStmtBlock(block *ast.StmtBlock) {
	a.table.PushScope()
	for _, s := range block.Stmts {
		a.analyzeStmt(s)
	}
	a.checkUnusedInScope()
	a.table.PopScope()
}

// analyzeExprBlockAsValue analyzes a block used in value position (spec
// section 4.6, role 3): a fresh produce context targeting ctx, and,
// unless ctx is nil, a requirement that every path produce or return.
func (a *Analyzer) analyzeExprBlockAsValue(block *ast.ExprBlock, ctx *types.Type) *types.Type {
	complete := a.analyzeExprBlockBody(block, ctx)
	if ctx == nil {
		a.reporter.Add(errors.NewExpressionBlockMissingContext(block.Pos))
		return types.Unknown
	}
	if !complete {
		a.reporter.Add(errors.NewExpressionBlockMissingProduce(block.Pos))
		return types.Unknown
	}
	return ctx
}

// analyzeExprBlockBody walks block's statements under a produce frame
// targeting ctx and reports whether every path produces or returns. It
// never reports ExpressionBlockMissingContext or ExpressionBlockMissingProduce
// itself — callers that already own that diagnostic for the surrounding
// construct (analyzeIfExpr reports a missing context once for the whole
// if/else rather than once per arm) call this directly instead of
// analyzeExprBlockAsValue.
func (a *Analyzer) analyzeExprBlockBody(block *ast.ExprBlock, ctx *types.Type) bool {
	a.pushProduce(ctx, false)
	a.table.PushScope()
	for _, s := range block.Stmts {
		a.analyzeStmt(s)
	}
	complete := blockPathsComplete(block.Stmts)
	a.checkUnusedInScope()
	a.table.PopScope()
	a.popProduce()
	return complete
}

// blockPathsComplete resolves the Open Question of what "every path
// produces or returns" means structurally: a sequence of statements
// completes if any statement in it unconditionally completes (later,
// unreachable statements don't change that); an `if` completes only when
// it has an `else` and both arms complete; a bare block used as a
// statement completes when its own statements do; nothing else (loops,
// plain statements) guarantees completion on its own, since a loop may run
// zero iterations.
func blockPathsComplete(stmts []ast.Stmt) bool {
	for _, s := range stmts {
		if stmtCompletes(s) {
			return true
		}
	}
	return false
}

func stmtCompletes(s ast.Stmt) bool {
	switch n := s.(type) {
	case *ast.Produce, *ast.Return:
		return true
	case *ast.If:
		if n.Else == nil {
			return false
		}
		if !blockPathsComplete(n.Then.Stmts) {
			return false
		}
		switch e := n.Else.(type) {
		case *ast.StmtBlock:
			return blockPathsComplete(e.Stmts)
		case *ast.If:
			return stmtCompletes(e)
		default:
			return false
		}
	case *ast.StmtBlock:
		return blockPathsComplete(n.Stmts)
	default:
		return false
	}
}
