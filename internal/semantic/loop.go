package semantic

import (
	"hexen/internal/ast"
	"hexen/internal/errors"
	"hexen/internal/symbols"
	"hexen/internal/types"
)

// analyzeIf implements the statement form of `if` (spec section 4.6, role
// 2): both arms are plain statement blocks and the construct produces no
// value, so no context threads into either arm.
func (a *Analyzer) analyzeIf(n *ast.If) {
	condType := a.analyzeExpr(n.Cond, types.Bool)
	if !condType.IsUnknown() && !condType.IsBool() {
		a.reporter.Add(errors.NewTypeMismatch("bool", condType.String(), n.Cond.NodePos()))
	}
	a.analyzeStmtBlock(n.Then)
	switch e := n.Else.(type) {
	case nil:
	case *ast.StmtBlock:
		a.analyzeStmtBlock(e)
	case *ast.If:
		a.analyzeIf(e)
	}
}

// analyzeForInStmt implements `for x [: T] in iter { body }` used purely
// for its side effects (spec section 4.9): the loop variable is a fresh
// `val` binding scoped to the loop frame, re-declared fresh each iteration
// conceptually, so no "possibly uninitialized after the loop" concern
// applies.
func (a *Analyzer) analyzeForInStmt(n *ast.ForIn) {
	iterType := a.analyzeExpr(n.Iter, nil)
	elemType := a.loopElementType(iterType, n.Iter.NodePos())

	if dup := a.table.PushLoopScope(n.Label, elemType); dup {
		a.reporter.Add(errors.NewDuplicateLabel(n.Label, n.Pos))
	}
	a.declareLoopVar(n, elemType)
	for _, s := range n.Body.Stmts {
		a.analyzeStmt(s)
	}
	a.checkUnusedInScope()
	a.table.PopScope()
}

// analyzeForInExpr implements for-in used in value position (spec section
// 4.9): each iteration optionally `->`s an element (loop bodies may filter
// by omitting `->` on some paths), and the loop as a whole produces an
// array of the produced element type. ctx, if an array type, supplies the
// expected element type for every `->` inside the body.
func (a *Analyzer) analyzeForInExpr(n *ast.ForIn, ctx *types.Type) *types.Type {
	iterType := a.analyzeExpr(n.Iter, nil)
	if iterType.IsRange() && !iterType.RangeBounded {
		a.reporter.Add(errors.NewUnboundedRangeInExpressionLoop(n.Iter.NodePos()))
	}
	elemType := a.loopElementType(iterType, n.Iter.NodePos())

	var elemCtx *types.Type
	if ctx != nil && ctx.IsArray() {
		elemCtx = ctx.DropLeadingDim()
	}

	if dup := a.table.PushLoopScope(n.Label, elemType); dup {
		a.reporter.Add(errors.NewDuplicateLabel(n.Label, n.Pos))
	}
	a.declareLoopVar(n, elemType)
	a.pushProduce(elemCtx, true)
	for _, s := range n.ExprBody.Stmts {
		a.analyzeStmt(s)
	}
	a.popProduce()
	a.checkUnusedInScope()
	a.table.PopScope()

	if elemCtx == nil {
		a.reporter.Add(errors.NewExpressionBlockMissingContext(n.Pos))
		return types.Unknown
	}
	return types.Array(elemCtx, []types.Dim{types.InferredDim()})
}

// declareLoopVar declares a for-in loop's iteration variable, honoring an
// explicit `: T` annotation (checked against the inferred element type)
// when present.
func (a *Analyzer) declareLoopVar(n *ast.ForIn, elemType *types.Type) {
	varType := elemType
	if n.VarType != nil {
		annotated := a.resolveTypeExpr(n.VarType)
		if !elemType.IsUnknown() && !annotated.IsUnknown() && !types.Equal(annotated, elemType) {
			a.reporter.Add(errors.NewTypeMismatch(annotated.String(), elemType.String(), n.Pos))
		}
		varType = annotated
	}
	a.declareSymbol(n.Var, varType, symbols.Val, true, n.Pos, true)
}

// analyzeWhile implements `while cond { body }` (spec section 4.9): always
// statement-only, never a value source.
func (a *Analyzer) analyzeWhile(n *ast.While) {
	condType := a.analyzeExpr(n.Cond, types.Bool)
	if !condType.IsUnknown() && !condType.IsBool() {
		a.reporter.Add(errors.NewTypeMismatch("bool", condType.String(), n.Cond.NodePos()))
	}
	if dup := a.table.PushLoopScope(n.Label, types.Unknown); dup {
		a.reporter.Add(errors.NewDuplicateLabel(n.Label, n.Pos))
	}
	for _, s := range n.Body.Stmts {
		a.analyzeStmt(s)
	}
	a.checkUnusedInScope()
	a.table.PopScope()
}

// analyzeBreak / analyzeContinue resolve a (possibly labeled) loop target
// via the symbol table's frame stack (spec section 4.9).
func (a *Analyzer) analyzeBreak(n *ast.Break) {
	_, status := a.table.FindLoopFrame(n.Label)
	switch status {
	case symbols.LoopNotInLoop:
		a.reporter.Add(errors.NewBreakOutsideLoop(n.Pos))
	case symbols.LoopUnknownLabel:
		a.reporter.Add(errors.NewUnknownLabel(n.Label, n.Pos))
	}
}

func (a *Analyzer) analyzeContinue(n *ast.Continue) {
	_, status := a.table.FindLoopFrame(n.Label)
	switch status {
	case symbols.LoopNotInLoop:
		a.reporter.Add(errors.NewContinueOutsideLoop(n.Pos))
	case symbols.LoopUnknownLabel:
		a.reporter.Add(errors.NewUnknownLabel(n.Label, n.Pos))
	}
}

// analyzeLabeledStmt handles `label: stmt` for completeness of the AST
// contract (the current parser attaches labels directly to ForIn/While
// nodes rather than wrapping them, so this path is reachable only for a
// hand-built or future-grammar tree): a label is only meaningful on a loop.
func (a *Analyzer) analyzeLabeledStmt(n *ast.LabeledStmt) {
	switch inner := n.Stmt.(type) {
	case *ast.ForIn:
		inner.Label = n.Label
		a.analyzeForInStmt(inner)
	case *ast.While:
		inner.Label = n.Label
		a.analyzeWhile(inner)
	default:
		a.reporter.Add(errors.NewLabelNotOnLoop(n.Label, n.Pos))
		a.analyzeStmt(n.Stmt)
	}
}
