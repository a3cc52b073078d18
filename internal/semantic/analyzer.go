// Package semantic implements the Hexen semantic analyzer: the
// context-propagating, bidirectional type checker described across spec
// sections 3-4. It is grounded on kanso's internal/semantic package shape
// (an Analyzer owning a Reporter and a symbol Table, a two-pass top-level
// driver, and one analyze* method per AST node family) generalized to
// Hexen's dual-tier comptime/concrete type system.
package semantic

import (
	"hexen/internal/ast"
	"hexen/internal/errors"
	"hexen/internal/symbols"
	"hexen/internal/types"
)

// produceFrame tracks whether `->` is currently legal and, if so, the
// target type its operand must unify with. loop is true inside a
// loop-as-expression body, where producing is optional per iteration
// (filtering, spec section 4.9) rather than required on every path
// (ordinary expression blocks, spec section 4.6).
type produceFrame struct {
	target *types.Type
	loop   bool
}

// Analyzer owns the mutable state of one analysis run: the diagnostic
// buffer and the symbol table. It is not safe for concurrent use (spec
// section 5: single-threaded cooperative).
type Analyzer struct {
	reporter *errors.Reporter
	table    *symbols.Table

	funcDecls map[string]*ast.FuncDecl

	produceStack []produceFrame
}

// NewAnalyzer creates an analyzer. source is used only to render caret
// excerpts in diagnostics (errors.Reporter.Render); it may be empty.
func NewAnalyzer(source string) *Analyzer {
	return &Analyzer{
		reporter:  errors.NewReporter(source),
		table:     symbols.NewTable(),
		funcDecls: make(map[string]*ast.FuncDecl),
	}
}

// Reporter exposes the accumulated diagnostics for callers that want
// rendering (tests, a future driver).
func (a *Analyzer) Reporter() *errors.Reporter { return a.reporter }

// AnalyzeProgram runs the two-pass top-level driver described in spec
// section 4.10: register every function's signature, then analyze bodies
// so forward references resolve. Functions with an inferred-size ([_]T)
// parameter are analyzed lazily, once per call site (see function.go),
// since their body's types depend on the concrete argument shape.
func (a *Analyzer) AnalyzeProgram(prog *ast.Program) []*errors.Diagnostic {
	a.registerSignatures(prog)
	for _, fn := range prog.Funcs {
		a.funcDecls[fn.Name] = fn
	}
	for _, fn := range prog.Funcs {
		if hasInferredParam(fn) {
			continue
		}
		a.analyzeFunc(fn)
	}
	a.checkUnusedFunctions(prog)
	return a.reporter.Diagnostics()
}

func hasInferredParam(fn *ast.FuncDecl) bool {
	for _, p := range fn.Params {
		for _, d := range p.Type.Dims {
			if d.Inferred {
				return true
			}
		}
	}
	return false
}

func (a *Analyzer) analyzeFunc(fn *ast.FuncDecl) {
	sym := a.table.Lookup(fn.Name)
	if sym == nil || !sym.IsFunction {
		return
	}
	a.analyzeFuncBody(fn, sym.Params, sym.Return)
}

func (a *Analyzer) checkUnusedFunctions(prog *ast.Program) {
	for _, fn := range prog.Funcs {
		sym := a.table.LookupLocal(fn.Name)
		if sym != nil && !sym.Used {
			a.reporter.Add(&errors.Diagnostic{
				Severity: errors.Warning, Kind: errors.UnusedFunction, Pos: fn.Pos, Length: len(fn.Name),
				Message: "function '" + fn.Name + "' is never called",
			})
		}
	}
}

// checkUnusedInScope emits UnusedVariable warnings for val/mut bindings
// declared in the current frame that were never read. It must be called
// before popping the frame.
func (a *Analyzer) checkUnusedInScope() {
	for _, sym := range a.table.CurrentSymbols() {
		if sym.IsFunction || sym.IsParam || sym.IsLoopVar || sym.Used {
			continue
		}
		a.reporter.Add(errors.NewUnusedVariable(sym.Name, sym.DeclPos))
	}
}

func (a *Analyzer) pushProduce(target *types.Type, loop bool) {
	a.produceStack = append(a.produceStack, produceFrame{target: target, loop: loop})
}

func (a *Analyzer) popProduce() {
	a.produceStack = a.produceStack[:len(a.produceStack)-1]
}

func (a *Analyzer) currentProduce() (produceFrame, bool) {
	if len(a.produceStack) == 0 {
		return produceFrame{}, false
	}
	return a.produceStack[len(a.produceStack)-1], true
}

// resolveTypeExpr turns a parsed type annotation into the internal Type
// representation, reporting an error for an unrecognized primitive name.
func (a *Analyzer) resolveTypeExpr(t *ast.TypeExpr) *types.Type {
	if t == nil {
		return types.Void
	}
	if !types.IsConcreteScalarName(t.Name) {
		a.reporter.Errorf(errors.TypeMismatch, t.Pos, "unknown type '%s'", t.Name)
		return types.Unknown
	}
	elem := types.FromScalarName(t.Name)
	if !t.IsArray() {
		return elem
	}
	dims := make([]types.Dim, len(t.Dims))
	for i, d := range t.Dims {
		if d.Inferred {
			dims[i] = types.InferredDim()
		} else {
			dims[i] = types.FixedDim(d.Size)
		}
	}
	return types.Array(elem, dims)
}

func mutabilityOf(mut bool) symbols.Mutability {
	if mut {
		return symbols.Mut
	}
	return symbols.Val
}

// alignOperands implements the comptime/concrete operand-combination rule
// shared by arithmetic, division and comparison operators (spec section
// 4.4, rules 2-5): two comptime operands widen per the promotion table; a
// comptime operand paired with a concrete one adapts to the concrete
// type; two equal concrete types pass through; two different concrete
// types are a MixedConcreteRequiresExplicit error.
func (a *Analyzer) alignOperands(left, right *types.Type, pos ast.Position) (*types.Type, bool) {
	if left.IsComptime() && right.IsComptime() {
		widened, _ := types.WidenBinary(left, right)
		return widened, true
	}
	if left.IsComptime() && !right.IsComptime() {
		return right, true
	}
	if right.IsComptime() && !left.IsComptime() {
		return left, true
	}
	if types.Equal(left, right) {
		return left, true
	}
	a.reporter.Add(errors.NewMixedConcreteRequiresExplicit(left.String(), right.String(), pos))
	return types.Unknown, false
}

// implicitConvError picks the taxonomy tag that best matches an implicit
// conversion failure (spec section 4.5's "insert an implicit conversion
// per section 3.2 when needed; reject otherwise").
func (a *Analyzer) implicitConvError(source, target *types.Type, pos ast.Position) *errors.Diagnostic {
	if source.Kind == types.KindComptimeFloat && target.IsInteger() {
		return errors.NewUnsafeImplicitConversion(source.String(), target.String(), pos)
	}
	if source.IsBool() || target.IsBool() || source.IsString() || target.IsString() {
		return errors.NewNonsensicalConversion(source.String(), target.String(), pos)
	}
	if !source.IsArray() && !target.IsArray() && !source.IsComptime() && !target.IsComptime() &&
		source.IsNumeric() && target.IsNumeric() {
		return errors.NewMixedConcreteRequiresExplicit(source.String(), target.String(), pos)
	}
	if source.IsArray() && target.IsArray() {
		count, _ := source.ElementCount()
		return errors.NewArrayShapeMismatch(count, target.String(), pos)
	}
	return errors.NewTypeMismatch(target.String(), source.String(), pos)
}

// reconcileArrayShape resolves an already-computed array type against a
// target type that may itself carry an inferred dimension on either side
// (spec sections 4.7/4.8 generalized beyond function-argument matching to
// declaration annotations, reassignment targets and return types: a `_`
// may appear in the already-declared annotation just as easily as in the
// freshly-computed value, e.g. a loop-as-expression result, which this
// analyzer always types with an inferred leading dimension). Equal-rank,
// equal-element-type arrays reconcile dimension by dimension: a concrete
// dimension on either side wins; two concrete dimensions must agree; two
// inferred dimensions stay inferred.
func reconcileArrayShape(computed, target *types.Type) (*types.Type, bool) {
	if !computed.IsArray() || !target.IsArray() {
		return nil, false
	}
	if !types.Equal(computed.Elem, target.Elem) || len(computed.Dims) != len(target.Dims) {
		return nil, false
	}
	dims := make([]types.Dim, len(target.Dims))
	for i, td := range target.Dims {
		cd := computed.Dims[i]
		switch {
		case !td.Inferred && !cd.Inferred:
			if td.Size != cd.Size {
				return nil, false
			}
			dims[i] = td
		case !td.Inferred:
			dims[i] = td
		case !cd.Inferred:
			dims[i] = cd
		default:
			dims[i] = types.InferredDim()
		}
	}
	return types.Array(target.Elem, dims), true
}

// resolveArrayOrConvert decides whether valType can supply target: for two
// array types it reconciles inferred dimensions on either side
// (reconcileArrayShape) rather than demanding an exact match; otherwise it
// falls back to the scalar implicit-conversion rules. Returns the type to
// bind/compare against and whether valType was compatible at all.
func (a *Analyzer) resolveArrayOrConvert(valType, target *types.Type) (*types.Type, bool) {
	if valType.IsArray() && target.IsArray() {
		return reconcileArrayShape(valType, target)
	}
	if conv := types.CheckConvert(valType, target, false); conv.OK {
		return target, true
	}
	return nil, false
}

// requireArrayCopy is the unconditional half of spec section 3.4's
// explicit-copy rule: a concrete array flowing into a function argument
// or a loop/block production must already be `expr[..]` (or a fresh
// value — a literal, a call result, a conversion, or a comptime array)
// with no "only when shape changes" exception, unlike the initializer
// rule in declaration.go. Reports whether it added a diagnostic, so
// callers can skip any further shape checks over the same expression
// rather than piling a second error on top (spec section 7's propagation
// policy).
func (a *Analyzer) requireArrayCopy(expr ast.Expr, t *types.Type, pos ast.Position) bool {
	if t.IsUnknown() || !t.IsArray() {
		return false
	}
	if a.isExemptArraySource(expr, t) {
		return false
	}
	a.reporter.Add(errors.NewMissingExplicitArrayCopy(pos))
	return true
}

// isExemptArraySource reports whether expr is a "fresh" array value that
// never needed `[..]` in the first place (spec section 3.4: "Comptime
// arrays and fresh array literals are exempt... they are being
// materialized, not copied"). t is expr's already-analyzed (and possibly
// comptime-materialized) type; an Identifier is checked against its own
// symbol's declared type, since materialization may have already turned a
// comptime array reference concrete by the time t is observed here.
func (a *Analyzer) isExemptArraySource(expr ast.Expr, t *types.Type) bool {
	if t.Kind == types.KindComptimeArray {
		return true
	}
	switch n := expr.(type) {
	case *ast.ArrayLit, *ast.ArrayCopy, *ast.Call, *ast.Conversion, *ast.ForIn:
		return true
	case *ast.Identifier:
		if sym := a.table.Lookup(n.Name); sym != nil && sym.Type != nil && sym.Type.Kind == types.KindComptimeArray {
			return true
		}
	}
	return false
}

func (a *Analyzer) declareSymbol(name string, t *types.Type, mut symbols.Mutability, initialized bool, pos ast.Position, isLoopVar bool) {
	sym := &symbols.Symbol{
		Name: name, Type: t, Mutability: mut, Initialized: initialized, DeclPos: pos, IsLoopVar: isLoopVar,
	}
	if !a.table.Declare(sym) {
		a.reporter.Add(errors.NewDuplicateDeclaration(name, pos))
	}
}

// rootArraySymbol walks a chain of array accesses/copies down to the
// identifier it's rooted at, for element-assignment mutability checks
// (spec section 4.5, "a must be a mut array-typed symbol or a sub-access
// path rooted at one").
func (a *Analyzer) rootArraySymbol(e ast.Expr) (string, *symbols.Symbol) {
	for {
		switch n := e.(type) {
		case *ast.Identifier:
			return n.Name, a.table.Lookup(n.Name)
		case *ast.ArrayAccess:
			e = n.Array
		case *ast.ArrayCopy:
			e = n.Array
		default:
			return "", nil
		}
	}
}

// analyzeStmt dispatches one statement node to its analyzer.
func (a *Analyzer) analyzeStmt(s ast.Stmt) {
	switch n := s.(type) {
	case nil:
	case *ast.BadStmt:
		// Already reported by the parser.
	case *ast.ExprStmt:
		a.analyzeExpr(n.Expr, nil)
	case *ast.ValDecl:
		a.analyzeValDecl(n)
	case *ast.MutDecl:
		a.analyzeMutDecl(n)
	case *ast.Assign:
		a.analyzeAssign(n)
	case *ast.ElementAssign:
		a.analyzeElementAssign(n)
	case *ast.Return:
		a.analyzeReturn(n)
	case *ast.Produce:
		a.analyzeProduce(n)
	case *ast.If:
		a.analyzeIf(n)
	case *ast.ForIn:
		a.analyzeForInStmt(n)
	case *ast.While:
		a.analyzeWhile(n)
	case *ast.Break:
		a.analyzeBreak(n)
	case *ast.Continue:
		a.analyzeContinue(n)
	case *ast.LabeledStmt:
		a.analyzeLabeledStmt(n)
	case *ast.StmtBlock:
		a.analyzeStmtBlock(n)
	}
}

func (a *Analyzer) analyzeProduce(n *ast.Produce) {
	frame, ok := a.currentProduce()
	if !ok {
		a.reporter.Add(errors.NewProduceOutsideExpressionBlock(n.Pos))
		a.analyzeExpr(n.Value, nil)
		return
	}
	t := a.analyzeExpr(n.Value, frame.target)
	a.requireArrayCopy(n.Value, t, n.Value.NodePos())
}
