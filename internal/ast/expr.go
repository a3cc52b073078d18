package ast

// Expr is implemented by every expression node in the tree.
type Expr interface {
	Node
	exprNode()
}

// BadExpr is a recovery placeholder produced by the parser when an
// expression could not be parsed; the analyzer treats it as Unknown without
// emitting a further diagnostic (see spec section 7, propagation policy).
type BadExpr struct {
	Pos    Position
	EndPos Position
	Reason string
}

// Identifier references a symbol by name.
type Identifier struct {
	Pos    Position
	EndPos Position
	Name   string
}

// IntLit is an integer literal; Value is kept as source text so arbitrarily
// large literals can still be range-checked against the target type.
type IntLit struct {
	Pos    Position
	EndPos Position
	Value  string
}

// FloatLit is a floating point literal.
type FloatLit struct {
	Pos    Position
	EndPos Position
	Value  string
}

// BoolLit is `true` or `false`.
type BoolLit struct {
	Pos    Position
	EndPos Position
	Value  bool
}

// StrLit is a string literal; Value has already had escapes resolved.
type StrLit struct {
	Pos    Position
	EndPos Position
	Value  string
}

// Undef is the `undef` initializer, legal only for `mut` declarations.
type Undef struct {
	Pos    Position
	EndPos Position
}

// BinaryOp enumerates the operators accepted by Binary.
type BinaryOp string

const (
	OpAdd BinaryOp = "+"
	OpSub BinaryOp = "-"
	OpMul BinaryOp = "*"
	OpMod BinaryOp = "%"
	OpFDiv BinaryOp = "/"  // float division
	OpIDiv BinaryOp = "\\" // integer division

	OpLt BinaryOp = "<"
	OpGt BinaryOp = ">"
	OpLe BinaryOp = "<="
	OpGe BinaryOp = ">="
	OpEq BinaryOp = "=="
	OpNe BinaryOp = "!="

	OpAnd BinaryOp = "&&"
	OpOr  BinaryOp = "||"
)

// Binary is any two-operand arithmetic, comparison or logical expression.
type Binary struct {
	Pos    Position
	EndPos Position
	Op     BinaryOp
	Left   Expr
	Right  Expr
}

// UnaryOp enumerates the operators accepted by Unary.
type UnaryOp string

const (
	OpNeg UnaryOp = "-"
	OpNot UnaryOp = "!"
)

// Unary is a single-operand prefix expression.
type Unary struct {
	Pos     Position
	EndPos  Position
	Op      UnaryOp
	Operand Expr
}

// Conversion is the `expr:T` syntax (scalar or array shape conversion).
type Conversion struct {
	Pos        Position
	EndPos     Position
	Expr       Expr
	TargetType *TypeExpr
}

// ArrayLit is an array literal `[e1, e2, ...]`, possibly nested for
// multidimensional shapes.
type ArrayLit struct {
	Pos      Position
	EndPos   Position
	Elements []Expr
}

// ArrayAccess is `array[index]`.
type ArrayAccess struct {
	Pos    Position
	EndPos Position
	Array  Expr
	Index  Expr
}

// ArrayCopy is the explicit-copy operator `array[..]`.
type ArrayCopy struct {
	Pos    Position
	EndPos Position
	Array  Expr
}

// PropertyAccess is `object.name`; the only legal name today is `length`.
type PropertyAccess struct {
	Pos    Position
	EndPos Position
	Object Expr
	Name   string
}

// RangeExpr is `lo..hi`, `lo..=hi`, optionally `..step`; Hi is nil for an
// unbounded range (`lo..`).
type RangeExpr struct {
	Pos       Position
	EndPos    Position
	Lo        Expr
	Hi        Expr // nil => unbounded
	Inclusive bool
	Step      Expr // nil => default step of 1
}

// Call is a function call `callee(args...)`.
type Call struct {
	Pos    Position
	EndPos Position
	Callee string // Hexen has no first-class function values; callee is a name
	Args   []Expr
}

// ExprBlock is a brace-delimited block appearing in a value position. It
// must be analyzed with a required type already known (spec section 4.6).
type ExprBlock struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// StmtBlock is a brace-delimited block appearing as a statement; it
// produces no value.
type StmtBlock struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

// A for-in loop used in a value position (loop-as-expression, spec section
// 4.9) has no separate expression node: the statement node ForIn (declared
// in stmt.go) also implements Expr, and its ExprBody field marks the
// value-position form. While is a statement only.

func (*BadExpr) exprNode()         {}
func (*Identifier) exprNode()      {}
func (*IntLit) exprNode()          {}
func (*FloatLit) exprNode()        {}
func (*BoolLit) exprNode()         {}
func (*StrLit) exprNode()          {}
func (*Undef) exprNode()           {}
func (*Binary) exprNode()          {}
func (*Unary) exprNode()           {}
func (*Conversion) exprNode()      {}
func (*ArrayLit) exprNode()        {}
func (*ArrayAccess) exprNode()     {}
func (*ArrayCopy) exprNode()       {}
func (*PropertyAccess) exprNode()  {}
func (*RangeExpr) exprNode()       {}
func (*Call) exprNode()            {}
func (*ExprBlock) exprNode()       {}
func (*ForIn) exprNode()           {}
func (*IfExpr) exprNode()          {}

func (n *BadExpr) NodePos() Position         { return n.Pos }
func (n *BadExpr) NodeEndPos() Position      { return n.EndPos }
func (n *Identifier) NodePos() Position      { return n.Pos }
func (n *Identifier) NodeEndPos() Position   { return n.EndPos }
func (n *IntLit) NodePos() Position          { return n.Pos }
func (n *IntLit) NodeEndPos() Position       { return n.EndPos }
func (n *FloatLit) NodePos() Position        { return n.Pos }
func (n *FloatLit) NodeEndPos() Position     { return n.EndPos }
func (n *BoolLit) NodePos() Position         { return n.Pos }
func (n *BoolLit) NodeEndPos() Position      { return n.EndPos }
func (n *StrLit) NodePos() Position          { return n.Pos }
func (n *StrLit) NodeEndPos() Position       { return n.EndPos }
func (n *Undef) NodePos() Position           { return n.Pos }
func (n *Undef) NodeEndPos() Position        { return n.EndPos }
func (n *Binary) NodePos() Position          { return n.Pos }
func (n *Binary) NodeEndPos() Position       { return n.EndPos }
func (n *Unary) NodePos() Position           { return n.Pos }
func (n *Unary) NodeEndPos() Position        { return n.EndPos }
func (n *Conversion) NodePos() Position      { return n.Pos }
func (n *Conversion) NodeEndPos() Position   { return n.EndPos }
func (n *ArrayLit) NodePos() Position        { return n.Pos }
func (n *ArrayLit) NodeEndPos() Position     { return n.EndPos }
func (n *ArrayAccess) NodePos() Position     { return n.Pos }
func (n *ArrayAccess) NodeEndPos() Position  { return n.EndPos }
func (n *ArrayCopy) NodePos() Position       { return n.Pos }
func (n *ArrayCopy) NodeEndPos() Position    { return n.EndPos }
func (n *PropertyAccess) NodePos() Position    { return n.Pos }
func (n *PropertyAccess) NodeEndPos() Position { return n.EndPos }
func (n *RangeExpr) NodePos() Position       { return n.Pos }
func (n *RangeExpr) NodeEndPos() Position    { return n.EndPos }
func (n *Call) NodePos() Position            { return n.Pos }
func (n *Call) NodeEndPos() Position         { return n.EndPos }
func (n *ExprBlock) NodePos() Position       { return n.Pos }
func (n *ExprBlock) NodeEndPos() Position    { return n.EndPos }

// IfExpr is `if cond { ... } else { ... }` used in a value position: both
// branches are ExprBlocks whose produced values must unify with the
// required context (spec section 4.6 / section 8.3 boundary behavior).
type IfExpr struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   *ExprBlock
	Else   *ExprBlock // always set by the parser, which reports a missing `else`
}

func (n *IfExpr) NodePos() Position    { return n.Pos }
func (n *IfExpr) NodeEndPos() Position { return n.EndPos }
