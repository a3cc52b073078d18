package ast

// Program is the root node: a sequence of top-level function declarations
// (spec section 3.7, Program(items)).
type Program struct {
	Pos     Position
	EndPos  Position
	Funcs   []*FuncDecl
}

func (n *Program) NodePos() Position    { return n.Pos }
func (n *Program) NodeEndPos() Position { return n.EndPos }

// Param is one function parameter: `name: T` or `mut name: T`.
type Param struct {
	Pos    Position
	EndPos Position
	Name   string
	Mut    bool
	Type   *TypeExpr
}

func (n *Param) NodePos() Position    { return n.Pos }
func (n *Param) NodeEndPos() Position { return n.EndPos }

// FuncDecl is `func name(params) : RET = { body }`. Return is nil for a
// void function.
type FuncDecl struct {
	Pos    Position
	EndPos Position
	Name   string
	Params []*Param
	Return *TypeExpr // nil => void
	Body   *FuncBody
}

func (n *FuncDecl) NodePos() Position    { return n.Pos }
func (n *FuncDecl) NodeEndPos() Position { return n.EndPos }

// FuncBody is the brace-delimited function body: a sequence of statements
// analyzed with the function's return type as the block's context (spec
// section 4.6, role 1).
type FuncBody struct {
	Pos    Position
	EndPos Position
	Stmts  []Stmt
}

func (n *FuncBody) NodePos() Position    { return n.Pos }
func (n *FuncBody) NodeEndPos() Position { return n.EndPos }
