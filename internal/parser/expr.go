package parser

import (
	"hexen/internal/ast"
	"hexen/internal/lexer"
	"hexen/internal/token"
)

// parseExpr is the entry point for expression parsing: range binds loosest
// (spec section 3.7, Range), then the usual logical/relational/arithmetic
// ladder, then unary, then postfix member/index/conversion suffixes.
func (p *Parser) parseExpr() ast.Expr {
	return p.parseRange()
}

func (p *Parser) parseRange() ast.Expr {
	lo := p.parseLogicalOr()
	if !p.check(token.DOTDOT) && !p.check(token.DOTDOTEQ) {
		return lo
	}
	start := lo.NodePos()
	inclusive := p.check(token.DOTDOTEQ)
	p.advance()

	var hi ast.Expr
	if canStartExpr(p.peek().Kind) {
		hi = p.parseLogicalOr()
	}
	var step ast.Expr
	if p.match(token.DOTDOT) {
		step = p.parseLogicalOr()
	}
	end := p.previous().EndPos
	return &ast.RangeExpr{Pos: start, EndPos: end, Lo: lo, Hi: hi, Inclusive: inclusive, Step: step}
}

func (p *Parser) parseLogicalOr() ast.Expr {
	left := p.parseLogicalAnd()
	for p.check(token.OROR) {
		p.advance()
		right := p.parseLogicalAnd()
		left = &ast.Binary{Pos: left.NodePos(), EndPos: right.NodeEndPos(), Op: ast.OpOr, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	left := p.parseEquality()
	for p.check(token.ANDAND) {
		p.advance()
		right := p.parseEquality()
		left = &ast.Binary{Pos: left.NodePos(), EndPos: right.NodeEndPos(), Op: ast.OpAnd, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseRelational()
	for p.check(token.EQEQ) || p.check(token.NE) {
		op := ast.OpEq
		if p.peek().Kind == token.NE {
			op = ast.OpNe
		}
		p.advance()
		right := p.parseRelational()
		left = &ast.Binary{Pos: left.NodePos(), EndPos: right.NodeEndPos(), Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseRelational() ast.Expr {
	left := p.parseAdditive()
	for {
		var op ast.BinaryOp
		switch p.peek().Kind {
		case token.LT:
			op = ast.OpLt
		case token.GT:
			op = ast.OpGt
		case token.LE:
			op = ast.OpLe
		case token.GE:
			op = ast.OpGe
		default:
			return left
		}
		p.advance()
		right := p.parseAdditive()
		left = &ast.Binary{Pos: left.NodePos(), EndPos: right.NodeEndPos(), Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.check(token.PLUS) || p.check(token.MINUS) {
		op := ast.OpAdd
		if p.peek().Kind == token.MINUS {
			op = ast.OpSub
		}
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.Binary{Pos: left.NodePos(), EndPos: right.NodeEndPos(), Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for {
		var op ast.BinaryOp
		switch p.peek().Kind {
		case token.STAR:
			op = ast.OpMul
		case token.SLASH:
			op = ast.OpFDiv
		case token.BACKSLASH:
			op = ast.OpIDiv
		case token.PERCENT:
			op = ast.OpMod
		default:
			return left
		}
		p.advance()
		right := p.parseUnary()
		left = &ast.Binary{Pos: left.NodePos(), EndPos: right.NodeEndPos(), Op: op, Left: left, Right: right}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	if p.check(token.MINUS) || p.check(token.BANG) {
		start := p.peek().Pos
		op := ast.OpNeg
		if p.peek().Kind == token.BANG {
			op = ast.OpNot
		}
		p.advance()
		operand := p.parseUnary()
		return &ast.Unary{Pos: start, EndPos: operand.NodeEndPos(), Op: op, Operand: operand}
	}
	return p.parsePostfix(p.parsePrimary())
}

// parsePostfix applies `.name`, `[expr]`, `[..]` and `:T` suffixes, which all
// chain freely (spec section 3.7: Conversion/ArrayAccess/ArrayCopy/PropertyAccess).
func (p *Parser) parsePostfix(expr ast.Expr) ast.Expr {
	for {
		switch {
		case p.check(token.DOT):
			p.advance()
			name := p.consume(token.IDENT, "expected a property name after '.'")
			expr = &ast.PropertyAccess{Pos: expr.NodePos(), EndPos: name.EndPos, Object: expr, Name: name.Lexeme}
		case p.check(token.LBRACKET):
			p.advance()
			if p.check(token.DOTDOT) && p.checkAt(1, token.RBRACKET) {
				p.advance()
				end := p.advance().EndPos
				expr = &ast.ArrayCopy{Pos: expr.NodePos(), EndPos: end, Array: expr}
				continue
			}
			idx := p.parseExpr()
			end := p.consume(token.RBRACKET, "expected ']' after array index").EndPos
			expr = &ast.ArrayAccess{Pos: expr.NodePos(), EndPos: end, Array: expr, Index: idx}
		case p.check(token.COLON):
			p.advance()
			t := p.parseTypeExpr()
			expr = &ast.Conversion{Pos: expr.NodePos(), EndPos: t.EndPos, Expr: expr, TargetType: t}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.peek()
	switch tok.Kind {
	case token.INT:
		p.advance()
		return &ast.IntLit{Pos: tok.Pos, EndPos: tok.EndPos, Value: tok.Lexeme}
	case token.FLOAT:
		p.advance()
		return &ast.FloatLit{Pos: tok.Pos, EndPos: tok.EndPos, Value: tok.Lexeme}
	case token.STRING:
		p.advance()
		return &ast.StrLit{Pos: tok.Pos, EndPos: tok.EndPos, Value: tok.Lexeme}
	case token.KW_TRUE:
		p.advance()
		return &ast.BoolLit{Pos: tok.Pos, EndPos: tok.EndPos, Value: true}
	case token.KW_FALSE:
		p.advance()
		return &ast.BoolLit{Pos: tok.Pos, EndPos: tok.EndPos, Value: false}
	case token.KW_UNDEF:
		p.advance()
		return &ast.Undef{Pos: tok.Pos, EndPos: tok.EndPos}
	case token.IDENT:
		p.advance()
		if p.check(token.LPAREN) {
			return p.finishCall(tok)
		}
		return &ast.Identifier{Pos: tok.Pos, EndPos: tok.EndPos, Name: tok.Lexeme}
	case token.LPAREN:
		p.advance()
		inner := p.parseExpr()
		p.consume(token.RPAREN, "expected ')' after expression")
		return inner
	case token.LBRACKET:
		return p.parseArrayLit()
	case token.LBRACE:
		return p.parseExprBlock()
	case token.KW_IF:
		return p.parseIfExpr()
	case token.KW_FOR:
		return p.parseForExpr()
	default:
		p.errorAtCurrent("expected an expression")
		p.advance()
		return &ast.BadExpr{Pos: tok.Pos, EndPos: tok.EndPos, Reason: "unexpected token"}
	}
}

func (p *Parser) finishCall(name lexer.Token) ast.Expr {
	p.advance() // '('
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		args = append(args, p.parseExpr())
		for p.match(token.COMMA) {
			args = append(args, p.parseExpr())
		}
	}
	end := p.consume(token.RPAREN, "expected ')' after arguments").EndPos
	return &ast.Call{Pos: name.Pos, EndPos: end, Callee: name.Lexeme, Args: args}
}

func (p *Parser) parseArrayLit() ast.Expr {
	start := p.consume(token.LBRACKET, "expected '['").Pos
	var elems []ast.Expr
	if !p.check(token.RBRACKET) {
		elems = append(elems, p.parseExpr())
		for p.match(token.COMMA) {
			elems = append(elems, p.parseExpr())
		}
	}
	end := p.consume(token.RBRACKET, "expected ']' after array literal").EndPos
	return &ast.ArrayLit{Pos: start, EndPos: end, Elements: elems}
}

func (p *Parser) parseIfExpr() ast.Expr {
	start := p.consume(token.KW_IF, "expected 'if'").Pos
	cond := p.parseExpr()
	then := p.parseExprBlockNode()
	p.consume(token.KW_ELSE, "an `if` used as a value requires an `else` branch")
	elseBlock := p.parseExprBlockNode()
	return &ast.IfExpr{Pos: start, EndPos: elseBlock.EndPos, Cond: cond, Then: then, Else: elseBlock}
}

func (p *Parser) parseForExpr() ast.Expr {
	start := p.consume(token.KW_FOR, "expected 'for'").Pos
	name := p.consume(token.IDENT, "expected a loop variable name")
	var varType *ast.TypeExpr
	if p.match(token.COLON) {
		varType = p.parseTypeExpr()
	}
	p.consume(token.KW_IN, "expected 'in' after loop variable")
	iter := p.parseExpr()
	body := p.parseExprBlockNode()
	return &ast.ForIn{Pos: start, EndPos: body.EndPos, Var: name.Lexeme, VarType: varType, Iter: iter, ExprBody: body}
}

// parseExprBlock parses a `{ ... }` block used directly as a primary
// expression (e.g. `val a : i32 = { ... }`).
func (p *Parser) parseExprBlock() ast.Expr {
	return p.parseExprBlockNode()
}

func (p *Parser) parseExprBlockNode() *ast.ExprBlock {
	start := p.consume(token.LBRACE, "expected '{'").Pos
	stmts := p.parseStmtsUntilRBrace()
	end := p.consume(token.RBRACE, "expected '}'").EndPos
	return &ast.ExprBlock{Pos: start, EndPos: end, Stmts: stmts}
}
