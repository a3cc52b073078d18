package parser

import (
	"strconv"

	"hexen/internal/ast"
	"hexen/internal/token"
)

// parseTypeExpr parses a type annotation: zero or more leading array
// dimensions `[N]` / `[_]`, followed by a primitive type name.
func (p *Parser) parseTypeExpr() *ast.TypeExpr {
	start := p.peek().Pos
	var dims []ast.Dim
	for p.check(token.LBRACKET) {
		p.advance()
		if p.check(token.UNDERSCORE) {
			p.advance()
			dims = append(dims, ast.Dim{Inferred: true})
		} else {
			tok := p.consume(token.INT, "expected array size or '_'")
			size, _ := strconv.Atoi(tok.Lexeme)
			dims = append(dims, ast.Dim{Size: size})
		}
		p.consume(token.RBRACKET, "expected ']' after array dimension")
	}
	name := p.consume(token.IDENT, "expected a type name")
	return &ast.TypeExpr{Pos: start, EndPos: p.previous().EndPos, Name: name.Lexeme, Dims: dims}
}
