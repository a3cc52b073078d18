package lexer

import (
	"testing"

	"hexen/internal/token"

	"github.com/stretchr/testify/assert"
)

func kinds(toks []Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	source := "val mut undef func return if else for in while break continue true false customIdent"
	expected := []token.Kind{
		token.KW_VAL, token.KW_MUT, token.KW_UNDEF, token.KW_FUNC, token.KW_RETURN,
		token.KW_IF, token.KW_ELSE, token.KW_FOR, token.KW_IN, token.KW_WHILE,
		token.KW_BREAK, token.KW_CONTINUE, token.KW_TRUE, token.KW_FALSE, token.IDENT,
		token.EOF,
	}

	toks := New("test.hxn", source).ScanAll()
	assert.Equal(t, expected, kinds(toks))
}

func TestNumbers(t *testing.T) {
	source := "42 0 1_000 3.14 0.5"
	expected := []token.Kind{
		token.INT, token.INT, token.INT, token.FLOAT, token.FLOAT, token.EOF,
	}

	toks := New("test.hxn", source).ScanAll()
	assert.Equal(t, expected, kinds(toks))
}

func TestStringLiteralWithEscapes(t *testing.T) {
	lex := New("test.hxn", `"hello\nworld"`)
	toks := lex.ScanAll()
	assert.Equal(t, token.STRING, toks[0].Kind)
	assert.Equal(t, "hello\nworld", toks[0].Lexeme)
	assert.Empty(t, lex.Errors)
}

func TestUnterminatedStringProducesError(t *testing.T) {
	lex := New("test.hxn", `"hello`)
	lex.ScanAll()
	assert.NotEmpty(t, lex.Errors)
}

func TestRangeOperatorsDoNotSwallowFloats(t *testing.T) {
	// A range immediately after an integer must not be lexed as a float:
	// "1..10" is INT DOTDOT INT, never FLOAT DOT INT.
	toks := New("test.hxn", "1..10").ScanAll()
	assert.Equal(t, []token.Kind{token.INT, token.DOTDOT, token.INT, token.EOF}, kinds(toks))
}

func TestInclusiveRangeOperator(t *testing.T) {
	toks := New("test.hxn", "1..=10").ScanAll()
	assert.Equal(t, []token.Kind{token.INT, token.DOTDOTEQ, token.INT, token.EOF}, kinds(toks))
}

func TestArrowAndUnderscoreWildcard(t *testing.T) {
	toks := New("test.hxn", "-> [_]i32").ScanAll()
	assert.Equal(t, token.ARROW, toks[0].Kind)
	assert.Equal(t, token.LBRACKET, toks[1].Kind)
	assert.Equal(t, token.UNDERSCORE, toks[2].Kind)
}

func TestSkipsCommentsAndWhitespace(t *testing.T) {
	source := "val x // trailing comment\n= 1;"
	toks := New("test.hxn", source).ScanAll()
	assert.Equal(t, []token.Kind{
		token.KW_VAL, token.IDENT, token.ASSIGN, token.INT, token.SEMI, token.EOF,
	}, kinds(toks))
}
