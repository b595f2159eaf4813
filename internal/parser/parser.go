// Package parser turns a turtle-Logo token stream into the statement list
// internal/ast defines (spec.md §4.2): recursive-descent statement
// dispatch plus one recursive-descent method per precedence level, sharing one
// "does this token start an expression" predicate between the two, as
// spec.md §9 requires.
//
// Grounded on the teacher's Parser (parser.go: current/peek token
// lookahead, an Errors-accumulating style loosened here to fail-fast
// since turtle-Logo programs are short scripts, not files worth partial
// diagnostics for) and its per-concern file split (parser_statements.go,
// parser_expressions.go, parser_loops.go, parser_precedence.go).
package parser

import (
	"github.com/gologo/turtlelogo/internal/ast"
	"github.com/gologo/turtlelogo/internal/langerr"
	"github.com/gologo/turtlelogo/internal/lexer"
	"github.com/gologo/turtlelogo/internal/token"
)

// Parser walks a fully-tokenized program. Tokenizing up front (rather
// than pulling from the lexer one token at a time, as the teacher does)
// keeps lookahead trivial.
type Parser struct {
	toks []token.Token
	pos  int
}

// Parse tokenizes and parses src into a top-level statement list.
func Parse(src string) ([]ast.Statement, error) {
	toks, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &Parser{toks: toks}
	return p.parseProgram()
}

// New builds a Parser directly from an already-tokenized stream, for
// callers that want to inspect lexing and parsing separately.
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// ParseProgram is the exported entry point for a Parser built with New.
func (p *Parser) ParseProgram() ([]ast.Statement, error) {
	return p.parseProgram()
}

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[p.pos]
}

func (p *Parser) peekAt(offset int) token.Token {
	i := p.pos + offset
	if i >= len(p.toks) {
		return token.Token{Kind: token.EOF}
	}
	return p.toks[i]
}

func (p *Parser) advance() token.Token {
	t := p.cur()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *Parser) atEOF() bool {
	return p.cur().Kind == token.EOF
}

// skipNewlines consumes any run of NEWLINE tokens; newlines separate
// lines but never terminate a statement (spec.md §4.2).
func (p *Parser) skipNewlines() {
	for p.cur().Kind == token.NEWLINE {
		p.advance()
	}
}

// expect consumes the current token if it has kind k, else reports a
// ParseError at its position.
func (p *Parser) expect(k token.Kind, what string) (token.Token, error) {
	if p.cur().Kind != k {
		return token.Token{}, langerr.New(langerr.Parse, p.cur().Pos, "expected %s, got %s", what, p.cur())
	}
	return p.advance(), nil
}

// expectWord consumes the current token if it is a WORD whose lowercase
// form equals w.
func (p *Parser) expectWord(w string) error {
	if p.cur().Kind != token.WORD || lower(p.cur().Value) != w {
		return langerr.New(langerr.Parse, p.cur().Pos, "expected %q, got %s", w, p.cur())
	}
	p.advance()
	return nil
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// parseProgram parses statements until the token stream is exhausted.
func (p *Parser) parseProgram() ([]ast.Statement, error) {
	var stmts []ast.Statement
	p.skipNewlines()
	for !p.atEOF() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	return stmts, nil
}

// parseBracketBlock parses a `[` statement* `]` block, used by
// repeat/if/ifelse/for/while bodies and procedure-free grouping.
func (p *Parser) parseBracketBlock() ([]ast.Statement, error) {
	if _, err := p.expect(token.LBRACKET, "'['"); err != nil {
		return nil, err
	}
	var stmts []ast.Statement
	p.skipNewlines()
	for p.cur().Kind != token.RBRACKET {
		if p.atEOF() {
			return nil, langerr.New(langerr.Parse, p.cur().Pos, "unclosed '[' block")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		p.skipNewlines()
	}
	p.advance() // ']'
	return stmts, nil
}

// parseCondBlock parses the `while` condition form: `[` expr `]`.
func (p *Parser) parseCondBlock() (ast.Expression, error) {
	if _, err := p.expect(token.LBRACKET, "'['"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RBRACKET, "']'"); err != nil {
		return nil, err
	}
	return expr, nil
}

// startsExpression reports whether the current token can begin an
// expression, the single predicate spec.md §9 requires be shared between
// statement-level greedy argument collection and expression-level
// function-call argument collection.
func (p *Parser) startsExpression() bool {
	t := p.cur()
	switch t.Kind {
	case token.NUMBER, token.STRING, token.PARAM, token.LBRACKET, token.LPAREN:
		return true
	case token.OPERATOR:
		return t.Value == "-"
	default:
		return false
	}
}

// collectArgs greedily parses expressions while the current token starts
// one, used for `list`, statement-level procedure calls, and
// expression-level user-function calls (spec.md §4.2, §9).
func (p *Parser) collectArgs() ([]ast.Expression, error) {
	var args []ast.Expression
	for p.startsExpression() {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}
