package parser

import (
	"strconv"

	"github.com/gologo/turtlelogo/internal/ast"
	"github.com/gologo/turtlelogo/internal/langerr"
	"github.com/gologo/turtlelogo/internal/token"
)

// The expression grammar is written out as one recursive-descent method
// per precedence level (spec.md §4.2's seven-row table), lowest first,
// rather than a single generic climbing loop: `and`/`or`/`not` are
// keywords (lexed as Word tokens, not Operator), so a table-driven
// climber would need a second lookup path anyway. Grounded loosely on
// the teacher's parser_precedence.go, which takes the same per-level
// approach for its own (larger) operator set.

var reporterNames = map[string]bool{
	"xcor": true, "ycor": true, "heading": true, "pendown?": true,
}

var oneArgBuiltins = map[string]bool{
	"sqrt": true, "abs": true, "int": true, "round": true,
	"sin": true, "cos": true, "tan": true,
	"first": true, "last": true, "butfirst": true, "butlast": true,
	"count": true, "thing": true, "random": true,
}

var twoArgBuiltins = map[string]bool{
	"sum": true, "difference": true, "product": true, "quotient": true,
	"remainder": true, "power": true, "item": true, "word": true,
	"towards": true, "fput": true, "lput": true, "sentence": true,
}

var variadicBuiltins = map[string]bool{
	"list": true, "atan": true,
}

// parseExpression parses a full expression at the lowest precedence
// level (`or`).
func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.WORD && lower(p.cur().Value) == "or" {
		pos := p.advance().Pos
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Base: ast.Base{At: pos}, Op: "or", Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.WORD && lower(p.cur().Value) == "and" {
		pos := p.advance().Pos
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Base: ast.Base{At: pos}, Op: "and", Left: left, Right: right}
	}
	return left, nil
}

var comparisonOps = map[string]bool{"=": true, "<": true, ">": true, "<=": true, ">=": true, "<>": true}

// parseComparison allows at most one comparison operator: spec.md §4.2
// marks this level "non-chained (single comparison only)".
func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind == token.OPERATOR && comparisonOps[p.cur().Value] {
		tok := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &ast.Binary{Base: ast.Base{At: tok.Pos}, Op: tok.Value, Left: left, Right: right}, nil
	}
	return left, nil
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.OPERATOR && (p.cur().Value == "+" || p.cur().Value == "-") {
		tok := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Base: ast.Base{At: tok.Pos}, Op: tok.Value, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur().Kind == token.OPERATOR && (p.cur().Value == "*" || p.cur().Value == "/" || p.cur().Value == "%") {
		tok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Base: ast.Base{At: tok.Pos}, Op: tok.Value, Left: left, Right: right}
	}
	return left, nil
}

// parseUnary handles the two right-associative prefix operators.
func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.cur().Kind == token.OPERATOR && p.cur().Value == "-" {
		pos := p.advance().Pos
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Neg{Base: ast.Base{At: pos}, X: x}, nil
	}
	if p.cur().Kind == token.WORD && lower(p.cur().Value) == "not" {
		pos := p.advance().Pos
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Base: ast.Base{At: pos}, X: x}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.cur()
	switch tok.Kind {
	case token.NUMBER:
		p.advance()
		v, err := strconv.ParseFloat(tok.Value, 64)
		if err != nil {
			return nil, langerr.New(langerr.Parse, tok.Pos, "invalid number literal %q", tok.Value)
		}
		return &ast.NumberLit{Base: ast.Base{At: tok.Pos}, Value: v}, nil

	case token.STRING:
		p.advance()
		return &ast.TextLit{Base: ast.Base{At: tok.Pos}, Value: tok.Value}, nil

	case token.PARAM:
		p.advance()
		return &ast.Var{Base: ast.Base{At: tok.Pos}, Name: tok.Value}, nil

	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return expr, nil

	case token.LBRACKET:
		return p.parseListLiteral()

	case token.WORD:
		return p.parseWordExpression()
	}
	return nil, langerr.New(langerr.Parse, tok.Pos, "unexpected token %s in expression position", tok)
}

// parseWordExpression resolves a bareword in expression position to a
// reporter, a fixed- or variable-arity builtin call, or a user-function
// call (spec.md §4.2, §4.3).
func (p *Parser) parseWordExpression() (ast.Expression, error) {
	tok := p.advance()
	name := lower(tok.Value)

	switch {
	case reporterNames[name]:
		return &ast.Reporter{Base: ast.Base{At: tok.Pos}, Name: name}, nil

	case oneArgBuiltins[name]:
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.BuiltinCall{Base: ast.Base{At: tok.Pos}, Name: name, Args: []ast.Expression{arg}}, nil

	case twoArgBuiltins[name]:
		a, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		b, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.BuiltinCall{Base: ast.Base{At: tok.Pos}, Name: name, Args: []ast.Expression{a, b}}, nil

	case variadicBuiltins[name]:
		args, err := p.collectArgs()
		if err != nil {
			return nil, err
		}
		return &ast.BuiltinCall{Base: ast.Base{At: tok.Pos}, Name: name, Args: args}, nil

	default:
		args, err := p.collectArgs()
		if err != nil {
			return nil, err
		}
		return &ast.FunCall{Base: ast.Base{At: tok.Pos}, Name: name, Args: args}, nil
	}
}

// parseListLiteral parses `[...]` in expression position (spec.md §4.2):
// numbers as numbers, parameters evaluated at construction time, bare
// words as Text atoms rather than calls, nested lists recursively.
func (p *Parser) parseListLiteral() (ast.Expression, error) {
	open := p.advance() // '['
	var items []ast.Expression
	for p.cur().Kind != token.RBRACKET {
		tok := p.cur()
		switch tok.Kind {
		case token.NUMBER:
			p.advance()
			v, err := strconv.ParseFloat(tok.Value, 64)
			if err != nil {
				return nil, langerr.New(langerr.Parse, tok.Pos, "invalid number literal %q", tok.Value)
			}
			items = append(items, &ast.NumberLit{Base: ast.Base{At: tok.Pos}, Value: v})
		case token.PARAM:
			p.advance()
			items = append(items, &ast.Var{Base: ast.Base{At: tok.Pos}, Name: tok.Value})
		case token.WORD, token.STRING:
			p.advance()
			items = append(items, &ast.TextLit{Base: ast.Base{At: tok.Pos}, Value: tok.Value})
		case token.LBRACKET:
			nested, err := p.parseListLiteral()
			if err != nil {
				return nil, err
			}
			items = append(items, nested)
		case token.EOF, token.NEWLINE:
			return nil, langerr.New(langerr.Parse, tok.Pos, "unclosed '[' list literal")
		default:
			return nil, langerr.New(langerr.Parse, tok.Pos, "unexpected token %s in list literal", tok)
		}
	}
	p.advance() // ']'
	_ = open
	return &ast.ListLit{Base: ast.Base{At: open.Pos}, Items: items}, nil
}
