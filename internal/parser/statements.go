package parser

import (
	"github.com/gologo/turtlelogo/internal/ast"
	"github.com/gologo/turtlelogo/internal/langerr"
	"github.com/gologo/turtlelogo/internal/token"
)

// aliases maps the short command spellings to their canonical name
// (spec.md §4.2); dispatch always runs on the resolved canonical form.
var aliases = map[string]string{
	"fd": "forward", "bk": "back", "rt": "right", "lt": "left",
	"pu": "penup", "pd": "pendown", "pc": "pencolor", "ps": "pensize",
	"cs": "clearscreen", "ht": "hideturtle", "st": "showturtle",
	"seth": "setheading", "bf": "butfirst", "bl": "butlast", "op": "output",
}

func resolveAlias(w string) string {
	if full, ok := aliases[w]; ok {
		return full
	}
	return w
}

// parseStatement parses exactly one statement. Every statement begins
// with a Word token; the word is lowercased and alias-resolved, then
// dispatched against the fixed command set. A word matching none of
// them is a user-procedure Call, whose arguments are collected greedily
// (spec.md §4.2).
func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.cur()
	if tok.Kind != token.WORD {
		return nil, langerr.New(langerr.Parse, tok.Pos, "expected a statement keyword, got %s", tok)
	}
	p.advance()
	name := resolveAlias(lower(tok.Value))
	pos := tok.Pos

	switch name {
	case "forward":
		return p.parseMove(pos, ast.Forward)
	case "back":
		return p.parseMove(pos, ast.Back)
	case "right":
		return p.parseMove(pos, ast.Right)
	case "left":
		return p.parseMove(pos, ast.Left)

	case "penup", "pendown", "home", "clearscreen", "hideturtle", "showturtle":
		return &ast.Simple{Base: ast.Base{At: pos}, Name: name}, nil

	case "pencolor":
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.PenColor{Base: ast.Base{At: pos}, Arg: arg}, nil

	case "pensize":
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.PenSize{Base: ast.Base{At: pos}, Arg: arg}, nil

	case "setxy":
		x, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		y, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.SetXY{Base: ast.Base{At: pos}, X: x, Y: y}, nil

	case "setx":
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.SetX{Base: ast.Base{At: pos}, Arg: arg}, nil

	case "sety":
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.SetY{Base: ast.Base{At: pos}, Arg: arg}, nil

	case "setheading":
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.SetHeading{Base: ast.Base{At: pos}, Arg: arg}, nil

	case "circle":
		r, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Circle{Base: ast.Base{At: pos}, R: r}, nil

	case "arc":
		a, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		r, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Arc{Base: ast.Base{At: pos}, A: a, R: r}, nil

	case "repeat":
		count, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBracketBlock()
		if err != nil {
			return nil, err
		}
		return &ast.Repeat{Base: ast.Base{At: pos}, Count: count, Body: body}, nil

	case "while":
		cond, err := p.parseCondBlock()
		if err != nil {
			return nil, err
		}
		body, err := p.parseBracketBlock()
		if err != nil {
			return nil, err
		}
		return &ast.While{Base: ast.Base{At: pos}, Cond: cond, Body: body}, nil

	case "for":
		return p.parseFor(pos)

	case "if":
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		then, err := p.parseBracketBlock()
		if err != nil {
			return nil, err
		}
		return &ast.If{Base: ast.Base{At: pos}, Cond: cond, Then: then}, nil

	case "ifelse":
		cond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		then, err := p.parseBracketBlock()
		if err != nil {
			return nil, err
		}
		els, err := p.parseBracketBlock()
		if err != nil {
			return nil, err
		}
		return &ast.IfElse{Base: ast.Base{At: pos}, Cond: cond, Then: then, Else: els}, nil

	case "to":
		return p.parseDefine(pos)

	case "stop":
		return &ast.Stop{Base: ast.Base{At: pos}}, nil

	case "output":
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Output{Base: ast.Base{At: pos}, Value: val}, nil

	case "make":
		nameTok, err := p.expect(token.STRING, "a quoted variable name")
		if err != nil {
			return nil, err
		}
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Make{Base: ast.Base{At: pos}, Name: nameTok.Value, Value: val}, nil

	case "local":
		nameTok, err := p.expect(token.STRING, "a quoted variable name")
		if err != nil {
			return nil, err
		}
		return &ast.Local{Base: ast.Base{At: pos}, Name: nameTok.Value}, nil

	case "print":
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Print{Base: ast.Base{At: pos}, Value: val}, nil

	case "type":
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Type{Base: ast.Base{At: pos}, Value: val}, nil

	case "show":
		val, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		return &ast.Show{Base: ast.Base{At: pos}, Value: val}, nil

	default:
		args, err := p.collectArgs()
		if err != nil {
			return nil, err
		}
		return &ast.Call{Base: ast.Base{At: pos}, Name: name, Args: args}, nil
	}
}

func (p *Parser) parseMove(pos token.Position, kind ast.MoveKind) (ast.Statement, error) {
	arg, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ast.Move{Base: ast.Base{At: pos}, Kind: kind, Arg: arg}, nil
}

// parseFor parses `for "VAR START END (STEP)? BLOCK` (spec.md §4.2). The
// presence of STEP is detected by checking whether the token following
// END is itself a `[`: if it is, there is no STEP; otherwise the next
// expression is STEP and the `[` comes after it.
func (p *Parser) parseFor(pos token.Position) (ast.Statement, error) {
	varTok, err := p.expect(token.STRING, "a quoted loop variable name")
	if err != nil {
		return nil, err
	}
	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	end, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	var step ast.Expression
	if p.cur().Kind != token.LBRACKET {
		step, err = p.parseExpression()
		if err != nil {
			return nil, err
		}
	}
	body, err := p.parseBracketBlock()
	if err != nil {
		return nil, err
	}
	return &ast.For{Base: ast.Base{At: pos}, Var: varTok.Value, Start: start, End: end, Step: step, Body: body}, nil
}

// parseDefine parses `to NAME :p1 :p2 ... STATEMENTS end` (spec.md §4.2).
// The body runs until the next top-level Word `end`; nested definitions
// are not supported (spec.md §4.2 leaves this undefined, so encountering
// a second `to` before `end` is reported as a parse error here).
func (p *Parser) parseDefine(pos token.Position) (ast.Statement, error) {
	nameTok, err := p.expect(token.WORD, "a procedure name")
	if err != nil {
		return nil, err
	}
	name := lower(nameTok.Value)

	var params []string
	for p.cur().Kind == token.PARAM {
		params = append(params, p.advance().Value)
	}

	var body []ast.Statement
	p.skipNewlines()
	for {
		if p.atEOF() {
			return nil, langerr.New(langerr.Parse, p.cur().Pos, "missing 'end' for procedure %s", name)
		}
		if p.cur().Kind == token.WORD && lower(p.cur().Value) == "end" {
			p.advance()
			break
		}
		if p.cur().Kind == token.WORD && lower(p.cur().Value) == "to" {
			return nil, langerr.New(langerr.Parse, p.cur().Pos, "nested procedure definitions are not supported")
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
		p.skipNewlines()
	}
	return &ast.Define{Base: ast.Base{At: pos}, Name: name, Params: params, Body: body}, nil
}
