package parser

import (
	"github.com/wisplang/wisp/internal/ast"
	"github.com/wisplang/wisp/internal/object"
	"github.com/wisplang/wisp/internal/token"
)

// parseExpression parses a full expression via precedence climbing:
// or (1) < and (2) < comparisons (3) < +/- (4) < * / (5), with `not`
// and primaries (literals, parenthesized expressions, dotted
// identifier paths, calls) binding tighter than any binary operator.
func (p *Parser) parseExpression() (object.Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return p.parseBinaryRest(left, 0)
}

func (p *Parser) parseUnary() (object.Node, error) {
	if p.cur.Type == token.NOT {
		pos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.Not{Pos: pos, Operand: operand}, nil
	}
	return p.parsePrimary()
}

// parseBinaryRest extends left with any binary operators whose
// precedence is at least minPrec, recursing on the right-hand operand
// with minPrec raised to bind tighter operators before returning to a
// looser caller (standard precedence climbing; every operator here is
// left-associative).
func (p *Parser) parseBinaryRest(left object.Node, minPrec int) (object.Node, error) {
	for {
		prec, build, ok := opInfo(p.cur)
		if !ok || prec < minPrec {
			return left, nil
		}
		pos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		right, err = p.parseBinaryRest(right, prec+1)
		if err != nil {
			return nil, err
		}
		left = build(pos, left, right)
	}
}

func opInfo(tok token.Token) (prec int, build func(pos token.Position, left, right object.Node) object.Node, ok bool) {
	switch tok.Type {
	case token.OR:
		return 1, logicalBuilder(ast.LogicalOr), true
	case token.AND:
		return 2, logicalBuilder(ast.LogicalAnd), true
	case token.EQ:
		return 3, comparisonBuilder(ast.CmpEqual), true
	case token.NOTEQ:
		return 3, comparisonBuilder(ast.CmpNotEqual), true
	case token.LESSOREQ:
		return 3, comparisonBuilder(ast.CmpLessOrEqual), true
	case token.GREATEROREQ:
		return 3, comparisonBuilder(ast.CmpGreaterOrEqual), true
	case token.CHAR:
		switch tok.Ch {
		case '<':
			return 3, comparisonBuilder(ast.CmpLess), true
		case '>':
			return 3, comparisonBuilder(ast.CmpGreater), true
		case '+':
			return 4, arithBuilder(ast.Add), true
		case '-':
			return 4, arithBuilder(ast.Sub), true
		case '*':
			return 5, arithBuilder(ast.Mult), true
		case '/':
			return 5, arithBuilder(ast.Div), true
		}
	}
	return 0, nil, false
}

func logicalBuilder(op ast.LogicalOp) func(token.Position, object.Node, object.Node) object.Node {
	return func(pos token.Position, left, right object.Node) object.Node {
		return &ast.Logical{Pos: pos, Op: op, Left: left, Right: right}
	}
}

func comparisonBuilder(op ast.CompareOp) func(token.Position, object.Node, object.Node) object.Node {
	return func(pos token.Position, left, right object.Node) object.Node {
		return &ast.Comparison{Pos: pos, Op: op, Left: left, Right: right}
	}
}

func arithBuilder(op ast.ArithOp) func(token.Position, object.Node, object.Node) object.Node {
	return func(pos token.Position, left, right object.Node) object.Node {
		return &ast.Arithmetic{Pos: pos, Op: op, Left: left, Right: right}
	}
}

// parsePrimary parses a literal, parenthesized expression, or a
// dotted identifier path (variable reference, call, or method call).
func (p *Parser) parsePrimary() (object.Node, error) {
	switch p.cur.Type {
	case token.NUMBER:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.NumberLiteral{Pos: tok.Pos, Value: tok.Num}, nil
	case token.STRING:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StringLiteral{Pos: tok.Pos, Value: tok.Str}, nil
	case token.TRUE:
		pos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.BoolLiteral{Pos: pos, Value: true}, nil
	case token.FALSE:
		pos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.BoolLiteral{Pos: pos, Value: false}, nil
	case token.NONE:
		pos := p.cur.Pos
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.NoneLiteral{Pos: pos}, nil
	case token.ID:
		pos := p.cur.Pos
		path := []string{p.cur.Str}
		if err := p.advance(); err != nil {
			return nil, err
		}
		for p.isChar('.') {
			if err := p.advance(); err != nil {
				return nil, err
			}
			idTok, err := p.expect(token.ID)
			if err != nil {
				return nil, err
			}
			path = append(path, idTok.Str)
		}
		return p.parsePostfixFromPath(pos, path)
	case token.CHAR:
		if p.cur.Ch == '(' {
			if err := p.advance(); err != nil {
				return nil, err
			}
			expr, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			if err := p.expectChar(')'); err != nil {
				return nil, err
			}
			return expr, nil
		}
	}
	return nil, p.errf("unexpected token %s in expression", p.cur.Dump())
}

// parsePostfixFromPath resolves an already-scanned dotted identifier
// path: if it is immediately followed by '(' it is a call — str(x) is
// Stringify, a single bare name is NewInstance, and a dotted path is a
// MethodCall on the path's prefix. Otherwise the path is a plain
// VariableValue reference.
func (p *Parser) parsePostfixFromPath(pos token.Position, path []string) (object.Node, error) {
	if !p.isChar('(') {
		return &ast.VariableValue{Pos: pos, Path: path}, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}

	if len(path) == 1 {
		if path[0] == "str" {
			if len(args) != 1 {
				return nil, p.errf("str() takes exactly one argument, got %d", len(args))
			}
			return &ast.Stringify{Pos: pos, X: args[0]}, nil
		}
		return &ast.NewInstance{Pos: pos, ClassName: path[0], Args: args}, nil
	}

	receiver := object.Node(&ast.VariableValue{Pos: pos, Path: path[:len(path)-1]})
	return &ast.MethodCall{Pos: pos, Receiver: receiver, Name: path[len(path)-1], Args: args}, nil
}

func (p *Parser) parseArgs() ([]object.Node, error) {
	var args []object.Node
	if p.isChar(')') {
		return args, p.advance()
	}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.isChar(',') {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	return args, p.expectChar(')')
}
