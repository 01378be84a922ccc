package parser

import (
	"github.com/sable-lang/sable/internal/ast"
	"github.com/sable-lang/sable/internal/lexer"
)

// parseStmt dispatches on the current token. Like every parse function it
// returns with cur on the construct's last token; nil signals a syntax error
// already reported to the sink.
func (p *Parser) parseStmt() ast.Stmt {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	switch p.cur.Kind {
	case lexer.VAR, lexer.LET, lexer.CONST:
		return p.parseVarStmt()
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.FOR:
		return p.parseForStmt()
	case lexer.LOOP:
		return p.parseLoopStmt()
	case lexer.UNTIL:
		return p.parseUntilStmt()
	case lexer.RETURN:
		return p.parseReturnStmt()
	case lexer.BREAK:
		stmt := ast.NewBreakStmt(p.cur.Span)
		return stmt
	case lexer.CONTINUE:
		stmt := ast.NewContinueStmt(p.cur.Span)
		return stmt
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.FUNC, lexer.CLASS, lexer.STRUCT, lexer.INTERFACE, lexer.ENUM,
		lexer.NAMESPACE, lexer.IMPORT, lexer.TYPE,
		lexer.PUBLIC, lexer.PRIVATE, lexer.STATIC, lexer.READONLY:
		return p.parseDecl()
	case lexer.LBRACKET:
		if p.lbracketStartsAttribute() {
			return p.parseDecl()
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseExprStmt parses an expression evaluated as a statement. A match used
// this way becomes a MatchStmt, the switch-like statement form.
func (p *Parser) parseExprStmt() ast.Stmt {
	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	if m, ok := expr.(*ast.MatchExpr); ok {
		return ast.NewMatchStmt(m, m.Span())
	}

	return ast.NewExprStmt(expr, expr.Span())
}

// parseSimpleStmt parses the restricted statement forms allowed in a for
// header: a variable binding or an expression.
func (p *Parser) parseSimpleStmt() ast.Stmt {
	switch p.cur.Kind {
	case lexer.VAR, lexer.LET, lexer.CONST:
		return p.parseVarStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseVarStmt parses "var name [: Type] [= value]" and the let/const forms.
func (p *Parser) parseVarStmt() ast.Stmt {
	keyword := p.cur.Kind
	start := p.cur.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}
	name := ast.NewIdent(p.cur.Text, p.cur.Span)
	end := p.cur.Span

	var typ *ast.TypeRef
	if p.peek.Kind == lexer.COLON {
		p.nextToken()
		if !p.expect(lexer.IDENT) {
			return nil
		}
		typ = p.parseTypeRefFromCur()
		if typ == nil {
			return nil
		}
		end = p.cur.Span
	}

	var value ast.Expr
	if p.peek.Kind == lexer.ASSIGN {
		p.nextToken()
		p.nextSkipNewlines()
		value = p.parseExpr()
		if value == nil {
			return nil
		}
		end = p.cur.Span
	}

	return ast.NewVarStmt(keyword, name, typ, value, mergeSpan(start, end))
}

// parseBlock parses a brace-delimited statement list; cur is '{' on entry and
// '}' on exit. A syntax error inside the block synchronizes and continues
// with the next statement.
func (p *Parser) parseBlock() *ast.BlockExpr {
	start := p.cur.Span
	block := ast.NewBlockExpr(nil, start)

	p.nextToken()
	p.skipNewlines()

	for p.cur.Kind != lexer.RBRACE && p.cur.Kind != lexer.EOF && p.fatal == nil {
		prev := p.cur

		stmt := p.parseStmt()
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
			p.endStatement()
		} else {
			p.recoverStatement(prev)
		}

		p.skipNewlines()
	}

	if p.cur.Kind != lexer.RBRACE {
		p.reportExpected("}", p.cur)
		block.SetSpan(mergeSpan(start, p.cur.Span))
		return block
	}

	block.SetSpan(mergeSpan(start, p.cur.Span))
	return block
}

// parseBlockAfter expects '{' at the next significant token and parses the
// block.
func (p *Parser) parseBlockAfter() *ast.BlockExpr {
	if !p.expectSkipNewlines(lexer.LBRACE) {
		return nil
	}
	return p.parseBlock()
}

func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.cur.Span

	p.nextToken()

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}

	then := p.parseBlockAfter()
	if then == nil {
		return nil
	}

	end := then.Span()

	var els ast.Stmt
	if p.peekPastNewlines().Kind == lexer.ELSE {
		p.nextSkipNewlines() // onto 'else'

		if p.peek.Kind == lexer.IF {
			p.nextToken()
			els = p.parseIfStmt()
			if els == nil {
				return nil
			}
		} else {
			block := p.parseBlockAfter()
			if block == nil {
				return nil
			}
			els = block
		}
		end = els.Span()
	}

	return ast.NewIfStmt(cond, then, els, mergeSpan(start, end))
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.cur.Span

	p.nextToken()

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}

	body := p.parseBlockAfter()
	if body == nil {
		return nil
	}

	return ast.NewWhileStmt(cond, body, mergeSpan(start, body.Span()))
}

func (p *Parser) parseUntilStmt() ast.Stmt {
	start := p.cur.Span

	p.nextToken()

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}

	body := p.parseBlockAfter()
	if body == nil {
		return nil
	}

	return ast.NewUntilStmt(cond, body, mergeSpan(start, body.Span()))
}

func (p *Parser) parseLoopStmt() ast.Stmt {
	start := p.cur.Span

	body := p.parseBlockAfter()
	if body == nil {
		return nil
	}

	return ast.NewLoopStmt(body, mergeSpan(start, body.Span()))
}

// parseForStmt parses both loop forms, with or without header parentheses:
// "for x in xs { }" and "for init; cond; post { }". The for-in form is
// recognized by the 'in' keyword after the loop variable.
func (p *Parser) parseForStmt() ast.Stmt {
	start := p.cur.Span

	hasParens := p.peek.Kind == lexer.LPAREN
	if hasParens {
		p.nextToken()
	}
	p.nextSkipNewlines()

	if p.cur.Kind == lexer.IDENT && !p.cur.IsQualified() && p.peek.Kind == lexer.IN {
		return p.parseForInStmt(start, hasParens)
	}

	var init ast.Stmt
	if p.cur.Kind != lexer.SEMICOLON {
		init = p.parseSimpleStmt()
		if init == nil {
			return nil
		}
		if !p.expect(lexer.SEMICOLON) {
			return nil
		}
	}
	p.nextSkipNewlines()

	var cond ast.Expr
	if p.cur.Kind != lexer.SEMICOLON {
		cond = p.parseExpr()
		if cond == nil {
			return nil
		}
		if !p.expect(lexer.SEMICOLON) {
			return nil
		}
	}
	p.nextSkipNewlines()

	closing := lexer.LBRACE
	if hasParens {
		closing = lexer.RPAREN
	}

	var post ast.Stmt
	if p.cur.Kind != closing {
		post = p.parseSimpleStmt()
		if post == nil {
			return nil
		}
	}

	var body *ast.BlockExpr
	if hasParens {
		if p.cur.Kind != lexer.RPAREN && !p.expectSkipNewlines(lexer.RPAREN) {
			return nil
		}
		body = p.parseBlockAfter()
	} else if post == nil && p.cur.Kind == lexer.LBRACE {
		body = p.parseBlock()
	} else {
		body = p.parseBlockAfter()
	}
	if body == nil {
		return nil
	}

	return ast.NewForStmt(init, cond, post, body, mergeSpan(start, body.Span()))
}

func (p *Parser) parseForInStmt(start lexer.Span, hasParens bool) ast.Stmt {
	v := ast.NewIdent(p.cur.Text, p.cur.Span)

	p.nextToken() // 'in'
	p.nextSkipNewlines()

	iterable := p.parseExpr()
	if iterable == nil {
		return nil
	}

	if hasParens && !p.expectSkipNewlines(lexer.RPAREN) {
		return nil
	}

	body := p.parseBlockAfter()
	if body == nil {
		return nil
	}

	return ast.NewForInStmt(v, iterable, body, mergeSpan(start, body.Span()))
}

// parseReturnStmt parses "return" with an optional same-line value.
func (p *Parser) parseReturnStmt() ast.Stmt {
	start := p.cur.Span

	switch p.peek.Kind {
	case lexer.NEWLINE, lexer.SEMICOLON, lexer.RBRACE, lexer.EOF:
		return ast.NewReturnStmt(nil, start)
	}

	p.nextToken()

	value := p.parseExpr()
	if value == nil {
		return nil
	}

	return ast.NewReturnStmt(value, mergeSpan(start, value.Span()))
}
