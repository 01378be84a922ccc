package parser

import (
	"strings"

	"github.com/sable-lang/sable/internal/ast"
	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/lexer"
)

func (p *Parser) parseExpr() ast.Expr {
	return p.parseExprPrecedence(precedenceLowest)
}

// parseExprPrecedence is the precedence climbing loop. cur is the first token
// of the expression on entry and the last token on exit.
func (p *Parser) parseExprPrecedence(precedence int) ast.Expr {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	prefix := p.prefixFns[p.cur.Kind]
	if prefix == nil {
		p.reportNoPrefix(p.cur)
		return nil
	}

	left := prefix()
	if left == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixFns[p.peek.Kind]
		if infix == nil {
			return left
		}

		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}

	return left
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek.Kind]; ok {
		return prec
	}
	return precedenceLowest
}

func (p *Parser) parseIdentifier() ast.Expr {
	tok := p.cur

	if p.peek.Kind == lexer.FATARROW && !tok.IsQualified() {
		return p.parseLambdaShorthand()
	}

	if tok.IsQualified() {
		return ast.NewQualifiedIdent(tok.Text, tok.Span)
	}
	return ast.NewIdent(tok.Text, tok.Span)
}

func (p *Parser) parseNumberLiteral() ast.Expr {
	return ast.NewNumberLit(p.cur.Text, p.cur.Span)
}

func (p *Parser) parseBoolLiteral() ast.Expr {
	return ast.NewBoolLit(p.cur.Kind == lexer.TRUE, p.cur.Span)
}

func (p *Parser) parseNullLiteral() ast.Expr {
	return ast.NewNullLit(p.cur.Span)
}

func (p *Parser) parseThisExpr() ast.Expr {
	return ast.NewThisExpr(p.cur.Span)
}

func (p *Parser) parsePrefixExpr() ast.Expr {
	op := p.cur.Kind
	start := p.cur.Span

	p.nextToken()

	operand := p.parseExprPrecedence(precedencePrefix)
	if operand == nil {
		return nil
	}

	return ast.NewUnaryExpr(op, operand, false, mergeSpan(start, operand.Span()))
}

func (p *Parser) parsePostfixExpr(left ast.Expr) ast.Expr {
	return ast.NewUnaryExpr(p.cur.Kind, left, true, mergeSpan(left.Span(), p.cur.Span))
}

func (p *Parser) parseBinaryExpr(left ast.Expr) ast.Expr {
	op := p.cur.Kind
	prec := precedences[op]

	p.nextSkipNewlines()

	right := p.parseExprPrecedence(prec)
	if right == nil {
		return nil
	}

	return ast.NewBinaryExpr(op, left, right, mergeSpan(left.Span(), right.Span()))
}

func isAssignable(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.Ident, *ast.QualifiedIdent, *ast.MemberExpr, *ast.IndexExpr:
		return true
	default:
		return false
	}
}

// parseAssignExpr handles plain and compound assignment. Right-associative:
// "a = b = c" groups as "a = (b = c)".
func (p *Parser) parseAssignExpr(left ast.Expr) ast.Expr {
	op := p.cur.Kind

	if !isAssignable(left) {
		p.reportErrorCode(diag.CodeParserInvalidAssignment,
			"left side of assignment is not assignable", left.Span())
	}

	p.nextSkipNewlines()

	value := p.parseExprPrecedence(precedenceAssign - 1)
	if value == nil {
		return nil
	}

	return ast.NewAssignExpr(op, left, value, mergeSpan(left.Span(), value.Span()))
}

func (p *Parser) parseRangeExpr(left ast.Expr) ast.Expr {
	exclusive := p.cur.Kind == lexer.RANGE_EXCL

	p.nextSkipNewlines()

	high := p.parseExprPrecedence(precedenceRange)
	if high == nil {
		return nil
	}

	return ast.NewRangeExpr(left, high, exclusive, mergeSpan(left.Span(), high.Span()))
}

// parseCallExpr parses the argument list of a call; cur is '(' on entry and
// ')' on exit.
func (p *Parser) parseCallExpr(callee ast.Expr) ast.Expr {
	p.nextSkipNewlines()

	args, ok := p.parseExprList(lexer.RPAREN)
	if !ok {
		return nil
	}

	return ast.NewCallExpr(callee, args, mergeSpan(callee.Span(), p.cur.Span))
}

func (p *Parser) parseExprList(closing lexer.TokenKind) ([]ast.Expr, bool) {
	result, ok := parseDelimited(p, delimitedConfig{
		Closing:           closing,
		AllowEmpty:        true,
		AllowTrailing:     true,
		MissingElementMsg: "expected expression",
	}, func(int) (ast.Expr, bool) {
		expr := p.parseExpr()
		return expr, expr != nil
	})
	return result.Items, ok
}

// parseIndexExpr parses "xs[i]" and the slice form "xs[1..3]".
func (p *Parser) parseIndexExpr(left ast.Expr) ast.Expr {
	p.nextSkipNewlines()

	index := p.parseExpr()
	if index == nil {
		return nil
	}

	if !p.expectSkipNewlines(lexer.RBRACKET) {
		return nil
	}

	span := mergeSpan(left.Span(), p.cur.Span)
	if rng, ok := index.(*ast.RangeExpr); ok {
		return ast.NewSliceExpr(left, rng, span)
	}
	return ast.NewIndexExpr(left, index, span)
}

// parseMemberExpr parses ".name" and the null-conditional "?.name". The
// lexer may have folded the trailing name into a dotted token
// ("foo().bar.baz" arrives as ".bar.baz"); each segment becomes its own
// member access so Member is always a single-segment Ident.
func (p *Parser) parseMemberExpr(left ast.Expr) ast.Expr {
	safe := p.cur.Kind == lexer.SAFE_DOT

	if !p.expect(lexer.IDENT) {
		return nil
	}

	tok := p.cur
	expr := left
	offset := 0
	for i, seg := range strings.Split(tok.Text, ".") {
		span := tok.Span
		span.Column += offset
		span.Start += offset
		span.End = span.Start + len([]rune(seg))

		member := ast.NewIdent(seg, span)
		expr = ast.NewMemberExpr(expr, member, safe && i == 0, mergeSpan(left.Span(), span))
		offset += len([]rune(seg)) + 1
	}
	return expr
}

func (p *Parser) parseArrayLit() ast.Expr {
	start := p.cur.Span

	p.nextSkipNewlines()

	elems, ok := p.parseExprList(lexer.RBRACKET)
	if !ok {
		return nil
	}

	return ast.NewArrayLit(elems, mergeSpan(start, p.cur.Span))
}

// parseNewExpr parses "new Type(args)", the generic form "new List<int>()",
// and the sized array form "new int[5]".
func (p *Parser) parseNewExpr() ast.Expr {
	start := p.cur.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}

	typ := p.parseTypeRefFromCur()
	if typ == nil {
		return nil
	}

	var args []ast.Expr

	switch p.peek.Kind {
	case lexer.LPAREN:
		p.nextToken()
		p.nextSkipNewlines()
		var ok bool
		args, ok = p.parseExprList(lexer.RPAREN)
		if !ok {
			return nil
		}
	case lexer.LBRACKET:
		p.nextToken()
		p.nextSkipNewlines()
		size := p.parseExpr()
		if size == nil {
			return nil
		}
		if !p.expectSkipNewlines(lexer.RBRACKET) {
			return nil
		}
		typ = ast.NewTypeRef(typ.Name+"[]", typ.Args, typ.Span())
		args = append(args, size)
	}

	return ast.NewNewExpr(typ, args, mergeSpan(start, p.cur.Span))
}

// parseGroupedOrLambda disambiguates "(expr)" from "(params) => body" by
// scanning ahead to the matching ')' and checking for '=>'.
func (p *Parser) parseGroupedOrLambda() ast.Expr {
	if p.lparenStartsLambda() {
		return p.parseLambdaExpr()
	}

	p.nextSkipNewlines()

	expr := p.parseExpr()
	if expr == nil {
		return nil
	}

	if !p.expectSkipNewlines(lexer.RPAREN) {
		return nil
	}

	return expr
}

// lparenStartsLambda reports whether the '(' at cur opens a lambda parameter
// list. The scan is bounded by the matching ')'.
func (p *Parser) lparenStartsLambda() bool {
	depth := 1
	for n := 1; ; n++ {
		tok := p.peekAt(n)
		switch tok.Kind {
		case lexer.LPAREN:
			depth++
		case lexer.RPAREN:
			depth--
			if depth == 0 {
				return p.peekAt(n+1).Kind == lexer.FATARROW
			}
		case lexer.EOF:
			return false
		}
	}
}

// parseLambdaShorthand parses the single-parameter form "x => body"; cur is
// the parameter identifier.
func (p *Parser) parseLambdaShorthand() ast.Expr {
	start := p.cur.Span
	param := ast.NewParam(ast.NewIdent(p.cur.Text, p.cur.Span), nil, nil, p.cur.Span)

	p.nextToken() // '=>'

	body := p.parseLambdaBody()
	if body == nil {
		return nil
	}

	return ast.NewLambdaExpr([]*ast.Param{param}, body, mergeSpan(start, body.Span()))
}

// parseLambdaExpr parses "(a, b) => body"; cur is '(' on entry.
func (p *Parser) parseLambdaExpr() ast.Expr {
	start := p.cur.Span

	p.nextSkipNewlines()

	params, ok := p.parseParamList(lexer.RPAREN)
	if !ok {
		return nil
	}

	if !p.expect(lexer.FATARROW) {
		return nil
	}

	body := p.parseLambdaBody()
	if body == nil {
		return nil
	}

	return ast.NewLambdaExpr(params, body, mergeSpan(start, body.Span()))
}

func (p *Parser) parseLambdaBody() ast.Expr {
	p.nextSkipNewlines()

	if p.cur.Kind == lexer.LBRACE {
		return p.parseBlock()
	}
	return p.parseExpr()
}
