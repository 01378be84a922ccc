package parser

import (
	"github.com/sable-lang/sable/internal/ast"
	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/lexer"
)

// parseMatchExpr parses the postfix match construct: "subject match { arms }".
// Registered as an infix at postfix precedence so any primary or call chain
// can be a subject. cur is the match keyword on entry and '}' on exit.
func (p *Parser) parseMatchExpr(subject ast.Expr) ast.Expr {
	start := subject.Span()

	if !p.expectSkipNewlines(lexer.LBRACE) {
		return nil
	}

	var arms []*ast.MatchArm
	seenDefault := false

	p.nextSkipNewlines()
	for p.cur.Kind != lexer.RBRACE && p.cur.Kind != lexer.EOF && p.fatal == nil {
		prev := p.cur

		arm := p.parseMatchArm()
		if arm == nil {
			p.recoverMatchArm(prev)
			continue
		}

		if arm.IsDefault {
			if seenDefault {
				p.reportWarning(diag.CodeParserDuplicateDefault,
					"match already has a default arm; this arm is unreachable", arm.Span())
			}
			seenDefault = true
		}
		arms = append(arms, arm)

		// Arms are separated by commas, line breaks, or both.
		switch p.peek.Kind {
		case lexer.COMMA:
			p.nextToken()
			p.nextSkipNewlines()
		case lexer.NEWLINE:
			p.nextSkipNewlines()
		case lexer.RBRACE, lexer.EOF:
			p.nextToken()
		default:
			p.reportError("expected ',' or newline after match arm", p.peek.Span)
			p.nextToken()
		}
	}

	if p.cur.Kind != lexer.RBRACE {
		p.reportExpected("}", p.cur)
		return nil
	}

	return ast.NewMatchExpr(subject, arms, mergeSpan(start, p.cur.Span))
}

// parseMatchArm parses "pattern[, pattern...] => body". The wildcard '_'
// marks a default arm. The body is a single expression or a block.
func (p *Parser) parseMatchArm() *ast.MatchArm {
	start := p.cur.Span
	end := p.cur.Span

	var patterns []ast.Expr
	isDefault := false

	for {
		switch {
		case p.cur.Kind == lexer.UNDERSCORE:
			isDefault = true
			end = p.cur.Span
		case p.cur.Kind == lexer.IDENT && !p.cur.IsQualified() && p.peek.Kind == lexer.FATARROW:
			// An identifier directly before '=>' is this arm's pattern, not a
			// lambda parameter.
			patterns = append(patterns, ast.NewIdent(p.cur.Text, p.cur.Span))
			end = p.cur.Span
		default:
			pat := p.parseExpr()
			if pat == nil {
				return nil
			}
			patterns = append(patterns, pat)
			end = p.cur.Span
		}

		if p.peek.Kind != lexer.COMMA {
			break
		}
		p.nextToken() // ','
		p.nextSkipNewlines()
	}

	if !p.expectSkipNewlines(lexer.FATARROW) {
		return nil
	}

	p.nextSkipNewlines()

	var body ast.Expr
	if p.cur.Kind == lexer.LBRACE {
		body = p.parseBlock()
	} else {
		body = p.parseExpr()
	}
	if body == nil {
		return nil
	}

	return ast.NewMatchArm(patterns, body, isDefault, mergeSpan(start, mergeSpan(end, body.Span())))
}

// recoverMatchArm seeks the next arm boundary after a malformed arm.
func (p *Parser) recoverMatchArm(prev lexer.Token) {
	if sameTokenPosition(p.cur, prev) {
		p.nextToken()
	}

	for p.cur.Kind != lexer.EOF {
		switch p.cur.Kind {
		case lexer.COMMA:
			p.nextSkipNewlines()
			return
		case lexer.NEWLINE:
			p.skipNewlines()
			return
		case lexer.RBRACE:
			return
		}
		p.nextToken()
	}
}
