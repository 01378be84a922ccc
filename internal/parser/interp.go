package parser

import (
	"strings"

	"github.com/sable-lang/sable/internal/ast"
	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/lexer"
)

// parseStringLiteral turns a string token into a plain literal or, when it
// contains "{expr}" holes, an interpolated literal. The lexer passes brace
// runs through untouched; decomposition happens here so hole expressions get
// the full expression grammar.
func (p *Parser) parseStringLiteral() ast.Expr {
	tok := p.cur

	if !strings.ContainsAny(tok.Value, "{}") {
		return ast.NewStringLit(tok.Value, tok.Span)
	}

	parts := p.decomposeString(tok)

	hasExpr := false
	for _, part := range parts {
		if part.Expr != nil {
			hasExpr = true
			break
		}
	}
	if !hasExpr {
		// Only escaped braces: collapse back to a plain literal.
		var b strings.Builder
		for _, part := range parts {
			b.WriteString(part.Text)
		}
		return ast.NewStringLit(b.String(), tok.Span)
	}

	return ast.NewInterpolatedStringLit(parts, tok.Span)
}

// decomposeString splits the decoded string value into literal and expression
// parts. "{{" and "}}" are brace escapes; "{expr[:format]}" is a hole.
func (p *Parser) decomposeString(tok lexer.Token) []ast.InterpPart {
	var parts []ast.InterpPart
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			parts = append(parts, ast.InterpPart{Text: text.String()})
			text.Reset()
		}
	}

	value := []rune(tok.Value)
	for i := 0; i < len(value); i++ {
		ch := value[i]

		switch {
		case ch == '{' && i+1 < len(value) && value[i+1] == '{':
			text.WriteRune('{')
			i++
		case ch == '}' && i+1 < len(value) && value[i+1] == '}':
			text.WriteRune('}')
			i++
		case ch == '{':
			end := findHoleEnd(value, i+1)
			if end < 0 {
				p.reportErrorCode(diag.CodeParserBadInterpolation,
					"unterminated '{' in interpolated string", tok.Span)
				text.WriteString(string(value[i:]))
				i = len(value)
				break
			}

			hole := string(value[i+1 : end])
			if strings.TrimSpace(hole) == "" {
				p.reportErrorCode(diag.CodeParserBadInterpolation,
					"empty interpolation hole", tok.Span)
				i = end
				break
			}

			exprText, format := splitFormat(hole)

			flush()
			expr := p.parseHoleExpr(exprText, tok.Span, i+1)
			if expr == nil {
				// Degrade to literal text so the surrounding parse survives.
				parts = append(parts, ast.InterpPart{Text: hole})
			} else {
				parts = append(parts, ast.InterpPart{Expr: expr, Format: format})
			}
			i = end
		case ch == '}':
			p.reportErrorCode(diag.CodeParserBadInterpolation,
				"unmatched '}' in interpolated string", tok.Span)
			text.WriteRune('}')
		default:
			text.WriteRune(ch)
		}
	}

	flush()
	return parts
}

// findHoleEnd returns the index of the '}' closing the hole opened before
// start, honoring nested braces, or -1.
func findHoleEnd(value []rune, start int) int {
	depth := 1
	for i := start; i < len(value); i++ {
		switch value[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// splitFormat separates "expr:format" at the first top-level colon. Colons
// inside parentheses or brackets belong to the expression.
func splitFormat(hole string) (expr, format string) {
	depth := 0
	for i, ch := range hole {
		switch ch {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
		case ':':
			if depth == 0 {
				return hole[:i], hole[i+1:]
			}
		}
	}
	return hole, ""
}

// parseHoleExpr lexes and parses one hole's expression text with a
// sub-parser sharing the sink, shifting spans so diagnostics point into the
// original string literal. offset is the hole's rune index within the decoded
// value; with escapes present the mapping is approximate.
func (p *Parser) parseHoleExpr(src string, strSpan lexer.Span, offset int) ast.Expr {
	var lexOpts []lexer.Option
	if p.filename != "" {
		lexOpts = append(lexOpts, lexer.WithFilename(p.filename))
	}

	toks, err := lexer.New(src, p.sink, lexOpts...).Tokenize()
	if err != nil {
		return nil
	}

	for i := range toks {
		toks[i].Span = shiftIntoString(toks[i].Span, strSpan, offset)
	}

	sub := New(toks, p.sink, WithMaxDepth(p.maxDepth-p.depth))
	sub.filename = p.filename

	expr := sub.parseExpr()
	if sub.fatal != nil {
		p.fatal = sub.fatal
		return nil
	}
	if expr == nil {
		return nil
	}

	if sub.peek.Kind != lexer.EOF {
		p.reportErrorCode(diag.CodeParserBadInterpolation,
			"unexpected trailing tokens in interpolation hole", sub.peek.Span)
		return nil
	}

	return expr
}

// shiftIntoString rebases a sub-token span onto the enclosing string
// literal's position. The +1 accounts for the opening quote.
func shiftIntoString(s, str lexer.Span, offset int) lexer.Span {
	base := str.Start + 1 + offset
	return lexer.Span{
		Filename: str.Filename,
		Line:     str.Line,
		Column:   str.Column + 1 + offset + (s.Column - 1),
		Start:    base + s.Start,
		End:      base + s.End,
	}
}
