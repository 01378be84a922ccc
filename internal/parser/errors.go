package parser

import (
	"fmt"

	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/lexer"
)

// FatalError aborts a parse that can no longer make progress safely, such as
// blowing the recursion depth ceiling. Ordinary syntax errors are not fatal;
// they are reported to the sink and recovered from.
type FatalError struct {
	Diag diag.Diagnostic
}

func (e *FatalError) Error() string {
	if e.Diag.Span.IsValid() {
		return fmt.Sprintf("%s: %s", e.Diag.Span, e.Diag.Message)
	}
	return e.Diag.Message
}

func describeToken(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.EOF:
		return "end of file"
	case lexer.NEWLINE:
		return "end of line"
	case lexer.IDENT, lexer.NUMBER:
		return fmt.Sprintf("'%s'", tok.Text)
	case lexer.STRING:
		return "string literal"
	case lexer.ILLEGAL:
		return fmt.Sprintf("illegal character '%s'", tok.Text)
	default:
		return fmt.Sprintf("'%s'", tok.Kind)
	}
}

func (p *Parser) report(d diag.Diagnostic) {
	p.sink.Report(d)
}

func (p *Parser) reportError(msg string, span lexer.Span) {
	p.report(diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     diag.CodeParserUnexpectedToken,
		Message:  msg,
		Span:     p.spanWithFilename(span).Diag(),
	})
}

func (p *Parser) reportErrorCode(code diag.Code, msg string, span lexer.Span) {
	p.report(diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     code,
		Message:  msg,
		Span:     p.spanWithFilename(span).Diag(),
	})
}

func (p *Parser) reportWarning(code diag.Code, msg string, span lexer.Span) {
	p.report(diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityWarning,
		Code:     code,
		Message:  msg,
		Span:     p.spanWithFilename(span).Diag(),
	})
}

// reportExpected emits the canonical "expected X, found Y" diagnostic.
func (p *Parser) reportExpected(want string, got lexer.Token) {
	code := diag.CodeParserExpectedToken
	if got.Kind == lexer.EOF {
		code = diag.CodeParserUnexpectedEOF
	}
	p.report(diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     code,
		Message:  fmt.Sprintf("expected '%s', found %s", want, describeToken(got)),
		Span:     p.spanWithFilename(got.Span).Diag(),
	})
}

func (p *Parser) reportNoPrefix(tok lexer.Token) {
	code := diag.CodeParserUnexpectedToken
	if tok.Kind == lexer.EOF {
		code = diag.CodeParserUnexpectedEOF
	}
	p.report(diag.Diagnostic{
		Stage:    diag.StageParser,
		Severity: diag.SeverityError,
		Code:     code,
		Message:  fmt.Sprintf("unexpected %s in expression", describeToken(tok)),
		Span:     p.spanWithFilename(tok.Span).Diag(),
	})
}
