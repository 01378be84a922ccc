package parser

import (
	"github.com/sable-lang/sable/internal/ast"
	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/lexer"
)

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

// Option configures a Parser.
type Option func(*Parser)

// WithFilename attributes all emitted spans to the provided filename.
func WithFilename(name string) Option {
	return func(p *Parser) {
		p.filename = name
	}
}

// WithMaxDepth overrides the recursion depth ceiling.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// DefaultMaxDepth bounds nested expression/statement recursion. Exceeding it
// aborts the parse with a FatalError rather than overflowing the goroutine
// stack.
const DefaultMaxDepth = 256

const (
	precedenceLowest = iota
	precedenceAssign
	precedenceCoalesce
	precedenceRange
	precedenceOr
	precedenceAnd
	precedenceEquality
	precedenceComparison
	precedenceSum
	precedenceProduct
	precedencePrefix
	precedencePostfix
)

var precedences = map[lexer.TokenKind]int{
	lexer.ASSIGN:     precedenceAssign,
	lexer.PLUS_EQ:    precedenceAssign,
	lexer.MINUS_EQ:   precedenceAssign,
	lexer.STAR_EQ:    precedenceAssign,
	lexer.SLASH_EQ:   precedenceAssign,
	lexer.COALESCE:   precedenceCoalesce,
	lexer.RANGE:      precedenceRange,
	lexer.RANGE_EXCL: precedenceRange,
	lexer.OR:         precedenceOr,
	lexer.AND:        precedenceAnd,
	lexer.EQ:         precedenceEquality,
	lexer.NOT_EQ:     precedenceEquality,
	lexer.LT:         precedenceComparison,
	lexer.LE:         precedenceComparison,
	lexer.GT:         precedenceComparison,
	lexer.GE:         precedenceComparison,
	lexer.PLUS:       precedenceSum,
	lexer.MINUS:      precedenceSum,
	lexer.ASTERISK:   precedenceProduct,
	lexer.SLASH:      precedenceProduct,
	lexer.PERCENT:    precedenceProduct,
	lexer.LPAREN:     precedencePostfix,
	lexer.LBRACKET:   precedencePostfix,
	lexer.DOT:        precedencePostfix,
	lexer.SAFE_DOT:   precedencePostfix,
	lexer.INCREMENT:  precedencePostfix,
	lexer.DECREMENT:  precedencePostfix,
	lexer.MATCH:      precedencePostfix,
}

// Parser implements a recursive descent parser with Pratt-style precedence
// climbing over a pre-lexed token slice. Invariants:
//   - cur always reflects the token under examination; peek mirrors the next
//     significant position. The pair is the parser's sole lookahead window
//     and is only mutated via nextToken/nextSkipNewlines (plus the bounded
//     peekAt scans used for lambda and attribute disambiguation).
//   - Every parse function returns with cur on the LAST token of its
//     construct; terminators are consumed by the statement loop.
//   - Diagnostics flow to the caller-supplied sink and never abort the parse;
//     only depth/size ceilings do, via fatal.
type Parser struct {
	tokens []lexer.Token
	idx    int // index of the token after peek
	cur    lexer.Token
	peek   lexer.Token

	sink     diag.Sink
	filename string

	depth    int
	maxDepth int
	fatal    *FatalError

	prefixFns map[lexer.TokenKind]prefixParseFn
	infixFns  map[lexer.TokenKind]infixParseFn
}

// New returns a parser over the provided token sequence. Diagnostics go to
// sink; a nil sink discards them. The token slice is read-only to the parser.
func New(tokens []lexer.Token, sink diag.Sink, opts ...Option) *Parser {
	if sink == nil {
		sink = diag.Discard
	}

	p := &Parser{
		tokens:    tokens,
		sink:      sink,
		maxDepth:  DefaultMaxDepth,
		prefixFns: make(map[lexer.TokenKind]prefixParseFn),
		infixFns:  make(map[lexer.TokenKind]infixParseFn),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.UNDERSCORE, p.parseIdentifier)
	p.registerPrefix(lexer.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBoolLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBoolLiteral)
	p.registerPrefix(lexer.NULL, p.parseNullLiteral)
	p.registerPrefix(lexer.THIS, p.parseThisExpr)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpr)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpr)
	p.registerPrefix(lexer.INCREMENT, p.parsePrefixExpr)
	p.registerPrefix(lexer.DECREMENT, p.parsePrefixExpr)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedOrLambda)
	p.registerPrefix(lexer.LBRACKET, p.parseArrayLit)
	p.registerPrefix(lexer.NEW, p.parseNewExpr)

	p.registerInfix(lexer.ASSIGN, p.parseAssignExpr)
	p.registerInfix(lexer.PLUS_EQ, p.parseAssignExpr)
	p.registerInfix(lexer.MINUS_EQ, p.parseAssignExpr)
	p.registerInfix(lexer.STAR_EQ, p.parseAssignExpr)
	p.registerInfix(lexer.SLASH_EQ, p.parseAssignExpr)
	p.registerInfix(lexer.COALESCE, p.parseBinaryExpr)
	p.registerInfix(lexer.RANGE, p.parseRangeExpr)
	p.registerInfix(lexer.RANGE_EXCL, p.parseRangeExpr)
	p.registerInfix(lexer.OR, p.parseBinaryExpr)
	p.registerInfix(lexer.AND, p.parseBinaryExpr)
	p.registerInfix(lexer.EQ, p.parseBinaryExpr)
	p.registerInfix(lexer.NOT_EQ, p.parseBinaryExpr)
	p.registerInfix(lexer.LT, p.parseBinaryExpr)
	p.registerInfix(lexer.LE, p.parseBinaryExpr)
	p.registerInfix(lexer.GT, p.parseBinaryExpr)
	p.registerInfix(lexer.GE, p.parseBinaryExpr)
	p.registerInfix(lexer.PLUS, p.parseBinaryExpr)
	p.registerInfix(lexer.MINUS, p.parseBinaryExpr)
	p.registerInfix(lexer.ASTERISK, p.parseBinaryExpr)
	p.registerInfix(lexer.SLASH, p.parseBinaryExpr)
	p.registerInfix(lexer.PERCENT, p.parseBinaryExpr)
	p.registerInfix(lexer.LPAREN, p.parseCallExpr)
	p.registerInfix(lexer.LBRACKET, p.parseIndexExpr)
	p.registerInfix(lexer.DOT, p.parseMemberExpr)
	p.registerInfix(lexer.SAFE_DOT, p.parseMemberExpr)
	p.registerInfix(lexer.INCREMENT, p.parsePostfixExpr)
	p.registerInfix(lexer.DECREMENT, p.parsePostfixExpr)
	p.registerInfix(lexer.MATCH, p.parseMatchExpr)

	// Seed cur/peek.
	p.nextToken()
	p.nextToken()

	return p
}

// ParseSource lexes and parses source text in one call.
func ParseSource(src string, sink diag.Sink, opts ...Option) (*ast.Program, error) {
	cfg := &Parser{}
	for _, opt := range opts {
		opt(cfg)
	}

	var lexOpts []lexer.Option
	if cfg.filename != "" {
		lexOpts = append(lexOpts, lexer.WithFilename(cfg.filename))
	}

	toks, err := lexer.New(src, sink, lexOpts...).Tokenize()
	if err != nil {
		return nil, &FatalError{
			Diag: diag.Diagnostic{
				Stage:    diag.StageLexer,
				Severity: diag.SeverityError,
				Code:     diag.CodeLexerTokenLimit,
				Message:  err.Error(),
			},
		}
	}

	return New(toks, sink, opts...).Parse()
}

// Parse parses the token sequence into a Program. Recoverable errors are
// reported to the sink and parsing continues at the next synchronization
// point; the returned error is non-nil only for fatal structural failures
// (depth ceiling), in which case the program holds whatever parsed cleanly.
func (p *Parser) Parse() (*ast.Program, error) {
	program := ast.NewProgram(p.cur.Span)

	p.skipNewlines()

	for p.cur.Kind != lexer.EOF && p.fatal == nil {
		prev := p.cur

		stmt := p.parseStmt()
		if stmt != nil {
			program.Stmts = append(program.Stmts, stmt)
			program.SetSpan(mergeSpan(program.Span(), stmt.Span()))
			p.endStatement()
		} else {
			p.recoverStatement(prev)
		}

		p.skipNewlines()
	}

	program.SetSpan(mergeSpan(program.Span(), p.cur.Span))

	if p.fatal != nil {
		return program, p.fatal
	}
	return program, nil
}

// nextToken advances the token window: cur becomes old peek.
func (p *Parser) nextToken() {
	p.cur = p.peek
	if p.idx < len(p.tokens) {
		p.peek = p.tokens[p.idx]
		p.idx++
	} else {
		// Keep yielding EOF past the end so lookahead never runs off the
		// slice even when the input lacks its EOF terminator.
		p.peek = lexer.Token{Kind: lexer.EOF, Span: p.cur.Span}
	}
}

// nextSkipNewlines advances and then discards NEWLINE tokens. Used where the
// grammar permits a line break: after opening delimiters, separators, binary
// operators, and arrows.
func (p *Parser) nextSkipNewlines() {
	p.nextToken()
	for p.cur.Kind == lexer.NEWLINE {
		p.nextToken()
	}
}

// skipNewlines discards NEWLINE tokens at the current position.
func (p *Parser) skipNewlines() {
	for p.cur.Kind == lexer.NEWLINE {
		p.nextToken()
	}
}

// peekAt returns the token n positions after cur (peekAt(1) == peek) without
// advancing. Bounded lookahead for the few spots where two tokens are not
// enough to commit: lambda parameter lists and attribute groups.
func (p *Parser) peekAt(n int) lexer.Token {
	if n <= 0 {
		return p.cur
	}
	if n == 1 {
		return p.peek
	}
	i := p.idx + n - 2
	if i >= len(p.tokens) {
		return lexer.Token{Kind: lexer.EOF, Span: p.peek.Span}
	}
	return p.tokens[i]
}

// peekPastNewlines returns the first non-NEWLINE token at or after peek.
func (p *Parser) peekPastNewlines() lexer.Token {
	if p.peek.Kind != lexer.NEWLINE {
		return p.peek
	}
	for n := 2; ; n++ {
		tok := p.peekAt(n)
		if tok.Kind != lexer.NEWLINE {
			return tok
		}
	}
}

// expect asserts that the peek token matches the provided kind and promotes
// it into cur. The caller inspects cur before calling; expect never rewinds.
func (p *Parser) expect(kind lexer.TokenKind) bool {
	if p.peek.Kind == kind {
		p.nextToken()
		return true
	}
	p.reportExpected(string(kind), p.peek)
	return false
}

// expectSkipNewlines is expect with line breaks permitted before the token.
func (p *Parser) expectSkipNewlines(kind lexer.TokenKind) bool {
	if p.peek.Kind == lexer.NEWLINE {
		tok := p.peekPastNewlines()
		if tok.Kind != kind {
			p.reportExpected(string(kind), tok)
			return false
		}
		p.nextSkipNewlines()
		return true
	}
	return p.expect(kind)
}

func (p *Parser) registerPrefix(kind lexer.TokenKind, fn prefixParseFn) {
	p.prefixFns[kind] = fn
}

func (p *Parser) registerInfix(kind lexer.TokenKind, fn infixParseFn) {
	p.infixFns[kind] = fn
}

// enter guards recursion depth; on overflow it records the fatal error and
// returns false.
func (p *Parser) enter() bool {
	p.depth++
	if p.depth > p.maxDepth {
		if p.fatal == nil {
			p.fatal = &FatalError{
				Diag: diag.Diagnostic{
					Stage:    diag.StageParser,
					Severity: diag.SeverityError,
					Code:     diag.CodeParserDepthExceeded,
					Message:  "maximum parse depth exceeded",
					Span:     p.spanWithFilename(p.cur.Span).Diag(),
				},
			}
			p.sink.Report(p.fatal.Diag)
		}
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

// endStatement consumes the statement terminator and positions cur on the
// next statement's first token, or on the closing brace / EOF left for the
// enclosing construct.
func (p *Parser) endStatement() {
	switch p.peek.Kind {
	case lexer.SEMICOLON:
		p.nextToken()
		p.nextSkipNewlines()
	case lexer.NEWLINE:
		p.nextSkipNewlines()
	case lexer.RBRACE, lexer.EOF:
		p.nextToken()
	default:
		p.reportError("expected newline or ';' after statement", p.peek.Span)
		p.nextToken()
	}
}

func sameTokenPosition(a, b lexer.Token) bool {
	return a.Kind == b.Kind && a.Span.Start == b.Span.Start && a.Span.End == b.Span.End
}

func isDeclStart(kind lexer.TokenKind) bool {
	switch kind {
	case lexer.FUNC, lexer.CLASS, lexer.STRUCT, lexer.INTERFACE, lexer.ENUM,
		lexer.NAMESPACE, lexer.IMPORT, lexer.TYPE,
		lexer.VAR, lexer.LET, lexer.CONST,
		lexer.PUBLIC, lexer.PRIVATE, lexer.STATIC, lexer.READONLY:
		return true
	default:
		return false
	}
}

func isStatementStart(kind lexer.TokenKind) bool {
	switch kind {
	case lexer.IF, lexer.WHILE, lexer.FOR, lexer.LOOP, lexer.UNTIL,
		lexer.RETURN, lexer.BREAK, lexer.CONTINUE:
		return true
	default:
		return false
	}
}

// recoverStatement seeks a synchronization point after an error: the end of
// the current statement (newline, semicolon, closing brace) or the start of
// the next recognizable construct, so one syntax error does not abandon the
// rest of the file.
func (p *Parser) recoverStatement(prev lexer.Token) {
	if p.cur.Kind == lexer.EOF {
		return
	}

	if sameTokenPosition(p.cur, prev) {
		p.nextToken()
	}

	for p.cur.Kind != lexer.EOF {
		switch p.cur.Kind {
		case lexer.SEMICOLON, lexer.NEWLINE:
			p.nextToken()
			return
		case lexer.RBRACE:
			return
		default:
			if isDeclStart(p.cur.Kind) || isStatementStart(p.cur.Kind) {
				return
			}
		}

		p.nextToken()
	}
}

func (p *Parser) spanWithFilename(span lexer.Span) lexer.Span {
	if span.Filename == "" && p.filename != "" {
		span.Filename = p.filename
	}
	return span
}

// mergeSpan returns a span covering both arguments. Callers pass the earliest
// start span first; AST node spans grow monotonically.
func mergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if span.Filename == "" {
		span.Filename = end.Filename
	}

	if span.Line == 0 && end.Line != 0 {
		span.Line = end.Line
		span.Column = end.Column
		span.Start = end.Start
	}

	if end.End > span.End {
		span.End = end.End
	}

	return span
}
