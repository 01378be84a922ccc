package lexer

import (
	"fmt"
	"strconv"
	"unicode"

	"github.com/sable-lang/sable/internal/diag"
)

// DefaultMaxTokens bounds how many tokens Tokenize will produce before
// aborting. Exceeding it is a fatal structural failure, not a recoverable
// diagnostic.
const DefaultMaxTokens = 1 << 20

// ErrTokenLimit is returned by Tokenize when the token ceiling is exceeded.
type ErrTokenLimit struct {
	Limit int
}

func (e *ErrTokenLimit) Error() string {
	return fmt.Sprintf("token limit exceeded (%d tokens)", e.Limit)
}

// Lexer converts source text into a flat token sequence. It reports malformed
// input to the sink and continues; the only hard stop is the token ceiling.
type Lexer struct {
	input    []rune
	pos      int  // index of the current rune
	ch       rune // current rune (0 = EOF)
	line     int  // current line number (1-based)
	column   int  // current column number (1-based)
	filename string

	sink      diag.Sink
	maxTokens int
}

// Option configures a Lexer.
type Option func(*Lexer)

// WithFilename attributes all emitted spans to the provided filename.
func WithFilename(name string) Option {
	return func(l *Lexer) {
		l.filename = name
	}
}

// WithMaxTokens overrides the token ceiling used by Tokenize.
func WithMaxTokens(n int) Option {
	return func(l *Lexer) {
		if n > 0 {
			l.maxTokens = n
		}
	}
}

// New creates a lexer over input. Diagnostics go to sink; a nil sink discards
// them.
func New(input string, sink diag.Sink, opts ...Option) *Lexer {
	if sink == nil {
		sink = diag.Discard
	}
	l := &Lexer{
		input:     []rune(input),
		pos:       -1, // start before first rune
		line:      1,
		column:    0, // becomes 1 after the first read
		sink:      sink,
		maxTokens: DefaultMaxTokens,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.read()
	return l
}

// Tokenize scans the whole input and returns the token sequence, terminated
// by exactly one EOF token. It fails only when the token ceiling is hit.
func (l *Lexer) Tokenize() ([]Token, error) {
	var toks []Token
	for {
		tok := l.NextToken()
		toks = append(toks, tok)
		if tok.Kind == EOF {
			return toks, nil
		}
		if len(toks) >= l.maxTokens {
			l.report(diag.CodeLexerTokenLimit, diag.SeverityError,
				fmt.Sprintf("token limit of %d exceeded", l.maxTokens), tok.Span)
			return toks, &ErrTokenLimit{Limit: l.maxTokens}
		}
	}
}

// read advances to the next rune, maintaining 1-based line/column so they
// always describe the rune at pos.
func (l *Lexer) read() {
	l.pos++
	prev := l.pos - 1

	if prev >= 0 && prev < len(l.input) && l.input[prev] == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}

	if l.pos >= len(l.input) {
		l.ch = 0
		return
	}
	l.ch = l.input[l.pos]
}

// peek returns the next rune without advancing.
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+1]
}

// peek2 returns the rune two ahead without advancing.
func (l *Lexer) peek2() rune {
	if l.pos+2 >= len(l.input) {
		return 0
	}
	return l.input[l.pos+2]
}

func (l *Lexer) span(startLine, startColumn, startPos int) Span {
	return Span{
		Filename: l.filename,
		Line:     startLine,
		Column:   startColumn,
		Start:    startPos,
		End:      l.pos,
	}
}

func (l *Lexer) report(code diag.Code, sev diag.Severity, msg string, span Span) {
	l.sink.Report(diag.Diagnostic{
		Stage:    diag.StageLexer,
		Severity: sev,
		Code:     code,
		Message:  msg,
		Span:     span.Diag(),
	})
}

// make creates a token spanning from the captured start to the current pos.
func (l *Lexer) make(kind TokenKind, startLine, startColumn, startPos int, text, value string) Token {
	return Token{
		Kind:  kind,
		Text:  text,
		Value: value,
		Span:  l.span(startLine, startColumn, startPos),
	}
}

// op consumes n runes and emits an operator/punctuation token.
func (l *Lexer) op(kind TokenKind, n int) Token {
	startLine, startColumn, startPos := l.line, l.column, l.pos
	for i := 0; i < n; i++ {
		l.read()
	}
	text := string(l.input[startPos:l.pos])
	return l.make(kind, startLine, startColumn, startPos, text, text)
}

// NextToken returns the next token from the input. Spaces and tabs are
// elided; a run of newlines collapses into a single NEWLINE token because the
// grammar treats newline as a soft statement terminator.
func (l *Lexer) NextToken() Token {
	for {
		if tok, ok := l.skipSpace(); ok {
			return tok
		}

		switch l.ch {
		case 0:
			line, column := l.line, l.column
			if column == 0 {
				column = 1
			}
			return l.make(EOF, line, column, l.pos, "", "")

		case '=':
			if l.peek() == '=' {
				return l.op(EQ, 2)
			}
			if l.peek() == '>' {
				return l.op(FATARROW, 2)
			}
			return l.op(ASSIGN, 1)

		case '+':
			if l.peek() == '=' {
				return l.op(PLUS_EQ, 2)
			}
			if l.peek() == '+' {
				return l.op(INCREMENT, 2)
			}
			return l.op(PLUS, 1)

		case '-':
			if l.peek() == '=' {
				return l.op(MINUS_EQ, 2)
			}
			if l.peek() == '-' {
				return l.op(DECREMENT, 2)
			}
			return l.op(MINUS, 1)

		case '*':
			if l.peek() == '=' {
				return l.op(STAR_EQ, 2)
			}
			return l.op(ASTERISK, 1)

		case '/':
			if l.peek() == '/' {
				l.skipLineComment()
				continue
			}
			if l.peek() == '=' {
				return l.op(SLASH_EQ, 2)
			}
			return l.op(SLASH, 1)

		case '%':
			return l.op(PERCENT, 1)

		case '!':
			if l.peek() == '=' {
				return l.op(NOT_EQ, 2)
			}
			return l.op(BANG, 1)

		case '<':
			if l.peek() == '=' {
				return l.op(LE, 2)
			}
			return l.op(LT, 1)

		case '>':
			if l.peek() == '=' {
				return l.op(GE, 2)
			}
			return l.op(GT, 1)

		case '&':
			if l.peek() == '&' {
				return l.op(AND, 2)
			}
			return l.illegal()

		case '|':
			if l.peek() == '|' {
				return l.op(OR, 2)
			}
			return l.illegal()

		case '?':
			if l.peek() == '?' {
				return l.op(COALESCE, 2)
			}
			if l.peek() == '.' {
				return l.op(SAFE_DOT, 2)
			}
			return l.op(QUESTION, 1)

		case '.':
			if l.peek() == '.' {
				if l.peek2() == '<' {
					return l.op(RANGE_EXCL, 3)
				}
				return l.op(RANGE, 2)
			}
			return l.op(DOT, 1)

		case ',':
			return l.op(COMMA, 1)
		case ';':
			return l.op(SEMICOLON, 1)
		case ':':
			return l.op(COLON, 1)
		case '(':
			return l.op(LPAREN, 1)
		case ')':
			return l.op(RPAREN, 1)
		case '{':
			return l.op(LBRACE, 1)
		case '}':
			return l.op(RBRACE, 1)
		case '[':
			return l.op(LBRACKET, 1)
		case ']':
			return l.op(RBRACKET, 1)

		case '"':
			return l.readString()

		default:
			if isLetter(l.ch) {
				return l.readIdentifier()
			}
			if isDigit(l.ch) {
				return l.readNumber()
			}
			return l.illegal()
		}
	}
}

// skipSpace elides spaces and tabs. A run containing at least one newline is
// condensed into a single NEWLINE token positioned at the first newline.
func (l *Lexer) skipSpace() (Token, bool) {
	sawNewline := false
	var nlLine, nlColumn, nlPos int

	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		if (l.ch == '\n' || l.ch == '\r') && !sawNewline {
			sawNewline = true
			nlLine, nlColumn, nlPos = l.line, l.column, l.pos
		}
		l.read()
	}

	if !sawNewline {
		return Token{}, false
	}
	tok := Token{
		Kind:  NEWLINE,
		Text:  "\n",
		Value: "\n",
		Span:  Span{Filename: l.filename, Line: nlLine, Column: nlColumn, Start: nlPos, End: nlPos + 1},
	}
	return tok, true
}

// skipLineComment consumes "//" to end of line without emitting a token; the
// trailing newline is left for skipSpace so statement termination still sees
// it.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != '\r' && l.ch != 0 {
		l.read()
	}
}

func (l *Lexer) illegal() Token {
	startLine, startColumn, startPos := l.line, l.column, l.pos
	text := string(l.ch)
	l.read()
	tok := l.make(ILLEGAL, startLine, startColumn, startPos, text, text)
	l.report(diag.CodeLexerIllegalRune, diag.SeverityError,
		"illegal character "+strconv.Quote(text), tok.Span)
	return tok
}

// readIdentifier scans an identifier, absorbing immediately-adjacent dotted
// segments into a single qualified token ("System.Console.WriteLine") and an
// immediately-adjacent "[]" pair into the array-type shorthand ("int[]").
// Keyword reclassification applies only to plain single-segment names.
func (l *Lexer) readIdentifier() Token {
	startLine, startColumn, startPos := l.line, l.column, l.pos

	l.readIdentSegment()
	first := string(l.input[startPos:l.pos])

	// A keyword never begins a dotted chain or takes the array suffix;
	// "this.count" is member access on THIS, not a qualified name.
	if LookupIdent(first) != IDENT {
		return l.make(LookupIdent(first), startLine, startColumn, startPos, first, first)
	}

	qualified := false
	for l.ch == '.' && isLetter(l.peek()) {
		qualified = true
		l.read() // consume '.'
		l.readIdentSegment()
	}

	arraySuffix := false
	if l.ch == '[' && l.peek() == ']' {
		arraySuffix = true
		l.read()
		l.read()
	}

	text := string(l.input[startPos:l.pos])
	kind := IDENT
	if !qualified && !arraySuffix {
		kind = LookupIdent(text)
	}
	return l.make(kind, startLine, startColumn, startPos, text, text)
}

func (l *Lexer) readIdentSegment() {
	for isLetter(l.ch) || isDigit(l.ch) {
		l.read()
	}
}

// readNumber scans a greedy digit run with at most one interior decimal
// point. The raw text is preserved; numeric conversion belongs to consumers.
func (l *Lexer) readNumber() Token {
	startLine, startColumn, startPos := l.line, l.column, l.pos

	for isDigit(l.ch) {
		l.read()
	}
	if l.ch == '.' && isDigit(l.peek()) {
		l.read() // consume '.'
		for isDigit(l.ch) {
			l.read()
		}
	}

	text := string(l.input[startPos:l.pos])
	return l.make(NUMBER, startLine, startColumn, startPos, text, text)
}

// readString scans a double-quoted string literal. Escaped quotes do not
// terminate the literal; interpolation holes ("{expr}") pass through
// untouched for the parser to decompose. An unterminated literal is a
// diagnostic, not a crash: the scanned prefix is returned as a best-effort
// STRING token.
func (l *Lexer) readString() Token {
	startLine, startColumn, startPos := l.line, l.column, l.pos

	var decoded []rune
	l.read() // consume opening quote

	for {
		if l.ch == 0 {
			span := l.span(startLine, startColumn, startPos)
			l.report(diag.CodeLexerUnterminatedString, diag.SeverityError,
				"unterminated string literal", span)
			break
		}
		if l.ch == '\n' || l.ch == '\r' {
			span := l.span(startLine, startColumn, startPos)
			l.report(diag.CodeLexerUnterminatedString, diag.SeverityError,
				"newline in string literal", span)
			break
		}
		if l.ch == '"' {
			l.read() // consume closing quote
			text := string(l.input[startPos:l.pos])
			return l.make(STRING, startLine, startColumn, startPos, text, string(decoded))
		}
		if l.ch == '\\' {
			l.read()
			if l.ch == 0 {
				continue
			}
			switch l.ch {
			case 'n':
				decoded = append(decoded, '\n')
			case 't':
				decoded = append(decoded, '\t')
			case 'r':
				decoded = append(decoded, '\r')
			case '\\':
				decoded = append(decoded, '\\')
			case '"':
				decoded = append(decoded, '"')
			default:
				decoded = append(decoded, '\\', l.ch)
			}
			l.read()
			continue
		}
		decoded = append(decoded, l.ch)
		l.read()
	}

	text := string(l.input[startPos:l.pos])
	return l.make(STRING, startLine, startColumn, startPos, text, string(decoded))
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isDigit(ch rune) bool {
	// Numeric literals are restricted to ASCII digits.
	return ch >= '0' && ch <= '9'
}
