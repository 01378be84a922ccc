package diag

import "fmt"

// Stage identifies which front-end phase produced the diagnostic.
type Stage string

const (
	StageLexer  Stage = "lexer"
	StageParser Stage = "parser"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Lexer errors
	CodeLexerUnterminatedString Code = "LEXER_UNTERMINATED_STRING"
	CodeLexerIllegalRune        Code = "LEXER_ILLEGAL_RUNE"
	CodeLexerTokenLimit         Code = "LEXER_TOKEN_LIMIT"

	// Parser errors
	CodeParserUnexpectedToken   Code = "PARSER_UNEXPECTED_TOKEN"
	CodeParserExpectedToken     Code = "PARSER_EXPECTED_TOKEN"
	CodeParserBadInterpolation  Code = "PARSER_BAD_INTERPOLATION"
	CodeParserDuplicateDefault  Code = "PARSER_DUPLICATE_DEFAULT_ARM"
	CodeParserDepthExceeded     Code = "PARSER_DEPTH_EXCEEDED"
	CodeParserUnexpectedEOF     Code = "PARSER_UNEXPECTED_EOF"
	CodeParserInvalidAssignment Code = "PARSER_INVALID_ASSIGNMENT"
)

// Span represents a location in source code. Line and Column are 1-based;
// Start/End are half-open rune offsets into the original input.
type Span struct {
	Filename string
	Line     int
	Column   int
	Start    int
	End      int
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsValid returns true if the span has valid location information.
func (s Span) IsValid() bool {
	return s.Line > 0 && s.Column > 0
}

// Diagnostic is a front-end diagnostic surfaced to end-users. The lexer and
// parser only fill in message and location; final presentation belongs to the
// Formatter or whatever tool consumes the sink.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     Span
	Help     string   // Optional help text
	Notes    []string // Additional notes to display
}

// WithHelp returns a copy of the diagnostic with the given help text.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// WithNote returns a copy of the diagnostic with the given note appended.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}
