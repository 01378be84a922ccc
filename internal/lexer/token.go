package lexer

import (
	"strings"

	"github.com/sable-lang/sable/internal/diag"
)

// TokenKind represents the kind of a token.
type TokenKind string

// Span represents the source location of a token.
type Span struct {
	Filename string // optional source filename for diagnostics
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Start    int    // index in []rune of the original input
	End      int    // exclusive end index
}

// Diag converts the span into the shared diagnostic span structure.
func (s Span) Diag() diag.Span {
	return diag.Span{
		Filename: s.Filename,
		Line:     s.Line,
		Column:   s.Column,
		Start:    s.Start,
		End:      s.End,
	}
}

// Token represents a lexical token. Tokens are immutable once produced: the
// lexer creates them, the parser only reads them.
type Token struct {
	Kind  TokenKind
	Text  string // exact runes from source
	Value string // decoded value (strings without quotes/escapes; Text for others)
	Span  Span
}

// Token kind constants.
const (
	// Special tokens
	ILLEGAL TokenKind = "ILLEGAL"
	EOF     TokenKind = "EOF"
	NEWLINE TokenKind = "NEWLINE"

	// Identifiers and literals
	IDENT  TokenKind = "IDENT"  // count, Console.WriteLine, int[]
	NUMBER TokenKind = "NUMBER" // 42, 3.14 (raw text preserved)
	STRING TokenKind = "STRING" // "hello {name}"

	// Operators
	ASSIGN      TokenKind = "="
	PLUS        TokenKind = "+"
	MINUS       TokenKind = "-"
	ASTERISK    TokenKind = "*"
	SLASH       TokenKind = "/"
	PERCENT     TokenKind = "%"
	BANG        TokenKind = "!"
	PLUS_EQ     TokenKind = "+="
	MINUS_EQ    TokenKind = "-="
	STAR_EQ     TokenKind = "*="
	SLASH_EQ    TokenKind = "/="
	INCREMENT   TokenKind = "++"
	DECREMENT   TokenKind = "--"
	EQ          TokenKind = "=="
	NOT_EQ      TokenKind = "!="
	LT          TokenKind = "<"
	GT          TokenKind = ">"
	LE          TokenKind = "<="
	GE          TokenKind = ">="
	AND         TokenKind = "&&"
	OR          TokenKind = "||"
	FATARROW    TokenKind = "=>"
	COALESCE    TokenKind = "??"
	SAFE_DOT    TokenKind = "?."
	QUESTION    TokenKind = "?"
	RANGE       TokenKind = ".."
	RANGE_EXCL  TokenKind = "..<"
	UNDERSCORE  TokenKind = "_"

	// Delimiters
	COMMA     TokenKind = ","
	SEMICOLON TokenKind = ";"
	COLON     TokenKind = ":"
	DOT       TokenKind = "."

	LPAREN   TokenKind = "("
	RPAREN   TokenKind = ")"
	LBRACE   TokenKind = "{"
	RBRACE   TokenKind = "}"
	LBRACKET TokenKind = "["
	RBRACKET TokenKind = "]"

	// Keywords
	VAR       TokenKind = "VAR"
	LET       TokenKind = "LET"
	CONST     TokenKind = "CONST"
	FUNC      TokenKind = "FUNC"
	CLASS     TokenKind = "CLASS"
	STRUCT    TokenKind = "STRUCT"
	INTERFACE TokenKind = "INTERFACE"
	ENUM      TokenKind = "ENUM"
	NAMESPACE TokenKind = "NAMESPACE"
	IMPORT    TokenKind = "IMPORT"
	TYPE      TokenKind = "TYPE"
	IF        TokenKind = "IF"
	ELSE      TokenKind = "ELSE"
	WHILE     TokenKind = "WHILE"
	FOR       TokenKind = "FOR"
	IN        TokenKind = "IN"
	LOOP      TokenKind = "LOOP"
	UNTIL     TokenKind = "UNTIL"
	RETURN    TokenKind = "RETURN"
	BREAK     TokenKind = "BREAK"
	CONTINUE  TokenKind = "CONTINUE"
	MATCH     TokenKind = "MATCH"
	NEW       TokenKind = "NEW"
	THIS      TokenKind = "THIS"
	NULL      TokenKind = "NULL"
	TRUE      TokenKind = "TRUE"
	FALSE     TokenKind = "FALSE"
	PUBLIC    TokenKind = "PUBLIC"
	PRIVATE   TokenKind = "PRIVATE"
	STATIC    TokenKind = "STATIC"
	READONLY  TokenKind = "READONLY"
	GET       TokenKind = "GET"
	SET       TokenKind = "SET"
)

var keywords = map[string]TokenKind{
	"var":       VAR,
	"let":       LET,
	"const":     CONST,
	"func":      FUNC,
	"class":     CLASS,
	"struct":    STRUCT,
	"interface": INTERFACE,
	"enum":      ENUM,
	"namespace": NAMESPACE,
	"import":    IMPORT,
	"type":      TYPE,
	"if":        IF,
	"else":      ELSE,
	"while":     WHILE,
	"for":       FOR,
	"in":        IN,
	"loop":      LOOP,
	"until":     UNTIL,
	"return":    RETURN,
	"break":     BREAK,
	"continue":  CONTINUE,
	"match":     MATCH,
	"new":       NEW,
	"this":      THIS,
	"null":      NULL,
	"true":      TRUE,
	"false":     FALSE,
	"public":    PUBLIC,
	"private":   PRIVATE,
	"static":    STATIC,
	"readonly":  READONLY,
	"get":       GET,
	"set":       SET,
}

// LookupIdent reclassifies an identifier that exactly matches a keyword.
// Matching is case-sensitive: "Var" stays an identifier.
func LookupIdent(ident string) TokenKind {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	if ident == "_" {
		return UNDERSCORE
	}
	return IDENT
}

// IsKeyword reports whether kind is one of the keyword token kinds.
func IsKeyword(kind TokenKind) bool {
	for _, k := range keywords {
		if k == kind {
			return true
		}
	}
	return false
}

// IsQualified reports whether the token holds a dotted multi-segment name.
func (t Token) IsQualified() bool {
	return t.Kind == IDENT && strings.Contains(t.Text, ".")
}

// SplitQualified splits a dotted name into its namespace prefix and trailing
// name: "System.Console.WriteLine" -> ("System.Console", "WriteLine"). A
// plain identifier returns an empty namespace.
func SplitQualified(name string) (namespace, trailing string) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return "", name
	}
	return name[:idx], name[idx+1:]
}

// SplitQualified decomposes the token's dotted text.
func (t Token) SplitQualified() (namespace, trailing string) {
	return SplitQualified(t.Text)
}

// IsArrayType reports whether the token carries the composite "T[]" shorthand
// produced when "[]" immediately follows an identifier.
func (t Token) IsArrayType() bool {
	return t.Kind == IDENT && strings.HasSuffix(t.Text, "[]")
}

// ElemName strips the "[]" suffix from an array-type token's text.
func (t Token) ElemName() string {
	return strings.TrimSuffix(t.Text, "[]")
}
