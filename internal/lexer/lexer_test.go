package lexer

import (
	"strings"
	"testing"

	"github.com/sable-lang/sable/internal/diag"
)

func tokenize(t *testing.T, input string) []Token {
	t.Helper()

	toks, err := New(input, nil).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}
	return toks
}

func TestNextToken_Basic(t *testing.T) {
	input := `var x = 10`

	tests := []struct {
		expectedKind TokenKind
		expectedText string
	}{
		{VAR, "var"},
		{IDENT, "x"},
		{ASSIGN, "="},
		{NUMBER, "10"},
		{EOF, ""},
	}

	l := New(input, nil)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Kind != tt.expectedKind {
			t.Fatalf("tests[%d] - kind wrong. expected=%q, got=%q",
				i, tt.expectedKind, tok.Kind)
		}

		if tok.Text != tt.expectedText {
			t.Fatalf("tests[%d] - text wrong. expected=%q, got=%q",
				i, tt.expectedText, tok.Text)
		}
	}
}

func TestNextToken_Operators(t *testing.T) {
	input := `= + - * / % == != < > <= >= && || ! => ?? ?. ? .. ..< ++ -- += -= *= /=`

	tests := []TokenKind{
		ASSIGN, PLUS, MINUS, ASTERISK, SLASH, PERCENT,
		EQ, NOT_EQ, LT, GT, LE, GE,
		AND, OR, BANG, FATARROW,
		COALESCE, SAFE_DOT, QUESTION,
		RANGE, RANGE_EXCL,
		INCREMENT, DECREMENT,
		PLUS_EQ, MINUS_EQ, STAR_EQ, SLASH_EQ,
		EOF,
	}

	l := New(input, nil)

	for i, expected := range tests {
		tok := l.NextToken()
		if tok.Kind != expected {
			t.Fatalf("tests[%d] - kind wrong. expected=%q, got=%q",
				i, expected, tok.Kind)
		}
	}
}

func TestNextToken_KeywordsAreCaseSensitive(t *testing.T) {
	input := `var Var VAR match Match`

	tests := []struct {
		expectedKind TokenKind
		expectedText string
	}{
		{VAR, "var"},
		{IDENT, "Var"},
		{IDENT, "VAR"},
		{MATCH, "match"},
		{IDENT, "Match"},
		{EOF, ""},
	}

	l := New(input, nil)

	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Kind != tt.expectedKind || tok.Text != tt.expectedText {
			t.Fatalf("tests[%d] - expected (%q, %q), got (%q, %q)",
				i, tt.expectedKind, tt.expectedText, tok.Kind, tok.Text)
		}
	}
}

func TestQualifiedIdentifierIsOneToken(t *testing.T) {
	toks := tokenize(t, `Console.WriteLine("hi")`)

	tests := []struct {
		expectedKind TokenKind
		expectedText string
	}{
		{IDENT, "Console.WriteLine"},
		{LPAREN, "("},
		{STRING, `"hi"`},
		{RPAREN, ")"},
		{EOF, ""},
	}

	if len(toks) != len(tests) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(tests), len(toks))
	}
	for i, tt := range tests {
		if toks[i].Kind != tt.expectedKind || toks[i].Text != tt.expectedText {
			t.Fatalf("tests[%d] - expected (%q, %q), got (%q, %q)",
				i, tt.expectedKind, tt.expectedText, toks[i].Kind, toks[i].Text)
		}
	}

	if !toks[0].IsQualified() {
		t.Fatalf("IsQualified() = false for %q", toks[0].Text)
	}
	ns, last := toks[0].SplitQualified()
	if ns != "Console" || last != "WriteLine" {
		t.Fatalf("SplitQualified() = (%q, %q), expected (Console, WriteLine)", ns, last)
	}
}

func TestKeywordBeforeDotIsNotQualified(t *testing.T) {
	toks := tokenize(t, `this.count = 0`)

	tests := []struct {
		expectedKind TokenKind
		expectedText string
	}{
		{THIS, "this"},
		{DOT, "."},
		{IDENT, "count"},
		{ASSIGN, "="},
		{NUMBER, "0"},
		{EOF, ""},
	}

	if len(toks) != len(tests) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(tests), len(toks))
	}
	for i, tt := range tests {
		if toks[i].Kind != tt.expectedKind || toks[i].Text != tt.expectedText {
			t.Fatalf("tests[%d] - expected (%q, %q), got (%q, %q)",
				i, tt.expectedKind, tt.expectedText, toks[i].Kind, toks[i].Text)
		}
	}

	// The chain after the keyword still folds on its own.
	toks = tokenize(t, `this.inner.count`)
	expected := []struct {
		kind TokenKind
		text string
	}{
		{THIS, "this"},
		{DOT, "."},
		{IDENT, "inner.count"},
		{EOF, ""},
	}
	for i, tt := range expected {
		if toks[i].Kind != tt.kind || toks[i].Text != tt.text {
			t.Fatalf("chain tokens[%d] - expected (%q, %q), got (%q, %q)",
				i, tt.kind, tt.text, toks[i].Kind, toks[i].Text)
		}
	}
}

func TestQualifiedNameStopsAtNonLetter(t *testing.T) {
	// "a..b" is a range over identifiers, not a qualified name.
	toks := tokenize(t, `a..b`)

	expected := []TokenKind{IDENT, RANGE, IDENT, EOF}
	for i, kind := range expected {
		if toks[i].Kind != kind {
			t.Fatalf("tests[%d] - expected %q, got %q", i, kind, toks[i].Kind)
		}
	}
}

func TestArrayTypeSuffix(t *testing.T) {
	tests := []struct {
		input        string
		expectedKind TokenKind
		expectedText string
	}{
		{`int[]`, IDENT, "int[]"},
		{`string[] names`, IDENT, "string[]"},
	}

	for i, tt := range tests {
		toks := tokenize(t, tt.input)
		if toks[0].Kind != tt.expectedKind || toks[0].Text != tt.expectedText {
			t.Fatalf("tests[%d] - expected (%q, %q), got (%q, %q)",
				i, tt.expectedKind, tt.expectedText, toks[0].Kind, toks[0].Text)
		}
		if !toks[0].IsArrayType() {
			t.Fatalf("tests[%d] - IsArrayType() = false for %q", i, toks[0].Text)
		}
		if elem := toks[0].ElemName(); elem != tt.expectedText[:len(tt.expectedText)-2] {
			t.Fatalf("tests[%d] - ElemName() = %q", i, elem)
		}
	}

	// Indexing is not an array suffix.
	toks := tokenize(t, `arr[0]`)
	expected := []TokenKind{IDENT, LBRACKET, NUMBER, RBRACKET, EOF}
	for i, kind := range expected {
		if toks[i].Kind != kind {
			t.Fatalf("arr[0] tokens[%d] - expected %q, got %q", i, kind, toks[i].Kind)
		}
	}
}

func TestNewlineRunsCollapse(t *testing.T) {
	toks := tokenize(t, "a\n\n\nb")

	expected := []TokenKind{IDENT, NEWLINE, IDENT, EOF}
	if len(toks) != len(expected) {
		t.Fatalf("token count wrong. expected=%d, got=%d", len(expected), len(toks))
	}
	for i, kind := range expected {
		if toks[i].Kind != kind {
			t.Fatalf("tokens[%d] - expected %q, got %q", i, kind, toks[i].Kind)
		}
	}

	if toks[1].Span.Line != 1 {
		t.Fatalf("NEWLINE line = %d, expected 1", toks[1].Span.Line)
	}
}

func TestLineComments(t *testing.T) {
	toks := tokenize(t, "a // trailing\nb")

	expected := []TokenKind{IDENT, NEWLINE, IDENT, EOF}
	for i, kind := range expected {
		if toks[i].Kind != kind {
			t.Fatalf("tokens[%d] - expected %q, got %q", i, kind, toks[i].Kind)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input         string
		expectedValue string
	}{
		{`"hello"`, "hello"},
		{`"a\tb"`, "a\tb"},
		{`"line\n"`, "line\n"},
		{`"quote \" end"`, `quote " end`},
		{`"back\\slash"`, `back\slash`},
		{`"{name}"`, "{name}"}, // interpolation passes through untouched
	}

	for i, tt := range tests {
		toks := tokenize(t, tt.input)
		if toks[0].Kind != STRING {
			t.Fatalf("tests[%d] - kind wrong. got=%q", i, toks[0].Kind)
		}
		if toks[0].Value != tt.expectedValue {
			t.Fatalf("tests[%d] - value wrong. expected=%q, got=%q",
				i, tt.expectedValue, toks[0].Value)
		}
		if toks[0].Text != tt.input {
			t.Fatalf("tests[%d] - text wrong. expected=%q, got=%q",
				i, tt.input, toks[0].Text)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	bag := diag.NewBag()

	toks, err := New(`"abc`, bag).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}

	if toks[0].Kind != STRING || toks[0].Value != "abc" {
		t.Fatalf("expected best-effort STRING token, got (%q, %q)", toks[0].Kind, toks[0].Value)
	}
	if toks[len(toks)-1].Kind != EOF {
		t.Fatalf("stream not EOF-terminated")
	}

	if bag.ErrorCount() != 1 {
		t.Fatalf("expected 1 error, got %d", bag.ErrorCount())
	}
	if bag.Errors()[0].Code != diag.CodeLexerUnterminatedString {
		t.Fatalf("wrong code: %s", bag.Errors()[0].Code)
	}
}

func TestIllegalRuneContinues(t *testing.T) {
	bag := diag.NewBag()

	toks, err := New(`a @ b`, bag).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}

	expected := []TokenKind{IDENT, ILLEGAL, IDENT, EOF}
	for i, kind := range expected {
		if toks[i].Kind != kind {
			t.Fatalf("tokens[%d] - expected %q, got %q", i, kind, toks[i].Kind)
		}
	}

	if bag.ErrorCount() != 1 {
		t.Fatalf("expected 1 error, got %d", bag.ErrorCount())
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"42", []string{"42"}},
		{"3.14", []string{"3.14"}},
		{"1..3", []string{"1", "3"}}, // the range operator is not a decimal point
	}

	for i, tt := range tests {
		toks := tokenize(t, tt.input)
		var nums []string
		for _, tok := range toks {
			if tok.Kind == NUMBER {
				nums = append(nums, tok.Text)
			}
		}
		if len(nums) != len(tt.expected) {
			t.Fatalf("tests[%d] - number count wrong. expected=%d, got=%d",
				i, len(tt.expected), len(nums))
		}
		for j := range nums {
			if nums[j] != tt.expected[j] {
				t.Fatalf("tests[%d] - number %d wrong. expected=%q, got=%q",
					i, j, tt.expected[j], nums[j])
			}
		}
	}
}

func TestTokenizeTerminatesWithSingleEOF(t *testing.T) {
	inputs := []string{"", "x", "x\n", "func f() { return 1 }\n"}

	for i, input := range inputs {
		toks := tokenize(t, input)

		var eofs int
		for _, tok := range toks {
			if tok.Kind == EOF {
				eofs++
			}
		}
		if eofs != 1 {
			t.Fatalf("inputs[%d] - expected exactly 1 EOF, got %d", i, eofs)
		}
		if toks[len(toks)-1].Kind != EOF {
			t.Fatalf("inputs[%d] - EOF not last", i)
		}
	}
}

func TestTokenizeIsDeterministic(t *testing.T) {
	input := "func add(a: int, b: int): int {\n\treturn a + b\n}\n"

	first := tokenize(t, input)
	second := tokenize(t, input)

	if len(first) != len(second) {
		t.Fatalf("token counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("tokens[%d] differ: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestTokenLimit(t *testing.T) {
	bag := diag.NewBag()

	_, err := New("a b c d e f g h", bag, WithMaxTokens(4)).Tokenize()
	if err == nil {
		t.Fatalf("expected token limit error")
	}
	if _, ok := err.(*ErrTokenLimit); !ok {
		t.Fatalf("expected *ErrTokenLimit, got %T", err)
	}
	if bag.ErrorCount() != 1 {
		t.Fatalf("expected 1 error, got %d", bag.ErrorCount())
	}
}

func TestSpans(t *testing.T) {
	toks := tokenize(t, "ab cd")

	tests := []struct {
		line, column, start, end int
	}{
		{1, 1, 0, 2},
		{1, 4, 3, 5},
	}

	for i, tt := range tests {
		span := toks[i].Span
		if span.Line != tt.line || span.Column != tt.column ||
			span.Start != tt.start || span.End != tt.end {
			t.Fatalf("tests[%d] - span wrong. expected={%d %d %d %d}, got={%d %d %d %d}",
				i, tt.line, tt.column, tt.start, tt.end,
				span.Line, span.Column, span.Start, span.End)
		}
	}

	second := toks[1]
	if second.Span.Line != 1 {
		t.Fatalf("expected single-line input, got line %d", second.Span.Line)
	}
}

func TestSpanRoundTrip(t *testing.T) {
	input := "func add(a: int, b: int): int { // sum\n\treturn a + b\n}\nvar msg = \"hi\"\n"
	runes := []rune(input)

	toks := tokenize(t, input)

	// Every token's span slices back to its raw text.
	for i, tok := range toks {
		if tok.Kind == NEWLINE {
			continue
		}
		if got := string(runes[tok.Span.Start:tok.Span.End]); got != tok.Text {
			t.Fatalf("tokens[%d] - input[%d:%d] = %q, expected %q",
				i, tok.Span.Start, tok.Span.End, got, tok.Text)
		}
	}

	// Concatenating the spans reconstructs the source minus whitespace and
	// comments.
	var got strings.Builder
	for _, tok := range toks {
		if tok.Kind == NEWLINE || tok.Kind == EOF {
			continue
		}
		got.WriteString(string(runes[tok.Span.Start:tok.Span.End]))
	}

	var expected strings.Builder
	for _, line := range strings.Split(input, "\n") {
		if i := strings.Index(line, "//"); i >= 0 {
			line = line[:i]
		}
		for _, r := range line {
			if r != ' ' && r != '\t' && r != '\r' {
				expected.WriteRune(r)
			}
		}
	}

	if got.String() != expected.String() {
		t.Fatalf("round-trip wrong. expected=%q, got=%q", expected.String(), got.String())
	}
}

func TestMultilinePositions(t *testing.T) {
	toks := tokenize(t, "a\nbb\n  c")

	// a NEWLINE bb NEWLINE c EOF
	tests := []struct {
		kind         TokenKind
		line, column int
	}{
		{IDENT, 1, 1},
		{NEWLINE, 1, 2},
		{IDENT, 2, 1},
		{NEWLINE, 2, 3},
		{IDENT, 3, 3},
	}

	for i, tt := range tests {
		tok := toks[i]
		if tok.Kind != tt.kind || tok.Span.Line != tt.line || tok.Span.Column != tt.column {
			t.Fatalf("tests[%d] - expected (%q, %d:%d), got (%q, %d:%d)",
				i, tt.kind, tt.line, tt.column, tok.Kind, tok.Span.Line, tok.Span.Column)
		}
	}
}
