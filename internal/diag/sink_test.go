package diag

import (
	"strings"
	"testing"
)

func TestBagCollectsInOrder(t *testing.T) {
	bag := NewBag()

	bag.ReportError("first")
	bag.ReportWarning("second")
	bag.ReportError("third")
	bag.ReportInfo("fourth")

	if bag.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4", bag.Len())
	}
	if bag.ErrorCount() != 2 {
		t.Fatalf("ErrorCount() = %d, expected 2", bag.ErrorCount())
	}
	if !bag.HasErrors() {
		t.Fatalf("HasErrors() = false")
	}

	all := bag.All()
	expected := []string{"first", "second", "third", "fourth"}
	for i, msg := range expected {
		if all[i].Message != msg {
			t.Fatalf("diags[%d] = %q, expected %q", i, all[i].Message, msg)
		}
	}

	errs := bag.Errors()
	if len(errs) != 2 || errs[0].Message != "first" || errs[1].Message != "third" {
		t.Fatalf("Errors() wrong: %v", errs)
	}
}

func TestBagWithoutErrors(t *testing.T) {
	bag := NewBag()
	bag.ReportWarning("just a warning")

	if bag.HasErrors() {
		t.Fatalf("HasErrors() = true for warnings only")
	}
	if bag.ErrorCount() != 0 {
		t.Fatalf("ErrorCount() = %d", bag.ErrorCount())
	}
}

func TestDiscardSink(t *testing.T) {
	// Must not panic; Discard exists so callers can pass a nil-safe sink.
	Discard.Report(Diagnostic{Severity: SeverityError, Message: "dropped"})
}

func TestSpanString(t *testing.T) {
	tests := []struct {
		span     Span
		expected string
	}{
		{Span{Filename: "main.sab", Line: 3, Column: 7}, "main.sab:3:7"},
		{Span{Line: 1, Column: 1}, "1:1"},
	}

	for i, tt := range tests {
		if got := tt.span.String(); got != tt.expected {
			t.Fatalf("tests[%d] - String() = %q, expected %q", i, got, tt.expected)
		}
	}
}

func TestWithHelpAndNote(t *testing.T) {
	d := Diagnostic{Severity: SeverityError, Message: "bad token"}
	d = d.WithHelp("remove it").WithNote("found during recovery")

	if d.Help != "remove it" {
		t.Fatalf("Help = %q", d.Help)
	}
	if len(d.Notes) != 1 || d.Notes[0] != "found during recovery" {
		t.Fatalf("Notes = %v", d.Notes)
	}
}

func TestFormatterRendersExcerpt(t *testing.T) {
	var out strings.Builder

	f := NewFormatter(&out, false)
	f.AddSource("main.sab", "var x = @\n")

	f.Format(Diagnostic{
		Stage:    StageLexer,
		Severity: SeverityError,
		Code:     CodeLexerIllegalRune,
		Message:  `illegal character "@"`,
		Span:     Span{Filename: "main.sab", Line: 1, Column: 9, Start: 8, End: 9},
	})

	rendered := out.String()
	for _, want := range []string{
		"error[LEXER_ILLEGAL_RUNE]",
		"main.sab:1:9",
		"var x = @",
		"^",
	} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("output missing %q:\n%s", want, rendered)
		}
	}
}

func TestFormatAllCountsErrors(t *testing.T) {
	var out strings.Builder

	f := NewFormatter(&out, false)
	n := f.FormatAll([]Diagnostic{
		{Severity: SeverityError, Message: "one"},
		{Severity: SeverityWarning, Message: "two"},
		{Severity: SeverityError, Message: "three"},
	})

	if n != 2 {
		t.Fatalf("FormatAll() = %d, expected 2", n)
	}
}
