package dump

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/sable-lang/sable/internal/ast"
	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/lexer"
	"github.com/sable-lang/sable/internal/parser"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()

	bag := diag.NewBag()
	prog, err := parser.ParseSource(src, bag)
	if err != nil {
		t.Fatalf("ParseSource() error: %v", err)
	}
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Errors())
	}
	return prog
}

func TestTokens(t *testing.T) {
	toks, err := lexer.New(`var x = 1`, nil).Tokenize()
	if err != nil {
		t.Fatalf("Tokenize() error: %v", err)
	}

	out := Tokens(toks)
	if len(out) != len(toks) {
		t.Fatalf("len = %d, expected %d", len(out), len(toks))
	}
	if out[0]["kind"] != "VAR" || out[0]["text"] != "var" {
		t.Fatalf("first token wrong: %v", out[0])
	}

	span, ok := out[0]["span"].(map[string]any)
	if !ok || span["line"] != 1 || span["column"] != 1 {
		t.Fatalf("span wrong: %v", out[0]["span"])
	}
}

func TestProgramJSONRoundTrips(t *testing.T) {
	prog := parse(t, `var result = code match {
	200 => "ok"
	_ => "other"
}`)

	data, err := JSON(Program(prog))
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["kind"] != "Program" {
		t.Fatalf("root kind = %v", decoded["kind"])
	}

	text := string(data)
	for _, want := range []string{`"VarStmt"`, `"Match"`, `"StringLit"`, `"default": true`} {
		if !strings.Contains(text, want) {
			t.Fatalf("JSON missing %s:\n%s", want, text)
		}
	}
}

func TestProgramYAML(t *testing.T) {
	prog := parse(t, `func add(a: int, b: int): int {
	return a + b
}`)

	data, err := YAML(Program(prog))
	if err != nil {
		t.Fatalf("YAML() error: %v", err)
	}

	text := string(data)
	for _, want := range []string{"FuncDecl", "add", "Binary"} {
		if !strings.Contains(text, want) {
			t.Fatalf("YAML missing %s:\n%s", want, text)
		}
	}
}

func TestUnknownNodeIsLabelled(t *testing.T) {
	// A node type without a dedicated case must still appear, labelled by its
	// Go type, so gaps are visible in output.
	out := node(&ast.Param{})
	kind, _ := out["kind"].(string)
	if !strings.Contains(kind, "Param") {
		t.Fatalf("kind = %q", kind)
	}
}
