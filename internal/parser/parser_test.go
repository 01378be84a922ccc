package parser

import (
	"strings"
	"testing"

	"github.com/sable-lang/sable/internal/ast"
	"github.com/sable-lang/sable/internal/diag"
)

func parseProgram(t *testing.T, src string) (*ast.Program, *diag.Bag) {
	t.Helper()

	bag := diag.NewBag()
	prog, err := ParseSource(src, bag)
	if err != nil {
		t.Fatalf("ParseSource() error: %v", err)
	}
	return prog, bag
}

func parseClean(t *testing.T, src string) *ast.Program {
	t.Helper()

	prog, bag := parseProgram(t, src)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Errors())
	}
	return prog
}

func firstExpr(t *testing.T, src string) ast.Expr {
	t.Helper()

	prog := parseClean(t, src)
	if len(prog.Stmts) != 1 {
		t.Fatalf("expected 1 statement, got %d", len(prog.Stmts))
	}
	stmt, ok := prog.Stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected *ast.ExprStmt, got %T", prog.Stmts[0])
	}
	return stmt.Expr
}

func TestOperatorPrecedence(t *testing.T) {
	expr := firstExpr(t, `x + y * 2`)

	add, ok := expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("expected *ast.BinaryExpr, got %T", expr)
	}
	if add.Op != "+" {
		t.Fatalf("outer op = %q, expected +", add.Op)
	}

	mul, ok := add.Right.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("right operand is %T, expected *ast.BinaryExpr", add.Right)
	}
	if mul.Op != "*" {
		t.Fatalf("inner op = %q, expected *", mul.Op)
	}
}

func TestPrecedenceLadder(t *testing.T) {
	tests := []struct {
		input   string
		outerOp string
	}{
		{`a ?? b || c`, "??"},
		{`a || b && c`, "||"},
		{`a && b == c`, "&&"},
		{`a == b < c`, "=="},
		{`a < b + c`, "<"},
		{`a + b * c`, "+"},
		{`a .. b + c`, ".."},
	}

	for i, tt := range tests {
		expr := firstExpr(t, tt.input)

		switch e := expr.(type) {
		case *ast.BinaryExpr:
			if string(e.Op) != tt.outerOp {
				t.Fatalf("tests[%d] - outer op = %q, expected %q", i, e.Op, tt.outerOp)
			}
		case *ast.RangeExpr:
			if tt.outerOp != ".." {
				t.Fatalf("tests[%d] - got range, expected %q", i, tt.outerOp)
			}
		default:
			t.Fatalf("tests[%d] - got %T", i, expr)
		}
	}
}

func TestAssignmentIsRightAssociative(t *testing.T) {
	expr := firstExpr(t, `x = y = 2`)

	outer, ok := expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected *ast.AssignExpr, got %T", expr)
	}
	if _, ok := outer.Value.(*ast.AssignExpr); !ok {
		t.Fatalf("value is %T, expected nested *ast.AssignExpr", outer.Value)
	}
}

func TestCompoundAssignment(t *testing.T) {
	expr := firstExpr(t, `x += 1`)

	assign, ok := expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected *ast.AssignExpr, got %T", expr)
	}
	if assign.Op != "+=" {
		t.Fatalf("op = %q, expected +=", assign.Op)
	}
}

func TestInvalidAssignmentTargetReported(t *testing.T) {
	_, bag := parseProgram(t, `1 = 2`)

	if !bag.HasErrors() {
		t.Fatalf("expected an error for literal assignment target")
	}
	if bag.Errors()[0].Code != diag.CodeParserInvalidAssignment {
		t.Fatalf("wrong code: %s", bag.Errors()[0].Code)
	}
}

func TestQualifiedCall(t *testing.T) {
	expr := firstExpr(t, `Console.WriteLine("hi")`)

	call, ok := expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected *ast.CallExpr, got %T", expr)
	}
	qi, ok := call.Callee.(*ast.QualifiedIdent)
	if !ok {
		t.Fatalf("callee is %T, expected *ast.QualifiedIdent", call.Callee)
	}
	if qi.Name != "Console.WriteLine" || qi.Namespace() != "Console" || qi.Last() != "WriteLine" {
		t.Fatalf("qualified ident wrong: %q", qi.Name)
	}
	if len(call.Args) != 1 {
		t.Fatalf("args = %d, expected 1", len(call.Args))
	}
}

func TestVarStatementForms(t *testing.T) {
	tests := []struct {
		input    string
		keyword  string
		hasType  bool
		hasValue bool
		mutable  bool
	}{
		{`var x = 1`, "VAR", false, true, true},
		{`let y: int = 2`, "LET", true, true, false},
		{`const z: string`, "CONST", true, false, false},
		{`var w`, "VAR", false, false, true},
	}

	for i, tt := range tests {
		prog := parseClean(t, tt.input)
		stmt, ok := prog.Stmts[0].(*ast.VarStmt)
		if !ok {
			t.Fatalf("tests[%d] - got %T", i, prog.Stmts[0])
		}
		if string(stmt.Keyword) != tt.keyword {
			t.Fatalf("tests[%d] - keyword = %q, expected %q", i, stmt.Keyword, tt.keyword)
		}
		if (stmt.Type != nil) != tt.hasType {
			t.Fatalf("tests[%d] - type presence = %v", i, stmt.Type != nil)
		}
		if (stmt.Value != nil) != tt.hasValue {
			t.Fatalf("tests[%d] - value presence = %v", i, stmt.Value != nil)
		}
		if stmt.Mutable() != tt.mutable {
			t.Fatalf("tests[%d] - Mutable() = %v", i, stmt.Mutable())
		}
	}
}

func TestMatchExpression(t *testing.T) {
	src := `var result = code match {
	200 => "ok",
	301, 404, 410 => "gone",
	_ => "other"
}`

	prog := parseClean(t, src)

	stmt := prog.Stmts[0].(*ast.VarStmt)
	m, ok := stmt.Value.(*ast.MatchExpr)
	if !ok {
		t.Fatalf("value is %T, expected *ast.MatchExpr", stmt.Value)
	}

	if _, ok := m.Subject.(*ast.Ident); !ok {
		t.Fatalf("subject is %T, expected *ast.Ident", m.Subject)
	}
	if len(m.Arms) != 3 {
		t.Fatalf("arms = %d, expected 3", len(m.Arms))
	}

	if len(m.Arms[0].Patterns) != 1 || m.Arms[0].IsDefault {
		t.Fatalf("arm 0 wrong: %d patterns, default=%v",
			len(m.Arms[0].Patterns), m.Arms[0].IsDefault)
	}
	if len(m.Arms[1].Patterns) != 3 {
		t.Fatalf("arm 1 patterns = %d, expected 3", len(m.Arms[1].Patterns))
	}
	if !m.Arms[2].IsDefault {
		t.Fatalf("arm 2 not default")
	}

	def := m.DefaultArm()
	if def == nil || def != m.Arms[2] {
		t.Fatalf("DefaultArm() wrong")
	}
}

func TestMatchBlockBodiedArm(t *testing.T) {
	src := `var v = x match {
	1 => {
		prepare()
		2
	}
	_ => 0
}`

	prog := parseClean(t, src)

	m := prog.Stmts[0].(*ast.VarStmt).Value.(*ast.MatchExpr)
	if len(m.Arms) != 2 {
		t.Fatalf("arms = %d, expected 2", len(m.Arms))
	}

	block, ok := m.Arms[0].Body.(*ast.BlockExpr)
	if !ok {
		t.Fatalf("arm 0 body is %T, expected *ast.BlockExpr", m.Arms[0].Body)
	}
	if len(block.Stmts) != 2 {
		t.Fatalf("block stmts = %d, expected 2", len(block.Stmts))
	}
}

func TestMatchStatementForm(t *testing.T) {
	src := `status match {
	1 => handleOne()
	_ => handleRest()
}`

	prog := parseClean(t, src)

	stmt, ok := prog.Stmts[0].(*ast.MatchStmt)
	if !ok {
		t.Fatalf("expected *ast.MatchStmt, got %T", prog.Stmts[0])
	}
	if len(stmt.Match.Arms) != 2 {
		t.Fatalf("arms = %d, expected 2", len(stmt.Match.Arms))
	}
}

func TestMatchDuplicateDefaultWarns(t *testing.T) {
	src := `var v = x match {
	_ => 1
	_ => 2
}`

	prog, bag := parseProgram(t, src)

	m := prog.Stmts[0].(*ast.VarStmt).Value.(*ast.MatchExpr)
	if len(m.Arms) != 2 {
		t.Fatalf("arms = %d, expected 2 (both defaults kept)", len(m.Arms))
	}

	if bag.HasErrors() {
		t.Fatalf("duplicate default must not be an error: %v", bag.Errors())
	}

	found := false
	for _, d := range bag.All() {
		if d.Code == diag.CodeParserDuplicateDefault && d.Severity == diag.SeverityWarning {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected duplicate-default warning, got %v", bag.All())
	}
}

func TestMatchIdentPatternIsNotLambda(t *testing.T) {
	src := `var v = x match {
	1 => "one"
	n => "other"
}`

	prog := parseClean(t, src)

	m := prog.Stmts[0].(*ast.VarStmt).Value.(*ast.MatchExpr)
	if len(m.Arms) != 2 {
		t.Fatalf("arms = %d, expected 2", len(m.Arms))
	}
	if m.Arms[1].IsDefault {
		t.Fatalf("identifier pattern must not be a default arm")
	}
	if _, ok := m.Arms[1].Patterns[0].(*ast.Ident); !ok {
		t.Fatalf("pattern is %T, expected *ast.Ident", m.Arms[1].Patterns[0])
	}
}

func TestErrorRecoveryAcrossFunctions(t *testing.T) {
	src := `func broken() {
	var = 5
}

func fine(): int {
	return 1
}`

	prog, bag := parseProgram(t, src)

	if !bag.HasErrors() {
		t.Fatalf("expected errors from the broken function")
	}
	if len(prog.Stmts) != 2 {
		t.Fatalf("statements = %d, expected both functions present", len(prog.Stmts))
	}

	second, ok := prog.Stmts[1].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("second statement is %T, expected *ast.FuncDecl", prog.Stmts[1])
	}
	if second.Name.Name != "fine" {
		t.Fatalf("second function name = %q", second.Name.Name)
	}
	if second.Body == nil || len(second.Body.Stmts) != 1 {
		t.Fatalf("second function body not parsed")
	}
}

func TestErrorRecoveryWithinBlock(t *testing.T) {
	src := `func f() {
	var = 1
	var ok = 2
}`

	prog, bag := parseProgram(t, src)

	if !bag.HasErrors() {
		t.Fatalf("expected errors")
	}

	fn := prog.Stmts[0].(*ast.FuncDecl)
	if len(fn.Body.Stmts) != 1 {
		t.Fatalf("body stmts = %d, expected the statement after the error", len(fn.Body.Stmts))
	}
}

func TestExternalAttribute(t *testing.T) {
	src := `[external]
func print(msg: string)`

	prog := parseClean(t, src)

	fn, ok := prog.Stmts[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("expected *ast.FuncDecl, got %T", prog.Stmts[0])
	}
	if !fn.IsExternal() {
		t.Fatalf("IsExternal() = false")
	}
	if fn.Body != nil {
		t.Fatalf("external function must have no body")
	}
	if len(fn.Params) != 1 || fn.Params[0].Type == nil || fn.Params[0].Type.Name != "string" {
		t.Fatalf("params wrong: %+v", fn.Params)
	}
}

func TestAttributeWithArgs(t *testing.T) {
	src := `[dotnetfunc("System.Console", "WriteLine")]
func writeLine(msg: string)`

	prog := parseClean(t, src)

	fn := prog.Stmts[0].(*ast.FuncDecl)
	if !fn.IsDotNetFunc() {
		t.Fatalf("IsDotNetFunc() = false")
	}
	if len(fn.Attrs) != 1 || len(fn.Attrs[0].Args) != 2 {
		t.Fatalf("attribute args wrong: %+v", fn.Attrs)
	}
}

func TestInterpolatedString(t *testing.T) {
	expr := firstExpr(t, `"Hello, {name}! Score {score:D2}."`)

	interp, ok := expr.(*ast.InterpolatedStringLit)
	if !ok {
		t.Fatalf("expected *ast.InterpolatedStringLit, got %T", expr)
	}

	// text, expr, text, expr(format), text
	if len(interp.Parts) != 5 {
		t.Fatalf("parts = %d, expected 5", len(interp.Parts))
	}
	if interp.Parts[0].Text != "Hello, " {
		t.Fatalf("part 0 = %q", interp.Parts[0].Text)
	}
	if id, ok := interp.Parts[1].Expr.(*ast.Ident); !ok || id.Name != "name" {
		t.Fatalf("part 1 wrong: %+v", interp.Parts[1])
	}
	if interp.Parts[3].Format != "D2" {
		t.Fatalf("part 3 format = %q, expected D2", interp.Parts[3].Format)
	}
	if interp.Parts[4].Text != "." {
		t.Fatalf("part 4 = %q", interp.Parts[4].Text)
	}
}

func TestInterpolationEscapedBraces(t *testing.T) {
	expr := firstExpr(t, `"{{not a hole}}"`)

	lit, ok := expr.(*ast.StringLit)
	if !ok {
		t.Fatalf("expected *ast.StringLit, got %T", expr)
	}
	if lit.Value != "{not a hole}" {
		t.Fatalf("value = %q", lit.Value)
	}
}

func TestInterpolationHoleExpression(t *testing.T) {
	expr := firstExpr(t, `"sum is {a + b}"`)

	interp := expr.(*ast.InterpolatedStringLit)
	bin, ok := interp.Parts[1].Expr.(*ast.BinaryExpr)
	if !ok {
		t.Fatalf("hole expr is %T, expected *ast.BinaryExpr", interp.Parts[1].Expr)
	}
	if bin.Op != "+" {
		t.Fatalf("hole op = %q", bin.Op)
	}
}

func TestBadInterpolationDegrades(t *testing.T) {
	_, bag := parseProgram(t, `var s = "oops {unclosed"`)

	found := false
	for _, d := range bag.All() {
		if d.Code == diag.CodeParserBadInterpolation {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected bad-interpolation diagnostic, got %v", bag.All())
	}
}

func TestIfElseChain(t *testing.T) {
	src := `if x > 1 {
	a()
} else if x > 0 {
	b()
} else {
	c()
}`

	prog := parseClean(t, src)

	stmt := prog.Stmts[0].(*ast.IfStmt)
	elif, ok := stmt.Else.(*ast.IfStmt)
	if !ok {
		t.Fatalf("else is %T, expected *ast.IfStmt", stmt.Else)
	}
	if _, ok := elif.Else.(*ast.BlockExpr); !ok {
		t.Fatalf("final else is %T, expected *ast.BlockExpr", elif.Else)
	}
}

func TestLoops(t *testing.T) {
	src := `while x < 10 {
	x++
}
until done {
	step()
}
loop {
	break
}
for var i = 0; i < 3; i++ {
	use(i)
}
for item in items {
	use(item)
}`

	prog := parseClean(t, src)

	if len(prog.Stmts) != 5 {
		t.Fatalf("statements = %d, expected 5", len(prog.Stmts))
	}
	if _, ok := prog.Stmts[0].(*ast.WhileStmt); !ok {
		t.Fatalf("stmt 0 is %T", prog.Stmts[0])
	}
	if _, ok := prog.Stmts[1].(*ast.UntilStmt); !ok {
		t.Fatalf("stmt 1 is %T", prog.Stmts[1])
	}
	if _, ok := prog.Stmts[2].(*ast.LoopStmt); !ok {
		t.Fatalf("stmt 2 is %T", prog.Stmts[2])
	}

	forStmt, ok := prog.Stmts[3].(*ast.ForStmt)
	if !ok {
		t.Fatalf("stmt 3 is %T", prog.Stmts[3])
	}
	if forStmt.Init == nil || forStmt.Cond == nil || forStmt.Post == nil {
		t.Fatalf("for parts missing: %+v", forStmt)
	}

	forIn, ok := prog.Stmts[4].(*ast.ForInStmt)
	if !ok {
		t.Fatalf("stmt 4 is %T", prog.Stmts[4])
	}
	if forIn.Var.Name != "item" {
		t.Fatalf("for-in var = %q", forIn.Var.Name)
	}
}

func TestNewWithGenerics(t *testing.T) {
	expr := firstExpr(t, `new List<int>(3)`)

	n, ok := expr.(*ast.NewExpr)
	if !ok {
		t.Fatalf("expected *ast.NewExpr, got %T", expr)
	}
	if n.Type.Name != "List" || len(n.Type.Args) != 1 || n.Type.Args[0].Name != "int" {
		t.Fatalf("type wrong: %+v", n.Type)
	}
	if len(n.Args) != 1 {
		t.Fatalf("args = %d, expected 1", len(n.Args))
	}
}

func TestNestedGenerics(t *testing.T) {
	prog := parseClean(t, `var m: Map<string, List<int>> = new Map<string, List<int>>()`)

	stmt := prog.Stmts[0].(*ast.VarStmt)
	if stmt.Type.Name != "Map" || len(stmt.Type.Args) != 2 {
		t.Fatalf("type wrong: %+v", stmt.Type)
	}
	inner := stmt.Type.Args[1]
	if inner.Name != "List" || len(inner.Args) != 1 || inner.Args[0].Name != "int" {
		t.Fatalf("inner type wrong: %+v", inner)
	}
}

func TestLessThanStaysComparison(t *testing.T) {
	expr := firstExpr(t, `a < b`)

	bin, ok := expr.(*ast.BinaryExpr)
	if !ok || bin.Op != "<" {
		t.Fatalf("expected comparison, got %T", expr)
	}
}

func TestLambdas(t *testing.T) {
	short := firstExpr(t, `x => x * 2`)
	lam, ok := short.(*ast.LambdaExpr)
	if !ok {
		t.Fatalf("expected *ast.LambdaExpr, got %T", short)
	}
	if len(lam.Params) != 1 || lam.Params[0].Name.Name != "x" {
		t.Fatalf("shorthand params wrong: %+v", lam.Params)
	}

	full := firstExpr(t, `(a, b) => a + b`)
	lam2 := full.(*ast.LambdaExpr)
	if len(lam2.Params) != 2 {
		t.Fatalf("params = %d, expected 2", len(lam2.Params))
	}

	grouped := firstExpr(t, `(a + b)`)
	if _, ok := grouped.(*ast.BinaryExpr); !ok {
		t.Fatalf("grouping misread as lambda: %T", grouped)
	}
}

func TestPostfixChains(t *testing.T) {
	expr := firstExpr(t, `foo()?.bar[0]`)

	idx, ok := expr.(*ast.IndexExpr)
	if !ok {
		t.Fatalf("expected *ast.IndexExpr, got %T", expr)
	}
	member, ok := idx.Target.(*ast.MemberExpr)
	if !ok || !member.Safe {
		t.Fatalf("expected safe member access, got %T", idx.Target)
	}
	if _, ok := member.Target.(*ast.CallExpr); !ok {
		t.Fatalf("expected call target, got %T", member.Target)
	}
}

func TestThisMemberAssignment(t *testing.T) {
	expr := firstExpr(t, `this.count = 0`)

	assign, ok := expr.(*ast.AssignExpr)
	if !ok {
		t.Fatalf("expected *ast.AssignExpr, got %T", expr)
	}

	member, ok := assign.Target.(*ast.MemberExpr)
	if !ok {
		t.Fatalf("expected *ast.MemberExpr target, got %T", assign.Target)
	}
	if _, ok := member.Target.(*ast.ThisExpr); !ok {
		t.Fatalf("expected *ast.ThisExpr, got %T", member.Target)
	}
	if member.Member.Name != "count" {
		t.Fatalf("member = %q, expected count", member.Member.Name)
	}
}

func TestDottedMemberAfterCallSplits(t *testing.T) {
	expr := firstExpr(t, `foo().bar.baz`)

	outer, ok := expr.(*ast.MemberExpr)
	if !ok {
		t.Fatalf("expected *ast.MemberExpr, got %T", expr)
	}
	if outer.Member.Name != "baz" {
		t.Fatalf("outer member = %q, expected baz", outer.Member.Name)
	}

	inner, ok := outer.Target.(*ast.MemberExpr)
	if !ok {
		t.Fatalf("expected chained *ast.MemberExpr, got %T", outer.Target)
	}
	if inner.Member.Name != "bar" {
		t.Fatalf("inner member = %q, expected bar", inner.Member.Name)
	}
	if _, ok := inner.Target.(*ast.CallExpr); !ok {
		t.Fatalf("expected call target, got %T", inner.Target)
	}
}

func TestSliceExpression(t *testing.T) {
	expr := firstExpr(t, `xs[1..<3]`)

	slice, ok := expr.(*ast.SliceExpr)
	if !ok {
		t.Fatalf("expected *ast.SliceExpr, got %T", expr)
	}
	if !slice.Range.Exclusive {
		t.Fatalf("expected exclusive range")
	}
}

func TestClassDeclaration(t *testing.T) {
	src := `public class Point : Printable {
	x: int
	y: int = 0

	func len(): float {
		return 0.0
	}
}`

	prog := parseClean(t, src)

	cls, ok := prog.Stmts[0].(*ast.ClassDecl)
	if !ok {
		t.Fatalf("expected *ast.ClassDecl, got %T", prog.Stmts[0])
	}
	if cls.Name.Name != "Point" {
		t.Fatalf("name = %q", cls.Name.Name)
	}
	if !cls.HasModifier("PUBLIC") {
		t.Fatalf("missing public modifier")
	}
	if len(cls.Bases) != 1 || cls.Bases[0].Name != "Printable" {
		t.Fatalf("bases wrong: %+v", cls.Bases)
	}
	if len(cls.Members) != 3 {
		t.Fatalf("members = %d, expected 3", len(cls.Members))
	}

	field, ok := cls.Members[1].(*ast.FieldDecl)
	if !ok {
		t.Fatalf("member 1 is %T", cls.Members[1])
	}
	if field.Name.Name != "y" || field.Value == nil {
		t.Fatalf("field wrong: %+v", field)
	}

	if _, ok := cls.Members[2].(*ast.FuncDecl); !ok {
		t.Fatalf("member 2 is %T", cls.Members[2])
	}
}

func TestPropertyDeclaration(t *testing.T) {
	src := `class C {
	name: string { get set }
	value: int { get {
		return 1
	} }
}`

	prog := parseClean(t, src)

	cls := prog.Stmts[0].(*ast.ClassDecl)

	auto, ok := cls.Members[0].(*ast.PropertyDecl)
	if !ok {
		t.Fatalf("member 0 is %T", cls.Members[0])
	}
	if auto.Getter != nil || auto.Setter != nil {
		t.Fatalf("auto property must have nil accessor bodies")
	}

	custom := cls.Members[1].(*ast.PropertyDecl)
	if custom.Getter == nil || len(custom.Getter.Stmts) != 1 {
		t.Fatalf("custom getter not parsed")
	}
}

func TestEnumDeclaration(t *testing.T) {
	src := `enum Color {
	Red
	Green = 2,
	Blue
}`

	prog := parseClean(t, src)

	enum, ok := prog.Stmts[0].(*ast.EnumDecl)
	if !ok {
		t.Fatalf("expected *ast.EnumDecl, got %T", prog.Stmts[0])
	}
	if len(enum.Cases) != 3 {
		t.Fatalf("cases = %d, expected 3", len(enum.Cases))
	}
	if enum.Cases[1].Name.Name != "Green" || enum.Cases[1].Value == nil {
		t.Fatalf("case 1 wrong: %+v", enum.Cases[1])
	}
	if enum.Cases[2].Value != nil {
		t.Fatalf("case 2 should have no explicit value")
	}
}

func TestNamespaceAndImport(t *testing.T) {
	src := `import System.Text

namespace App.Core {
	func main() {
	}
}`

	prog := parseClean(t, src)

	imp, ok := prog.Stmts[0].(*ast.ImportDecl)
	if !ok || imp.Path != "System.Text" {
		t.Fatalf("import wrong: %T %+v", prog.Stmts[0], prog.Stmts[0])
	}

	ns, ok := prog.Stmts[1].(*ast.NamespaceDecl)
	if !ok || ns.Name != "App.Core" {
		t.Fatalf("namespace wrong: %T", prog.Stmts[1])
	}
	if len(ns.Body) != 1 {
		t.Fatalf("namespace body = %d, expected 1", len(ns.Body))
	}
}

func TestInterfaceWithBodylessMembers(t *testing.T) {
	src := `interface Shape {
	func area(): float
	func name(): string
}`

	prog := parseClean(t, src)

	iface := prog.Stmts[0].(*ast.InterfaceDecl)
	if len(iface.Members) != 2 {
		t.Fatalf("members = %d, expected 2", len(iface.Members))
	}
	for i, m := range iface.Members {
		fn := m.(*ast.FuncDecl)
		if fn.Body != nil {
			t.Fatalf("member %d has a body", i)
		}
	}
}

func TestTypeAlias(t *testing.T) {
	prog := parseClean(t, `type Names = List<string>`)

	alias := prog.Stmts[0].(*ast.TypeAliasDecl)
	if alias.Name.Name != "Names" || alias.Target.Name != "List" {
		t.Fatalf("alias wrong: %+v", alias)
	}
}

func TestArrayTypeAnnotation(t *testing.T) {
	prog := parseClean(t, `var xs: int[] = [1, 2, 3]`)

	stmt := prog.Stmts[0].(*ast.VarStmt)
	if !stmt.Type.IsArray() {
		t.Fatalf("IsArray() = false for %q", stmt.Type.Name)
	}
	arr, ok := stmt.Value.(*ast.ArrayLit)
	if !ok || len(arr.Elems) != 3 {
		t.Fatalf("array literal wrong: %T", stmt.Value)
	}
}

func TestSemicolonAndNewlineTerminators(t *testing.T) {
	prog := parseClean(t, "var a = 1; var b = 2\nvar c = 3")

	if len(prog.Stmts) != 3 {
		t.Fatalf("statements = %d, expected 3", len(prog.Stmts))
	}
}

func TestNewlinesAfterOperatorsContinueExpression(t *testing.T) {
	prog := parseClean(t, "var total = a +\n\tb")

	stmt := prog.Stmts[0].(*ast.VarStmt)
	if _, ok := stmt.Value.(*ast.BinaryExpr); !ok {
		t.Fatalf("value is %T, expected binary expression spanning lines", stmt.Value)
	}
}

func TestDepthLimitIsFatal(t *testing.T) {
	src := strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300)

	bag := diag.NewBag()
	_, err := ParseSource(src, bag)
	if err == nil {
		t.Fatalf("expected fatal depth error")
	}
	if _, ok := err.(*FatalError); !ok {
		t.Fatalf("expected *FatalError, got %T", err)
	}

	found := false
	for _, d := range bag.All() {
		if d.Code == diag.CodeParserDepthExceeded {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected depth diagnostic, got %v", bag.All())
	}
}

func TestEmptyInput(t *testing.T) {
	prog := parseClean(t, "")
	if len(prog.Stmts) != 0 {
		t.Fatalf("statements = %d, expected 0", len(prog.Stmts))
	}

	prog = parseClean(t, "\n\n\n")
	if len(prog.Stmts) != 0 {
		t.Fatalf("statements = %d, expected 0 for blank input", len(prog.Stmts))
	}
}

func TestSpansCoverConstructs(t *testing.T) {
	prog := parseClean(t, `var x = 1 + 2`)

	stmt := prog.Stmts[0]
	span := stmt.Span()
	if span.Start != 0 {
		t.Fatalf("span start = %d, expected 0", span.Start)
	}
	if span.End != len("var x = 1 + 2") {
		t.Fatalf("span end = %d, expected %d", span.End, len("var x = 1 + 2"))
	}
}
