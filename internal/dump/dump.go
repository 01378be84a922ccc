// Package dump renders token streams and syntax trees as JSON or YAML for
// tooling and golden tests.
package dump

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/sable-lang/sable/internal/ast"
	"github.com/sable-lang/sable/internal/lexer"
)

// Tokens converts a token stream into its serializable form.
func Tokens(toks []lexer.Token) []map[string]any {
	out := make([]map[string]any, 0, len(toks))
	for _, tok := range toks {
		m := map[string]any{
			"kind": string(tok.Kind),
			"text": tok.Text,
			"span": span(tok.Span),
		}
		if tok.Value != tok.Text {
			m["value"] = tok.Value
		}
		out = append(out, m)
	}
	return out
}

// Program converts a syntax tree into its serializable form.
func Program(prog *ast.Program) map[string]any {
	stmts := make([]any, 0, len(prog.Stmts))
	for _, stmt := range prog.Stmts {
		stmts = append(stmts, node(stmt))
	}
	return map[string]any{
		"kind":  "Program",
		"stmts": stmts,
		"span":  span(prog.Span()),
	}
}

// JSON marshals v as indented JSON.
func JSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// YAML marshals v as YAML.
func YAML(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func span(s lexer.Span) map[string]any {
	return map[string]any{
		"line":   s.Line,
		"column": s.Column,
		"start":  s.Start,
		"end":    s.End,
	}
}

func exprs(list []ast.Expr) []any {
	out := make([]any, 0, len(list))
	for _, e := range list {
		out = append(out, node(e))
	}
	return out
}

func stmts(list []ast.Stmt) []any {
	out := make([]any, 0, len(list))
	for _, s := range list {
		out = append(out, node(s))
	}
	return out
}

func modifiers(mods []lexer.TokenKind) []string {
	if len(mods) == 0 {
		return nil
	}
	out := make([]string, 0, len(mods))
	for _, m := range mods {
		out = append(out, string(m))
	}
	return out
}

func attributes(attrs []*ast.Attribute) []any {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]any, 0, len(attrs))
	for _, a := range attrs {
		m := map[string]any{"name": a.Name}
		if len(a.Args) > 0 {
			m["args"] = exprs(a.Args)
		}
		out = append(out, m)
	}
	return out
}

func typeRef(t *ast.TypeRef) any {
	if t == nil {
		return nil
	}
	m := map[string]any{"name": t.Name}
	if len(t.Args) > 0 {
		args := make([]any, 0, len(t.Args))
		for _, a := range t.Args {
			args = append(args, typeRef(a))
		}
		m["args"] = args
	}
	return m
}

func params(list []*ast.Param) []any {
	out := make([]any, 0, len(list))
	for _, p := range list {
		m := map[string]any{"name": p.Name.Name}
		if p.Type != nil {
			m["type"] = typeRef(p.Type)
		}
		if p.Default != nil {
			m["default"] = node(p.Default)
		}
		out = append(out, m)
	}
	return out
}

// node converts one AST node. Unknown node types are reported by their Go
// type so a missing case shows up in output rather than vanishing.
func node(n ast.Node) map[string]any {
	if n == nil {
		return nil
	}

	m := map[string]any{"span": span(n.Span())}

	switch n := n.(type) {
	case *ast.NumberLit:
		m["kind"] = "NumberLit"
		m["text"] = n.Text
	case *ast.StringLit:
		m["kind"] = "StringLit"
		m["value"] = n.Value
	case *ast.InterpolatedStringLit:
		m["kind"] = "InterpolatedString"
		parts := make([]any, 0, len(n.Parts))
		for _, part := range n.Parts {
			pm := map[string]any{}
			if part.Expr != nil {
				pm["expr"] = node(part.Expr)
				if part.Format != "" {
					pm["format"] = part.Format
				}
			} else {
				pm["text"] = part.Text
			}
			parts = append(parts, pm)
		}
		m["parts"] = parts
	case *ast.BoolLit:
		m["kind"] = "BoolLit"
		m["value"] = n.Value
	case *ast.NullLit:
		m["kind"] = "NullLit"
	case *ast.Ident:
		m["kind"] = "Ident"
		m["name"] = n.Name
	case *ast.QualifiedIdent:
		m["kind"] = "QualifiedIdent"
		m["name"] = n.Name
	case *ast.ThisExpr:
		m["kind"] = "This"
	case *ast.UnaryExpr:
		m["kind"] = "Unary"
		m["op"] = string(n.Op)
		m["postfix"] = n.Postfix
		m["operand"] = node(n.Operand)
	case *ast.BinaryExpr:
		m["kind"] = "Binary"
		m["op"] = string(n.Op)
		m["left"] = node(n.Left)
		m["right"] = node(n.Right)
	case *ast.AssignExpr:
		m["kind"] = "Assign"
		m["op"] = string(n.Op)
		m["target"] = node(n.Target)
		m["value"] = node(n.Value)
	case *ast.CallExpr:
		m["kind"] = "Call"
		m["callee"] = node(n.Callee)
		m["args"] = exprs(n.Args)
	case *ast.NewExpr:
		m["kind"] = "New"
		m["type"] = typeRef(n.Type)
		m["args"] = exprs(n.Args)
	case *ast.MemberExpr:
		m["kind"] = "Member"
		m["target"] = node(n.Target)
		m["member"] = n.Member.Name
		m["safe"] = n.Safe
	case *ast.IndexExpr:
		m["kind"] = "Index"
		m["target"] = node(n.Target)
		m["index"] = node(n.Index)
	case *ast.SliceExpr:
		m["kind"] = "Slice"
		m["target"] = node(n.Target)
		m["range"] = node(n.Range)
	case *ast.ArrayLit:
		m["kind"] = "ArrayLit"
		m["elems"] = exprs(n.Elems)
	case *ast.LambdaExpr:
		m["kind"] = "Lambda"
		m["params"] = params(n.Params)
		m["body"] = node(n.Body)
	case *ast.RangeExpr:
		m["kind"] = "Range"
		m["low"] = node(n.Low)
		m["high"] = node(n.High)
		m["exclusive"] = n.Exclusive
	case *ast.MatchExpr:
		m["kind"] = "Match"
		m["subject"] = node(n.Subject)
		arms := make([]any, 0, len(n.Arms))
		for _, arm := range n.Arms {
			am := map[string]any{
				"default": arm.IsDefault,
				"body":    node(arm.Body),
			}
			if len(arm.Patterns) > 0 {
				am["patterns"] = exprs(arm.Patterns)
			}
			arms = append(arms, am)
		}
		m["arms"] = arms
	case *ast.BlockExpr:
		m["kind"] = "Block"
		m["stmts"] = stmts(n.Stmts)
	case *ast.ExprStmt:
		m["kind"] = "ExprStmt"
		m["expr"] = node(n.Expr)
	case *ast.VarStmt:
		m["kind"] = "VarStmt"
		m["keyword"] = string(n.Keyword)
		m["name"] = n.Name.Name
		if n.Type != nil {
			m["type"] = typeRef(n.Type)
		}
		if n.Value != nil {
			m["value"] = node(n.Value)
		}
	case *ast.IfStmt:
		m["kind"] = "If"
		m["cond"] = node(n.Cond)
		m["then"] = node(n.Then)
		if n.Else != nil {
			m["else"] = node(n.Else)
		}
	case *ast.WhileStmt:
		m["kind"] = "While"
		m["cond"] = node(n.Cond)
		m["body"] = node(n.Body)
	case *ast.ForStmt:
		m["kind"] = "For"
		if n.Init != nil {
			m["init"] = node(n.Init)
		}
		if n.Cond != nil {
			m["cond"] = node(n.Cond)
		}
		if n.Post != nil {
			m["post"] = node(n.Post)
		}
		m["body"] = node(n.Body)
	case *ast.ForInStmt:
		m["kind"] = "ForIn"
		m["var"] = n.Var.Name
		m["iterable"] = node(n.Iterable)
		m["body"] = node(n.Body)
	case *ast.LoopStmt:
		m["kind"] = "Loop"
		m["body"] = node(n.Body)
	case *ast.UntilStmt:
		m["kind"] = "Until"
		m["cond"] = node(n.Cond)
		m["body"] = node(n.Body)
	case *ast.ReturnStmt:
		m["kind"] = "Return"
		if n.Value != nil {
			m["value"] = node(n.Value)
		}
	case *ast.BreakStmt:
		m["kind"] = "Break"
	case *ast.ContinueStmt:
		m["kind"] = "Continue"
	case *ast.MatchStmt:
		m["kind"] = "MatchStmt"
		m["match"] = node(n.Match)
	case *ast.FuncDecl:
		m["kind"] = "FuncDecl"
		m["name"] = n.Name.Name
		m["params"] = params(n.Params)
		if n.ReturnType != nil {
			m["returns"] = typeRef(n.ReturnType)
		}
		if n.Body != nil {
			m["body"] = node(n.Body)
		}
		if mods := modifiers(n.Modifiers); mods != nil {
			m["modifiers"] = mods
		}
		if attrs := attributes(n.Attrs); attrs != nil {
			m["attributes"] = attrs
		}
	case *ast.ClassDecl:
		m["kind"] = "ClassDecl"
		m["name"] = n.Name.Name
		if len(n.Bases) > 0 {
			bases := make([]any, 0, len(n.Bases))
			for _, b := range n.Bases {
				bases = append(bases, typeRef(b))
			}
			m["bases"] = bases
		}
		m["members"] = stmts(n.Members)
		if mods := modifiers(n.Modifiers); mods != nil {
			m["modifiers"] = mods
		}
		if attrs := attributes(n.Attrs); attrs != nil {
			m["attributes"] = attrs
		}
	case *ast.StructDecl:
		m["kind"] = "StructDecl"
		m["name"] = n.Name.Name
		m["members"] = stmts(n.Members)
	case *ast.InterfaceDecl:
		m["kind"] = "InterfaceDecl"
		m["name"] = n.Name.Name
		m["members"] = stmts(n.Members)
	case *ast.EnumDecl:
		m["kind"] = "EnumDecl"
		m["name"] = n.Name.Name
		cases := make([]any, 0, len(n.Cases))
		for _, c := range n.Cases {
			cm := map[string]any{"name": c.Name.Name}
			if c.Value != nil {
				cm["value"] = node(c.Value)
			}
			cases = append(cases, cm)
		}
		m["cases"] = cases
	case *ast.FieldDecl:
		m["kind"] = "FieldDecl"
		m["name"] = n.Name.Name
		if n.Type != nil {
			m["type"] = typeRef(n.Type)
		}
		if n.Value != nil {
			m["value"] = node(n.Value)
		}
		if mods := modifiers(n.Modifiers); mods != nil {
			m["modifiers"] = mods
		}
	case *ast.PropertyDecl:
		m["kind"] = "PropertyDecl"
		m["name"] = n.Name.Name
		m["type"] = typeRef(n.Type)
		if n.Getter != nil {
			m["getter"] = node(n.Getter)
		}
		if n.Setter != nil {
			m["setter"] = node(n.Setter)
		}
	case *ast.NamespaceDecl:
		m["kind"] = "NamespaceDecl"
		m["name"] = n.Name
		m["body"] = stmts(n.Body)
	case *ast.ImportDecl:
		m["kind"] = "ImportDecl"
		m["path"] = n.Path
	case *ast.TypeAliasDecl:
		m["kind"] = "TypeAliasDecl"
		m["name"] = n.Name.Name
		m["target"] = typeRef(n.Target)
	default:
		m["kind"] = fmt.Sprintf("%T", n)
	}

	return m
}
