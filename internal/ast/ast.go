package ast

import (
	"github.com/sable-lang/sable/internal/lexer"
)

// Node represents any AST node with an associated source span.
type Node interface {
	Span() lexer.Span
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node. Declarations are statements so that a
// Program body and a namespace/class body share the same list shape.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root node: a flat ordered list of top-level statements and
// declarations. The tree below it is built once per parse and treated as
// immutable by consumers.
type Program struct {
	Stmts []Stmt
	span  lexer.Span
}

// Span returns the span covering the entire program.
func (p *Program) Span() lexer.Span { return p.span }

// NewProgram constructs a program node with the provided span.
func NewProgram(span lexer.Span) *Program {
	return &Program{span: span}
}

// SetSpan updates the program span.
func (p *Program) SetSpan(span lexer.Span) {
	p.span = span
}

// TypeRef is a type annotation: a (possibly qualified or array-suffixed) name
// plus optional generic arguments.
type TypeRef struct {
	Name string
	Args []*TypeRef
	span lexer.Span
}

// Span returns the type reference span.
func (t *TypeRef) Span() lexer.Span { return t.span }

// NewTypeRef constructs a type reference node.
func NewTypeRef(name string, args []*TypeRef, span lexer.Span) *TypeRef {
	return &TypeRef{
		Name: name,
		Args: args,
		span: span,
	}
}

// SetSpan updates the type reference span.
func (t *TypeRef) SetSpan(span lexer.Span) {
	t.span = span
}

// IsArray reports whether the reference uses the "T[]" shorthand.
func (t *TypeRef) IsArray() bool {
	return len(t.Name) > 2 && t.Name[len(t.Name)-2:] == "[]"
}

// Param represents a function or lambda parameter.
type Param struct {
	Name    *Ident
	Type    *TypeRef // nil when unannotated
	Default Expr     // nil when no default value
	span    lexer.Span
}

// Span returns the parameter span.
func (p *Param) Span() lexer.Span { return p.span }

// NewParam constructs a parameter node.
func NewParam(name *Ident, typ *TypeRef, def Expr, span lexer.Span) *Param {
	return &Param{
		Name:    name,
		Type:    typ,
		Default: def,
		span:    span,
	}
}

// Attribute represents one "[Name(args...)]" entry attached to a declaration.
// Well-known names carry downstream meaning (skip code generation) but get no
// special grammar.
type Attribute struct {
	Name string
	Args []Expr
	span lexer.Span
}

// Span returns the attribute span.
func (a *Attribute) Span() lexer.Span { return a.span }

// NewAttribute constructs an attribute node.
func NewAttribute(name string, args []Expr, span lexer.Span) *Attribute {
	return &Attribute{
		Name: name,
		Args: args,
		span: span,
	}
}

// IsExternal reports whether this is the "external" marker attribute.
func (a *Attribute) IsExternal() bool { return a.Name == "external" }

// IsDotNetFunc reports whether this is the "dotnetfunc" marker attribute.
func (a *Attribute) IsDotNetFunc() bool { return a.Name == "dotnetfunc" }

// HasAttribute reports whether attrs contains an attribute with the name.
func HasAttribute(attrs []*Attribute, name string) bool {
	for _, a := range attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// MatchArm is one pattern-list to result mapping inside a match construct.
// A default arm has IsDefault set and an empty pattern list (the wildcard
// "_"); every other arm carries at least one pattern expression.
type MatchArm struct {
	Patterns  []Expr
	Body      Expr // a plain expression or a *BlockExpr
	IsDefault bool
	span      lexer.Span
}

// Span returns the arm span.
func (a *MatchArm) Span() lexer.Span { return a.span }

// NewMatchArm constructs a match arm node.
func NewMatchArm(patterns []Expr, body Expr, isDefault bool, span lexer.Span) *MatchArm {
	return &MatchArm{
		Patterns:  patterns,
		Body:      body,
		IsDefault: isDefault,
		span:      span,
	}
}

// SetSpan updates the arm span.
func (a *MatchArm) SetSpan(span lexer.Span) {
	a.span = span
}
