package ast

import (
	"github.com/sable-lang/sable/internal/lexer"
)

// FuncDecl represents a function or method declaration.
type FuncDecl struct {
	Name       *Ident
	Params     []*Param
	ReturnType *TypeRef // nil when no return type is declared
	Body       *BlockExpr
	Modifiers  []lexer.TokenKind
	Attrs      []*Attribute
	span       lexer.Span
}

func (d *FuncDecl) Span() lexer.Span { return d.span }

// NewFuncDecl constructs a function declaration node.
func NewFuncDecl(name *Ident, params []*Param, ret *TypeRef, body *BlockExpr, span lexer.Span) *FuncDecl {
	return &FuncDecl{
		Name:       name,
		Params:     params,
		ReturnType: ret,
		Body:       body,
		span:       span,
	}
}

func (d *FuncDecl) SetSpan(span lexer.Span) { d.span = span }

func (*FuncDecl) stmtNode() {}

// IsExternal reports whether the function carries the "external" attribute.
func (d *FuncDecl) IsExternal() bool { return HasAttribute(d.Attrs, "external") }

// IsDotNetFunc reports whether the function carries the "dotnetfunc" attribute.
func (d *FuncDecl) IsDotNetFunc() bool { return HasAttribute(d.Attrs, "dotnetfunc") }

// HasModifier reports whether the declaration carries the given modifier.
func (d *FuncDecl) HasModifier(mod lexer.TokenKind) bool {
	return hasModifier(d.Modifiers, mod)
}

func hasModifier(mods []lexer.TokenKind, mod lexer.TokenKind) bool {
	for _, m := range mods {
		if m == mod {
			return true
		}
	}
	return false
}

// ClassDecl represents a class declaration.
type ClassDecl struct {
	Name      *Ident
	Bases     []*TypeRef
	Members   []Stmt
	Modifiers []lexer.TokenKind
	Attrs     []*Attribute
	span      lexer.Span
}

func (d *ClassDecl) Span() lexer.Span { return d.span }

// NewClassDecl constructs a class declaration node.
func NewClassDecl(name *Ident, bases []*TypeRef, members []Stmt, span lexer.Span) *ClassDecl {
	return &ClassDecl{
		Name:    name,
		Bases:   bases,
		Members: members,
		span:    span,
	}
}

func (d *ClassDecl) SetSpan(span lexer.Span) { d.span = span }

func (*ClassDecl) stmtNode() {}

// HasModifier reports whether the declaration carries the given modifier.
func (d *ClassDecl) HasModifier(mod lexer.TokenKind) bool {
	return hasModifier(d.Modifiers, mod)
}

// StructDecl represents a struct declaration.
type StructDecl struct {
	Name      *Ident
	Members   []Stmt
	Modifiers []lexer.TokenKind
	Attrs     []*Attribute
	span      lexer.Span
}

func (d *StructDecl) Span() lexer.Span { return d.span }

// NewStructDecl constructs a struct declaration node.
func NewStructDecl(name *Ident, members []Stmt, span lexer.Span) *StructDecl {
	return &StructDecl{
		Name:    name,
		Members: members,
		span:    span,
	}
}

func (d *StructDecl) SetSpan(span lexer.Span) { d.span = span }

func (*StructDecl) stmtNode() {}

// InterfaceDecl represents an interface declaration; member functions have
// nil bodies.
type InterfaceDecl struct {
	Name      *Ident
	Bases     []*TypeRef
	Members   []Stmt
	Modifiers []lexer.TokenKind
	span      lexer.Span
}

func (d *InterfaceDecl) Span() lexer.Span { return d.span }

// NewInterfaceDecl constructs an interface declaration node.
func NewInterfaceDecl(name *Ident, bases []*TypeRef, members []Stmt, span lexer.Span) *InterfaceDecl {
	return &InterfaceDecl{
		Name:    name,
		Bases:   bases,
		Members: members,
		span:    span,
	}
}

func (d *InterfaceDecl) SetSpan(span lexer.Span) { d.span = span }

func (*InterfaceDecl) stmtNode() {}

// EnumCase is one named enum member with an optional explicit value.
type EnumCase struct {
	Name  *Ident
	Value Expr // nil when implicit
	span  lexer.Span
}

func (c *EnumCase) Span() lexer.Span { return c.span }

// NewEnumCase constructs an enum case node.
func NewEnumCase(name *Ident, value Expr, span lexer.Span) *EnumCase {
	return &EnumCase{
		Name:  name,
		Value: value,
		span:  span,
	}
}

// EnumDecl represents an enum declaration.
type EnumDecl struct {
	Name      *Ident
	Cases     []*EnumCase
	Modifiers []lexer.TokenKind
	span      lexer.Span
}

func (d *EnumDecl) Span() lexer.Span { return d.span }

// NewEnumDecl constructs an enum declaration node.
func NewEnumDecl(name *Ident, cases []*EnumCase, span lexer.Span) *EnumDecl {
	return &EnumDecl{
		Name:  name,
		Cases: cases,
		span:  span,
	}
}

func (d *EnumDecl) SetSpan(span lexer.Span) { d.span = span }

func (*EnumDecl) stmtNode() {}

// FieldDecl represents a class/struct field with an optional initializer.
type FieldDecl struct {
	Name      *Ident
	Type      *TypeRef
	Value     Expr
	Modifiers []lexer.TokenKind
	span      lexer.Span
}

func (d *FieldDecl) Span() lexer.Span { return d.span }

// NewFieldDecl constructs a field declaration node.
func NewFieldDecl(name *Ident, typ *TypeRef, value Expr, span lexer.Span) *FieldDecl {
	return &FieldDecl{
		Name:  name,
		Type:  typ,
		Value: value,
		span:  span,
	}
}

func (d *FieldDecl) SetSpan(span lexer.Span) { d.span = span }

func (*FieldDecl) stmtNode() {}

// HasModifier reports whether the declaration carries the given modifier.
func (d *FieldDecl) HasModifier(mod lexer.TokenKind) bool {
	return hasModifier(d.Modifiers, mod)
}

// PropertyDecl represents a property with optional custom accessor bodies.
// A nil Getter or Setter means the accessor is auto-implemented or absent.
type PropertyDecl struct {
	Name      *Ident
	Type      *TypeRef
	Getter    *BlockExpr
	Setter    *BlockExpr
	Modifiers []lexer.TokenKind
	span      lexer.Span
}

func (d *PropertyDecl) Span() lexer.Span { return d.span }

// NewPropertyDecl constructs a property declaration node.
func NewPropertyDecl(name *Ident, typ *TypeRef, getter, setter *BlockExpr, span lexer.Span) *PropertyDecl {
	return &PropertyDecl{
		Name:   name,
		Type:   typ,
		Getter: getter,
		Setter: setter,
		span:   span,
	}
}

func (d *PropertyDecl) SetSpan(span lexer.Span) { d.span = span }

func (*PropertyDecl) stmtNode() {}

// NamespaceDecl represents a namespace declaration with a possibly dotted
// name and a brace-delimited body.
type NamespaceDecl struct {
	Name string
	Body []Stmt
	span lexer.Span
}

func (d *NamespaceDecl) Span() lexer.Span { return d.span }

// NewNamespaceDecl constructs a namespace declaration node.
func NewNamespaceDecl(name string, body []Stmt, span lexer.Span) *NamespaceDecl {
	return &NamespaceDecl{
		Name: name,
		Body: body,
		span: span,
	}
}

func (d *NamespaceDecl) SetSpan(span lexer.Span) { d.span = span }

func (*NamespaceDecl) stmtNode() {}

// ImportDecl represents an import of a namespace by dotted name.
type ImportDecl struct {
	Path string
	span lexer.Span
}

func (d *ImportDecl) Span() lexer.Span { return d.span }

// NewImportDecl constructs an import declaration node.
func NewImportDecl(path string, span lexer.Span) *ImportDecl {
	return &ImportDecl{Path: path, span: span}
}

func (d *ImportDecl) SetSpan(span lexer.Span) { d.span = span }

func (*ImportDecl) stmtNode() {}

// TypeAliasDecl represents "type Name = Target".
type TypeAliasDecl struct {
	Name   *Ident
	Target *TypeRef
	span   lexer.Span
}

func (d *TypeAliasDecl) Span() lexer.Span { return d.span }

// NewTypeAliasDecl constructs a type alias node.
func NewTypeAliasDecl(name *Ident, target *TypeRef, span lexer.Span) *TypeAliasDecl {
	return &TypeAliasDecl{
		Name:   name,
		Target: target,
		span:   span,
	}
}

func (d *TypeAliasDecl) SetSpan(span lexer.Span) { d.span = span }

func (*TypeAliasDecl) stmtNode() {}
