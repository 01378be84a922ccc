package ast

import (
	"github.com/sable-lang/sable/internal/lexer"
)

// NumberLit represents a numeric literal. The raw text is preserved verbatim;
// int/float interpretation belongs to consumers.
type NumberLit struct {
	Text string
	span lexer.Span
}

func (l *NumberLit) Span() lexer.Span { return l.span }

// NewNumberLit constructs a number literal node.
func NewNumberLit(text string, span lexer.Span) *NumberLit {
	return &NumberLit{Text: text, span: span}
}

func (l *NumberLit) SetSpan(span lexer.Span) { l.span = span }

func (*NumberLit) exprNode() {}

// IsFloat reports whether the literal contains a decimal point.
func (l *NumberLit) IsFloat() bool {
	for _, r := range l.Text {
		if r == '.' {
			return true
		}
	}
	return false
}

// StringLit represents a plain string literal with its decoded value.
type StringLit struct {
	Value string
	span  lexer.Span
}

func (l *StringLit) Span() lexer.Span { return l.span }

// NewStringLit constructs a string literal node.
func NewStringLit(value string, span lexer.Span) *StringLit {
	return &StringLit{Value: value, span: span}
}

func (l *StringLit) SetSpan(span lexer.Span) { l.span = span }

func (*StringLit) exprNode() {}

// InterpPart is one segment of an interpolated string: either literal text or
// an embedded expression with an optional format specifier.
type InterpPart struct {
	Text   string // literal segment; empty when Expr is set
	Expr   Expr   // embedded expression; nil for literal segments
	Format string // optional format specifier ("F2" in "{x:F2}")
}

// InterpolatedStringLit represents a string literal containing "{expr}"
// holes, decomposed into ordered parts.
type InterpolatedStringLit struct {
	Parts []InterpPart
	span  lexer.Span
}

func (l *InterpolatedStringLit) Span() lexer.Span { return l.span }

// NewInterpolatedStringLit constructs an interpolated string node.
func NewInterpolatedStringLit(parts []InterpPart, span lexer.Span) *InterpolatedStringLit {
	return &InterpolatedStringLit{Parts: parts, span: span}
}

func (l *InterpolatedStringLit) SetSpan(span lexer.Span) { l.span = span }

func (*InterpolatedStringLit) exprNode() {}

// BoolLit represents a boolean literal.
type BoolLit struct {
	Value bool
	span  lexer.Span
}

func (l *BoolLit) Span() lexer.Span { return l.span }

// NewBoolLit constructs a boolean literal node.
func NewBoolLit(value bool, span lexer.Span) *BoolLit {
	return &BoolLit{Value: value, span: span}
}

func (l *BoolLit) SetSpan(span lexer.Span) { l.span = span }

func (*BoolLit) exprNode() {}

// NullLit represents the null literal.
type NullLit struct {
	span lexer.Span
}

func (l *NullLit) Span() lexer.Span { return l.span }

// NewNullLit constructs a null literal node.
func NewNullLit(span lexer.Span) *NullLit {
	return &NullLit{span: span}
}

func (l *NullLit) SetSpan(span lexer.Span) { l.span = span }

func (*NullLit) exprNode() {}

// Ident represents a plain single-segment identifier.
type Ident struct {
	Name string
	span lexer.Span
}

func (i *Ident) Span() lexer.Span { return i.span }

// NewIdent constructs an identifier node.
func NewIdent(name string, span lexer.Span) *Ident {
	return &Ident{Name: name, span: span}
}

func (i *Ident) SetSpan(span lexer.Span) { i.span = span }

func (*Ident) exprNode() {}

// QualifiedIdent represents a dotted multi-segment name lexed as a single
// unit ("System.Console.WriteLine").
type QualifiedIdent struct {
	Name string
	span lexer.Span
}

func (q *QualifiedIdent) Span() lexer.Span { return q.span }

// NewQualifiedIdent constructs a qualified identifier node.
func NewQualifiedIdent(name string, span lexer.Span) *QualifiedIdent {
	return &QualifiedIdent{Name: name, span: span}
}

func (q *QualifiedIdent) SetSpan(span lexer.Span) { q.span = span }

func (*QualifiedIdent) exprNode() {}

// Namespace returns the dotted prefix before the trailing segment.
func (q *QualifiedIdent) Namespace() string {
	ns, _ := lexer.SplitQualified(q.Name)
	return ns
}

// Last returns the trailing segment of the dotted name.
func (q *QualifiedIdent) Last() string {
	_, last := lexer.SplitQualified(q.Name)
	return last
}

// ThisExpr represents a reference to the receiver instance.
type ThisExpr struct {
	span lexer.Span
}

func (e *ThisExpr) Span() lexer.Span { return e.span }

// NewThisExpr constructs a this-reference node.
func NewThisExpr(span lexer.Span) *ThisExpr {
	return &ThisExpr{span: span}
}

func (e *ThisExpr) SetSpan(span lexer.Span) { e.span = span }

func (*ThisExpr) exprNode() {}

// UnaryExpr represents a prefix ("-x", "!x", "++x") or postfix ("x++")
// unary expression.
type UnaryExpr struct {
	Op      lexer.TokenKind
	Operand Expr
	Postfix bool
	span    lexer.Span
}

func (e *UnaryExpr) Span() lexer.Span { return e.span }

// NewUnaryExpr constructs a unary expression node.
func NewUnaryExpr(op lexer.TokenKind, operand Expr, postfix bool, span lexer.Span) *UnaryExpr {
	return &UnaryExpr{
		Op:      op,
		Operand: operand,
		Postfix: postfix,
		span:    span,
	}
}

func (e *UnaryExpr) SetSpan(span lexer.Span) { e.span = span }

func (*UnaryExpr) exprNode() {}

// BinaryExpr represents an infix binary expression.
type BinaryExpr struct {
	Op    lexer.TokenKind
	Left  Expr
	Right Expr
	span  lexer.Span
}

func (e *BinaryExpr) Span() lexer.Span { return e.span }

// NewBinaryExpr constructs a binary expression node.
func NewBinaryExpr(op lexer.TokenKind, left, right Expr, span lexer.Span) *BinaryExpr {
	return &BinaryExpr{
		Op:    op,
		Left:  left,
		Right: right,
		span:  span,
	}
}

func (e *BinaryExpr) SetSpan(span lexer.Span) { e.span = span }

func (*BinaryExpr) exprNode() {}

// AssignExpr represents a plain or compound assignment. Op is ASSIGN for "="
// and the compound token kind ("+=", "-=", ...) otherwise.
type AssignExpr struct {
	Op     lexer.TokenKind
	Target Expr
	Value  Expr
	span   lexer.Span
}

func (e *AssignExpr) Span() lexer.Span { return e.span }

// NewAssignExpr constructs an assignment expression node.
func NewAssignExpr(op lexer.TokenKind, target, value Expr, span lexer.Span) *AssignExpr {
	return &AssignExpr{
		Op:     op,
		Target: target,
		Value:  value,
		span:   span,
	}
}

func (e *AssignExpr) SetSpan(span lexer.Span) { e.span = span }

func (*AssignExpr) exprNode() {}

// CallExpr represents a function or method call.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	span   lexer.Span
}

func (e *CallExpr) Span() lexer.Span { return e.span }

// NewCallExpr constructs a call expression node.
func NewCallExpr(callee Expr, args []Expr, span lexer.Span) *CallExpr {
	return &CallExpr{
		Callee: callee,
		Args:   args,
		span:   span,
	}
}

func (e *CallExpr) SetSpan(span lexer.Span) { e.span = span }

func (*CallExpr) exprNode() {}

// NewExpr represents a constructor call: "new List<int>(3)".
type NewExpr struct {
	Type *TypeRef
	Args []Expr
	span lexer.Span
}

func (e *NewExpr) Span() lexer.Span { return e.span }

// NewNewExpr constructs a constructor call node.
func NewNewExpr(typ *TypeRef, args []Expr, span lexer.Span) *NewExpr {
	return &NewExpr{
		Type: typ,
		Args: args,
		span: span,
	}
}

func (e *NewExpr) SetSpan(span lexer.Span) { e.span = span }

func (*NewExpr) exprNode() {}

// MemberExpr represents member access; Safe marks the null-conditional form
// ("obj?.field").
type MemberExpr struct {
	Target Expr
	Member *Ident
	Safe   bool
	span   lexer.Span
}

func (e *MemberExpr) Span() lexer.Span { return e.span }

// NewMemberExpr constructs a member access node.
func NewMemberExpr(target Expr, member *Ident, safe bool, span lexer.Span) *MemberExpr {
	return &MemberExpr{
		Target: target,
		Member: member,
		Safe:   safe,
		span:   span,
	}
}

func (e *MemberExpr) SetSpan(span lexer.Span) { e.span = span }

func (*MemberExpr) exprNode() {}

// IndexExpr represents array indexing with a single element expression.
type IndexExpr struct {
	Target Expr
	Index  Expr
	span   lexer.Span
}

func (e *IndexExpr) Span() lexer.Span { return e.span }

// NewIndexExpr constructs an index expression node.
func NewIndexExpr(target, index Expr, span lexer.Span) *IndexExpr {
	return &IndexExpr{
		Target: target,
		Index:  index,
		span:   span,
	}
}

func (e *IndexExpr) SetSpan(span lexer.Span) { e.span = span }

func (*IndexExpr) exprNode() {}

// SliceExpr represents array slicing with a range index: "xs[1..3]".
type SliceExpr struct {
	Target Expr
	Range  *RangeExpr
	span   lexer.Span
}

func (e *SliceExpr) Span() lexer.Span { return e.span }

// NewSliceExpr constructs a slice expression node.
func NewSliceExpr(target Expr, rng *RangeExpr, span lexer.Span) *SliceExpr {
	return &SliceExpr{
		Target: target,
		Range:  rng,
		span:   span,
	}
}

func (e *SliceExpr) SetSpan(span lexer.Span) { e.span = span }

func (*SliceExpr) exprNode() {}

// ArrayLit represents an array literal: "[1, 2, 3]".
type ArrayLit struct {
	Elems []Expr
	span  lexer.Span
}

func (e *ArrayLit) Span() lexer.Span { return e.span }

// NewArrayLit constructs an array literal node.
func NewArrayLit(elems []Expr, span lexer.Span) *ArrayLit {
	return &ArrayLit{Elems: elems, span: span}
}

func (e *ArrayLit) SetSpan(span lexer.Span) { e.span = span }

func (*ArrayLit) exprNode() {}

// LambdaExpr represents an anonymous function: "x => x * 2" or
// "(a, b) => { ... }". Body is a plain expression or a *BlockExpr.
type LambdaExpr struct {
	Params []*Param
	Body   Expr
	span   lexer.Span
}

func (e *LambdaExpr) Span() lexer.Span { return e.span }

// NewLambdaExpr constructs a lambda expression node.
func NewLambdaExpr(params []*Param, body Expr, span lexer.Span) *LambdaExpr {
	return &LambdaExpr{
		Params: params,
		Body:   body,
		span:   span,
	}
}

func (e *LambdaExpr) SetSpan(span lexer.Span) { e.span = span }

func (*LambdaExpr) exprNode() {}

// RangeExpr represents "low..high" (inclusive) or "low..<high" (exclusive).
type RangeExpr struct {
	Low       Expr
	High      Expr
	Exclusive bool
	span      lexer.Span
}

func (e *RangeExpr) Span() lexer.Span { return e.span }

// NewRangeExpr constructs a range expression node.
func NewRangeExpr(low, high Expr, exclusive bool, span lexer.Span) *RangeExpr {
	return &RangeExpr{
		Low:       low,
		High:      high,
		Exclusive: exclusive,
		span:      span,
	}
}

func (e *RangeExpr) SetSpan(span lexer.Span) { e.span = span }

func (*RangeExpr) exprNode() {}

// MatchExpr represents the expression form of the match construct: a subject
// value and an ordered list of arms.
type MatchExpr struct {
	Subject Expr
	Arms    []*MatchArm
	span    lexer.Span
}

func (e *MatchExpr) Span() lexer.Span { return e.span }

// NewMatchExpr constructs a match expression node.
func NewMatchExpr(subject Expr, arms []*MatchArm, span lexer.Span) *MatchExpr {
	return &MatchExpr{
		Subject: subject,
		Arms:    arms,
		span:    span,
	}
}

func (e *MatchExpr) SetSpan(span lexer.Span) { e.span = span }

func (*MatchExpr) exprNode() {}

// DefaultArm returns the first default arm, or nil when none exists.
func (e *MatchExpr) DefaultArm() *MatchArm {
	for _, arm := range e.Arms {
		if arm.IsDefault {
			return arm
		}
	}
	return nil
}

// BlockExpr represents a brace-delimited statement list. It satisfies both
// Expr and Stmt: match arms use the expression form, control flow the
// statement form.
type BlockExpr struct {
	Stmts []Stmt
	span  lexer.Span
}

func (b *BlockExpr) Span() lexer.Span { return b.span }

// NewBlockExpr constructs a block node.
func NewBlockExpr(stmts []Stmt, span lexer.Span) *BlockExpr {
	return &BlockExpr{Stmts: stmts, span: span}
}

func (b *BlockExpr) SetSpan(span lexer.Span) { b.span = span }

func (*BlockExpr) exprNode() {}
func (*BlockExpr) stmtNode() {}
