package ast

import (
	"github.com/sable-lang/sable/internal/lexer"
)

// ExprStmt represents an expression evaluated for its effect.
type ExprStmt struct {
	Expr Expr
	span lexer.Span
}

func (s *ExprStmt) Span() lexer.Span { return s.span }

// NewExprStmt constructs an expression statement node.
func NewExprStmt(expr Expr, span lexer.Span) *ExprStmt {
	return &ExprStmt{Expr: expr, span: span}
}

func (s *ExprStmt) SetSpan(span lexer.Span) { s.span = span }

func (*ExprStmt) stmtNode() {}

// VarStmt represents a variable binding introduced by var, let, or const.
// Type and Value are optional and nil when absent.
type VarStmt struct {
	Keyword lexer.TokenKind // VAR, LET, or CONST
	Name    *Ident
	Type    *TypeRef
	Value   Expr
	span    lexer.Span
}

func (s *VarStmt) Span() lexer.Span { return s.span }

// NewVarStmt constructs a variable declaration node.
func NewVarStmt(keyword lexer.TokenKind, name *Ident, typ *TypeRef, value Expr, span lexer.Span) *VarStmt {
	return &VarStmt{
		Keyword: keyword,
		Name:    name,
		Type:    typ,
		Value:   value,
		span:    span,
	}
}

func (s *VarStmt) SetSpan(span lexer.Span) { s.span = span }

func (*VarStmt) stmtNode() {}

// Mutable reports whether the binding may be reassigned.
func (s *VarStmt) Mutable() bool {
	return s.Keyword == lexer.VAR
}

// IfStmt represents an if statement; Else is nil, another *IfStmt (else-if
// chain), or a *BlockExpr.
type IfStmt struct {
	Cond Expr
	Then *BlockExpr
	Else Stmt
	span lexer.Span
}

func (s *IfStmt) Span() lexer.Span { return s.span }

// NewIfStmt constructs an if statement node.
func NewIfStmt(cond Expr, then *BlockExpr, els Stmt, span lexer.Span) *IfStmt {
	return &IfStmt{
		Cond: cond,
		Then: then,
		Else: els,
		span: span,
	}
}

func (s *IfStmt) SetSpan(span lexer.Span) { s.span = span }

func (*IfStmt) stmtNode() {}

// WhileStmt represents a while loop.
type WhileStmt struct {
	Cond Expr
	Body *BlockExpr
	span lexer.Span
}

func (s *WhileStmt) Span() lexer.Span { return s.span }

// NewWhileStmt constructs a while statement node.
func NewWhileStmt(cond Expr, body *BlockExpr, span lexer.Span) *WhileStmt {
	return &WhileStmt{
		Cond: cond,
		Body: body,
		span: span,
	}
}

func (s *WhileStmt) SetSpan(span lexer.Span) { s.span = span }

func (*WhileStmt) stmtNode() {}

// ForStmt represents a classic three-part for loop. Init, Cond, and Post are
// each optional.
type ForStmt struct {
	Init Stmt
	Cond Expr
	Post Stmt
	Body *BlockExpr
	span lexer.Span
}

func (s *ForStmt) Span() lexer.Span { return s.span }

// NewForStmt constructs a three-part for statement node.
func NewForStmt(init Stmt, cond Expr, post Stmt, body *BlockExpr, span lexer.Span) *ForStmt {
	return &ForStmt{
		Init: init,
		Cond: cond,
		Post: post,
		Body: body,
		span: span,
	}
}

func (s *ForStmt) SetSpan(span lexer.Span) { s.span = span }

func (*ForStmt) stmtNode() {}

// ForInStmt represents "for x in iterable { ... }".
type ForInStmt struct {
	Var      *Ident
	Iterable Expr
	Body     *BlockExpr
	span     lexer.Span
}

func (s *ForInStmt) Span() lexer.Span { return s.span }

// NewForInStmt constructs a for-in statement node.
func NewForInStmt(v *Ident, iterable Expr, body *BlockExpr, span lexer.Span) *ForInStmt {
	return &ForInStmt{
		Var:      v,
		Iterable: iterable,
		Body:     body,
		span:     span,
	}
}

func (s *ForInStmt) SetSpan(span lexer.Span) { s.span = span }

func (*ForInStmt) stmtNode() {}

// LoopStmt represents an unconditional "loop { ... }".
type LoopStmt struct {
	Body *BlockExpr
	span lexer.Span
}

func (s *LoopStmt) Span() lexer.Span { return s.span }

// NewLoopStmt constructs a loop statement node.
func NewLoopStmt(body *BlockExpr, span lexer.Span) *LoopStmt {
	return &LoopStmt{Body: body, span: span}
}

func (s *LoopStmt) SetSpan(span lexer.Span) { s.span = span }

func (*LoopStmt) stmtNode() {}

// UntilStmt represents "until cond { ... }", looping while cond is false.
type UntilStmt struct {
	Cond Expr
	Body *BlockExpr
	span lexer.Span
}

func (s *UntilStmt) Span() lexer.Span { return s.span }

// NewUntilStmt constructs an until statement node.
func NewUntilStmt(cond Expr, body *BlockExpr, span lexer.Span) *UntilStmt {
	return &UntilStmt{
		Cond: cond,
		Body: body,
		span: span,
	}
}

func (s *UntilStmt) SetSpan(span lexer.Span) { s.span = span }

func (*UntilStmt) stmtNode() {}

// ReturnStmt represents a return statement; Value is nil for bare returns.
type ReturnStmt struct {
	Value Expr
	span  lexer.Span
}

func (s *ReturnStmt) Span() lexer.Span { return s.span }

// NewReturnStmt constructs a return statement node.
func NewReturnStmt(value Expr, span lexer.Span) *ReturnStmt {
	return &ReturnStmt{Value: value, span: span}
}

func (s *ReturnStmt) SetSpan(span lexer.Span) { s.span = span }

func (*ReturnStmt) stmtNode() {}

// BreakStmt represents a break statement.
type BreakStmt struct {
	span lexer.Span
}

func (s *BreakStmt) Span() lexer.Span { return s.span }

// NewBreakStmt constructs a break statement node.
func NewBreakStmt(span lexer.Span) *BreakStmt {
	return &BreakStmt{span: span}
}

func (s *BreakStmt) SetSpan(span lexer.Span) { s.span = span }

func (*BreakStmt) stmtNode() {}

// ContinueStmt represents a continue statement.
type ContinueStmt struct {
	span lexer.Span
}

func (s *ContinueStmt) Span() lexer.Span { return s.span }

// NewContinueStmt constructs a continue statement node.
func NewContinueStmt(span lexer.Span) *ContinueStmt {
	return &ContinueStmt{span: span}
}

func (s *ContinueStmt) SetSpan(span lexer.Span) { s.span = span }

func (*ContinueStmt) stmtNode() {}

// MatchStmt represents the statement form of the match construct: a match
// whose result is discarded, used like a traditional switch.
type MatchStmt struct {
	Match *MatchExpr
	span  lexer.Span
}

func (s *MatchStmt) Span() lexer.Span { return s.span }

// NewMatchStmt constructs a match statement node.
func NewMatchStmt(match *MatchExpr, span lexer.Span) *MatchStmt {
	return &MatchStmt{Match: match, span: span}
}

func (s *MatchStmt) SetSpan(span lexer.Span) { s.span = span }

func (*MatchStmt) stmtNode() {}
