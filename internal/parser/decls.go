package parser

import (
	"github.com/sable-lang/sable/internal/ast"
	"github.com/sable-lang/sable/internal/lexer"
)

func isModifier(kind lexer.TokenKind) bool {
	switch kind {
	case lexer.PUBLIC, lexer.PRIVATE, lexer.STATIC, lexer.READONLY:
		return true
	default:
		return false
	}
}

// lbracketStartsAttribute disambiguates an attribute group from an array
// literal at statement start: scan to the matching ']' and check whether a
// declaration follows.
func (p *Parser) lbracketStartsAttribute() bool {
	if p.peek.Kind != lexer.IDENT {
		return false
	}

	depth := 1
	for n := 1; ; n++ {
		tok := p.peekAt(n)
		switch tok.Kind {
		case lexer.LBRACKET:
			depth++
		case lexer.RBRACKET:
			depth--
			if depth == 0 {
				for m := n + 1; ; m++ {
					next := p.peekAt(m)
					if next.Kind == lexer.NEWLINE {
						continue
					}
					return next.Kind == lexer.LBRACKET ||
						next.Kind == lexer.FUNC || isModifier(next.Kind) ||
						next.Kind == lexer.CLASS || next.Kind == lexer.STRUCT ||
						next.Kind == lexer.INTERFACE || next.Kind == lexer.ENUM
				}
			}
		case lexer.EOF:
			return false
		}
	}
}

// parseAttributes collects leading "[Name(args)]" groups. cur advances to the
// first token after the attributes.
func (p *Parser) parseAttributes() ([]*ast.Attribute, bool) {
	var attrs []*ast.Attribute

	for p.cur.Kind == lexer.LBRACKET {
		start := p.cur.Span

		if !p.expect(lexer.IDENT) {
			return attrs, false
		}
		name := p.cur.Text

		var args []ast.Expr
		if p.peek.Kind == lexer.LPAREN {
			p.nextToken()
			p.nextSkipNewlines()
			var ok bool
			args, ok = p.parseExprList(lexer.RPAREN)
			if !ok {
				return attrs, false
			}
		}

		if !p.expect(lexer.RBRACKET) {
			return attrs, false
		}

		attrs = append(attrs, ast.NewAttribute(name, args, mergeSpan(start, p.cur.Span)))
		p.nextSkipNewlines()
	}

	return attrs, true
}

// parseModifiers collects access and storage modifiers, leaving cur on the
// declaration keyword.
func (p *Parser) parseModifiers() []lexer.TokenKind {
	var mods []lexer.TokenKind
	for isModifier(p.cur.Kind) {
		mods = append(mods, p.cur.Kind)
		p.nextToken()
	}
	return mods
}

func (p *Parser) rejectAttrs(attrs []*ast.Attribute, what string) {
	for _, a := range attrs {
		p.reportError("attributes are not allowed on "+what, a.Span())
	}
}

func (p *Parser) rejectModifiers(mods []lexer.TokenKind, what string) {
	if len(mods) > 0 {
		p.reportError("modifiers are not allowed on "+what, p.cur.Span)
	}
}

// parseDecl parses a declaration with optional leading attributes and
// modifiers.
func (p *Parser) parseDecl() ast.Stmt {
	attrs, ok := p.parseAttributes()
	if !ok {
		return nil
	}
	mods := p.parseModifiers()

	switch p.cur.Kind {
	case lexer.FUNC:
		return p.parseFuncDecl(attrs, mods)
	case lexer.CLASS:
		return p.parseClassDecl(attrs, mods)
	case lexer.STRUCT:
		return p.parseStructDecl(attrs, mods)
	case lexer.INTERFACE:
		p.rejectAttrs(attrs, "interfaces")
		return p.parseInterfaceDecl(mods)
	case lexer.ENUM:
		p.rejectAttrs(attrs, "enums")
		return p.parseEnumDecl(mods)
	case lexer.NAMESPACE:
		p.rejectAttrs(attrs, "namespaces")
		p.rejectModifiers(mods, "namespaces")
		return p.parseNamespaceDecl()
	case lexer.IMPORT:
		p.rejectAttrs(attrs, "imports")
		p.rejectModifiers(mods, "imports")
		return p.parseImportDecl()
	case lexer.TYPE:
		p.rejectAttrs(attrs, "type aliases")
		p.rejectModifiers(mods, "type aliases")
		return p.parseTypeAliasDecl()
	case lexer.VAR, lexer.LET, lexer.CONST:
		p.rejectAttrs(attrs, "fields")
		return p.parseFieldDecl(mods)
	default:
		p.reportExpected("declaration", p.cur)
		return nil
	}
}

// parseTypeRefFromCur parses a type reference starting at the identifier in
// cur: a plain, qualified, or array-suffixed name plus optional generic
// arguments. In type position '<' always opens an argument list.
func (p *Parser) parseTypeRefFromCur() *ast.TypeRef {
	name := p.cur.Text
	start := p.cur.Span

	var args []*ast.TypeRef
	if p.peek.Kind == lexer.LT {
		p.nextToken() // '<'
		p.nextSkipNewlines()

		result, ok := parseDelimited(p, delimitedConfig{
			Closing:           lexer.GT,
			MissingElementMsg: "expected type argument",
		}, func(int) (*ast.TypeRef, bool) {
			if p.cur.Kind != lexer.IDENT {
				p.reportExpected("type name", p.cur)
				return nil, false
			}
			arg := p.parseTypeRefFromCur()
			return arg, arg != nil
		})
		if !ok {
			return nil
		}
		args = result.Items

		// "List<int>[]" arrives as separate bracket tokens after '>'.
		if p.peek.Kind == lexer.LBRACKET && p.peekAt(2).Kind == lexer.RBRACKET {
			p.nextToken()
			p.nextToken()
			name += "[]"
		}
	}

	return ast.NewTypeRef(name, args, mergeSpan(start, p.cur.Span))
}

// parseParamList parses a parameter list up to the closing token; cur is the
// first parameter token (or the closer) on entry and the closer on exit.
func (p *Parser) parseParamList(closing lexer.TokenKind) ([]*ast.Param, bool) {
	result, ok := parseDelimited(p, delimitedConfig{
		Closing:           closing,
		AllowEmpty:        true,
		MissingElementMsg: "expected parameter",
	}, func(int) (*ast.Param, bool) {
		param := p.parseParam()
		return param, param != nil
	})
	return result.Items, ok
}

// parseParam parses "name [: Type] [= default]".
func (p *Parser) parseParam() *ast.Param {
	if p.cur.Kind != lexer.IDENT {
		p.reportExpected("parameter name", p.cur)
		return nil
	}

	name := ast.NewIdent(p.cur.Text, p.cur.Span)
	start := p.cur.Span
	end := p.cur.Span

	var typ *ast.TypeRef
	if p.peek.Kind == lexer.COLON {
		p.nextToken()
		if !p.expect(lexer.IDENT) {
			return nil
		}
		typ = p.parseTypeRefFromCur()
		if typ == nil {
			return nil
		}
		end = p.cur.Span
	}

	var def ast.Expr
	if p.peek.Kind == lexer.ASSIGN {
		p.nextToken()
		p.nextSkipNewlines()
		def = p.parseExpr()
		if def == nil {
			return nil
		}
		end = p.cur.Span
	}

	return ast.NewParam(name, typ, def, mergeSpan(start, end))
}

// parseFuncDecl parses "func name(params) [: Ret] [{ body }]". The body is
// syntactically optional: external functions and interface members declare
// signatures only.
func (p *Parser) parseFuncDecl(attrs []*ast.Attribute, mods []lexer.TokenKind) ast.Stmt {
	start := p.cur.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}
	name := ast.NewIdent(p.cur.Text, p.cur.Span)

	if !p.expect(lexer.LPAREN) {
		return nil
	}
	p.nextSkipNewlines()

	params, ok := p.parseParamList(lexer.RPAREN)
	if !ok {
		return nil
	}
	end := p.cur.Span

	var ret *ast.TypeRef
	if p.peek.Kind == lexer.COLON {
		p.nextToken()
		if !p.expect(lexer.IDENT) {
			return nil
		}
		ret = p.parseTypeRefFromCur()
		if ret == nil {
			return nil
		}
		end = p.cur.Span
	}

	var body *ast.BlockExpr
	if p.peekPastNewlines().Kind == lexer.LBRACE {
		body = p.parseBlockAfter()
		if body == nil {
			return nil
		}
		end = body.Span()
	}

	decl := ast.NewFuncDecl(name, params, ret, body, mergeSpan(start, end))
	decl.Modifiers = mods
	decl.Attrs = attrs
	return decl
}

// parseBaseList parses the ": Base1, Base2" clause after a type name; cur is
// the name on entry and the last base on exit.
func (p *Parser) parseBaseList() ([]*ast.TypeRef, bool) {
	if p.peek.Kind != lexer.COLON {
		return nil, true
	}
	p.nextToken()

	var bases []*ast.TypeRef
	for {
		if !p.expect(lexer.IDENT) {
			return nil, false
		}
		base := p.parseTypeRefFromCur()
		if base == nil {
			return nil, false
		}
		bases = append(bases, base)

		if p.peek.Kind != lexer.COMMA {
			return bases, true
		}
		p.nextToken()
	}
}

func (p *Parser) parseClassDecl(attrs []*ast.Attribute, mods []lexer.TokenKind) ast.Stmt {
	start := p.cur.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}
	name := ast.NewIdent(p.cur.Text, p.cur.Span)

	bases, ok := p.parseBaseList()
	if !ok {
		return nil
	}

	members := p.parseMemberBlock()
	if members == nil {
		return nil
	}

	decl := ast.NewClassDecl(name, bases, members, mergeSpan(start, p.cur.Span))
	decl.Modifiers = mods
	decl.Attrs = attrs
	return decl
}

func (p *Parser) parseStructDecl(attrs []*ast.Attribute, mods []lexer.TokenKind) ast.Stmt {
	start := p.cur.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}
	name := ast.NewIdent(p.cur.Text, p.cur.Span)

	members := p.parseMemberBlock()
	if members == nil {
		return nil
	}

	decl := ast.NewStructDecl(name, members, mergeSpan(start, p.cur.Span))
	decl.Modifiers = mods
	decl.Attrs = attrs
	return decl
}

func (p *Parser) parseInterfaceDecl(mods []lexer.TokenKind) ast.Stmt {
	start := p.cur.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}
	name := ast.NewIdent(p.cur.Text, p.cur.Span)

	bases, ok := p.parseBaseList()
	if !ok {
		return nil
	}

	members := p.parseMemberBlock()
	if members == nil {
		return nil
	}

	decl := ast.NewInterfaceDecl(name, bases, members, mergeSpan(start, p.cur.Span))
	decl.Modifiers = mods
	return decl
}

// parseMemberBlock parses a brace-delimited member list; cur is the token
// before '{' on entry and '}' on exit. Returns nil only when the opening
// brace is missing; member errors synchronize and continue.
func (p *Parser) parseMemberBlock() []ast.Stmt {
	if !p.expectSkipNewlines(lexer.LBRACE) {
		return nil
	}

	members := []ast.Stmt{}

	p.nextToken()
	p.skipNewlines()

	for p.cur.Kind != lexer.RBRACE && p.cur.Kind != lexer.EOF && p.fatal == nil {
		prev := p.cur

		member := p.parseMember()
		if member != nil {
			members = append(members, member)
			p.endStatement()
		} else {
			p.recoverStatement(prev)
		}

		p.skipNewlines()
	}

	if p.cur.Kind != lexer.RBRACE {
		p.reportExpected("}", p.cur)
	}

	return members
}

// parseMember parses one class/struct/interface member: a method, field,
// property, or nested type.
func (p *Parser) parseMember() ast.Stmt {
	if !p.enter() {
		return nil
	}
	defer p.leave()

	attrs, ok := p.parseAttributes()
	if !ok {
		return nil
	}
	mods := p.parseModifiers()

	switch p.cur.Kind {
	case lexer.FUNC:
		return p.parseFuncDecl(attrs, mods)
	case lexer.VAR, lexer.LET, lexer.CONST:
		p.rejectAttrs(attrs, "fields")
		return p.parseFieldDecl(mods)
	case lexer.CLASS:
		return p.parseClassDecl(attrs, mods)
	case lexer.STRUCT:
		return p.parseStructDecl(attrs, mods)
	case lexer.ENUM:
		p.rejectAttrs(attrs, "enums")
		return p.parseEnumDecl(mods)
	case lexer.IDENT:
		p.rejectAttrs(attrs, "fields and properties")
		return p.parseFieldOrProperty(mods)
	default:
		p.reportExpected("member declaration", p.cur)
		return nil
	}
}

// parseFieldDecl parses a keyword-introduced field:
// "var name [: Type] [= value]".
func (p *Parser) parseFieldDecl(mods []lexer.TokenKind) ast.Stmt {
	start := p.cur.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}
	name := ast.NewIdent(p.cur.Text, p.cur.Span)
	end := p.cur.Span

	var typ *ast.TypeRef
	if p.peek.Kind == lexer.COLON {
		p.nextToken()
		if !p.expect(lexer.IDENT) {
			return nil
		}
		typ = p.parseTypeRefFromCur()
		if typ == nil {
			return nil
		}
		end = p.cur.Span
	}

	var value ast.Expr
	if p.peek.Kind == lexer.ASSIGN {
		p.nextToken()
		p.nextSkipNewlines()
		value = p.parseExpr()
		if value == nil {
			return nil
		}
		end = p.cur.Span
	}

	decl := ast.NewFieldDecl(name, typ, value, mergeSpan(start, end))
	decl.Modifiers = mods
	return decl
}

// parseFieldOrProperty parses the bare-name member forms:
//
//	name: Type = value        field
//	name: Type                field
//	name: Type { get set }    property
func (p *Parser) parseFieldOrProperty(mods []lexer.TokenKind) ast.Stmt {
	name := ast.NewIdent(p.cur.Text, p.cur.Span)
	start := p.cur.Span

	if !p.expect(lexer.COLON) {
		return nil
	}
	if !p.expect(lexer.IDENT) {
		return nil
	}
	typ := p.parseTypeRefFromCur()
	if typ == nil {
		return nil
	}
	end := p.cur.Span

	if p.peek.Kind == lexer.LBRACE {
		return p.parsePropertyAccessors(name, typ, mods, start)
	}

	var value ast.Expr
	if p.peek.Kind == lexer.ASSIGN {
		p.nextToken()
		p.nextSkipNewlines()
		value = p.parseExpr()
		if value == nil {
			return nil
		}
		end = p.cur.Span
	}

	decl := ast.NewFieldDecl(name, typ, value, mergeSpan(start, end))
	decl.Modifiers = mods
	return decl
}

// parsePropertyAccessors parses "{ get [{...}] set [{...}] }" after the
// property type. A bodyless accessor is auto-implemented.
func (p *Parser) parsePropertyAccessors(name *ast.Ident, typ *ast.TypeRef, mods []lexer.TokenKind, start lexer.Span) ast.Stmt {
	p.nextToken() // '{'

	var getter, setter *ast.BlockExpr

	p.nextSkipNewlines()
	for p.cur.Kind != lexer.RBRACE && p.cur.Kind != lexer.EOF {
		which := p.cur.Kind
		if which != lexer.GET && which != lexer.SET {
			p.reportExpected("get or set", p.cur)
			return nil
		}

		var body *ast.BlockExpr
		if p.peek.Kind == lexer.LBRACE || p.peekPastNewlines().Kind == lexer.LBRACE {
			body = p.parseBlockAfter()
			if body == nil {
				return nil
			}
		}

		if which == lexer.GET {
			getter = body
		} else {
			setter = body
		}

		// Optional separators between accessors.
		for p.peek.Kind == lexer.SEMICOLON || p.peek.Kind == lexer.NEWLINE {
			p.nextToken()
		}
		p.nextToken()
	}

	if p.cur.Kind != lexer.RBRACE {
		p.reportExpected("}", p.cur)
		return nil
	}

	decl := ast.NewPropertyDecl(name, typ, getter, setter, mergeSpan(start, p.cur.Span))
	decl.Modifiers = mods
	return decl
}

// parseEnumDecl parses "enum Name { Case [= value], ... }".
func (p *Parser) parseEnumDecl(mods []lexer.TokenKind) ast.Stmt {
	start := p.cur.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}
	name := ast.NewIdent(p.cur.Text, p.cur.Span)

	if !p.expectSkipNewlines(lexer.LBRACE) {
		return nil
	}

	var cases []*ast.EnumCase

	p.nextSkipNewlines()
	for p.cur.Kind != lexer.RBRACE && p.cur.Kind != lexer.EOF {
		if p.cur.Kind != lexer.IDENT {
			p.reportExpected("enum case name", p.cur)
			return nil
		}
		caseName := ast.NewIdent(p.cur.Text, p.cur.Span)
		caseSpan := p.cur.Span

		var value ast.Expr
		if p.peek.Kind == lexer.ASSIGN {
			p.nextToken()
			p.nextSkipNewlines()
			value = p.parseExpr()
			if value == nil {
				return nil
			}
			caseSpan = mergeSpan(caseSpan, p.cur.Span)
		}

		cases = append(cases, ast.NewEnumCase(caseName, value, caseSpan))

		switch p.peek.Kind {
		case lexer.COMMA:
			p.nextToken()
			p.nextSkipNewlines()
		case lexer.NEWLINE:
			p.nextSkipNewlines()
		case lexer.RBRACE:
			p.nextToken()
		default:
			p.reportExpected(", or }", p.peek)
			return nil
		}
	}

	if p.cur.Kind != lexer.RBRACE {
		p.reportExpected("}", p.cur)
		return nil
	}

	decl := ast.NewEnumDecl(name, cases, mergeSpan(start, p.cur.Span))
	decl.Modifiers = mods
	return decl
}

// parseNamespaceDecl parses "namespace Dotted.Name { ... }".
func (p *Parser) parseNamespaceDecl() ast.Stmt {
	start := p.cur.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}
	name := p.cur.Text

	body := p.parseBlockAfter()
	if body == nil {
		return nil
	}

	return ast.NewNamespaceDecl(name, body.Stmts, mergeSpan(start, body.Span()))
}

// parseImportDecl parses "import Dotted.Name".
func (p *Parser) parseImportDecl() ast.Stmt {
	start := p.cur.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}

	return ast.NewImportDecl(p.cur.Text, mergeSpan(start, p.cur.Span))
}

// parseTypeAliasDecl parses "type Name = Target".
func (p *Parser) parseTypeAliasDecl() ast.Stmt {
	start := p.cur.Span

	if !p.expect(lexer.IDENT) {
		return nil
	}
	name := ast.NewIdent(p.cur.Text, p.cur.Span)

	if !p.expect(lexer.ASSIGN) {
		return nil
	}
	if !p.expect(lexer.IDENT) {
		return nil
	}

	target := p.parseTypeRefFromCur()
	if target == nil {
		return nil
	}

	return ast.NewTypeAliasDecl(name, target, mergeSpan(start, p.cur.Span))
}
