package ast

// Walk traverses the AST starting from node, calling fn for each node.
// If fn returns false, Walk stops traversing that branch.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}

	case *ExprStmt:
		Walk(n.Expr, fn)

	case *VarStmt:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Type != nil {
			Walk(n.Type, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *IfStmt:
		Walk(n.Cond, fn)
		if n.Then != nil {
			Walk(n.Then, fn)
		}
		if n.Else != nil {
			Walk(n.Else, fn)
		}

	case *WhileStmt:
		Walk(n.Cond, fn)
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *ForStmt:
		if n.Init != nil {
			Walk(n.Init, fn)
		}
		if n.Cond != nil {
			Walk(n.Cond, fn)
		}
		if n.Post != nil {
			Walk(n.Post, fn)
		}
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *ForInStmt:
		if n.Var != nil {
			Walk(n.Var, fn)
		}
		Walk(n.Iterable, fn)
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *LoopStmt:
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *UntilStmt:
		Walk(n.Cond, fn)
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *ReturnStmt:
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *MatchStmt:
		if n.Match != nil {
			Walk(n.Match, fn)
		}

	case *FuncDecl:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		for _, param := range n.Params {
			Walk(param, fn)
		}
		if n.ReturnType != nil {
			Walk(n.ReturnType, fn)
		}
		if n.Body != nil {
			Walk(n.Body, fn)
		}

	case *ClassDecl:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		for _, base := range n.Bases {
			Walk(base, fn)
		}
		for _, member := range n.Members {
			Walk(member, fn)
		}

	case *StructDecl:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		for _, member := range n.Members {
			Walk(member, fn)
		}

	case *InterfaceDecl:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		for _, base := range n.Bases {
			Walk(base, fn)
		}
		for _, member := range n.Members {
			Walk(member, fn)
		}

	case *EnumDecl:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		for _, c := range n.Cases {
			Walk(c, fn)
		}

	case *EnumCase:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *FieldDecl:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Type != nil {
			Walk(n.Type, fn)
		}
		if n.Value != nil {
			Walk(n.Value, fn)
		}

	case *PropertyDecl:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Type != nil {
			Walk(n.Type, fn)
		}
		if n.Getter != nil {
			Walk(n.Getter, fn)
		}
		if n.Setter != nil {
			Walk(n.Setter, fn)
		}

	case *NamespaceDecl:
		for _, stmt := range n.Body {
			Walk(stmt, fn)
		}

	case *TypeAliasDecl:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Target != nil {
			Walk(n.Target, fn)
		}

	case *BlockExpr:
		for _, stmt := range n.Stmts {
			Walk(stmt, fn)
		}

	case *InterpolatedStringLit:
		for _, part := range n.Parts {
			if part.Expr != nil {
				Walk(part.Expr, fn)
			}
		}

	case *UnaryExpr:
		Walk(n.Operand, fn)

	case *BinaryExpr:
		Walk(n.Left, fn)
		Walk(n.Right, fn)

	case *AssignExpr:
		Walk(n.Target, fn)
		Walk(n.Value, fn)

	case *CallExpr:
		Walk(n.Callee, fn)
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *NewExpr:
		if n.Type != nil {
			Walk(n.Type, fn)
		}
		for _, arg := range n.Args {
			Walk(arg, fn)
		}

	case *MemberExpr:
		Walk(n.Target, fn)
		if n.Member != nil {
			Walk(n.Member, fn)
		}

	case *IndexExpr:
		Walk(n.Target, fn)
		Walk(n.Index, fn)

	case *SliceExpr:
		Walk(n.Target, fn)
		if n.Range != nil {
			Walk(n.Range, fn)
		}

	case *ArrayLit:
		for _, elem := range n.Elems {
			Walk(elem, fn)
		}

	case *LambdaExpr:
		for _, param := range n.Params {
			Walk(param, fn)
		}
		Walk(n.Body, fn)

	case *RangeExpr:
		if n.Low != nil {
			Walk(n.Low, fn)
		}
		if n.High != nil {
			Walk(n.High, fn)
		}

	case *MatchExpr:
		Walk(n.Subject, fn)
		for _, arm := range n.Arms {
			Walk(arm, fn)
		}

	case *MatchArm:
		for _, pat := range n.Patterns {
			Walk(pat, fn)
		}
		Walk(n.Body, fn)

	case *Param:
		if n.Name != nil {
			Walk(n.Name, fn)
		}
		if n.Type != nil {
			Walk(n.Type, fn)
		}
		if n.Default != nil {
			Walk(n.Default, fn)
		}

	case *TypeRef:
		for _, arg := range n.Args {
			Walk(arg, fn)
		}
	}
}
