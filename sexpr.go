package main

import (
	"strconv"
	"strings"
)

// ExprToSExpr renders an expression tree as a canonical s-expression
// string. Tests, the markdown corpus and the ast command all compare
// and display trees in this form.
func ExprToSExpr(e *Expr) string {
	switch e.Kind {
	case ExprLiteral:
		return literalSExpr(e.Value)
	case ExprVariable:
		return `(var ` + strconv.Quote(e.Name) + `)`
	case ExprUnary:
		return `(unary ` + strconv.Quote(e.Op.Canonical()) + ` ` + ExprToSExpr(e.Right) + `)`
	case ExprBinary:
		return `(binary ` + strconv.Quote(e.Op.Canonical()) + ` ` + ExprToSExpr(e.Left) + ` ` + ExprToSExpr(e.Right) + `)`
	case ExprLogical:
		return `(logical ` + strconv.Quote(e.Op.Canonical()) + ` ` + ExprToSExpr(e.Left) + ` ` + ExprToSExpr(e.Right) + `)`
	case ExprGrouping:
		return `(group ` + ExprToSExpr(e.X) + `)`
	case ExprList:
		parts := []string{"(list"}
		for _, el := range e.Elems {
			parts = append(parts, ExprToSExpr(el))
		}
		return strings.Join(parts, " ") + ")"
	case ExprIndex:
		return `(idx ` + ExprToSExpr(e.X) + ` ` + ExprToSExpr(e.Index) + `)`
	case ExprAssign:
		return `(assign ` + strconv.Quote(e.Name) + ` ` + ExprToSExpr(e.X) + `)`
	case ExprListAssign:
		return `(list-assign ` + strconv.Quote(e.Name) + ` ` + ExprToSExpr(e.Index) + ` ` + ExprToSExpr(e.X) + `)`
	case ExprCall:
		parts := []string{"(call", ExprToSExpr(e.Callee)}
		for _, a := range e.Args {
			parts = append(parts, ExprToSExpr(a))
		}
		return strings.Join(parts, " ") + ")"
	case ExprMethod:
		parts := []string{"(method", ExprToSExpr(e.X), strconv.Quote(e.Name)}
		for _, a := range e.Args {
			parts = append(parts, ExprToSExpr(a))
		}
		return strings.Join(parts, " ") + ")"
	}
	return "(unknown)"
}

func literalSExpr(t Token) string {
	switch t.Kind {
	case INT:
		return "(integer " + strconv.FormatInt(t.Int, 10) + ")"
	case FLOAT:
		return "(float " + formatFloat(t.Float) + ")"
	case STRING:
		return "(string " + strconv.Quote(t.Text) + ")"
	case BOOL:
		return "(boolean " + strconv.FormatBool(t.Bool) + ")"
	}
	return "(unknown)"
}

func typeSExpr(t Token) string {
	if t.Kind == TYPE_LIST && t.Elem != nil {
		return `(type "list" ` + typeSExpr(*t.Elem) + `)`
	}
	return `(type ` + strconv.Quote(t.Canonical()) + `)`
}

// StmtToSExpr renders a statement tree. Expression statements render
// as their bare expression.
func StmtToSExpr(s *Stmt) string {
	switch s.Kind {
	case StmtExpression:
		return ExprToSExpr(s.X)
	case StmtLet:
		return `(let ` + strconv.Quote(s.Name) + ` ` + typeSExpr(s.Type) + ` ` + ExprToSExpr(s.X) + `)`
	case StmtPrint:
		return `(print ` + ExprToSExpr(s.X) + `)`
	case StmtBlock:
		return blockSExpr(s.Body)
	case StmtIf:
		out := `(if ` + ExprToSExpr(s.X) + ` ` + StmtToSExpr(s.Then)
		if s.Else != nil {
			out += ` ` + StmtToSExpr(s.Else)
		}
		return out + `)`
	case StmtWhile:
		return `(while ` + ExprToSExpr(s.X) + ` ` + StmtToSExpr(s.Then) + `)`
	case StmtFor:
		return `(for ` + strconv.Quote(s.Name) + ` ` + ExprToSExpr(s.From) + ` ` + ExprToSExpr(s.To) + ` ` + StmtToSExpr(s.Then) + `)`
	case StmtFunc:
		params := []string{"(params"}
		for _, param := range s.Params {
			params = append(params, `(param `+strconv.Quote(param.Name)+` `+typeSExpr(param.Type)+`)`)
		}
		paramList := strings.Join(params, " ") + ")"
		return `(fn ` + strconv.Quote(s.Name) + ` ` + paramList + ` ` + blockSExpr(s.Body) + `)`
	case StmtReturn:
		if s.X == nil {
			return "(return)"
		}
		return `(return ` + ExprToSExpr(s.X) + `)`
	}
	return "(unknown)"
}

func blockSExpr(body []*Stmt) string {
	parts := []string{"(block"}
	for _, s := range body {
		parts = append(parts, StmtToSExpr(s))
	}
	return strings.Join(parts, " ") + ")"
}

// ProgramToSExpr renders a whole program as (program stmt ...).
func ProgramToSExpr(program []*Stmt) string {
	parts := []string{"(program"}
	for _, s := range program {
		parts = append(parts, StmtToSExpr(s))
	}
	return strings.Join(parts, " ") + ")"
}
