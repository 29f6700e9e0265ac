package main

// ExprKind discriminates Expr variants.
type ExprKind string

const (
	ExprLiteral    ExprKind = "Literal"
	ExprVariable   ExprKind = "Variable"
	ExprUnary      ExprKind = "Unary"
	ExprBinary     ExprKind = "Binary"
	ExprLogical    ExprKind = "Logical"
	ExprGrouping   ExprKind = "Grouping"
	ExprList       ExprKind = "List"
	ExprIndex      ExprKind = "Index"
	ExprAssign     ExprKind = "Assign"
	ExprListAssign ExprKind = "ListAssign"
	ExprCall       ExprKind = "Call"
	ExprMethod     ExprKind = "Method"
)

// Expr is one expression node. A node owns its children exclusively;
// the tree has no sharing and no cycles. Fields are populated
// according to Kind:
//
//	ExprLiteral:    Value (the literal token)
//	ExprVariable:   Name
//	ExprUnary:      Op, Right
//	ExprBinary:     Op, Left, Right
//	ExprLogical:    Op (and/or, short-circuit), Left, Right
//	ExprGrouping:   X
//	ExprList:       Elems
//	ExprIndex:      X (target), Index
//	ExprAssign:     Name, X (value)
//	ExprListAssign: Name, Index, X (value)
//	ExprCall:       Callee, Args
//	ExprMethod:     X (receiver), Name (method), Args
type Expr struct {
	Kind   ExprKind
	Value  Token
	Name   string
	Op     Token
	Left   *Expr
	Right  *Expr
	X      *Expr
	Index  *Expr
	Elems  []*Expr
	Callee *Expr
	Args   []*Expr
}

// StmtKind discriminates Stmt variants.
type StmtKind string

const (
	StmtExpression StmtKind = "Expression"
	StmtLet        StmtKind = "Let"
	StmtPrint      StmtKind = "Print"
	StmtBlock      StmtKind = "Block"
	StmtIf         StmtKind = "If"
	StmtWhile      StmtKind = "While"
	StmtFor        StmtKind = "For"
	StmtFunc       StmtKind = "Func"
	StmtReturn     StmtKind = "Return"
)

// Param is one function parameter: a name with its declared type
// descriptor.
type Param struct {
	Name string
	Type Token
}

// Stmt is one statement node. Fields are populated according to Kind:
//
//	StmtExpression: X
//	StmtLet:        Name, Type (declared descriptor), X (initializer)
//	StmtPrint:      X
//	StmtBlock:      Body
//	StmtIf:         X (condition), Then, Else (nil when absent)
//	StmtWhile:      X (condition), Then (body block)
//	StmtFor:        Name (loop variable), From, To, Then (body block)
//	StmtFunc:       Name, Params, Body
//	StmtReturn:     X (nil when no value)
type Stmt struct {
	Kind   StmtKind
	X      *Expr
	Name   string
	Type   Token
	Body   []*Stmt
	Then   *Stmt
	Else   *Stmt
	From   *Expr
	To     *Expr
	Params []Param
}

// FuncDecl is the function-table record for one fn definition.
type FuncDecl struct {
	Name   string
	Params []Param
	Body   []*Stmt
}
