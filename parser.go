package main

// Parser consumes one token sequence and produces Wolf AST nodes,
// maintaining the lexical-scope stack and the function table as it
// goes. Scope and type checks run inline during parsing; there is no
// separate semantic pass. Every production fails fast: the first error
// propagates unchanged to the caller, the cursor is undefined
// afterwards, and there is no recovery or resynchronization.
//
// A Parser owns its scope stack and function table exclusively and
// must not be shared between goroutines; independent units parse with
// independent instances.
type Parser struct {
	tokens []Token
	pos    int
	scopes []scope
	funcs  map[string]*FuncDecl
}

// NewParser wraps an EOF-terminated token sequence as Lex produces it.
// The scope stack starts with the implicit global scope.
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
		scopes: []scope{{}},
		funcs:  map[string]*FuncDecl{},
	}
}

// Reset primes the parser with a new token sequence while keeping the
// scope stack and function table. The REPL drives successive lines
// through one parser this way.
func (p *Parser) Reset(tokens []Token) {
	p.tokens = tokens
	p.pos = 0
}

// current returns the token at the cursor without consuming it. Past
// the final token it keeps returning EOF.
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Kind: EOF, Pos: p.endPos()}
	}
	return p.tokens[p.pos]
}

// peek looks one token past the cursor.
func (p *Parser) peek() Token {
	if p.pos+1 >= len(p.tokens) {
		return Token{Kind: EOF, Pos: p.endPos()}
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) endPos() int {
	if n := len(p.tokens); n > 0 {
		return p.tokens[n-1].Pos
	}
	return 0
}

// advance returns the current token and moves past it. Productions use
// it only after lookahead has already recognized the token.
func (p *Parser) advance() Token {
	tok := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// eat consumes the current token if it structurally equals expected,
// comparing payloads for payload-bearing kinds. This is the sole
// cursor mutation on the expect-and-consume path. Expecting "any
// identifier" or "any type" is not an eat call; those lookaheads are
// the expectIdent and parseType predicates.
func (p *Parser) eat(expected Token) error {
	tok := p.current()
	if !tok.Equal(expected) {
		return &ParseError{Expected: expected.String(), Found: tok}
	}
	p.pos++
	return nil
}

// expect is eat for payloadless kinds (keywords, punctuation,
// operators).
func (p *Parser) expect(kind TokenKind) error {
	return p.eat(Token{Kind: kind})
}

// expectIdent consumes the current token when it is an identifier; any
// identifier satisfies it.
func (p *Parser) expectIdent() (Token, error) {
	tok := p.current()
	if tok.Kind != IDENT {
		return Token{}, &ParseError{Expected: "identifier", Found: tok}
	}
	p.pos++
	return tok, nil
}

// ParseProgram drives ParseStatement over the whole sequence,
// collecting the program and applying the scope and function-table
// effects of top-level statements.
func (p *Parser) ParseProgram() ([]*Stmt, error) {
	var program []*Stmt
	for p.current().Kind != EOF {
		s, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		if err := p.declare(s); err != nil {
			return nil, err
		}
		program = append(program, s)
	}
	return program, nil
}

// ParseStatement consumes one logical statement at the cursor. On
// success the cursor sits exactly past what was consumed. Scope
// insertion for the statement itself is the caller's declare step;
// nested blocks inside the statement have already taken and released
// their scopes.
func (p *Parser) ParseStatement() (*Stmt, error) {
	tok := p.current()
	switch tok.Kind {
	case LET:
		return p.parseLet()
	case PRINT:
		return p.parsePrint()
	case IF:
		return p.parseIf()
	case WHILE:
		return p.parseWhile()
	case FOR:
		return p.parseFor()
	case FN:
		return p.parseFn()
	case RETURN:
		return p.parseReturn()
	case IDENT:
		return p.parseIdentStatement()
	}
	return nil, &ParseError{Expected: "statement", Found: tok}
}

// declare applies a statement's scope effect: lets bind in the
// innermost scope, fns register in the function table.
func (p *Parser) declare(s *Stmt) error {
	switch s.Kind {
	case StmtLet:
		p.DefineVariable(s.Name, p.bindingFor(s))
	case StmtFunc:
		return p.DefineFunction(s)
	}
	return nil
}

// bindingFor picks the token a let records: the initializer's static
// value when it has one, the declared descriptor otherwise. List
// literals always record the declared descriptor so the element type
// stays authoritative for later assignments.
func (p *Parser) bindingFor(s *Stmt) Token {
	if s.X != nil && s.X.Kind != ExprList {
		if v, ok := p.staticValue(s.X); ok {
			return v
		}
	}
	return s.Type
}

// parseBlock collects statements until end, else, or end of input,
// consuming none of those: the caller consumes its own terminator and
// owns the scope push/pop around the block. Lets and fns inside the
// block take effect as they are parsed.
func (p *Parser) parseBlock() (*Stmt, error) {
	var body []*Stmt
	for {
		switch p.current().Kind {
		case END, ELSE, EOF:
			return &Stmt{Kind: StmtBlock, Body: body}, nil
		}
		s, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		if err := p.declare(s); err != nil {
			return nil, err
		}
		body = append(body, s)
	}
}

// parseLet parses let name : type = initializer, checking the
// initializer against the declared type where its shape is statically
// visible. The production returns the node; binding the name is the
// caller's explicit DefineVariable step.
func (p *Parser) parseLet() (*Stmt, error) {
	if err := p.expect(LET); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(COLON); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	init, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.checkCompatible(name.Text, typ, init); err != nil {
		return nil, err
	}
	return &Stmt{Kind: StmtLet, Name: name.Text, Type: typ, X: init}, nil
}

// parseType parses a type descriptor: a scalar marker consumed
// directly, or list with an angle-bracketed element type, recursively
// (list<list<int>>; >> is two GT tokens, the two-char table has no
// >>). List descriptors carry the element descriptor in Elem.
func (p *Parser) parseType() (Token, error) {
	tok := p.current()
	switch tok.Kind {
	case TYPE_INT, TYPE_FLOAT, TYPE_STRING, TYPE_BOOL:
		p.pos++
		return tok, nil
	case TYPE_LIST:
		p.pos++
		if err := p.expect(LT); err != nil {
			return Token{}, err
		}
		elem, err := p.parseType()
		if err != nil {
			return Token{}, err
		}
		if err := p.expect(GT); err != nil {
			return Token{}, err
		}
		return Token{Kind: TYPE_LIST, Lexeme: tok.Lexeme, Elem: &elem, Pos: tok.Pos}, nil
	}
	return Token{}, &ParseError{Expected: "type", Found: tok}
}

func (p *Parser) parsePrint() (*Stmt, error) {
	if err := p.expect(PRINT); err != nil {
		return nil, err
	}
	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return &Stmt{Kind: StmtPrint, X: value}, nil
}

// parseIf parses if cond <block> [else <block>] end. Each branch gets
// its own scope.
func (p *Parser) parseIf() (*Stmt, error) {
	if err := p.expect(IF); err != nil {
		return nil, err
	}
	cond, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	p.pushScope()
	then, err := p.parseBlock()
	p.popScope()
	if err != nil {
		return nil, err
	}
	stmt := &Stmt{Kind: StmtIf, X: cond, Then: then}
	if p.current().Kind == ELSE {
		p.pos++
		p.pushScope()
		els, err := p.parseBlock()
		p.popScope()
		if err != nil {
			return nil, err
		}
		stmt.Else = els
	}
	if err := p.expect(END); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) parseWhile() (*Stmt, error) {
	if err := p.expect(WHILE); err != nil {
		return nil, err
	}
	cond, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	p.pushScope()
	body, err := p.parseBlock()
	p.popScope()
	if err != nil {
		return nil, err
	}
	if err := p.expect(END); err != nil {
		return nil, err
	}
	return &Stmt{Kind: StmtWhile, X: cond, Then: body}, nil
}

// parseFor parses for i : int = start .. end <block> end. The loop
// variable must carry the int marker and binds inside the loop's
// scope. The end terminator is required, matching if/while/fn.
func (p *Parser) parseFor() (*Stmt, error) {
	if err := p.expect(FOR); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	if err := p.expect(COLON); err != nil {
		return nil, err
	}
	if err := p.expect(TYPE_INT); err != nil {
		return nil, err
	}
	if err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	from, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(RANGE); err != nil {
		return nil, err
	}
	to, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	p.pushScope()
	p.DefineVariable(name.Text, Token{Kind: TYPE_INT, Pos: name.Pos})
	body, err := p.parseBlock()
	p.popScope()
	if err != nil {
		return nil, err
	}
	if err := p.expect(END); err != nil {
		return nil, err
	}
	return &Stmt{Kind: StmtFor, Name: name.Text, From: from, To: to, Then: body}, nil
}

// parseFn parses fn name(params) <body> end. Parameters bind in the
// body's scope as their declared types. Registering the function is
// the caller's explicit DefineFunction step, not part of the
// production.
func (p *Parser) parseFn() (*Stmt, error) {
	if err := p.expect(FN); err != nil {
		return nil, err
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	p.pushScope()
	for _, param := range params {
		p.DefineVariable(param.Name, param.Type)
	}
	body, err := p.parseBlock()
	p.popScope()
	if err != nil {
		return nil, err
	}
	if err := p.expect(END); err != nil {
		return nil, err
	}
	return &Stmt{Kind: StmtFunc, Name: name.Text, Params: params, Body: body.Body}, nil
}

// parseParams parses a parenthesized, comma-separated list of
// name : type pairs; empty permitted, trailing comma not.
func (p *Parser) parseParams() ([]Param, error) {
	if err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	var params []Param
	if p.current().Kind != RPAREN {
		for {
			pname, err := p.expectIdent()
			if err != nil {
				return nil, err
			}
			if err := p.expect(COLON); err != nil {
				return nil, err
			}
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			params = append(params, Param{Name: pname.Text, Type: typ})
			if p.current().Kind != COMMA {
				break
			}
			p.pos++
		}
	}
	if err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return params, nil
}

// parseReturn parses return with an optional value: present unless the
// next token closes the surrounding block.
func (p *Parser) parseReturn() (*Stmt, error) {
	if err := p.expect(RETURN); err != nil {
		return nil, err
	}
	switch p.current().Kind {
	case END, ELSE, EOF:
		return &Stmt{Kind: StmtReturn}, nil
	}
	value, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	return &Stmt{Kind: StmtReturn, X: value}, nil
}

// parseIdentStatement distinguishes the five identifier-led statement
// shapes by peeking one token past the identifier: assignment, indexed
// assignment or indexed read, method call, call, and bare variable
// reference. Assignment targets are resolved and type-checked here,
// while parsing.
func (p *Parser) parseIdentStatement() (*Stmt, error) {
	switch p.peek().Kind {
	case ASSIGN:
		name := p.advance()
		p.pos++
		value, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		bound, ok := p.LookupVariable(name.Text)
		if !ok {
			return nil, &UndeclaredVariableError{Name: name.Text, Pos: name.Pos}
		}
		if err := p.checkCompatible(name.Text, bound, value); err != nil {
			return nil, err
		}
		if v, ok := p.staticValue(value); ok {
			if err := p.AssignVariable(name.Text, v); err != nil {
				return nil, err
			}
		}
		expr := &Expr{Kind: ExprAssign, Name: name.Text, X: value}
		return &Stmt{Kind: StmtExpression, X: expr}, nil
	case LBRACKET:
		return p.parseIndexStatement(p.advance())
	case DOT:
		expr, err := p.parseMethodCall(p.advance())
		if err != nil {
			return nil, err
		}
		return &Stmt{Kind: StmtExpression, X: expr}, nil
	case LPAREN:
		name := p.advance()
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		callee := &Expr{Kind: ExprVariable, Name: name.Text}
		return &Stmt{Kind: StmtExpression, X: &Expr{Kind: ExprCall, Callee: callee, Args: args}}, nil
	}
	name, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	return &Stmt{Kind: StmtExpression, X: &Expr{Kind: ExprVariable, Name: name.Text}}, nil
}

// parseIndexStatement parses x[i] = value as a single-subscript list
// assignment, or an indexed read chain as an expression statement. A
// deeper chain followed by = is not an assignment target; the = is
// left for the driver, which rejects it.
func (p *Parser) parseIndexStatement(name Token) (*Stmt, error) {
	p.pos++
	idx, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.expect(RBRACKET); err != nil {
		return nil, err
	}
	if p.current().Kind == ASSIGN {
		p.pos++
		value, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		bound, ok := p.LookupVariable(name.Text)
		if !ok {
			return nil, &UndeclaredVariableError{Name: name.Text, Pos: name.Pos}
		}
		if bound.Kind == TYPE_LIST && bound.Elem != nil {
			if err := p.checkCompatible(name.Text, *bound.Elem, value); err != nil {
				return nil, err
			}
		}
		expr := &Expr{Kind: ExprListAssign, Name: name.Text, Index: idx, X: value}
		return &Stmt{Kind: StmtExpression, X: expr}, nil
	}
	expr := &Expr{Kind: ExprIndex, X: &Expr{Kind: ExprVariable, Name: name.Text}, Index: idx}
	for p.current().Kind == LBRACKET {
		p.pos++
		next, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(RBRACKET); err != nil {
			return nil, err
		}
		expr = &Expr{Kind: ExprIndex, X: expr, Index: next}
	}
	return &Stmt{Kind: StmtExpression, X: expr}, nil
}

// ParseExpression parses one full expression starting at the cursor.
// The descent chain runs or, and, comparison, additive,
// multiplicative, unary minus, primary; each level loops on its own
// operators except comparison, which consumes at most one.
func (p *Parser) ParseExpression() (*Expr, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (*Expr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == OR {
		op := p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &Expr{Kind: ExprLogical, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (*Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == AND {
		op := p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left = &Expr{Kind: ExprLogical, Op: op, Left: left, Right: right}
	}
	return left, nil
}

// parseComparison consumes at most one comparison: comparisons do not
// associate, so a == b == c leaves the second == dangling for the
// statement driver, which rejects it.
func (p *Parser) parseComparison() (*Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if isComparison(p.current().Kind) {
		op := p.advance()
		right, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		return &Expr{Kind: ExprBinary, Op: op, Left: left, Right: right}, nil
	}
	return left, nil
}

func isComparison(k TokenKind) bool {
	switch k {
	case EQ, NOT_EQ, LT, GT, LE, GE:
		return true
	}
	return false
}

func (p *Parser) parseAdditive() (*Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == PLUS || p.current().Kind == MINUS {
		op := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &Expr{Kind: ExprBinary, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (*Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.current().Kind == ASTERISK || p.current().Kind == SLASH {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &Expr{Kind: ExprBinary, Op: op, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseUnary() (*Expr, error) {
	if p.current().Kind == MINUS {
		op := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &Expr{Kind: ExprUnary, Op: op, Right: right}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (*Expr, error) {
	tok := p.current()
	switch tok.Kind {
	case INT, FLOAT, STRING, BOOL:
		p.pos++
		return &Expr{Kind: ExprLiteral, Value: tok}, nil
	case IDENT:
		p.pos++
		return p.parseIdentSuffix(tok)
	case LPAREN:
		p.pos++
		inner, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return &Expr{Kind: ExprGrouping, X: inner}, nil
	case LBRACKET:
		return p.parseListLiteral()
	}
	return nil, &ParseError{Expected: "expression", Found: tok}
}

// parseIdentSuffix resolves what an identifier begins by one token of
// lookahead: a call, an index chain, a method call, or a bare variable
// reference.
func (p *Parser) parseIdentSuffix(name Token) (*Expr, error) {
	switch p.current().Kind {
	case LPAREN:
		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		callee := &Expr{Kind: ExprVariable, Name: name.Text}
		return &Expr{Kind: ExprCall, Callee: callee, Args: args}, nil
	case LBRACKET:
		return p.parseIndexChain(name)
	case DOT:
		return p.parseMethodCall(name)
	}
	return &Expr{Kind: ExprVariable, Name: name.Text}, nil
}

// parseIndexChain parses one or more bracket suffixes; each suffix
// indexes the expression built so far, so a[0][1] nests the first
// index inside the second.
func (p *Parser) parseIndexChain(name Token) (*Expr, error) {
	expr := &Expr{Kind: ExprVariable, Name: name.Text}
	for p.current().Kind == LBRACKET {
		p.pos++
		idx, err := p.ParseExpression()
		if err != nil {
			return nil, err
		}
		if err := p.expect(RBRACKET); err != nil {
			return nil, err
		}
		expr = &Expr{Kind: ExprIndex, X: expr, Index: idx}
	}
	return expr, nil
}

// parseMethodCall parses .method(args) on an identifier receiver.
// Method suffixes do not chain; only bracket suffixes do.
func (p *Parser) parseMethodCall(name Token) (*Expr, error) {
	p.pos++
	method, err := p.expectIdent()
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	recv := &Expr{Kind: ExprVariable, Name: name.Text}
	return &Expr{Kind: ExprMethod, X: recv, Name: method.Text, Args: args}, nil
}

// parseArgs parses a parenthesized, comma-separated argument list;
// empty permitted, trailing comma not.
func (p *Parser) parseArgs() ([]*Expr, error) {
	if err := p.expect(LPAREN); err != nil {
		return nil, err
	}
	var args []*Expr
	if p.current().Kind != RPAREN {
		for {
			arg, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.current().Kind != COMMA {
				break
			}
			p.pos++
		}
	}
	if err := p.expect(RPAREN); err != nil {
		return nil, err
	}
	return args, nil
}

// parseListLiteral parses [e, e, ...]; empty permitted, trailing comma
// not.
func (p *Parser) parseListLiteral() (*Expr, error) {
	if err := p.expect(LBRACKET); err != nil {
		return nil, err
	}
	var elems []*Expr
	if p.current().Kind != RBRACKET {
		for {
			e, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			elems = append(elems, e)
			if p.current().Kind != COMMA {
				break
			}
			p.pos++
		}
	}
	if err := p.expect(RBRACKET); err != nil {
		return nil, err
	}
	return &Expr{Kind: ExprList, Elems: elems}, nil
}

// checkCompatible verifies a statically visible expression against a
// target token (a declared descriptor or an existing binding). List
// literals are checked element by element against the target's element
// type, so the error names the offending element; an empty literal has
// no element to contradict any type. Shapes with no static type
// (calls, arithmetic over variables) pass through unchecked.
func (p *Parser) checkCompatible(name string, want Token, e *Expr) error {
	switch e.Kind {
	case ExprLiteral:
		if !compatible(want, e.Value) {
			return &TypeMismatchError{Name: name, Expected: want, Found: e.Value}
		}
	case ExprGrouping:
		return p.checkCompatible(name, want, e.X)
	case ExprList:
		if typeMarker(want.Kind) != TYPE_LIST {
			return &TypeMismatchError{Name: name, Expected: want, Found: Token{Kind: TYPE_LIST}}
		}
		if want.Elem == nil {
			return nil
		}
		for _, el := range e.Elems {
			if err := p.checkCompatible(name, *want.Elem, el); err != nil {
				return err
			}
		}
	case ExprVariable:
		if bound, ok := p.LookupVariable(e.Name); ok {
			if !compatible(want, bound) {
				return &TypeMismatchError{Name: name, Expected: want, Found: bound}
			}
		}
	}
	return nil
}

// staticValue reduces an expression to the token the scope map would
// record for it: literals reduce to their own token, groupings unwrap,
// variables resolve to their binding, list literals to a descriptor
// derived from their first statically known element. ok reports
// whether the shape is statically visible at all.
func (p *Parser) staticValue(e *Expr) (Token, bool) {
	switch e.Kind {
	case ExprLiteral:
		return e.Value, true
	case ExprGrouping:
		return p.staticValue(e.X)
	case ExprVariable:
		if v, ok := p.LookupVariable(e.Name); ok {
			return v, true
		}
	case ExprList:
		return p.listDescriptor(e), true
	}
	return Token{}, false
}

// listDescriptor derives a list descriptor from a literal's elements;
// an empty literal yields an open descriptor compatible with any
// element type.
func (p *Parser) listDescriptor(e *Expr) Token {
	desc := Token{Kind: TYPE_LIST}
	for _, el := range e.Elems {
		v, ok := p.staticValue(el)
		if !ok {
			continue
		}
		m := typeMarker(v.Kind)
		if m == "" {
			continue
		}
		elem := Token{Kind: m}
		if v.Kind == TYPE_LIST {
			elem = v
		}
		desc.Elem = &elem
		break
	}
	return desc
}
