package main

// scope is one lexical region's bindings: variable name to the token
// recorded at declaration or by the last compatible assignment.
type scope map[string]Token

// pushScope opens a nested scope. Block-structured productions push on
// block entry and pop on block exit; the global scope at the bottom of
// the stack is never popped.
func (p *Parser) pushScope() {
	p.scopes = append(p.scopes, scope{})
}

func (p *Parser) popScope() {
	if len(p.scopes) > 1 {
		p.scopes = p.scopes[:len(p.scopes)-1]
	}
}

// DefineVariable records a binding in the innermost scope. A name
// already bound in the same scope is overwritten; a name bound in an
// outer scope is shadowed until the inner scope is popped. Parsing a
// let does not call this; the block and program drivers do, which is
// what makes the declaration take effect.
func (p *Parser) DefineVariable(name string, value Token) {
	p.scopes[len(p.scopes)-1][name] = value
}

// LookupVariable searches innermost to outermost and returns the first
// binding found.
func (p *Parser) LookupVariable(name string) (Token, bool) {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		if v, ok := p.scopes[i][name]; ok {
			return v, true
		}
	}
	return Token{}, false
}

// AssignVariable resolves name innermost to outermost and overwrites
// the first binding found, provided the new value's variant is
// compatible with the existing one. On a mismatch the binding is left
// untouched and the error carries both values.
func (p *Parser) AssignVariable(name string, value Token) error {
	for i := len(p.scopes) - 1; i >= 0; i-- {
		old, ok := p.scopes[i][name]
		if !ok {
			continue
		}
		if !compatible(old, value) {
			return &TypeMismatchError{Name: name, Expected: old, Found: value}
		}
		p.scopes[i][name] = value
		return nil
	}
	return &UndeclaredVariableError{Name: name, Pos: value.Pos}
}

// DefineFunction registers a parsed fn definition in the function
// table. Names are unique; there is no overloading. Like
// DefineVariable, this is the drivers' explicit step, not part of the
// fn production.
func (p *Parser) DefineFunction(fn *Stmt) error {
	if _, ok := p.funcs[fn.Name]; ok {
		return &RedeclaredFunctionError{Name: fn.Name}
	}
	p.funcs[fn.Name] = &FuncDecl{Name: fn.Name, Params: fn.Params, Body: fn.Body}
	return nil
}

// LookupFunction returns the registered definition for name.
func (p *Parser) LookupFunction(name string) (*FuncDecl, bool) {
	fn, ok := p.funcs[name]
	return fn, ok
}

// Variables snapshots every visible binding, outer scopes first with
// inner bindings shadowing outer ones. The REPL's :vars uses it.
func (p *Parser) Variables() map[string]Token {
	vars := map[string]Token{}
	for _, s := range p.scopes {
		for name, v := range s {
			vars[name] = v
		}
	}
	return vars
}

// compatible reports whether a value token may replace an existing
// binding: variants must agree once literal kinds are normalized to
// their type markers, payloads disregarded. List descriptors compare
// structurally, and a descriptor with no element type (from an empty
// list literal) is compatible with any element type.
func compatible(old, val Token) bool {
	a, b := typeMarker(old.Kind), typeMarker(val.Kind)
	if a == "" || b == "" {
		return old.Kind == val.Kind
	}
	if a != b {
		return false
	}
	if a == TYPE_LIST {
		if old.Elem == nil || val.Elem == nil {
			return true
		}
		return compatible(*old.Elem, *val.Elem)
	}
	return true
}
