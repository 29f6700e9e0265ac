package main

import "fmt"

// LexError is a failure to tokenize source text. Pos is the byte
// offset of the offending character or run. Lexing stops at the first
// LexError; no partial token sequence is returned.
type LexError struct {
	Pos int
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at offset %d: %s", e.Pos, e.Msg)
}

// ParseError is a structural parse failure: a production expected a
// construct and found a different token. A Found of kind EOF means
// input ran out, which is how unterminated blocks surface.
type ParseError struct {
	Expected string
	Found    Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s, found %s", e.Expected, e.Found)
}

// TypeMismatchError reports an initializer or assigned value whose
// variant conflicts with a variable's existing binding or declared
// type. Expected and Found carry the two values so messages show both.
type TypeMismatchError struct {
	Name     string
	Expected Token
	Found    Token
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch for %q: expected %s, found %s", e.Name, e.Expected, e.Found)
}

// UndeclaredVariableError reports an assignment to a name with no
// binding in any active scope.
type UndeclaredVariableError struct {
	Name string
	Pos  int
}

func (e *UndeclaredVariableError) Error() string {
	return fmt.Sprintf("undeclared variable %q", e.Name)
}

// RedeclaredFunctionError reports a second fn definition reusing a
// registered name; the function table does not overload.
type RedeclaredFunctionError struct {
	Name string
}

func (e *RedeclaredFunctionError) Error() string {
	return fmt.Sprintf("function %q already defined", e.Name)
}
