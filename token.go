package main

import (
	"fmt"
	"strconv"
	"strings"
)

// TokenKind identifies the lexical class of a Token. Operator and
// punctuation kinds use their source text as the constant value;
// keyword and literal-class kinds use upper-case names.
type TokenKind string

const (
	EOF TokenKind = "EOF"

	// Literal classes
	IDENT  TokenKind = "IDENT"
	INT    TokenKind = "INT"
	FLOAT  TokenKind = "FLOAT"
	STRING TokenKind = "STRING"
	BOOL   TokenKind = "BOOL"

	// Keywords
	LET    TokenKind = "LET"
	PRINT  TokenKind = "PRINT"
	IF     TokenKind = "IF"
	ELSE   TokenKind = "ELSE"
	WHILE  TokenKind = "WHILE"
	FOR    TokenKind = "FOR"
	FN     TokenKind = "FN"
	RETURN TokenKind = "RETURN"
	END    TokenKind = "END"

	// Type markers
	TYPE_INT    TokenKind = "TYPE_INT"
	TYPE_FLOAT  TokenKind = "TYPE_FLOAT"
	TYPE_STRING TokenKind = "TYPE_STRING"
	TYPE_BOOL   TokenKind = "TYPE_BOOL"
	TYPE_LIST   TokenKind = "TYPE_LIST"

	// Operators
	ASSIGN   TokenKind = "="
	PLUS     TokenKind = "+"
	MINUS    TokenKind = "-"
	ASTERISK TokenKind = "*"
	SLASH    TokenKind = "/"
	EQ       TokenKind = "=="
	NOT_EQ   TokenKind = "!="
	LT       TokenKind = "<"
	GT       TokenKind = ">"
	LE       TokenKind = "<="
	GE       TokenKind = ">="
	AND      TokenKind = "AND"
	OR       TokenKind = "OR"

	// Punctuation
	LPAREN    TokenKind = "("
	RPAREN    TokenKind = ")"
	LBRACKET  TokenKind = "["
	RBRACKET  TokenKind = "]"
	LBRACE    TokenKind = "{"
	RBRACE    TokenKind = "}"
	COLON     TokenKind = ":"
	COMMA     TokenKind = ","
	DOT       TokenKind = "."
	SEMICOLON TokenKind = ";"
	RANGE     TokenKind = ".."
)

// keywords maps identifier runs to keyword, type-marker, boolean and
// word-operator kinds. Runs not in this table lex as IDENT.
var keywords = map[string]TokenKind{
	"let":    LET,
	"print":  PRINT,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"for":    FOR,
	"fn":     FN,
	"return": RETURN,
	"end":    END,
	"int":    TYPE_INT,
	"float":  TYPE_FLOAT,
	"string": TYPE_STRING,
	"bool":   TYPE_BOOL,
	"list":   TYPE_LIST,
	"and":    AND,
	"or":     OR,
	"true":   BOOL,
	"false":  BOOL,
}

// Token is one lexical unit of Wolf source. Tokens are immutable once
// produced. Payload fields are populated according to Kind:
//
//	IDENT:     Text (the name)
//	INT:       Int
//	FLOAT:     Float
//	STRING:    Text (decoded value, quotes excluded)
//	BOOL:      Bool
//	TYPE_LIST: Elem (element descriptor; nil on the bare lexed marker)
//
// Lexeme holds the raw source text and Pos the byte offset; neither
// participates in equality.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Text   string
	Int    int64
	Float  float64
	Bool   bool
	Elem   *Token
	Pos    int
}

// Equal reports whether two tokens are the same lexical value: kinds
// must match, and payload-bearing kinds compare payloads too. List
// descriptors compare structurally through Elem.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case IDENT, STRING:
		return t.Text == o.Text
	case INT:
		return t.Int == o.Int
	case FLOAT:
		return t.Float == o.Float
	case BOOL:
		return t.Bool == o.Bool
	case TYPE_LIST:
		if t.Elem == nil || o.Elem == nil {
			return t.Elem == o.Elem
		}
		return t.Elem.Equal(*o.Elem)
	}
	return true
}

// String renders the token for diagnostics: literal values as
// themselves, identifiers with their name, everything else as its
// quoted source text.
func (t Token) String() string {
	switch t.Kind {
	case EOF:
		return "end of input"
	case IDENT:
		return fmt.Sprintf("identifier %q", t.Text)
	case INT:
		return strconv.FormatInt(t.Int, 10)
	case FLOAT:
		return formatFloat(t.Float)
	case STRING:
		return strconv.Quote(t.Text)
	case BOOL:
		return strconv.FormatBool(t.Bool)
	case TYPE_INT:
		return "int"
	case TYPE_FLOAT:
		return "float"
	case TYPE_STRING:
		return "string"
	case TYPE_BOOL:
		return "bool"
	case TYPE_LIST:
		if t.Elem == nil {
			return "list"
		}
		return "list<" + t.Elem.String() + ">"
	}
	return strconv.Quote(t.Canonical())
}

// Canonical renders the source text a token lexes back from. Joining a
// sequence's canonical forms with spaces re-lexes to an equal sequence
// (EOF renders empty).
func (t Token) Canonical() string {
	switch t.Kind {
	case EOF:
		return ""
	case IDENT:
		return t.Text
	case INT:
		return strconv.FormatInt(t.Int, 10)
	case FLOAT:
		return formatFloat(t.Float)
	case STRING:
		return strconv.Quote(t.Text)
	case BOOL:
		return strconv.FormatBool(t.Bool)
	case LET:
		return "let"
	case PRINT:
		return "print"
	case IF:
		return "if"
	case ELSE:
		return "else"
	case WHILE:
		return "while"
	case FOR:
		return "for"
	case FN:
		return "fn"
	case RETURN:
		return "return"
	case END:
		return "end"
	case TYPE_INT:
		return "int"
	case TYPE_FLOAT:
		return "float"
	case TYPE_STRING:
		return "string"
	case TYPE_BOOL:
		return "bool"
	case TYPE_LIST:
		return "list"
	case AND:
		return "and"
	case OR:
		return "or"
	}
	return string(t.Kind)
}

// formatFloat renders a float so it re-lexes as FLOAT: plain decimal
// notation, never an exponent, always a decimal point.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// typeMarker normalizes a kind to its type-marker kind: literal kinds
// map to the marker of the type they inhabit, marker kinds map to
// themselves. Kinds with no type interpretation map to "".
func typeMarker(k TokenKind) TokenKind {
	switch k {
	case INT, TYPE_INT:
		return TYPE_INT
	case FLOAT, TYPE_FLOAT:
		return TYPE_FLOAT
	case STRING, TYPE_STRING:
		return TYPE_STRING
	case BOOL, TYPE_BOOL:
		return TYPE_BOOL
	case TYPE_LIST:
		return TYPE_LIST
	}
	return ""
}
