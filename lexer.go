package main

import (
	"fmt"
	"strconv"
	"strings"
)

// lexer scans one source buffer. Lex is the only entry point; the
// struct exists so the helpers share a cursor without globals.
type lexer struct {
	src string
	pos int
}

// twoCharOps is consulted before oneCharOps: longest match first, so
// == beats =, >= beats >, and .. beats two dots.
var twoCharOps = map[string]TokenKind{
	"==": EQ,
	"!=": NOT_EQ,
	"<=": LE,
	">=": GE,
	"..": RANGE,
}

var oneCharOps = map[byte]TokenKind{
	'=': ASSIGN,
	'+': PLUS,
	'-': MINUS,
	'*': ASTERISK,
	'/': SLASH,
	'<': LT,
	'>': GT,
	'(': LPAREN,
	')': RPAREN,
	'[': LBRACKET,
	']': RBRACKET,
	'{': LBRACE,
	'}': RBRACE,
	':': COLON,
	',': COMMA,
	'.': DOT,
	';': SEMICOLON,
}

// Lex converts source text into its full token sequence, terminated by
// an EOF token. It is a pure function of the input: either the whole
// text tokenizes or the call fails at the first invalid character with
// a LexError, returning no partial sequence.
func Lex(src string) ([]Token, error) {
	l := &lexer{src: src}
	var tokens []Token
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens, nil
		}
	}
}

func (l *lexer) next() (Token, error) {
	l.skipWhitespace()
	start := l.pos
	if l.pos >= len(l.src) {
		return Token{Kind: EOF, Pos: start}, nil
	}
	c := l.src[l.pos]
	switch {
	case isLetter(c):
		return l.lexIdent(), nil
	case isDigit(c):
		return l.lexNumber()
	case c == '"':
		return l.lexString()
	}
	if l.pos+1 < len(l.src) {
		if kind, ok := twoCharOps[l.src[l.pos:l.pos+2]]; ok {
			l.pos += 2
			return Token{Kind: kind, Lexeme: l.src[start:l.pos], Pos: start}, nil
		}
	}
	if kind, ok := oneCharOps[c]; ok {
		l.pos++
		return Token{Kind: kind, Lexeme: l.src[start:l.pos], Pos: start}, nil
	}
	return Token{}, &LexError{Pos: start, Msg: fmt.Sprintf("unexpected character %q", c)}
}

func (l *lexer) skipWhitespace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r', '\n':
			l.pos++
		default:
			return
		}
	}
}

func (l *lexer) lexIdent() Token {
	start := l.pos
	for l.pos < len(l.src) && isAlnum(l.src[l.pos]) {
		l.pos++
	}
	text := l.src[start:l.pos]
	tok := Token{Kind: IDENT, Lexeme: text, Text: text, Pos: start}
	if kind, ok := keywords[text]; ok {
		tok.Kind = kind
		tok.Text = ""
		if kind == BOOL {
			tok.Bool = text == "true"
		}
	}
	return tok
}

// lexNumber collects digits and decimal points, except that a point
// directly followed by another point belongs to a range token and
// stops the run (0..10 is INT RANGE INT). The collected text must
// parse; 1.2.3 is a lexical error naming the text.
func (l *lexer) lexNumber() (Token, error) {
	start := l.pos
	dots := 0
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if isDigit(c) {
			l.pos++
			continue
		}
		if c != '.' {
			break
		}
		if l.pos+1 < len(l.src) && l.src[l.pos+1] == '.' {
			break
		}
		dots++
		l.pos++
	}
	text := l.src[start:l.pos]
	if dots == 0 {
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Token{}, &LexError{Pos: start, Msg: fmt.Sprintf("invalid numeric literal %q", text)}
		}
		return Token{Kind: INT, Lexeme: text, Int: n, Pos: start}, nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Token{}, &LexError{Pos: start, Msg: fmt.Sprintf("invalid numeric literal %q", text)}
	}
	return Token{Kind: FLOAT, Lexeme: text, Float: f, Pos: start}, nil
}

// lexString scans from the opening quote to the next unescaped quote,
// decoding \" \\ \n \t \r. Hitting end of input first is the
// unterminated-string lexical error.
func (l *lexer) lexString() (Token, error) {
	start := l.pos
	l.pos++
	var sb strings.Builder
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == '"' {
			l.pos++
			return Token{Kind: STRING, Lexeme: l.src[start:l.pos], Text: sb.String(), Pos: start}, nil
		}
		if c == '\\' && l.pos+1 < len(l.src) {
			l.pos += 2
			switch l.src[l.pos-1] {
			case 'n':
				sb.WriteByte('\n')
			case 't':
				sb.WriteByte('\t')
			case 'r':
				sb.WriteByte('\r')
			default:
				sb.WriteByte(l.src[l.pos-1])
			}
			continue
		}
		sb.WriteByte(c)
		l.pos++
	}
	return Token{}, &LexError{Pos: start, Msg: "unterminated string literal"}
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isLetter(c) || isDigit(c)
}
