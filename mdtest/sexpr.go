// Package mdtest extracts parser test cases from markdown corpus
// files and matches s-expression patterns against rendered trees.
package mdtest

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeType identifies a pattern node's shape.
type NodeType int

const (
	NodeSymbol NodeType = iota
	NodeString
	NodeNumber
	NodeEllipsis
	NodeList
)

// Node is one parsed s-expression node. Symbols, numbers and strings
// are leaves carrying Text; lists carry Items. Ellipsis nodes exist
// only in patterns and match anything.
type Node struct {
	Type  NodeType
	Text  string
	Items []*Node
}

// Parse reads exactly one s-expression datum from input; trailing
// content is an error.
func Parse(input string) (*Node, error) {
	p := &sexprParser{input: input}
	node, err := p.parseDatum()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("unexpected trailing content at offset %d", p.pos)
	}
	return node, nil
}

type sexprParser struct {
	input string
	pos   int
}

func (p *sexprParser) skipSpace() {
	for p.pos < len(p.input) {
		switch p.input[p.pos] {
		case ' ', '\t', '\r', '\n':
			p.pos++
		default:
			return
		}
	}
}

func (p *sexprParser) parseDatum() (*Node, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, fmt.Errorf("unexpected end of pattern")
	}
	c := p.input[p.pos]
	switch {
	case c == '(':
		return p.parseList()
	case c == '"':
		return p.parseString()
	case strings.HasPrefix(p.input[p.pos:], "..."):
		p.pos += 3
		return &Node{Type: NodeEllipsis, Text: "..."}, nil
	case c == ')':
		return nil, fmt.Errorf("unexpected ) at offset %d", p.pos)
	}
	return p.parseAtom()
}

func (p *sexprParser) parseList() (*Node, error) {
	p.pos++
	node := &Node{Type: NodeList}
	for {
		p.skipSpace()
		if p.pos >= len(p.input) {
			return nil, fmt.Errorf("unterminated list")
		}
		if p.input[p.pos] == ')' {
			p.pos++
			return node, nil
		}
		item, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		node.Items = append(node.Items, item)
	}
}

func (p *sexprParser) parseString() (*Node, error) {
	start := p.pos
	p.pos++
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '\\' && p.pos+1 < len(p.input) {
			p.pos += 2
			continue
		}
		if c == '"' {
			p.pos++
			text, err := strconv.Unquote(p.input[start:p.pos])
			if err != nil {
				return nil, fmt.Errorf("bad string literal at offset %d", start)
			}
			return &Node{Type: NodeString, Text: text}, nil
		}
		p.pos++
	}
	return nil, fmt.Errorf("unterminated string at offset %d", start)
}

func (p *sexprParser) parseAtom() (*Node, error) {
	start := p.pos
	for p.pos < len(p.input) && !isDelim(p.input[p.pos]) {
		p.pos++
	}
	text := p.input[start:p.pos]
	if text == "" {
		return nil, fmt.Errorf("empty atom at offset %d", start)
	}
	if isNumberText(text) {
		return &Node{Type: NodeNumber, Text: text}, nil
	}
	return &Node{Type: NodeSymbol, Text: text}, nil
}

func isDelim(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '(', ')', '"':
		return true
	}
	return false
}

func isNumberText(s string) bool {
	i := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		i = 1
	}
	digits := false
	for ; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			digits = true
			continue
		}
		if c != '.' {
			return false
		}
	}
	return digits
}

// String renders the node back in canonical form: single spaces
// between list items, strings quoted.
func (n *Node) String() string {
	switch n.Type {
	case NodeString:
		return strconv.Quote(n.Text)
	case NodeList:
		parts := make([]string, 0, len(n.Items))
		for _, item := range n.Items {
			parts = append(parts, item.String())
		}
		return "(" + strings.Join(parts, " ") + ")"
	}
	return n.Text
}

// Match structurally compares a pattern against an actual tree. An
// ellipsis in the pattern matches any single node, or, as the final
// item of a list, however many items remain. The error names the path
// to the first difference.
func Match(pattern, actual *Node) error {
	return match(pattern, actual, "root")
}

func match(pattern, actual *Node, path string) error {
	if pattern.Type == NodeEllipsis {
		return nil
	}
	if pattern.Type != actual.Type {
		return fmt.Errorf("%s: expected %s, got %s", path, pattern, actual)
	}
	if pattern.Type != NodeList {
		if pattern.Text != actual.Text {
			return fmt.Errorf("%s: expected %s, got %s", path, pattern, actual)
		}
		return nil
	}
	for i, item := range pattern.Items {
		if item.Type == NodeEllipsis && i == len(pattern.Items)-1 {
			return nil
		}
		if i >= len(actual.Items) {
			return fmt.Errorf("%s: missing item %d, want %s", path, i, item)
		}
		if err := match(item, actual.Items[i], fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}
	if len(actual.Items) > len(pattern.Items) {
		return fmt.Errorf("%s: %d extra items", path, len(actual.Items)-len(pattern.Items))
	}
	return nil
}
