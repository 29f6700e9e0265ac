package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	errHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	lineNumStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	caretStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
)

// disableColor swaps the diagnostic styles for plain ones. The
// --no-color flag and color = false in wolf.toml both route here.
func disableColor() {
	plain := lipgloss.NewStyle()
	errHeaderStyle = plain
	lineNumStyle = plain
	caretStyle = plain
	okStyle = plain
}

// RenderDiagnostic formats err as a caret-annotated snippet of src:
// a header with the error family, 1-based line:column, the message,
// and the offending line with one line of context either side. Errors
// outside the lex/parse taxonomy render as their bare message.
func RenderDiagnostic(err error, src, name string) string {
	header, pos, ok := classify(err)
	if !ok {
		return errHeaderStyle.Render("ERROR") + ": " + err.Error()
	}
	line, col := lineCol(src, pos)
	var sb strings.Builder
	sb.WriteString(errHeaderStyle.Render(header))
	if name != "" {
		sb.WriteString(" in " + name)
	}
	fmt.Fprintf(&sb, " at %d:%d: %s\n", line, col, err.Error())
	sb.WriteString(snippet(src, line, col))
	return strings.TrimRight(sb.String(), "\n")
}

func classify(err error) (string, int, bool) {
	var lexErr *LexError
	if errors.As(err, &lexErr) {
		return "LEXICAL ERROR", lexErr.Pos, true
	}
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return "PARSE ERROR", parseErr.Found.Pos, true
	}
	var typeErr *TypeMismatchError
	if errors.As(err, &typeErr) {
		return "TYPE ERROR", typeErr.Found.Pos, true
	}
	var undeclErr *UndeclaredVariableError
	if errors.As(err, &undeclErr) {
		return "PARSE ERROR", undeclErr.Pos, true
	}
	var redeclErr *RedeclaredFunctionError
	if errors.As(err, &redeclErr) {
		return "PARSE ERROR", 0, true
	}
	return "", 0, false
}

// lineCol converts a byte offset into 1-based line and column.
func lineCol(src string, pos int) (int, int) {
	if pos > len(src) {
		pos = len(src)
	}
	line, col := 1, 1
	for i := 0; i < pos; i++ {
		if src[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// snippet renders numbered source lines around the error line with a
// caret under the column.
func snippet(src string, line, col int) string {
	lines := strings.Split(src, "\n")
	if line > len(lines) {
		line = len(lines)
	}
	if line < 1 {
		line = 1
	}
	last := line + 1
	if last > len(lines) {
		last = len(lines)
	}
	width := len(fmt.Sprint(last))
	var sb strings.Builder
	for n := line - 1; n <= last; n++ {
		if n < 1 {
			continue
		}
		sb.WriteString(lineNumStyle.Render(fmt.Sprintf("  %*d | ", width, n)))
		sb.WriteString(lines[n-1])
		sb.WriteString("\n")
		if n == line {
			sb.WriteString(caretStyle.Render(strings.Repeat(" ", width+col+4) + "^"))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
