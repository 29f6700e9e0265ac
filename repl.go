package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/peterh/liner"
)

const (
	promptMain = "wolf> "
	promptCont = "  ... "
)

const helpText = `REPL commands:
  :help, :h    Show this help
  :vars        List top-level bindings
  :quit, :q    Exit the REPL
`

// runREPL reads statements, parses them against one persistent parser
// so bindings carry across lines, and prints each parsed statement as
// an s-expression. Nothing is ever executed.
func runREPL() error {
	fmt.Printf("wolf %s (parse only)\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.\n", Version)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := cfg.HistoryFile
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	p := NewParser(nil)

	for {
		input, ok := readStatement(ln, p)
		if !ok {
			fmt.Println()
			return nil
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		if handled, quit := replCommand(p, input); handled {
			if quit {
				return nil
			}
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(input, "\n", " "))

		tokens, err := Lex(input)
		if err != nil {
			fmt.Fprintln(os.Stderr, RenderDiagnostic(err, input, ""))
			continue
		}
		p.Reset(tokens)
		program, err := p.ParseProgram()
		if err != nil {
			fmt.Fprintln(os.Stderr, RenderDiagnostic(err, input, ""))
			continue
		}
		for _, s := range program {
			fmt.Println(StmtToSExpr(s))
		}
	}
}

// readStatement collects lines until the buffer parses or fails with a
// real error. The continuation prompt shows while the only defect is
// running out of tokens. Returns ok=false on Ctrl+D; Ctrl+C discards
// the buffer and starts over.
func readStatement(ln *liner.State, p *Parser) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(promptMain)
		} else {
			line, err = ln.Prompt(promptCont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		trimmed := strings.TrimSpace(src)
		if trimmed == "" || strings.HasPrefix(trimmed, ":") {
			return src, true
		}
		if isIncomplete(p, src) {
			continue
		}
		return src, true
	}
}

// isIncomplete reports whether input fails to parse only because more
// tokens are needed. The probe parser is seeded with the session's
// bindings so references to them never cut a multi-line construct
// short; its own declarations are thrown away.
func isIncomplete(p *Parser, input string) bool {
	tokens, err := Lex(input)
	if err != nil {
		return false
	}
	probe := NewParser(tokens)
	for name, binding := range p.Variables() {
		probe.DefineVariable(name, binding)
	}
	_, perr := probe.ParseProgram()
	if perr == nil {
		return false
	}
	var parseErr *ParseError
	return errors.As(perr, &parseErr) && parseErr.Found.Kind == EOF
}

// replCommand handles :-prefixed REPL commands. handled is false when
// input is ordinary source.
func replCommand(p *Parser, input string) (handled, quit bool) {
	cmd := strings.TrimSpace(input)
	if !strings.HasPrefix(cmd, ":") {
		return false, false
	}
	switch strings.ToLower(cmd) {
	case ":quit", ":q":
		return true, true
	case ":help", ":h":
		fmt.Print(helpText)
	case ":vars":
		vars := p.Variables()
		if len(vars) == 0 {
			fmt.Println("no bindings yet")
			break
		}
		names := make([]string, 0, len(vars))
		for name := range vars {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("  %s = %s\n", name, vars[name].Canonical())
		}
	default:
		fmt.Println("unknown command. Type :help for commands.")
	}
	return true, false
}
