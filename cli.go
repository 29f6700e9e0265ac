package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is the wolf release version.
const Version = "0.2.0"

var (
	cfgFile string
	noColor bool
	cfg     Config
	astExpr string
)

var rootCmd = &cobra.Command{
	Use:   "wolf",
	Short: "Wolf language front end",
	Long: `wolf lexes and parses Wolf source into a validated syntax tree.
It never executes programs; commands display tokens, trees and diagnostics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		if noColor || !cfg.Color {
			disableColor()
		}
		return nil
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Lex a source file and print its token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		tokens, err := Lex(string(src))
		if err != nil {
			fmt.Fprintln(os.Stderr, RenderDiagnostic(err, string(src), args[0]))
			os.Exit(1)
		}
		for _, tok := range tokens {
			if tok.Kind == EOF {
				break
			}
			fmt.Printf("%-12s %s\n", string(tok.Kind), tok.Canonical())
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse a source file and report the first defect",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if _, err := parseSource(string(src)); err != nil {
			fmt.Fprintln(os.Stderr, RenderDiagnostic(err, string(src), args[0]))
			os.Exit(1)
		}
		fmt.Println(okStyle.Render("ok"))
		return nil
	},
}

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Print the parsed tree as an s-expression",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if astExpr != "" {
			out, err := exprSExpr(astExpr)
			if err != nil {
				fmt.Fprintln(os.Stderr, RenderDiagnostic(err, astExpr, ""))
				os.Exit(1)
			}
			fmt.Println(out)
			return nil
		}
		if len(args) == 0 {
			return fmt.Errorf("provide a file or an -e expression")
		}
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		program, err := parseSource(string(src))
		if err != nil {
			fmt.Fprintln(os.Stderr, RenderDiagnostic(err, string(src), args[0]))
			os.Exit(1)
		}
		fmt.Println(ProgramToSExpr(program))
		return nil
	},
}

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive parse loop",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the wolf version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wolf %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default wolf.toml)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable styled output")
	astCmd.Flags().StringVarP(&astExpr, "expr", "e", "", "parse a single expression instead of a file")
	rootCmd.AddCommand(tokensCmd, checkCmd, astCmd, replCmd, versionCmd)
}

// parseSource runs the full pipeline over one source buffer.
func parseSource(src string) ([]*Stmt, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseProgram()
}

// exprSExpr parses a single expression spanning the whole input and
// renders it.
func exprSExpr(src string) (string, error) {
	tokens, err := Lex(src)
	if err != nil {
		return "", err
	}
	p := NewParser(tokens)
	e, err := p.ParseExpression()
	if err != nil {
		return "", err
	}
	if tok := p.current(); tok.Kind != EOF {
		return "", &ParseError{Expected: "end of input", Found: tok}
	}
	return ExprToSExpr(e), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
