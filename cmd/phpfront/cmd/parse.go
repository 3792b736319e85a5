package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/phpfront/phpfront/ast"
	"github.com/phpfront/phpfront/internal/astjson"
	"github.com/phpfront/phpfront/lexer"
	"github.com/phpfront/phpfront/parser"
	"github.com/phpfront/phpfront/perror"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a PHP file (or stdin) and print its AST and diagnostics",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := readSource(args)
		if err != nil {
			return err
		}

		file, errs := parser.Parse(src)

		switch cfg.Format {
		case "json":
			if err := printJSON(file, errs); err != nil {
				return err
			}
		default:
			printText(file, errs)
		}

		if cfg.Stats {
			toks := lexer.TokenizeFiltered(string(src))
			fmt.Fprintf(os.Stderr, "%d bytes, %d tokens, %d top-level statements, %d diagnostics\n",
				len(src), len(toks)-1, len(file.Stmts), len(errs))
		}

		if cfg.FailOnError && len(errs) > 0 {
			os.Exit(1)
		}
		return nil
	},
}

func readSource(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

func printJSON(file *ast.File, errs []*perror.ParseError) error {
	out := map[string]any{
		"program": astjson.Encode(file),
		"errors":  astjson.Encode(errs),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printText(file *ast.File, errs []*perror.ParseError) {
	fmt.Printf("parsed %d top-level statement(s)\n", len(file.Stmts))
	if len(errs) == 0 {
		fmt.Println("no diagnostics")
		return
	}
	fmt.Printf("%d diagnostic(s):\n", len(errs))
	for _, e := range errs {
		fmt.Printf("  %s [%d:%d): %s\n", e.Kind, e.Span.Start, e.Span.End, e.Message)
	}
}
