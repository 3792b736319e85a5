package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/phpfront/phpfront/parser"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactively parse PHP snippets and inspect their AST and diagnostics",
	RunE: func(c *cobra.Command, args []string) error {
		rl, err := readline.New("phpfront> ")
		if err != nil {
			return fmt.Errorf("starting readline: %w", err)
		}
		defer rl.Close()

		for {
			line, err := rl.Readline()
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if !strings.HasPrefix(line, "<?php") && !strings.HasPrefix(line, "<?=") {
				line = "<?php " + line
			}

			file, errs := parser.Parse([]byte(line))
			printText(file, errs)
		}
	},
}
