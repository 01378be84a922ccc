package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sable-lang/sable/internal/ast"
	"github.com/sable-lang/sable/internal/config"
	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/dump"
	"github.com/sable-lang/sable/internal/lexer"
	"github.com/sable-lang/sable/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a source file and dump its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		prog, bag, err := parseFile(path)
		if err != nil {
			return err
		}

		switch cfg.Output.Format {
		case config.FormatJSON:
			out, err := dump.JSON(dump.Program(prog))
			if err != nil {
				return err
			}
			fmt.Println(string(out))
		case config.FormatYAML:
			out, err := dump.YAML(dump.Program(prog))
			if err != nil {
				return err
			}
			fmt.Print(string(out))
		default:
			fmt.Printf("%s: %d top-level statements\n", path, len(prog.Stmts))
		}

		if n := bag.ErrorCount(); n > 0 {
			return fmt.Errorf("%s: %d error(s)", path, n)
		}
		return nil
	},
}

// parseFile runs the full front end over one file, rendering diagnostics to
// stderr. The returned program is valid even when diagnostics were reported;
// only resource-limit failures return an error with no program.
func parseFile(path string) (*ast.Program, *diag.Bag, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	bag := diag.NewBag()

	toks, lexErr := lexer.New(string(src), bag,
		lexer.WithFilename(path),
		lexer.WithMaxTokens(cfg.Limits.MaxTokens),
	).Tokenize()

	var prog *ast.Program
	var parseErr error
	if lexErr == nil {
		prog, parseErr = parser.New(toks, bag,
			parser.WithFilename(path),
			parser.WithMaxDepth(cfg.Limits.MaxDepth),
		).Parse()
	}

	f := diag.NewFormatter(os.Stderr, cfg.Output.Color)
	f.AddSource(path, string(src))
	f.FormatAll(bag.All())

	if lexErr != nil {
		return nil, bag, fmt.Errorf("%s: %w", path, lexErr)
	}
	if parseErr != nil {
		return nil, bag, parseErr
	}
	return prog, bag, nil
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
