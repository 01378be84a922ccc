package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sable-lang/sable/internal/config"
	"github.com/sable-lang/sable/internal/diag"
	"github.com/sable-lang/sable/internal/dump"
	"github.com/sable-lang/sable/internal/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Tokenize a source file and dump the token stream",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		src, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		bag := diag.NewBag()

		toks, lexErr := lexer.New(string(src), bag,
			lexer.WithFilename(path),
			lexer.WithMaxTokens(cfg.Limits.MaxTokens),
		).Tokenize()

		f := diag.NewFormatter(os.Stderr, cfg.Output.Color)
		f.AddSource(path, string(src))
		f.FormatAll(bag.All())

		if lexErr != nil {
			return fmt.Errorf("%s: %w", path, lexErr)
		}

		switch cfg.Output.Format {
		case config.FormatJSON:
			out, err := dump.JSON(dump.Tokens(toks))
			if err != nil {
				return err
			}
			fmt.Println(string(out))
		case config.FormatYAML:
			out, err := dump.YAML(dump.Tokens(toks))
			if err != nil {
				return err
			}
			fmt.Print(string(out))
		default:
			for _, tok := range toks {
				fmt.Printf("%4d:%-3d %-12s %q\n", tok.Span.Line, tok.Span.Column, tok.Kind, tok.Text)
			}
		}

		if n := bag.ErrorCount(); n > 0 {
			return fmt.Errorf("%s: %d error(s)", path, n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
