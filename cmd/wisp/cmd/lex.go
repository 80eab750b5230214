package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wisplang/wisp/internal/lexer"
	"github.com/wisplang/wisp/internal/token"
)

var lexEvalExpr string

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a wisp file or expression",
	Long: `Tokenize a wisp program and print the resulting tokens, one per line,
using Token.Dump's "Name{value}" form.

Examples:
  wisp lex script.wisp
  wisp lex -e "x = 1"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVarP(&lexEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func runLex(_ *cobra.Command, args []string) error {
	input, _, err := readSource(lexEvalExpr, args)
	if err != nil {
		return err
	}

	l, err := lexer.New(input)
	if err != nil {
		return err
	}
	for {
		tok := l.Current()
		fmt.Println(tok.Dump())
		if tok.Type == token.EOF {
			break
		}
		if err := l.Advance(); err != nil {
			return err
		}
	}
	return nil
}

// readSource resolves the CLI's common "either -e or a file argument"
// input convention, shared by lex, run and classes.
func readSource(evalExpr string, args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0])
		if readErr != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], readErr)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
}
