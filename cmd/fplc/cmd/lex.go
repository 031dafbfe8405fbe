package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/fplc/internal/lexer"
	"github.com/cwbudde/fplc/pkg/platform/native"
)

var lexShowPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize source and print the token stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().BoolVar(&lexShowPos, "pos", false, "show source position for each token")
}

func runLex(_ *cobra.Command, args []string) error {
	source, err := readSourceArg(args)
	if err != nil {
		return err
	}

	toks, err := lexer.Tokenize(source)
	if err != nil {
		return err
	}
	for _, tok := range toks {
		if lexShowPos {
			fmt.Printf("%-14s %-20q @%d:%d\n", tok.Type, tok.Literal, tok.Pos.Line, tok.Pos.Column)
		} else {
			fmt.Printf("%-14s %q\n", tok.Type, tok.Literal)
		}
	}
	return nil
}

// readSourceArg reads source from a file argument or stdin, the same
// fallback the teacher's cmd/parse.go uses.
func readSourceArg(args []string) (string, error) {
	if len(args) == 1 {
		return native.LoadSource(args[0])
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), nil
}
