package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/fplc/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse source and print the AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	source, err := readSourceArg(args)
	if err != nil {
		return err
	}

	p, err := parser.New(source)
	if err != nil {
		return err
	}
	program, err := p.ParseProgram()
	if err != nil {
		return err
	}

	fmt.Println(program.String())
	return nil
}
