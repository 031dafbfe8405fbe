// Command fplc is the reference CLI for the interpreter (spec.md §6).
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/fplc/cmd/fplc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
