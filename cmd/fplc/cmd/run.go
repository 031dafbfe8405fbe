package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cwbudde/fplc/pkg/fplc"
	"github.com/cwbudde/fplc/pkg/platform/native"
)

var (
	runEval  string
	runDebug bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute a source file; -d enables debug trace on stderr",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runEval, "eval", "e", "", "evaluate inline code instead of reading from a file")
	runCmd.Flags().BoolVarP(&runDebug, "debug", "d", false, "enable debug trace on stderr")
}

func runRun(_ *cobra.Command, args []string) error {
	var source, baseDir string
	switch {
	case runEval != "":
		source = runEval
		baseDir, _ = os.Getwd()
	case len(args) == 1:
		data, err := native.LoadSource(args[0])
		if err != nil {
			return err
		}
		source = data
		baseDir = filepath.Dir(args[0])
	default:
		return fmt.Errorf("either provide a source file or use -e for inline code")
	}

	manifest, err := native.LoadManifest(filepath.Join(baseDir, "fplc.yaml"))
	if err != nil {
		return err
	}

	opts := fplc.Options{
		Stdout:   os.Stdout,
		Stdin:    os.Stdin,
		Resolver: manifest.Resolver(baseDir),
	}
	if runDebug {
		opts.Trace = os.Stderr
	}

	status := fplc.Run(source, opts)
	if status.Message != "" {
		fmt.Fprintln(os.Stderr, status.Message)
	}
	os.Exit(status.Code)
	return nil
}
