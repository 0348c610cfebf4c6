package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/scottcagno/bstmap/pkg/bst"
)

func NewCLI() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "bstmap",
		Short: "Drive an ordered binary search tree map",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every command at debug level")

	rootCmd.AddCommand(newRunCmd(), newBenchCmd())
	return rootCmd
}

func newRunCmd() *cobra.Command {
	var numeric bool

	runCmd := &cobra.Command{
		Use:   "run [file]",
		Short: "Execute a map script",
		Long: `Execute a map script read from file, or from stdin when file is
omitted or "-". One command per line:

  put K V    get K    del K    has K    hasval V
  keys       values   size     empty    print    clear`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}
			return runScript(r, cmd.OutOrStdout(), numeric)
		},
	}
	runCmd.Flags().BoolVar(&numeric, "numeric", false, "Order keys as integers instead of strings")
	return runCmd
}

func runScript(r io.Reader, w io.Writer, numeric bool) error {
	if numeric {
		return NewInterpreter(bst.NewOrdered[int, string](), parseInt, w, slog.Default()).Run(r)
	}
	return NewInterpreter(bst.NewOrdered[string, string](), parseString, w, slog.Default()).Run(r)
}
