package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

// errRejected is returned when at least one input is not in the language. The
// verdicts are already printed, so main only sets the exit status.
var errRejected = errors.New("some inputs were rejected")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbosity int

	rootCmd := &cobra.Command{
		Use:           "cyk",
		Short:         "Check strings against a grammar in Chomsky normal form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "verbosity, repeat for more (-vv prints every span of the table)")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newShowCmd())

	return rootCmd
}
