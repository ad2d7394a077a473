package cmd

import (
	"github.com/spf13/cobra"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "sol [file]",
	Short: "Sol: a small, batteries-included scripting language",
	Long: `Sol is a prefix-call, period-terminated scripting language with
first-class arrays and dictionaries, higher-order functions, partial
application, a pipeline operator, interpolated strings, an if/then/else
expression, and a Result type for fallible operations.

Run with a file path to execute it, or with no arguments to start the
interactive REPL.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runRoot,
}

// Execute runs the root command, returning any error for main to
// report and convert into a process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "print each statement's parsed AST before evaluating it")
	rootCmd.AddCommand(serverCmd)
}
