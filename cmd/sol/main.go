// Command sol is the Sol language driver: file-mode execution,
// interactive REPL mode, and a TCP REPL server, adapted from the
// teacher's main/main.go (same three modes) but restructured onto
// spf13/cobra subcommands instead of a hand-rolled os.Args switch.
package main

import (
	"fmt"
	"os"

	"github.com/hyperswine/sol/cmd/sol/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
