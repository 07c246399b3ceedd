// Package main is the entry point for the fixfft command.
//
// Usage:
//
//	fixfft [flags] <command> [args]
//
// Commands:
//
//	bench     - Time the transform kernels and record wisdom
//	verify    - Check accuracy against a floating-point reference
//	table     - Print a built-in quarter-sine table
//	features  - Show detected CPU features and the kernel choice
//	version   - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/algo-fixfft/cmd/fixfft/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
