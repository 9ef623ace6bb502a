// Package main provides the pathmarks CLI entry point.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	os.Exit(run(os.Stderr))
}

// run executes the root command and maps its error to an exit code.
func run(stderr io.Writer) int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintf(stderr, "Error: %s\n", ee.err)
		}
		return ee.code
	}

	// Print the error since we have SilenceErrors: true
	fmt.Fprintf(stderr, "Error: %s\n", err)
	return ExitError
}
