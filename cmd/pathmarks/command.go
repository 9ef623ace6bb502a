package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(commandCmd)
}

var commandCmd = &cobra.Command{
	Use:   "command",
	Short: "Pick a bookmark and print a shell command that opens it",
	Long: `Pick a bookmark and print "$EDITOR <path>" for a file or "cd <path>"
for a directory. Prints an empty line when nothing was chosen.

Example:
  eval "$(pathmarks command)"`,
	Args: cobra.NoArgs,
	RunE: runCommand,
}

func runCommand(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	line, err := svc.Command()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}
