package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Exit 0 if path (default: current directory) is bookmarked, 1 if not",
	Args:  cobra.MaximumNArgs(1),
	// replaces the root hook so a bad configuration is not mistaken for
	// "not bookmarked"
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadSettings(cmd, args); err != nil {
			return &exitError{code: ExitStoreError, err: err}
		}
		return nil
	},
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}

	svc, closeStore, err := openService(cmd)
	if err != nil {
		return &exitError{code: ExitStoreError, err: err}
	}
	defer closeStore()

	found, err := svc.Check(path)
	if err != nil {
		return &exitError{code: ExitStoreError, err: err}
	}
	if !found {
		return &exitError{code: ExitNotBookmarked}
	}
	return nil
}
