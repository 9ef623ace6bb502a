package main

import (
	"github.com/spf13/cobra"
)

var listPathsOnly bool

func init() {
	listCmd.Flags().BoolVarP(&listPathsOnly, "pathsonly", "p", false, "print only the paths")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all bookmarks",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func runList(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	return svc.List(listPathsOnly)
}
