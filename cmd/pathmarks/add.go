package main

import (
	"github.com/nikbrunner/pathmarks/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	addCmd.Flags().StringP("name", "n", "", "display name")
	addCmd.Flags().StringP("description", "d", "", "free-text description")
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Bookmark a file or directory",
	Long: `Bookmark a file or directory. The path is resolved to an absolute,
symlink-free path before it is stored.

Examples:
  pathmarks add .
  pathmarks add ./src -n source -d "project sources"`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	return svc.Add(service.AddParams{
		Name:        optionalString(cmd, "name"),
		Path:        args[0],
		Description: optionalString(cmd, "description"),
	})
}
