package main

import (
	"github.com/nikbrunner/pathmarks/internal/service"
	"github.com/spf13/cobra"
)

func init() {
	updateCmd.Flags().StringP("path", "p", "", "new path")
	updateCmd.Flags().StringP("name", "n", "", "new display name")
	updateCmd.Flags().StringP("description", "d", "", "new description")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Change a bookmark's path, name or description",
	Long: `Change a bookmark. Only the given flags are changed; the rest keep
their stored values.

Examples:
  pathmarks update 3 -n notes
  pathmarks update 3 -p ~/notes.md -d ""`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	svc, closeStore, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	return svc.Update(service.UpdateParams{
		ID:          id,
		Name:        optionalString(cmd, "name"),
		Path:        optionalString(cmd, "path"),
		Description: optionalString(cmd, "description"),
	})
}
