package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export bookmarks as Netscape bookmark HTML",
	Long: `Export bookmarks as Netscape bookmark HTML with file:// links.
Writes to stdout when no file is given.

Examples:
  pathmarks export bookmarks.html
  pathmarks export > bookmarks.html`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) (err error) {
	svc, closeStore, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	if len(args) == 0 {
		return svc.Export(cmd.OutOrStdout())
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export file: %w", cerr)
		}
	}()

	if err := svc.Export(f); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Exported to %s\n", args[0])
	return nil
}
