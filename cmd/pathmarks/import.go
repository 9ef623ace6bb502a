package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import file:// bookmarks from Netscape bookmark HTML",
	Long: `Import file:// bookmarks from a Netscape bookmark HTML file, such as
one written by export or by a browser. Web links, paths that no longer
exist and paths already bookmarked are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open import file: %w", err)
	}
	defer f.Close()

	svc, closeStore, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	_, _, err = svc.Import(f)
	return err
}
