package main

import (
	"github.com/nikbrunner/pathmarks/internal/service"
	"github.com/spf13/cobra"
)

var (
	pruneDryRun  bool
	pruneWorkers int
)

func init() {
	pruneCmd.Flags().BoolVar(&pruneDryRun, "dry-run", false, "only report stale bookmarks")
	pruneCmd.Flags().IntVar(&pruneWorkers, "workers", service.DefaultPruneWorkers, "number of concurrent path checks")
	rootCmd.AddCommand(pruneCmd)
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove bookmarks whose path no longer exists",
	Long: `Remove bookmarks whose path no longer exists. Paths that exist but
cannot be read are kept and reported as warnings.`,
	Args: cobra.NoArgs,
	RunE: runPrune,
}

func runPrune(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	_, err = svc.Prune(service.PruneParams{
		DryRun:  pruneDryRun,
		Workers: pruneWorkers,
	})
	return err
}
