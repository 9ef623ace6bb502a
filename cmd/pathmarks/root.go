package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/nikbrunner/pathmarks/internal/config"
	"github.com/nikbrunner/pathmarks/internal/pathutil"
	"github.com/spf13/cobra"
)

// Global flag values.
var (
	flagConfig string
	flagDB     string
	flagDebug  bool
)

var (
	// cfg is loaded by PersistentPreRunE so all subcommands can use it.
	cfg config.Config

	// logger writes diagnostics to stderr; command output goes to stdout.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "pathmarks",
		Level:           log.WarnLevel,
	})
)

var rootCmd = &cobra.Command{
	Use:   "pathmarks",
	Short: "Bookmark files and directories",
	Long: `pathmarks keeps named bookmarks for files and directories.

Run without a command to open the picker and print the chosen path:
  cd "$(pathmarks)"

Keys in the picker:
  enter   select          ctrl-x  delete
  tab     mark            ctrl-y  copy path
  pgup/pgdown scroll the preview, esc/ctrl-c exit`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE:              runSelect,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/pathmarks/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "database file (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log debug output to stderr")
	rootCmd.Version = Version
}

// loadSettings resolves the configuration and logger for every command.
func loadSettings(cmd *cobra.Command, args []string) error {
	logger.SetOutput(cmd.ErrOrStderr())
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	if flagDB != "" {
		db, err := filepath.Abs(pathutil.ExpandHome(flagDB))
		if err != nil {
			return fmt.Errorf("--db: %w", err)
		}
		loaded.Database = db
	}

	cfg = loaded
	logger.Debug("configuration loaded", "database", cfg.Database, "editor", cfg.Editor)
	return nil
}

func runSelect(cmd *cobra.Command, args []string) error {
	svc, closeStore, err := openService(cmd)
	if err != nil {
		return err
	}
	defer closeStore()

	path, err := svc.Select()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
