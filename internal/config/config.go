// Package config loads pathmarks settings from config.yaml and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/nikbrunner/pathmarks/internal/pathutil"
	"github.com/spf13/viper"
)

const (
	appName        = "pathmarks"
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "PATHMARKS"
	dbFileName     = "pathmarks.db"
)

// Config keys.
const (
	KeyDatabase     = "database"
	KeyEditor       = "editor"
	KeyNerdFonts    = "nerd_fonts"
	KeyPickerHeight = "picker_height"
)

// Defaults.
const (
	DefaultEditor       = "vi"
	DefaultPickerHeight = 50
)

// Config holds the resolved settings.
type Config struct {
	Database     string // absolute path of the SQLite file
	Editor       string // fallback when $EDITOR is unset
	NerdFonts    bool
	PickerHeight int // percent of the terminal height
}

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultDir returns the platform-specific configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/pathmarks (fallback ~/.config/pathmarks)
// Others:  os.UserConfigDir()/pathmarks
func DefaultDir() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appName), nil
	}

	dir, err := platformDir.userConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

// Load reads configFile, or config.yaml from DefaultDir when configFile is
// empty. A missing default file is not an error; a missing explicit one is.
// PATHMARKS_* environment variables override file values.
func Load(configFile string) (Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return Config{}, fmt.Errorf("resolve config dir: %w", err)
	}

	v := viper.New()
	v.SetDefault(KeyDatabase, filepath.Join(dir, dbFileName))
	v.SetDefault(KeyEditor, DefaultEditor)
	v.SetDefault(KeyNerdFonts, false)
	v.SetDefault(KeyPickerHeight, DefaultPickerHeight)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(pathutil.ExpandHome(configFile))
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (Config, error) {
	db := pathutil.ExpandHome(v.GetString(KeyDatabase))
	if db == "" {
		return Config{}, fmt.Errorf("config: %s must not be empty", KeyDatabase)
	}
	db, err := filepath.Abs(db)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", KeyDatabase, err)
	}

	height := v.GetInt(KeyPickerHeight)
	if height < 1 || height > 100 {
		return Config{}, fmt.Errorf("config: %s must be between 1 and 100, got %d", KeyPickerHeight, height)
	}

	editor := v.GetString(KeyEditor)
	if editor == "" {
		editor = DefaultEditor
	}

	return Config{
		Database:     db,
		Editor:       editor,
		NerdFonts:    v.GetBool(KeyNerdFonts),
		PickerHeight: height,
	}, nil
}
