package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/netlens/internal/config"
	"github.com/alexisbeaulieu97/netlens/internal/logger"
	"github.com/alexisbeaulieu97/netlens/internal/styles"
	"github.com/alexisbeaulieu97/netlens/internal/translations"
)

// appContext carries what every command needs once flags and the config
// file have been merged.
type appContext struct {
	log      *logger.Logger
	theme    styles.ThemeState
	language translations.Language
}

func (a *appContext) load(cmd *cobra.Command, flags *rootFlags) error {
	cfg, baseDir, err := loadConfig(flags)
	if err != nil {
		return newCommandError("load", "reading configuration", err, "Fix the configuration file or pass --config with a valid path.")
	}

	applyFlagOverrides(cmd, flags, &cfg)
	if err := config.ValidateConfig(&cfg); err != nil {
		return newCommandError("load", "validating configuration", err, "Check the --style, --palette and --language values.")
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	theme, err := cfg.ThemeState(baseDir)
	if err != nil {
		log.WithFields(map[string]any{"palette_file": cfg.PaletteFile}).Error(err, "custom palette rejected")
		return newCommandError("load", "building the theme", err, "Check that every palette color is written as #rrggbb or #rrggbbaa.")
	}

	a.log = log.WithTheme(theme)
	a.theme = theme
	a.language = cfg.LanguageValue()
	styles.SetTheme(theme)

	if cfg.Language != "" && !translations.Supported(cfg.Language) {
		a.log.WithFields(map[string]any{"language": cfg.Language}).Warn("no translation for language, using English")
	}
	a.log.Debug("configuration loaded")
	return nil
}

// loadConfig reads the config file when one is given and returns the
// directory relative palette paths resolve against.
func loadConfig(flags *rootFlags) (config.Config, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, "", fmt.Errorf("resolve working directory: %w", err)
	}

	path := strings.TrimSpace(flags.configPath)
	if path == "" {
		return config.DefaultConfig(), wd, nil
	}

	cfg, err := config.ParseConfig(path)
	if err != nil {
		return config.Config{}, "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return config.Config{}, "", fmt.Errorf("resolve config path: %w", err)
	}
	return *cfg, filepath.Dir(abs), nil
}

func applyFlagOverrides(cmd *cobra.Command, flags *rootFlags, cfg *config.Config) {
	if flags.style != "" {
		cfg.Style = flags.style
	}
	if flags.paletteFile != "" {
		cfg.PaletteFile = flags.paletteFile
	}
	if flags.language != "" {
		cfg.Language = flags.language
	}
	if cmd.Flags().Changed("nightly") {
		nightly := flags.nightly
		cfg.Nightly = &nightly
	}
}
