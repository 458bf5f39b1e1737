package config

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/netlens/internal/styles"
	netlenserrors "github.com/alexisbeaulieu97/netlens/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Loader reads configuration and palette files from a filesystem.
type Loader struct {
	fs afero.Afero
}

// NewLoader returns a Loader backed by fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: afero.Afero{Fs: fs}}
}

var osLoader = NewLoader(afero.NewOsFs())

// ParseConfig loads a configuration file from disk, validates it, and returns the resulting model.
// Fields missing from the file keep their DefaultConfig values.
func ParseConfig(path string) (*Config, error) {
	return osLoader.Config(path)
}

// ParsePaletteFile loads and validates a custom style definition from disk.
func ParsePaletteFile(path string) (*PaletteFile, error) {
	return osLoader.Palette(path)
}

// Config loads, validates and returns the configuration at path.
func (l *Loader) Config(path string) (*Config, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, netlenserrors.NewParseError(path, 0, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, netlenserrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Palette loads and validates the custom style definition at path.
func (l *Loader) Palette(path string) (*PaletteFile, error) {
	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, netlenserrors.NewParseError(path, 0, err)
	}

	var palette PaletteFile
	if err := yaml.Unmarshal(data, &palette); err != nil {
		return nil, netlenserrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidatePaletteFile(&palette); err != nil {
		return nil, err
	}

	return &palette, nil
}

type colorField struct {
	name  string
	value string
	dst   *styles.Color
}

// CustomPalette decodes the hex colors of the palette file.
func (p PaletteFile) CustomPalette() (styles.CustomPalette, error) {
	var out styles.CustomPalette
	fields := []colorField{
		{"primary", p.Primary, &out.Palette.Primary},
		{"secondary", p.Secondary, &out.Palette.Secondary},
		{"buttons", p.Buttons, &out.Buttons},
		{"text_body", p.TextBody, &out.Palette.TextBody},
		{"text_headers", p.TextHeaders, &out.Palette.TextHeaders},
		{"starred", p.Starred, &out.Palette.Starred},
	}

	for _, field := range fields {
		c, err := styles.ParseHex(field.value)
		if err != nil {
			return styles.CustomPalette{}, netlenserrors.NewValidationError(field.name, "invalid color", err)
		}
		*field.dst = c
	}
	out.Nightly = p.Nightly
	return out, nil
}

// ThemeState builds the theme selected by the configuration, reading any
// palette file from disk. A relative palette_file is resolved against baseDir.
func (c Config) ThemeState(baseDir string) (styles.ThemeState, error) {
	return osLoader.ThemeState(c, baseDir)
}

// ThemeState builds the theme selected by c. A relative palette_file is
// resolved against baseDir.
func (l *Loader) ThemeState(c Config, baseDir string) (styles.ThemeState, error) {
	style, err := styles.ParseStyle(c.Style)
	if err != nil {
		return styles.ThemeState{}, netlenserrors.NewValidationError("style", err.Error(), err)
	}

	var theme styles.ThemeState
	if style == styles.StyleCustom {
		path := c.PaletteFile
		if path == "" {
			return styles.ThemeState{}, netlenserrors.NewValidationError("palette_file", "required for the custom style", nil)
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}

		file, err := l.Palette(path)
		if err != nil {
			return styles.ThemeState{}, fmt.Errorf("load custom palette: %w", err)
		}
		custom, err := file.CustomPalette()
		if err != nil {
			return styles.ThemeState{}, err
		}
		theme = styles.NewCustomThemeState(custom)
	} else {
		theme = styles.NewThemeState(style)
	}

	if c.Nightly != nil {
		theme.Nightly = *c.Nightly
	}
	return theme, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
