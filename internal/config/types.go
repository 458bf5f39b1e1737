package config

import (
	"github.com/alexisbeaulieu97/netlens/internal/styles"
	"github.com/alexisbeaulieu97/netlens/internal/translations"
)

// Config represents the netlens appearance configuration document.
type Config struct {
	Style       string `yaml:"style" validate:"required,style_name" jsonschema:"enum=night,enum=day,enum=deep_sea,enum=mon_amour,enum=custom,description=Built-in style or custom"`
	Nightly     *bool  `yaml:"nightly,omitempty" jsonschema:"description=Force the nightly variant of the style on or off"`
	Language    string `yaml:"language,omitempty" validate:"omitempty,language_tag" jsonschema:"description=BCP 47 language tag; unsupported languages fall back to English"`
	PaletteFile string `yaml:"palette_file,omitempty" validate:"required_if=Style custom" jsonschema:"description=Palette file for the custom style; relative to this file"`
	LogLevel    string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error" jsonschema:"enum=debug,enum=info,enum=warn,enum=error"`
}

// PaletteFile is a custom style definition. Colors are "#rrggbb" or
// "#rrggbbaa".
type PaletteFile struct {
	Primary     string `yaml:"primary" validate:"required,rgba_hex" jsonschema:"pattern=^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$"`
	Secondary   string `yaml:"secondary" validate:"required,rgba_hex" jsonschema:"pattern=^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$"`
	Buttons     string `yaml:"buttons" validate:"required,rgba_hex" jsonschema:"pattern=^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$"`
	TextBody    string `yaml:"text_body" validate:"required,rgba_hex" jsonschema:"pattern=^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$"`
	TextHeaders string `yaml:"text_headers" validate:"required,rgba_hex" jsonschema:"pattern=^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$"`
	Starred     string `yaml:"starred" validate:"required,rgba_hex" jsonschema:"pattern=^#[0-9a-fA-F]{6}([0-9a-fA-F]{2})?$"`
	Nightly     bool   `yaml:"nightly,omitempty" jsonschema:"description=Use the dark gradient tint and container alphas"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() Config {
	return Config{
		Style:    styles.StyleNight.String(),
		Language: translations.Reference.Code(),
		LogLevel: "info",
	}
}

// LanguageValue resolves the configured language, falling back to the
// reference language.
func (c Config) LanguageValue() translations.Language {
	return translations.ParseLanguage(c.Language)
}
