package config

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/netlens/internal/styles"
	netlenserrors "github.com/alexisbeaulieu97/netlens/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	rgbaHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}(?:[0-9a-fA-F]{2})?$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("style_name", func(fl validator.FieldLevel) bool {
			_, err := styles.ParseStyle(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("rgba_hex", func(fl validator.FieldLevel) bool {
			return rgbaHexPattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})

		// Well-formed tags pass even when no translation exists; lookups fall
		// back to the reference language.
		_ = v.RegisterValidation("language_tag", func(fl validator.FieldLevel) bool {
			tag := strings.ReplaceAll(strings.TrimSpace(fl.Field().String()), "_", "-")
			_, err := language.Parse(tag)
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return netlenserrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// ValidatePaletteFile checks that every color of a custom style is present
// and well formed.
func ValidatePaletteFile(p *PaletteFile) error {
	if p == nil {
		return netlenserrors.NewValidationError("palette", "palette is nil", nil)
	}
	if err := validatorInstance().Struct(p); err != nil {
		return convertValidationError(err)
	}
	return nil
}
