package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	netlenserrors "github.com/alexisbeaulieu97/netlens/pkg/errors"
)

// convertValidationError normalizes validator errors into netlens validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return netlenserrors.NewValidationError(field, msg, err)
	}

	return netlenserrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldName reports the field under its yaml key, e.g. "text_body".
func yamlFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}

	names := make([]string, 0, len(parts))
	for _, part := range parts {
		names = append(names, toSnake(part))
	}
	return strings.Join(names, ".")
}

func toSnake(name string) string {
	var sb strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				sb.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
