package config

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// ConfigSchema describes netlens.yaml as a JSON Schema, for editor support.
func ConfigSchema() *jsonschema.Schema {
	return newReflector().Reflect(&Config{})
}

// PaletteSchema describes a custom palette file as a JSON Schema.
func PaletteSchema() *jsonschema.Schema {
	return newReflector().Reflect(&PaletteFile{})
}

func newReflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		FieldNameTag: "yaml",
		// Documents are flat, so inline the root instead of emitting $defs.
		DoNotReference: true,
		Namer: func(t reflect.Type) string {
			return "netlens." + t.Name()
		},
	}
}
