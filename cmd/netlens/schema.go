package main

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/netlens/internal/config"
)

func newSchemaCmd() *cobra.Command {
	var palette bool

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of netlens.yaml or of a palette file",
		Args:  cobra.NoArgs,
		// The schema never depends on the configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			var schema *jsonschema.Schema
			if palette {
				schema = config.PaletteSchema()
			} else {
				schema = config.ConfigSchema()
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(schema)
		},
	}

	cmd.Flags().BoolVarP(&palette, "palette", "p", false, "Describe a custom palette file instead")

	return cmd
}
