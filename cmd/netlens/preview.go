package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/netlens/internal/components"
	"github.com/alexisbeaulieu97/netlens/internal/styles"
)

const defaultPreviewLabel = "Netlens"

func newPreviewCmd(app *appContext) *cobra.Command {
	label := defaultPreviewLabel

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print every button variant in every interaction state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, app, label)
		},
	}

	cmd.Flags().StringVar(&label, "label", defaultPreviewLabel, "Text drawn inside every button")

	return cmd
}

func runPreview(cmd *cobra.Command, app *appContext, label string) error {
	theme := styles.CurrentTheme()
	app.log.Debug("rendering preview")
	_, err := fmt.Fprintln(cmd.OutOrStdout(), components.Preview(theme, theme.String(), label))
	return err
}
