package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/netlens/internal/components"
	"github.com/alexisbeaulieu97/netlens/internal/styles"
)

func newPaletteCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "palette",
		Short: "Print the resolved palette of the selected style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.log.Debug("rendering palette")
			_, err := fmt.Fprintln(cmd.OutOrStdout(), components.PaletteCard(styles.CurrentTheme()))
			return err
		},
	}
}
