package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath  string
	style       string
	paletteFile string
	nightly     bool
	language    string
	verbose     bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{}

	cmd := &cobra.Command{
		Use:           "netlens",
		Short:         "Netlens previews button appearances for every style and language",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd, flags)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, app, defaultPreviewLabel)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Path to a netlens.yaml configuration file")
	pf.StringVarP(&flags.style, "style", "s", "", "Style to use: night, day, deep_sea, mon_amour or custom")
	pf.StringVar(&flags.paletteFile, "palette", "", "Palette file for the custom style")
	pf.BoolVar(&flags.nightly, "nightly", false, "Force the nightly palette variant on or off")
	pf.StringVarP(&flags.language, "language", "l", "", "Interface language as a BCP 47 tag, e.g. it or pt-BR")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newPreviewCmd(app))
	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newTranslateCmd(app))
	cmd.AddCommand(newPaletteCmd(app))
	cmd.AddCommand(newCompareCmd(app))
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
