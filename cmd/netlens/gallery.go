package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/netlens/internal/styles"
	"github.com/alexisbeaulieu97/netlens/internal/tui/gallery"
)

func newGalleryCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "gallery",
		Short: "Browse button variants interactively",
		Long: `Browse every button variant interactively. The variant under the cursor is
shown hovered. When stdout is not a terminal the static preview is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				app.log.Warn("stdout is not a terminal, printing preview")
				return runPreview(cmd, app, defaultPreviewLabel)
			}

			model := gallery.NewModel(gallery.Options{
				Theme:    styles.CurrentTheme(),
				Language: app.language,
				Manager:  styles.DefaultThemeManager(),
				Logger:   app.log,
			})
			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(out),
			)
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run gallery: %w", err)
			}
			return nil
		},
	}
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
