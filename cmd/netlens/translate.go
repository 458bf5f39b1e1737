package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/netlens/internal/translations"
	netlenserrors "github.com/alexisbeaulieu97/netlens/pkg/errors"
)

type translateOptions struct {
	adapter string
	all     bool
	width   int
}

var languageColumnStyle = lipgloss.NewStyle().Bold(true).Width(4)

func newTranslateCmd(app *appContext) *cobra.Command {
	opts := &translateOptions{}

	cmd := &cobra.Command{
		Use:   "translate <message-id>",
		Short: "Print a localized interface string",
		Long: `Print a localized interface string in the selected language.

Message ids are snake_case, e.g. custom_style or unsupported_link_type. With
--adapter the unsupported link type notice is followed by the adapter name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.adapter, "adapter", "", "Adapter name appended to unsupported_link_type")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Print the string in every language")
	cmd.Flags().IntVar(&opts.width, "width", 72, "Wrap --all output at this many columns")

	return cmd
}

func runTranslate(cmd *cobra.Command, app *appContext, name string, opts *translateOptions) error {
	id, err := resolveMessageID(name)
	if err != nil {
		return newCommandError("translate", fmt.Sprintf("looking up message %q", name),
			netlenserrors.NewValidationError("message-id", err.Error(), err),
			fmt.Sprintf("Did you mean %s? Known messages: %s", closest(name, messageNames()), strings.Join(messageNames(), ", ")))
	}

	render := func(lang translations.Language) string {
		if id == translations.UnsupportedLinkTypeNotice && opts.adapter != "" {
			return translations.UnsupportedLinkType(lang, opts.adapter)
		}
		return translations.Lookup(id, lang)
	}

	app.log.WithFields(map[string]any{"message": id.String()}).Debug("translating")

	out := cmd.OutOrStdout()
	if !opts.all {
		_, err := fmt.Fprintln(out, render(app.language))
		return err
	}
	textWidth := opts.width - languageColumnStyle.GetWidth()
	for _, lang := range translations.Languages() {
		text := render(lang)
		if textWidth > 0 {
			text = wrap.String(wordwrap.String(text, textWidth), textWidth)
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, languageColumnStyle.Render(lang.String()), text)
		if _, err := fmt.Fprintln(out, row); err != nil {
			return err
		}
	}
	return nil
}

// resolveMessageID accepts an exact id or an unambiguous fuzzy fragment
// such as "thumb".
func resolveMessageID(name string) (translations.MessageID, error) {
	id, err := translations.ParseMessageID(name)
	if err == nil {
		return id, nil
	}
	if match, ok := uniqueMatch(name, messageNames()); ok {
		return translations.ParseMessageID(match)
	}
	return id, err
}
