package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/netlens/internal/styles"
	"github.com/alexisbeaulieu97/netlens/pkg/diff"
	netlenserrors "github.com/alexisbeaulieu97/netlens/pkg/errors"
)

type compareOptions struct {
	summary bool
}

func newCompareCmd(app *appContext) *cobra.Command {
	opts := &compareOptions{}

	cmd := &cobra.Command{
		Use:   "compare <style>",
		Short: "Diff every resolved appearance against another style",
		Long: `Diff the resolved appearance of every variant and state under the selected
style against <style>. Append ":nightly" or ":light" to force the variant,
e.g. "netlens compare night:light".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, app, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Only print how many lines differ")

	return cmd
}

func runCompare(cmd *cobra.Command, app *appContext, target string, opts *compareOptions) error {
	other, err := parseThemeArg(target)
	if err != nil {
		return newCommandError("compare", fmt.Sprintf("parsing style %q", target),
			netlenserrors.NewValidationError("style", err.Error(), err),
			fmt.Sprintf("Did you mean %s? Styles may be followed by :nightly or :light.", closest(strings.SplitN(target, ":", 2)[0], styleNames())))
	}

	current := styles.CurrentTheme()
	before, after := styles.Describe(current), styles.Describe(other)
	app.log.WithFields(map[string]any{"against": other.String()}).Debug("comparing appearances")

	out := cmd.OutOrStdout()
	if opts.summary {
		removed, added := diff.Changed(before, after)
		_, err := fmt.Fprintf(out, "%s -> %s: %d removed, %d added\n", current, other, removed, added)
		return err
	}

	result := diff.Unified(before, after, current.String(), other.String())
	if result == "" {
		result = "no differences\n"
	}
	_, err = fmt.Fprint(out, result)
	return err
}

// parseThemeArg reads "style" or "style:nightly" / "style:light". The custom
// style needs a palette file and is not accepted here.
func parseThemeArg(arg string) (styles.ThemeState, error) {
	name, variant, hasVariant := strings.Cut(arg, ":")
	style, err := styles.ParseStyle(name)
	if err != nil {
		return styles.ThemeState{}, err
	}
	if style == styles.StyleCustom {
		return styles.ThemeState{}, fmt.Errorf("custom style cannot be compared by name")
	}

	theme := styles.NewThemeState(style)
	if !hasVariant {
		return theme, nil
	}
	switch variant {
	case "nightly":
		theme.Nightly = true
	case "light":
		theme.Nightly = false
	default:
		return styles.ThemeState{}, fmt.Errorf("unknown variant %q", variant)
	}
	return theme, nil
}
