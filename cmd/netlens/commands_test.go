package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/netlens/internal/styles"
	"github.com/alexisbeaulieu97/netlens/internal/translations"
	netlenserrors "github.com/alexisbeaulieu97/netlens/pkg/errors"
)

// executeCommand runs the root command with args and restores the
// process-wide theme afterwards.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	original := styles.CurrentTheme()
	t.Cleanup(func() { styles.SetTheme(original) })

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeTestFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestPreviewListsEveryVariant(t *testing.T) {
	stdout, _, err := executeCommand(t, "preview", "--style", "day", "--label", "Go")
	require.NoError(t, err)

	assert.Contains(t, stdout, "day")
	for _, variant := range styles.AllButtonStyles() {
		assert.Contains(t, stdout, variant.String())
	}
	assert.Equal(t, styles.StyleDay, styles.CurrentTheme().Style)
}

func TestRootRunsPreview(t *testing.T) {
	stdout, _, err := executeCommand(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "night (nightly)")
	assert.Contains(t, stdout, defaultPreviewLabel)
}

func TestGalleryFallsBackToPreviewWithoutTerminal(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "gallery", "--style", "deep_sea")
	require.NoError(t, err)
	assert.Contains(t, stdout, "deep_sea (nightly)")
	assert.Contains(t, stdout, styles.Button(styles.ButtonAlert).String())
	assert.Contains(t, stderr, "not a terminal")
}

func TestNightlyFlagOverridesStyle(t *testing.T) {
	stdout, _, err := executeCommand(t, "palette", "--style", "night", "--nightly=false")
	require.NoError(t, err)
	assert.False(t, styles.CurrentTheme().IsNightly())
	assert.NotContains(t, stdout, "(nightly)")

	_, _, err = executeCommand(t, "palette", "--style", "day", "--nightly")
	require.NoError(t, err)
	assert.True(t, styles.CurrentTheme().IsNightly())
}

func TestPaletteCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "palette", "--style", "mon_amour")
	require.NoError(t, err)

	palette := styles.ResolvePalette(styles.NewThemeState(styles.StyleMonAmour))
	assert.Contains(t, stdout, "mon_amour")
	assert.Contains(t, stdout, palette.Secondary.Hex())
	assert.Contains(t, stdout, "0.20")
	assert.Contains(t, stdout, "0.45")
}

func TestConfigFileWithCustomPalette(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, dir, "ocean.yaml", `primary: "#0b1c2c"
secondary: "#3cb4c8"
buttons: "#1c3244"
text_body: "#e6f0f5"
text_headers: "#0b1c2c"
starred: "#f5c127"
nightly: true
`)
	cfgPath := writeTestFile(t, dir, "netlens.yaml", "style: custom\npalette_file: ocean.yaml\nlanguage: de\n")

	stdout, _, err := executeCommand(t, "palette", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "#3cb4c8")
	assert.Contains(t, stdout, "0.15")

	theme := styles.CurrentTheme()
	assert.Equal(t, styles.StyleCustom, theme.Style)
	require.NotNil(t, theme.Custom)
}

func TestInvalidStyleIsUserError(t *testing.T) {
	_, _, err := executeCommand(t, "preview", "--style", "solarized")
	require.Error(t, err)
	assert.True(t, netlenserrors.IsUserError(err))
	assert.Contains(t, err.Error(), "Suggestion:")
}

func TestMissingConfigIsUserError(t *testing.T) {
	_, _, err := executeCommand(t, "preview", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var parseErr *netlenserrors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestCustomStyleWithoutPaletteFails(t *testing.T) {
	_, _, err := executeCommand(t, "preview", "--style", "custom")
	require.Error(t, err)

	var validationErr *netlenserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "palette_file", validationErr.Field)
}

func TestTranslateCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "translate", "custom_style", "--language", "it")
	require.NoError(t, err)
	assert.Equal(t, translations.Lookup(translations.CustomStyle, translations.IT)+"\n", stdout)
}

func TestTranslateFallsBackForUnknownLanguage(t *testing.T) {
	stdout, stderr, err := executeCommand(t, "translate", "copy", "--language", "tlh")
	require.NoError(t, err)
	assert.Equal(t, translations.Lookup(translations.Copy, translations.EN)+"\n", stdout)
	assert.Contains(t, stderr, "no translation")
}

func TestTranslateCompositeWithAdapter(t *testing.T) {
	stdout, _, err := executeCommand(t, "translate", "unsupported_link_type", "--adapter", "eth0", "--language", "fr")
	require.NoError(t, err)
	assert.Equal(t, translations.UnsupportedLinkType(translations.FR, "eth0")+"\n", stdout)
}

func TestTranslateAllLanguages(t *testing.T) {
	stdout, _, err := executeCommand(t, "translate", "port", "--all")
	require.NoError(t, err)
	for _, lang := range translations.Languages() {
		assert.Contains(t, stdout, lang.String())
	}
}

func TestTranslateUnknownMessage(t *testing.T) {
	_, _, err := executeCommand(t, "translate", "no_such_message")
	require.Error(t, err)
	assert.True(t, netlenserrors.IsUserError(err))
	assert.Contains(t, err.Error(), "custom_style")
}

func TestTranslateAcceptsFuzzyFragment(t *testing.T) {
	stdout, _, err := executeCommand(t, "translate", "thumb", "--language", "de")
	require.NoError(t, err)
	assert.Equal(t, translations.Lookup(translations.ThumbnailMode, translations.DE)+"\n", stdout)
}

func TestTranslateSuggestsClosestMessage(t *testing.T) {
	_, _, err := executeCommand(t, "translate", "custom_stlye_x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Did you mean custom_style?")
}

func TestTranslateAllWrapsLongLines(t *testing.T) {
	stdout, _, err := executeCommand(t, "translate", "unsupported_link_type", "--all", "--width", "40")
	require.NoError(t, err)
	for _, line := range strings.Split(strings.TrimSuffix(stdout, "\n"), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40+languageColumnStyle.GetWidth(), line)
	}
}

func TestSchemaCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "schema")
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &schema))
	assert.Contains(t, schema["properties"], "palette_file")

	stdout, _, err = executeCommand(t, "schema", "--palette")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"text_headers"`)
}
