package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/netlens/internal/styles"
	netlenserrors "github.com/alexisbeaulieu97/netlens/pkg/errors"
)

func TestCompareShowsChangedAppearances(t *testing.T) {
	stdout, _, err := executeCommand(t, "compare", "day", "--style", "night")
	require.NoError(t, err)

	assert.Contains(t, stdout, "--- night (nightly)\n+++ day\n")
	assert.Contains(t, stdout, "-standard/active: ")
	assert.Contains(t, stdout, "+standard/active: ")
}

func TestCompareIdenticalThemes(t *testing.T) {
	stdout, _, err := executeCommand(t, "compare", "mon_amour", "--style", "mon_amour")
	require.NoError(t, err)
	assert.Equal(t, "no differences\n", stdout)
}

func TestCompareSummary(t *testing.T) {
	stdout, _, err := executeCommand(t, "compare", "night:light", "--style", "night", "--summary")
	require.NoError(t, err)
	assert.Contains(t, stdout, "night (nightly) -> night: ")
	assert.Contains(t, stdout, "removed")
}

func TestCompareRejectsUnknownStyle(t *testing.T) {
	_, _, err := executeCommand(t, "compare", "solarized")
	require.Error(t, err)
	assert.True(t, netlenserrors.IsUserError(err))
}

func TestParseThemeArg(t *testing.T) {
	cases := []struct {
		arg     string
		want    styles.ThemeState
		wantErr bool
	}{
		{arg: "day", want: styles.NewThemeState(styles.StyleDay)},
		{arg: "deep-sea:light", want: styles.ThemeState{Style: styles.StyleDeepSea}},
		{arg: "day:nightly", want: styles.ThemeState{Style: styles.StyleDay, Nightly: true}},
		{arg: "day:dusk", wantErr: true},
		{arg: "custom", wantErr: true},
		{arg: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.arg, func(t *testing.T) {
			got, err := parseThemeArg(tc.arg)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
