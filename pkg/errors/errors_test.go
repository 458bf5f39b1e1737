package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("netlens.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "netlens.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "netlens.yaml")
}

func TestValidationErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("palette.text_body", "invalid color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "palette.text_body", validationErr.Field)
	require.Contains(t, validationErr.Message, "invalid color")
	require.Equal(t, "validation error: palette.text_body: invalid color", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("palette.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: palette.yaml: no such file", err.Error())
}

func TestIsUserError(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("load custom palette: %w", NewValidationError("starred", "invalid color", nil))

	require.True(t, IsUserError(wrapped))
	require.True(t, IsUserError(NewParseError("netlens.yaml", 3, nil)))
	require.False(t, IsUserError(stdErrors.New("terminal closed")))
	require.False(t, IsUserError(nil))
}
