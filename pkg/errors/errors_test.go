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
	err := NewParseError("ui.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "ui.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "ui.yaml:12")
}

func TestValidationErrorReportsField(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("bad tag")
	err := NewValidationError("log.max_size_mb", "must be at least 0", underlying)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "log.max_size_mb", validationErr.Field)
	require.ErrorIs(t, err, ErrValidation)
	require.ErrorIs(t, err, underlying)
}

func TestKindsAreDistinguishable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		kind error
		text string
	}{
		{"type", NewTypeError("on_click", "must be a callable"), ErrType, "type error: on_click: must be a callable"},
		{"value", NewValueError("value_range", "min value %d cannot be greater than max value %d", 5, 1), ErrValue, "value error: value_range: min value 5 cannot be greater than max value 1"},
		{"runtime", NewRuntimeError("app.Current", "application instance not found"), ErrRuntime, "runtime error: app.Current: application instance not found"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.ErrorIs(t, tc.err, tc.kind)
			require.Equal(t, tc.text, tc.err.Error())
			for _, other := range []error{ErrType, ErrValue, ErrRuntime, ErrValidation} {
				if other != tc.kind {
					require.NotErrorIs(t, tc.err, other)
				}
			}
		})
	}
}

func TestWrappedKindsSurviveFmtWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("build button: %w", NewTypeError("text", "must be of type string"))
	require.ErrorIs(t, err, ErrType)

	var typeErr *TypeError
	require.ErrorAs(t, err, &typeErr)
	require.Equal(t, "text", typeErr.Param)
}

func TestYAMLLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, YAMLLine(nil))
	require.Equal(t, 0, YAMLLine(stdErrors.New("unexpected end of input")))
	require.Equal(t, 7, YAMLLine(stdErrors.New("yaml: line 7: mapping values are not allowed in this context")))
}
