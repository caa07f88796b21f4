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
	err := NewParseError("demo.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "demo.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "demo.yaml:7")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("demo.yaml", 0, stdErrors.New("bad document"))
	require.Equal(t, "parse error: demo.yaml: bad document", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("page_size", "must be at least 1", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "page_size", validationErr.Field)
	require.Contains(t, err.Error(), "page_size")
}

func TestValidationErrorWithoutField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("", "configuration is nil", nil)
	require.Equal(t, "validation error: configuration is nil", err.Error())
}
