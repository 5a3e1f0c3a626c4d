package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseError_WrapsCause(t *testing.T) {
	cause := errors.New("unexpected end of input")
	err := NewParseError("json", "decode failed", cause)

	require.ErrorContains(t, err, "json")
	require.ErrorContains(t, err, "unexpected end of input")
	require.ErrorIs(t, err, cause)
}

func TestParseError_DetectedThroughWrapping(t *testing.T) {
	err := fmt.Errorf("loading page: %w", NewParseError("yaml", "bad indent", nil))

	require.True(t, IsParseError(err))
	require.False(t, IsValidationError(err))
}

func TestValidationError_ListsEveryField(t *testing.T) {
	err := NewValidationError(
		FieldError{Path: "pageSettings.pageName", Message: "must not be empty", Code: "required"},
		FieldError{Path: "components[2].position", Message: "must not be negative", Code: "range"},
	)

	require.ErrorContains(t, err, "pageSettings.pageName")
	require.ErrorContains(t, err, "components[2].position")

	ve, ok := AsValidationError(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 2)
}

func TestLookupError_NamesKindAndID(t *testing.T) {
	err := NewLookupError("template", "does-not-exist")

	require.ErrorContains(t, err, "template")
	require.ErrorContains(t, err, "does-not-exist")
	require.True(t, IsLookupError(err))
}
