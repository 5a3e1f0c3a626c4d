package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge/internal/components"
)

func TestRenderComponents(t *testing.T) {
	lib := components.NewStandardLibrary()
	list := lib.List()
	require.NotEmpty(t, list)

	t.Run("text lists ids and prop names", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderComponents(&buf, list, "text"))

		out := buf.String()
		require.Contains(t, out, "hero")
		require.Contains(t, out, "props:")
	})

	t.Run("empty library says so", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderComponents(&buf, nil, "text"))
		require.Equal(t, "No components registered\n", buf.String())
	})
}

func TestComponentsCmdRejectsUnknownCategory(t *testing.T) {
	cmd := &ComponentsCmd{Category: "no-such-category", Format: "text"}
	err := cmd.Run(&Global{}, &CLI{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no-such-category")
	require.Contains(t, err.Error(), "available:")
}
