package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge/internal/templates"
)

func TestRenderTemplates(t *testing.T) {
	engine := templates.NewEngine(nil)
	list := engine.Templates()
	require.NotEmpty(t, list)

	t.Run("text lists every template with id and page type", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderTemplates(&buf, list, "text"))

		out := buf.String()
		require.Contains(t, out, "bootstrap-landing")
		require.Contains(t, out, "tailwind-form")
		require.Contains(t, out, "1) ")
	})

	t.Run("json round-trips the catalog", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderTemplates(&buf, list, "json"))

		var decoded []templates.PageTemplate
		require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
		require.Len(t, decoded, len(list))
	})

	t.Run("empty catalog says so", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderTemplates(&buf, nil, "text"))
		require.Equal(t, "No templates registered\n", buf.String())
	})
}
