package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge/internal/history"
)

func TestRenderHistory(t *testing.T) {
	recs := []history.Record{
		{
			PageName:  "Landing Page",
			PageType:  "landing",
			Framework: "bootstrap",
			Outcome:   history.OutcomeSuccess,
			TotalSize: 2048,
			Score:     92,
			CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			PageName:  "Signup Page",
			PageType:  "form",
			Framework: "tailwind",
			Outcome:   history.OutcomeInvalid,
			CreatedAt: time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC),
		},
	}

	t.Run("text shows one line per record", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderHistory(&buf, recs, "text"))

		out := buf.String()
		require.Contains(t, out, "Landing Page")
		require.Contains(t, out, "success")
		require.Contains(t, out, "invalid")
		require.Contains(t, out, "score 92")
	})

	t.Run("empty history says so", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, renderHistory(&buf, nil, "text"))
		require.Equal(t, "No generation runs recorded\n", buf.String())
	})
}

func TestHistoryCmdRequiresStore(t *testing.T) {
	cmd := &HistoryCmd{Format: "text"}
	err := cmd.Run(&Global{}, &CLI{HistoryDB: ""})
	require.Error(t, err)
	require.Contains(t, err.Error(), "history is disabled")
}
