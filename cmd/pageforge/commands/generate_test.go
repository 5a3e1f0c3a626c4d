package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge/internal/config"
	"github.com/pageforge/pageforge/internal/history"
)

func TestGenerateCmdRun(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "page.yaml")
	require.NoError(t, config.Init(cfgPath, false))

	outDir := filepath.Join(dir, "dist")
	dbPath := filepath.Join(dir, "history.db")

	cmd := &GenerateCmd{Output: outDir}
	root := &CLI{Config: cfgPath, HistoryDB: dbPath}
	require.NoError(t, cmd.Run(&Global{}, root))

	markup, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	require.NoError(t, err)
	require.Contains(t, string(markup), "<!DOCTYPE html>")
	require.FileExists(t, filepath.Join(outDir, "generation-report.json"))

	// The run lands in the history store.
	store, err := history.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer func() {
		_ = store.Close()
	}()
	recs, err := store.List(t.Context(), 0)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, history.OutcomeSuccess, recs[0].Outcome)
	require.Equal(t, "Landing Page", recs[0].PageName)
	require.Equal(t, "landing", recs[0].PageType)
}

func TestGenerateCmdRunFromTemplate(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "dist")

	cmd := &GenerateCmd{Output: outDir, Template: "tailwind-landing", Name: "Campaign Page"}
	root := &CLI{Config: filepath.Join(dir, "missing.yaml")}
	require.NoError(t, cmd.Run(&Global{}, root))

	report, err := os.ReadFile(filepath.Join(outDir, "generation-report.json"))
	require.NoError(t, err)
	require.Contains(t, string(report), "Campaign Page")
	require.Contains(t, string(report), "tailwind")
}

func TestGenerateCmdRunRejectsUnknownTemplate(t *testing.T) {
	cmd := &GenerateCmd{Output: t.TempDir(), Template: "no-such-template"}
	err := cmd.Run(&Global{}, &CLI{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "no-such-template")
}

func TestGenerateCmdTemplateOverrides(t *testing.T) {
	t.Run("empty command produces no overrides", func(t *testing.T) {
		cmd := &GenerateCmd{}
		require.Nil(t, cmd.templateOverrides())
	})

	t.Run("flags map to configuration keys", func(t *testing.T) {
		cmd := &GenerateCmd{
			Name:        "Campaign Page",
			Framework:   "vanilla",
			MobileFirst: true,
			DataSource:  []string{"Subscribers"},
		}
		overrides := cmd.templateOverrides()

		settings, ok := overrides["pageSettings"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "Campaign Page", settings["pageName"])

		resources, ok := overrides["codeResources"].(map[string]any)
		require.True(t, ok)
		style := resources["style"].(map[string]any)
		require.Equal(t, "vanilla", style["framework"])

		advanced, ok := overrides["advancedOptions"].(map[string]any)
		require.True(t, ok)
		require.Equal(t, true, advanced["mobileFirst"])
		require.Equal(t, true, advanced["responsive"])
		require.Equal(t, true, advanced["scriptingEnabled"])
		require.Equal(t, []string{"Subscribers"}, advanced["dataSourceIntegration"])
	})
}
