package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge/internal/framework"
)

func TestApplyDefaults_FillsMissingFields(t *testing.T) {
	cfg := &PageConfiguration{
		PageSettings: PageSettings{Name: "Café Münchner Sale"},
	}
	ApplyDefaults(cfg)

	require.Equal(t, PageLanding, cfg.PageSettings.Type)
	require.Equal(t, framework.Vanilla, cfg.CodeResources.Style.Framework)
	require.Equal(t, StructureSingleColumn, cfg.Layout.Structure)
	require.Equal(t, "1200px", cfg.Layout.ContainerWidth)
	require.Equal(t, "Café Münchner Sale", cfg.PageSettings.Title)
	require.Equal(t, "cafe-munchner-sale", cfg.PageSettings.URL)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &PageConfiguration{
		PageSettings: PageSettings{
			Name:  "Page",
			URL:   "custom/path",
			Type:  PageForm,
			Title: "Explicit Title",
		},
		CodeResources: CodeResources{Style: StyleResources{Framework: framework.Tailwind}},
		Layout:        Layout{Structure: StructureGrid, ContainerWidth: "fluid"},
	}
	ApplyDefaults(cfg)

	require.Equal(t, "custom/path", cfg.PageSettings.URL)
	require.Equal(t, PageForm, cfg.PageSettings.Type)
	require.Equal(t, "Explicit Title", cfg.PageSettings.Title)
	require.Equal(t, framework.Tailwind, cfg.CodeResources.Style.Framework)
	require.Equal(t, StructureGrid, cfg.Layout.Structure)
	require.Equal(t, "fluid", cfg.Layout.ContainerWidth)
}

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Spring Sale 2026":    "spring-sale-2026",
		"  Trim   me  ":       "trim-me",
		"Déjà Vu!":            "deja-vu",
		"UPPER_case.mixed":    "upper-case-mixed",
		"日本語 launch page":     "launch-page",
		"---":                 "",
		"multi---hyphen--run": "multi-hyphen-run",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Errorf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestGenerateDefault_SelfValid(t *testing.T) {
	for range 3 {
		cfg := GenerateDefault()
		require.NoError(t, Validate(cfg))

		diag := ValidateWithDiagnostics(cfg)
		require.True(t, diag.Valid)
	}
}

func TestConfigurationHelpers(t *testing.T) {
	cfg := GenerateDefault()
	require.False(t, cfg.ScriptingEnabled())
	require.Empty(t, cfg.FormComponents())
	require.True(t, cfg.HasComponent(ComponentHero))
	require.False(t, cfg.HasComponent(ComponentForm))

	cfg.AdvancedOptions.Scripting = true
	require.True(t, cfg.ScriptingEnabled())

	cfg.AdvancedOptions.Scripting = false
	cfg.CodeResources.Script.ScriptIntegration = true
	require.True(t, cfg.ScriptingEnabled())

	cfg.Components = append(cfg.Components, ComponentInstance{ID: "f", Type: ComponentForm, Position: 9})
	require.Len(t, cfg.FormComponents(), 1)
}
