package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateWithDiagnostics_NeverErrorsOnInvalidConfig(t *testing.T) {
	diag := ValidateWithDiagnostics(&PageConfiguration{})
	require.False(t, diag.Valid)
	require.NotEmpty(t, diag.Errors)
}

func TestValidateWithDiagnostics_DuplicatePositionsWarnButStayValid(t *testing.T) {
	cfg := GenerateDefault()
	cfg.Components = []ComponentInstance{
		{ID: "a", Type: ComponentHero, Position: 1},
		{ID: "b", Type: ComponentText, Position: 1},
	}

	diag := ValidateWithDiagnostics(cfg)
	require.True(t, diag.Valid)
	require.Empty(t, diag.Errors)

	found := false
	for _, w := range diag.Warnings {
		if w.Code == WarnComponents {
			found = true
			require.Contains(t, w.Path, "components")
			require.Contains(t, w.Message, "position 1")
		}
	}
	require.True(t, found, "expected a components warning for the shared position")
}

func TestValidateWithDiagnostics_ExternalRefThresholds(t *testing.T) {
	cfg := GenerateDefault()
	cfg.CodeResources.Style.ExternalRefs = []string{"a.css", "b.css", "c.css", "d.css"}
	cfg.CodeResources.Script.ExternalRefs = []string{"1.js", "2.js", "3.js", "4.js", "5.js", "6.js"}

	diag := ValidateWithDiagnostics(cfg)
	require.True(t, diag.Valid)

	codes := map[string]int{}
	for _, w := range diag.Warnings {
		codes[w.Code]++
	}
	require.Equal(t, 1, codes[WarnStyleRefs])
	require.Equal(t, 1, codes[WarnScriptRefs])
}

func TestValidateWithDiagnostics_DisabledOptionWarnings(t *testing.T) {
	cfg := GenerateDefault()
	cfg.AdvancedOptions.Accessibility = false
	cfg.AdvancedOptions.SEO = false

	diag := ValidateWithDiagnostics(cfg)
	require.True(t, diag.Valid)

	codes := map[string]bool{}
	for _, w := range diag.Warnings {
		codes[w.Code] = true
	}
	require.True(t, codes[WarnAccessibility])
	require.True(t, codes[WarnSEO])
}

func TestValidateWithDiagnostics_EmptyFrameworkWarnsAboutDefault(t *testing.T) {
	cfg := GenerateDefault()
	cfg.CodeResources.Style.Framework = ""

	diag := ValidateWithDiagnostics(cfg)
	require.True(t, diag.Valid, "empty framework is valid; it means vanilla")

	found := false
	for _, w := range diag.Warnings {
		if w.Code == WarnFramework {
			found = true
			require.Equal(t, "codeResources.style.framework", w.Path)
			require.Contains(t, w.Message, "vanilla")
		}
	}
	require.True(t, found, "expected a framework-default warning")
}

func TestValidateWithDiagnostics_DefaultConfigHasNoWarnings(t *testing.T) {
	diag := ValidateWithDiagnostics(GenerateDefault())
	require.True(t, diag.Valid)
	require.Empty(t, diag.Errors)
	require.Empty(t, diag.Warnings)
}

func TestValidateWithDiagnostics_NilConfig(t *testing.T) {
	diag := ValidateWithDiagnostics(nil)
	require.False(t, diag.Valid)
	require.NotEmpty(t, diag.Errors)
}
