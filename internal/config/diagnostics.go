package config

import (
	"fmt"
	"sort"

	pferrors "github.com/pageforge/pageforge/internal/errors"
)

// Warning codes emitted by ValidateWithDiagnostics.
const (
	WarnStyleRefs     = "style-refs"
	WarnScriptRefs    = "script-refs"
	WarnAccessibility = "accessibility"
	WarnSEO           = "seo"
	WarnComponents    = "components"
	WarnFramework     = "framework-default"
)

const (
	maxExternalStyleRefs  = 3
	maxExternalScriptRefs = 5
)

// Warning is a non-fatal configuration finding returned alongside successful
// validation.
type Warning struct {
	Path    string `json:"path"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Diagnostics is the full validation report: schema errors plus advisory
// warnings. Valid is true exactly when Errors is empty.
type Diagnostics struct {
	Valid    bool                  `json:"valid"`
	Errors   []pferrors.FieldError `json:"errors,omitempty"`
	Warnings []Warning             `json:"warnings,omitempty"`
}

// ValidateWithDiagnostics validates cfg and collects advisory warnings. It
// never returns an error; schema violations appear in the report instead.
func ValidateWithDiagnostics(cfg *PageConfiguration) Diagnostics {
	diag := Diagnostics{Valid: true}

	if err := Validate(cfg); err != nil {
		if verr, ok := pferrors.AsValidationError(err); ok {
			diag.Errors = verr.Fields
		} else {
			diag.Errors = []pferrors.FieldError{{Path: "config", Message: err.Error(), Code: "invalid"}}
		}
		diag.Valid = false
	}
	if cfg == nil {
		return diag
	}

	diag.Warnings = collectWarnings(cfg)
	return diag
}

func collectWarnings(cfg *PageConfiguration) []Warning {
	var warnings []Warning

	if n := len(cfg.CodeResources.Style.ExternalRefs); n > maxExternalStyleRefs {
		warnings = append(warnings, Warning{
			Path:    "codeResources.style.externalStyleRefs",
			Message: fmt.Sprintf("%d external stylesheets referenced; more than %d slows page load", n, maxExternalStyleRefs),
			Code:    WarnStyleRefs,
		})
	}

	if n := len(cfg.CodeResources.Script.ExternalRefs); n > maxExternalScriptRefs {
		warnings = append(warnings, Warning{
			Path:    "codeResources.script.externalScriptRefs",
			Message: fmt.Sprintf("%d external scripts referenced; more than %d slows page load", n, maxExternalScriptRefs),
			Code:    WarnScriptRefs,
		})
	}

	if cfg.CodeResources.Style.Framework == "" {
		warnings = append(warnings, Warning{
			Path:    "codeResources.style.framework",
			Message: "framework is not set; generation defaults to vanilla",
			Code:    WarnFramework,
		})
	}

	if !cfg.AdvancedOptions.Accessibility {
		warnings = append(warnings, Warning{
			Path:    "advancedOptions.accessibility",
			Message: "accessibility features are disabled",
			Code:    WarnAccessibility,
		})
	}

	if !cfg.AdvancedOptions.SEO {
		warnings = append(warnings, Warning{
			Path:    "advancedOptions.seoOptimized",
			Message: "SEO optimization is disabled",
			Code:    WarnSEO,
		})
	}

	warnings = append(warnings, duplicatePositionWarnings(cfg)...)
	return warnings
}

func duplicatePositionWarnings(cfg *PageConfiguration) []Warning {
	byPosition := make(map[int][]string)
	for _, comp := range cfg.Components {
		byPosition[comp.Position] = append(byPosition[comp.Position], comp.ID)
	}

	positions := make([]int, 0, len(byPosition))
	for pos, ids := range byPosition {
		if len(ids) > 1 {
			positions = append(positions, pos)
		}
	}
	sort.Ints(positions)

	warnings := make([]Warning, 0, len(positions))
	for _, pos := range positions {
		warnings = append(warnings, Warning{
			Path:    "components",
			Message: fmt.Sprintf("components %v share position %d; rendering order falls back to declaration order", byPosition[pos], pos),
			Code:    WarnComponents,
		})
	}
	return warnings
}
