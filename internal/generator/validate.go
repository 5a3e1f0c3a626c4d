package generator

import (
	"github.com/pageforge/pageforge/internal/config"
	pferrors "github.com/pageforge/pageforge/internal/errors"
)

// ResponsiveReport carries the structural findings of ValidateResponsiveConfig.
type ResponsiveReport struct {
	Errors   []pferrors.FieldError `json:"errors,omitempty"`
	Warnings []string              `json:"warnings,omitempty"`
}

// Valid is true exactly when no structural error was found.
func (r ResponsiveReport) Valid() bool { return len(r.Errors) == 0 }

// ValidateResponsiveConfig checks the responsive option combination. The main
// schema deliberately does not enforce this pairing, so callers wanting the
// mobile-first invariant must ask explicitly: mobileFirst without responsive
// is the single structural error; responsive without any per-tier component
// override is advisory only.
func ValidateResponsiveConfig(cfg *config.PageConfiguration) ResponsiveReport {
	var report ResponsiveReport
	if cfg == nil {
		report.Errors = append(report.Errors, pferrors.FieldError{
			Path:    "config",
			Message: "configuration must not be nil",
			Code:    "required",
		})
		return report
	}

	if cfg.AdvancedOptions.MobileFirst && !cfg.AdvancedOptions.Responsive {
		report.Errors = append(report.Errors, pferrors.FieldError{
			Path:    "advancedOptions.mobileFirst",
			Message: "mobileFirst requires responsive to be enabled",
			Code:    "mobile-first-requires-responsive",
		})
	}

	if cfg.AdvancedOptions.Responsive && !anyTierOverrides(cfg) {
		report.Warnings = append(report.Warnings,
			"responsive is enabled but no component declares per-tier style overrides")
	}

	return report
}

func anyTierOverrides(cfg *config.PageConfiguration) bool {
	for _, comp := range cfg.Components {
		s := comp.Styling
		if s == nil {
			continue
		}
		if s.Mobile != "" || s.Tablet != "" || s.Desktop != "" {
			return true
		}
	}
	return false
}
