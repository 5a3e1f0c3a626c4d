package config

import (
	"fmt"
	"regexp"

	pferrors "github.com/pageforge/pageforge/internal/errors"
	"github.com/pageforge/pageforge/internal/framework"
)

const maxPageNameLength = 100

var containerWidthPattern = regexp.MustCompile(`^\d+(px|%|rem|em)$`)

// Validate checks a configuration against the page schema. Returns nil when
// the configuration is valid, else a *errors.ValidationError carrying every
// field violation found.
func Validate(cfg *PageConfiguration) error {
	v := newPageValidator(cfg)
	return v.validate()
}

// pageValidator coordinates validation across all configuration domains and
// collects field errors instead of stopping at the first.
type pageValidator struct {
	cfg    *PageConfiguration
	fields []pferrors.FieldError
}

func newPageValidator(cfg *PageConfiguration) *pageValidator {
	return &pageValidator{cfg: cfg}
}

func (pv *pageValidator) validate() error {
	if pv.cfg == nil {
		return pferrors.NewValidationError(pferrors.FieldError{
			Path:    "config",
			Message: "configuration must not be nil",
			Code:    "required",
		})
	}

	pv.validateSettings()
	pv.validateResources()
	pv.validateLayout()
	pv.validateComponents()

	if len(pv.fields) > 0 {
		return pferrors.NewValidationError(pv.fields...)
	}
	return nil
}

func (pv *pageValidator) addError(path, message, code string) {
	pv.fields = append(pv.fields, pferrors.FieldError{Path: path, Message: message, Code: code})
}

func (pv *pageValidator) validateSettings() {
	s := pv.cfg.PageSettings

	if s.Name == "" {
		pv.addError("pageSettings.pageName", "page name must not be empty", "required")
	} else if len(s.Name) > maxPageNameLength {
		pv.addError("pageSettings.pageName",
			fmt.Sprintf("page name exceeds %d characters", maxPageNameLength), "too-long")
	}

	if s.Title == "" {
		pv.addError("pageSettings.title", "page title must not be empty", "required")
	}

	if NormalizePageType(string(s.Type)) == "" {
		pv.addError("pageSettings.pageType",
			fmt.Sprintf("unsupported page type: %s (allowed: landing|form|preference|unsubscribe|custom)", s.Type),
			"invalid-value")
	}
}

func (pv *pageValidator) validateResources() {
	fw := pv.cfg.CodeResources.Style.Framework
	if framework.Normalize(string(fw)) == "" {
		pv.addError("codeResources.style.framework",
			fmt.Sprintf("unsupported framework: %s (allowed: bootstrap|tailwind|vanilla)", fw),
			"invalid-value")
	}
}

func (pv *pageValidator) validateLayout() {
	l := pv.cfg.Layout

	if NormalizeLayoutStructure(string(l.Structure)) == "" {
		pv.addError("layout.structure",
			fmt.Sprintf("unsupported layout structure: %s (allowed: single-column|two-column|grid|custom)", l.Structure),
			"invalid-value")
	}

	if l.ContainerWidth != "" && l.ContainerWidth != "fluid" && !containerWidthPattern.MatchString(l.ContainerWidth) {
		pv.addError("layout.containerWidth",
			fmt.Sprintf("invalid container width: %s (expected a CSS length like 1200px or \"fluid\")", l.ContainerWidth),
			"invalid-format")
	}
}

func (pv *pageValidator) validateComponents() {
	seen := make(map[string]bool, len(pv.cfg.Components))

	for i, comp := range pv.cfg.Components {
		path := fmt.Sprintf("components[%d]", i)

		if comp.ID == "" {
			pv.addError(path+".id", "component id must not be empty", "required")
		} else if seen[comp.ID] {
			pv.addError(path+".id", fmt.Sprintf("duplicate component id: %s", comp.ID), "duplicate")
		} else {
			seen[comp.ID] = true
		}

		if NormalizeComponentType(string(comp.Type)) == "" {
			pv.addError(path+".type",
				fmt.Sprintf("unsupported component type: %s (allowed: header|hero|text|image|button|form|footer)", comp.Type),
				"invalid-value")
		}

		if comp.Position < 0 {
			pv.addError(path+".position",
				fmt.Sprintf("position must not be negative: %d", comp.Position), "negative")
		}
	}
}
