// Package config defines the declarative page configuration model: page
// settings, code resources, advanced options, layout and placed component
// instances. It owns parsing from JSON/YAML, schema validation, non-fatal
// diagnostics and default generation.
package config

import (
	"strings"

	"github.com/pageforge/pageforge/internal/framework"
)

// PageConfiguration is the full declarative description of one page to
// generate. Configurations are supplied per generation pass and treated as
// immutable once generation starts.
type PageConfiguration struct {
	PageSettings    PageSettings        `json:"pageSettings" yaml:"pageSettings"`
	CodeResources   CodeResources       `json:"codeResources" yaml:"codeResources"`
	AdvancedOptions AdvancedOptions     `json:"advancedOptions" yaml:"advancedOptions"`
	Layout          Layout              `json:"layout" yaml:"layout"`
	Components      []ComponentInstance `json:"components,omitempty" yaml:"components,omitempty"`
}

// PageSettings carries page identity and document metadata.
type PageSettings struct {
	Name        string   `json:"pageName" yaml:"pageName"`
	URL         string   `json:"url,omitempty" yaml:"url,omitempty"`
	Type        PageType `json:"pageType" yaml:"pageType"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
}

// CodeResources groups the style and script inputs a page carries beyond its
// components.
type CodeResources struct {
	Style  StyleResources  `json:"style" yaml:"style"`
	Script ScriptResources `json:"script" yaml:"script"`
}

// StyleResources selects the framework backend and optional custom style text
// plus external stylesheet references emitted after the generated style.
type StyleResources struct {
	Framework    framework.Framework `json:"framework" yaml:"framework"`
	CustomStyle  string              `json:"customStyle,omitempty" yaml:"customStyle,omitempty"`
	ExternalRefs []string            `json:"externalStyleRefs,omitempty" yaml:"externalStyleRefs,omitempty"`
}

// ScriptResources carries custom behavior script, external script references
// and the platform script integration flag.
type ScriptResources struct {
	CustomScript      string   `json:"customScript,omitempty" yaml:"customScript,omitempty"`
	ExternalRefs      []string `json:"externalScriptRefs,omitempty" yaml:"externalScriptRefs,omitempty"`
	ScriptIntegration bool     `json:"scriptIntegration,omitempty" yaml:"scriptIntegration,omitempty"`
}

// AdvancedOptions toggles cross-cutting generation behavior.
type AdvancedOptions struct {
	Responsive    bool     `json:"responsive" yaml:"responsive"`
	MobileFirst   bool     `json:"mobileFirst" yaml:"mobileFirst"`
	Accessibility bool     `json:"accessibility" yaml:"accessibility"`
	SEO           bool     `json:"seoOptimized" yaml:"seoOptimized"`
	Scripting     bool     `json:"scriptingEnabled" yaml:"scriptingEnabled"`
	DataSources   []string `json:"dataSourceIntegration,omitempty" yaml:"dataSourceIntegration,omitempty"`
}

// Layout describes the page scaffold around the component list.
type Layout struct {
	Structure      LayoutStructure `json:"structure" yaml:"structure"`
	Header         bool            `json:"header" yaml:"header"`
	Footer         bool            `json:"footer" yaml:"footer"`
	Sidebar        bool            `json:"sidebar,omitempty" yaml:"sidebar,omitempty"`
	ContainerWidth string          `json:"containerWidth,omitempty" yaml:"containerWidth,omitempty"`
}

// ComponentInstance is one placed, parameterized use of a registered
// component. IDs are unique per page; positions order components within the
// main region (duplicates allowed but warned).
type ComponentInstance struct {
	ID       string            `json:"id" yaml:"id"`
	Type     ComponentType     `json:"type" yaml:"type"`
	Position int               `json:"position" yaml:"position"`
	Props    map[string]any    `json:"props,omitempty" yaml:"props,omitempty"`
	Content  string            `json:"content,omitempty" yaml:"content,omitempty"`
	Script   string            `json:"script,omitempty" yaml:"script,omitempty"`
	Styling  *ComponentStyling `json:"styling,omitempty" yaml:"styling,omitempty"`
}

// ComponentStyling holds the per-instance custom style plus per-tier
// responsive overrides scoped to the instance id.
type ComponentStyling struct {
	CustomStyle string `json:"customStyle,omitempty" yaml:"customStyle,omitempty"`
	Mobile      string `json:"mobile,omitempty" yaml:"mobile,omitempty"`
	Tablet      string `json:"tablet,omitempty" yaml:"tablet,omitempty"`
	Desktop     string `json:"desktop,omitempty" yaml:"desktop,omitempty"`
}

// PageType classifies the page being generated.
type PageType string

const (
	PageLanding     PageType = "landing"
	PageForm        PageType = "form"
	PagePreference  PageType = "preference"
	PageUnsubscribe PageType = "unsubscribe"
	PageCustom      PageType = "custom"
)

// PageTypes lists every supported page type in stable order.
func PageTypes() []PageType {
	return []PageType{PageLanding, PageForm, PagePreference, PageUnsubscribe, PageCustom}
}

// NormalizePageType maps a raw string to a PageType, returning "" when
// unsupported.
func NormalizePageType(raw string) PageType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "landing":
		return PageLanding
	case "form":
		return PageForm
	case "preference", "preferences":
		return PagePreference
	case "unsubscribe":
		return PageUnsubscribe
	case "custom":
		return PageCustom
	}
	return ""
}

// IsValid reports whether t names a supported page type.
func (t PageType) IsValid() bool {
	switch t {
	case PageLanding, PageForm, PagePreference, PageUnsubscribe, PageCustom:
		return true
	}
	return false
}

// ComponentType is the closed set of component kinds a page may place.
type ComponentType string

const (
	ComponentHeader ComponentType = "header"
	ComponentHero   ComponentType = "hero"
	ComponentText   ComponentType = "text"
	ComponentImage  ComponentType = "image"
	ComponentButton ComponentType = "button"
	ComponentForm   ComponentType = "form"
	ComponentFooter ComponentType = "footer"
)

// ComponentTypes lists every supported component type in stable order.
func ComponentTypes() []ComponentType {
	return []ComponentType{
		ComponentHeader, ComponentHero, ComponentText, ComponentImage,
		ComponentButton, ComponentForm, ComponentFooter,
	}
}

// NormalizeComponentType maps a raw string to a ComponentType, returning ""
// when unsupported.
func NormalizeComponentType(raw string) ComponentType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "header":
		return ComponentHeader
	case "hero":
		return ComponentHero
	case "text":
		return ComponentText
	case "image":
		return ComponentImage
	case "button":
		return ComponentButton
	case "form":
		return ComponentForm
	case "footer":
		return ComponentFooter
	}
	return ""
}

// IsValid reports whether t names a supported component type.
func (t ComponentType) IsValid() bool {
	switch t {
	case ComponentHeader, ComponentHero, ComponentText, ComponentImage,
		ComponentButton, ComponentForm, ComponentFooter:
		return true
	}
	return false
}

// LayoutStructure enumerates the supported page scaffolds.
type LayoutStructure string

const (
	StructureSingleColumn LayoutStructure = "single-column"
	StructureTwoColumn    LayoutStructure = "two-column"
	StructureGrid         LayoutStructure = "grid"
	StructureCustom       LayoutStructure = "custom"
)

// NormalizeLayoutStructure maps a raw string to a LayoutStructure, returning
// "" when unsupported.
func NormalizeLayoutStructure(raw string) LayoutStructure {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "single-column", "single":
		return StructureSingleColumn
	case "two-column", "two":
		return StructureTwoColumn
	case "grid":
		return StructureGrid
	case "custom":
		return StructureCustom
	}
	return ""
}

// IsValid reports whether s names a supported layout structure.
func (s LayoutStructure) IsValid() bool {
	switch s {
	case StructureSingleColumn, StructureTwoColumn, StructureGrid, StructureCustom:
		return true
	}
	return false
}

// ScriptingEnabled reports whether platform script generation applies to this
// configuration. Either the advanced option or the resource-level integration
// flag enables it.
func (c *PageConfiguration) ScriptingEnabled() bool {
	return c.AdvancedOptions.Scripting || c.CodeResources.Script.ScriptIntegration
}

// FormComponents returns the form instances placed on the page.
func (c *PageConfiguration) FormComponents() []ComponentInstance {
	var forms []ComponentInstance
	for _, comp := range c.Components {
		if comp.Type == ComponentForm {
			forms = append(forms, comp)
		}
	}
	return forms
}

// HasComponent reports whether any placed component has the given type.
func (c *PageConfiguration) HasComponent(t ComponentType) bool {
	for _, comp := range c.Components {
		if comp.Type == t {
			return true
		}
	}
	return false
}
