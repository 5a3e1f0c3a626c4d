// Package templates implements the page template registry and full document
// assembly. Templates embed a complete page configuration per (page type,
// framework) pair; the engine renders any configuration into a standalone
// HTML document through the shared component library.
package templates

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pageforge/pageforge/internal/components"
	"github.com/pageforge/pageforge/internal/config"
	"github.com/pageforge/pageforge/internal/framework"
	_ "github.com/pageforge/pageforge/internal/framework/backends/bootstrap"
	_ "github.com/pageforge/pageforge/internal/framework/backends/tailwind"
	_ "github.com/pageforge/pageforge/internal/framework/backends/vanilla"
)

// PageTemplate is a reusable page blueprint with an embedded configuration.
// Template ids follow the <framework>-<pageType> convention.
type PageTemplate struct {
	ID          string                   `json:"id" yaml:"id"`
	Name        string                   `json:"name" yaml:"name"`
	Description string                   `json:"description,omitempty" yaml:"description,omitempty"`
	Category    string                   `json:"category,omitempty" yaml:"category,omitempty"`
	PageType    config.PageType          `json:"pageType" yaml:"pageType"`
	Framework   framework.Framework      `json:"framework" yaml:"framework"`
	Config      config.PageConfiguration `json:"config" yaml:"config"`
	Tags        []string                 `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Engine holds the template registry and the component library used to render
// page documents. Registration is expected at start-up; later registration is
// safe under the lock.
type Engine struct {
	mu        sync.RWMutex
	templates map[string]PageTemplate
	library   *components.Library
}

// NewEngine returns an engine seeded with the standard template catalog: one
// template per (page type, framework) pair.
func NewEngine(lib *components.Library) *Engine {
	if lib == nil {
		lib = components.NewStandardLibrary()
	}
	e := &Engine{
		templates: make(map[string]PageTemplate),
		library:   lib,
	}
	for _, t := range seedTemplates() {
		e.RegisterTemplate(t)
	}
	return e
}

// Library exposes the component library backing this engine.
func (e *Engine) Library() *components.Library { return e.library }

// RegisterTemplate upserts a template by id; templates without an id are
// ignored.
func (e *Engine) RegisterTemplate(t PageTemplate) {
	if t.ID == "" {
		return
	}
	e.mu.Lock()
	e.templates[t.ID] = t
	e.mu.Unlock()
}

// Template retrieves a template by id.
func (e *Engine) Template(id string) (PageTemplate, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	t, ok := e.templates[id]
	return t, ok
}

// Templates returns every registered template sorted by id.
func (e *Engine) Templates() []PageTemplate {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]PageTemplate, 0, len(e.templates))
	for _, t := range e.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TemplatesFor returns the templates targeting a page type, sorted by id.
func (e *Engine) TemplatesFor(pt config.PageType) []PageTemplate {
	var out []PageTemplate
	for _, t := range e.Templates() {
		if t.PageType == pt {
			out = append(out, t)
		}
	}
	return out
}

var titleCaser = cases.Title(language.English)

// seedTemplates builds the standard catalog: every framework crossed with
// every page type, ids like "bootstrap-landing".
func seedTemplates() []PageTemplate {
	var out []PageTemplate
	for _, fw := range framework.All() {
		for _, pt := range config.PageTypes() {
			out = append(out, buildSeedTemplate(fw, pt))
		}
	}
	return out
}

func buildSeedTemplate(fw framework.Framework, pt config.PageType) PageTemplate {
	cfg := baseConfigFor(pt)
	cfg.CodeResources.Style.Framework = fw
	config.ApplyDefaults(&cfg)

	name := fmt.Sprintf("%s %s", titleCaser.String(string(fw)), titleCaser.String(string(pt)))
	return PageTemplate{
		ID:          fmt.Sprintf("%s-%s", fw, pt),
		Name:        name,
		Description: fmt.Sprintf("%s page built on the %s framework", titleCaser.String(string(pt)), fw),
		Category:    string(pt),
		PageType:    pt,
		Framework:   fw,
		Config:      cfg,
		Tags:        []string{string(fw), string(pt)},
	}
}

func baseConfigFor(pt config.PageType) config.PageConfiguration {
	switch pt {
	case config.PageForm:
		return config.PageConfiguration{
			PageSettings: config.PageSettings{
				Name:        "Signup Page",
				Type:        pt,
				Title:       "Sign Up",
				Description: "Collect new subscriber signups",
				Keywords:    []string{"signup", "form"},
			},
			AdvancedOptions: config.AdvancedOptions{
				Responsive: true, Accessibility: true, SEO: true, Scripting: true,
			},
			Layout: config.Layout{Structure: config.StructureSingleColumn, Header: true, Footer: true},
			Components: []config.ComponentInstance{
				{ID: "hero-1", Type: config.ComponentHero, Position: 1, Props: map[string]any{
					"heading": "Join Our List", "subheading": "Get updates in your inbox",
				}},
				{ID: "signup-1", Type: config.ComponentForm, Position: 2, Props: map[string]any{
					"title": "Sign Up",
					"fields": []any{
						map[string]any{"name": "email", "type": "email", "label": "Email Address", "required": true},
						map[string]any{"name": "firstName", "type": "text", "label": "First Name"},
					},
				}},
			},
		}
	case config.PagePreference:
		return config.PageConfiguration{
			PageSettings: config.PageSettings{
				Name:        "Preference Center",
				Type:        pt,
				Title:       "Email Preferences",
				Description: "Manage subscription preferences",
				Keywords:    []string{"preferences", "subscription"},
			},
			AdvancedOptions: config.AdvancedOptions{
				Responsive: true, Accessibility: true, SEO: true, Scripting: true,
				DataSources: []string{"Subscribers"},
			},
			Layout: config.Layout{Structure: config.StructureSingleColumn, Header: true, Footer: true},
			Components: []config.ComponentInstance{
				{ID: "intro-1", Type: config.ComponentText, Position: 1,
					Content: "Choose which emails you would like to receive."},
				{ID: "prefs-1", Type: config.ComponentForm, Position: 2, Props: map[string]any{
					"title": "Your Preferences", "buttonLabel": "Save Preferences",
					"fields": []any{
						map[string]any{"name": "email", "type": "email", "label": "Email Address", "required": true},
						map[string]any{"name": "frequency", "type": "text", "label": "Email Frequency"},
					},
				}},
			},
		}
	case config.PageUnsubscribe:
		return config.PageConfiguration{
			PageSettings: config.PageSettings{
				Name:        "Unsubscribe Page",
				Type:        pt,
				Title:       "Unsubscribe",
				Description: "Confirm unsubscription",
			},
			AdvancedOptions: config.AdvancedOptions{
				Responsive: true, Accessibility: true, Scripting: true,
			},
			Layout: config.Layout{Structure: config.StructureSingleColumn, Footer: true},
			Components: []config.ComponentInstance{
				{ID: "confirm-1", Type: config.ComponentText, Position: 1,
					Content: "We're sorry to see you go. Confirm below to stop receiving emails."},
				{ID: "unsub-1", Type: config.ComponentForm, Position: 2, Props: map[string]any{
					"title": "Unsubscribe", "buttonLabel": "Unsubscribe",
					"fields": []any{
						map[string]any{"name": "email", "type": "email", "label": "Email Address", "required": true},
					},
				}},
			},
		}
	case config.PageCustom:
		return config.PageConfiguration{
			PageSettings: config.PageSettings{
				Name:  "Custom Page",
				Type:  pt,
				Title: "Custom Page",
			},
			AdvancedOptions: config.AdvancedOptions{Responsive: true, Accessibility: true},
			Layout:          config.Layout{Structure: config.StructureSingleColumn},
			Components: []config.ComponentInstance{
				{ID: "content-1", Type: config.ComponentText, Position: 1,
					Content: "Start from a blank canvas."},
			},
		}
	default: // landing
		return config.PageConfiguration{
			PageSettings: config.PageSettings{
				Name:        "Landing Page",
				Type:        config.PageLanding,
				Title:       "Welcome",
				Description: "Campaign landing page",
				Keywords:    []string{"landing", "campaign"},
			},
			AdvancedOptions: config.AdvancedOptions{Responsive: true, Accessibility: true, SEO: true},
			Layout:          config.Layout{Structure: config.StructureSingleColumn, Header: true, Footer: true},
			Components: []config.ComponentInstance{
				{ID: "hero-1", Type: config.ComponentHero, Position: 1, Props: map[string]any{
					"heading": "Welcome", "subheading": "Discover what's new", "ctaLabel": "Get Started",
				}},
				{ID: "content-1", Type: config.ComponentText, Position: 2,
					Content: "Tell your visitors what makes this campaign worth their time."},
				{ID: "cta-1", Type: config.ComponentButton, Position: 3, Props: map[string]any{
					"label": "Get Started", "href": "#signup",
				}},
			},
		}
	}
}
