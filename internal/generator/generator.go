// Package generator composes the configuration schema, component library,
// template engine, responsive style tiers and platform script synthesis into
// one generation pass. A pass is a pure function of its configuration plus
// the read-mostly registries: no internal I/O, deterministic output except
// for timestamps.
package generator

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pageforge/pageforge/internal/ampscript"
	"github.com/pageforge/pageforge/internal/config"
	pferrors "github.com/pageforge/pageforge/internal/errors"
	"github.com/pageforge/pageforge/internal/framework"
	"github.com/pageforge/pageforge/internal/logfields"
	"github.com/pageforge/pageforge/internal/metrics"
	"github.com/pageforge/pageforge/internal/templates"
)

// ResourceKind classifies a deployable code resource split out of a page.
type ResourceKind string

const (
	ResourceStyle          ResourceKind = "style"
	ResourceBehavior       ResourceKind = "behavior"
	ResourcePlatformScript ResourceKind = "platform-script"
)

// Performance summarizes artifact sizes and the heuristics derived from them.
// Sizes are byte lengths; the load estimate assumes a nominal 3G connection.
type Performance struct {
	EstimatedLoadMs   int64 `json:"estimatedLoadTime"`
	StyleSize         int   `json:"styleSize"`
	ScriptSize        int   `json:"scriptSize"`
	MarkupSize        int   `json:"markupSize"`
	OptimizationScore int   `json:"optimizationScore"`
}

// PageMeta describes one generated page.
type PageMeta struct {
	PageName       string              `json:"pageName"`
	GeneratedAt    time.Time           `json:"generatedAt"`
	Framework      framework.Framework `json:"framework"`
	ComponentTypes []string            `json:"componentTypes"`
	TotalSize      int                 `json:"totalSize"`
	Performance    Performance         `json:"performance"`
}

// Page bundles every artifact generated for one configuration. Behavior and
// PlatformScript are empty when the configuration does not call for them.
type Page struct {
	Markup         string   `json:"markup"`
	Style          string   `json:"style"`
	Behavior       string   `json:"behavior,omitempty"`
	PlatformScript string   `json:"platformScript,omitempty"`
	Meta           PageMeta `json:"metadata"`
}

// Resource is one deployable artifact with a suggested file name.
type Resource struct {
	Kind        ResourceKind `json:"kind"`
	Name        string       `json:"name"`
	Content     string       `json:"content"`
	Description string       `json:"description"`
}

// Output is the complete result of a generation pass: pages, their split-out
// resources and the free-text documents handed to the deploying team.
type Output struct {
	Pages                  []Page     `json:"pages"`
	Resources              []Resource `json:"codeResources"`
	IntegrationNotes       string     `json:"integrationNotes"`
	TestingGuidelines      string     `json:"testingGuidelines"`
	DeploymentInstructions string     `json:"deploymentInstructions"`
}

// ScriptingOptions tunes GenerateWithScripting.
type ScriptingOptions struct {
	DataSources []string
}

// Generator drives page generation against an injected template engine (and
// through it the component library). The zero dependencies default to the
// seeded standard registries.
type Generator struct {
	engine   *templates.Engine
	recorder metrics.Recorder
}

// New returns a generator backed by the given engine, or the standard seeded
// engine when nil.
func New(engine *templates.Engine) *Generator {
	if engine == nil {
		engine = templates.NewEngine(nil)
	}
	return &Generator{engine: engine, recorder: metrics.NoopRecorder{}}
}

// SetRecorder injects a metrics recorder (optional). Returns the generator
// for chaining.
func (g *Generator) SetRecorder(r metrics.Recorder) *Generator {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	g.recorder = r
	return g
}

// Engine exposes the template engine backing this generator.
func (g *Generator) Engine() *templates.Engine { return g.engine }

// Generate validates cfg and produces the full artifact set. Validation
// failures are returned unchanged as *errors.ValidationError; nothing is
// generated for an invalid configuration.
func (g *Generator) Generate(cfg *config.PageConfiguration) (*Output, error) {
	start := time.Now()
	genID := uuid.NewString()

	if err := config.Validate(cfg); err != nil {
		g.recorder.IncGenerationOutcome(metrics.OutcomeInvalid)
		return nil, err
	}

	slog.Debug("generating page",
		logfields.GenerationID(genID),
		logfields.Page(cfg.PageSettings.Name),
		logfields.PageType(string(cfg.PageSettings.Type)),
		logfields.Framework(string(cfg.CodeResources.Style.Framework)))

	markup, warnings := g.engine.GenerateDocument(cfg)
	style := g.assembleStyle(cfg)
	behavior := g.assembleBehavior(cfg)

	var platformScript string
	if cfg.ScriptingEnabled() {
		platformScript = ampscript.CombineBlocks(ampscript.GenerateBlocks(cfg))
	}

	page := Page{
		Markup:         markup,
		Style:          style,
		Behavior:       behavior,
		PlatformScript: platformScript,
		Meta:           buildMeta(cfg, markup, style, behavior, platformScript),
	}
	out := &Output{
		Pages:                  []Page{page},
		Resources:              buildResources(cfg, page),
		IntegrationNotes:       integrationNotes(cfg),
		TestingGuidelines:      testingGuidelines(cfg),
		DeploymentInstructions: deploymentInstructions(cfg),
	}

	g.observe(cfg, page, time.Since(start))
	if len(warnings) > 0 {
		slog.Warn("generation finished with warnings",
			logfields.GenerationID(genID), logfields.Count(len(warnings)))
	}
	slog.Info("page generated",
		logfields.GenerationID(genID),
		logfields.Page(cfg.PageSettings.Name),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000.0))
	return out, nil
}

// GenerateFromTemplate generates from a registered template's embedded
// configuration with optional overrides deep-merged on top: objects merge
// key-wise, arrays and scalars are replaced wholesale. An unknown id fails
// with *errors.LookupError.
func (g *Generator) GenerateFromTemplate(id string, overrides map[string]any) (*Output, error) {
	t, ok := g.engine.Template(id)
	if !ok {
		return nil, pferrors.NewLookupError("template", id)
	}

	cfg, err := mergeOverrides(t.Config, overrides)
	if err != nil {
		return nil, err
	}
	config.ApplyDefaults(cfg)

	out, err := g.Generate(cfg)
	if err != nil {
		return nil, err
	}
	g.recorder.IncTemplateUse(id)
	slog.Debug("generated from template",
		logfields.Template(id), logfields.Page(cfg.PageSettings.Name))
	return out, nil
}

// GenerateMobileFirst generates with responsive and mobileFirst forced on.
// The caller's configuration is not modified.
func (g *Generator) GenerateMobileFirst(cfg *config.PageConfiguration) (*Output, error) {
	if cfg == nil {
		return g.Generate(nil)
	}
	c := *cfg
	c.AdvancedOptions.Responsive = true
	c.AdvancedOptions.MobileFirst = true
	return g.Generate(&c)
}

// GenerateForFramework generates with the style framework overridden.
func (g *Generator) GenerateForFramework(cfg *config.PageConfiguration, fw framework.Framework) (*Output, error) {
	if cfg == nil {
		return g.Generate(nil)
	}
	c := *cfg
	c.CodeResources.Style.Framework = fw
	return g.Generate(&c)
}

// GenerateWithScripting forces platform scripting on and merges any extra
// data sources into the configuration before generating.
func (g *Generator) GenerateWithScripting(cfg *config.PageConfiguration, opts *ScriptingOptions) (*Output, error) {
	if cfg == nil {
		return g.Generate(nil)
	}
	c := *cfg
	c.AdvancedOptions.Scripting = true
	if opts != nil && len(opts.DataSources) > 0 {
		c.AdvancedOptions.DataSources = mergeDataSources(cfg.AdvancedOptions.DataSources, opts.DataSources)
	}
	return g.Generate(&c)
}

func (g *Generator) observe(cfg *config.PageConfiguration, page Page, d time.Duration) {
	g.recorder.ObserveGenerationDuration(d)
	g.recorder.IncGenerationOutcome(metrics.OutcomeSuccess)
	g.recorder.ObserveArtifactBytes(metrics.ArtifactMarkup, len(page.Markup))
	g.recorder.ObserveArtifactBytes(metrics.ArtifactStyle, len(page.Style))
	g.recorder.ObserveArtifactBytes(metrics.ArtifactBehavior, len(page.Behavior))
	g.recorder.ObserveArtifactBytes(metrics.ArtifactPlatformScript, len(page.PlatformScript))
	g.recorder.ObserveComponentCount(len(cfg.Components))
}

func buildMeta(cfg *config.PageConfiguration, markup, style, behavior, platformScript string) PageMeta {
	perf := measurePerformance(len(markup), len(style), len(behavior)+len(platformScript))
	return PageMeta{
		PageName:       cfg.PageSettings.Name,
		GeneratedAt:    time.Now().UTC(),
		Framework:      framework.Normalize(string(cfg.CodeResources.Style.Framework)),
		ComponentTypes: componentTypes(cfg),
		TotalSize:      perf.MarkupSize + perf.StyleSize + perf.ScriptSize,
		Performance:    perf,
	}
}

// componentTypes lists the distinct component types placed on the page in
// first-occurrence order.
func componentTypes(cfg *config.PageConfiguration) []string {
	seen := make(map[config.ComponentType]bool, len(cfg.Components))
	var out []string
	for _, comp := range cfg.Components {
		if seen[comp.Type] {
			continue
		}
		seen[comp.Type] = true
		out = append(out, string(comp.Type))
	}
	return out
}

func buildResources(cfg *config.PageConfiguration, page Page) []Resource {
	base := cfg.PageSettings.URL
	if base == "" {
		base = config.Slugify(cfg.PageSettings.Name)
	}

	resources := []Resource{{
		Kind:        ResourceStyle,
		Name:        base + ".css",
		Content:     page.Style,
		Description: fmt.Sprintf("Stylesheet for %s", cfg.PageSettings.Name),
	}}
	if page.Behavior != "" {
		resources = append(resources, Resource{
			Kind:        ResourceBehavior,
			Name:        base + ".js",
			Content:     page.Behavior,
			Description: fmt.Sprintf("Client-side behavior for %s", cfg.PageSettings.Name),
		})
	}
	if page.PlatformScript != "" {
		resources = append(resources, Resource{
			Kind:        ResourcePlatformScript,
			Name:        base + ".ampscript",
			Content:     page.PlatformScript,
			Description: fmt.Sprintf("Marketing Cloud script blocks for %s", cfg.PageSettings.Name),
		})
	}
	return resources
}

// mergeDataSources appends extras not already present, preserving order.
func mergeDataSources(existing, extras []string) []string {
	merged := append([]string(nil), existing...)
	seen := make(map[string]bool, len(merged))
	for _, s := range merged {
		seen[s] = true
	}
	for _, s := range extras {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		merged = append(merged, s)
	}
	return merged
}
