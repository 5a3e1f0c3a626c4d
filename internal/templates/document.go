package templates

import (
	"fmt"
	"html"
	"log/slog"
	"sort"
	"strings"

	"github.com/pageforge/pageforge/internal/ampscript"
	"github.com/pageforge/pageforge/internal/components"
	"github.com/pageforge/pageforge/internal/config"
	"github.com/pageforge/pageforge/internal/framework"
)

// GenerateDocument assembles the full HTML document for a configuration:
// head metadata (description/keywords only when SEO is enabled), framework
// bootstrap assets, header region, positioned main region, footer region,
// literal custom style and script, then external references in declaration
// order. The returned warnings name components that soft-failed to inert
// comments.
func (e *Engine) GenerateDocument(cfg *config.PageConfiguration) (string, []string) {
	fw := cfg.CodeResources.Style.Framework
	backend := framework.Resolve(fw)

	var b strings.Builder
	var warnings []string

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString(`<html lang="en">` + "\n")
	e.writeHead(&b, cfg, backend)
	b.WriteString("<body>\n")

	e.writeHeader(&b, cfg, backend, &warnings)
	e.writeMain(&b, cfg, &warnings)
	e.writeFooter(&b, cfg, backend, &warnings)

	if assets := backend.BodyAssets(); assets != "" {
		b.WriteString(assets + "\n")
	}

	if style := cfg.CodeResources.Style.CustomStyle; style != "" {
		b.WriteString("<style>\n" + style + "\n</style>\n")
	}
	if script := cfg.CodeResources.Script.CustomScript; script != "" {
		b.WriteString("<script>\n" + script + "\n</script>\n")
	}

	for _, ref := range cfg.CodeResources.Style.ExternalRefs {
		fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=%q>\n", ref)
	}
	for _, ref := range cfg.CodeResources.Script.ExternalRefs {
		fmt.Fprintf(&b, "<script src=%q></script>\n", ref)
	}

	b.WriteString("</body>\n</html>\n")
	return b.String(), warnings
}

func (e *Engine) writeHead(b *strings.Builder, cfg *config.PageConfiguration, backend framework.Backend) {
	b.WriteString("<head>\n")
	b.WriteString(`  <meta charset="utf-8">` + "\n")
	b.WriteString(`  <meta name="viewport" content="width=device-width, initial-scale=1">` + "\n")
	fmt.Fprintf(b, "  <title>%s</title>\n", html.EscapeString(cfg.PageSettings.Title))

	if cfg.AdvancedOptions.SEO {
		if d := cfg.PageSettings.Description; d != "" {
			fmt.Fprintf(b, "  <meta name=\"description\" content=%q>\n", d)
		}
		if len(cfg.PageSettings.Keywords) > 0 {
			fmt.Fprintf(b, "  <meta name=\"keywords\" content=%q>\n", strings.Join(cfg.PageSettings.Keywords, ", "))
		}
	}

	if assets := backend.HeadAssets(); assets != "" {
		b.WriteString("  " + assets + "\n")
	}
	b.WriteString("</head>\n")
}

func (e *Engine) writeHeader(b *strings.Builder, cfg *config.PageConfiguration, backend framework.Backend, warnings *[]string) {
	for _, comp := range cfg.Components {
		if comp.Type == config.ComponentHeader {
			b.WriteString(e.renderComponent(cfg, comp, warnings) + "\n")
			return
		}
	}
	if cfg.Layout.Header {
		b.WriteString(backend.DefaultHeader(html.EscapeString(cfg.PageSettings.Title)) + "\n")
	}
}

func (e *Engine) writeFooter(b *strings.Builder, cfg *config.PageConfiguration, backend framework.Backend, warnings *[]string) {
	for _, comp := range cfg.Components {
		if comp.Type == config.ComponentFooter {
			b.WriteString(e.renderComponent(cfg, comp, warnings) + "\n")
			return
		}
	}
	if cfg.Layout.Footer {
		b.WriteString(backend.DefaultFooter(html.EscapeString(cfg.PageSettings.Name)) + "\n")
	}
}

func (e *Engine) writeMain(b *strings.Builder, cfg *config.PageConfiguration, warnings *[]string) {
	role := ""
	if cfg.AdvancedOptions.Accessibility {
		role = ` role="main"`
	}
	fmt.Fprintf(b, "<main%s class=\"layout-%s\">\n", role, cfg.Layout.Structure)
	fmt.Fprintf(b, "<div class=%q>\n", framework.ClassFor(cfg.CodeResources.Style.Framework, "container"))

	body := e.mainComponents(cfg, warnings)
	if body == "" {
		body = e.defaultMessage(cfg)
	}
	b.WriteString(body)

	if cfg.Layout.Sidebar {
		b.WriteString(`<aside class="sidebar"></aside>` + "\n")
	}

	b.WriteString("</div>\n")
	b.WriteString("</main>\n")
}

// mainComponents renders the non-header/footer components sorted ascending by
// position. The sort is stable so ties keep declaration order.
func (e *Engine) mainComponents(cfg *config.PageConfiguration, warnings *[]string) string {
	var placed []config.ComponentInstance
	for _, comp := range cfg.Components {
		if comp.Type == config.ComponentHeader || comp.Type == config.ComponentFooter {
			continue
		}
		placed = append(placed, comp)
	}
	sort.SliceStable(placed, func(i, j int) bool { return placed[i].Position < placed[j].Position })

	var b strings.Builder
	for _, comp := range placed {
		b.WriteString(e.renderComponent(cfg, comp, warnings) + "\n")
	}
	return b.String()
}

func (e *Engine) defaultMessage(cfg *config.PageConfiguration) string {
	fw := cfg.CodeResources.Style.Framework
	return fmt.Sprintf(`<section class=%q>
  <h1>%s</h1>
  <p>Welcome to %s. Add components to this configuration to build out the page.</p>
</section>
`, framework.ClassFor(fw, "section"),
		html.EscapeString(cfg.PageSettings.Title),
		html.EscapeString(cfg.PageSettings.Name))
}

// renderComponent renders one instance through the component library, keyed
// by its type binding. Unknown types soft-fail to an inert comment and are
// surfaced in the warnings list. When page scripting is enabled, an instance
// script snippet is emitted in platform delimiters immediately before the
// component markup.
func (e *Engine) renderComponent(cfg *config.PageConfiguration, comp config.ComponentInstance, warnings *[]string) string {
	defID, ok := components.DefinitionIDForType(comp.Type)
	if !ok {
		warning := fmt.Sprintf("component %s has unknown type %q; emitted an inert comment", comp.ID, comp.Type)
		*warnings = append(*warnings, warning)
		slog.Warn("unknown component type",
			slog.String("component_id", comp.ID),
			slog.String("component_type", string(comp.Type)))
		return fmt.Sprintf("<!-- unknown component type %q (id %s) -->", comp.Type, comp.ID)
	}

	props := make(map[string]any, len(comp.Props)+2)
	for k, v := range comp.Props {
		props[k] = v
	}
	props["id"] = comp.ID
	if comp.Content != "" {
		props["content"] = comp.Content
	}

	markup := e.library.RenderInstance(defID, cfg.CodeResources.Style.Framework, props)

	if cfg.ScriptingEnabled() && strings.TrimSpace(comp.Script) != "" {
		markup = ampscript.Wrap(comp.Script) + "\n" + markup
	}
	return markup
}
