package generator

import (
	"fmt"
	"strings"

	"github.com/pageforge/pageforge/internal/components"
	"github.com/pageforge/pageforge/internal/config"
	"github.com/pageforge/pageforge/internal/framework"
	"github.com/pageforge/pageforge/internal/responsive"
)

// assembleStyle builds the page stylesheet in fixed order: framework base,
// responsive utilities, fluid media rules, the style fragment of every
// component type present, per-instance custom styles, the responsive tiers
// when enabled and finally the page-level custom style.
func (g *Generator) assembleStyle(cfg *config.PageConfiguration) string {
	backend := framework.Resolve(cfg.CodeResources.Style.Framework)

	sections := []string{
		backend.BaseStyle(),
		responsive.FrameworkUtilities(backend.Name()),
		responsive.ImageStyle(),
	}

	lib := g.engine.Library()
	for _, id := range presentDefinitionIDs(cfg) {
		def, ok := lib.Get(id)
		if !ok {
			continue
		}
		sections = append(sections, def.StyleFor(backend.Name()))
	}

	for _, comp := range cfg.Components {
		if comp.Styling == nil || comp.Styling.CustomStyle == "" {
			continue
		}
		sections = append(sections,
			fmt.Sprintf("/* %s */\n%s", comp.ID, strings.TrimSpace(comp.Styling.CustomStyle)))
	}

	if cfg.AdvancedOptions.Responsive {
		sections = append(sections, responsive.GenerateStyle(cfg))
	}

	if cs := strings.TrimSpace(cfg.CodeResources.Style.CustomStyle); cs != "" {
		sections = append(sections, "/* Custom page styles */\n"+cs)
	}

	return joinSections(sections)
}

// assembleBehavior builds the client-side script in fixed order: framework
// base script, navigation toggle when responsive, the fixed form validation
// when any form is placed, then the page-level custom script.
func (g *Generator) assembleBehavior(cfg *config.PageConfiguration) string {
	backend := framework.Resolve(cfg.CodeResources.Style.Framework)

	sections := []string{backend.BaseScript()}

	if cfg.AdvancedOptions.Responsive {
		sections = append(sections, responsive.NavigationBehavior())
	}
	if cfg.HasComponent(config.ComponentForm) {
		sections = append(sections, formValidationScript)
	}
	if cs := strings.TrimSpace(cfg.CodeResources.Script.CustomScript); cs != "" {
		sections = append(sections, "// Custom page script\n"+cs)
	}

	return joinSections(sections)
}

// presentDefinitionIDs lists the definition ids bound to the component types
// placed on the page, first occurrence order, no repeats.
func presentDefinitionIDs(cfg *config.PageConfiguration) []string {
	seen := make(map[string]bool)
	var out []string
	for _, comp := range cfg.Components {
		id, ok := components.DefinitionIDForType(comp.Type)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// joinSections concatenates non-empty sections with blank lines between them.
func joinSections(sections []string) string {
	kept := make([]string, 0, len(sections))
	for _, s := range sections {
		if strings.TrimSpace(s) == "" {
			continue
		}
		kept = append(kept, strings.TrimRight(s, "\n"))
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, "\n\n") + "\n"
}

// formValidationScript is the fixed client-side validation attached to every
// page carrying a form: required fields plus an email shape check, with
// findings written to the form's aria-live message region.
const formValidationScript = `// Form validation behavior
(function () {
  var forms = document.querySelectorAll('form');
  Array.prototype.forEach.call(forms, function (form) {
    form.addEventListener('submit', function (event) {
      var errors = [];
      var fields = form.querySelectorAll('input, select, textarea');
      Array.prototype.forEach.call(fields, function (field) {
        var label = field.name || field.id || 'field';
        if (field.hasAttribute('required') && !field.value.trim()) {
          errors.push(label + ' is required');
          return;
        }
        if (field.type === 'email' && field.value && field.value.indexOf('@') < 1) {
          errors.push(label + ' must be a valid email address');
        }
      });
      var messages = form.querySelector('#form-messages');
      if (errors.length > 0) {
        event.preventDefault();
        if (messages) messages.textContent = errors.join('. ');
        return;
      }
      if (messages) messages.textContent = '';
    });
  });
})();`
