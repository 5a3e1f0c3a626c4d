// Package responsive produces the mobile-first style tiers: an unconditioned
// base tier plus min-width gated tablet and desktop tiers, per-instance
// override rules scoped to component ids, and the fixed navigation behavior
// and fluid media rules shared by all frameworks.
package responsive

import (
	"fmt"
	"strings"

	"github.com/pageforge/pageforge/internal/config"
	"github.com/pageforge/pageforge/internal/framework"
	_ "github.com/pageforge/pageforge/internal/framework/backends/bootstrap"
	_ "github.com/pageforge/pageforge/internal/framework/backends/tailwind"
	_ "github.com/pageforge/pageforge/internal/framework/backends/vanilla"
)

// Breakpoints returns the pixel thresholds for a framework's style tiers.
func Breakpoints(fw framework.Framework) framework.Breakpoints {
	return framework.Resolve(fw).Breakpoints()
}

// FrameworkUtilities returns the framework's fixed responsive visibility and
// layout utility block.
func FrameworkUtilities(fw framework.Framework) string {
	return framework.Resolve(fw).ResponsiveUtilities()
}

// GenerateStyle renders the cascading tier structure for a configuration:
// exactly one unconditioned mobile tier, one tablet tier and one desktop tier
// (both min-width gated), followed by three scoped rules per component that
// declares per-tier overrides.
func GenerateStyle(cfg *config.PageConfiguration) string {
	fw := cfg.CodeResources.Style.Framework
	bp := Breakpoints(fw)

	var b strings.Builder
	b.WriteString("/* Responsive tiers (mobile-first) */\n")
	b.WriteString("/* Base tier (mobile) */\n")
	b.WriteString(baseTier(cfg))

	fmt.Fprintf(&b, "\n@media (min-width: %dpx) {\n  /* Tablet tier */\n%s}\n", bp.Tablet, indent(tabletTier()))
	fmt.Fprintf(&b, "\n@media (min-width: %dpx) {\n  /* Desktop tier */\n%s}\n", bp.Desktop, indent(desktopTier(cfg)))

	if overrides := componentOverrides(cfg.Components, bp); overrides != "" {
		b.WriteString("\n/* Component tier overrides */\n")
		b.WriteString(overrides)
	}

	return b.String()
}

func baseTier(cfg *config.PageConfiguration) string {
	rules := []string{
		"main { width: 100%; }",
		"h1 { font-size: 1.75rem; }",
		"h2 { font-size: 1.375rem; }",
		`.button, button[type="submit"] { width: 100%; }`,
		".nav-list { flex-direction: column; }",
		".form-input { font-size: 1rem; }",
	}
	if cfg.Layout.Sidebar {
		rules = append(rules, ".sidebar { display: none; }")
	}
	return strings.Join(rules, "\n") + "\n"
}

func tabletTier() string {
	return strings.Join([]string{
		"h1 { font-size: 2.25rem; }",
		"h2 { font-size: 1.625rem; }",
		`.button, button[type="submit"] { width: auto; }`,
		".nav-list { flex-direction: row; }",
	}, "\n") + "\n"
}

func desktopTier(cfg *config.PageConfiguration) string {
	width := cfg.Layout.ContainerWidth
	if width == "" || width == "fluid" {
		width = "100%"
	}
	rules := []string{
		fmt.Sprintf(".container { max-width: %s; }", width),
		"h1 { font-size: 2.5rem; }",
	}
	if cfg.Layout.Sidebar {
		rules = append(rules, ".sidebar { display: block; }")
	}
	return strings.Join(rules, "\n") + "\n"
}

// componentOverrides renders the per-instance tier rules: mobile below the
// tablet breakpoint, a tablet range and a desktop min-width rule, each scoped
// to the instance id.
func componentOverrides(comps []config.ComponentInstance, bp framework.Breakpoints) string {
	var b strings.Builder
	for _, comp := range comps {
		s := comp.Styling
		if s == nil {
			continue
		}
		if s.Mobile != "" {
			fmt.Fprintf(&b, "@media (max-width: %dpx) {\n  #%s { %s }\n}\n",
				bp.Tablet-1, comp.ID, strings.TrimSpace(s.Mobile))
		}
		if s.Tablet != "" {
			fmt.Fprintf(&b, "@media (min-width: %dpx) and (max-width: %dpx) {\n  #%s { %s }\n}\n",
				bp.Tablet, bp.Desktop-1, comp.ID, strings.TrimSpace(s.Tablet))
		}
		if s.Desktop != "" {
			fmt.Fprintf(&b, "@media (min-width: %dpx) {\n  #%s { %s }\n}\n",
				bp.Desktop, comp.ID, strings.TrimSpace(s.Desktop))
		}
	}
	return b.String()
}

func indent(block string) string {
	lines := strings.Split(strings.TrimRight(block, "\n"), "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// NavigationBehavior returns the fixed, framework-independent navigation
// toggle script: click toggles the panel, clicks outside dismiss it, and
// resizing above the tablet breakpoint dismisses it automatically.
func NavigationBehavior() string {
	return `// Navigation toggle behavior
(function () {
  var TABLET_BREAKPOINT = 768;
  var toggle = document.querySelector('[data-nav-toggle]');
  var panel = document.querySelector('[data-nav-panel]');
  if (!toggle || !panel) return;

  toggle.addEventListener('click', function (event) {
    event.stopPropagation();
    panel.classList.toggle('is-open');
  });

  document.addEventListener('click', function (event) {
    if (panel.classList.contains('is-open') && !panel.contains(event.target)) {
      panel.classList.remove('is-open');
    }
  });

  window.addEventListener('resize', function () {
    if (window.innerWidth >= TABLET_BREAKPOINT) {
      panel.classList.remove('is-open');
    }
  });
})();`
}

// ImageStyle returns the fixed fluid image and video aspect-ratio rules.
func ImageStyle() string {
	return `/* Fluid media */
img {
  max-width: 100%;
  height: auto;
}
.video-container {
  position: relative;
  width: 100%;
  padding-bottom: 56.25%;
  height: 0;
  overflow: hidden;
}
.video-container iframe,
.video-container video {
  position: absolute;
  top: 0;
  left: 0;
  width: 100%;
  height: 100%;
}`
}
