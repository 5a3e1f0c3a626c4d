package generator

import (
	"fmt"
	"strings"

	"github.com/pageforge/pageforge/internal/config"
	"github.com/pageforge/pageforge/internal/framework"
	"github.com/pageforge/pageforge/internal/responsive"
)

// The three documents below are fixed prose skeletons with configuration
// values substituted in. They carry no generated code, only handling advice
// for the team deploying the artifacts.

func integrationNotes(cfg *config.PageConfiguration) string {
	fw := framework.Normalize(string(cfg.CodeResources.Style.Framework))

	var b strings.Builder
	fmt.Fprintf(&b, "Integration Notes: %s\n\n", cfg.PageSettings.Name)
	fmt.Fprintf(&b, "This %s page targets the %s framework. The markup is a standalone HTML document; the compiled stylesheet and the behavior script ship as separate resources and must be included at deploy time (inline or hosted).\n\n",
		cfg.PageSettings.Type, fw)

	fmt.Fprintf(&b, "- Responsive layout: %s\n", enabledWord(cfg.AdvancedOptions.Responsive))
	fmt.Fprintf(&b, "- Accessibility attributes: %s\n", enabledWord(cfg.AdvancedOptions.Accessibility))
	fmt.Fprintf(&b, "- SEO metadata: %s\n", enabledWord(cfg.AdvancedOptions.SEO))
	fmt.Fprintf(&b, "- Platform scripting: %s\n", enabledWord(cfg.ScriptingEnabled()))

	if cfg.ScriptingEnabled() {
		b.WriteString("\nThe platform script resource must sit at the very top of the page content so its AMPscript blocks execute before the markup renders. Keep the block order exactly as generated: declarations first, inline personalization next, tracking last.\n")
	}
	if len(cfg.AdvancedOptions.DataSources) > 0 {
		fmt.Fprintf(&b, "\nData extensions referenced: %s. Each must exist with the attributes the lookup and form handling blocks use (email as the key, plus PageName and SubmittedAt for submissions).\n",
			strings.Join(cfg.AdvancedOptions.DataSources, ", "))
	}
	return b.String()
}

func testingGuidelines(cfg *config.PageConfiguration) string {
	fw := framework.Normalize(string(cfg.CodeResources.Style.Framework))
	bp := responsive.Breakpoints(fw)

	steps := []string{
		"Open the generated markup in a browser and confirm it renders without console errors.",
		fmt.Sprintf("Check the layout at %dpx, %dpx and %dpx viewport widths (the mobile, tablet and desktop tiers).",
			bp.Mobile, bp.Tablet, bp.Desktop),
	}
	if cfg.HasComponent(config.ComponentForm) {
		steps = append(steps,
			"Submit the form with an empty required field and with an invalid email address; inline messages must appear without a page reload.")
	}
	if cfg.ScriptingEnabled() {
		steps = append(steps,
			"Preview the page with a test subscriber key and confirm the greeting falls back to the neutral variant for unknown visitors.")
		if cfg.HasComponent(config.ComponentForm) {
			steps = append(steps,
				"Complete one end-to-end submission and verify the row lands in the target data extension.")
		}
	}
	if cfg.AdvancedOptions.Accessibility {
		steps = append(steps,
			"Run an accessibility pass: landmark roles, form labels and image alt texts.")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Testing Guidelines: %s\n\n", cfg.PageSettings.Name)
	for i, step := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}

func deploymentInstructions(cfg *config.PageConfiguration) string {
	steps := []string{
		fmt.Sprintf("In Marketing Cloud, open Web Studio > CloudPages and create a landing page named %q.", cfg.PageSettings.Name),
	}
	if cfg.ScriptingEnabled() {
		steps = append(steps,
			"Paste the platform script resource at the top of the HTML content area, before any markup.")
	}
	steps = append(steps,
		"Paste the generated markup into the content area.",
		"Add the compiled stylesheet inside a <style> element in the document head, or host it and reference it with a <link> tag.")
	if cfg.HasComponent(config.ComponentForm) || cfg.AdvancedOptions.Responsive {
		steps = append(steps,
			"Add the behavior script inside a <script> element before </body>, or host it and reference it with a src attribute.")
	}
	if len(cfg.AdvancedOptions.DataSources) > 0 {
		steps = append(steps, fmt.Sprintf(
			"Create the data extensions the page reads and writes (%s) before publishing.",
			strings.Join(cfg.AdvancedOptions.DataSources, ", ")))
	}
	steps = append(steps,
		"Publish the page and verify the public URL before linking it from any campaign.")

	var b strings.Builder
	fmt.Fprintf(&b, "Deployment Instructions: %s\n\n", cfg.PageSettings.Name)
	for i, step := range steps {
		fmt.Fprintf(&b, "%d. %s\n", i+1, step)
	}
	return b.String()
}

func enabledWord(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}
