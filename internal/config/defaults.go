package config

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/pageforge/pageforge/internal/framework"
)

// GenerateDefault returns a complete landing page configuration that always
// passes validation. Used by `pageforge init` and as the template fallback.
func GenerateDefault() *PageConfiguration {
	cfg := &PageConfiguration{
		PageSettings: PageSettings{
			Name:        "Landing Page",
			Type:        PageLanding,
			Title:       "Welcome",
			Description: "Generated landing page",
			Keywords:    []string{"landing", "marketing"},
		},
		CodeResources: CodeResources{
			Style: StyleResources{Framework: framework.Bootstrap},
		},
		AdvancedOptions: AdvancedOptions{
			Responsive:    true,
			Accessibility: true,
			SEO:           true,
		},
		Layout: Layout{
			Structure: StructureSingleColumn,
			Header:    true,
			Footer:    true,
		},
		Components: []ComponentInstance{
			{
				ID:       "hero-1",
				Type:     ComponentHero,
				Position: 1,
				Props: map[string]any{
					"heading":    "Welcome",
					"subheading": "Start building your page",
				},
			},
			{
				ID:       "text-1",
				Type:     ComponentText,
				Position: 2,
				Content:  "Edit this content block to describe your offer.",
			},
		},
	}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults normalizes a configuration in place: enum case folding,
// fallback page type / framework / structure, title and URL derived from the
// page name, container width default.
func ApplyDefaults(cfg *PageConfiguration) {
	if cfg == nil {
		return
	}

	if cfg.PageSettings.Type != "" {
		if norm := NormalizePageType(string(cfg.PageSettings.Type)); norm != "" {
			cfg.PageSettings.Type = norm
		}
	} else {
		cfg.PageSettings.Type = PageLanding
	}

	if cfg.CodeResources.Style.Framework != "" {
		if norm := framework.Normalize(string(cfg.CodeResources.Style.Framework)); norm != "" {
			cfg.CodeResources.Style.Framework = norm
		}
	} else {
		// An absent framework means vanilla, same as framework.Normalize("").
		cfg.CodeResources.Style.Framework = framework.Vanilla
	}

	if cfg.Layout.Structure != "" {
		if norm := NormalizeLayoutStructure(string(cfg.Layout.Structure)); norm != "" {
			cfg.Layout.Structure = norm
		}
	} else {
		cfg.Layout.Structure = StructureSingleColumn
	}
	if cfg.Layout.ContainerWidth == "" {
		cfg.Layout.ContainerWidth = "1200px"
	}

	if cfg.PageSettings.Title == "" {
		cfg.PageSettings.Title = cfg.PageSettings.Name
	}
	if cfg.PageSettings.URL == "" && cfg.PageSettings.Name != "" {
		cfg.PageSettings.URL = Slugify(cfg.PageSettings.Name)
	}

	for i := range cfg.Components {
		if norm := NormalizeComponentType(string(cfg.Components[i].Type)); norm != "" {
			cfg.Components[i].Type = norm
		}
	}
}

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe slug from free text: accents folded, lowercased,
// runs of non-alphanumerics collapsed to single hyphens.
func Slugify(s string) string {
	folded, _, err := transform.String(deaccent, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(folded) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
