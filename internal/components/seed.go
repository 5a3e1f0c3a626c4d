package components

import (
	"fmt"
	"time"

	"github.com/pageforge/pageforge/internal/framework"
)

// baselineDefinitions returns the built-in component set. Templates are
// framework-neutral; per-framework variation lives in class tokens and the
// Styles fragments.
func baselineDefinitions() []Definition {
	return []Definition{
		navigationDefinition(),
		heroDefinition(),
		contentBlockDefinition(),
		imageBlockDefinition(),
		actionButtonDefinition(),
		signupFormDefinition(),
		pageFooterDefinition(),
	}
}

func navigationDefinition() Definition {
	return Definition{
		ID:          "navigation",
		Name:        "Navigation Bar",
		Category:    "structure",
		Description: "Top navigation bar with brand text and an optional call to action",
		Props: []PropSpec{
			{Name: "brand", Type: PropString, Default: "Your Brand"},
			{Name: "ctaLabel", Type: PropString, Default: ""},
			{Name: "ctaHref", Type: PropString, Default: "#"},
		},
		Template: `<nav class="{{class:navbar}}" id="{{id}}">
  <a class="{{class:nav-link}}" href="#">{{brand}}</a>
  <ul class="{{class:nav-list}}">
    <li class="{{class:nav-item}}"><a class="{{class:nav-link}}" href="{{ctaHref}}">{{ctaLabel}}</a></li>
  </ul>
</nav>`,
		Styles: map[framework.Framework]string{
			framework.Bootstrap: `/* navigation */
.navbar .nav-link { font-weight: 500; }`,
			framework.Tailwind: `/* navigation */`,
			framework.Vanilla: `/* navigation */
.navbar a { text-decoration: none; color: inherit; }`,
		},
	}
}

func heroDefinition() Definition {
	return Definition{
		ID:          "hero",
		Name:        "Hero Banner",
		Category:    "content",
		Description: "Prominent heading, subheading and primary call to action",
		Props: []PropSpec{
			{Name: "heading", Type: PropString, Default: "Welcome"},
			{Name: "subheading", Type: PropString, Default: ""},
			{Name: "ctaLabel", Type: PropString, Default: "Learn More"},
			{Name: "ctaHref", Type: PropString, Default: "#"},
		},
		Template: `<section class="{{class:hero}}" id="{{id}}">
  <h1 class="{{class:heading}}">{{heading}}</h1>
  <p class="{{class:subheading}}">{{subheading}}</p>
  <a class="{{class:button-primary}}" href="{{ctaHref}}">{{ctaLabel}}</a>
</section>`,
		Styles: map[framework.Framework]string{
			framework.Bootstrap: `/* hero */
.hero-section h1 { margin-bottom: 0.75rem; }`,
			framework.Tailwind: `/* hero */`,
			framework.Vanilla: `/* hero */
.hero h1 { margin: 0 0 0.75rem; font-size: 2.25rem; }
.hero p { margin: 0 0 1.5rem; color: #495057; }`,
		},
	}
}

func contentBlockDefinition() Definition {
	return Definition{
		ID:          "content-block",
		Name:        "Content Block",
		Category:    "content",
		Description: "Free text content, optionally authored as Markdown",
		Props: []PropSpec{
			{Name: "content", Type: PropString, Default: "Add your content here."},
			{
				Name: "format", Type: PropString, Default: "plain",
				Validation: &PropValidation{Options: []string{"plain", "markdown"}},
			},
		},
		Template: `<section class="{{class:text-block}}" id="{{id}}">
{{content}}
</section>`,
		Styles: map[framework.Framework]string{
			framework.Bootstrap: `/* content block */`,
			framework.Tailwind:  `/* content block */`,
			framework.Vanilla: `/* content block */
.text-block { max-width: 720px; margin: 0 auto; padding: 1.5rem 1rem; }`,
		},
	}
}

func imageBlockDefinition() Definition {
	return Definition{
		ID:          "image-block",
		Name:        "Image Block",
		Category:    "content",
		Description: "Fluid image with alt text and an optional caption",
		Props: []PropSpec{
			{Name: "src", Type: PropString, Required: true},
			{Name: "alt", Type: PropString, Default: ""},
			{Name: "caption", Type: PropString, Default: ""},
		},
		Template: `<figure class="{{class:section}}" id="{{id}}">
  <img class="{{class:image-fluid}}" src="{{src}}" alt="{{alt}}">
  <figcaption>{{caption}}</figcaption>
</figure>`,
		Styles: map[framework.Framework]string{
			framework.Bootstrap: `/* image block */
figure figcaption { font-size: 0.875rem; color: #6c757d; }`,
			framework.Tailwind: `/* image block */`,
			framework.Vanilla: `/* image block */
figure { margin: 0; text-align: center; }
figcaption { font-size: 0.875rem; color: #6c757d; }`,
		},
	}
}

func actionButtonDefinition() Definition {
	return Definition{
		ID:          "action-button",
		Name:        "Action Button",
		Category:    "interaction",
		Description: "Standalone call-to-action link styled as a button",
		Props: []PropSpec{
			{Name: "label", Type: PropString, Default: "Click Here"},
			{Name: "href", Type: PropString, Default: "#"},
			{
				Name: "variant", Type: PropString, Default: "primary",
				Validation: &PropValidation{Options: []string{"primary", "secondary"}},
			},
		},
		Template: `<div class="{{class:section}}" id="{{id}}">
  <a class="{{class:button-{{variant}}}}" href="{{href}}">{{label}}</a>
</div>`,
		Styles: map[framework.Framework]string{
			framework.Bootstrap: `/* action button */`,
			framework.Tailwind:  `/* action button */`,
			framework.Vanilla:   `/* action button */`,
		},
	}
}

func signupFormDefinition() Definition {
	return Definition{
		ID:          "signup-form",
		Name:        "Signup Form",
		Category:    "interaction",
		Description: "Data capture form; declared fields drive markup and platform script",
		Props: []PropSpec{
			{Name: "title", Type: PropString, Default: "Sign Up"},
			{Name: "buttonLabel", Type: PropString, Default: "Submit"},
			{Name: "action", Type: PropString, Default: "#"},
			{
				Name: "fields", Type: PropArray,
				Default: []any{
					map[string]any{"name": "email", "type": "email", "label": "Email Address", "required": true},
				},
			},
		},
		Template: `<section class="{{class:section}}" id="{{id}}">
  <form class="{{class:form}}" method="post" action="{{action}}">
    <h2>{{title}}</h2>
{{fieldsMarkup}}
    <div id="form-messages" aria-live="polite"></div>
    <button type="submit" class="{{class:button-primary}}">{{buttonLabel}}</button>
  </form>
</section>`,
		ScriptingSupport: true,
		Styles: map[framework.Framework]string{
			framework.Bootstrap: `/* signup form */
#form-messages { min-height: 1.5rem; }`,
			framework.Tailwind: `/* signup form */
#form-messages { min-height: 1.5rem; }`,
			framework.Vanilla: `/* signup form */
#form-messages { min-height: 1.5rem; color: #dc3545; }`,
		},
	}
}

func pageFooterDefinition() Definition {
	return Definition{
		ID:          "page-footer",
		Name:        "Page Footer",
		Category:    "structure",
		Description: "Closing footer with copyright text",
		Props: []PropSpec{
			{
				Name: "text", Type: PropString,
				// Resolved at render time so the year is never frozen at
				// registration.
				DynamicDefault: func() any {
					return fmt.Sprintf("© %d Your Company", time.Now().Year())
				},
			},
		},
		Template: `<footer class="{{class:footer}}" id="{{id}}">
  <p class="{{class:footer-text}}">{{text}}</p>
</footer>`,
		Styles: map[framework.Framework]string{
			framework.Bootstrap: `/* page footer */`,
			framework.Tailwind:  `/* page footer */`,
			framework.Vanilla:   `/* page footer */`,
		},
	}
}
