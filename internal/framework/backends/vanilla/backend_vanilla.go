// Package vanilla implements the dependency-free framework backend. All
// styling ships inline with the page, so the base style carries a complete
// self-contained rule set and no external assets are referenced.
package vanilla

import "github.com/pageforge/pageforge/internal/framework"

func init() {
	framework.Register(&backend{})
}

type backend struct{}

func (b *backend) Name() framework.Framework { return framework.Vanilla }

func (b *backend) HeadAssets() string { return "" }

func (b *backend) BodyAssets() string { return "" }

func (b *backend) BaseStyle() string {
	return `/* Vanilla base styles */
* {
  box-sizing: border-box;
}
body {
  margin: 0;
  font-family: system-ui, -apple-system, sans-serif;
  line-height: 1.5;
  color: #212529;
}
.container {
  width: 100%;
  max-width: 960px;
  margin: 0 auto;
  padding: 0 1rem;
}
.section {
  padding: 3rem 0;
}
.hero {
  padding: 4rem 1rem;
  text-align: center;
  background-color: #f8f9fa;
}
.button {
  display: inline-block;
  padding: 0.625rem 1.25rem;
  border: 1px solid transparent;
  border-radius: 0.25rem;
  font-weight: 600;
  text-decoration: none;
  cursor: pointer;
}
.button-primary {
  background-color: #0d6efd;
  color: #fff;
}
.button-secondary {
  background-color: transparent;
  border-color: #ced4da;
  color: #212529;
}
.form-group {
  margin-bottom: 1rem;
}
.form-label {
  display: block;
  margin-bottom: 0.25rem;
  font-weight: 500;
}
.form-input {
  width: 100%;
  padding: 0.5rem 0.75rem;
  border: 1px solid #ced4da;
  border-radius: 0.25rem;
}
.navbar {
  display: flex;
  align-items: center;
  justify-content: space-between;
  padding: 1rem;
  background-color: #f8f9fa;
}
.nav-list {
  display: flex;
  gap: 1.5rem;
  list-style: none;
  margin: 0;
  padding: 0;
}
.image-fluid {
  max-width: 100%;
  height: auto;
}
.page-footer {
  padding: 2rem 1rem;
  background-color: #212529;
  color: #f8f9fa;
  text-align: center;
}`
}

func (b *backend) BaseScript() string {
	return `// Vanilla behavior bootstrap
document.addEventListener('DOMContentLoaded', function () {
  var toggles = document.querySelectorAll('[data-toggle-target]');
  toggles.forEach(function (el) {
    el.addEventListener('click', function () {
      var target = document.querySelector(el.getAttribute('data-toggle-target'));
      if (target) target.classList.toggle('is-open');
    });
  });
});`
}

func (b *backend) ClassMap() map[string]string {
	return map[string]string{
		"container":        "container",
		"row":              "row",
		"column":           "column",
		"section":          "section",
		"hero":             "hero",
		"heading":          "heading",
		"subheading":       "subheading",
		"text-block":       "text-block",
		"image-fluid":      "image-fluid",
		"button-primary":   "button button-primary",
		"button-secondary": "button button-secondary",
		"form":             "form",
		"form-group":       "form-group",
		"form-label":       "form-label",
		"form-input":       "form-input",
		"form-check":       "form-check",
		"navbar":           "navbar",
		"nav-list":         "nav-list",
		"nav-item":         "nav-item",
		"nav-link":         "nav-link",
		"footer":           "page-footer",
		"footer-text":      "footer-text",
	}
}

func (b *backend) Breakpoints() framework.Breakpoints {
	return framework.Breakpoints{Mobile: 480, Tablet: 768, Desktop: 1024}
}

func (b *backend) ResponsiveUtilities() string {
	return `/* Vanilla responsive utilities */
.hide-mobile { display: none; }
@media (min-width: 768px) {
  .hide-mobile { display: initial; }
  .hide-desktop { display: none; }
}
.stack-mobile { flex-direction: column; }
@media (min-width: 768px) {
  .stack-mobile { flex-direction: row; }
}`
}

func (b *backend) DefaultHeader(pageTitle string) string {
	return `<header>
  <nav class="navbar">
    <a class="nav-brand" href="#">` + pageTitle + `</a>
  </nav>
</header>`
}

func (b *backend) DefaultFooter(pageName string) string {
	return `<footer class="page-footer">
  <p class="footer-text">&copy; ` + pageName + `</p>
</footer>`
}
