// Package bootstrap implements the Bootstrap 5 framework backend. Pages built
// against it reference the CDN stylesheet and bundle script and lean on
// Bootstrap's grid and utility classes.
package bootstrap

import "github.com/pageforge/pageforge/internal/framework"

func init() {
	framework.Register(&backend{})
}

type backend struct{}

func (b *backend) Name() framework.Framework { return framework.Bootstrap }

func (b *backend) HeadAssets() string {
	return `<link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css" rel="stylesheet">`
}

func (b *backend) BodyAssets() string {
	return `<script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"></script>`
}

func (b *backend) BaseStyle() string {
	return `/* Bootstrap base styles */
body {
  font-family: var(--bs-body-font-family, system-ui, -apple-system, sans-serif);
  line-height: 1.5;
}
.page-section {
  padding: 3rem 0;
}
.hero-section {
  background-color: var(--bs-light);
  text-align: center;
}
img {
  max-width: 100%;
  height: auto;
}`
}

func (b *backend) BaseScript() string {
	return `// Bootstrap behavior bootstrap
document.addEventListener('DOMContentLoaded', function () {
  var toggles = document.querySelectorAll('[data-bs-toggle="collapse"]');
  toggles.forEach(function (el) {
    el.addEventListener('click', function () {
      el.setAttribute('aria-expanded', el.getAttribute('aria-expanded') !== 'true');
    });
  });
});`
}

func (b *backend) ClassMap() map[string]string {
	return map[string]string{
		"container":        "container",
		"row":              "row",
		"column":           "col",
		"section":          "page-section py-4",
		"hero":             "hero-section py-5",
		"heading":          "display-5 fw-bold",
		"subheading":       "lead",
		"text-block":       "container py-3",
		"image-fluid":      "img-fluid",
		"button-primary":   "btn btn-primary",
		"button-secondary": "btn btn-outline-secondary",
		"form":             "needs-validation",
		"form-group":       "mb-3",
		"form-label":       "form-label",
		"form-input":       "form-control",
		"form-check":       "form-check-input",
		"navbar":           "navbar navbar-expand-md navbar-light bg-light",
		"nav-list":         "navbar-nav ms-auto",
		"nav-item":         "nav-item",
		"nav-link":         "nav-link",
		"footer":           "py-4 bg-dark text-white",
		"footer-text":      "mb-0 text-center",
	}
}

func (b *backend) Breakpoints() framework.Breakpoints {
	return framework.Breakpoints{Mobile: 576, Tablet: 768, Desktop: 992}
}

func (b *backend) ResponsiveUtilities() string {
	return `/* Bootstrap responsive utilities */
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
  <nav class="navbar navbar-expand-md navbar-light bg-light">
    <div class="container">
      <a class="navbar-brand" href="#">` + pageTitle + `</a>
    </div>
  </nav>
</header>`
}

func (b *backend) DefaultFooter(pageName string) string {
	return `<footer class="py-4 bg-dark text-white">
  <div class="container">
    <p class="mb-0 text-center">&copy; ` + pageName + `</p>
  </div>
</footer>`
}
