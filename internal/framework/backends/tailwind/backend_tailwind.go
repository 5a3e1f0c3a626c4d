// Package tailwind implements the Tailwind CSS framework backend. Tailwind
// ships as a bootstrap script tag rather than a stylesheet link, so the head
// assets differ in kind from the other backends.
package tailwind

import "github.com/pageforge/pageforge/internal/framework"

func init() {
	framework.Register(&backend{})
}

type backend struct{}

func (b *backend) Name() framework.Framework { return framework.Tailwind }

func (b *backend) HeadAssets() string {
	return `<script src="https://cdn.tailwindcss.com"></script>`
}

func (b *backend) BodyAssets() string { return "" }

func (b *backend) BaseStyle() string {
	return `/* Tailwind base styles */
body {
  font-family: ui-sans-serif, system-ui, sans-serif;
  line-height: 1.5;
}
.page-section {
  padding: 3rem 1rem;
}
img {
  max-width: 100%;
  height: auto;
}`
}

func (b *backend) BaseScript() string {
	return `// Tailwind behavior bootstrap
document.addEventListener('DOMContentLoaded', function () {
  var toggles = document.querySelectorAll('[data-nav-toggle]');
  toggles.forEach(function (el) {
    el.addEventListener('click', function () {
      var target = document.querySelector(el.getAttribute('data-nav-toggle'));
      if (target) target.classList.toggle('hidden');
    });
  });
});`
}

func (b *backend) ClassMap() map[string]string {
	return map[string]string{
		"container":        "container mx-auto px-4",
		"row":              "flex flex-wrap -mx-4",
		"column":           "w-full px-4 md:flex-1",
		"section":          "page-section py-8",
		"hero":             "bg-gray-50 py-16 text-center",
		"heading":          "text-4xl font-bold tracking-tight",
		"subheading":       "mt-2 text-lg text-gray-600",
		"text-block":       "mx-auto max-w-3xl py-6",
		"image-fluid":      "h-auto max-w-full",
		"button-primary":   "inline-block rounded bg-blue-600 px-5 py-2.5 font-semibold text-white hover:bg-blue-700",
		"button-secondary": "inline-block rounded border border-gray-300 px-5 py-2.5 font-semibold text-gray-700 hover:bg-gray-50",
		"form":             "space-y-4",
		"form-group":       "mb-4",
		"form-label":       "mb-1 block text-sm font-medium text-gray-700",
		"form-input":       "w-full rounded border border-gray-300 px-3 py-2",
		"form-check":       "h-4 w-4 rounded border-gray-300",
		"navbar":           "flex items-center justify-between bg-white px-6 py-4 shadow",
		"nav-list":         "flex gap-6",
		"nav-item":         "list-none",
		"nav-link":         "text-gray-700 hover:text-gray-900",
		"footer":           "bg-gray-900 py-8 text-gray-100",
		"footer-text":      "text-center",
	}
}

func (b *backend) Breakpoints() framework.Breakpoints {
	return framework.Breakpoints{Mobile: 640, Tablet: 768, Desktop: 1024}
}

func (b *backend) ResponsiveUtilities() string {
	return `/* Tailwind responsive utilities */
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
  <nav class="flex items-center justify-between bg-white px-6 py-4 shadow">
    <a class="text-xl font-bold" href="#">` + pageTitle + `</a>
  </nav>
</header>`
}

func (b *backend) DefaultFooter(pageName string) string {
	return `<footer class="bg-gray-900 py-8 text-gray-100">
  <p class="text-center">&copy; ` + pageName + `</p>
</footer>`
}
