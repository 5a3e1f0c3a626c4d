// Package framework defines the closed set of style framework backends a
// page can target. Variation between frameworks lives entirely in per-backend
// data records dispatched through one registry; nothing outside this package
// branches on the framework name.
package framework

import (
	"strings"
	"sync"
)

// Framework identifies one of the three supported style backends (stringly
// for YAML/JSON compatibility).
type Framework string

const (
	Bootstrap Framework = "bootstrap"
	Tailwind  Framework = "tailwind"
	Vanilla   Framework = "vanilla"
)

// All lists every supported framework in stable order.
func All() []Framework { return []Framework{Bootstrap, Tailwind, Vanilla} }

// Normalize maps a raw string to a Framework, returning "" when unsupported.
func Normalize(raw string) Framework {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "bootstrap":
		return Bootstrap
	case "tailwind":
		return Tailwind
	case "vanilla", "":
		return Vanilla
	}
	return ""
}

// IsValid reports whether f names a supported framework.
func (f Framework) IsValid() bool {
	switch f {
	case Bootstrap, Tailwind, Vanilla:
		return true
	}
	return false
}

// Breakpoints holds the pixel thresholds separating the mobile, tablet and
// desktop style tiers for one framework.
type Breakpoints struct {
	Mobile  int `json:"mobile"`
	Tablet  int `json:"tablet"`
	Desktop int `json:"desktop"`
}

// Backend provides everything framework-specific the generator needs: base
// style and behavior text, head/body asset tags, the class-name remap table
// applied to framework-neutral component templates, breakpoints, responsive
// utilities and the default header/footer regions.
type Backend interface {
	Name() Framework
	BaseStyle() string
	BaseScript() string
	HeadAssets() string
	BodyAssets() string
	ClassMap() map[string]string
	Breakpoints() Breakpoints
	ResponsiveUtilities() string
	DefaultHeader(pageTitle string) string
	DefaultFooter(pageName string) string
}

var (
	regMu sync.RWMutex
	reg   = map[Framework]Backend{}
)

// Register registers a Backend implementation (idempotent).
func Register(b Backend) {
	if b == nil {
		return
	}
	regMu.Lock()
	if _, ok := reg[b.Name()]; !ok {
		reg[b.Name()] = b
	}
	regMu.Unlock()
}

// Get retrieves a backend by framework, or nil when none is registered.
func Get(f Framework) Backend {
	regMu.RLock()
	defer regMu.RUnlock()
	return reg[f]
}

// Resolve retrieves a backend by framework, falling back to the vanilla
// backend for unknown names so rendering never dereferences nil.
func Resolve(f Framework) Backend {
	if b := Get(f); b != nil {
		return b
	}
	return Get(Vanilla)
}

// ClassFor resolves a framework-neutral class name through the backend's
// remap table, returning the neutral name unchanged when unmapped.
func ClassFor(f Framework, neutral string) string {
	b := Resolve(f)
	if b == nil {
		return neutral
	}
	if mapped, ok := b.ClassMap()[neutral]; ok {
		return mapped
	}
	return neutral
}

// ExpandClasses replaces every {{class:name}} token in template text with the
// framework's mapped class attribute value. This is a static lookup
// transform, not a template language.
func ExpandClasses(f Framework, template string) string {
	const open, close = "{{class:", "}}"
	var out strings.Builder
	rest := template
	for {
		start := strings.Index(rest, open)
		if start < 0 {
			out.WriteString(rest)
			return out.String()
		}
		end := strings.Index(rest[start:], close)
		if end < 0 {
			out.WriteString(rest)
			return out.String()
		}
		name := rest[start+len(open) : start+end]
		out.WriteString(rest[:start])
		out.WriteString(ClassFor(f, name))
		rest = rest[start+end+len(close):]
	}
}
