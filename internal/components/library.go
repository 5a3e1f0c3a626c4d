package components

import (
	"sort"
	"strings"
	"sync"

	"github.com/pageforge/pageforge/internal/framework"
)

// Definition is a reusable, framework-aware component blueprint: template
// text with {{name}} placeholders, a prop schema and per-framework style
// fragments.
type Definition struct {
	ID               string                         `json:"id" yaml:"id"`
	Name             string                         `json:"name" yaml:"name"`
	Category         string                         `json:"category" yaml:"category"`
	Description      string                         `json:"description,omitempty" yaml:"description,omitempty"`
	Props            []PropSpec                     `json:"props,omitempty" yaml:"props,omitempty"`
	Template         string                         `json:"template" yaml:"template"`
	Styles           map[framework.Framework]string `json:"styles,omitempty" yaml:"styles,omitempty"`
	ScriptingSupport bool                           `json:"scriptingSupport,omitempty" yaml:"scriptingSupport,omitempty"`
}

// StyleFor returns the definition's style fragment for a framework, falling
// back to the vanilla fragment when the framework has none.
func (d Definition) StyleFor(fw framework.Framework) string {
	if s, ok := d.Styles[fw]; ok {
		return s
	}
	return d.Styles[framework.Vanilla]
}

// Library is a read-mostly registry of component definitions keyed by id.
// Registration is expected at start-up; runtime registration is safe under
// the lock.
type Library struct {
	mu   sync.RWMutex
	defs map[string]Definition
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{defs: make(map[string]Definition)}
}

// NewStandardLibrary returns a library seeded with the baseline definitions.
func NewStandardLibrary() *Library {
	lib := NewLibrary()
	for _, def := range baselineDefinitions() {
		lib.Register(def)
	}
	return lib
}

// Register upserts a definition by id. Registering the same id again replaces
// the previous definition; definitions without an id are ignored.
func (l *Library) Register(def Definition) {
	if def.ID == "" {
		return
	}
	l.mu.Lock()
	l.defs[def.ID] = def
	l.mu.Unlock()
}

// Get retrieves a definition by id.
func (l *Library) Get(id string) (Definition, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	def, ok := l.defs[id]
	return def, ok
}

// List returns all definitions sorted by id.
func (l *Library) List() []Definition {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]Definition, 0, len(l.defs))
	for _, def := range l.defs {
		out = append(out, def)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ListByCategory returns the definitions in a category (case-insensitive),
// sorted by id.
func (l *Library) ListByCategory(category string) []Definition {
	var out []Definition
	for _, def := range l.List() {
		if strings.EqualFold(def.Category, category) {
			out = append(out, def)
		}
	}
	return out
}

// Categories returns the distinct categories present, sorted.
func (l *Library) Categories() []string {
	seen := map[string]bool{}
	for _, def := range l.List() {
		if def.Category != "" {
			seen[def.Category] = true
		}
	}
	out := make([]string, 0, len(seen))
	for cat := range seen {
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// ValidateProps checks instance props against the definition's schema:
// required props present, values type-conformant, numeric bounds, pattern and
// option constraints. Every error names the offending property. Unknown ids
// report invalid rather than failing.
func (l *Library) ValidateProps(id string, props map[string]any) PropsResult {
	def, ok := l.Get(id)
	if !ok {
		return PropsResult{
			Valid:  false,
			Errors: []PropError{{Property: "id", Message: "unknown component definition: " + id}},
		}
	}

	result := PropsResult{Valid: true}
	for _, spec := range def.Props {
		v, present := props[spec.Name]
		if !present || v == nil {
			if spec.Required {
				result.Errors = append(result.Errors, PropError{
					Property: spec.Name,
					Message:  "required property " + spec.Name + " is missing",
					Expected: string(spec.Type),
				})
			}
			continue
		}
		result.Errors = append(result.Errors, validateValue(spec, v)...)
	}

	// Loop-style markers are not part of the substitution contract; flag them
	// so custom definitions do not rely on unevaluated syntax.
	if strings.Contains(def.Template, "{{#") {
		result.Warnings = append(result.Warnings,
			"definition "+id+" contains loop-style markers which are not evaluated")
	}

	result.Valid = len(result.Errors) == 0
	return result
}
