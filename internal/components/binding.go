package components

import "github.com/pageforge/pageforge/internal/config"

// typeBindings maps page component types to the baseline definition rendering
// them. Custom registrations may override a binding target by re-registering
// its definition id.
var typeBindings = map[config.ComponentType]string{
	config.ComponentHeader: "navigation",
	config.ComponentHero:   "hero",
	config.ComponentText:   "content-block",
	config.ComponentImage:  "image-block",
	config.ComponentButton: "action-button",
	config.ComponentForm:   "signup-form",
	config.ComponentFooter: "page-footer",
}

// DefinitionIDForType resolves the definition id bound to a component type,
// returning false for types outside the closed set.
func DefinitionIDForType(t config.ComponentType) (string, bool) {
	id, ok := typeBindings[t]
	return id, ok
}
