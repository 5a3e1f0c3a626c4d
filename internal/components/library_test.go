package components

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pageforge/pageforge/internal/config"
	"github.com/pageforge/pageforge/internal/framework"
)

func TestNewStandardLibrary_SeedsBaselineSet(t *testing.T) {
	lib := NewStandardLibrary()

	for _, id := range []string{
		"navigation", "hero", "content-block", "image-block",
		"action-button", "signup-form", "page-footer",
	} {
		_, ok := lib.Get(id)
		require.True(t, ok, "baseline definition %q missing", id)
	}
}

func TestRegister_UpsertsById(t *testing.T) {
	lib := NewLibrary()

	lib.Register(Definition{ID: "banner", Name: "First", Template: "<div>one</div>"})
	lib.Register(Definition{ID: "banner", Name: "Second", Template: "<div>two</div>"})

	def, ok := lib.Get("banner")
	require.True(t, ok)
	require.Equal(t, "Second", def.Name)
	require.Len(t, lib.List(), 1)
}

func TestRegister_IgnoresEmptyID(t *testing.T) {
	lib := NewLibrary()
	lib.Register(Definition{Name: "anonymous"})
	require.Empty(t, lib.List())
}

func TestListByCategory(t *testing.T) {
	lib := NewStandardLibrary()

	structure := lib.ListByCategory("structure")
	require.Len(t, structure, 2)
	require.Equal(t, "navigation", structure[0].ID)
	require.Equal(t, "page-footer", structure[1].ID)

	require.Empty(t, lib.ListByCategory("nonexistent"))
	require.Equal(t, []string{"content", "interaction", "structure"}, lib.Categories())
}

func TestEveryTypeBindingResolvesToSeededDefinition(t *testing.T) {
	lib := NewStandardLibrary()
	for _, ct := range config.ComponentTypes() {
		id, ok := DefinitionIDForType(ct)
		require.True(t, ok, "component type %q has no binding", ct)
		_, ok = lib.Get(id)
		require.True(t, ok, "binding %q -> %q not seeded", ct, id)
	}
}

func TestStyleFor_FallsBackToVanilla(t *testing.T) {
	def := Definition{
		ID: "x",
		Styles: map[framework.Framework]string{
			framework.Vanilla: ".x { color: red; }",
		},
	}
	require.Equal(t, ".x { color: red; }", def.StyleFor(framework.Tailwind))
}
