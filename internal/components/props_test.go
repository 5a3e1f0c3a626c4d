package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func testSchemaLibrary() *Library {
	lib := NewLibrary()
	lib.Register(Definition{
		ID:       "card",
		Name:     "Card",
		Template: "<div>{{title}}</div>",
		Props: []PropSpec{
			{Name: "title", Type: PropString, Required: true},
			{Name: "columns", Type: PropNumber, Validation: &PropValidation{Min: floatPtr(1), Max: floatPtr(4)}},
			{Name: "featured", Type: PropBoolean},
			{Name: "tags", Type: PropArray},
			{Name: "meta", Type: PropObject},
			{Name: "tone", Type: PropString, Validation: &PropValidation{Options: []string{"light", "dark"}}},
			{Name: "sku", Type: PropString, Validation: &PropValidation{Pattern: `^[A-Z]{3}-\d{4}$`}},
		},
	})
	return lib
}

func TestValidateProps_RequiredStringGivenNonString(t *testing.T) {
	lib := testSchemaLibrary()

	result := lib.ValidateProps("card", map[string]any{"title": 123})
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	require.Equal(t, "title", result.Errors[0].Property)
	require.Equal(t, "string", result.Errors[0].Expected)
	require.Contains(t, result.Errors[0].Message, "title")
}

func TestValidateProps_RequiredMissing(t *testing.T) {
	lib := testSchemaLibrary()

	result := lib.ValidateProps("card", map[string]any{})
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	require.Equal(t, "title", result.Errors[0].Property)
	require.Contains(t, result.Errors[0].Message, "required")
}

func TestValidateProps_ValidInput(t *testing.T) {
	lib := testSchemaLibrary()

	result := lib.ValidateProps("card", map[string]any{
		"title":    "Hello",
		"columns":  2,
		"featured": true,
		"tags":     []any{"new"},
		"meta":     map[string]any{"k": "v"},
		"tone":     "dark",
		"sku":      "ABC-1234",
	})
	require.True(t, result.Valid)
	require.Empty(t, result.Errors)
}

func TestValidateProps_NumericBounds(t *testing.T) {
	lib := testSchemaLibrary()

	result := lib.ValidateProps("card", map[string]any{"title": "x", "columns": 9})
	require.False(t, result.Valid)
	require.Equal(t, "columns", result.Errors[0].Property)
	require.Contains(t, result.Errors[0].Message, "maximum")

	result = lib.ValidateProps("card", map[string]any{"title": "x", "columns": 0.5})
	require.False(t, result.Valid)
	require.Contains(t, result.Errors[0].Message, "minimum")
}

func TestValidateProps_PatternAndOptions(t *testing.T) {
	lib := testSchemaLibrary()

	result := lib.ValidateProps("card", map[string]any{"title": "x", "sku": "abc"})
	require.False(t, result.Valid)
	require.Equal(t, "sku", result.Errors[0].Property)

	result = lib.ValidateProps("card", map[string]any{"title": "x", "tone": "pastel"})
	require.False(t, result.Valid)
	require.Equal(t, "tone", result.Errors[0].Property)
	require.Contains(t, result.Errors[0].Message, "one of")
}

func TestValidateProps_TypeTags(t *testing.T) {
	lib := testSchemaLibrary()

	cases := []struct {
		prop  string
		value any
	}{
		{"featured", "yes"},
		{"tags", "single"},
		{"meta", []any{"not", "a", "map"}},
		{"columns", "three"},
	}
	for _, tc := range cases {
		result := lib.ValidateProps("card", map[string]any{"title": "x", tc.prop: tc.value})
		require.False(t, result.Valid, "prop %s with %v should fail", tc.prop, tc.value)
		require.Equal(t, tc.prop, result.Errors[0].Property)
	}
}

func TestValidateProps_UnknownDefinition(t *testing.T) {
	lib := testSchemaLibrary()

	result := lib.ValidateProps("ghost", nil)
	require.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	require.Contains(t, result.Errors[0].Message, "ghost")
}

func TestValidateProps_WarnsOnLoopMarkers(t *testing.T) {
	lib := NewLibrary()
	lib.Register(Definition{
		ID:       "looper",
		Template: "<ul>{{#each items}}<li>{{name}}</li>{{/each}}</ul>",
	})

	result := lib.ValidateProps("looper", nil)
	require.True(t, result.Valid)
	require.NotEmpty(t, result.Warnings)
	require.Contains(t, result.Warnings[0], "looper")
}

func TestValidateProps_BaselineDefaultsPassOwnSchema(t *testing.T) {
	lib := NewStandardLibrary()
	for _, def := range lib.List() {
		props := map[string]any{}
		for _, spec := range def.Props {
			if v := spec.DefaultValue(); v != nil {
				props[spec.Name] = v
			}
		}
		if _, ok := props["src"]; !ok && def.ID == "image-block" {
			props["src"] = "https://example.com/a.png"
		}
		result := lib.ValidateProps(def.ID, props)
		require.True(t, result.Valid, "definition %s defaults invalid: %+v", def.ID, result.Errors)
	}
}
