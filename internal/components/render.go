package components

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/pageforge/pageforge/internal/framework"
)

// RenderInstance renders one component instance: definition lookup by id,
// prop defaults for absent values, {{name}} placeholder substitution, then
// class-token expansion through the framework's remap table. Unknown ids
// produce an explanatory comment containing the id; rendering never fails.
//
// Props are substituted before class tokens so a prop value may select a
// class token (e.g. variant "primary" completing {{class:button-primary}}).
func (l *Library) RenderInstance(id string, fw framework.Framework, props map[string]any) string {
	def, ok := l.Get(id)
	if !ok {
		return fmt.Sprintf("<!-- component %q is not registered -->", id)
	}

	effective := make(map[string]any, len(def.Props)+len(props))
	for _, spec := range def.Props {
		if v := spec.DefaultValue(); v != nil {
			effective[spec.Name] = v
		}
	}
	for k, v := range props {
		if v != nil {
			effective[k] = v
		}
	}

	if isMarkdown(effective) {
		if content, ok := effective["content"].(string); ok {
			effective["content"] = renderMarkdown(content)
		}
	}

	markup := def.Template
	if strings.Contains(markup, "{{fieldsMarkup}}") {
		if _, present := effective["fieldsMarkup"]; !present {
			effective["fieldsMarkup"] = FormFieldsMarkup(effective["fields"])
		}
	}

	// Sorted so a prop value that itself contains a {{token}} resolves the
	// same way on every run.
	names := make([]string, 0, len(effective))
	for name := range effective {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		markup = strings.ReplaceAll(markup, "{{"+name+"}}", propString(effective[name]))
	}

	return framework.ExpandClasses(fw, markup)
}

func isMarkdown(props map[string]any) bool {
	format, _ := props["format"].(string)
	return strings.EqualFold(format, "markdown")
}

func renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(content), &buf); err != nil {
		return content
	}
	return strings.TrimSpace(buf.String())
}

// FormField is one declared input of a form component, decoded from the
// form's "fields" prop.
type FormField struct {
	Name     string
	Type     string
	Label    string
	Required bool
}

// DecodeFormFields reads a form component's fields prop: a list of objects
// with name/type/label/required keys. Entries without a name are skipped.
func DecodeFormFields(raw any) []FormField {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}

	fields := make([]FormField, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			// YAML decodes nested maps with any-typed keys.
			loose, lok := item.(map[any]any)
			if !lok {
				continue
			}
			m = make(map[string]any, len(loose))
			for k, v := range loose {
				if key, sok := k.(string); sok {
					m[key] = v
				}
			}
		}

		name, _ := m["name"].(string)
		if name == "" {
			continue
		}
		f := FormField{Name: name}
		f.Type, _ = m["type"].(string)
		if f.Type == "" {
			f.Type = "text"
		}
		f.Label, _ = m["label"].(string)
		if f.Label == "" {
			f.Label = labelFromName(name)
		}
		f.Required, _ = m["required"].(bool)
		fields = append(fields, f)
	}
	return fields
}

func labelFromName(name string) string {
	cleaned := strings.NewReplacer("_", " ", "-", " ").Replace(name)
	if cleaned == "" {
		return name
	}
	return strings.ToUpper(cleaned[:1]) + cleaned[1:]
}

// FormFieldsMarkup expands a form component's fields prop into labeled input
// groups. Tokens stay framework-neutral; class expansion happens after the
// markup is substituted into the component template.
func FormFieldsMarkup(raw any) string {
	fields := DecodeFormFields(raw)
	if len(fields) == 0 {
		return ""
	}

	var b strings.Builder
	for i, f := range fields {
		if i > 0 {
			b.WriteString("\n")
		}
		required := ""
		if f.Required {
			required = " required"
		}
		fmt.Fprintf(&b, `<div class="{{class:form-group}}">
  <label class="{{class:form-label}}" for="%s">%s</label>
  <input class="{{class:form-input}}" type="%s" id="%s" name="%s"%s>
</div>`, f.Name, f.Label, f.Type, f.Name, f.Name, required)
	}
	return b.String()
}
