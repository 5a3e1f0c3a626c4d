package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyGenerationID  = "generation_id"
	KeyPage          = "page"
	KeyPageType      = "page_type"
	KeyFramework     = "framework"
	KeyTemplate      = "template"
	KeyComponentID   = "component_id"
	KeyComponentType = "component_type"
	KeyDurationMS    = "duration_ms"
	KeyPath          = "path"
	KeyCount         = "count"
	KeyURL           = "url"
	KeyError         = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func GenerationID(id string) slog.Attr { return slog.String(KeyGenerationID, id) }
func Page(name string) slog.Attr       { return slog.String(KeyPage, name) }
func PageType(t string) slog.Attr      { return slog.String(KeyPageType, t) }
func Framework(fw string) slog.Attr    { return slog.String(KeyFramework, fw) }
func Template(id string) slog.Attr     { return slog.String(KeyTemplate, id) }
func ComponentID(id string) slog.Attr  { return slog.String(KeyComponentID, id) }
func ComponentType(t string) slog.Attr { return slog.String(KeyComponentType, t) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func URL(u string) slog.Attr           { return slog.String(KeyURL, u) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
