package generator

import (
	"encoding/json"
	"fmt"

	"github.com/pageforge/pageforge/internal/config"
)

// mergeOverrides deep-merges override values onto a template's embedded
// configuration and returns a fresh configuration; the template config is
// never mutated. Merging runs over the JSON form so override fragments use
// the same keys as serialized configurations.
func mergeOverrides(base config.PageConfiguration, overrides map[string]any) (*config.PageConfiguration, error) {
	merged, err := configToMap(base)
	if err != nil {
		return nil, err
	}
	mergeValues(merged, overrides)
	return mapToConfig(merged)
}

// mergeValues deep-merges src into dst (map[string]any).
// - Maps: merged recursively
// - Slices & scalars: replaced.
func mergeValues(dst, src map[string]any) {
	if src == nil {
		return
	}
	for k, v := range src {
		if mv, ok := v.(map[string]any); ok {
			if existing, ok2 := dst[k].(map[string]any); ok2 {
				mergeValues(existing, mv)
			} else {
				cp := map[string]any{}
				mergeValues(cp, mv)
				dst[k] = cp
			}
			continue
		}
		dst[k] = v
	}
}

func configToMap(cfg config.PageConfiguration) (map[string]any, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encode template configuration: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decode template configuration: %w", err)
	}
	return m, nil
}

func mapToConfig(m map[string]any) (*config.PageConfiguration, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode merged configuration: %w", err)
	}
	var cfg config.PageConfiguration
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("decode merged configuration: %w", err)
	}
	return &cfg, nil
}
