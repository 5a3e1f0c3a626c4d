// Package components implements the component definition registry: reusable
// blueprints carrying framework-neutral template text, a prop schema and
// per-framework style fragments. Instances are rendered by plain placeholder
// substitution; props are validated against the schema at the boundary and
// treated as opaque data afterwards.
package components

import (
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
)

// PropType tags the runtime type a prop value must conform to.
type PropType string

const (
	PropString  PropType = "string"
	PropNumber  PropType = "number"
	PropBoolean PropType = "boolean"
	PropArray   PropType = "array"
	PropObject  PropType = "object"
)

// PropValidation narrows the accepted values of a prop beyond its type.
type PropValidation struct {
	Min     *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max     *float64 `json:"max,omitempty" yaml:"max,omitempty"`
	Pattern string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	Options []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// PropSpec declares one prop of a component definition. DynamicDefault, when
// set, is evaluated at render time so defaults never bake in process start-up
// state such as the wall clock.
type PropSpec struct {
	Name           string          `json:"name" yaml:"name"`
	Type           PropType        `json:"type" yaml:"type"`
	Required       bool            `json:"required,omitempty" yaml:"required,omitempty"`
	Default        any             `json:"default,omitempty" yaml:"default,omitempty"`
	DynamicDefault func() any      `json:"-" yaml:"-"`
	Validation     *PropValidation `json:"validation,omitempty" yaml:"validation,omitempty"`
}

// DefaultValue resolves the spec's default at call time.
func (s PropSpec) DefaultValue() any {
	if s.DynamicDefault != nil {
		return s.DynamicDefault()
	}
	return s.Default
}

// PropError names one offending property in a props validation report.
type PropError struct {
	Property string `json:"property"`
	Message  string `json:"message"`
	Expected string `json:"expected,omitempty"`
}

// PropsResult is the outcome of validating instance props against a
// definition's schema.
type PropsResult struct {
	Valid    bool        `json:"valid"`
	Errors   []PropError `json:"errors,omitempty"`
	Warnings []string    `json:"warnings,omitempty"`
}

func matchesType(v any, t PropType) bool {
	if v == nil {
		return false
	}
	switch t {
	case PropString:
		_, ok := v.(string)
		return ok
	case PropBoolean:
		_, ok := v.(bool)
		return ok
	case PropNumber:
		switch v.(type) {
		case int, int32, int64, float32, float64:
			return true
		}
		return false
	case PropArray:
		return reflect.ValueOf(v).Kind() == reflect.Slice
	case PropObject:
		return reflect.ValueOf(v).Kind() == reflect.Map
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// propString renders a prop value as substitution text. Strings pass through,
// numbers drop trailing zero fractions, composites fall back to JSON.
func propString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}

func validateValue(spec PropSpec, v any) []PropError {
	var errs []PropError

	if !matchesType(v, spec.Type) {
		errs = append(errs, PropError{
			Property: spec.Name,
			Message:  fmt.Sprintf("property %q must be of type %s", spec.Name, spec.Type),
			Expected: string(spec.Type),
		})
		return errs
	}

	val := spec.Validation
	if val == nil {
		return nil
	}

	if n, ok := toFloat(v); ok {
		if val.Min != nil && n < *val.Min {
			errs = append(errs, PropError{
				Property: spec.Name,
				Message:  fmt.Sprintf("property %q is below the minimum %v", spec.Name, *val.Min),
			})
		}
		if val.Max != nil && n > *val.Max {
			errs = append(errs, PropError{
				Property: spec.Name,
				Message:  fmt.Sprintf("property %q is above the maximum %v", spec.Name, *val.Max),
			})
		}
	}

	if s, ok := v.(string); ok && val.Pattern != "" {
		re, err := regexp.Compile(val.Pattern)
		if err != nil {
			errs = append(errs, PropError{
				Property: spec.Name,
				Message:  fmt.Sprintf("property %q has an invalid validation pattern: %v", spec.Name, err),
			})
		} else if !re.MatchString(s) {
			errs = append(errs, PropError{
				Property: spec.Name,
				Message:  fmt.Sprintf("property %q does not match pattern %s", spec.Name, val.Pattern),
			})
		}
	}

	if len(val.Options) > 0 {
		rendered := propString(v)
		allowed := false
		for _, opt := range val.Options {
			if rendered == opt {
				allowed = true
				break
			}
		}
		if !allowed {
			errs = append(errs, PropError{
				Property: spec.Name,
				Message:  fmt.Sprintf("property %q must be one of %v", spec.Name, val.Options),
			})
		}
	}

	return errs
}
