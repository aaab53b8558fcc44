package kernel

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// OptionsKind tags the state of an Options value.
type OptionsKind int

const (
	// OptionsDefault means no options were configured ("use default").
	OptionsDefault OptionsKind = iota
	// OptionsDisabled means the extension was explicitly turned off.
	OptionsDisabled
	// OptionsEnabled means the extension is on, with or without a config map.
	OptionsEnabled
)

func (k OptionsKind) String() string {
	switch k {
	case OptionsDefault:
		return "default"
	case OptionsDisabled:
		return "disabled"
	case OptionsEnabled:
		return "enabled"
	default:
		return fmt.Sprintf("OptionsKind(%d)", int(k))
	}
}

// Options is the configuration attached to a rule, filter rule or plugin.
//
// Users write one of three shapes: nothing at all, a boolean, or an object.
// Options keeps those apart so equality can tell `true` from `{}` and
// "not configured" from "enabled".
//
// The zero value is Default().
type Options struct {
	kind   OptionsKind
	config map[string]any
}

// Default returns options for an extension that has no configuration entry.
func Default() Options {
	return Options{kind: OptionsDefault}
}

// Disabled returns options equivalent to `false`.
func Disabled() Options {
	return Options{kind: OptionsDisabled}
}

// Enabled returns options equivalent to `true`.
func Enabled() Options {
	return Options{kind: OptionsEnabled}
}

// EnabledWith returns options equivalent to an object. A nil map is treated
// as an empty object, not as `true`. The map is copied; later changes to it
// do not affect the options.
func EnabledWith(config map[string]any) Options {
	return Options{kind: OptionsEnabled, config: copyConfig(config)}
}

// OptionsFromValue converts a decoded configuration value into Options.
// Accepted values are nil, bool and map[string]any.
func OptionsFromValue(v any) (Options, error) {
	switch val := v.(type) {
	case nil:
		return Default(), nil
	case bool:
		if val {
			return Enabled(), nil
		}
		return Disabled(), nil
	case map[string]any:
		return EnabledWith(val), nil
	case Options:
		return val, nil
	default:
		return Options{}, fmt.Errorf("%w: got %T", ErrInvalidOptions, v)
	}
}

// Kind returns the state tag.
func (o Options) Kind() OptionsKind {
	return o.kind
}

// IsDefault reports whether no options were configured.
func (o Options) IsDefault() bool {
	return o.kind == OptionsDefault
}

// Config returns a copy of the object form of the options, or nil for
// `true`, `false` and default.
func (o Options) Config() map[string]any {
	if o.config == nil {
		return nil
	}
	return copyConfig(o.config)
}

// Value returns the raw configuration value: nil, false, true or a copy of
// the map.
func (o Options) Value() any {
	switch o.kind {
	case OptionsDisabled:
		return false
	case OptionsEnabled:
		if o.config != nil {
			return copyConfig(o.config)
		}
		return true
	default:
		return nil
	}
}

// Normalize collapses the default state into `true`. Every other value is
// returned unchanged.
func (o Options) Normalize() Options {
	if o.kind == OptionsDefault {
		return Enabled()
	}
	return o
}

// IsEnabled reports whether the normalized options are anything but `false`.
func (o Options) IsEnabled() bool {
	return o.Normalize().kind != OptionsDisabled
}

// Equal compares two raw options. Objects are compared recursively with
// strict types at every leaf, so 1 and "1" differ, as do int and float64.
func (o Options) Equal(other Options) bool {
	if o.kind != other.kind {
		return false
	}
	if (o.config == nil) != (other.config == nil) {
		return false
	}
	return cmp.Equal(o.config, other.config, exportAll)
}

// exportAll lets cmp compare unexported struct fields instead of panicking.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Get returns a copy of a single config value.
func (o Options) Get(key string) (any, bool) {
	if o.config == nil {
		return nil, false
	}
	v, ok := o.config[key]
	return copyValue(v), ok
}

// GetInt returns an integer config value, or def when missing or not a number.
func (o Options) GetInt(key string, def int) int {
	v, ok := o.Get(key)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return def
	}
}

// GetStrings returns a list-of-strings config value. Non-string items are skipped.
func (o Options) GetStrings(key string) []string {
	v, ok := o.Get(key)
	if !ok {
		return nil
	}
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

func (o Options) String() string {
	if o.kind == OptionsDefault {
		return "default"
	}
	return fmt.Sprintf("%v", o.Value())
}

// copyConfig copies the maps and slices of a decoded config. Leaf values,
// structs included, are copied by value; pointers are shared.
func copyConfig(config map[string]any) map[string]any {
	out := make(map[string]any, len(config))
	for k, v := range config {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return copyConfig(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = copyValue(item)
		}
		return out
	case []string:
		return append([]string(nil), val...)
	default:
		return v
	}
}
