package data

import (
	"fmt"
	"sync/atomic"
)

// ValidationResult is the outcome of validating one loosely-typed template
// entry. Data is always a fully-defaulted, usable record, even when the
// entry is invalid, so permissive pipelines can choose to proceed. Errors
// reject the entry from registration; warnings only mean a default was
// substituted.
type ValidationResult[T any] struct {
	Data     T
	Errors   []string
	Warnings []string
}

// IsValid reports whether the entry may be registered.
func (r *ValidationResult[T]) IsValid() bool { return len(r.Errors) == 0 }

func (r *ValidationResult[T]) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult[T]) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// syntheticIDCounter disambiguates repeated id-less entries in logs.
var syntheticIDCounter atomic.Int64

func syntheticID(kind string) string {
	return fmt.Sprintf("unknown_%s_%d", kind, syntheticIDCounter.Add(1))
}

// asObject coerces a decoded JSON value to an object.
func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// strField reads a string field. Returns ("", false) when absent or not a
// string.
func strField(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// numField reads a numeric field. JSON numbers decode as float64.
func numField(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

func boolField(m map[string]any, key string) (bool, bool) {
	v, ok := m[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// objField reads an object-typed field; a present but malformed value is
// reported through the second return.
func objField(m map[string]any, key string) (obj map[string]any, present, valid bool) {
	v, ok := m[key]
	if !ok {
		return nil, false, false
	}
	obj, ok = asObject(v)
	return obj, true, ok
}

// strSliceField reads an array-of-strings field, skipping non-string
// elements.
func strSliceField(m map[string]any, key string) (out []string, present, valid bool) {
	v, ok := m[key]
	if !ok {
		return nil, false, false
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, true, false
	}
	for _, e := range raw {
		if s, ok := e.(string); ok {
			out = append(out, s)
		}
	}
	return out, true, true
}

// resolveID extracts the mandatory id field, preferring the separately
// supplied id. A missing id is a hard error, but a synthetic id is still
// assigned so the caller can log meaningfully.
func resolveID[T any](m map[string]any, suppliedID, kind string, res *ValidationResult[T]) string {
	if suppliedID != "" {
		return suppliedID
	}
	if id, ok := strField(m, "id"); ok && id != "" {
		return id
	}
	res.errorf("missing required field 'id'")
	return syntheticID(kind)
}

// statModifiers parses a map of attribute -> {flat, percent}. Malformed
// entries are dropped with a warning appended to warnings.
func statModifiers[T any](m map[string]any, key string, res *ValidationResult[T]) map[string]StatModifier {
	out := map[string]StatModifier{}
	obj, present, valid := objField(m, key)
	if !present {
		return out
	}
	if !valid {
		res.warnf("field %q is not an object, using empty map", key)
		return out
	}
	for attr, v := range obj {
		entry, ok := asObject(v)
		if !ok {
			res.warnf("%s entry %q is not an object, skipped", key, attr)
			continue
		}
		var mod StatModifier
		if f, ok := numField(entry, "flat"); ok {
			mod.Flat = f
		}
		if p, ok := numField(entry, "percent"); ok {
			mod.Percent = p
		}
		out[attr] = mod
	}
	return out
}
