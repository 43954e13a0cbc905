// internal/registry/fields.go
package registry

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

// Field helpers shared by every item type. Payloads arrive as decoded JSON
// (map[string]interface{}); every shape is closed, so unknown keys are a hard
// error, not ignored.

func rejectExtraKeys(m map[string]interface{}, allowed map[string]bool, path string, errs *ErrorList) {
	extra := make([]string, 0)
	for k := range m {
		if !allowed[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		errs.Add(path+"."+k, KindExtraForbidden, "unknown field %q", k)
	}
}

func requireUUID(m map[string]interface{}, key, path string, errs *ErrorList) (uuid.UUID, bool) {
	raw, ok := m[key]
	if !ok {
		errs.Add(path+"."+key, KindMissingRequired, "field %q is required", key)
		return uuid.Nil, false
	}
	return asUUID(raw, path+"."+key, errs)
}

func optionalUUID(m map[string]interface{}, key, path string, errs *ErrorList) (uuid.UUID, bool) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return uuid.Nil, false
	}
	return asUUID(raw, path+"."+key, errs)
}

func asUUID(raw interface{}, path string, errs *ErrorList) (uuid.UUID, bool) {
	s, ok := raw.(string)
	if !ok {
		errs.Add(path, KindWrongType, "expected a UUID string")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s)
	if err != nil {
		errs.Add(path, KindInvalid, "not a valid UUID: %q", s)
		return uuid.Nil, false
	}
	return id, true
}

func requireString(m map[string]interface{}, key, path string, errs *ErrorList) (string, bool) {
	raw, ok := m[key]
	if !ok {
		errs.Add(path+"."+key, KindMissingRequired, "field %q is required", key)
		return "", false
	}
	s, ok := raw.(string)
	if !ok {
		errs.Add(path+"."+key, KindWrongType, "expected a string")
		return "", false
	}
	return s, true
}

func requireObject(m map[string]interface{}, key, path string, errs *ErrorList) (map[string]interface{}, bool) {
	raw, ok := m[key]
	if !ok {
		errs.Add(path+"."+key, KindMissingRequired, "field %q is required", key)
		return nil, false
	}
	obj, ok := raw.(map[string]interface{})
	if !ok {
		errs.Add(path+"."+key, KindWrongType, "expected an object")
		return nil, false
	}
	return obj, true
}

// optionalObject tolerates a missing or null value and rejects anything else
// that is not an object.
func optionalObject(m map[string]interface{}, key, path string, errs *ErrorList) {
	raw, ok := m[key]
	if !ok || raw == nil {
		return
	}
	if _, isObj := raw.(map[string]interface{}); !isObj {
		errs.Add(path+"."+key, KindWrongType, "expected an object")
	}
}

// asNumber accepts any JSON number. Decoded JSON yields float64; integers
// from other decoders are tolerated.
func asNumber(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

// asInt accepts a JSON number with no fractional part.
func asInt(raw interface{}) (int, bool) {
	f, ok := asNumber(raw)
	if !ok {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}
