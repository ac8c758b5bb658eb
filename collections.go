package wildcard

import (
	"maps"
	"slices"
)

// The functions below apply a Pattern to the keys of a map. A set of strings
// is simply a map[string]struct{}. None of them synchronize; callers that
// share the map must hold the writer lock for Delete, DeleteValue, Replace,
// ReplaceValue and Compute.
//
// Results that contain values are ordered by key so they are deterministic.

// ContainsKey reports whether any key of m matches p. An exact key equal to
// p.String() is checked first.
func ContainsKey[M ~map[string]V, V any](m M, p *Pattern) bool {
	if p == nil {
		return false
	}
	if _, ok := m[p.String()]; ok {
		return true
	}
	for k := range m {
		if p.Match(k) {
			return true
		}
	}
	return false
}

// Keys returns the sorted keys of m that match p.
func Keys[M ~map[string]V, V any](m M, p *Pattern) []string {
	var keys []string
	for k := range m {
		if p.Match(k) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// Values returns the values of every key of m matching p.
func Values[M ~map[string]V, V any](m M, p *Pattern) []V {
	keys := Keys(m, p)
	if len(keys) == 0 {
		return nil
	}
	vals := make([]V, 0, len(keys))
	for _, k := range keys {
		vals = append(vals, m[k])
	}
	return vals
}

// Delete removes every entry of m whose key matches p and returns the removed
// values.
func Delete[M ~map[string]V, V any](m M, p *Pattern) []V {
	removed := Values(m, p)
	if len(removed) > 0 {
		maps.DeleteFunc(m, func(k string, _ V) bool { return p.Match(k) })
	}
	return removed
}

// DeleteValue removes every entry of m whose key matches p and whose value
// equals v. It reports whether anything was removed.
func DeleteValue[M ~map[string]V, V comparable](m M, p *Pattern, v V) bool {
	n := len(m)
	maps.DeleteFunc(m, func(k string, cur V) bool {
		return cur == v && p.Match(k)
	})
	return len(m) < n
}

// Replace sets every entry of m whose key matches p to v and returns the old
// values.
func Replace[M ~map[string]V, V any](m M, p *Pattern, v V) []V {
	keys := Keys(m, p)
	if len(keys) == 0 {
		return nil
	}
	old := make([]V, 0, len(keys))
	for _, k := range keys {
		old = append(old, m[k])
		m[k] = v
	}
	return old
}

// ReplaceValue sets entries whose key matches p and whose value equals oldValue
// to newValue. It reports whether any entry changed.
func ReplaceValue[M ~map[string]V, V comparable](m M, p *Pattern, oldValue, newValue V) bool {
	replaced := false
	for _, k := range Keys(m, p) {
		if m[k] == oldValue {
			m[k] = newValue
			replaced = true
		}
	}
	return replaced
}

// Compute remaps every entry whose key matches p. fn receives the key and its
// current value and returns the new value plus whether to keep the entry;
// returning false deletes it. The kept new values are returned.
func Compute[M ~map[string]V, V any](m M, p *Pattern, fn func(key string, v V) (V, bool)) []V {
	var kept []V
	for _, k := range Keys(m, p) {
		nv, ok := fn(k, m[k])
		if !ok {
			delete(m, k)
			continue
		}
		m[k] = nv
		kept = append(kept, nv)
	}
	return kept
}
