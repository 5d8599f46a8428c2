package check

import (
	"fmt"
	"reflect"
	"strconv"
)

// Comparator reports whether two values are considered equal.
type Comparator func(a, b any) bool

// Registry maps a scope to the comparator used for values matching it. A
// scope is either a dynamic type name as printed by %T (e.g. "string",
// "main.Name") or a caller-chosen field path. Registries are not safe for
// concurrent mutation; clone per chain instead of sharing.
type Registry struct {
	entries map[string]Comparator
}

func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Comparator)}
}

// Register adds or replaces the comparator for scope.
func (r *Registry) Register(scope string, eq Comparator) {
	if eq == nil {
		return
	}
	r.entries[scope] = eq
}

// Lookup returns the comparator registered for scope, if any.
func (r *Registry) Lookup(scope string) (Comparator, bool) {
	eq, ok := r.entries[scope]
	return eq, ok
}

// Clone returns an independent copy of the registry.
func (r *Registry) Clone() *Registry {
	c := NewRegistry()
	for scope, eq := range r.entries {
		c.entries[scope] = eq
	}
	return c
}

// Len reports the number of registered scopes.
func (r *Registry) Len() int {
	return len(r.entries)
}

// equal applies registered comparators first (by the actual value's dynamic
// type), then falls back to deep equality with lenient numeric coercion.
func (b *base) equal(actual, expected any) bool {
	if b.comps != nil && actual != nil {
		if eq, ok := b.comps.Lookup(fmt.Sprintf("%T", actual)); ok {
			return eq(actual, expected)
		}
	}
	return looseEqual(actual, expected)
}

func looseEqual(actual, expected any) bool {
	if reflect.DeepEqual(actual, expected) {
		return true
	}
	actualNum, aOk := toFloat64(actual)
	expectedNum, eOk := toFloat64(expected)
	return aOk && eOk && actualNum == expectedNum
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case int16:
		return float64(n), true
	case int8:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}
