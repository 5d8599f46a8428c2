package check

import "sort"

// MapAssert is the assertion family for string-keyed maps.
type MapAssert interface {
	As(format string, args ...any) MapAssert
	WithFailMessage(format string, args ...any) MapAssert
	UsingComparator(scope string, eq Comparator) MapAssert

	IsEmpty() MapAssert
	IsNotEmpty() MapAssert
	HasSize(n int) MapAssert
	ContainsKey(key string) MapAssert
	DoesNotContainKey(key string) MapAssert
	ContainsEntry(key string, value any) MapAssert

	Key(key string) ValueAssert
	Keys() SliceAssert
	MapValues() SliceAssert
	Size() NumberAssert

	Entries() map[string]any
}

type mapAssert struct {
	base
	actual map[string]any
}

// Map builds a MapAssert.
func Map(m map[string]any, opts ...Option) MapAssert {
	return &mapAssert{base: newBase(opts...), actual: m}
}

func (a *mapAssert) As(format string, args ...any) MapAssert {
	a.setLabel(format, args...)
	return a
}

func (a *mapAssert) WithFailMessage(format string, args ...any) MapAssert {
	a.setOverride(format, args...)
	return a
}

func (a *mapAssert) UsingComparator(scope string, eq Comparator) MapAssert {
	a.comps.Register(scope, eq)
	return a
}

func (a *mapAssert) IsEmpty() MapAssert {
	if len(a.actual) != 0 {
		a.fail("expected empty map, got %d entries", len(a.actual))
	}
	return a
}

func (a *mapAssert) IsNotEmpty() MapAssert {
	if len(a.actual) == 0 {
		a.fail("expected non-empty map")
	}
	return a
}

func (a *mapAssert) HasSize(n int) MapAssert {
	if len(a.actual) != n {
		a.fail("expected size %d, got %d", n, len(a.actual))
	}
	return a
}

func (a *mapAssert) ContainsKey(key string) MapAssert {
	if _, ok := a.actual[key]; !ok {
		a.fail("expected map to contain key %q", key)
	}
	return a
}

func (a *mapAssert) DoesNotContainKey(key string) MapAssert {
	if _, ok := a.actual[key]; ok {
		a.fail("expected map not to contain key %q", key)
	}
	return a
}

func (a *mapAssert) ContainsEntry(key string, value any) MapAssert {
	v, ok := a.actual[key]
	if !ok {
		a.fail("expected map to contain key %q", key)
	}
	if !a.equal(v, value) {
		a.fail("expected key %q to map to %s, got %s", key, a.repr(value), a.repr(v))
	}
	return a
}

// Key navigates to the value stored under key; an absent key is a
// navigation failure.
func (a *mapAssert) Key(key string) ValueAssert {
	v, ok := a.actual[key]
	if !ok {
		a.fail("no key %q in map", key)
	}
	return &valueAssert{base: a.child(), actual: v}
}

// Keys navigates to the sorted key set.
func (a *mapAssert) Keys() SliceAssert {
	keys := make([]string, 0, len(a.actual))
	for k := range a.actual {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	items := make([]any, len(keys))
	for i, k := range keys {
		items[i] = k
	}
	return &sliceAssert{base: a.child(), actual: items}
}

// MapValues navigates to the values in sorted key order.
func (a *mapAssert) MapValues() SliceAssert {
	keys := make([]string, 0, len(a.actual))
	for k := range a.actual {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	items := make([]any, len(keys))
	for i, k := range keys {
		items[i] = a.actual[k]
	}
	return &sliceAssert{base: a.child(), actual: items}
}

func (a *mapAssert) Size() NumberAssert {
	return &numberAssert{base: a.child(), actual: float64(len(a.actual))}
}

func (a *mapAssert) Entries() map[string]any {
	return a.actual
}
