package check

import (
	"fmt"
	"reflect"
	"time"
)

// ValueAssert is the assertion family for arbitrary values.
type ValueAssert interface {
	As(format string, args ...any) ValueAssert
	WithFailMessage(format string, args ...any) ValueAssert
	UsingComparator(scope string, eq Comparator) ValueAssert

	IsEqualTo(expected any) ValueAssert
	IsNotEqualTo(expected any) ValueAssert
	IsNil() ValueAssert
	IsNotNil() ValueAssert
	Satisfies(fn func(v any) error) ValueAssert

	AsString() StringAssert
	AsNumber() NumberAssert
	AsSlice() SliceAssert
	AsMap() MapAssert
	AsError() ErrorAssert
	AsTime() TimeAssert
	Field(name string) ValueAssert

	Value() any
}

type valueAssert struct {
	base
	actual any
}

// That builds a ValueAssert over any value.
func That(v any, opts ...Option) ValueAssert {
	return &valueAssert{base: newBase(opts...), actual: v}
}

func (a *valueAssert) As(format string, args ...any) ValueAssert {
	a.setLabel(format, args...)
	return a
}

func (a *valueAssert) WithFailMessage(format string, args ...any) ValueAssert {
	a.setOverride(format, args...)
	return a
}

func (a *valueAssert) UsingComparator(scope string, eq Comparator) ValueAssert {
	a.comps.Register(scope, eq)
	return a
}

func (a *valueAssert) IsEqualTo(expected any) ValueAssert {
	if !a.equal(a.actual, expected) {
		a.fail("expected %s, got %s", a.repr(expected), a.repr(a.actual))
	}
	return a
}

func (a *valueAssert) IsNotEqualTo(expected any) ValueAssert {
	if a.equal(a.actual, expected) {
		a.fail("expected not to equal %s", a.repr(expected))
	}
	return a
}

func (a *valueAssert) IsNil() ValueAssert {
	if !isNilValue(a.actual) {
		a.fail("expected nil, got %s", a.repr(a.actual))
	}
	return a
}

func (a *valueAssert) IsNotNil() ValueAssert {
	if isNilValue(a.actual) {
		a.fail("expected a value, got nil")
	}
	return a
}

func (a *valueAssert) Satisfies(fn func(v any) error) ValueAssert {
	if err := fn(a.actual); err != nil {
		a.failCause(err, "%s", err.Error())
	}
	return a
}

func (a *valueAssert) AsString() StringAssert {
	s, ok := a.actual.(string)
	if !ok {
		a.fail("expected a string, got %T", a.actual)
	}
	return &stringAssert{base: a.child(), actual: s}
}

func (a *valueAssert) AsNumber() NumberAssert {
	n, ok := toFloat64(a.actual)
	if !ok {
		a.fail("expected a number, got %T", a.actual)
	}
	return &numberAssert{base: a.child(), actual: n}
}

func (a *valueAssert) AsSlice() SliceAssert {
	items, ok := toSlice(a.actual)
	if !ok {
		a.fail("expected a slice, got %T", a.actual)
	}
	return &sliceAssert{base: a.child(), actual: items}
}

func (a *valueAssert) AsMap() MapAssert {
	m, ok := a.actual.(map[string]any)
	if !ok {
		a.fail("expected a map, got %T", a.actual)
	}
	return &mapAssert{base: a.child(), actual: m}
}

func (a *valueAssert) AsError() ErrorAssert {
	err, ok := a.actual.(error)
	if !ok {
		a.fail("expected an error, got %T", a.actual)
	}
	return &errorAssert{base: a.child(), actual: err}
}

func (a *valueAssert) AsTime() TimeAssert {
	t, ok := a.actual.(time.Time)
	if !ok {
		a.fail("expected a time, got %T", a.actual)
	}
	return &timeAssert{base: a.child(), actual: t}
}

// Field navigates to a named field of a map or struct value, dereferencing
// pointers along the way.
func (a *valueAssert) Field(name string) ValueAssert {
	v, err := extractField(a.actual, name)
	if err != nil {
		a.fail("%s", err.Error())
	}
	return &valueAssert{base: a.child(), actual: v}
}

func (a *valueAssert) Value() any {
	return a.actual
}

func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func toSlice(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

func extractField(v any, name string) (any, error) {
	if m, ok := v.(map[string]any); ok {
		fv, ok := m[name]
		if !ok {
			return nil, fmt.Errorf("no field %q in map", name)
		}
		return fv, nil
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, fmt.Errorf("cannot extract field %q from nil pointer", name)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot extract field %q from %T", name, v)
	}
	fv := rv.FieldByName(name)
	if !fv.IsValid() {
		return nil, fmt.Errorf("no field %q in %T", name, v)
	}
	if !fv.CanInterface() {
		return nil, fmt.Errorf("field %q in %T is unexported", name, v)
	}
	return fv.Interface(), nil
}
