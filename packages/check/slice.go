package check

// SliceAssert is the assertion family for ordered collections.
type SliceAssert interface {
	As(format string, args ...any) SliceAssert
	WithFailMessage(format string, args ...any) SliceAssert
	UsingComparator(scope string, eq Comparator) SliceAssert

	IsEmpty() SliceAssert
	IsNotEmpty() SliceAssert
	HasSize(n int) SliceAssert
	Contains(expected any) SliceAssert
	DoesNotContain(expected any) SliceAssert
	ContainsExactly(expected ...any) SliceAssert
	AllSatisfy(fn func(v any) error) SliceAssert

	First() ValueAssert
	Last() ValueAssert
	Element(i int) ValueAssert
	Size() NumberAssert
	Filtered(keep func(v any) bool) SliceAssert
	Extracting(field string) SliceAssert

	Values() []any
	MustFirst() any
}

type sliceAssert struct {
	base
	actual []any
}

// Slice builds a SliceAssert over any slice or array value; non-[]any slices
// are converted element-wise.
func Slice(v any, opts ...Option) SliceAssert {
	items, ok := toSlice(v)
	a := &sliceAssert{base: newBase(opts...), actual: items}
	if !ok {
		a.fail("expected a slice, got %T", v)
	}
	return a
}

func (a *sliceAssert) As(format string, args ...any) SliceAssert {
	a.setLabel(format, args...)
	return a
}

func (a *sliceAssert) WithFailMessage(format string, args ...any) SliceAssert {
	a.setOverride(format, args...)
	return a
}

func (a *sliceAssert) UsingComparator(scope string, eq Comparator) SliceAssert {
	a.comps.Register(scope, eq)
	return a
}

func (a *sliceAssert) IsEmpty() SliceAssert {
	if len(a.actual) != 0 {
		a.fail("expected empty slice, got %d items", len(a.actual))
	}
	return a
}

func (a *sliceAssert) IsNotEmpty() SliceAssert {
	if len(a.actual) == 0 {
		a.fail("expected non-empty slice")
	}
	return a
}

func (a *sliceAssert) HasSize(n int) SliceAssert {
	if len(a.actual) != n {
		a.fail("expected size %d, got %d", n, len(a.actual))
	}
	return a
}

func (a *sliceAssert) Contains(expected any) SliceAssert {
	for _, item := range a.actual {
		if a.equal(item, expected) {
			return a
		}
	}
	a.fail("expected slice to contain %s", a.repr(expected))
	return a
}

func (a *sliceAssert) DoesNotContain(expected any) SliceAssert {
	for _, item := range a.actual {
		if a.equal(item, expected) {
			a.fail("expected slice not to contain %s", a.repr(expected))
		}
	}
	return a
}

func (a *sliceAssert) ContainsExactly(expected ...any) SliceAssert {
	if len(a.actual) != len(expected) {
		a.fail("expected exactly %d items, got %d", len(expected), len(a.actual))
	}
	for i, want := range expected {
		if !a.equal(a.actual[i], want) {
			a.fail("item[%d]: expected %s, got %s", i, a.repr(want), a.repr(a.actual[i]))
		}
	}
	return a
}

func (a *sliceAssert) AllSatisfy(fn func(v any) error) SliceAssert {
	for i, item := range a.actual {
		if err := fn(item); err != nil {
			a.failCause(err, "item[%d]: %s", i, err.Error())
		}
	}
	return a
}

func (a *sliceAssert) First() ValueAssert {
	if len(a.actual) == 0 {
		a.fail("cannot get first element of empty slice")
	}
	return &valueAssert{base: a.child(), actual: a.actual[0]}
}

func (a *sliceAssert) Last() ValueAssert {
	if len(a.actual) == 0 {
		a.fail("cannot get last element of empty slice")
	}
	return &valueAssert{base: a.child(), actual: a.actual[len(a.actual)-1]}
}

func (a *sliceAssert) Element(i int) ValueAssert {
	if i < 0 || i >= len(a.actual) {
		a.fail("index %d out of range for slice of %d items", i, len(a.actual))
	}
	return &valueAssert{base: a.child(), actual: a.actual[i]}
}

func (a *sliceAssert) Size() NumberAssert {
	return &numberAssert{base: a.child(), actual: float64(len(a.actual))}
}

func (a *sliceAssert) Filtered(keep func(v any) bool) SliceAssert {
	var kept []any
	for _, item := range a.actual {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	return &sliceAssert{base: a.child(), actual: kept}
}

// Extracting navigates to the slice of the named field taken from every
// element.
func (a *sliceAssert) Extracting(field string) SliceAssert {
	extracted := make([]any, len(a.actual))
	for i, item := range a.actual {
		v, err := extractField(item, field)
		if err != nil {
			a.failCause(err, "item[%d]: %s", i, err.Error())
		}
		extracted[i] = v
	}
	return &sliceAssert{base: a.child(), actual: extracted}
}

func (a *sliceAssert) Values() []any {
	return a.actual
}

// MustFirst returns the first element directly. Unlike First, it is not a
// chained assertion: on an empty slice the raised failure is not deferrable.
func (a *sliceAssert) MustFirst() any {
	if len(a.actual) == 0 {
		Raise("cannot get first element of empty slice")
	}
	return a.actual[0]
}
