package check

import "github.com/shopspring/decimal"

// NumberAssert is the assertion family for numeric values. Actual and
// expected values are coerced to float64, so ints, floats, and numeric
// strings all compare naturally.
type NumberAssert interface {
	As(format string, args ...any) NumberAssert
	WithFailMessage(format string, args ...any) NumberAssert

	IsEqualTo(expected any) NumberAssert
	IsNotEqualTo(expected any) NumberAssert
	IsGreaterThan(expected any) NumberAssert
	IsGreaterThanOrEqualTo(expected any) NumberAssert
	IsLessThan(expected any) NumberAssert
	IsLessThanOrEqualTo(expected any) NumberAssert
	IsBetween(low, high any) NumberAssert
	IsPositive() NumberAssert
	IsNegative() NumberAssert
	IsZero() NumberAssert

	AsDecimal() DecimalAssert

	Value() float64
}

type numberAssert struct {
	base
	actual float64
}

// Num builds a NumberAssert over any numeric value. A non-numeric value
// fails at construction.
func Num(v any, opts ...Option) NumberAssert {
	n, ok := toFloat64(v)
	a := &numberAssert{base: newBase(opts...), actual: n}
	if !ok {
		a.fail("expected a number, got %T", v)
	}
	return a
}

func (a *numberAssert) As(format string, args ...any) NumberAssert {
	a.setLabel(format, args...)
	return a
}

func (a *numberAssert) WithFailMessage(format string, args ...any) NumberAssert {
	a.setOverride(format, args...)
	return a
}

func (a *numberAssert) expect(v any) float64 {
	n, ok := toFloat64(v)
	if !ok {
		a.fail("cannot compare against non-numeric value %s", a.repr(v))
	}
	return n
}

func (a *numberAssert) IsEqualTo(expected any) NumberAssert {
	if n := a.expect(expected); a.actual != n {
		a.fail("expected %v, got %v", n, a.actual)
	}
	return a
}

func (a *numberAssert) IsNotEqualTo(expected any) NumberAssert {
	if n := a.expect(expected); a.actual == n {
		a.fail("expected not to equal %v", n)
	}
	return a
}

func (a *numberAssert) IsGreaterThan(expected any) NumberAssert {
	if n := a.expect(expected); !(a.actual > n) {
		a.fail("expected %v > %v", a.actual, n)
	}
	return a
}

func (a *numberAssert) IsGreaterThanOrEqualTo(expected any) NumberAssert {
	if n := a.expect(expected); !(a.actual >= n) {
		a.fail("expected %v >= %v", a.actual, n)
	}
	return a
}

func (a *numberAssert) IsLessThan(expected any) NumberAssert {
	if n := a.expect(expected); !(a.actual < n) {
		a.fail("expected %v < %v", a.actual, n)
	}
	return a
}

func (a *numberAssert) IsLessThanOrEqualTo(expected any) NumberAssert {
	if n := a.expect(expected); !(a.actual <= n) {
		a.fail("expected %v <= %v", a.actual, n)
	}
	return a
}

func (a *numberAssert) IsBetween(low, high any) NumberAssert {
	lo, hi := a.expect(low), a.expect(high)
	if a.actual < lo || a.actual > hi {
		a.fail("expected %v to be between %v and %v", a.actual, lo, hi)
	}
	return a
}

func (a *numberAssert) IsPositive() NumberAssert {
	if !(a.actual > 0) {
		a.fail("expected %v to be positive", a.actual)
	}
	return a
}

func (a *numberAssert) IsNegative() NumberAssert {
	if !(a.actual < 0) {
		a.fail("expected %v to be negative", a.actual)
	}
	return a
}

func (a *numberAssert) IsZero() NumberAssert {
	if a.actual != 0 {
		a.fail("expected 0, got %v", a.actual)
	}
	return a
}

func (a *numberAssert) AsDecimal() DecimalAssert {
	return &decimalAssert{base: a.child(), actual: decimal.NewFromFloat(a.actual)}
}

func (a *numberAssert) Value() float64 {
	return a.actual
}
