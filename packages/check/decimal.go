package check

import "github.com/shopspring/decimal"

// DecimalAssert is the assertion family for arbitrary-precision decimals.
// IsEqualTo compares value and exponent; IsEqualByComparingTo compares
// numeric value only, so 2.0 and 2.00 are equal by comparing but not equal.
type DecimalAssert interface {
	As(format string, args ...any) DecimalAssert
	WithFailMessage(format string, args ...any) DecimalAssert

	IsEqualTo(expected decimal.Decimal) DecimalAssert
	IsEqualByComparingTo(expected decimal.Decimal) DecimalAssert
	IsGreaterThan(expected decimal.Decimal) DecimalAssert
	IsLessThan(expected decimal.Decimal) DecimalAssert
	IsPositive() DecimalAssert
	IsNegative() DecimalAssert
	IsZero() DecimalAssert

	AsNumber() NumberAssert

	Value() decimal.Decimal
}

type decimalAssert struct {
	base
	actual decimal.Decimal
}

// Dec builds a DecimalAssert.
func Dec(d decimal.Decimal, opts ...Option) DecimalAssert {
	return &decimalAssert{base: newBase(opts...), actual: d}
}

func (a *decimalAssert) As(format string, args ...any) DecimalAssert {
	a.setLabel(format, args...)
	return a
}

func (a *decimalAssert) WithFailMessage(format string, args ...any) DecimalAssert {
	a.setOverride(format, args...)
	return a
}

func (a *decimalAssert) IsEqualTo(expected decimal.Decimal) DecimalAssert {
	if !a.actual.Equal(expected) || a.actual.Exponent() != expected.Exponent() {
		a.fail("expected %s, got %s", expected, a.actual)
	}
	return a
}

func (a *decimalAssert) IsEqualByComparingTo(expected decimal.Decimal) DecimalAssert {
	if a.actual.Cmp(expected) != 0 {
		a.fail("expected %s to compare equal to %s", a.actual, expected)
	}
	return a
}

func (a *decimalAssert) IsGreaterThan(expected decimal.Decimal) DecimalAssert {
	if a.actual.Cmp(expected) <= 0 {
		a.fail("expected %s > %s", a.actual, expected)
	}
	return a
}

func (a *decimalAssert) IsLessThan(expected decimal.Decimal) DecimalAssert {
	if a.actual.Cmp(expected) >= 0 {
		a.fail("expected %s < %s", a.actual, expected)
	}
	return a
}

func (a *decimalAssert) IsPositive() DecimalAssert {
	if a.actual.Sign() <= 0 {
		a.fail("expected %s to be positive", a.actual)
	}
	return a
}

func (a *decimalAssert) IsNegative() DecimalAssert {
	if a.actual.Sign() >= 0 {
		a.fail("expected %s to be negative", a.actual)
	}
	return a
}

func (a *decimalAssert) IsZero() DecimalAssert {
	if !a.actual.IsZero() {
		a.fail("expected 0, got %s", a.actual)
	}
	return a
}

func (a *decimalAssert) AsNumber() NumberAssert {
	return &numberAssert{base: a.child(), actual: a.actual.InexactFloat64()}
}

func (a *decimalAssert) Value() decimal.Decimal {
	return a.actual
}
