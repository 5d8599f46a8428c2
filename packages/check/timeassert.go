package check

import "time"

// TimeAssert is the assertion family for instants.
type TimeAssert interface {
	As(format string, args ...any) TimeAssert
	WithFailMessage(format string, args ...any) TimeAssert

	IsEqualTo(expected time.Time) TimeAssert
	IsBefore(expected time.Time) TimeAssert
	IsAfter(expected time.Time) TimeAssert
	IsBetween(start, end time.Time) TimeAssert
	IsZero() TimeAssert

	Unix() NumberAssert

	Value() time.Time
}

type timeAssert struct {
	base
	actual time.Time
}

// Time builds a TimeAssert.
func Time(t time.Time, opts ...Option) TimeAssert {
	return &timeAssert{base: newBase(opts...), actual: t}
}

func (a *timeAssert) As(format string, args ...any) TimeAssert {
	a.setLabel(format, args...)
	return a
}

func (a *timeAssert) WithFailMessage(format string, args ...any) TimeAssert {
	a.setOverride(format, args...)
	return a
}

func (a *timeAssert) IsEqualTo(expected time.Time) TimeAssert {
	if !a.actual.Equal(expected) {
		a.fail("expected %s, got %s", expected.Format(time.RFC3339Nano), a.actual.Format(time.RFC3339Nano))
	}
	return a
}

func (a *timeAssert) IsBefore(expected time.Time) TimeAssert {
	if !a.actual.Before(expected) {
		a.fail("expected %s to be before %s", a.actual.Format(time.RFC3339Nano), expected.Format(time.RFC3339Nano))
	}
	return a
}

func (a *timeAssert) IsAfter(expected time.Time) TimeAssert {
	if !a.actual.After(expected) {
		a.fail("expected %s to be after %s", a.actual.Format(time.RFC3339Nano), expected.Format(time.RFC3339Nano))
	}
	return a
}

func (a *timeAssert) IsBetween(start, end time.Time) TimeAssert {
	if a.actual.Before(start) || a.actual.After(end) {
		a.fail("expected %s to be between %s and %s",
			a.actual.Format(time.RFC3339Nano), start.Format(time.RFC3339Nano), end.Format(time.RFC3339Nano))
	}
	return a
}

func (a *timeAssert) IsZero() TimeAssert {
	if !a.actual.IsZero() {
		a.fail("expected zero time, got %s", a.actual.Format(time.RFC3339Nano))
	}
	return a
}

// Unix navigates to the Unix timestamp in seconds.
func (a *timeAssert) Unix() NumberAssert {
	return &numberAssert{base: a.child(), actual: float64(a.actual.Unix())}
}

func (a *timeAssert) Value() time.Time {
	return a.actual
}
