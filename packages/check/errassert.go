package check

import (
	"errors"
	"strings"
)

// ErrorAssert is the assertion family for errors.
type ErrorAssert interface {
	As(format string, args ...any) ErrorAssert
	WithFailMessage(format string, args ...any) ErrorAssert

	HasMessage(expected string) ErrorAssert
	HasMessageContaining(sub string) ErrorAssert
	Is(target error) ErrorAssert
	HasNoCause() ErrorAssert

	Cause() ErrorAssert
	Message() StringAssert

	Value() error
}

type errorAssert struct {
	base
	actual error
}

// Err builds an ErrorAssert. A nil error fails at construction.
func Err(err error, opts ...Option) ErrorAssert {
	a := &errorAssert{base: newBase(opts...), actual: err}
	if err == nil {
		a.fail("expected an error, got nil")
	}
	return a
}

func (a *errorAssert) As(format string, args ...any) ErrorAssert {
	a.setLabel(format, args...)
	return a
}

func (a *errorAssert) WithFailMessage(format string, args ...any) ErrorAssert {
	a.setOverride(format, args...)
	return a
}

func (a *errorAssert) HasMessage(expected string) ErrorAssert {
	if a.actual.Error() != expected {
		a.fail("expected message %s, got %s", a.repr(expected), a.repr(a.actual.Error()))
	}
	return a
}

func (a *errorAssert) HasMessageContaining(sub string) ErrorAssert {
	if !strings.Contains(a.actual.Error(), sub) {
		a.fail("expected message %s to contain %s", a.repr(a.actual.Error()), a.repr(sub))
	}
	return a
}

func (a *errorAssert) Is(target error) ErrorAssert {
	if !errors.Is(a.actual, target) {
		a.fail("expected error chain to include %s", a.repr(target))
	}
	return a
}

func (a *errorAssert) HasNoCause() ErrorAssert {
	if cause := errors.Unwrap(a.actual); cause != nil {
		a.fail("expected no cause, got %s", a.repr(cause))
	}
	return a
}

// Cause navigates to the wrapped error; a chain with no cause is a
// navigation failure.
func (a *errorAssert) Cause() ErrorAssert {
	cause := errors.Unwrap(a.actual)
	if cause == nil {
		a.fail("error %s has no cause", a.repr(a.actual))
	}
	return &errorAssert{base: a.child(), actual: cause}
}

func (a *errorAssert) Message() StringAssert {
	return &stringAssert{base: a.child(), actual: a.actual.Error()}
}

func (a *errorAssert) Value() error {
	return a.actual
}
