package check

import (
	"regexp"
	"strings"
)

// StringAssert is the assertion family for strings.
type StringAssert interface {
	As(format string, args ...any) StringAssert
	WithFailMessage(format string, args ...any) StringAssert

	IsEqualTo(expected string) StringAssert
	IsNotEqualTo(expected string) StringAssert
	IsEmpty() StringAssert
	IsNotEmpty() StringAssert
	Contains(sub string) StringAssert
	DoesNotContain(sub string) StringAssert
	HasPrefix(prefix string) StringAssert
	HasSuffix(suffix string) StringAssert
	Matches(pattern string) StringAssert
	HasLength(n int) StringAssert

	Length() NumberAssert
	AsJSON() JSONAssert

	Value() string
}

type stringAssert struct {
	base
	actual string
}

// Str builds a StringAssert.
func Str(s string, opts ...Option) StringAssert {
	return &stringAssert{base: newBase(opts...), actual: s}
}

func (a *stringAssert) As(format string, args ...any) StringAssert {
	a.setLabel(format, args...)
	return a
}

func (a *stringAssert) WithFailMessage(format string, args ...any) StringAssert {
	a.setOverride(format, args...)
	return a
}

func (a *stringAssert) IsEqualTo(expected string) StringAssert {
	if a.actual != expected {
		a.fail("expected %s, got %s", a.repr(expected), a.repr(a.actual))
	}
	return a
}

func (a *stringAssert) IsNotEqualTo(expected string) StringAssert {
	if a.actual == expected {
		a.fail("expected not to equal %s", a.repr(expected))
	}
	return a
}

func (a *stringAssert) IsEmpty() StringAssert {
	if a.actual != "" {
		a.fail("expected empty string, got %s", a.repr(a.actual))
	}
	return a
}

func (a *stringAssert) IsNotEmpty() StringAssert {
	if a.actual == "" {
		a.fail("expected non-empty string")
	}
	return a
}

func (a *stringAssert) Contains(sub string) StringAssert {
	if !strings.Contains(a.actual, sub) {
		a.fail("expected %s to contain %s", a.repr(a.actual), a.repr(sub))
	}
	return a
}

func (a *stringAssert) DoesNotContain(sub string) StringAssert {
	if strings.Contains(a.actual, sub) {
		a.fail("expected %s not to contain %s", a.repr(a.actual), a.repr(sub))
	}
	return a
}

func (a *stringAssert) HasPrefix(prefix string) StringAssert {
	if !strings.HasPrefix(a.actual, prefix) {
		a.fail("expected %s to start with %s", a.repr(a.actual), a.repr(prefix))
	}
	return a
}

func (a *stringAssert) HasSuffix(suffix string) StringAssert {
	if !strings.HasSuffix(a.actual, suffix) {
		a.fail("expected %s to end with %s", a.repr(a.actual), a.repr(suffix))
	}
	return a
}

func (a *stringAssert) Matches(pattern string) StringAssert {
	pattern = strings.TrimPrefix(pattern, "/")
	pattern = strings.TrimSuffix(pattern, "/")
	re, err := regexp.Compile(pattern)
	if err != nil {
		a.failCause(err, "invalid regex pattern: %v", err)
	}
	if !re.MatchString(a.actual) {
		a.fail("expected %s to match /%s/", a.repr(a.actual), pattern)
	}
	return a
}

func (a *stringAssert) HasLength(n int) StringAssert {
	if len(a.actual) != n {
		a.fail("expected length %d, got %d", n, len(a.actual))
	}
	return a
}

func (a *stringAssert) Length() NumberAssert {
	return &numberAssert{base: a.child(), actual: float64(len(a.actual))}
}

// AsJSON parses the string as a JSON document. An invalid document is a
// navigation failure.
func (a *stringAssert) AsJSON() JSONAssert {
	if !jsonValid(a.actual) {
		a.fail("expected valid JSON, got %s", a.repr(a.actual))
	}
	return newJSONAssert(a.child(), a.actual)
}

func (a *stringAssert) Value() string {
	return a.actual
}
