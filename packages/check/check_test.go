package check

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failureOf(t *testing.T, fn func()) error {
	t.Helper()
	err := Capture(fn)
	require.Error(t, err)
	return err
}

func TestCapture(t *testing.T) {
	assert.NoError(t, Capture(func() { That(1).IsEqualTo(1) }))

	err := failureOf(t, func() { That(1).IsEqualTo(2) })
	var f *Failure
	require.ErrorAs(t, err, &f)
	assert.Equal(t, "expected 2, got 1", f.Message)
}

func TestCapturePassesThroughForeignPanics(t *testing.T) {
	assert.Panics(t, func() {
		_ = Capture(func() { panic("not a failure") })
	})
}

func TestValueAssert(t *testing.T) {
	tests := []struct {
		name    string
		fn      func()
		message string
	}{
		{
			name:    "equality failure",
			fn:      func() { That("foo").IsEqualTo("bar") },
			message: `expected "bar", got "foo"`,
		},
		{
			name:    "inequality failure",
			fn:      func() { That(3).IsNotEqualTo(3.0) },
			message: "expected not to equal 3",
		},
		{
			name:    "nil failure",
			fn:      func() { That(1).IsNil() },
			message: "expected nil, got 1",
		},
		{
			name:    "not nil failure",
			fn:      func() { That(nil).IsNotNil() },
			message: "expected a value, got nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := failureOf(t, tt.fn)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestValueAssertNumericCoercion(t *testing.T) {
	assert.NoError(t, Capture(func() { That(3).IsEqualTo(3.0) }))
	assert.NoError(t, Capture(func() { That(int64(7)).IsEqualTo(7) }))
}

func TestValueAssertTypedNil(t *testing.T) {
	var p *int
	assert.NoError(t, Capture(func() { That(p).IsNil() }))
}

func TestValueAssertSatisfies(t *testing.T) {
	assert.NoError(t, Capture(func() {
		That(10).Satisfies(func(v any) error { return nil })
	}))

	err := failureOf(t, func() {
		That(10).Satisfies(func(v any) error { return errors.New("too big") })
	})
	assert.Equal(t, "too big", err.Error())
}

func TestValueAssertCoercions(t *testing.T) {
	assert.NoError(t, Capture(func() { That("hi").AsString().HasLength(2) }))
	assert.NoError(t, Capture(func() { That(41).AsNumber().IsLessThan(42) }))
	assert.NoError(t, Capture(func() { That([]any{1}).AsSlice().HasSize(1) }))
	assert.NoError(t, Capture(func() { That(map[string]any{"a": 1}).AsMap().ContainsKey("a") }))
	assert.NoError(t, Capture(func() { That(errors.New("x")).AsError().HasMessage("x") }))
	assert.NoError(t, Capture(func() { That(time.Unix(0, 0)).AsTime().IsBefore(time.Now()) }))

	err := failureOf(t, func() { That(12).AsString() })
	assert.Equal(t, "expected a string, got int", err.Error())

	err = failureOf(t, func() { That("later").AsTime() })
	assert.Equal(t, "expected a time, got string", err.Error())
}

func TestValueAssertField(t *testing.T) {
	type person struct {
		Name string
		Age  int
	}

	assert.NoError(t, Capture(func() {
		That(person{Name: "Ana", Age: 30}).Field("Name").IsEqualTo("Ana")
	}))
	assert.NoError(t, Capture(func() {
		That(&person{Age: 30}).Field("Age").AsNumber().IsEqualTo(30)
	}))
	assert.NoError(t, Capture(func() {
		That(map[string]any{"id": 7}).Field("id").IsEqualTo(7)
	}))

	err := failureOf(t, func() { That(person{}).Field("Missing") })
	assert.Contains(t, err.Error(), `no field "Missing"`)
}

func TestStringAssert(t *testing.T) {
	assert.NoError(t, Capture(func() {
		Str("hello world").
			Contains("world").
			HasPrefix("hello").
			HasSuffix("world").
			Matches(`^h\w+`).
			HasLength(11)
	}))

	err := failureOf(t, func() { Str("abc").Contains("xyz") })
	assert.Equal(t, `expected "abc" to contain "xyz"`, err.Error())

	err = failureOf(t, func() { Str("abc").Matches("[") })
	assert.Contains(t, err.Error(), "invalid regex pattern")
}

func TestStringAssertLengthNavigation(t *testing.T) {
	assert.NoError(t, Capture(func() { Str("abcd").Length().IsBetween(1, 10) }))
}

func TestNumberAssert(t *testing.T) {
	assert.NoError(t, Capture(func() {
		Num(5).
			IsGreaterThan(4).
			IsGreaterThanOrEqualTo(5).
			IsLessThan(6).
			IsLessThanOrEqualTo("5").
			IsBetween(0, 10).
			IsPositive()
	}))

	err := failureOf(t, func() { Num(5).IsGreaterThan(9) })
	assert.Equal(t, "expected 5 > 9", err.Error())

	err = failureOf(t, func() { Num("nope") })
	assert.Equal(t, "expected a number, got string", err.Error())
}

func TestDecimalAssert(t *testing.T) {
	two := decimal.RequireFromString("2.00")

	assert.NoError(t, Capture(func() {
		Dec(two).
			IsEqualByComparingTo(decimal.NewFromInt(2)).
			IsGreaterThan(decimal.NewFromInt(1)).
			IsPositive()
	}))

	// 2 and 2.00 compare equal but differ in scale.
	err := failureOf(t, func() { Dec(two).IsEqualTo(decimal.NewFromInt(2)) })
	assert.Contains(t, err.Error(), "expected 2, got 2")

	assert.NoError(t, Capture(func() { Dec(two).AsNumber().IsEqualTo(2) }))
}

func TestErrorAssert(t *testing.T) {
	sentinel := errors.New("boom")
	wrapped := fmt.Errorf("request failed: %w", sentinel)

	assert.NoError(t, Capture(func() {
		Err(wrapped).
			HasMessage("request failed: boom").
			HasMessageContaining("failed").
			Is(sentinel)
	}))
	assert.NoError(t, Capture(func() {
		Err(wrapped).Cause().HasMessage("boom").HasNoCause()
	}))
	assert.NoError(t, Capture(func() {
		Err(wrapped).Message().HasPrefix("request")
	}))

	err := failureOf(t, func() { Err(sentinel).Cause() })
	assert.Contains(t, err.Error(), "has no cause")
}

func TestTimeAssert(t *testing.T) {
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, Capture(func() {
		Time(base).
			IsEqualTo(base).
			IsAfter(base.Add(-time.Hour)).
			IsBefore(base.Add(time.Hour)).
			IsBetween(base.Add(-time.Minute), base.Add(time.Minute))
	}))
	assert.NoError(t, Capture(func() {
		Time(base).Unix().IsEqualTo(base.Unix())
	}))

	err := failureOf(t, func() { Time(base).IsBefore(base) })
	assert.Contains(t, err.Error(), "to be before")
}

func TestLabelPrefix(t *testing.T) {
	err := failureOf(t, func() { Str("foo").As("greeting").IsEqualTo("bar") })
	assert.Equal(t, `[greeting] expected "bar", got "foo"`, err.Error())
}

func TestFailMessageOverrideIsOneShot(t *testing.T) {
	a := Str("foo").WithFailMessage("boom")

	err := failureOf(t, func() { a.IsEqualTo("bar") })
	assert.Equal(t, "boom", err.Error())

	err = failureOf(t, func() { a.IsEqualTo("baz") })
	assert.Equal(t, `expected "baz", got "foo"`, err.Error())
}

func TestLabelCarriesAcrossNavigation(t *testing.T) {
	err := failureOf(t, func() {
		Str("abc").As("token").Length().IsEqualTo(9)
	})
	assert.Equal(t, "[token] expected 9, got 3", err.Error())
}

func TestCustomRepresentation(t *testing.T) {
	shout := func(v any) string { return strings.ToUpper(fmt.Sprintf("%v", v)) }

	err := failureOf(t, func() {
		That("foo", WithRepresentation(shout)).IsEqualTo("bar")
	})
	assert.Equal(t, "expected BAR, got FOO", err.Error())
}

func TestReprTruncatesLongValues(t *testing.T) {
	long := strings.Repeat("x", 500)
	assert.LessOrEqual(t, len(Repr(long)), defaultReprMaxLen+len("..."))
	assert.Equal(t, "[array with 3 items]", Repr([]any{1, 2, 3}))
	assert.Equal(t, "<nil>", Repr(nil))
}
