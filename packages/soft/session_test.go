package soft

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/softcheck/packages/check"
)

func TestAssertAllOnFreshSession(t *testing.T) {
	s := NewSession()
	assert.NoError(t, s.AssertAll())
}

func TestSessionIDs(t *testing.T) {
	assert.NotEqual(t, NewSession().ID(), NewSession().ID())
}

func TestChecksAreDeferred(t *testing.T) {
	s := NewSession()

	a := s.That(1)
	a.IsEqualTo(2)
	a.IsEqualTo(1)

	failures := s.CollectedFailures()
	require.Len(t, failures, 1)
	assert.Equal(t, "expected 2, got 1", failures[0].Message)
}

func TestEveryFailingCheckIsRecordedInOrder(t *testing.T) {
	s := NewSession()

	s.Str("foo").IsEqualTo("bar").Contains("qux").HasPrefix("f")
	s.Num(10).IsLessThan(5)

	failures := s.CollectedFailures()
	require.Len(t, failures, 3)
	assert.Equal(t, `expected "bar", got "foo"`, failures[0].Message)
	assert.Equal(t, `expected "foo" to contain "qux"`, failures[1].Message)
	assert.Equal(t, "expected 10 < 5", failures[2].Message)
	for i, f := range failures {
		assert.Equal(t, i, f.Seq)
	}
}

func TestTwoChainsShareOneSession(t *testing.T) {
	s := NewSession()

	s.That("a").IsEqualTo("b")
	s.Num(1).IsEqualTo(2)

	failures := s.CollectedFailures()
	require.Len(t, failures, 2)
	assert.Equal(t, `expected "b", got "a"`, failures[0].Message)
	assert.Equal(t, "expected 2, got 1", failures[1].Message)
}

func TestNavigationFailurePoisonsBranchOnly(t *testing.T) {
	s := NewSession()

	list := s.Slice([]any{})
	first := list.First()
	first.IsNil().IsEqualTo("anything").IsNotNil()

	// Sibling branch from the same ancestor still works.
	list.Size().IsEqualTo(0)

	failures := s.CollectedFailures()
	require.Len(t, failures, 1)
	assert.Equal(t, "cannot get first element of empty slice", failures[0].Message)
}

func TestPoisonedProxyIsInertAcrossFamilies(t *testing.T) {
	s := NewSession()

	bad := s.JSON(`{"a": 1}`).Get("missing")
	bad.IsObject().
		Get("deeper").
		AsNumber().
		IsEqualTo(5)

	require.Len(t, s.CollectedFailures(), 1)
}

func TestPoisonedTerminalsReturnZeroValues(t *testing.T) {
	s := NewSession()

	v := s.Slice([]any{}).First()
	assert.Nil(t, v.Value())

	sub := s.Str("abc").AsJSON()
	_ = sub // "abc" is not JSON: branch is poisoned
	assert.Equal(t, "", sub.Raw())
	assert.Nil(t, sub.MustGet("x"))

	require.Len(t, s.CollectedFailures(), 2)
}

func TestNavigationSuccessKeepsChainLive(t *testing.T) {
	s := NewSession()

	s.Map(map[string]any{"user": map[string]any{"age": 30}}).
		Key("user").
		AsMap().
		Key("age").
		AsNumber().
		IsEqualTo(31)

	failures := s.CollectedFailures()
	require.Len(t, failures, 1)
	assert.Equal(t, "expected 31, got 30", failures[0].Message)
}

func TestLabelPrefixesCapturedFailure(t *testing.T) {
	s := NewSession()

	s.Num(42).As("user age").IsEqualTo(41)

	failures := s.CollectedFailures()
	require.Len(t, failures, 1)
	assert.Equal(t, "[user age] expected 41, got 42", failures[0].Message)
	assert.Equal(t, "user age", failures[0].Label)
}

func TestLabelSurvivesNavigation(t *testing.T) {
	s := NewSession()

	s.Slice([]any{10}).As("ports").First().IsEqualTo(99)

	failures := s.CollectedFailures()
	require.Len(t, failures, 1)
	assert.Equal(t, "[ports] expected 99, got 10", failures[0].Message)
}

func TestMessageOverrideIsOneShot(t *testing.T) {
	s := NewSession()

	a := s.That(1)
	a.WithFailMessage("boom")
	a.IsEqualTo(2)
	a.IsEqualTo(3)

	failures := s.CollectedFailures()
	require.Len(t, failures, 2)
	assert.Equal(t, "boom", failures[0].Message)
	assert.Equal(t, "expected 3, got 1", failures[1].Message)
}

func TestMessageOverrideWithLabel(t *testing.T) {
	s := NewSession()

	s.That(1).As("ctx").WithFailMessage("boom").IsEqualTo(2)

	failures := s.CollectedFailures()
	require.Len(t, failures, 1)
	assert.Equal(t, "[ctx] boom", failures[0].Message)
}

func TestStateAfterNavigationDoesNotLeakBack(t *testing.T) {
	s := NewSession()

	list := s.Slice([]any{1})
	first := list.First()
	first.As("first element")
	first.IsEqualTo(2)

	// Mutating the child's state must not retitle the ancestor's failures.
	list.HasSize(9)

	failures := s.CollectedFailures()
	require.Len(t, failures, 2)
	assert.Equal(t, "[first element] expected 2, got 1", failures[0].Message)
	assert.Equal(t, "expected size 9, got 1", failures[1].Message)
}

func TestComparatorRegisteredBeforeNavigationStaysEffective(t *testing.T) {
	s := NewSession()

	foldCase := func(a, b any) bool {
		as, aOk := a.(string)
		bs, bOk := b.(string)
		return aOk && bOk && strings.EqualFold(as, bs)
	}

	s.Slice([]any{"Alpha", "Beta"}).
		UsingComparator("string", foldCase).
		Filtered(func(v any) bool { return true }).
		Contains("ALPHA")

	assert.Empty(t, s.CollectedFailures())
}

func TestCallbackPanicIsCapturedAsCheckFailure(t *testing.T) {
	s := NewSession()

	s.That(5).Satisfies(func(v any) error { panic("kaboom") })

	failures := s.CollectedFailures()
	require.Len(t, failures, 1)
	assert.Equal(t, "unexpected panic: kaboom", failures[0].Message)
}

func TestTerminalFailurePropagatesImmediately(t *testing.T) {
	s := NewSession()

	require.Panics(t, func() {
		s.Slice([]any{}).MustFirst()
	})
	require.Panics(t, func() {
		s.JSON(`{"a": 1}`).MustGet("missing")
	})

	// Nothing was deferred.
	assert.Empty(t, s.CollectedFailures())
}

func TestAssertAllAggregatesEveryFailure(t *testing.T) {
	s := NewSession()

	s.Str("foo").IsEqualTo("bar")
	s.Num(1).IsPositive().IsNegative()

	err := s.AssertAll()
	require.Error(t, err)

	var agg *AggregateError
	require.ErrorAs(t, err, &agg)
	require.Len(t, agg.Failures, 2)

	msg := err.Error()
	assert.Contains(t, msg, "2 assertion failure(s)")
	assert.Contains(t, msg, "-- failure 1 --")
	assert.Contains(t, msg, `expected "bar", got "foo"`)
	assert.Contains(t, msg, "-- failure 2 --")
	assert.Contains(t, msg, "expected 1 to be negative")
	assert.Less(t,
		strings.Index(msg, `expected "bar"`),
		strings.Index(msg, "to be negative"),
	)
}

func TestAggregateErrorUnwrapsFailures(t *testing.T) {
	s := NewSession()
	s.That(1).IsEqualTo(2)

	err := s.AssertAll()
	var f *check.Failure
	assert.ErrorAs(t, err, &f)
}

func TestAggregateErrorPreservesMultilineMessages(t *testing.T) {
	s := NewSession()

	s.That(1).WithFailMessage("line one\nline two").IsEqualTo(2)
	s.That(3).IsEqualTo(4)

	err := s.AssertAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line one\nline two")
	assert.Contains(t, err.Error(), "expected 4, got 3")
}

func TestSessionIsSingleUse(t *testing.T) {
	s := NewSession()
	s.That(1).IsEqualTo(2)

	require.Error(t, s.AssertAll())
	assert.NoError(t, s.AssertAll())

	assert.PanicsWithError(t, "softcheck: session already drained by AssertAll", func() {
		s.That(1)
	})
}

func TestWrapRejectsNilDelegate(t *testing.T) {
	s := NewSession()

	assert.PanicsWithError(t, "softcheck: nil ValueAssert delegate", func() {
		s.WrapValue(nil)
	})
}

func TestSugarRejectsInvalidDelegate(t *testing.T) {
	s := NewSession()

	assert.PanicsWithError(t, "softcheck: invalid delegate: expected a number, got string", func() {
		s.Num("nope")
	})
	assert.Empty(t, s.CollectedFailures())
}

func TestWrapAcceptsExternallyBuiltAsserter(t *testing.T) {
	s := NewSession()

	delegate := check.Str("foo")
	s.WrapString(delegate).IsEqualTo("bar")

	require.Len(t, s.CollectedFailures(), 1)
}

func TestErrorChainNavigation(t *testing.T) {
	s := NewSession()

	sentinel := errors.New("root cause")
	wrapped := wrapErr("request failed", sentinel)

	s.Err(wrapped).
		HasMessageContaining("request").
		Cause().
		HasMessage("root cause").
		Message().
		HasSuffix("cause")

	assert.Empty(t, s.CollectedFailures())

	s.Err(sentinel).Cause().HasMessage("anything")
	require.Len(t, s.CollectedFailures(), 1)
}

func wrapErr(msg string, cause error) error {
	return &labeledErr{msg: msg, cause: cause}
}

type labeledErr struct {
	msg   string
	cause error
}

func (e *labeledErr) Error() string { return e.msg + ": " + e.cause.Error() }
func (e *labeledErr) Unwrap() error { return e.cause }

func TestTimeNavigationPoisoning(t *testing.T) {
	s := NewSession()

	ts := s.That("not a time").AsTime()
	ts.IsZero().Unix().IsEqualTo(0)
	assert.True(t, ts.Value().IsZero())

	require.Len(t, s.CollectedFailures(), 1)
}

func TestYAMLSessionChain(t *testing.T) {
	s := NewSession()

	s.YAML("replicas: 3\nname: api\n").
		Get("replicas").
		AsNumber().
		IsEqualTo(4)

	failures := s.CollectedFailures()
	require.Len(t, failures, 1)
	assert.Equal(t, "expected 4, got 3", failures[0].Message)
}

func TestCollectedFailuresDoesNotDrain(t *testing.T) {
	s := NewSession()
	s.That(1).IsEqualTo(2)

	assert.Len(t, s.CollectedFailures(), 1)
	assert.Len(t, s.CollectedFailures(), 1)
	require.Error(t, s.AssertAll())
}
