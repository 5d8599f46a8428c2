package soft

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/abdul-hamid-achik/softcheck/packages/check"
)

// Session is the single-use scope of one soft-assertion run. It owns the
// collector; proxies hold references to it. AssertAll drains the session,
// after which it cannot wrap further asserters.
type Session struct {
	id        uuid.UUID
	collector *Collector
}

// NewSession begins a soft-assertion session.
func NewSession() *Session {
	return &Session{id: uuid.New(), collector: NewCollector()}
}

// ID returns the session's identity, useful when correlating reports from
// parallel runs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Collector exposes the session's failure store.
func (s *Session) Collector() *Collector {
	return s.collector
}

// CollectedFailures returns a snapshot of the failures captured so far,
// without draining the session.
func (s *Session) CollectedFailures() []CapturedFailure {
	return s.collector.Collected()
}

// AssertAll drains the session. It returns nil when nothing was captured,
// otherwise a single *AggregateError enumerating every captured failure in
// order. The session is unusable afterwards.
func (s *Session) AssertAll() error {
	failures := s.collector.drain()
	if len(failures) == 0 {
		return nil
	}
	return &AggregateError{Failures: failures}
}

func (s *Session) ensureActive() {
	if s.collector.isDrained() {
		panic(&ConfigurationError{Reason: "session already drained by AssertAll"})
	}
}

// Wrap methods: each takes an existing concrete asserter and returns a proxy
// satisfying the same contract. A nil delegate is a ConfigurationError.

func (s *Session) WrapValue(delegate check.ValueAssert) check.ValueAssert {
	s.ensureActive()
	if delegate == nil {
		panic(&ConfigurationError{Reason: "nil ValueAssert delegate"})
	}
	return &softValue{core: newCore(s, NewChainState(), FamilyValue), delegate: delegate}
}

func (s *Session) WrapString(delegate check.StringAssert) check.StringAssert {
	s.ensureActive()
	if delegate == nil {
		panic(&ConfigurationError{Reason: "nil StringAssert delegate"})
	}
	return &softString{core: newCore(s, NewChainState(), FamilyString), delegate: delegate}
}

func (s *Session) WrapNumber(delegate check.NumberAssert) check.NumberAssert {
	s.ensureActive()
	if delegate == nil {
		panic(&ConfigurationError{Reason: "nil NumberAssert delegate"})
	}
	return &softNumber{core: newCore(s, NewChainState(), FamilyNumber), delegate: delegate}
}

func (s *Session) WrapDecimal(delegate check.DecimalAssert) check.DecimalAssert {
	s.ensureActive()
	if delegate == nil {
		panic(&ConfigurationError{Reason: "nil DecimalAssert delegate"})
	}
	return &softDecimal{core: newCore(s, NewChainState(), FamilyDecimal), delegate: delegate}
}

func (s *Session) WrapSlice(delegate check.SliceAssert) check.SliceAssert {
	s.ensureActive()
	if delegate == nil {
		panic(&ConfigurationError{Reason: "nil SliceAssert delegate"})
	}
	return &softSlice{core: newCore(s, NewChainState(), FamilySlice), delegate: delegate}
}

func (s *Session) WrapMap(delegate check.MapAssert) check.MapAssert {
	s.ensureActive()
	if delegate == nil {
		panic(&ConfigurationError{Reason: "nil MapAssert delegate"})
	}
	return &softMap{core: newCore(s, NewChainState(), FamilyMap), delegate: delegate}
}

func (s *Session) WrapError(delegate check.ErrorAssert) check.ErrorAssert {
	s.ensureActive()
	if delegate == nil {
		panic(&ConfigurationError{Reason: "nil ErrorAssert delegate"})
	}
	return &softError{core: newCore(s, NewChainState(), FamilyError), delegate: delegate}
}

func (s *Session) WrapJSON(delegate check.JSONAssert) check.JSONAssert {
	s.ensureActive()
	if delegate == nil {
		panic(&ConfigurationError{Reason: "nil JSONAssert delegate"})
	}
	return &softJSON{core: newCore(s, NewChainState(), FamilyJSON), delegate: delegate}
}

func (s *Session) WrapTime(delegate check.TimeAssert) check.TimeAssert {
	s.ensureActive()
	if delegate == nil {
		panic(&ConfigurationError{Reason: "nil TimeAssert delegate"})
	}
	return &softTime{core: newCore(s, NewChainState(), FamilyTime), delegate: delegate}
}

// Sugar constructors: build the concrete asserter and wrap it in one step.
// A delegate whose construction fails (e.g. Num over a non-numeric value) is
// invalid, so the failure surfaces as a fail-fast ConfigurationError rather
// than a deferred capture.

func (s *Session) That(v any) check.ValueAssert {
	return s.WrapValue(buildDelegate(func() check.ValueAssert { return check.That(v) }))
}

func (s *Session) Str(v string) check.StringAssert {
	return s.WrapString(buildDelegate(func() check.StringAssert { return check.Str(v) }))
}

func (s *Session) Num(v any) check.NumberAssert {
	return s.WrapNumber(buildDelegate(func() check.NumberAssert { return check.Num(v) }))
}

func (s *Session) Dec(d decimal.Decimal) check.DecimalAssert {
	return s.WrapDecimal(buildDelegate(func() check.DecimalAssert { return check.Dec(d) }))
}

func (s *Session) Slice(v any) check.SliceAssert {
	return s.WrapSlice(buildDelegate(func() check.SliceAssert { return check.Slice(v) }))
}

func (s *Session) Map(m map[string]any) check.MapAssert {
	return s.WrapMap(buildDelegate(func() check.MapAssert { return check.Map(m) }))
}

func (s *Session) Err(err error) check.ErrorAssert {
	return s.WrapError(buildDelegate(func() check.ErrorAssert { return check.Err(err) }))
}

func (s *Session) JSON(src string) check.JSONAssert {
	return s.WrapJSON(buildDelegate(func() check.JSONAssert { return check.JSON(src) }))
}

func (s *Session) YAML(src string) check.JSONAssert {
	return s.WrapJSON(buildDelegate(func() check.JSONAssert { return check.YAML(src) }))
}

func (s *Session) Time(t time.Time) check.TimeAssert {
	return s.WrapTime(buildDelegate(func() check.TimeAssert { return check.Time(t) }))
}

func buildDelegate[T any](fn func() T) (out T) {
	defer func() {
		if r := recover(); r != nil {
			if f, ok := r.(*check.Failure); ok {
				panic(&ConfigurationError{Reason: "invalid delegate: " + f.Message})
			}
			panic(r)
		}
	}()
	return fn()
}
