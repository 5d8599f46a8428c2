package soft

import (
	"fmt"

	"github.com/abdul-hamid-achik/softcheck/packages/check"
)

// chainCore is the engine state behind every soft proxy: the owning session,
// the chain state for this position, the proxy's family, and the
// active/poisoned tag. A poisoned core belongs to a branch whose navigation
// failed; every call on it is a no-op.
type chainCore struct {
	session  *Session
	state    *ChainState
	family   Family
	poisoned bool
}

func newCore(s *Session, state *ChainState, family Family) *chainCore {
	return &chainCore{session: s, state: state, family: family}
}

func poisonedCore(s *Session, family Family) *chainCore {
	return &chainCore{session: s, state: NewChainState(), family: family, poisoned: true}
}

// spawn builds the core for a proxy produced by a successful navigation,
// carrying a fork of this position's state.
func (c *chainCore) spawn(family Family) *chainCore {
	return &chainCore{session: c.session, state: c.state.Fork(), family: family}
}

// check dispatches a check-classified call: run the real method, record any
// raised failure, and let the caller return the same proxy.
func (c *chainCore) check(method string, run func()) {
	if c.poisoned {
		return
	}
	mustKind(c.family, method, KindCheck)
	c.runCaptured(run)
}

// navigate dispatches a navigation-classified call eagerly. On success it
// returns the child delegate; on failure it records the failure and reports
// ok=false so the caller poisons the branch.
func (c *chainCore) navigate(method string, run func() any) (out any, ok bool) {
	if c.poisoned {
		return nil, false
	}
	mustKind(c.family, method, KindNavigation)
	failed := c.runCaptured(func() { out = run() })
	return out, !failed
}

// runCaptured executes run, converting a raised failure (or any panic from a
// caller-supplied callback) into a recorded capture. ConfigurationError
// panics stay outside the capture mechanism.
func (c *chainCore) runCaptured(run func()) (failed bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, fatal := r.(*ConfigurationError); fatal {
			panic(r)
		}
		c.record(asFailure(r))
		failed = true
	}()
	run()
	return false
}

func asFailure(r any) *check.Failure {
	if f, ok := r.(*check.Failure); ok {
		return f
	}
	return &check.Failure{Message: fmt.Sprintf("unexpected panic: %v", r)}
}

func (c *chainCore) record(f *check.Failure) {
	msg, next := c.state.resolve(f.Message)
	c.session.collector.Append(c.state.Label(), msg, f)
	c.state = next
}

func (c *chainCore) describe(format string, args ...any) {
	if c.poisoned {
		return
	}
	c.state = c.state.WithLabel(format, args...)
}

func (c *chainCore) overrideMessage(format string, args ...any) {
	if c.poisoned {
		return
	}
	c.state = c.state.WithMessageOverride(format, args...)
}

func (c *chainCore) registerComparator(scope string, eq check.Comparator) {
	if c.poisoned {
		return
	}
	c.state = c.state.WithComparator(scope, eq)
}
