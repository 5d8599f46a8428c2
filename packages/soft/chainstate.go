package soft

import (
	"fmt"

	"github.com/abdul-hamid-achik/softcheck/packages/check"
)

// ChainState is the contextual bundle carried by one chain position: the
// active label, a one-shot failure message override, the value
// representation, and the comparator registry. It is immutable; every
// mutation returns a new state, and Fork copies it across a navigation
// boundary so descendants and ancestors cannot affect each other.
type ChainState struct {
	label       string
	override    string
	overrideSet bool
	repr        check.Representation
	comps       *check.Registry
}

// NewChainState returns the default state: no label, no override, default
// representation, empty registry.
func NewChainState() *ChainState {
	return &ChainState{repr: check.Repr, comps: check.NewRegistry()}
}

// WithLabel returns a state whose label prefixes the next recorded failures.
func (s *ChainState) WithLabel(format string, args ...any) *ChainState {
	out := s.copy()
	out.label = fmt.Sprintf(format, args...)
	return out
}

// WithMessageOverride returns a state carrying a one-shot message override,
// consumed by the first failure recorded against it.
func (s *ChainState) WithMessageOverride(format string, args ...any) *ChainState {
	out := s.copy()
	out.override = fmt.Sprintf(format, args...)
	out.overrideSet = true
	return out
}

// WithComparator returns a state whose registry has eq under scope.
func (s *ChainState) WithComparator(scope string, eq check.Comparator) *ChainState {
	out := s.copy()
	out.comps.Register(scope, eq)
	return out
}

// WithRepresentation returns a state using r to format values.
func (s *ChainState) WithRepresentation(r check.Representation) *ChainState {
	out := s.copy()
	if r != nil {
		out.repr = r
	}
	return out
}

// Fork produces the value-copy handed to a proxy created at a navigation
// boundary.
func (s *ChainState) Fork() *ChainState {
	return s.copy()
}

// Label returns the active label.
func (s *ChainState) Label() string {
	return s.label
}

// Comparators returns the registry carried by this state.
func (s *ChainState) Comparators() *check.Registry {
	return s.comps
}

func (s *ChainState) copy() *ChainState {
	return &ChainState{
		label:       s.label,
		override:    s.override,
		overrideSet: s.overrideSet,
		repr:        s.repr,
		comps:       s.comps.Clone(),
	}
}

// resolve produces the message to record for a raised failure: the one-shot
// override if set (consuming it), otherwise the failure's own message; the
// active label is prepended either way. The returned state replaces the
// chain position's current one.
func (s *ChainState) resolve(raised string) (string, *ChainState) {
	next := s
	msg := raised
	if s.overrideSet {
		msg = s.override
		next = s.copy()
		next.override = ""
		next.overrideSet = false
	}
	if s.label != "" {
		msg = "[" + s.label + "] " + msg
	}
	return msg, next
}
