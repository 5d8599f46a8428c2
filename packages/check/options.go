package check

import "fmt"

const defaultReprMaxLen = 80

// Representation renders a value for inclusion in failure messages.
type Representation func(v any) string

// Repr is the default representation: compact, with large values summarized
// and long strings truncated.
func Repr(v any) string {
	switch val := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return truncate(fmt.Sprintf("%q", val), defaultReprMaxLen)
	case []any:
		return fmt.Sprintf("[array with %d items]", len(val))
	case map[string]any:
		return fmt.Sprintf("{object with %d keys}", len(val))
	}
	return truncate(fmt.Sprintf("%v", v), defaultReprMaxLen)
}

func truncate(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}

// Option configures a concrete asserter at construction time.
type Option func(*base)

// WithRepresentation replaces the value formatter used in failure messages.
func WithRepresentation(r Representation) Option {
	return func(b *base) {
		if r != nil {
			b.repr = r
		}
	}
}

// WithComparators seeds the comparator registry consulted by equality checks.
func WithComparators(reg *Registry) Option {
	return func(b *base) {
		if reg != nil {
			b.comps = reg
		}
	}
}

// base carries the state shared by every assertion family: the value
// formatter, the comparator registry, an optional description label, and an
// optional one-shot failure message override.
type base struct {
	repr        Representation
	comps       *Registry
	label       string
	override    string
	overrideSet bool
}

func newBase(opts ...Option) base {
	b := base{repr: Repr, comps: NewRegistry()}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// child produces the base for an asserter created by a navigation method.
// The registry is cloned so later registrations on either side stay
// independent; the label carries over, the one-shot override does not.
func (b *base) child() base {
	return base{
		repr:  b.repr,
		comps: b.comps.Clone(),
		label: b.label,
	}
}

func (b *base) setLabel(format string, args ...any) {
	b.label = fmt.Sprintf(format, args...)
}

func (b *base) setOverride(format string, args ...any) {
	b.override = fmt.Sprintf(format, args...)
	b.overrideSet = true
}

// fail raises a Failure, resolving the message against the one-shot override
// and prefixing the active label. The override is consumed.
func (b *base) fail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if b.overrideSet {
		msg = b.override
		b.override = ""
		b.overrideSet = false
	}
	if b.label != "" {
		msg = "[" + b.label + "] " + msg
	}
	panic(&Failure{Message: msg})
}

func (b *base) failCause(cause error, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if b.overrideSet {
		msg = b.override
		b.override = ""
		b.overrideSet = false
	}
	if b.label != "" {
		msg = "[" + b.label + "] " + msg
	}
	panic(&Failure{Message: msg, Cause: cause})
}
