package soft

import (
	"fmt"
	"strings"
)

// ConfigurationError reports invalid session or proxy construction (nil
// delegate, use after drain, broken dispatch wiring). It is raised via panic
// and never deferred: there is no valid chain to continue.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "softcheck: " + e.Reason
}

// AggregateError is the single error returned by AssertAll when at least one
// failure was captured. Its message enumerates every failure's message
// verbatim in capture order; Unwrap exposes the underlying failures for
// errors.Is / errors.As.
type AggregateError struct {
	Failures []CapturedFailure
}

func (e *AggregateError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d assertion failure(s)", len(e.Failures))
	for i, f := range e.Failures {
		fmt.Fprintf(&b, "\n-- failure %d --\n%s", i+1, f.Message)
	}
	return b.String()
}

func (e *AggregateError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		if f.Err != nil {
			errs = append(errs, f.Err)
		}
	}
	return errs
}
