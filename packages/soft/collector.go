package soft

import "sync"

// CapturedFailure is one deferred assertion failure. Seq strictly increases
// in capture order across every proxy derived from the same session.
type CapturedFailure struct {
	Seq     int
	Label   string
	Message string
	Err     error
}

// Collector is the session's ordered, append-only failure store. Append is
// safe under concurrent use; ordering is only meaningful for captures made
// sequentially within one chain.
type Collector struct {
	mu       sync.Mutex
	failures []CapturedFailure
	drained  bool
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Append records a failure with the next sequence number. Appends after the
// collector has been drained are dropped: the session is finished.
func (c *Collector) Append(label, message string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.drained {
		return
	}
	c.failures = append(c.failures, CapturedFailure{
		Seq:     len(c.failures),
		Label:   label,
		Message: message,
		Err:     err,
	})
}

// Collected returns a snapshot of the failures captured so far.
func (c *Collector) Collected() []CapturedFailure {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CapturedFailure, len(c.failures))
	copy(out, c.failures)
	return out
}

// IsEmpty reports whether no failures have been captured.
func (c *Collector) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.failures) == 0
}

// drain returns all captured failures and closes the collector. A second
// drain returns nothing.
func (c *Collector) drain() []CapturedFailure {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.drained {
		return nil
	}
	c.drained = true
	out := c.failures
	c.failures = nil
	return out
}

func (c *Collector) isDrained() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.drained
}
