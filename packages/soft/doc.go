// Package soft implements the soft-assertion engine: a Session wraps the
// concrete asserters from packages/check in proxies that defer failures
// instead of raising them, so a caller can chain any number of failing
// assertions and report them all at once with AssertAll.
//
// Dispatch semantics per chained call:
//   - check calls (self-returning) run the real method, record a raised
//     failure, and keep the chain on the same proxy
//   - navigation calls (returning another assertion family, or a fresh
//     object of the same family) run eagerly; on success the result is
//     wrapped in a new proxy carrying a fork of the chain state, on failure
//     the branch is poisoned and every later call on it is a no-op
//   - terminal calls (returning a raw value) run uninstrumented; their
//     failures propagate immediately
//
// Classification is resolved from static per-family signature tables, not
// reflection. A Session is single-use: AssertAll drains it.
package soft
