// Package check provides the concrete fluent asserters wrapped by the soft
// assertion engine.
//
// Assertion families:
//   - That: any value (equality, nil checks, coercions, field extraction)
//   - Str: strings (substring, prefix/suffix, regex, length)
//   - Num: numbers with lenient numeric coercion
//   - Decimal: arbitrary-precision decimals
//   - Slice: []any (membership, size, element navigation)
//   - Map: map[string]any (keys, entries, key navigation)
//   - Err: errors (message, errors.Is, cause navigation)
//   - JSON / YAML: documents queried by gjson path, JSON Schema validation
//   - Time: time.Time ordering
//
// A failed check raises a *Failure; use Capture to turn it into an error
// outside a soft session, or wrap the asserter in a soft.Session to defer
// failures instead.
package check
