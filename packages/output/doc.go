// Package output provides formatters for displaying captured soft-assertion
// failures.
//
// The console formatter renders a human-readable colored report of a
// session's failures or of an AggregateError returned by AssertAll. Color is
// disabled with WithNoColor or the NO_COLOR convention honored by
// fatih/color.
package output
