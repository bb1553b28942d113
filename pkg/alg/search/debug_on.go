//go:build seqdebug

package search

// Debug builds verify the ascending precondition on every binary search.
const debugChecks = true
