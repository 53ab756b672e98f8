// Package testutil provides shared test assertions for generated point data.
package testutil

import (
	"slices"
	"testing"
)

// maxReports caps per-call failure lines so a badly broken frame does not
// flood the test log.
const maxReports = 5

// AssertWithin checks every element of vals lies in the closed interval [lo, hi].
// name labels the slice in failure messages.
func AssertWithin(t testing.TB, name string, vals []float64, lo, hi float64) {
	t.Helper()
	bad := 0
	for i, v := range vals {
		if v >= lo && v <= hi {
			continue
		}
		if bad < maxReports {
			t.Errorf("%s[%d] = %v, want within [%v, %v]", name, i, v, lo, hi)
		}
		bad++
	}
	if bad > maxReports {
		t.Errorf("%s: %d more values out of range", name, bad-maxReports)
	}
}

// AssertAllIn checks every element of vals equals one of allowed exactly.
// Only the first mismatch is reported.
func AssertAllIn(t testing.TB, name string, vals []float64, allowed ...float64) {
	t.Helper()
	for i, v := range vals {
		if !slices.Contains(allowed, v) {
			t.Errorf("%s[%d] = %v, want one of %v", name, i, v, allowed)
			return
		}
	}
}
