// Package testutil holds assertions and fixtures shared by the package tests.
package testutil

import (
	"math"
	"testing"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if diff := math.Abs(got[i] - want[i]); diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireCodeNear fails t if the integer code got is further than tol
// from want.
func RequireCodeNear(t *testing.T, name string, got int, want, tol float64) {
	t.Helper()
	if diff := math.Abs(float64(got) - want); diff > tol {
		t.Fatalf("%s = %d, want %v ± %v (diff %v)", name, got, want, tol, diff)
	}
}

// MaxCodeError returns the largest |codes[i] - ideal[i]|, or -1 if the
// slices differ in length.
func MaxCodeError(codes []int, ideal []float64) float64 {
	if len(codes) != len(ideal) {
		return -1
	}
	worst := 0.0
	for i, c := range codes {
		worst = math.Max(worst, math.Abs(float64(c)-ideal[i]))
	}
	return worst
}
