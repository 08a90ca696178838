// Package testutil provides testing utilities for curego.
//
// This package is intended for use in tests and benchmarks only. It provides
// helpers for generating random point sets and well-separated Gaussian point
// clouds with known ground-truth assignments.
package testutil
