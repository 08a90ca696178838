// Package distance provides distance metrics over float32 points.
//
// The clustering engine orders merge candidates by squared Euclidean
// distance; squared L2 preserves the ordering of Euclidean distance and
// avoids a square root per comparison.
package distance
