// Package persistence serializes clustering results to a compact,
// versioned binary snapshot format.
//
// A snapshot is a fixed header followed by one body block holding the
// member indices, representative points, and mean of every cluster. The
// body can be stored raw or compressed with LZ4 or ZSTD; the algorithm is
// recorded in the header and auto-detected on load. Float payloads
// round-trip bit-identically.
//
//	err := persistence.SaveToFile("clusters.cure", res, persistence.CompressionZSTD)
//	res, err := persistence.LoadFromFile("clusters.cure")
//
// Snapshots can be published to object storage through the blobstore
// package.
package persistence
