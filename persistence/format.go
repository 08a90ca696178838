package persistence

import "errors"

const (
	// MagicNumber identifies curego snapshot files (ASCII: "CURE")
	MagicNumber = 0x43555245
	// Version is the current file format version (v1.0.0)
	Version = 0x00010000
)

var (
	ErrInvalidMagic   = errors.New("invalid magic number")
	ErrInvalidVersion = errors.New("unsupported version")
	ErrCorrupted      = errors.New("corrupted snapshot")
)

// FileHeader is the fixed-size header at the start of every snapshot file.
type FileHeader struct {
	Magic        uint32 // 0x43555245 ("CURE")
	Version      uint32 // File format version
	Compression  uint8  // Compression of the body block
	Padding      [3]byte
	ClusterCount uint32 // Number of clusters in the snapshot
	Dimension    uint32 // Point dimensionality
}
