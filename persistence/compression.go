package persistence

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the compression algorithm used for the snapshot body.
type Compression uint8

const (
	// CompressionNone indicates no compression.
	CompressionNone Compression = 0
	// CompressionLZ4 indicates LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD indicates ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionLZ4:
		return "LZ4"
	case CompressionZSTD:
		return "ZSTD"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(c))
	}
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

const (
	blockHeaderSize = 8

	// maxExpansion caps the claimed uncompressed size relative to the stored
	// payload. The float32 bodies written here never compress anywhere near
	// this factor, so anything beyond it is a corrupt header.
	maxExpansion = 1024
)

// compressBlock compresses the body using the specified algorithm.
// Format: [UncompressedSize uint32][CompressedSize uint32][Data...]
// If CompressedSize == 0, the data is stored uncompressed; this also happens
// when compression does not help (ratio > 0.9).
func compressBlock(data []byte, compression Compression) ([]byte, error) {
	var compressed []byte
	var err error

	switch compression {
	case CompressionNone:
		// stored uncompressed below
	case CompressionLZ4:
		compressed, err = compressBlockLZ4(data)
	case CompressionZSTD:
		compressed, err = compressBlockZSTD(data)
	default:
		return nil, fmt.Errorf("unsupported compression: %v", compression)
	}

	if err != nil {
		return nil, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, blockHeaderSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[4:], 0) // 0 = uncompressed
		copy(result[blockHeaderSize:], data)
		return result, nil
	}

	result := make([]byte, blockHeaderSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[blockHeaderSize:], compressed)
	return result, nil
}

func compressBlockLZ4(data []byte) ([]byte, error) {
	maxCompressedSize := lz4.CompressBlockBound(len(data))
	compressed := make([]byte, maxCompressedSize)

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}

	return compressed[:n], nil
}

func compressBlockZSTD(data []byte) ([]byte, error) {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil), nil
}

// decompressBlock decompresses a body block written by compressBlock.
func decompressBlock(data []byte, compression Compression) ([]byte, error) {
	if len(data) < blockHeaderSize {
		return nil, errors.New("block too small for header")
	}

	// Size math in int64: uint32 arithmetic would wrap for adversarial
	// header values and defeat the bounds checks below.
	uncompressedSize := int64(binary.LittleEndian.Uint32(data[0:]))
	compressedSize := int64(binary.LittleEndian.Uint32(data[4:]))
	payload := int64(len(data)) - blockHeaderSize

	if compressedSize == 0 {
		if payload < uncompressedSize {
			return nil, errors.New("block data too small")
		}
		return data[blockHeaderSize : blockHeaderSize+uncompressedSize], nil
	}

	if payload < compressedSize {
		return nil, errors.New("compressed block data too small")
	}

	// An uncompressed size beyond any sane expansion of the payload means a
	// corrupt header; refuse before allocating.
	if uncompressedSize > maxExpansion*compressedSize {
		return nil, errors.New("implausible uncompressed size")
	}

	compressedData := data[blockHeaderSize : blockHeaderSize+compressedSize]
	result := make([]byte, uncompressedSize)

	switch compression {
	case CompressionLZ4:
		n, err := lz4.UncompressBlock(compressedData, result)
		if err != nil {
			return nil, err
		}
		if int64(n) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}
		return result, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		out, err := dec.DecodeAll(compressedData, result[:0])
		if err != nil {
			return nil, err
		}
		if int64(len(out)) != uncompressedSize {
			return nil, errors.New("decompressed size mismatch")
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported compression: %v", compression)
	}
}
