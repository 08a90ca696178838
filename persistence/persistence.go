// Package persistence provides binary serialization of clustering results.
package persistence

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/hupe1980/curego/cure"
)

// Encode writes a snapshot of the result to w. The body is compressed with
// the given algorithm; the float32 payload round-trips bit-identically, so a
// decoded result is byte-for-byte the result that was encoded.
func Encode(w io.Writer, res *cure.Result, compression Compression) error {
	if res.NumClusters() == 0 {
		return fmt.Errorf("%w: empty result", ErrCorrupted)
	}

	header := FileHeader{
		Magic:        MagicNumber,
		Version:      Version,
		Compression:  uint8(compression),
		ClusterCount: uint32(len(res.Clusters)),
		Dimension:    uint32(len(res.Means[0])),
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return err
	}

	block, err := compressBlock(encodeBody(res), compression)
	if err != nil {
		return err
	}

	_, err = w.Write(block)
	return err
}

// Decode reads a snapshot from r. The compression algorithm is taken from
// the file header.
func Decode(r io.Reader) (*cure.Result, error) {
	var header FileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if header.Magic != MagicNumber {
		return nil, ErrInvalidMagic
	}
	if header.Version != Version {
		return nil, ErrInvalidVersion
	}

	block, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	body, err := decompressBlock(block, Compression(header.Compression))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}

	return decodeBody(body, int(header.ClusterCount), int(header.Dimension))
}

// SaveToFile encodes the result to filename atomically: the snapshot is
// written to a temp file in the same directory and renamed into place.
func SaveToFile(filename string, res *cure.Result, compression Compression) error {
	dir := filepath.Dir(filename)
	base := filepath.Base(filename)

	tmp, err := os.CreateTemp(dir, base+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = tmp.Close()
		if tmpName != "" {
			_ = os.Remove(tmpName)
		}
	}()

	_ = tmp.Chmod(0644)

	buf := bufio.NewWriter(tmp)
	if err := Encode(buf, res, compression); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return err
	}
	if err := tmp.Sync(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Rename(tmpName, filename); err != nil {
		return err
	}

	// Best-effort: fsync the directory so the rename is durable on POSIX.
	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	tmpName = ""
	return nil
}

// LoadFromFile decodes a snapshot from filename.
func LoadFromFile(filename string) (*cure.Result, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(bufio.NewReader(f))
}

// Body layout, little-endian, per cluster:
//
//	memberCount uint32, members [memberCount]uint32
//	repCount    uint32, representatives [repCount][dim]float32
//	mean        [dim]float32
func encodeBody(res *cure.Result) []byte {
	var buf bytes.Buffer

	for i, members := range res.Clusters {
		appendUint32(&buf, uint32(len(members)))
		for _, m := range members {
			appendUint32(&buf, uint32(m))
		}

		reps := res.Representors[i]
		appendUint32(&buf, uint32(len(reps)))
		for _, rep := range reps {
			for _, v := range rep {
				appendUint32(&buf, math.Float32bits(v))
			}
		}

		for _, v := range res.Means[i] {
			appendUint32(&buf, math.Float32bits(v))
		}
	}

	return buf.Bytes()
}

func decodeBody(data []byte, clusterCount, dim int) (*cure.Result, error) {
	d := &bodyDecoder{data: data}

	res := &cure.Result{
		Clusters:     make([][]int, clusterCount),
		Representors: make([][][]float32, clusterCount),
		Means:        make([][]float32, clusterCount),
	}

	for i := 0; i < clusterCount; i++ {
		memberCount, err := d.uint32()
		if err != nil {
			return nil, err
		}
		// Counts are validated against the remaining input before
		// allocating, so a corrupt header cannot demand gigabytes.
		if int64(memberCount)*4 > int64(d.remaining()) {
			return nil, fmt.Errorf("%w: member count %d exceeds body", ErrCorrupted, memberCount)
		}
		members := make([]int, memberCount)
		for j := range members {
			m, err := d.uint32()
			if err != nil {
				return nil, err
			}
			members[j] = int(m)
		}
		res.Clusters[i] = members

		repCount, err := d.uint32()
		if err != nil {
			return nil, err
		}
		if int64(repCount)*int64(dim)*4 > int64(d.remaining()) {
			return nil, fmt.Errorf("%w: representative count %d exceeds body", ErrCorrupted, repCount)
		}
		reps := make([][]float32, repCount)
		for j := range reps {
			if reps[j], err = d.point(dim); err != nil {
				return nil, err
			}
		}
		res.Representors[i] = reps

		if res.Means[i], err = d.point(dim); err != nil {
			return nil, err
		}
	}

	if d.off != len(d.data) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorrupted, len(d.data)-d.off)
	}

	return res, nil
}

func appendUint32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

type bodyDecoder struct {
	data []byte
	off  int
}

func (d *bodyDecoder) remaining() int {
	return len(d.data) - d.off
}

func (d *bodyDecoder) uint32() (uint32, error) {
	if d.off+4 > len(d.data) {
		return 0, fmt.Errorf("%w: truncated body", ErrCorrupted)
	}
	v := binary.LittleEndian.Uint32(d.data[d.off:])
	d.off += 4
	return v, nil
}

func (d *bodyDecoder) point(dim int) ([]float32, error) {
	if int64(dim)*4 > int64(d.remaining()) {
		return nil, fmt.Errorf("%w: truncated body", ErrCorrupted)
	}
	p := make([]float32, dim)
	for i := range p {
		bits, err := d.uint32()
		if err != nil {
			return nil, err
		}
		p[i] = math.Float32frombits(bits)
	}
	return p, nil
}
