package blobstore

import (
	"bytes"
	"context"
	"io"

	"github.com/hupe1980/curego/cure"
	"github.com/hupe1980/curego/persistence"
)

// SaveSnapshot encodes the result and writes it to the store under name.
func SaveSnapshot(ctx context.Context, store Store, name string, res *cure.Result, compression persistence.Compression) error {
	var buf bytes.Buffer
	if err := persistence.Encode(&buf, res, compression); err != nil {
		return err
	}
	return store.Put(ctx, name, buf.Bytes())
}

// LoadSnapshot reads a snapshot from the store and decodes it.
func LoadSnapshot(ctx context.Context, store Store, name string) (*cure.Result, error) {
	r, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return persistence.Decode(bytes.NewReader(data))
}
