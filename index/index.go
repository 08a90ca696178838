// Package index defines the proximity index contract consumed by the merge
// engine.
package index

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyIndex is returned by Nearest when the index holds no other
	// live bundle to compare against.
	ErrEmptyIndex = errors.New("index holds no other bundle")
)

// ErrUnknownHandle indicates a query for a handle that is not live in the
// index. The merge engine treats this as a broken index contract.
type ErrUnknownHandle struct {
	Handle Handle
}

func (e *ErrUnknownHandle) Error() string {
	return fmt.Sprintf("unknown handle: %d", e.Handle)
}

// Handle is a stable integer identifier for a live cluster. Handles are
// assigned by the merge engine and never reused within a run.
type Handle uint32

// Bundle is the unit stored in a proximity index: the representative points
// of one live cluster plus the keys used for identity and tie-breaking.
type Bundle struct {
	// Handle identifies the owning cluster.
	Handle Handle

	// Representatives are the cluster's current shrunk representative
	// points. The index reads but never mutates them.
	Representatives [][]float32

	// Order is the cluster's lowest original member index. On equal
	// distances the bundle with the lower order key wins, which keeps
	// nearest-neighbor answers deterministic for a fixed input order.
	Order uint32
}

// Neighbor is the answer to a nearest-bundle query.
type Neighbor struct {
	// Handle identifies the nearest other bundle.
	Handle Handle

	// Distance is the minimum pairwise distance between the two bundles'
	// representative sets.
	Distance float32
}

// NeighborIndex is a dynamic nearest-neighbor structure over representative
// bundles. The merge engine treats it as an opaque capability; any structure
// satisfying the contract below is substitutable.
//
// Contract: Nearest(h) must return the true minimum pairwise representative
// distance over all currently live bundles other than h itself. Returning a
// handle that was removed is a fatal contract violation for the caller.
type NeighborIndex interface {
	// Insert adds a bundle. Inserting an already-live handle replaces the
	// previous bundle.
	Insert(b Bundle)

	// Remove deletes the bundle for the given handle. Removing an unknown
	// handle is a no-op.
	Remove(h Handle)

	// Nearest returns the closest other live bundle. It returns
	// ErrEmptyIndex when fewer than two bundles are live and
	// *ErrUnknownHandle when h itself is not live.
	Nearest(h Handle) (Neighbor, error)

	// Len returns the number of live bundles.
	Len() int
}
