// Package blobid derives content identifiers for rendered avatar bytes.
//
// Rendering is deterministic, so an avatar's CID doubles as a cache key: the
// same seed, hash algorithm, and render options always map to the same CID.
package blobid

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// For returns an IPFS-compatible CIDv1 (raw codec + sha2-256) for data.
func For(data []byte) (cid.Cid, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}

// String returns For rendered as a string.
func String(data []byte) string {
	id, err := For(data)
	if err != nil {
		// multihash.Sum only errors for invalid inputs; with SHA2_256 and -1
		// length this is unreachable.
		return ""
	}
	return id.String()
}
