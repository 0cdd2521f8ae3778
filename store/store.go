// Package store defines content-addressed persistence for rendered avatars.
package store

import "github.com/ipfs/go-cid"

// Store is a minimal content-addressed blob store for avatar images.
//
// Contract:
// - Put MUST be idempotent.
// - Stored avatars MUST be immutable.
// - CIDs MUST be derived from the bytes written.
// - Get MUST return ErrNotFound when the CID is absent.
type Store interface {
	Put(data []byte) (cid.Cid, error)
	Get(id cid.Cid) ([]byte, error)
	Has(id cid.Cid) bool
}
