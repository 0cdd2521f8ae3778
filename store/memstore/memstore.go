// Package memstore implements an in-memory avatar store.
//
// It is the daemon's default backend for ephemeral caches and the reference
// implementation for the conformance suite.
package memstore

import (
	"bytes"
	"sync"

	"github.com/ipfs/go-cid"

	"xdao.co/identicon/blobid"
	"xdao.co/identicon/store"
)

type Mem struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func New() *Mem {
	return &Mem{blobs: map[string][]byte{}}
}

func (m *Mem) Put(data []byte) (cid.Cid, error) {
	id, err := blobid.For(data)
	if err != nil {
		return cid.Undef, err
	}
	if !id.Defined() {
		return cid.Undef, store.ErrInvalidCID
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.blobs[id.String()]; ok {
		if !bytes.Equal(existing, data) {
			return cid.Undef, store.ErrImmutable
		}
		return id, nil
	}
	m.blobs[id.String()] = append([]byte(nil), data...)
	return id, nil
}

func (m *Mem) Get(id cid.Cid) ([]byte, error) {
	if !id.Defined() {
		return nil, store.ErrInvalidCID
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	b, ok := m.blobs[id.String()]
	if !ok {
		return nil, store.ErrNotFound
	}
	return append([]byte(nil), b...), nil
}

func (m *Mem) Has(id cid.Cid) bool {
	if !id.Defined() {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.blobs[id.String()]
	return ok
}
