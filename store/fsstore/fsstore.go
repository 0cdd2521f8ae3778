// Package fsstore implements a filesystem-backed avatar store.
package fsstore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"

	"github.com/ipfs/go-cid"

	"xdao.co/identicon/blobid"
	"xdao.co/identicon/store"
)

// FS stores avatars immutably on the local filesystem, keyed strictly by CID.
//
// Objects land under root in two-character shard directories. Writes go
// through a temporary file and an atomic rename, so a failed or interrupted
// Put never leaves a partial avatar on disk.
type FS struct {
	root string
}

// New constructs a filesystem store rooted at root. The directory is created
// if needed.
func New(root string) (*FS, error) {
	if root == "" {
		return nil, errors.New("fsstore: root directory is required")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, err
	}
	return &FS{root: root}, nil
}

func (s *FS) Put(data []byte) (cid.Cid, error) {
	id, err := blobid.For(data)
	if err != nil {
		return cid.Undef, err
	}
	if !id.Defined() {
		return cid.Undef, store.ErrInvalidCID
	}

	path := s.pathFor(id)
	if _, statErr := os.Stat(path); statErr == nil {
		// Idempotent Put: the object exists, so it must hold the same bytes.
		existing, rerr := s.Get(id)
		if rerr != nil {
			return cid.Undef, store.ErrImmutable
		}
		if !bytes.Equal(existing, data) {
			return cid.Undef, store.ErrImmutable
		}
		return id, nil
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return cid.Undef, statErr
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return cid.Undef, err
	}
	tmp, err := os.CreateTemp(dir, ".put-*")
	if err != nil {
		return cid.Undef, err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return cid.Undef, err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return cid.Undef, err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return cid.Undef, err
	}
	if err := os.Chmod(tmpName, 0o444); err != nil {
		_ = os.Remove(tmpName)
		return cid.Undef, err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return cid.Undef, err
	}
	return id, nil
}

func (s *FS) Get(id cid.Cid) ([]byte, error) {
	if !id.Defined() {
		return nil, store.ErrInvalidCID
	}
	b, err := os.ReadFile(s.pathFor(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	// Read-back verification catches out-of-band corruption.
	got, err := blobid.For(b)
	if err != nil {
		return nil, err
	}
	if got != id {
		return nil, store.ErrCIDMismatch
	}
	return b, nil
}

func (s *FS) Has(id cid.Cid) bool {
	if !id.Defined() {
		return false
	}
	_, err := os.Stat(s.pathFor(id))
	return err == nil
}

func (s *FS) pathFor(id cid.Cid) string {
	str := id.String()
	if len(str) < 2 {
		return filepath.Join(s.root, str)
	}
	return filepath.Join(s.root, str[:2], str)
}
