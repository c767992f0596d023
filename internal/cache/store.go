// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cache

import (
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// FileStore persists each artifact as one flat file named by its
// Fingerprint's hex encoding under Dir, the simplest on-disk layout that
// satisfies spec.md §4.4's requirement that the store survive process
// restarts — no directory sharding, no eviction policy, matching the
// original's reliance on wasmtime-cache's own on-disk format for the same
// purpose.
type FileStore struct {
	Dir string
}

// NewFileStore constructs a FileStore rooted at dir, creating it if
// necessary.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating cache directory")
	}
	return &FileStore{Dir: dir}, nil
}

func (fs *FileStore) path(fp Fingerprint) string {
	return filepath.Join(fs.Dir, hex.EncodeToString(fp[:]))
}

func (fs *FileStore) Get(fp Fingerprint) ([]byte, bool, error) {
	data, err := os.ReadFile(fs.path(fp))
	if errors.Is(err, os.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "reading cache entry")
	}
	return data, true, nil
}

func (fs *FileStore) Put(fp Fingerprint, data []byte) error {
	tmp := fs.path(fp) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(err, "writing cache entry")
	}
	return errors.Wrap(os.Rename(tmp, fs.path(fp)), "finalizing cache entry")
}

// Disabled is the passthrough Store that never caches anything, the Go
// analogue of building without wasmtime-cache's "cache" feature
// (spec.md §9 "StrictFlags"/cache feature gate, SPEC_FULL.md supplemented
// feature). GetOrCompute against a Cache wrapping Disabled always calls
// compute, every single time, with single-flight suppression of concurrent
// duplicates still intact.
type Disabled struct{}

func (Disabled) Get(Fingerprint) ([]byte, bool, error) { return nil, false, nil }
func (Disabled) Put(Fingerprint, []byte) error         { return nil }
