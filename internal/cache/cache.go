// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package cache implements the content-addressed artifact cache
// BuildModule consults before running the compile pipeline: a Fingerprint
// derived from the compiler's triple, flags, ISA flags, tunables, enabled
// features and the wasm bytes themselves identifies one compiled result, and
// concurrent requests for the same fingerprint collapse into a single
// compute via golang.org/x/sync/singleflight, the same duplicate-suppression
// guarantee wasmtime-cache's ModuleCacheEntry::get_data_raw documents.
// Grounded on
// original_source/crates/skylift-server/src/server/service.rs's
// HashedCompileEnv/cache-feature-gated build_module path (spec.md §4.4).
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sort"

	"golang.org/x/sync/singleflight"

	"github.com/skylift/skylift/internal/logging"
	"github.com/skylift/skylift/internal/target"
)

// Fingerprint identifies one compile request's content: the same triple,
// flags, ISA flags, tunables, features, version tag and wasm bytes always
// hash to the same Fingerprint, and any difference in any of those changes
// it (spec.md §4.4 "Fingerprint").
type Fingerprint [32]byte

// FingerprintInput bundles everything a compile result depends on, the Go
// analogue of the tuple HashedCompileEnv hashes alongside the wasm bytes.
type FingerprintInput struct {
	Triple     target.Triple
	Flags      map[string]target.FlagValue
	ISAFlags   map[string]target.FlagValue
	Tunables   map[string]uint64
	Features   map[string]bool
	VersionTag string
	Wasm       []byte
}

// Compute derives a Fingerprint from in, hashing each component in a fixed,
// sorted order so map iteration order never affects the result.
func Compute(in FingerprintInput) Fingerprint {
	h := sha256.New()

	h.Write([]byte(in.Triple.String()))
	h.Write([]byte{'-'})
	h.Write([]byte(in.Triple.BinaryFormat.String()))
	h.Write([]byte{0})
	writeFlagMap(h, in.Flags)
	h.Write([]byte{0})
	writeFlagMap(h, in.ISAFlags)
	h.Write([]byte{0})
	writeUint64Map(h, in.Tunables)
	h.Write([]byte{0})
	writeBoolMap(h, in.Features)
	h.Write([]byte{0})
	h.Write([]byte(in.VersionTag))
	h.Write([]byte{0})
	h.Write(in.Wasm)

	var out Fingerprint
	copy(out[:], h.Sum(nil))
	return out
}

func writeFlagMap(h interface{ Write([]byte) (int, error) }, m map[string]target.FlagValue) {
	names := sortedKeys(m)
	for _, name := range names {
		h.Write([]byte(name))
		h.Write([]byte(m[name].String()))
	}
}

func writeUint64Map(h interface{ Write([]byte) (int, error) }, m map[string]uint64) {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	var buf [8]byte
	for _, name := range names {
		h.Write([]byte(name))
		binary.LittleEndian.PutUint64(buf[:], m[name])
		h.Write(buf[:])
	}
}

func writeBoolMap(h interface{ Write([]byte) (int, error) }, m map[string]bool) {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	for _, name := range names {
		h.Write([]byte(name))
		if m[name] {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	}
}

func sortedKeys(m map[string]target.FlagValue) []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Store is the backing store a Cache reads and writes serialized artifacts
// through. Separate from Cache itself so the same single-flight semantics
// apply whether artifacts live on disk, in memory, or are never persisted
// at all (spec.md §4.4 "Store").
type Store interface {
	Get(fp Fingerprint) ([]byte, bool, error)
	Put(fp Fingerprint, data []byte) error
}

// Cache wraps a Store with singleflight.Group so concurrent BuildModule
// calls that land on the same Fingerprint share one compute instead of
// racing the compile pipeline redundantly (spec.md §4.4 "GetOrCompute").
type Cache struct {
	store Store
	group singleflight.Group
}

// New constructs a Cache backed by store. A nil store is invalid; use
// Disabled for the cache-turned-off configuration instead of passing nil
// here (spec.md §9 "StrictFlags"/cache feature gate).
func New(store Store) *Cache {
	return &Cache{store: store}
}

// GetOrCompute returns the cached artifact for fp if present, otherwise
// calls compute exactly once per distinct Fingerprint even under concurrent
// callers, stores the result, and returns it (spec.md §4.4 "single-flight
// compute"). Per spec.md §4.3, a Store failure is never fatal to the
// request it's serving: a lookup error is treated as a miss (logged, then
// falls through to compute), and a writeback error after a successful
// compute is logged and otherwise ignored — the caller still gets its
// freshly computed artifact.
func (c *Cache) GetOrCompute(fp Fingerprint, compute func() ([]byte, error)) ([]byte, error) {
	if data, ok := c.get(fp); ok {
		return data, nil
	}

	key := string(fp[:])
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if data, ok := c.get(fp); ok {
			return data, nil
		}

		data, err := compute()
		if err != nil {
			return nil, err
		}
		c.put(fp, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// get looks up fp in the backing store, treating any Store error as a
// cache miss rather than propagating it.
func (c *Cache) get(fp Fingerprint) ([]byte, bool) {
	data, ok, err := c.store.Get(fp)
	if err != nil {
		logging.Default().WithError(err).WithField("fingerprint", hex.EncodeToString(fp[:])).
			Warn("cache lookup failed, falling back to compute")
		return nil, false
	}
	return data, ok
}

// put writes data back to the store, logging (but not propagating) any
// failure — a writeback failure must not fail an otherwise-successful
// compile.
func (c *Cache) put(fp Fingerprint, data []byte) {
	if err := c.store.Put(fp, data); err != nil {
		logging.Default().WithError(err).WithField("fingerprint", hex.EncodeToString(fp[:])).
			Warn("cache writeback failed")
	}
}
