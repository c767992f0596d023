// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cache

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skylift/skylift/internal/target"
)

func TestGetOrComputeCallsComputeOnceForConcurrentCallers(t *testing.T) {
	c := New(newMemStore())
	fp := Fingerprint{1}

	var calls int32
	var wg sync.WaitGroup
	results := make([][]byte, 32)

	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data, err := c.GetOrCompute(fp, func() ([]byte, error) {
				atomic.AddInt32(&calls, 1)
				return []byte("computed"), nil
			})
			require.NoError(t, err)
			results[i] = data
		}(i)
	}
	wg.Wait()

	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		require.Equal(t, []byte("computed"), r)
	}
}

func TestGetOrComputePropagatesComputeError(t *testing.T) {
	c := New(Disabled{})
	_, err := c.GetOrCompute(Fingerprint{}, func() ([]byte, error) {
		return nil, errBoom
	})
	require.ErrorIs(t, err, errBoom)
}

type memStore struct {
	mu   sync.Mutex
	data map[Fingerprint][]byte
}

func newMemStore() *memStore { return &memStore{data: map[Fingerprint][]byte{}} }

func (m *memStore) Get(fp Fingerprint) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[fp]
	return d, ok, nil
}

func (m *memStore) Put(fp Fingerprint, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[fp] = data
	return nil
}

func TestGetOrComputeSkipsComputeOnCacheHit(t *testing.T) {
	store := newMemStore()
	c := New(store)
	fp := Fingerprint{2}

	var calls int32
	compute := func() ([]byte, error) {
		atomic.AddInt32(&calls, 1)
		return []byte("v1"), nil
	}

	_, err := c.GetOrCompute(fp, compute)
	require.NoError(t, err)
	_, err = c.GetOrCompute(fp, compute)
	require.NoError(t, err)

	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestComputeIsSensitiveToEveryInput(t *testing.T) {
	base := FingerprintInput{VersionTag: "v1", Wasm: []byte{1, 2, 3}}
	changedWasm := base
	changedWasm.Wasm = []byte{1, 2, 4}

	require.NotEqual(t, Compute(base), Compute(changedWasm))

	mutations := []func(*FingerprintInput){
		func(in *FingerprintInput) { in.Triple.Architecture = target.ArchitectureAarch64 },
		func(in *FingerprintInput) { in.Triple.BinaryFormat = target.BinaryFormatELF },
		func(in *FingerprintInput) {
			in.Flags = map[string]target.FlagValue{"opt_level": {Kind: target.FlagKindEnum, Enum: "speed"}}
		},
		func(in *FingerprintInput) {
			in.ISAFlags = map[string]target.FlagValue{"has_avx2": {Kind: target.FlagKindBool, Bool: true}}
		},
		func(in *FingerprintInput) { in.Tunables = map[string]uint64{"guard_size": 1} },
		func(in *FingerprintInput) { in.Features = map[string]bool{"simd": true} },
		func(in *FingerprintInput) { in.VersionTag = "v2" },
	}
	for _, mutate := range mutations {
		changed := base
		mutate(&changed)
		require.NotEqual(t, Compute(base), Compute(changed))
	}
}

func TestComputeIgnoresMapIterationOrder(t *testing.T) {
	in := FingerprintInput{
		Tunables: map[string]uint64{"a": 1, "b": 2, "c": 3},
		Features: map[string]bool{"simd": true, "threads": false},
	}
	require.Equal(t, Compute(in), Compute(in))
}

var errBoom = &computeError{"boom"}

type computeError struct{ msg string }

func (e *computeError) Error() string { return e.msg }

// erroringStore fails every Get and/or Put, used to verify GetOrCompute
// treats Store failures as non-fatal (spec.md §4.3 "cache lookup errors are
// non-fatal ... cache writebacks are best-effort").
type erroringStore struct {
	failGet bool
	failPut bool
}

func (s *erroringStore) Get(Fingerprint) ([]byte, bool, error) {
	if s.failGet {
		return nil, false, errBoom
	}
	return nil, false, nil
}

func (s *erroringStore) Put(Fingerprint, []byte) error {
	if s.failPut {
		return errBoom
	}
	return nil
}

func TestGetOrComputeFallsThroughOnLookupError(t *testing.T) {
	c := New(&erroringStore{failGet: true})

	data, err := c.GetOrCompute(Fingerprint{3}, func() ([]byte, error) {
		return []byte("computed"), nil
	})

	require.NoError(t, err)
	require.Equal(t, []byte("computed"), data)
}

func TestGetOrComputeIgnoresWritebackError(t *testing.T) {
	c := New(&erroringStore{failPut: true})

	data, err := c.GetOrCompute(Fingerprint{4}, func() ([]byte, error) {
		return []byte("computed"), nil
	})

	require.NoError(t, err)
	require.Equal(t, []byte("computed"), data)
}
