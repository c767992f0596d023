// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skylift/skylift/internal/compiler"
)

func TestStoreCreateAndLookup(t *testing.T) {
	st := NewStore()
	sess := NewBuildSession(compiler.NewNativeBuilder())

	id := st.Create(sess)
	got, err := st.Lookup(id)
	require.NoError(t, err)
	require.Same(t, sess, got)
}

func TestStoreLookupMissingIsNotFound(t *testing.T) {
	st := NewStore()
	_, err := st.Lookup(RemoteID("does-not-exist"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStoreDelete(t *testing.T) {
	st := NewStore()
	id := st.Create(NewBuildSession(compiler.NewNativeBuilder()))
	require.Equal(t, 1, st.Len())

	st.Delete(id)
	require.Equal(t, 0, st.Len())

	_, err := st.Lookup(id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStoreConcurrentCreate(t *testing.T) {
	st := NewStore()
	var wg sync.WaitGroup
	ids := make(chan RemoteID, 50)

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- st.Create(NewBuildSession(compiler.NewNativeBuilder()))
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[RemoteID]bool{}
	for id := range ids {
		require.False(t, seen[id], "RemoteID must be unique")
		seen[id] = true
	}
	require.Equal(t, 50, st.Len())
}
