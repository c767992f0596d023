// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package session

import (
	"fmt"
	"sync"
)

// ErrNotFound is returned by Store.Lookup for a RemoteID with no session,
// the case the original maps to Status::failed_precondition("invalid
// remote id") (spec.md §7 error table).
var ErrNotFound = fmt.Errorf("no session for remote id")

// Store is the server-wide table of live sessions, keyed by RemoteID.
// Grounded on original_source/crates/skylift-server/src/server/service.rs's
// `sessions: RwLock<HashMap<RemoteId, Arc<RwLock<CompilerSession>>>>`; Go's
// sync.RWMutex plays the same role the Tokio RwLock does there, guarding
// the map itself while each Session guards its own internal state
// independently (spec.md §5 "Concurrency").
type Store struct {
	mu       sync.RWMutex
	sessions map[RemoteID]*Session
}

// NewStore constructs an empty session store.
func NewStore() *Store {
	return &Store{sessions: map[RemoteID]*Session{}}
}

// Create mints a new RemoteID, inserts sess under it, and returns the ID.
func (st *Store) Create(sess *Session) RemoteID {
	id := NewRemoteID()
	st.mu.Lock()
	st.sessions[id] = sess
	st.mu.Unlock()
	return id
}

// Lookup resolves a RemoteID to its Session, or ErrNotFound.
func (st *Store) Lookup(id RemoteID) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	sess, ok := st.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return sess, nil
}

// Delete removes a session, freeing its RemoteID. Sessions are otherwise
// unbounded in lifetime — there is no background GC (spec.md §9 "Open
// Questions": session garbage collection is explicitly left undecided, so
// this repository only ever removes a session in response to an explicit
// client action never exposed over the wire today; Delete exists for
// completeness and for tests).
func (st *Store) Delete(id RemoteID) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len reports the number of live sessions, used by tests asserting Delete
// and Create behave as expected.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}
