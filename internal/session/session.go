// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package session implements the server-side session state machine: an
// opaque RemoteID names one session, and each session is a tagged union
// that starts in the Build state and transitions once, irreversibly, to the
// Compile state (spec.md §3, §4.2). Grounded on
// original_source/crates/skylift/src/server/session.rs's CompilerSession
// enum and its map_builder/map_builder_mut/map_compiler/map_compiler_mut
// projections.
package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/skylift/skylift/internal/compiler"
)

// RemoteID is the opaque session handle minted by NewBuilder and threaded
// through every subsequent RPC via metadata (spec.md §3 "RemoteId"). It
// wraps a UUID rather than exposing one directly so callers cannot depend
// on its internal representation.
type RemoteID string

// NewRemoteID mints a fresh, random session identifier.
func NewRemoteID() RemoteID {
	return RemoteID(uuid.NewString())
}

func (id RemoteID) String() string { return string(id) }

// state is which half of the tagged union a Session currently holds.
type state int

const (
	stateBuild state = iota
	stateCompile
)

// ErrWrongState is returned by a projection method called against a session
// in the other state — e.g. calling a Compiler-only operation before Build
// has been called (spec.md §4.2 edge case "operation invalid for current
// session state").
var ErrWrongState = fmt.Errorf("session is not in the expected state")

// Session is the tagged union a RemoteID resolves to: exactly one of
// builder or compiler is meaningful, selected by state. A sync.RWMutex
// guards in-place mutation so concurrent RPCs against the same session
// serialize correctly (spec.md §5 "Concurrency", the Go analogue of the
// original's `Arc<RwLock<CompilerSession>>`).
type Session struct {
	mu       sync.RWMutex
	state    state
	builder  compiler.Builder
	compiler compiler.Compiler
}

// NewBuildSession wraps a freshly constructed Builder in its initial Build
// state, the state every new_builder call produces (spec.md §4.1
// "NewBuilder").
func NewBuildSession(b compiler.Builder) *Session {
	return &Session{state: stateBuild, builder: b}
}

// MapBuilder calls f with the session's Builder under a read lock, failing
// with ErrWrongState if the session has already transitioned to Compile.
func (s *Session) MapBuilder(f func(compiler.Builder) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != stateBuild {
		return ErrWrongState
	}
	return f(s.builder)
}

// MapBuilderLocked calls f with the session's Builder under a write lock,
// for operations that mutate builder state (Target, Set, Enable). The
// Build→Compile transition goes through Session.Build instead.
func (s *Session) MapBuilderLocked(f func(compiler.Builder) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateBuild {
		return ErrWrongState
	}
	return f(s.builder)
}

// MapCompiler calls f with the session's Compiler under a read lock,
// failing with ErrWrongState if Build has not yet been called.
func (s *Session) MapCompiler(f func(compiler.Compiler) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != stateCompile {
		return ErrWrongState
	}
	return f(s.compiler)
}

// MapCompilerLocked calls f with the session's Compiler under a write lock.
// The native Compiler implementation has no mutable state of its own, but
// the lock still serializes concurrent RPCs against one session the way
// the original's per-session RwLock does.
func (s *Session) MapCompilerLocked(f func(compiler.Compiler) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateCompile {
		return ErrWrongState
	}
	return f(s.compiler)
}

// Build performs the one-way Build→Compile transition: it calls the
// session's Builder.Build(env) and, on success, replaces the
// session's state so every later operation is projected onto the resulting
// Compiler instead of the Builder (spec.md §4.2 "Build", the Go analogue of
// `*session = CompilerSession::Compile(compiler)`).
func (s *Session) Build(env compiler.Env) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateBuild {
		return ErrWrongState
	}

	c, err := s.builder.Build(env)
	if err != nil {
		return err
	}

	s.builder = nil
	s.compiler = c
	s.state = stateCompile
	return nil
}
