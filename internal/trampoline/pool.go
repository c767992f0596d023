// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package trampoline

import (
	"context"
	"fmt"
	"sync"

	"github.com/skylift/skylift/internal/codegen"
)

// ErrPoolClosed is returned by Acquire once Close has been called.
var ErrPoolClosed = fmt.Errorf("trampoline pool is closed")

// Pool caches compiled trampoline Pairs by Signature so repeated
// BuildModule requests against the same Compiler for common signatures
// (the empty signature, i32->i32, and so on) don't recompile them every
// time. Grounded on
// open-policy-agent-opa/internal/wasm/sdk/opa/pool.go's channel-gated
// free-list: a buffered channel of tokens bounds concurrent compiles the
// same way that pool bounds concurrent VM instances, while a mutex guards
// the actual cache map.
type Pool struct {
	gen       codegen.Generator
	available chan struct{}

	mu     sync.Mutex
	cached map[string]Pair
	closed bool
}

// NewPool constructs a Pool backed by gen, allowing at most maxConcurrent
// trampoline compiles to run at once.
func NewPool(gen codegen.Generator, maxConcurrent int) *Pool {
	available := make(chan struct{}, maxConcurrent)
	for i := 0; i < maxConcurrent; i++ {
		available <- struct{}{}
	}
	return &Pool{
		gen:       gen,
		available: available,
		cached:    map[string]Pair{},
	}
}

// Acquire returns the compiled Pair for sig, compiling it if this is the
// first request for that exact signature. Concurrent Acquire calls are
// bounded by the pool's concurrency limit, the same back-pressure
// open-policy-agent-opa/internal/wasm/sdk/opa/pool.go applies to VM
// construction.
func (p *Pool) Acquire(ctx context.Context, sig codegen.Signature, calleeAddr uintptr) (Pair, error) {
	key := signatureKey(sig)

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return Pair{}, ErrPoolClosed
	}
	if pair, ok := p.cached[key]; ok {
		p.mu.Unlock()
		return pair, nil
	}
	p.mu.Unlock()

	select {
	case <-ctx.Done():
		return Pair{}, ctx.Err()
	case <-p.available:
	}
	defer func() { p.available <- struct{}{} }()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return Pair{}, ErrPoolClosed
	}
	if pair, ok := p.cached[key]; ok {
		return pair, nil
	}

	pair, err := Compile(p.gen, sig, calleeAddr)
	if err != nil {
		return Pair{}, err
	}
	p.cached[key] = pair
	return pair, nil
}

// Close marks the pool closed; subsequent Acquire calls fail with
// ErrPoolClosed.
func (p *Pool) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
}

func signatureKey(sig codegen.Signature) string {
	key := make([]byte, 0, len(sig.Params)+len(sig.Results)+1)
	for _, v := range sig.Params {
		key = append(key, byte(v))
	}
	key = append(key, '|')
	for _, v := range sig.Results {
		key = append(key, byte(v))
	}
	return string(key)
}
