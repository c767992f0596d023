// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package trampoline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skylift/skylift/internal/codegen"
)

func TestComputeLayoutAssignsFixedSlots(t *testing.T) {
	sig := codegen.Signature{
		Params:  []codegen.ValType{codegen.ValI32, codegen.ValI64},
		Results: []codegen.ValType{codegen.ValF64},
	}
	layout := ComputeLayout(sig)

	require.Equal(t, []int{0, 16}, layout.ParamOffsets)
	require.Equal(t, []int{32}, layout.ResultOffsets)
	require.Equal(t, 48, layout.TotalSize)
}

func TestComputeLayoutEmptySignature(t *testing.T) {
	layout := ComputeLayout(codegen.Signature{})
	require.Empty(t, layout.ParamOffsets)
	require.Empty(t, layout.ResultOffsets)
	require.Equal(t, 0, layout.TotalSize)
}

func TestCompileProducesBothDirections(t *testing.T) {
	gen := codegen.NewNative()
	pair, err := Compile(gen, codegen.Signature{}, 0x1000)
	require.NoError(t, err)
	require.NotEmpty(t, pair.HostToWasm.Body)
	require.NotEmpty(t, pair.WasmToHost.Body)
	require.NotEqual(t, pair.HostToWasm.Body, pair.WasmToHost.Body)
}

func TestPoolAcquireCachesBySignature(t *testing.T) {
	pool := NewPool(codegen.NewNative(), 2)

	sig := codegen.Signature{Params: []codegen.ValType{codegen.ValI32}}
	a, err := pool.Acquire(context.Background(), sig, 0x2000)
	require.NoError(t, err)
	b, err := pool.Acquire(context.Background(), sig, 0x2000)
	require.NoError(t, err)

	require.Equal(t, a.HostToWasm.Body, b.HostToWasm.Body)
}

func TestPoolAcquireDistinguishesSignatures(t *testing.T) {
	pool := NewPool(codegen.NewNative(), 2)

	a, err := pool.Acquire(context.Background(), codegen.Signature{Params: []codegen.ValType{codegen.ValI32}}, 0x3000)
	require.NoError(t, err)
	b, err := pool.Acquire(context.Background(), codegen.Signature{Params: []codegen.ValType{codegen.ValI64}}, 0x3000)
	require.NoError(t, err)

	require.NotEqual(t, a.Signature, b.Signature)
}

func TestPoolAcquireAfterCloseFails(t *testing.T) {
	pool := NewPool(codegen.NewNative(), 1)
	pool.Close()

	_, err := pool.Acquire(context.Background(), codegen.Signature{}, 0)
	require.ErrorIs(t, err, ErrPoolClosed)
}

func TestPoolAcquireRespectsContextCancellation(t *testing.T) {
	pool := NewPool(codegen.NewNative(), 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pool.Acquire(ctx, codegen.Signature{Params: []codegen.ValType{codegen.ValI32, codegen.ValI32}}, 0)
	require.ErrorIs(t, err, context.Canceled)
}
