// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRejectsMissingMagic(t *testing.T) {
	n := NewNative()
	_, _, err := n.Parse([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10})
	require.Error(t, err)
}

func TestParseAcceptsMagic(t *testing.T) {
	n := NewNative()
	wasm := append([]byte{}, wasmMagic...)
	wasm = append(wasm, 0x01, 0x00, 0x00, 0x00)
	translations, types, err := n.Parse(wasm)
	require.NoError(t, err)
	require.Len(t, translations, 1)
	require.Len(t, translations[0].Functions, 1)
	require.Len(t, types.Signatures, 1)
}

func TestParseIsDeterministic(t *testing.T) {
	n := NewNative()
	wasm := append([]byte{}, wasmMagic...)
	wasm = append(wasm, 0x01, 0x00, 0x00, 0x00, 0xaa, 0xbb)

	t1, _, err := n.Parse(wasm)
	require.NoError(t, err)
	t2, _, err := n.Parse(wasm)
	require.NoError(t, err)

	require.Equal(t, t1[0].Functions, t2[0].Functions)
}

func TestCompileFunctionDeterministic(t *testing.T) {
	n := NewNative()
	body := FunctionBody{Index: 3, Data: []byte{1, 2, 3}}

	a, err := n.CompileFunction(nil, 3, body, TypeTables{})
	require.NoError(t, err)
	b, err := n.CompileFunction(nil, 3, body, TypeTables{})
	require.NoError(t, err)

	require.Equal(t, a.Body, b.Body)
}

func TestEmitObjectOrdersByIndexRegardlessOfMapIteration(t *testing.T) {
	n := NewNative()
	funcs := map[DefinedFuncIndex]CompiledFunction{
		2: {Body: []byte{2}},
		0: {Body: []byte{0}},
		1: {Body: []byte{1}},
	}

	_, infos, _, err := n.EmitObject(&ModuleTranslation{}, TypeTables{}, funcs, false)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	for i, info := range infos {
		require.Equal(t, DefinedFuncIndex(i), info.Index)
	}
}

func TestTakeFunctionBodiesDrains(t *testing.T) {
	tr := &ModuleTranslation{Functions: []FunctionBody{{Index: 0}, {Index: 1}}}
	taken := tr.TakeFunctionBodies()
	require.Len(t, taken, 2)
	require.Empty(t, tr.Functions)
}

func TestTryPagedInitIsBestEffort(t *testing.T) {
	tr := &ModuleTranslation{}
	tr.TryPagedInit()
	require.False(t, tr.PagedInitApplied())

	tr2 := &ModuleTranslation{MemoryPages: 4}
	tr2.TryPagedInit()
	require.True(t, tr2.PagedInitApplied())
}
