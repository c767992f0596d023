// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package pipeline

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skylift/skylift/internal/codegen"
	"github.com/skylift/skylift/internal/compiler"
)

// manyFuncParser synthesizes one module with n defined functions, used to
// exercise the per-function fan-out level of the pipeline independent of
// codegen.Native's single-function behavior.
type manyFuncParser struct{ n int }

func (p manyFuncParser) Parse(wasm []byte) ([]*codegen.ModuleTranslation, codegen.TypeTables, error) {
	tr := &codegen.ModuleTranslation{Name: "m"}
	for i := 0; i < p.n; i++ {
		tr.Functions = append(tr.Functions, codegen.FunctionBody{Index: codegen.DefinedFuncIndex(i), Data: []byte{byte(i)}})
	}
	return []*codegen.ModuleTranslation{tr}, codegen.TypeTables{}, nil
}

type failingParser struct{}

func (failingParser) Parse(wasm []byte) ([]*codegen.ModuleTranslation, codegen.TypeTables, error) {
	return nil, codegen.TypeTables{}, fmt.Errorf("boom")
}

func buildCompiler(t *testing.T) compiler.Compiler {
	b := compiler.NewNativeBuilder()
	c, err := b.Build(compiler.Env{})
	require.NoError(t, err)
	return c
}

func TestRunPropagatesParseError(t *testing.T) {
	_, err := Run(context.Background(), failingParser{}, buildCompiler(t), nil, Options{})
	require.Error(t, err)
}

func TestRunOrdersFunctionsByIndexRegardlessOfCompletionOrder(t *testing.T) {
	c := buildCompiler(t)
	artifacts, err := Run(context.Background(), manyFuncParser{n: 16}, c, nil, Options{})
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	require.Len(t, artifacts[0].Functions, 16)
	for i, fi := range artifacts[0].Functions {
		require.Equal(t, codegen.DefinedFuncIndex(i), fi.Index)
	}
}

func TestRunIsDeterministicAcrossInvocations(t *testing.T) {
	c := buildCompiler(t)
	a1, err := Run(context.Background(), manyFuncParser{n: 8}, c, nil, Options{})
	require.NoError(t, err)
	a2, err := Run(context.Background(), manyFuncParser{n: 8}, c, nil, Options{})
	require.NoError(t, err)
	require.Equal(t, a1[0].Object.Sections, a2[0].Object.Sections)
}

func TestRunAppliesPagedInitWhenRequested(t *testing.T) {
	c := buildCompiler(t)
	parser := func(wasm []byte) ([]*codegen.ModuleTranslation, codegen.TypeTables, error) {
		return []*codegen.ModuleTranslation{{Name: "m", MemoryPages: 2}}, codegen.TypeTables{}, nil
	}
	artifacts, err := Run(context.Background(), parserFunc(parser), c, nil, Options{Env: compiler.Env{PagedMemoryInit: true}})
	require.NoError(t, err)
	require.True(t, artifacts[0].PagedInit)
}

type parserFunc func([]byte) ([]*codegen.ModuleTranslation, codegen.TypeTables, error)

func (f parserFunc) Parse(wasm []byte) ([]*codegen.ModuleTranslation, codegen.TypeTables, error) {
	return f(wasm)
}
