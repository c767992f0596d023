// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package pipeline implements the two-level parallel compile pipeline
// BuildModule drives: parse the incoming Wasm bytes into one or more module
// translations, then fan out over modules and, within each module, fan out
// over its defined functions, before folding the results back into one
// ordered artifact per module. Grounded on
// original_source/crates/skylift-server/src/server/service.rs's
// build_artifacts, whose `translations.into_par_iter()` /
// `functions.into_par_iter()` nested Rayon fan-out this package reproduces
// with golang.org/x/sync/errgroup.
package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/skylift/skylift/internal/codegen"
	"github.com/skylift/skylift/internal/compiler"
)

// Parser is the subset of codegen.Parser the pipeline depends on directly
// (kept as its own interface so pipeline tests can supply a fake without
// importing codegen.Native).
type Parser interface {
	Parse(wasm []byte) ([]*codegen.ModuleTranslation, codegen.TypeTables, error)
}

// Artifact is one module's compiled output: the emitted object image, its
// ordered per-function table, and any trampolines EmitObject produced
// (spec.md §4.3 "Artifact").
type Artifact struct {
	Object      *codegen.Object
	Functions   []codegen.FunctionInfo
	Trampolines []codegen.Trampoline
	PagedInit   bool
	ModuleName  string
}

// Options carries the per-request compile environment: tunables, enabled
// features, and whether paged memory initialization should be attempted,
// mirroring the original's CompileEnv (spec.md §4.2 "Env").
type Options struct {
	Env             compiler.Env
	EmitNativeDWARF bool
}

// Run parses wasm and compiles every module it contains, fanning out across
// modules and, within each module, across its defined functions
// (spec.md §4.3 steps 1–2). A parse failure is the caller's cue to report
// invalid-argument rather than internal (spec.md §7).
func Run(ctx context.Context, p Parser, c compiler.Compiler, wasm []byte, opts Options) ([]Artifact, error) {
	translations, types, err := p.Parse(wasm)
	if err != nil {
		return nil, fmt.Errorf("parsing wasm module: %w", err)
	}

	artifacts := make([]Artifact, len(translations))

	g, gctx := errgroup.WithContext(ctx)
	for i, tr := range translations {
		i, tr := i, tr
		g.Go(func() error {
			artifact, err := compileModule(gctx, c, tr, types, opts)
			if err != nil {
				return fmt.Errorf("compiling module %q: %w", tr.Name, err)
			}
			artifacts[i] = artifact
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return artifacts, nil
}

// compileModule compiles one module's defined functions in parallel, then
// hands the completed function map to the Compiler's single-threaded
// EmitObject step (spec.md §4.3 step 2.2-2.3). The second-level fan-out
// mirrors the original's `functions.into_par_iter()`.
func compileModule(ctx context.Context, c compiler.Compiler, tr *codegen.ModuleTranslation, types codegen.TypeTables, opts Options) (Artifact, error) {
	bodies := tr.TakeFunctionBodies()

	results := make([]codegen.CompiledFunction, len(bodies))
	g, gctx := errgroup.WithContext(ctx)
	for i, body := range bodies {
		i, body := i, body
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			compiled, err := c.CompileFunction(tr, body.Index, body, types)
			if err != nil {
				return fmt.Errorf("compiling function %d: %w", body.Index, err)
			}
			results[i] = compiled
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Artifact{}, err
	}

	funcs := make(map[codegen.DefinedFuncIndex]codegen.CompiledFunction, len(bodies))
	for i, body := range bodies {
		funcs[body.Index] = results[i]
	}

	obj, infos, trampolines, err := c.EmitObject(tr, types, funcs, opts.EmitNativeDWARF)
	if err != nil {
		return Artifact{}, fmt.Errorf("emitting object: %w", err)
	}

	if opts.Env.PagedMemoryInit {
		tr.TryPagedInit()
	}

	return Artifact{
		Object:      obj,
		Functions:   infos,
		Trampolines: trampolines,
		PagedInit:   tr.PagedInitApplied(),
		ModuleName:  tr.Name,
	}, nil
}
