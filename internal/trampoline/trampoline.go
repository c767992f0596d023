// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package trampoline implements the host↔wasm calling-convention adapters
// BuildModule emits alongside a module's compiled functions (spec.md §4.5).
// Each trampoline bridges a Signature's native calling convention to Wasm's
// by laying its parameters and results out in a fixed-size argument array;
// Compile computes that layout and asks a codegen.Generator to emit the two
// directions (host-calls-wasm, wasm-calls-host) as one object.
package trampoline

import (
	"github.com/skylift/skylift/internal/codegen"
)

// slotSize is the space reserved per value in a trampoline's argument
// array. wasmtime's calling convention never packs values smaller than a
// pointer, and never wider than 16 bytes (enough for a v128), so
// max(16, pointer width) is the fixed per-slot size regardless of a given
// value's own width (spec.md §4.5 "slot layout").
const pointerWidth = 8

func slotSize() int {
	if pointerWidth > 16 {
		return pointerWidth
	}
	return 16
}

// Layout describes where each parameter and result of a Signature lands in
// a trampoline's argument array.
type Layout struct {
	ParamOffsets  []int
	ResultOffsets []int
	TotalSize     int
}

// ComputeLayout lays params out first, then results, each in its own
// fixed-size slot, and reports the total array size a trampoline's caller
// must allocate.
func ComputeLayout(sig codegen.Signature) Layout {
	slot := slotSize()
	layout := Layout{
		ParamOffsets:  make([]int, len(sig.Params)),
		ResultOffsets: make([]int, len(sig.Results)),
	}

	offset := 0
	for i := range sig.Params {
		layout.ParamOffsets[i] = offset
		offset += slot
	}
	for i := range sig.Results {
		layout.ResultOffsets[i] = offset
		offset += slot
	}
	layout.TotalSize = offset
	return layout
}

// Pair is the compiled host→wasm and wasm→host trampoline for one
// Signature plus the layout both directions share (spec.md §4.5
// "Emission").
type Pair struct {
	Signature  codegen.Signature
	Layout     Layout
	Object     *codegen.Object
	HostToWasm codegen.Trampoline
	WasmToHost codegen.Trampoline
}

// Compile emits both trampoline directions for sig, calling into a
// codegen.Generator the same way the module compile pipeline's EmitObject
// step does (spec.md §4.5 reuses the Compiler's Generator, not a separate
// one).
func Compile(gen codegen.Generator, sig codegen.Signature, calleeAddr uintptr) (Pair, error) {
	obj, hostToWasm, wasmToHost, err := gen.EmitTrampolineObject(sig, calleeAddr)
	if err != nil {
		return Pair{}, err
	}

	return Pair{
		Signature:  sig,
		Layout:     ComputeLayout(sig),
		Object:     obj,
		HostToWasm: hostToWasm,
		WasmToHost: wasmToHost,
	}, nil
}
