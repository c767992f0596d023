// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package compiler defines the Builder and Compiler capability interfaces
// the session state machine projects sessions onto, the Go analogue of the
// original prototype's `Box<dyn CompilerBuilder>` / `Box<dyn Compiler>`
// trait objects (grounded on
// original_source/crates/skylift/src/server/builder.rs and
// original_source/crates/skylift/src/client/compiler.rs), and ships the one
// native implementation the rest of this repository builds and tests
// against.
package compiler

import (
	"fmt"

	"github.com/skylift/skylift/internal/codegen"
	"github.com/skylift/skylift/internal/target"
)

// Setting is one named, typed compiler setting or ISA-specific flag (spec.md
// §4.1 "Settings").
type Setting struct {
	Name  string
	Value target.FlagValue
}

// Tunables mirrors wasmtime_environ::Tunables' handful of knobs relevant to
// code generation (spec.md §4.2).
type Tunables struct {
	StaticMemoryBound       uint64
	GuardSize               uint64
	GenerateNativeDebugInfo bool
}

// Env bundles the per-compile-session settings a Builder.Build captures into
// its resulting Compiler: tunables, enabled Wasm features, and whether
// paged memory initialization was requested (spec.md §4.2 "Env").
type Env struct {
	Tunables        Tunables
	Features        map[string]bool
	PagedMemoryInit bool
}

// FingerprintMap renders Tunables as a string-keyed uint64 map suitable for
// cache.FingerprintInput.Tunables, encoding GenerateNativeDebugInfo as 0/1 so
// every tunable that can change compiled output is covered by the
// fingerprint (spec.md §3 "Fingerprint ... a hash over ... tunables").
func (t Tunables) FingerprintMap() map[string]uint64 {
	debugInfo := uint64(0)
	if t.GenerateNativeDebugInfo {
		debugInfo = 1
	}
	return map[string]uint64{
		"static_memory_bound":        t.StaticMemoryBound,
		"guard_size":                 t.GuardSize,
		"generate_native_debug_info": debugInfo,
	}
}

// Builder is the capability interface a session in the Build state is
// projected onto: set the target triple, set or enable named settings, read
// them back, and finally Build a Compiler bound to the accumulated state.
// Grounded on original_source/crates/skylift/src/server/builder.rs's
// CompilerBuilder trait object and the RPC methods it backs (set_target,
// set_settings, enable_settings, build).
type Builder interface {
	Target(t target.Triple) error
	Triple() target.Triple
	Set(name string, value target.FlagValue) error
	Enable(name string) error
	Settings() []Setting
	Build(env Env) (Compiler, error)
}

// Compiler is the capability interface a session in the Compile state is
// projected onto, covering the operations BuildModule exercises in the
// pipeline (spec.md §4.3): compiling one function, emitting the module's
// object image, and emitting host↔wasm trampolines. Grounded on
// original_source/crates/skylift/src/client/compiler.rs's
// wasmtime_environ::Compiler impl.
type Compiler interface {
	Triple() target.Triple
	Flags() map[string]target.FlagValue
	ISAFlags() map[string]target.FlagValue

	CompileFunction(tr *codegen.ModuleTranslation, idx codegen.DefinedFuncIndex, body codegen.FunctionBody, types codegen.TypeTables) (codegen.CompiledFunction, error)
	EmitObject(tr *codegen.ModuleTranslation, types codegen.TypeTables, funcs map[codegen.DefinedFuncIndex]codegen.CompiledFunction, emitDwarf bool) (*codegen.Object, []codegen.FunctionInfo, []codegen.Trampoline, error)
	EmitTrampolineObject(sig codegen.Signature, calleeAddr uintptr) (*codegen.Object, codegen.Trampoline, codegen.Trampoline, error)
}

// ErrUnknownSetting is returned by Set/Enable for a setting name the
// implementation does not recognize (spec.md §4.1 edge case "unknown
// setting name").
var ErrUnknownSetting = fmt.Errorf("unknown compiler setting")
