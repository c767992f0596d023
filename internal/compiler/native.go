// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package compiler

import (
	"context"
	"sort"
	"strconv"

	"github.com/skylift/skylift/internal/codegen"
	"github.com/skylift/skylift/internal/target"
	"github.com/skylift/skylift/internal/trampoline"
)

// maxConcurrentTrampolineCompiles bounds how many trampoline compiles a
// single nativeCompiler runs at once (spec.md §4.5 "Trampoline compiler"),
// the same channel-gated concurrency limit open-policy-agent-opa/internal/
// wasm/sdk/opa/pool.go applies to VM construction.
const maxConcurrentTrampolineCompiles = 4

// knownSettings is the fixed catalog of settings and ISA flags NativeBuilder
// accepts, standing in for Cranelift's shared-flags/ISA-flags builders
// (spec.md §4.1). Names are checked case-sensitively against this table so
// Set/Enable can reject typos the way the original's ISA flag builder does.
var knownSettings = map[string]target.FlagKind{
	"opt_level":            target.FlagKindEnum,
	"enable_verifier":      target.FlagKindBool,
	"probestack_size_log2": target.FlagKindNum,
	"has_sse3":             target.FlagKindBool,
	"has_sse41":            target.FlagKindBool,
	"has_avx2":             target.FlagKindBool,
	"enable_pinned_reg":    target.FlagKindBool,
}

// NativeBuilder is the one Builder implementation this repository ships. It
// accumulates a target triple and a table of settings, and produces a
// nativeCompiler on Build, wiring codegen.Native as the underlying
// parser/generator stand-in (spec.md §1 "external collaborators").
type NativeBuilder struct {
	triple   target.Triple
	settings target.FlagMap
	gen      codegen.Generator
}

// NewNativeBuilder constructs a NativeBuilder with no triple set and an
// empty settings table, the fresh state every new_builder call produces
// (spec.md §4.1 "NewBuilder").
func NewNativeBuilder() *NativeBuilder {
	return &NativeBuilder{
		settings: target.FlagMap{},
		gen:      codegen.NewNative(),
	}
}

func (b *NativeBuilder) Target(t target.Triple) error {
	b.triple = t
	return nil
}

func (b *NativeBuilder) Triple() target.Triple { return b.triple }

func (b *NativeBuilder) Set(name string, value target.FlagValue) error {
	kind, ok := knownSettings[name]
	if !ok {
		return ErrUnknownSetting
	}
	value.Kind = kind
	b.settings[name] = value
	return nil
}

// Enable sets a boolean setting to true, the RPC-exposed shorthand for
// Set(name, true) on flag-kind settings (spec.md §4.1 "EnableSettings").
func (b *NativeBuilder) Enable(name string) error {
	kind, ok := knownSettings[name]
	if !ok || kind != target.FlagKindBool {
		return ErrUnknownSetting
	}
	b.settings[name] = target.FlagValue{Kind: target.FlagKindBool, Bool: true}
	return nil
}

// Settings returns the accumulated settings table sorted by name, so two
// identical builders report it identically regardless of map iteration
// order (spec.md §4.1 "GetSettings" determinism note).
func (b *NativeBuilder) Settings() []Setting {
	names := make([]string, 0, len(b.settings))
	for name := range b.settings {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Setting, 0, len(names))
	for _, name := range names {
		out = append(out, Setting{Name: name, Value: b.settings[name]})
	}
	return out
}

// ParseSetting interprets value according to the kind registered for name,
// the server-side counterpart to the wire SetRequest carrying a plain
// string (spec.md §6 "SetRequest"): booleans accept "true"/"false", numbers
// parse as base-10 uint64, and enums are taken verbatim.
func ParseSetting(name, value string) (target.FlagValue, error) {
	kind, ok := knownSettings[name]
	if !ok {
		return target.FlagValue{}, ErrUnknownSetting
	}
	switch kind {
	case target.FlagKindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return target.FlagValue{}, err
		}
		return target.FlagValue{Kind: kind, Bool: b}, nil
	case target.FlagKindNum:
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return target.FlagValue{}, err
		}
		return target.FlagValue{Kind: kind, Num: n}, nil
	default:
		return target.FlagValue{Kind: kind, Enum: value}, nil
	}
}

// Build freezes the accumulated triple and settings into a Compiler, the
// one-way Build→Compile session transition (spec.md §4.2 "Build").
func (b *NativeBuilder) Build(env Env) (Compiler, error) {
	flags := make(target.FlagMap, len(b.settings))
	for name, value := range b.settings {
		flags[name] = value
	}
	return &nativeCompiler{
		triple:      b.triple,
		flags:       flags,
		env:         env,
		gen:         b.gen,
		trampolines: trampoline.NewPool(b.gen, maxConcurrentTrampolineCompiles),
	}, nil
}

// nativeCompiler is the Compiler half of NativeBuilder.Build's output,
// delegating the actual codegen work to codegen.Generator (spec.md §1
// "external collaborators", §4.3 "per-function compile") and the host↔wasm
// trampoline compiler (spec.md §4.5) for every exported function EmitObject
// reports on.
type nativeCompiler struct {
	triple      target.Triple
	flags       target.FlagMap
	env         Env
	gen         codegen.Generator
	trampolines *trampoline.Pool
}

func (c *nativeCompiler) Triple() target.Triple { return c.triple }

func (c *nativeCompiler) Flags() map[string]target.FlagValue {
	out := make(map[string]target.FlagValue, len(c.flags))
	for k, v := range c.flags {
		out[k] = v
	}
	return out
}

// ISAFlags returns the subset of Flags that are architecture-specific, the
// has_sse*/has_avx* family plus enable_pinned_reg (spec.md §4.1 "isa_flags
// vs flags").
func (c *nativeCompiler) ISAFlags() map[string]target.FlagValue {
	out := map[string]target.FlagValue{}
	for k, v := range c.flags {
		if k == "has_sse3" || k == "has_sse41" || k == "has_avx2" || k == "enable_pinned_reg" {
			out[k] = v
		}
	}
	return out
}

func (c *nativeCompiler) CompileFunction(tr *codegen.ModuleTranslation, idx codegen.DefinedFuncIndex, body codegen.FunctionBody, types codegen.TypeTables) (codegen.CompiledFunction, error) {
	return c.gen.CompileFunction(tr, idx, body, types)
}

// EmitObject delegates object emission to the underlying Generator, then
// compiles a host↔wasm trampoline pair for every export via the trampoline
// pool and reports both directions alongside the emitted object (spec.md
// §4.3 step 2.3 "report ... a list of trampoline descriptors", §4.5).
func (c *nativeCompiler) EmitObject(tr *codegen.ModuleTranslation, types codegen.TypeTables, funcs map[codegen.DefinedFuncIndex]codegen.CompiledFunction, emitDwarf bool) (*codegen.Object, []codegen.FunctionInfo, []codegen.Trampoline, error) {
	obj, infos, trampolines, err := c.gen.EmitObject(tr, types, funcs, emitDwarf)
	if err != nil {
		return nil, nil, nil, err
	}

	offsets := make(map[codegen.DefinedFuncIndex]uint32, len(infos))
	for _, info := range infos {
		offsets[info.Index] = info.Offset
	}

	names := make([]string, 0, len(tr.Exports))
	for name := range tr.Exports {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		idx := tr.Exports[name]
		sig := codegen.Signature{}
		if len(types.Signatures) > 0 {
			sig = types.Signatures[0]
		}

		pair, err := c.trampolines.Acquire(context.Background(), sig, uintptr(offsets[idx]))
		if err != nil {
			return nil, nil, nil, err
		}
		trampolines = append(trampolines, pair.HostToWasm, pair.WasmToHost)
	}

	return obj, infos, trampolines, nil
}

func (c *nativeCompiler) EmitTrampolineObject(sig codegen.Signature, calleeAddr uintptr) (*codegen.Object, codegen.Trampoline, codegen.Trampoline, error) {
	return c.gen.EmitTrampolineObject(sig, calleeAddr)
}
