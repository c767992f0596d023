// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package codegen defines the contracts Skylift consumes from its external
// collaborators — the Wasm parser/validator, the instruction-selecting code
// generator, and the object-file writer — and ships exactly one minimal,
// deterministic implementation of each so the rest of the codebase (the
// pipeline, the trampoline compiler, the RPC service) can be built and
// exercised without a real Cranelift-equivalent backend. spec.md §1 places
// all three of these squarely out of scope: "the underlying Wasm
// parser/validator, the code generator itself ..., [and] the object-file
// writer" are "external collaborators." Swapping Native for a real backend
// means implementing Parser and Generator; nothing else in this repository
// needs to change.
package codegen

import "fmt"

// DefinedFuncIndex identifies a function defined (not merely imported) by a
// Wasm module, stable across the whole pipeline so compiled functions can be
// reassembled in order after parallel compilation.
type DefinedFuncIndex uint32

// Signature is a minimal function-type descriptor: parameter and result
// counts are all the trampoline compiler and the native stand-in backend
// need to compute calling-convention slot layouts.
type Signature struct {
	Params  []ValType
	Results []ValType
}

// ValType is a Wasm value type, kept to the handful of scalar kinds the
// trampoline slot-sizing logic (spec.md §4.5) cares about.
type ValType int

const (
	ValI32 ValType = iota
	ValI64
	ValF32
	ValF64
	ValFuncRef
	ValExternRef
)

// FunctionBody is one defined function's raw body bytes, paired with its
// index. ModuleTranslation.TakeFunctionBodies drains these so a function
// cannot be compiled twice (spec.md §4.3 step 2.1).
type FunctionBody struct {
	Index DefinedFuncIndex
	Data  []byte
}

// ModuleTranslation is the result of parsing and validating one Wasm module.
// A Wasm file may contain nested modules, hence the pipeline fans out over
// []*ModuleTranslation rather than assuming exactly one.
type ModuleTranslation struct {
	Name      string
	Functions []FunctionBody
	Exports   map[string]DefinedFuncIndex
	// MemoryPages is the module's initial linear-memory page count, read by
	// TryPagedInit.
	MemoryPages uint32
	// pagedInit records whether the best-effort paged-memory-initialization
	// transform (spec.md §4.3 step 2.4) was applied.
	pagedInit bool
}

// TakeFunctionBodies drains tr.Functions and returns what was taken, the Go
// analogue of Rust's std::mem::take on Translation::function_body_inputs.
func (tr *ModuleTranslation) TakeFunctionBodies() []FunctionBody {
	taken := tr.Functions
	tr.Functions = nil
	return taken
}

// TryPagedInit attempts the paged-memory-initialization optimization. It is
// always best-effort: failure never fails the enclosing request (spec.md
// §4.3 step 2.4), so it has no error return — callers only observe whether
// it applied via PagedInitApplied.
func (tr *ModuleTranslation) TryPagedInit() {
	if tr.MemoryPages == 0 {
		return
	}
	tr.pagedInit = true
}

// PagedInitApplied reports whether TryPagedInit took effect.
func (tr *ModuleTranslation) PagedInitApplied() bool { return tr.pagedInit }

// TypeTables holds the module-wide type information a parse pass records,
// shared read-only across every module's compilation.
type TypeTables struct {
	Signatures []Signature
}

// Relocation describes one position in a compiled function's code that must
// be patched at link/load time. Only library-call relocations are expected
// out of the trampoline path (spec.md §4.5).
type Relocation struct {
	Offset int
	Target string
}

// CompiledFunction is one function body's machine code plus its relocations,
// the payload that flows out of Generator.CompileFunction and into
// Generator.EmitObject.
type CompiledFunction struct {
	Body        []byte
	Relocations []Relocation
}

// FunctionInfo is the per-function side table EmitObject reports alongside
// the object image, ordered by DefinedFuncIndex (spec.md §4.3 "Ordering").
type FunctionInfo struct {
	Index  DefinedFuncIndex
	Offset uint32
	Length uint32
}

// Trampoline is a small generated code blob bridging host and Wasm calling
// conventions (spec.md glossary).
type Trampoline struct {
	Signature Signature
	Body      []byte
}

// Object is a minimal stand-in for an in-progress ELF/Mach-O/COFF image:
// just named sections. The real object-file writer this type stands in for
// is explicitly out of scope (spec.md §1).
type Object struct {
	Sections map[string][]byte
}

// NewObject allocates a fresh, empty object container (spec.md §4.3 step
// 2.3 "Allocate a fresh object container for the module").
func NewObject() *Object {
	return &Object{Sections: map[string][]byte{}}
}

func (o *Object) addSection(name string, data []byte) {
	o.Sections[name] = append(append([]byte{}, o.Sections[name]...), data...)
}

// Parser is the external collaborator that parses and validates Wasm bytes.
type Parser interface {
	// Parse returns one ModuleTranslation per module found in wasm (a Wasm
	// file may embed nested modules) plus the shared TypeTables. A parse
	// failure must be classified invalid-argument by the caller, never
	// internal (spec.md §4.3 step 1).
	Parse(wasm []byte) ([]*ModuleTranslation, TypeTables, error)
}

// Generator is the external collaborator that selects instructions, compiles
// individual functions, and emits object images — the same generator the
// trampoline compiler reuses for host↔wasm adapters (spec.md §4.5).
type Generator interface {
	CompileFunction(tr *ModuleTranslation, idx DefinedFuncIndex, body FunctionBody, types TypeTables) (CompiledFunction, error)
	EmitObject(tr *ModuleTranslation, types TypeTables, funcs map[DefinedFuncIndex]CompiledFunction, emitDwarf bool) (*Object, []FunctionInfo, []Trampoline, error)
	EmitTrampolineObject(sig Signature, calleeAddr uintptr) (*Object, Trampoline, Trampoline, error)
}

// ErrUnexpectedRelocation is what a Generator implementation should wrap when
// it is asked to compile a trampoline and discovers a relocation kind other
// than a library call — spec.md §4.5 treats this as "a programmer error"
// that "must fail loudly," not a client-facing condition.
var ErrUnexpectedRelocation = fmt.Errorf("trampoline compilation produced an unexpected relocation kind")
