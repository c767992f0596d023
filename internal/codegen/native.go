// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package codegen

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
)

// wasmMagic is the four-byte header every Wasm binary starts with.
var wasmMagic = []byte{0x00, 0x61, 0x73, 0x6d}

// Native is the one Parser+Generator implementation this repository ships,
// standing in for the real Wasm parser/validator and the real
// instruction-selecting code generator (both explicitly out of scope per
// spec.md §1). It recognizes only the Wasm magic header and produces a
// single synthetic defined function per module; this is enough to exercise
// every operation the compile pipeline performs (parse, fan-out compile,
// object emission, packaging) deterministically and without depending on an
// actual ISA backend.
type Native struct{}

// NewNative constructs the native parser/generator stand-in.
func NewNative() *Native { return &Native{} }

// Parse implements Parser. Anything that doesn't start with the Wasm magic
// header is rejected; anything that does produces exactly one
// ModuleTranslation with one defined function, whose body is the bytes
// following the 8-byte header (magic + version), so two invocations over
// identical input produce byte-identical translations (spec.md §4.3
// "Determinism").
func (n *Native) Parse(wasm []byte) ([]*ModuleTranslation, TypeTables, error) {
	if len(wasm) < 4 || !bytes.Equal(wasm[:4], wasmMagic) {
		return nil, TypeTables{}, fmt.Errorf("invalid wasm module: missing magic header")
	}

	body := []byte{}
	if len(wasm) > 8 {
		body = append(body, wasm[8:]...)
	}

	translation := &ModuleTranslation{
		Name: "main",
		Functions: []FunctionBody{
			{Index: 0, Data: body},
		},
		Exports: map[string]DefinedFuncIndex{
			"main": 0,
		},
	}

	types := TypeTables{
		Signatures: []Signature{{}},
	}

	return []*ModuleTranslation{translation}, types, nil
}

// CompileFunction implements Generator. The "compiled" body is a short,
// deterministic encoding of the function's index and input length — there is
// no real instruction selection here, only a stand-in that is stable across
// runs for the same input (spec.md §4.3 "Determinism", §8 scenario 3/4).
func (n *Native) CompileFunction(_ *ModuleTranslation, idx DefinedFuncIndex, body FunctionBody, _ TypeTables) (CompiledFunction, error) {
	out := make([]byte, 8+len(body.Data))
	binary.LittleEndian.PutUint32(out[0:4], uint32(idx))
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(body.Data)))
	copy(out[8:], body.Data)
	return CompiledFunction{Body: out}, nil
}

// EmitObject implements Generator, concatenating each function's compiled
// body into one "text" section and recording per-function offsets in order
// of DefinedFuncIndex, restoring the order parallel compilation does not
// guarantee (spec.md §4.3 "Ordering").
func (n *Native) EmitObject(tr *ModuleTranslation, _ TypeTables, funcs map[DefinedFuncIndex]CompiledFunction, _ bool) (*Object, []FunctionInfo, []Trampoline, error) {
	obj := NewObject()

	indices := make([]DefinedFuncIndex, 0, len(funcs))
	for idx := range funcs {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	var infos []FunctionInfo
	var offset uint32
	for _, idx := range indices {
		fn := funcs[idx]
		obj.addSection("text", fn.Body)
		infos = append(infos, FunctionInfo{
			Index:  idx,
			Offset: offset,
			Length: uint32(len(fn.Body)),
		})
		offset += uint32(len(fn.Body))
	}

	_ = tr
	return obj, infos, nil, nil
}

// EmitTrampolineObject implements Generator for the trampoline compiler: each
// direction is a deterministic 9-byte body (a direction byte, 0 for
// host-to-wasm and 1 for wasm-to-host, then the little-endian callee
// address), and both bodies are appended to one object's "trampolines"
// section. sig is carried on both returned Trampolines; the object holds no
// signature table.
func (n *Native) EmitTrampolineObject(sig Signature, calleeAddr uintptr) (*Object, Trampoline, Trampoline, error) {
	obj := NewObject()

	hostToWasm := Trampoline{Signature: sig, Body: encodeTrampolineBody(sig, calleeAddr, 0)}
	wasmToHost := Trampoline{Signature: sig, Body: encodeTrampolineBody(sig, calleeAddr, 1)}

	obj.addSection("trampolines", hostToWasm.Body)
	obj.addSection("trampolines", wasmToHost.Body)

	return obj, hostToWasm, wasmToHost, nil
}

func encodeTrampolineBody(sig Signature, calleeAddr uintptr, direction byte) []byte {
	out := make([]byte, 9)
	out[0] = direction
	binary.LittleEndian.PutUint64(out[1:9], uint64(calleeAddr))
	_ = sig
	return out
}
