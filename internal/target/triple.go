// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package target is Skylift's internal realization of target_lexicon::Triple:
// a five-field target descriptor, independent of the wire enums in
// rpc/skylift/v1, plus the conversions binding the two domains together.
package target

import "fmt"

// Architecture is the internal (non-wire) architecture domain. Keeping this
// distinct from skyliftv1.Architecture is what lets the wire schema evolve
// (new enum values, renumbering) without every internal consumer depending on
// generated-code identifiers.
type Architecture int

const (
	ArchitectureUnknown Architecture = iota
	ArchitectureX86_32
	ArchitectureX86_64
	ArchitectureArm
	ArchitectureAarch64
	ArchitectureRiscv64
	ArchitectureS390x
	ArchitectureWasm32
	ArchitectureWasm64
)

func (a Architecture) String() string {
	switch a {
	case ArchitectureX86_32:
		return "i686"
	case ArchitectureX86_64:
		return "x86_64"
	case ArchitectureArm:
		return "arm"
	case ArchitectureAarch64:
		return "aarch64"
	case ArchitectureRiscv64:
		return "riscv64"
	case ArchitectureS390x:
		return "s390x"
	case ArchitectureWasm32:
		return "wasm32"
	case ArchitectureWasm64:
		return "wasm64"
	default:
		return "unknown"
	}
}

// Vendor is the internal vendor domain.
type Vendor int

const (
	VendorUnknown Vendor = iota
	VendorApple
	VendorPC
	VendorUnikraft
	VendorWasmtime
	VendorNintendo
)

func (v Vendor) String() string {
	switch v {
	case VendorApple:
		return "apple"
	case VendorPC:
		return "pc"
	case VendorUnikraft:
		return "unikraft"
	case VendorWasmtime:
		return "wasmtime"
	case VendorNintendo:
		return "nintendo"
	default:
		return "unknown"
	}
}

// OperatingSystem is the internal operating-system domain.
type OperatingSystem int

const (
	OperatingSystemUnknown OperatingSystem = iota
	OperatingSystemLinux
	OperatingSystemDarwin
	OperatingSystemWindows
	OperatingSystemFreeBSD
	OperatingSystemIOS
	OperatingSystemNone
	OperatingSystemWasi
)

func (o OperatingSystem) String() string {
	switch o {
	case OperatingSystemLinux:
		return "linux"
	case OperatingSystemDarwin:
		return "darwin"
	case OperatingSystemWindows:
		return "windows"
	case OperatingSystemFreeBSD:
		return "freebsd"
	case OperatingSystemIOS:
		return "ios"
	case OperatingSystemNone:
		return "none"
	case OperatingSystemWasi:
		return "wasi"
	default:
		return "unknown"
	}
}

// Environment is the internal ABI/environment domain.
type Environment int

const (
	EnvironmentUnknown Environment = iota
	EnvironmentGNU
	EnvironmentMusl
	EnvironmentMSVC
	EnvironmentAndroid
	EnvironmentWasi
)

func (e Environment) String() string {
	switch e {
	case EnvironmentGNU:
		return "gnu"
	case EnvironmentMusl:
		return "musl"
	case EnvironmentMSVC:
		return "msvc"
	case EnvironmentAndroid:
		return "android"
	case EnvironmentWasi:
		return "wasi"
	default:
		return "unknown"
	}
}

// BinaryFormat is the internal object/binary-format domain.
type BinaryFormat int

const (
	BinaryFormatUnknown BinaryFormat = iota
	BinaryFormatELF
	BinaryFormatMachO
	BinaryFormatCOFF
	BinaryFormatWasm
)

func (b BinaryFormat) String() string {
	switch b {
	case BinaryFormatELF:
		return "elf"
	case BinaryFormatMachO:
		return "macho"
	case BinaryFormatCOFF:
		return "coff"
	case BinaryFormatWasm:
		return "wasm"
	default:
		return "unknown"
	}
}

// Triple is the internal five-field target descriptor threaded through
// internal/compiler, internal/cache, and internal/pipeline.
type Triple struct {
	Architecture    Architecture
	Vendor          Vendor
	OperatingSystem OperatingSystem
	Environment     Environment
	BinaryFormat    BinaryFormat
}

// String renders a target-triple-style string, e.g. "x86_64-pc-linux-gnu".
func (t Triple) String() string {
	return fmt.Sprintf("%s-%s-%s-%s", t.Architecture, t.Vendor, t.OperatingSystem, t.Environment)
}

// Host returns x86_64-unknown-linux-gnu with the ELF binary format, a fixed
// stand-in for the process's native target. NewNativeBuilder does not apply
// it: a freshly constructed builder's triple is the zero Triple, with every
// field Unknown, until Target is called.
func Host() Triple {
	return Triple{
		Architecture:    ArchitectureX86_64,
		Vendor:          VendorUnknown,
		OperatingSystem: OperatingSystemLinux,
		Environment:     EnvironmentGNU,
		BinaryFormat:    BinaryFormatELF,
	}
}
