// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package target

import (
	skyliftv1 "github.com/skylift/skylift/rpc/skylift/v1"
)

// Structures and enums are converted with match-style switches, mirroring
// the original Rust convert module's rationale: the internal Triple type is
// owned by this package, not generated code, so a plain switch is simpler
// and clearer than reflection-driven mapping.

// FromWireArchitecture converts a wire Architecture. Unknown (including
// unrecognized future values) maps to ArchitectureUnknown rather than
// failing the message, per spec.md §6.
func FromWireArchitecture(a skyliftv1.Architecture) Architecture {
	switch a {
	case skyliftv1.Architecture_ARCHITECTURE_X86_32:
		return ArchitectureX86_32
	case skyliftv1.Architecture_ARCHITECTURE_X86_64:
		return ArchitectureX86_64
	case skyliftv1.Architecture_ARCHITECTURE_ARM:
		return ArchitectureArm
	case skyliftv1.Architecture_ARCHITECTURE_AARCH64:
		return ArchitectureAarch64
	case skyliftv1.Architecture_ARCHITECTURE_RISCV64:
		return ArchitectureRiscv64
	case skyliftv1.Architecture_ARCHITECTURE_S390X:
		return ArchitectureS390x
	case skyliftv1.Architecture_ARCHITECTURE_WASM32:
		return ArchitectureWasm32
	case skyliftv1.Architecture_ARCHITECTURE_WASM64:
		return ArchitectureWasm64
	default:
		return ArchitectureUnknown
	}
}

func ToWireArchitecture(a Architecture) skyliftv1.Architecture {
	switch a {
	case ArchitectureX86_32:
		return skyliftv1.Architecture_ARCHITECTURE_X86_32
	case ArchitectureX86_64:
		return skyliftv1.Architecture_ARCHITECTURE_X86_64
	case ArchitectureArm:
		return skyliftv1.Architecture_ARCHITECTURE_ARM
	case ArchitectureAarch64:
		return skyliftv1.Architecture_ARCHITECTURE_AARCH64
	case ArchitectureRiscv64:
		return skyliftv1.Architecture_ARCHITECTURE_RISCV64
	case ArchitectureS390x:
		return skyliftv1.Architecture_ARCHITECTURE_S390X
	case ArchitectureWasm32:
		return skyliftv1.Architecture_ARCHITECTURE_WASM32
	case ArchitectureWasm64:
		return skyliftv1.Architecture_ARCHITECTURE_WASM64
	default:
		return skyliftv1.Architecture_ARCHITECTURE_UNKNOWN
	}
}

func FromWireVendor(v skyliftv1.Vendor) Vendor {
	switch v {
	case skyliftv1.Vendor_VENDOR_APPLE:
		return VendorApple
	case skyliftv1.Vendor_VENDOR_PC:
		return VendorPC
	case skyliftv1.Vendor_VENDOR_UNIKRAFT:
		return VendorUnikraft
	case skyliftv1.Vendor_VENDOR_WASMTIME:
		return VendorWasmtime
	case skyliftv1.Vendor_VENDOR_NINTENDO:
		return VendorNintendo
	default:
		return VendorUnknown
	}
}

func ToWireVendor(v Vendor) skyliftv1.Vendor {
	switch v {
	case VendorApple:
		return skyliftv1.Vendor_VENDOR_APPLE
	case VendorPC:
		return skyliftv1.Vendor_VENDOR_PC
	case VendorUnikraft:
		return skyliftv1.Vendor_VENDOR_UNIKRAFT
	case VendorWasmtime:
		return skyliftv1.Vendor_VENDOR_WASMTIME
	case VendorNintendo:
		return skyliftv1.Vendor_VENDOR_NINTENDO
	default:
		return skyliftv1.Vendor_VENDOR_UNKNOWN
	}
}

func FromWireOperatingSystem(o skyliftv1.OperatingSystem) OperatingSystem {
	switch o {
	case skyliftv1.OperatingSystem_OPERATING_SYSTEM_LINUX:
		return OperatingSystemLinux
	case skyliftv1.OperatingSystem_OPERATING_SYSTEM_DARWIN:
		return OperatingSystemDarwin
	case skyliftv1.OperatingSystem_OPERATING_SYSTEM_WINDOWS:
		return OperatingSystemWindows
	case skyliftv1.OperatingSystem_OPERATING_SYSTEM_FREEBSD:
		return OperatingSystemFreeBSD
	case skyliftv1.OperatingSystem_OPERATING_SYSTEM_IOS:
		return OperatingSystemIOS
	case skyliftv1.OperatingSystem_OPERATING_SYSTEM_NONE:
		return OperatingSystemNone
	case skyliftv1.OperatingSystem_OPERATING_SYSTEM_WASI:
		return OperatingSystemWasi
	default:
		return OperatingSystemUnknown
	}
}

func ToWireOperatingSystem(o OperatingSystem) skyliftv1.OperatingSystem {
	switch o {
	case OperatingSystemLinux:
		return skyliftv1.OperatingSystem_OPERATING_SYSTEM_LINUX
	case OperatingSystemDarwin:
		return skyliftv1.OperatingSystem_OPERATING_SYSTEM_DARWIN
	case OperatingSystemWindows:
		return skyliftv1.OperatingSystem_OPERATING_SYSTEM_WINDOWS
	case OperatingSystemFreeBSD:
		return skyliftv1.OperatingSystem_OPERATING_SYSTEM_FREEBSD
	case OperatingSystemIOS:
		return skyliftv1.OperatingSystem_OPERATING_SYSTEM_IOS
	case OperatingSystemNone:
		return skyliftv1.OperatingSystem_OPERATING_SYSTEM_NONE
	case OperatingSystemWasi:
		return skyliftv1.OperatingSystem_OPERATING_SYSTEM_WASI
	default:
		return skyliftv1.OperatingSystem_OPERATING_SYSTEM_UNKNOWN
	}
}

func FromWireEnvironment(e skyliftv1.Environment) Environment {
	switch e {
	case skyliftv1.Environment_ENVIRONMENT_GNU:
		return EnvironmentGNU
	case skyliftv1.Environment_ENVIRONMENT_MUSL:
		return EnvironmentMusl
	case skyliftv1.Environment_ENVIRONMENT_MSVC:
		return EnvironmentMSVC
	case skyliftv1.Environment_ENVIRONMENT_ANDROID:
		return EnvironmentAndroid
	case skyliftv1.Environment_ENVIRONMENT_WASI:
		return EnvironmentWasi
	default:
		return EnvironmentUnknown
	}
}

func ToWireEnvironment(e Environment) skyliftv1.Environment {
	switch e {
	case EnvironmentGNU:
		return skyliftv1.Environment_ENVIRONMENT_GNU
	case EnvironmentMusl:
		return skyliftv1.Environment_ENVIRONMENT_MUSL
	case EnvironmentMSVC:
		return skyliftv1.Environment_ENVIRONMENT_MSVC
	case EnvironmentAndroid:
		return skyliftv1.Environment_ENVIRONMENT_ANDROID
	case EnvironmentWasi:
		return skyliftv1.Environment_ENVIRONMENT_WASI
	default:
		return skyliftv1.Environment_ENVIRONMENT_UNKNOWN
	}
}

func FromWireBinaryFormat(b skyliftv1.BinaryFormat) BinaryFormat {
	switch b {
	case skyliftv1.BinaryFormat_BINARY_FORMAT_ELF:
		return BinaryFormatELF
	case skyliftv1.BinaryFormat_BINARY_FORMAT_MACHO:
		return BinaryFormatMachO
	case skyliftv1.BinaryFormat_BINARY_FORMAT_COFF:
		return BinaryFormatCOFF
	case skyliftv1.BinaryFormat_BINARY_FORMAT_WASM:
		return BinaryFormatWasm
	default:
		return BinaryFormatUnknown
	}
}

func ToWireBinaryFormat(b BinaryFormat) skyliftv1.BinaryFormat {
	switch b {
	case BinaryFormatELF:
		return skyliftv1.BinaryFormat_BINARY_FORMAT_ELF
	case BinaryFormatMachO:
		return skyliftv1.BinaryFormat_BINARY_FORMAT_MACHO
	case BinaryFormatCOFF:
		return skyliftv1.BinaryFormat_BINARY_FORMAT_COFF
	case BinaryFormatWasm:
		return skyliftv1.BinaryFormat_BINARY_FORMAT_WASM
	default:
		return skyliftv1.BinaryFormat_BINARY_FORMAT_UNKNOWN
	}
}

// FromWire converts a wire Triple to the internal domain. Every field is
// converted independently and defaults to Unknown on an unrecognized value;
// the message itself is never rejected (spec.md §6).
//
// NOTE: the vendor field is read from wire.Vendor, not wire.Environment. An
// earlier revision of the Rust prototype had this backwards (spec.md §9,
// "Vendor enum ambiguity") — convert_test.go pins the correct mapping so it
// can't regress.
func FromWire(wire *skyliftv1.Triple) Triple {
	if wire == nil {
		return Triple{}
	}
	return Triple{
		Architecture:    FromWireArchitecture(wire.Architecture),
		Vendor:          FromWireVendor(wire.Vendor),
		OperatingSystem: FromWireOperatingSystem(wire.OperatingSystem),
		Environment:     FromWireEnvironment(wire.Environment),
		BinaryFormat:    FromWireBinaryFormat(wire.BinaryFormat),
	}
}

// ToWire converts an internal Triple to its wire projection.
func ToWire(t Triple) *skyliftv1.Triple {
	return &skyliftv1.Triple{
		Architecture:    ToWireArchitecture(t.Architecture),
		Vendor:          ToWireVendor(t.Vendor),
		OperatingSystem: ToWireOperatingSystem(t.OperatingSystem),
		Environment:     ToWireEnvironment(t.Environment),
		BinaryFormat:    ToWireBinaryFormat(t.BinaryFormat),
	}
}
