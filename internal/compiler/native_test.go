// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package compiler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skylift/skylift/internal/codegen"
	"github.com/skylift/skylift/internal/target"
)

func TestBuilderSetUnknownSettingFails(t *testing.T) {
	b := NewNativeBuilder()
	err := b.Set("not_a_real_setting", target.FlagValue{Kind: target.FlagKindBool, Bool: true})
	require.ErrorIs(t, err, ErrUnknownSetting)
}

func TestBuilderEnableOnlyAcceptsBoolSettings(t *testing.T) {
	b := NewNativeBuilder()
	err := b.Enable("opt_level")
	require.ErrorIs(t, err, ErrUnknownSetting)

	require.NoError(t, b.Enable("enable_verifier"))
	settings := b.Settings()
	require.Len(t, settings, 1)
	require.Equal(t, "enable_verifier", settings[0].Name)
	require.True(t, settings[0].Value.Bool)
}

func TestBuilderSettingsAreSortedByName(t *testing.T) {
	b := NewNativeBuilder()
	require.NoError(t, b.Set("has_sse41", target.FlagValue{Bool: true}))
	require.NoError(t, b.Set("enable_verifier", target.FlagValue{Bool: false}))
	require.NoError(t, b.Set("opt_level", target.FlagValue{Enum: "speed"}))

	settings := b.Settings()
	require.Len(t, settings, 3)
	require.Equal(t, "enable_verifier", settings[0].Name)
	require.Equal(t, "has_sse41", settings[1].Name)
	require.Equal(t, "opt_level", settings[2].Name)
}

func TestBuildCapturesTripleAndSettings(t *testing.T) {
	b := NewNativeBuilder()
	triple := target.Triple{Architecture: target.ArchitectureX86_64, OperatingSystem: target.OperatingSystemLinux}
	require.NoError(t, b.Target(triple))
	require.NoError(t, b.Set("has_avx2", target.FlagValue{Bool: true}))

	c, err := b.Build(Env{})
	require.NoError(t, err)
	require.Equal(t, triple, c.Triple())
	require.True(t, c.Flags()["has_avx2"].Bool)
}

func TestISAFlagsIsSubsetOfFlags(t *testing.T) {
	b := NewNativeBuilder()
	require.NoError(t, b.Set("has_avx2", target.FlagValue{Bool: true}))
	require.NoError(t, b.Set("opt_level", target.FlagValue{Enum: "speed"}))

	c, err := b.Build(Env{})
	require.NoError(t, err)

	isaFlags := c.ISAFlags()
	require.Contains(t, isaFlags, "has_avx2")
	require.NotContains(t, isaFlags, "opt_level")
	require.Contains(t, c.Flags(), "opt_level")
}

func TestEmitObjectProducesTrampolinesForEveryExport(t *testing.T) {
	b := NewNativeBuilder()
	c, err := b.Build(Env{})
	require.NoError(t, err)

	parser := codegen.NewNative()
	wasm := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00, 0xaa}
	translations, types, err := parser.Parse(wasm)
	require.NoError(t, err)
	require.Len(t, translations, 1)

	tr := translations[0]
	bodies := tr.TakeFunctionBodies()
	funcs := map[codegen.DefinedFuncIndex]codegen.CompiledFunction{}
	for _, body := range bodies {
		compiled, err := c.CompileFunction(tr, body.Index, body, types)
		require.NoError(t, err)
		funcs[body.Index] = compiled
	}

	_, _, trampolines, err := c.EmitObject(tr, types, funcs, false)
	require.NoError(t, err)
	require.Len(t, tr.Exports, 1)
	require.Len(t, trampolines, 2*len(tr.Exports), "expect a host-to-wasm and wasm-to-host trampoline per export")
}

func TestEmitObjectTrampolinesAreCachedBySignature(t *testing.T) {
	b := NewNativeBuilder()
	c, err := b.Build(Env{})
	require.NoError(t, err)
	nc := c.(*nativeCompiler)

	parser := codegen.NewNative()
	wasm := []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}
	translations, types, err := parser.Parse(wasm)
	require.NoError(t, err)
	tr := translations[0]
	funcs := map[codegen.DefinedFuncIndex]codegen.CompiledFunction{}

	_, _, t1, err := nc.EmitObject(tr, types, funcs, false)
	require.NoError(t, err)
	_, _, t2, err := nc.EmitObject(tr, types, funcs, false)
	require.NoError(t, err)
	require.Equal(t, t1, t2)
}

func TestBuildSnapshotsSettingsIndependentOfBuilder(t *testing.T) {
	b := NewNativeBuilder()
	require.NoError(t, b.Set("has_sse3", target.FlagValue{Bool: true}))

	c, err := b.Build(Env{})
	require.NoError(t, err)

	require.NoError(t, b.Set("has_sse41", target.FlagValue{Bool: true}))
	require.NotContains(t, c.Flags(), "has_sse41")
}
