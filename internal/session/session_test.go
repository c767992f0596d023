// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skylift/skylift/internal/compiler"
	"github.com/skylift/skylift/internal/target"
)

func TestMapCompilerFailsBeforeBuild(t *testing.T) {
	sess := NewBuildSession(compiler.NewNativeBuilder())
	err := sess.MapCompiler(func(compiler.Compiler) error { return nil })
	require.ErrorIs(t, err, ErrWrongState)
}

func TestMapBuilderFailsAfterBuild(t *testing.T) {
	sess := NewBuildSession(compiler.NewNativeBuilder())
	require.NoError(t, sess.Build(compiler.Env{}))

	err := sess.MapBuilder(func(compiler.Builder) error { return nil })
	require.ErrorIs(t, err, ErrWrongState)
}

func TestBuildTransitionIsOneWay(t *testing.T) {
	sess := NewBuildSession(compiler.NewNativeBuilder())
	require.NoError(t, sess.Build(compiler.Env{}))

	err := sess.Build(compiler.Env{})
	require.ErrorIs(t, err, ErrWrongState)
}

func TestBuildCarriesTripleIntoCompiler(t *testing.T) {
	b := compiler.NewNativeBuilder()
	triple := target.Triple{Architecture: target.ArchitectureAarch64, OperatingSystem: target.OperatingSystemDarwin}
	require.NoError(t, b.Target(triple))

	sess := NewBuildSession(b)
	require.NoError(t, sess.Build(compiler.Env{}))

	err := sess.MapCompiler(func(c compiler.Compiler) error {
		require.Equal(t, triple, c.Triple())
		return nil
	})
	require.NoError(t, err)
}

func TestMapBuilderLockedPropagatesSetError(t *testing.T) {
	sess := NewBuildSession(compiler.NewNativeBuilder())
	err := sess.MapBuilderLocked(func(b compiler.Builder) error {
		return b.Set("not_real", target.FlagValue{})
	})
	require.ErrorIs(t, err, compiler.ErrUnknownSetting)
}
