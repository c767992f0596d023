// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package client

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/skylift/skylift/internal/cache"
	"github.com/skylift/skylift/internal/codegen"
	"github.com/skylift/skylift/internal/compiler"
	"github.com/skylift/skylift/internal/logging"
	"github.com/skylift/skylift/internal/server"
	"github.com/skylift/skylift/internal/target"
)

// dialTestServer spins up the real Compiler service over an in-memory
// bufconn listener, the same harness internal/server/service_test.go uses,
// exercised here from the public client's perspective instead of the raw
// generated stub.
func dialTestServer(t *testing.T) grpc.ClientConnInterface {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := server.New(logging.New("error"), cache.Disabled{})
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return conn
}

func TestBuilderTargetThenBuildRoundTrip(t *testing.T) {
	conn := dialTestServer(t)

	b, err := NewBuilder(conn)
	require.NoError(t, err)
	require.NotEmpty(t, b.RemoteID())

	triple := target.Triple{Architecture: target.ArchitectureX86_64, OperatingSystem: target.OperatingSystemLinux}
	require.NoError(t, b.Target(triple))
	require.Equal(t, triple, b.Triple())

	c, err := b.Build(compiler.Env{})
	require.NoError(t, err)
	require.Equal(t, triple, c.Triple())
}

func TestBuilderSetAndEnableSettings(t *testing.T) {
	conn := dialTestServer(t)

	b, err := NewBuilder(conn)
	require.NoError(t, err)

	require.NoError(t, b.Set("opt_level", target.FlagValue{Kind: target.FlagKindEnum, Enum: "speed"}))
	require.NoError(t, b.Enable("enable_verifier"))

	settings := b.Settings()
	require.NotEmpty(t, settings)
}

func TestCompilerBuildModuleEndToEnd(t *testing.T) {
	conn := dialTestServer(t)

	b, err := NewBuilder(conn)
	require.NoError(t, err)
	require.NoError(t, b.Target(target.Triple{Architecture: target.ArchitectureX86_64, OperatingSystem: target.OperatingSystemLinux}))

	built, err := b.Build(compiler.Env{})
	require.NoError(t, err)

	c, ok := built.(*Compiler)
	require.True(t, ok)

	wasm := append([]byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}, 0xaa)
	env, err := c.BuildModule(context.Background(), wasm, compiler.Env{})
	require.NoError(t, err)
	require.Equal(t, target.ArchitectureX86_64, env.Triple.Architecture)
	require.NotEmpty(t, env.Artifacts)
}

func TestCompilerPerFunctionMethodsAreUnsupported(t *testing.T) {
	conn := dialTestServer(t)

	b, err := NewBuilder(conn)
	require.NoError(t, err)
	built, err := b.Build(compiler.Env{})
	require.NoError(t, err)

	c, ok := built.(*Compiler)
	require.True(t, ok)

	_, err = c.CompileFunction(nil, 0, codegen.FunctionBody{}, codegen.TypeTables{})
	require.ErrorIs(t, err, errRemoteCompileNotSupported)
}

func TestCompilerFlagsRoundTrip(t *testing.T) {
	conn := dialTestServer(t)

	b, err := NewBuilder(conn)
	require.NoError(t, err)
	require.NoError(t, b.Target(target.Triple{Architecture: target.ArchitectureX86_64, OperatingSystem: target.OperatingSystemLinux}))

	built, err := b.Build(compiler.Env{})
	require.NoError(t, err)
	c, ok := built.(*Compiler)
	require.True(t, ok)

	flags := c.Flags()
	require.NotNil(t, flags)
}
