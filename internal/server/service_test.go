// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/skylift/skylift/internal/cache"
	"github.com/skylift/skylift/internal/codegen"
	skyliftv1 "github.com/skylift/skylift/rpc/skylift/v1"
)

// newTestClient spins up the Compiler service over an in-memory bufconn
// listener and returns a connected client, the Go analogue of an in-process
// tonic test harness (spec.md §8's concrete scenarios are server-level
// behaviors, best exercised end-to-end over the real wire contract rather
// than against Service's methods directly).
func newTestClient(t *testing.T) skyliftv1.CompilerClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	skyliftv1.RegisterCompilerServer(srv, NewService(codegen.NewNative(), cache.Disabled{}))
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

	return skyliftv1.NewCompilerClient(conn)
}

func withRemoteID(ctx context.Context, remoteID string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, skyliftv1.RemoteIDHeader, remoteID)
}

func TestNewBuilderThenSetTargetThenBuild(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	nb, err := client.NewBuilder(ctx, &skyliftv1.Empty{})
	require.NoError(t, err)
	require.NotEmpty(t, nb.RemoteId)

	rctx := withRemoteID(ctx, nb.RemoteId)
	_, err = client.SetTarget(rctx, &skyliftv1.Triple{
		Architecture:    skyliftv1.Architecture_ARCHITECTURE_X86_64,
		OperatingSystem: skyliftv1.OperatingSystem_OPERATING_SYSTEM_LINUX,
	})
	require.NoError(t, err)

	triple, err := client.GetTriple(rctx, &skyliftv1.Empty{})
	require.NoError(t, err)
	require.Equal(t, skyliftv1.Architecture_ARCHITECTURE_X86_64, triple.Architecture)

	build, err := client.Build(rctx, &skyliftv1.Empty{})
	require.NoError(t, err)
	require.Equal(t, nb.RemoteId, build.RemoteId)
}

func TestOperationsWithoutRemoteIDFailPrecondition(t *testing.T) {
	client := newTestClient(t)
	_, err := client.SetTarget(context.Background(), &skyliftv1.Triple{})
	require.Error(t, err)
}

func TestOperationsWithUnknownRemoteIDFailPrecondition(t *testing.T) {
	client := newTestClient(t)
	ctx := withRemoteID(context.Background(), "does-not-exist")
	_, err := client.GetTriple(ctx, &skyliftv1.Empty{})
	require.Error(t, err)
}

func TestCompilerOperationsFailBeforeBuild(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	nb, err := client.NewBuilder(ctx, &skyliftv1.Empty{})
	require.NoError(t, err)
	rctx := withRemoteID(ctx, nb.RemoteId)

	_, err = client.GetFlags(rctx, &skyliftv1.Empty{})
	require.Error(t, err)
}

func TestBuildModuleEndToEnd(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	nb, err := client.NewBuilder(ctx, &skyliftv1.Empty{})
	require.NoError(t, err)
	rctx := withRemoteID(ctx, nb.RemoteId)

	_, err = client.Build(rctx, &skyliftv1.Empty{})
	require.NoError(t, err)

	wasm := append([]byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}, 0xaa)
	resp, err := client.BuildModule(rctx, &skyliftv1.BuildModuleRequest{Wasm: wasm})
	require.NoError(t, err)
	require.NotNil(t, resp.SerializedModule)
	require.Equal(t, skyliftv1.SerializedModuleTypeURL, resp.SerializedModule.TypeUrl)
	require.NotEmpty(t, resp.SerializedModule.Value)
}

func TestBuildModuleRejectsMalformedWasm(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	nb, err := client.NewBuilder(ctx, &skyliftv1.Empty{})
	require.NoError(t, err)
	rctx := withRemoteID(ctx, nb.RemoteId)
	_, err = client.Build(rctx, &skyliftv1.Empty{})
	require.NoError(t, err)

	_, err = client.BuildModule(rctx, &skyliftv1.BuildModuleRequest{Wasm: []byte{1, 2, 3}})
	require.Error(t, err)
}

func TestSetAndGetSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	nb, err := client.NewBuilder(ctx, &skyliftv1.Empty{})
	require.NoError(t, err)
	rctx := withRemoteID(ctx, nb.RemoteId)

	_, err = client.SetSettings(rctx, &skyliftv1.SetRequest{Name: "opt_level", Value: "speed"})
	require.NoError(t, err)
	_, err = client.EnableSettings(rctx, &skyliftv1.EnableRequest{Name: "enable_verifier"})
	require.NoError(t, err)

	settings, err := client.GetSettings(rctx, &skyliftv1.Empty{})
	require.NoError(t, err)
	require.NotEmpty(t, settings.Settings)
}
