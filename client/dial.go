// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package client is the synchronous, embeddable adapter for Skylift:
// Builder and Compiler here implement the same compiler.Builder and
// compiler.Compiler capability interfaces the server projects sessions
// onto, but every method is a blocking gRPC round trip instead of local
// computation. A Go program that accepts a compiler.Builder never needs to
// know whether it got the native in-process one or this remote one.
// Grounded on
// original_source/crates/skylift/src/client/builder.rs and
// original_source/crates/skylift/src/client/compiler.rs — the original
// wraps a Tokio runtime so its otherwise-async tonic client can satisfy a
// synchronous trait; Go's gRPC client calls already block by default, so no
// such wrapping is needed here.
package client

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	skyliftv1 "github.com/skylift/skylift/rpc/skylift/v1"
)

// Dial connects to a Skylift server at addr and returns a ready-to-use
// gRPC connection. Callers are responsible for closing it.
func Dial(addr string) (*grpc.ClientConn, error) {
	return grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

// NewBuilder opens a fresh remote session over conn and returns a Builder
// bound to it, the client-side counterpart of NewBuilder minting a
// RemoteID server-side (spec.md §4.1 "NewBuilder").
func NewBuilder(conn grpc.ClientConnInterface) (*Builder, error) {
	rpc := skyliftv1.NewCompilerClient(conn)
	ctx, cancel := newCallContext()
	defer cancel()

	resp, err := rpc.NewBuilder(ctx, &skyliftv1.Empty{})
	if err != nil {
		return nil, err
	}

	return &Builder{client: rpc, remoteID: resp.RemoteId}, nil
}
