// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package client

import (
	"context"

	"google.golang.org/grpc/metadata"

	skyliftv1 "github.com/skylift/skylift/rpc/skylift/v1"
)

// newCallContext returns a cancellable background context for one blocking
// RPC. NewBuilder and every Builder and Compiler method except BuildModule,
// which takes the caller's context, use it.
func newCallContext() (context.Context, context.CancelFunc) {
	return context.WithCancel(context.Background())
}

// withRemoteID attaches the session's remote-id header to outgoing
// metadata, the Go equivalent of the original's tonic InterceptedService
// wrapping every call for a given client (spec.md §6 "remote-id metadata").
func withRemoteID(ctx context.Context, remoteID string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, skyliftv1.RemoteIDHeader, remoteID)
}
