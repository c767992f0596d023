// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package server

import (
	"net"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/skylift/skylift/internal/cache"
	"github.com/skylift/skylift/internal/codegen"
	skyliftv1 "github.com/skylift/skylift/rpc/skylift/v1"
)

// New constructs a *grpc.Server with the Compiler service registered and
// the structured-logging interceptor installed, wiring codegen.Native as
// the parser and the given cache store (spec.md §9 "StrictFlags"/cache
// feature gate; pass cache.Disabled{} to turn caching off entirely).
func New(logger *logrus.Logger, cacheStore cache.Store) *grpc.Server {
	srv := grpc.NewServer(grpc.UnaryInterceptor(loggingInterceptor(logger)))
	skyliftv1.RegisterCompilerServer(srv, NewService(codegen.NewNative(), cacheStore))
	return srv
}

// Serve blocks accepting connections on lis until the server is stopped or
// it returns an error, the Go analogue of the original's tonic Server::
// serve future.
func Serve(srv *grpc.Server, lis net.Listener) error {
	if err := srv.Serve(lis); err != nil {
		return errors.Wrap(err, "serving compiler service")
	}
	return nil
}
