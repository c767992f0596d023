// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package server implements the Compiler gRPC service: it wires a
// session.Store, the compiler capability interfaces, the compile pipeline,
// and the artifact cache together behind the generated CompilerServer
// interface. Grounded on
// original_source/crates/skylift-server/src/server/service.rs's
// CompilerService.
package server

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/skylift/skylift/internal/compiler"
	"github.com/skylift/skylift/internal/session"
)

// toStatus classifies an internal error into the gRPC status code the
// client is expected to react to, following spec.md §7's error table:
// unknown/missing session → FailedPrecondition, malformed input →
// InvalidArgument, everything else → Internal. Grounded on
// original_source/crates/skylift/src/server/service.rs's direct
// `Status::failed_precondition`/`Status::invalid_argument` call sites,
// centralized here instead of repeated at every handler.
func toStatus(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, session.ErrNotFound):
		return status.Error(codes.FailedPrecondition, "invalid remote id")
	case errors.Is(err, session.ErrWrongState):
		return status.Error(codes.FailedPrecondition, "session is not in the expected state for this operation")
	case errors.Is(err, compiler.ErrUnknownSetting):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, errInvalidArgument):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// errInvalidArgument-wrapped errors are produced by request validation
// (bad triple, malformed wasm, unparseable setting value) — distinct from
// compile-time failures, which are Internal (spec.md §7).
var errInvalidArgument = errors.New("invalid argument")

func invalidArgument(msg string) error {
	return statusWrap{msg}
}

// statusWrap lets invalidArgument participate in errors.Is(err,
// errInvalidArgument) while still carrying its own message.
type statusWrap struct{ msg string }

func (s statusWrap) Error() string        { return s.msg }
func (s statusWrap) Is(target error) bool { return target == errInvalidArgument }
