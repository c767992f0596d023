// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package client

import (
	"github.com/pkg/errors"

	"github.com/skylift/skylift/internal/compiler"
	"github.com/skylift/skylift/internal/target"
	skyliftv1 "github.com/skylift/skylift/rpc/skylift/v1"
)

// Builder implements compiler.Builder over a remote session, forwarding
// every call to the server as a blocking RPC. Grounded on
// original_source/crates/skylift/src/client/builder.rs's Builder: like the
// original, the triple is cached locally after Target so Triple can return
// it without a round trip — the original's own "FIXME: Immutable self
// borrow" comment is exactly this constraint, mirrored here deliberately
// rather than worked around, since compiler.Builder.Triple has no error
// return to report an RPC failure through.
type Builder struct {
	client   skyliftv1.CompilerClient
	remoteID string
	triple   target.Triple
}

var _ compiler.Builder = (*Builder)(nil)

// RemoteID returns the session identifier the server minted for this
// Builder, for callers that need to correlate logs or reconnect.
func (b *Builder) RemoteID() string { return b.remoteID }

func (b *Builder) Target(t target.Triple) error {
	ctx, cancel := newCallContext()
	defer cancel()

	_, err := b.client.SetTarget(withRemoteID(ctx, b.remoteID), target.ToWire(t))
	if err != nil {
		return errors.Wrap(err, "setting target triple")
	}
	b.triple = t
	return nil
}

// Triple returns the locally cached triple; it performs no RPC (see the
// type doc comment).
func (b *Builder) Triple() target.Triple { return b.triple }

func (b *Builder) Set(name string, value target.FlagValue) error {
	ctx, cancel := newCallContext()
	defer cancel()

	_, err := b.client.SetSettings(withRemoteID(ctx, b.remoteID), &skyliftv1.SetRequest{
		Name:  name,
		Value: value.String(),
	})
	return errors.Wrap(err, "setting compiler setting")
}

func (b *Builder) Enable(name string) error {
	ctx, cancel := newCallContext()
	defer cancel()

	_, err := b.client.EnableSettings(withRemoteID(ctx, b.remoteID), &skyliftv1.EnableRequest{Name: name})
	return errors.Wrap(err, "enabling compiler setting")
}

func (b *Builder) Settings() []compiler.Setting {
	ctx, cancel := newCallContext()
	defer cancel()

	resp, err := b.client.GetSettings(withRemoteID(ctx, b.remoteID), &skyliftv1.Empty{})
	if err != nil {
		return nil
	}
	settings, err := compiler.DecodeSettings(resp.Settings)
	if err != nil {
		return nil
	}
	return settings
}

// Build calls the remote session's Build, transitioning it server-side to
// the Compile state, and returns a Compiler bound to the same session
// (spec.md §4.2 "Build").
func (b *Builder) Build(env compiler.Env) (compiler.Compiler, error) {
	ctx, cancel := newCallContext()
	defer cancel()

	_, err := b.client.Build(withRemoteID(ctx, b.remoteID), &skyliftv1.Empty{})
	if err != nil {
		return nil, errors.Wrap(err, "building compiler")
	}

	return &Compiler{client: b.client, remoteID: b.remoteID, triple: b.triple}, nil
}
