// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package pipeline

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/skylift/skylift/internal/compiler"
	"github.com/skylift/skylift/internal/target"
)

// Envelope is the self-contained, serialized form of a BuildModule result:
// every compiled Artifact plus the compiler configuration that produced
// them, so a client can deserialize it without a side channel back to the
// server. Grounded on
// original_source/crates/skylift-server/src/server/service.rs's
// SerializedModule::from_raw, which bundles compiled artifacts together
// with the triple, flags, isa_flags, tunables and features that produced
// them into one self-describing blob.
type Envelope struct {
	Triple     target.Triple
	Flags      target.FlagMap
	ISAFlags   target.FlagMap
	Tunables   compiler.Tunables
	Features   map[string]bool
	VersionTag string
	Artifacts  []Artifact
}

// Pack gob-encodes an Envelope into the payload BuildModuleResponse carries
// inside its type-url-tagged Any (spec.md §6 "BuildModuleResponse"). gob is
// used deliberately here for the same reason as target.EncodeFlagMap: see
// DESIGN.md.
func Pack(env Envelope) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(env); err != nil {
		return nil, fmt.Errorf("packing module envelope: %w", err)
	}
	return buf.Bytes(), nil
}

// Unpack is the inverse of Pack, used by the client-side synchronous
// adapter to recover a BuildModule result.
func Unpack(data []byte) (Envelope, error) {
	var env Envelope
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&env); err != nil {
		return Envelope{}, fmt.Errorf("unpacking module envelope: %w", err)
	}
	return env, nil
}
