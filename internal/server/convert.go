// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package server

import (
	"github.com/skylift/skylift/internal/compiler"
)

// envFromRequest builds a compiler.Env from a BuildModuleRequest's opaque
// tunables/features payloads, rejecting anything that fails to decode
// rather than silently defaulting — a malformed compile environment is a
// client error, not a server one (spec.md §7 "invalid_argument").
func envFromRequest(tunablesBytes, featuresBytes []byte, pagedMemoryInit bool) (compiler.Env, error) {
	tunables, err := compiler.DecodeTunables(tunablesBytes)
	if err != nil {
		return compiler.Env{}, invalidArgument(err.Error())
	}
	features, err := compiler.DecodeFeatures(featuresBytes)
	if err != nil {
		return compiler.Env{}, invalidArgument(err.Error())
	}
	return compiler.Env{
		Tunables:        tunables,
		Features:        features,
		PagedMemoryInit: pagedMemoryInit,
	}, nil
}
