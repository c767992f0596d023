// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package version carries the crate/module version tag that is folded into
// every fingerprint and artifact envelope so a serialized module can never
// be silently reused across incompatible Skylift builds.
package version

// Tag is mixed into cache.Fingerprint and stored in the artifact envelope's
// VersionTag field. The envelope is gob-encoded as a whole, so the tag is not
// a byte prefix of the serialized module. Bump it whenever the compile
// pipeline's output format or the fingerprint's input set changes.
const Tag = "skylift-v1"
