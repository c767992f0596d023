// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package skyliftv1

// RemoteIDHeader is the gRPC metadata key every call after NewBuilder must
// carry. gRPC metadata keys are restricted to lowercase letters, digits, and
// hyphens, so this is the wire-native spelling of spec.md's remote_id slot.
const RemoteIDHeader = "remote-id"

// SerializedModuleTypeURL tags the Any-wrapped artifact bytes returned by
// BuildModule so future server versions can switch encodings without
// breaking old clients.
const SerializedModuleTypeURL = "type.googleapis.com/skylift.v1.SerializedModuleV1"
