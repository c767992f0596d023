// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package compiler

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"github.com/skylift/skylift/internal/target"
)

// EncodeTunables and DecodeTunables serialize Tunables into the opaque
// bytes field of the wire Tunables message, the same gob leaf as
// target.EncodeFlagMap and for the same reason (see DESIGN.md): this is a
// fully-internal Go-to-Go payload with no cross-language or long-term
// storage requirement.
func EncodeTunables(t Tunables) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(t); err != nil {
		return nil, fmt.Errorf("encode tunables: %w", err)
	}
	return buf.Bytes(), nil
}

func DecodeTunables(data []byte) (Tunables, error) {
	if len(data) == 0 {
		return Tunables{}, nil
	}
	var t Tunables
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&t); err != nil {
		return Tunables{}, fmt.Errorf("decode tunables: %w", err)
	}
	return t, nil
}

// EncodeFeatures and DecodeFeatures serialize the enabled-feature set the
// same way.
func EncodeFeatures(features map[string]bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(features); err != nil {
		return nil, fmt.Errorf("encode features: %w", err)
	}
	return buf.Bytes(), nil
}

func DecodeFeatures(data []byte) (map[string]bool, error) {
	if len(data) == 0 {
		return map[string]bool{}, nil
	}
	var features map[string]bool
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&features); err != nil {
		return nil, fmt.Errorf("decode features: %w", err)
	}
	return features, nil
}

// EncodeSettings and DecodeSettings serialize a []Setting for the wire
// SettingsResponse, reusing target.FlagMap's codec since a settings table is
// exactly a FlagMap keyed by name.
func EncodeSettings(settings []Setting) ([]byte, error) {
	m := make(target.FlagMap, len(settings))
	for _, s := range settings {
		m[s.Name] = s.Value
	}
	return target.EncodeFlagMap(m)
}

func DecodeSettings(data []byte) ([]Setting, error) {
	m, err := target.DecodeFlagMap(data)
	if err != nil {
		return nil, err
	}
	out := make([]Setting, 0, len(m))
	for name, value := range m {
		out = append(out, Setting{Name: name, Value: value})
	}
	return out, nil
}
