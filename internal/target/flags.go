// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package target

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// FlagKind tags which variant of FlagValue is populated, standing in for
// wasmtime_environ::FlagValue's {Enum, Num, Bool} shape.
type FlagKind int

const (
	FlagKindBool FlagKind = iota
	FlagKindNum
	FlagKindEnum
)

// FlagValue is a single compiler flag's value: exactly one of Bool, Num, or
// Enum is meaningful, selected by Kind. The set of flag kinds is open-ended
// upstream (new Cranelift settings appear over time), so this is a small
// closed sum rather than an interface — simple enough to gob-encode without
// registering per-flag types.
type FlagValue struct {
	Kind FlagKind
	Bool bool
	Num  uint64
	Enum string
}

func (f FlagValue) String() string {
	switch f.Kind {
	case FlagKindBool:
		return fmt.Sprintf("%t", f.Bool)
	case FlagKindNum:
		return fmt.Sprintf("%d", f.Num)
	case FlagKindEnum:
		return f.Enum
	default:
		return "<invalid flag>"
	}
}

// FlagMap is the builder/compiler's shared or ISA-specific flag set, keyed
// by flag name.
type FlagMap map[string]FlagValue

// EncodeFlagMap serializes a FlagMap into the opaque bytes field the wire
// FlagMap message carries. gob is used deliberately here — see DESIGN.md for
// why no third-party serialization library was reached for on this single,
// fully-internal Go-to-Go leaf.
func EncodeFlagMap(m FlagMap) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(m); err != nil {
		return nil, fmt.Errorf("encode flag map: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeFlagMap is the inverse of EncodeFlagMap. Any value this codebase
// produced must round-trip through it (spec.md §6).
func DecodeFlagMap(data []byte) (FlagMap, error) {
	if len(data) == 0 {
		return FlagMap{}, nil
	}
	var m FlagMap
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode flag map: %w", err)
	}
	return m, nil
}

// Equal reports whether two flag maps hold identical values.
func (m FlagMap) Equal(other FlagMap) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}
