// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dcbor

import (
	"bytes"
	"math/big"
)

// Kind identifies which of the eight dCBOR variants a Value holds.
type Kind int

const (
	KindUnsigned Kind = iota
	KindNegative
	KindBytes
	KindText
	KindArray
	KindMap
	KindTagged
	KindBool
	KindNull
	KindFloat
)

var kindNames = [...]string{
	KindUnsigned: "unsigned",
	KindNegative: "negative",
	KindBytes:    "bytes",
	KindText:     "text",
	KindArray:    "array",
	KindMap:      "map",
	KindTagged:   "tagged",
	KindBool:     "bool",
	KindNull:     "null",
	KindFloat:    "float",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is the dCBOR tagged-union value type described by the spec. A
// Value is immutable once constructed; slices and maps embedded in one are
// never mutated in place, so copying a Value is always cheap and safe —
// the Go runtime's garbage collector, not a reference count, is what keeps
// the aliased backing arrays alive for as long as any Value still points
// at them.
type Value struct {
	kind    Kind
	u       uint64 // Unsigned: value. Negative: n (value = -1-n). Bool: 0 or 1.
	f       float64
	b       []byte
	s       string
	arr     []Value
	m       Map
	tag     uint64
	content *Value
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Equal reports whether v and other are equal, defined as spec §4.4
// requires: byte-equality of their canonical encodings.
func (v Value) Equal(other Value) bool {
	return bytes.Equal(Encode(v), Encode(other))
}

// String renders v using the default diagnostic formatter.
func (v Value) String() string {
	return Format(v)
}

func wrongType(offset int) *DecodeError {
	return newDecodeError(ErrWrongType, offset, nil)
}

// --- constructors ---

// NewUnsigned constructs an UnsignedInt Value.
func NewUnsigned(u uint64) Value {
	return Value{kind: KindUnsigned, u: u}
}

// NewInt constructs an UnsignedInt or NegativeInt Value from a host int64,
// covering the canonical half of the negative range ([-2^63, -1]).
func NewInt(i int64) Value {
	if i >= 0 {
		return Value{kind: KindUnsigned, u: uint64(i)}
	}
	// i in [-2^63, -1]; n = -1-i, computed without overflowing int64.
	n := uint64(-(i + 1))
	return Value{kind: KindNegative, u: n}
}

// NewNegativeN constructs a NegativeInt Value directly from its wire
// payload n, denoting the integer -1-n. This is the only constructor that
// reaches the extended range down to -2^64, which has no int64
// representation.
func NewNegativeN(n uint64) Value {
	return Value{kind: KindNegative, u: n}
}

// NewBytes constructs a ByteString Value. The byte slice is retained, not
// copied; callers must not mutate it afterward.
func NewBytes(b []byte) Value {
	return Value{kind: KindBytes, b: b}
}

// NewText constructs a TextString Value, silently normalizing s to NFC.
func NewText(s string) Value {
	return Value{kind: KindText, s: normalizeNFC(s)}
}

// NewArray constructs an Array Value. The slice is retained, not copied.
func NewArray(items []Value) Value {
	return Value{kind: KindArray, arr: items}
}

// NewMapValue wraps a finalized Map as a Value.
func NewMapValue(m Map) Value {
	return Value{kind: KindMap, m: m}
}

// NewTagged constructs a Tagged Value. It rejects tag 55799
// ("self-describe CBOR"), which invariant 5 forbids the encoder from ever
// emitting.
func NewTagged(tag uint64, content Value) (Value, error) {
	if tag == selfDescribeTag {
		return Value{}, newDecodeError(ErrForbiddenTag, -1, nil)
	}
	c := content
	return Value{kind: KindTagged, tag: tag, content: &c}, nil
}

// NewBool constructs a Simple::False or Simple::True Value.
func NewBool(b bool) Value {
	if b {
		return Value{kind: KindBool, u: 1}
	}
	return Value{kind: KindBool, u: 0}
}

// NewNull constructs the Simple::Null Value.
func NewNull() Value {
	return Value{kind: KindNull}
}

// NewFloat constructs a Value from a host float64, applying the numeric
// reduction policy of spec §4.2: NaNs canonicalize, integer-valued floats
// (including -0.0) become UnsignedInt/NegativeInt, everything else stays a
// Float.
func NewFloat(f float64) Value {
	return reduceFloat(f)
}

// --- accessors ---

// Unsigned returns the UnsignedInt payload of v, or ErrWrongType.
func (v Value) Unsigned() (uint64, error) {
	if v.kind != KindUnsigned {
		return 0, wrongType(-1)
	}
	return v.u, nil
}

// Negative returns the NegativeInt payload n of v (the value is -1-n), or
// ErrWrongType.
func (v Value) Negative() (uint64, error) {
	if v.kind != KindNegative {
		return 0, wrongType(-1)
	}
	return v.u, nil
}

// BigInt returns the exact integer value of v for either integer variant,
// using math/big so magnitudes down to -2^64 (which has no int64
// representation) are exposed without truncation.
func (v Value) BigInt() (*big.Int, error) {
	switch v.kind {
	case KindUnsigned:
		return new(big.Int).SetUint64(v.u), nil
	case KindNegative:
		// value = -1 - n
		r := new(big.Int).SetUint64(v.u)
		r.Add(r, big.NewInt(1))
		r.Neg(r)
		return r, nil
	default:
		return nil, wrongType(-1)
	}
}

// Bytes returns the ByteString payload of v, or ErrWrongType.
func (v Value) Bytes() ([]byte, error) {
	if v.kind != KindBytes {
		return nil, wrongType(-1)
	}
	return v.b, nil
}

// Text returns the TextString payload of v, or ErrWrongType.
func (v Value) Text() (string, error) {
	if v.kind != KindText {
		return "", wrongType(-1)
	}
	return v.s, nil
}

// Array returns the Array payload of v, or ErrWrongType.
func (v Value) Array() ([]Value, error) {
	if v.kind != KindArray {
		return nil, wrongType(-1)
	}
	return v.arr, nil
}

// Map returns the Map payload of v, or ErrWrongType.
func (v Value) Map() (Map, error) {
	if v.kind != KindMap {
		return Map{}, wrongType(-1)
	}
	return v.m, nil
}

// Tagged returns the tag number and content of v, or ErrWrongType.
func (v Value) Tagged() (uint64, Value, error) {
	if v.kind != KindTagged {
		return 0, Value{}, wrongType(-1)
	}
	return v.tag, *v.content, nil
}

// Bool returns the boolean payload of v, or ErrWrongType.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, wrongType(-1)
	}
	return v.u != 0, nil
}

// IsNull reports whether v is the Simple::Null value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Float returns the Float payload of v, or ErrWrongType.
func (v Value) Float() (float64, error) {
	if v.kind != KindFloat {
		return 0, wrongType(-1)
	}
	return v.f, nil
}
