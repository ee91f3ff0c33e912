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
	"encoding/binary"
	"math"

	"github.com/x448/float16"
)

// canonicalNaNBits is the wire representation of the sole NaN this codec
// ever emits or accepts: a quiet half-precision NaN.
const canonicalNaNBits uint16 = 0x7e00

// twoPow64 and twoPow63 are float64 values equal to 2^64 and 2^63. Both are
// exactly representable in float64, so comparisons against them are exact.
const (
	twoPow63 = 9223372036854775808.0
	twoPow64 = 18446744073709551616.0
)

// reduceFloat implements the encode-side numeric reduction policy of the
// spec: NaN canonicalizes, infinities keep their sign, integer-valued
// floats in [-2^64, 2^64-1] (including -0.0, which is integer-valued 0)
// collapse onto UnsignedInt/NegativeInt, and everything else stays a
// Float.
func reduceFloat(f float64) Value {
	if math.IsNaN(f) {
		return Value{kind: KindFloat, f: math.NaN()}
	}
	if math.IsInf(f, 0) {
		return Value{kind: KindFloat, f: f}
	}
	if f == math.Trunc(f) && f >= -twoPow64 && f < twoPow64 {
		if f >= 0 {
			return Value{kind: KindUnsigned, u: uint64(f)}
		}
		mag := -f // mag in [1, 2^64]
		var n uint64
		if mag == twoPow64 {
			n = math.MaxUint64
		} else {
			n = uint64(mag) - 1
		}
		return Value{kind: KindNegative, u: n}
	}
	return Value{kind: KindFloat, f: f}
}

// appendFloat appends the shortest-round-trip encoding of f (half, single,
// or double precision) to buf.
func appendFloat(buf []byte, f float64) []byte {
	if math.IsNaN(f) {
		buf = append(buf, 0xf9)
		return binary.BigEndian.AppendUint16(buf, canonicalNaNBits)
	}
	if h := float16.Fromfloat32(float32(f)); float64(h.Float32()) == f {
		buf = append(buf, 0xf9)
		return binary.BigEndian.AppendUint16(buf, uint16(h))
	}
	if f32 := float32(f); float64(f32) == f {
		buf = append(buf, 0xfa)
		return binary.BigEndian.AppendUint32(buf, math.Float32bits(f32))
	}
	buf = append(buf, 0xfb)
	return binary.BigEndian.AppendUint64(buf, math.Float64bits(f))
}

// canRoundtripHalf reports whether v can be represented exactly by a
// half-precision float.
func canRoundtripHalf(v float64) bool {
	if math.IsInf(v, 0) {
		return true
	}
	h := float16.Fromfloat32(float32(v))
	return float64(h.Float32()) == v
}

// canRoundtripSingle reports whether v can be represented exactly by a
// single-precision float.
func canRoundtripSingle(v float64) bool {
	f32 := float32(v)
	return float64(f32) == v
}

// isIntegerInReducibleRange reports whether v is integer-valued and within
// the range that the encoder would have stored as UnsignedInt/NegativeInt.
func isIntegerInReducibleRange(v float64) bool {
	return v == math.Trunc(v) && v >= -twoPow64 && v < twoPow64
}

// decodeFloatBits interprets the width-byte-wide bit pattern read from the
// wire as a dCBOR float, enforcing shortest-width, canonical-NaN,
// negative-zero, and numeric-reduction rules. width is 2, 4, or 8.
func decodeFloatBits(width int, bits uint64, offset int) (Value, *DecodeError) {
	switch width {
	case 2:
		b16 := uint16(bits)
		h := float16.Frombits(b16)
		if h.IsNaN() {
			if b16 != canonicalNaNBits {
				return Value{}, newDecodeError(ErrNonCanonicalNaN, offset, nil)
			}
			return Value{kind: KindFloat, f: math.NaN()}, nil
		}
		return finishDecodedFloat(float64(h.Float32()), offset)
	case 4:
		f32 := math.Float32frombits(uint32(bits))
		if isNaN32(f32) {
			// Any NaN must be encoded at half precision with the exact
			// canonical bit pattern; a wider NaN is a NaN-canonicity
			// violation, not merely a non-shortest width.
			return Value{}, newDecodeError(ErrNonCanonicalNaN, offset, nil)
		}
		v := float64(f32)
		if canRoundtripHalf(v) {
			return Value{}, newDecodeError(ErrNonCanonicalFloat, offset, nil)
		}
		return finishDecodedFloat(v, offset)
	default: // 8
		f64 := math.Float64frombits(bits)
		if math.IsNaN(f64) {
			return Value{}, newDecodeError(ErrNonCanonicalNaN, offset, nil)
		}
		if canRoundtripHalf(f64) || canRoundtripSingle(f64) {
			return Value{}, newDecodeError(ErrNonCanonicalFloat, offset, nil)
		}
		return finishDecodedFloat(f64, offset)
	}
}

func isNaN32(f float32) bool {
	return f != f
}

// finishDecodedFloat applies the remaining decode-side checks (negative
// zero, numeric reduction) that apply regardless of wire width.
func finishDecodedFloat(v float64, offset int) (Value, *DecodeError) {
	if v == 0 && math.Signbit(v) {
		return Value{}, newDecodeError(ErrNegativeZero, offset, nil)
	}
	if isIntegerInReducibleRange(v) {
		return Value{}, newDecodeError(ErrNumericReductionRequired, offset, nil)
	}
	return Value{kind: KindFloat, f: v}, nil
}
