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
	"unicode/utf8"
)

// selfDescribeTag is the CBOR "self-describe" tag (RFC 8949 §3.4.6).
// Invariant 5 of the codec forbids ever emitting or accepting it.
const selfDescribeTag uint64 = 55799

// Decode parses data as a single dCBOR item, requiring the entire input to
// be consumed. Decoding uses DefaultLimits.
func Decode(data []byte) (Value, error) {
	return DecodeWithLimits(data, DefaultLimits())
}

// DecodeWithLimits parses data as a single dCBOR item under lim, requiring
// the entire input to be consumed.
func DecodeWithLimits(data []byte, lim Limits) (Value, error) {
	v, n, err := decodePrefix(data, lim)
	if err != nil {
		return Value{}, err
	}
	if n != len(data) {
		return Value{}, newDecodeError(ErrTrailingData, n, nil)
	}
	return v, nil
}

// DecodePrefix parses a single dCBOR item from the start of data, returning
// the value and the number of bytes it occupied. Unlike Decode, trailing
// bytes are not an error. DecodePrefix uses DefaultLimits.
func DecodePrefix(data []byte) (Value, int, error) {
	return decodePrefix(data, DefaultLimits())
}

func decodePrefix(data []byte, lim Limits) (Value, int, error) {
	if lim.MaxInputSize > 0 && len(data) > lim.MaxInputSize {
		return Value{}, 0, newDecodeError(ErrLengthExceedsInput, 0, nil)
	}
	d := &decoder{data: data, lim: lim}
	v, err := d.decodeValue(0, 0)
	if err != nil {
		return Value{}, 0, err
	}
	return v, d.off, nil
}

// DecodeSequence parses data as a concatenation of dCBOR items (RFC 8742
// CBOR Sequences), requiring the entire input to be consumed by the
// sequence as a whole.
func DecodeSequence(data []byte) ([]Value, error) {
	lim := DefaultLimits()
	if lim.MaxInputSize > 0 && len(data) > lim.MaxInputSize {
		return nil, newDecodeError(ErrLengthExceedsInput, 0, nil)
	}
	d := &decoder{data: data, lim: lim}
	var items []Value
	for d.off < len(data) {
		v, err := d.decodeValue(0, 0)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// decoder walks data once, left to right, tracking its own read offset.
type decoder struct {
	data []byte
	off  int
	lim  Limits
}

func (d *decoder) checkRemaining(n int, offset int) *DecodeError {
	if n < 0 || offset+n > len(d.data) {
		return newDecodeError(ErrTruncatedInput, offset, nil)
	}
	return nil
}

// decodeValue decodes a single item starting at d.off. depth is the
// current nesting depth (0 at the top level); headOffset is the offset of
// the item's own head. It is not used: errors report the offset read from
// d.off on entry.
func (d *decoder) decodeValue(depth int, headOffset int) (Value, *DecodeError) {
	_ = headOffset
	if depth > d.lim.MaxDepth {
		return Value{}, newDecodeError(ErrRecursionLimitExceeded, d.off, nil)
	}
	itemOffset := d.off
	major, arg, n, derr := decodeHead(d.data, d.off)
	if derr != nil {
		return Value{}, derr
	}
	d.off += n

	switch major {
	case majorUnsigned:
		return Value{kind: KindUnsigned, u: arg}, nil
	case majorNegative:
		return Value{kind: KindNegative, u: arg}, nil
	case majorBytes:
		if err := d.checkRemaining(int(arg), d.off); err != nil {
			if arg > uint64(len(d.data)) {
				return Value{}, newDecodeError(ErrLengthExceedsInput, itemOffset, nil)
			}
			return Value{}, err
		}
		b := make([]byte, arg)
		copy(b, d.data[d.off:d.off+int(arg)])
		d.off += int(arg)
		return Value{kind: KindBytes, b: b}, nil
	case majorText:
		if err := d.checkRemaining(int(arg), d.off); err != nil {
			if arg > uint64(len(d.data)) {
				return Value{}, newDecodeError(ErrLengthExceedsInput, itemOffset, nil)
			}
			return Value{}, err
		}
		raw := d.data[d.off : d.off+int(arg)]
		d.off += int(arg)
		s, derr := decodeTextBytes(raw, itemOffset)
		if derr != nil {
			return Value{}, derr
		}
		return Value{kind: KindText, s: s}, nil
	case majorArray:
		return d.decodeArray(arg, depth, itemOffset)
	case majorMap:
		return d.decodeMap(arg, depth, itemOffset)
	case majorTag:
		return d.decodeTagged(arg, depth, itemOffset)
	case majorSimple:
		ai := d.data[itemOffset] & 0x1f
		return d.decodeSimple(ai, arg, itemOffset)
	default:
		return Value{}, newDecodeError(ErrWrongType, itemOffset, nil)
	}
}

func decodeTextBytes(raw []byte, offset int) (string, *DecodeError) {
	if !utf8.Valid(raw) {
		return "", newDecodeError(ErrInvalidUTF8, offset, nil)
	}
	s := string(raw)
	if !isNFC(s) {
		return "", newDecodeError(ErrNonNFCText, offset, nil)
	}
	return s, nil
}

func (d *decoder) decodeArray(arg uint64, depth int, itemOffset int) (Value, *DecodeError) {
	// Never trust the claimed length to preallocate: every element takes at
	// least one byte, so a claimed count larger than the bytes remaining is
	// rejected before any allocation, and the backing slice starts small.
	if arg > uint64(len(d.data)-d.off) {
		return Value{}, newDecodeError(ErrLengthExceedsInput, itemOffset, nil)
	}
	items := make([]Value, 0, minInt(int(arg), 64))
	for i := uint64(0); i < arg; i++ {
		v, derr := d.decodeValue(depth+1, d.off)
		if derr != nil {
			return Value{}, derr
		}
		items = append(items, v)
	}
	return Value{kind: KindArray, arr: items}, nil
}

func (d *decoder) decodeMap(arg uint64, depth int, itemOffset int) (Value, *DecodeError) {
	if arg > uint64(len(d.data)-d.off) {
		return Value{}, newDecodeError(ErrLengthExceedsInput, itemOffset, nil)
	}
	rb := rawMapBuilder{entries: make([]mapEntry, 0, minInt(int(arg), 64))}
	var prevKeyEnc []byte
	for i := uint64(0); i < arg; i++ {
		keyStart := d.off
		k, derr := d.decodeValue(depth+1, d.off)
		if derr != nil {
			return Value{}, derr
		}
		keyEnc := d.data[keyStart:d.off]
		v, derr := d.decodeValue(depth+1, d.off)
		if derr != nil {
			return Value{}, derr
		}
		if prevKeyEnc != nil {
			switch bytes.Compare(prevKeyEnc, keyEnc) {
			case 0:
				return Value{}, newDecodeError(ErrDuplicateMapKey, keyStart, nil)
			case 1:
				return Value{}, newDecodeError(ErrMapKeysOutOfOrder, keyStart, nil)
			}
		}
		rb.append(append([]byte(nil), keyEnc...), k, v)
		prevKeyEnc = keyEnc
	}
	return Value{kind: KindMap, m: rb.finalize()}, nil
}

func (d *decoder) decodeTagged(tag uint64, depth int, itemOffset int) (Value, *DecodeError) {
	if tag == selfDescribeTag {
		return Value{}, newDecodeError(ErrForbiddenTag, itemOffset, nil)
	}
	content, derr := d.decodeValue(depth+1, d.off)
	if derr != nil {
		return Value{}, derr
	}
	return Value{kind: KindTagged, tag: tag, content: &content}, nil
}

// decodeSimple interprets a major-type-7 item. arg is whatever decodeHead
// already extracted: for simple values 0-22 it is the value itself; for
// the float widths (additional info 25/26/27) decodeHead has already
// consumed the trailing bytes and arg holds their raw bit pattern exactly
// as read, big-endian — there is nothing left on the wire for this
// function to read itself.
func (d *decoder) decodeSimple(ai byte, arg uint64, itemOffset int) (Value, *DecodeError) {
	switch ai {
	case 20:
		return Value{kind: KindBool, u: 0}, nil
	case 21:
		return Value{kind: KindBool, u: 1}, nil
	case 22:
		return Value{kind: KindNull}, nil
	case aiTwoByte:
		return decodeFloatBits(2, arg, itemOffset)
	case aiFourByte:
		return decodeFloatBits(4, arg, itemOffset)
	case aiEightByte:
		return decodeFloatBits(8, arg, itemOffset)
	default:
		// Includes simple(23) "undefined" and all other simple values,
		// none of which dCBOR allows on the wire.
		return Value{}, newDecodeError(ErrDisallowedSimpleValue, itemOffset, nil)
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
