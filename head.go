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

import "encoding/binary"

// majorType is the 3-bit major type field of a CBOR head byte.
type majorType byte

const (
	majorUnsigned majorType = 0
	majorNegative majorType = 1
	majorBytes    majorType = 2
	majorText     majorType = 3
	majorArray    majorType = 4
	majorMap      majorType = 5
	majorTag      majorType = 6
	majorSimple   majorType = 7
)

const (
	aiOneByte   = 24
	aiTwoByte   = 25
	aiFourByte  = 26
	aiEightByte = 27
	aiReservedLo = 28
	aiReservedHi = 30
	aiIndefinite = 31
)

// appendHead appends the shortest possible CBOR head for (major, arg) to
// buf and returns the extended slice.
func appendHead(buf []byte, major majorType, arg uint64) []byte {
	ib := byte(major) << 5
	switch {
	case arg < aiOneByte:
		return append(buf, ib|byte(arg))
	case arg < 1<<8:
		return append(buf, ib|aiOneByte, byte(arg))
	case arg < 1<<16:
		buf = append(buf, ib|aiTwoByte)
		return binary.BigEndian.AppendUint16(buf, uint16(arg))
	case arg < 1<<32:
		buf = append(buf, ib|aiFourByte)
		return binary.BigEndian.AppendUint32(buf, uint32(arg))
	default:
		buf = append(buf, ib|aiEightByte)
		return binary.BigEndian.AppendUint64(buf, arg)
	}
}

// headSize returns the number of bytes appendHead would emit for arg,
// without actually encoding it.
func headSize(arg uint64) int {
	switch {
	case arg < aiOneByte:
		return 1
	case arg < 1<<8:
		return 2
	case arg < 1<<16:
		return 3
	case arg < 1<<32:
		return 5
	default:
		return 9
	}
}

// decodeHead parses the CBOR head starting at data[offset], returning the
// major type, the argument, and the number of bytes the head occupied.
func decodeHead(data []byte, offset int) (majorType, uint64, int, *DecodeError) {
	if offset >= len(data) {
		return 0, 0, 0, newDecodeError(ErrTruncatedInput, offset, nil)
	}
	first := data[offset]
	major := majorType(first >> 5)
	ai := first & 0x1f

	// For major type 7 (Simple/Float), additional-info values 25/26/27
	// select a width and the following bytes are a raw float bit pattern,
	// not a length- or magnitude-style argument — shortest-encoding rules
	// never apply to them, so the minimality checks below are skipped.
	isFloatBits := major == majorSimple

	switch {
	case ai < aiOneByte:
		return major, uint64(ai), 1, nil
	case ai == aiOneByte:
		if offset+2 > len(data) {
			return 0, 0, 0, newDecodeError(ErrTruncatedInput, offset, nil)
		}
		arg := uint64(data[offset+1])
		if !isFloatBits && arg < aiOneByte {
			return 0, 0, 0, newDecodeError(ErrNonMinimalHead, offset, nil)
		}
		return major, arg, 2, nil
	case ai == aiTwoByte:
		if offset+3 > len(data) {
			return 0, 0, 0, newDecodeError(ErrTruncatedInput, offset, nil)
		}
		arg := uint64(binary.BigEndian.Uint16(data[offset+1 : offset+3]))
		if !isFloatBits && arg < 1<<8 {
			return 0, 0, 0, newDecodeError(ErrNonMinimalHead, offset, nil)
		}
		return major, arg, 3, nil
	case ai == aiFourByte:
		if offset+5 > len(data) {
			return 0, 0, 0, newDecodeError(ErrTruncatedInput, offset, nil)
		}
		arg := uint64(binary.BigEndian.Uint32(data[offset+1 : offset+5]))
		if !isFloatBits && arg < 1<<16 {
			return 0, 0, 0, newDecodeError(ErrNonMinimalHead, offset, nil)
		}
		return major, arg, 5, nil
	case ai == aiEightByte:
		if offset+9 > len(data) {
			return 0, 0, 0, newDecodeError(ErrTruncatedInput, offset, nil)
		}
		arg := binary.BigEndian.Uint64(data[offset+1 : offset+9])
		if !isFloatBits && arg < 1<<32 {
			return 0, 0, 0, newDecodeError(ErrNonMinimalHead, offset, nil)
		}
		return major, arg, 9, nil
	case ai >= aiReservedLo && ai <= aiReservedHi:
		return 0, 0, 0, newDecodeError(ErrReservedAdditionalInfo, offset, nil)
	default: // ai == aiIndefinite
		return 0, 0, 0, newDecodeError(ErrIndefiniteLength, offset, nil)
	}
}
