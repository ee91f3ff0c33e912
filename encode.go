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

// Encode returns the canonical dCBOR encoding of v. Encoding is total and
// infallible: any Value that exists was already validated at construction
// or decode time, so there is nothing left for Encode to reject.
func Encode(v Value) []byte {
	return appendValue(nil, v)
}

// EncodeSequence returns the concatenation of the canonical encodings of
// each Value in vs, in order, per RFC 8742 CBOR Sequences.
func EncodeSequence(vs []Value) []byte {
	var buf []byte
	for _, v := range vs {
		buf = appendValue(buf, v)
	}
	return buf
}

func appendValue(buf []byte, v Value) []byte {
	switch v.kind {
	case KindUnsigned:
		return appendHead(buf, majorUnsigned, v.u)
	case KindNegative:
		return appendHead(buf, majorNegative, v.u)
	case KindBytes:
		buf = appendHead(buf, majorBytes, uint64(len(v.b)))
		return append(buf, v.b...)
	case KindText:
		raw := []byte(v.s)
		buf = appendHead(buf, majorText, uint64(len(raw)))
		return append(buf, raw...)
	case KindArray:
		buf = appendHead(buf, majorArray, uint64(len(v.arr)))
		for _, e := range v.arr {
			buf = appendValue(buf, e)
		}
		return buf
	case KindMap:
		buf = appendHead(buf, majorMap, uint64(v.m.Len()))
		v.m.rangeEncoded(func(ek []byte, val Value) {
			buf = append(buf, ek...)
			buf = appendValue(buf, val)
		})
		return buf
	case KindTagged:
		buf = appendHead(buf, majorTag, v.tag)
		return appendValue(buf, *v.content)
	case KindBool:
		if v.u != 0 {
			return append(buf, 0xf5)
		}
		return append(buf, 0xf4)
	case KindNull:
		return append(buf, 0xf6)
	case KindFloat:
		return appendFloat(buf, v.f)
	default:
		return buf
	}
}
