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

// Package dcbor implements deterministic CBOR (dCBOR) as specified by
// draft-mcnally-deterministic-cbor, layered on the CBOR Common
// Deterministic Encoding rules of RFC 8949 §4.2.
//
// dCBOR restricts general CBOR to exactly one encoding per value: integers
// always use the shortest head, floats always use the shortest
// round-tripping width, NaN has exactly one bit pattern, map keys sort by
// the bytewise order of their own canonical encodings, and text is always
// NFC. A conforming implementation therefore gets byte-equality for free:
// two semantically equal values always produce identical wire bytes.
//
// Value is an immutable tagged union covering unsigned and negative
// integers, byte strings, text strings, arrays, maps, tagged items, and
// the three simple values false/true/null plus floats. Construct one with
// the New* functions, pull a payload back out with the matching accessor,
// and move it to and from the wire with Encode/Decode. Decode reports
// structural violations — non-minimal heads, out-of-order map keys, a
// non-canonical NaN, and the rest of the taxonomy in DecodeError — rather
// than silently repairing them.
package dcbor
