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

// Limits bounds the resources a decode operation may consume on untrusted
// input. The decoder never pre-allocates array or map backing storage
// without first checking that enough bytes remain in the input for the
// claimed element count, so a header claiming billions of items cannot by
// itself exhaust memory; Limits additionally bounds recursion depth and,
// optionally, total input size.
type Limits struct {
	// MaxDepth is the maximum nesting depth of arrays, maps, and tags,
	// counting the top-level item as depth 0. DefaultLimits sets it to 256,
	// matching the nested-level default this codec's ancestor CBOR library
	// used for blocks with unusually deep nesting in the wild. A zero
	// MaxDepth is used as is and admits no nested items.
	MaxDepth int

	// MaxInputSize caps the number of bytes Decode/DecodePrefix will
	// accept. Zero means unlimited.
	MaxInputSize int
}

// DefaultLimits returns the Limits used when none are supplied explicitly.
func DefaultLimits() Limits {
	return Limits{MaxDepth: 256}
}
