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

import "fmt"

// ErrorKind identifies which dCBOR rule an operation violated.
type ErrorKind int

const (
	ErrTruncatedInput ErrorKind = iota
	ErrNonMinimalHead
	ErrIndefiniteLength
	ErrReservedAdditionalInfo
	ErrNonCanonicalFloat
	ErrNonCanonicalNaN
	ErrNumericReductionRequired
	ErrNegativeZero
	ErrInvalidUTF8
	ErrNonNFCText
	ErrDuplicateMapKey
	ErrMapKeysOutOfOrder
	ErrDisallowedSimpleValue
	ErrForbiddenTag
	ErrTrailingData
	ErrRecursionLimitExceeded
	ErrLengthExceedsInput
	ErrWrongType
)

var errorKindNames = map[ErrorKind]string{
	ErrTruncatedInput:           "truncated input",
	ErrNonMinimalHead:           "non-minimal head",
	ErrIndefiniteLength:         "indefinite length not permitted",
	ErrReservedAdditionalInfo:   "reserved additional info",
	ErrNonCanonicalFloat:        "non-canonical float width",
	ErrNonCanonicalNaN:          "non-canonical NaN",
	ErrNumericReductionRequired: "numeric reduction required",
	ErrNegativeZero:             "negative zero",
	ErrInvalidUTF8:              "invalid UTF-8",
	ErrNonNFCText:               "text not in NFC",
	ErrDuplicateMapKey:          "duplicate map key",
	ErrMapKeysOutOfOrder:        "map keys out of order",
	ErrDisallowedSimpleValue:    "disallowed simple value",
	ErrForbiddenTag:             "forbidden tag",
	ErrTrailingData:             "trailing data",
	ErrRecursionLimitExceeded:   "recursion limit exceeded",
	ErrLengthExceedsInput:       "length exceeds input",
	ErrWrongType:                "wrong type",
}

func (k ErrorKind) String() string {
	if s, ok := errorKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// DecodeError is returned by any operation that rejects its input as
// non-deterministic CBOR, or by an accessor applied to the wrong Value
// variant. Offset is the byte position at which the problem was detected;
// it is -1 when Offset does not apply (e.g. a MapBuilder.Insert call, which
// has no associated input cursor).
type DecodeError struct {
	Kind   ErrorKind
	Offset int
	Err    error
}

func newDecodeError(kind ErrorKind, offset int, cause error) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, Err: cause}
}

func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		if e.Err != nil {
			return fmt.Sprintf("dcbor: %s at offset %d: %s", e.Kind, e.Offset, e.Err)
		}
		return fmt.Sprintf("dcbor: %s at offset %d", e.Kind, e.Offset)
	}
	if e.Err != nil {
		return fmt.Sprintf("dcbor: %s: %s", e.Kind, e.Err)
	}
	return fmt.Sprintf("dcbor: %s", e.Kind)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
