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

import "time"

// NewDate constructs a Value tagged with TagDate (1) wrapping t's Unix
// timestamp as seconds, expressed as an integer when t has no fractional
// second and as a Float otherwise.
func NewDate(t time.Time) Value {
	secs := t.UnixNano()
	whole := secs / int64(time.Second)
	frac := secs % int64(time.Second)
	var content Value
	if frac == 0 {
		content = NewInt(whole)
	} else {
		content = NewFloat(float64(secs) / float64(time.Second))
	}
	v, err := NewTagged(TagDate, content)
	if err != nil {
		// TagDate is never the forbidden self-describe tag.
		panic(err)
	}
	return v
}

// AsDate interprets v as a TagDate-tagged numeric value and returns the
// corresponding time, or ErrWrongType if v is not such a value.
func (v Value) AsDate() (time.Time, error) {
	tag, content, err := v.Tagged()
	if err != nil || tag != TagDate {
		return time.Time{}, wrongType(-1)
	}
	switch content.Kind() {
	case KindUnsigned, KindNegative:
		bi, err := content.BigInt()
		if err != nil {
			return time.Time{}, wrongType(-1)
		}
		return time.Unix(bi.Int64(), 0).UTC(), nil
	case KindFloat:
		f, err := content.Float()
		if err != nil {
			return time.Time{}, wrongType(-1)
		}
		secs := int64(f)
		nsec := int64((f - float64(secs)) * float64(time.Second))
		return time.Unix(secs, nsec).UTC(), nil
	default:
		return time.Time{}, wrongType(-1)
	}
}
