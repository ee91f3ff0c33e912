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

import "golang.org/x/text/unicode/norm"

// normalizeNFC normalizes s to Unicode Normalization Form C. Used only on
// the construction path, where the caller's input is trusted to become
// normalized rather than rejected.
func normalizeNFC(s string) string {
	return norm.NFC.String(s)
}

// isNFC reports whether s is already in Unicode Normalization Form C. Used
// only on the decode path, which validates but never silently normalizes.
func isNFC(s string) bool {
	return norm.NFC.IsNormalString(s)
}
