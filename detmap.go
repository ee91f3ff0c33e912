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

import "bytes"

// mapEntry is a single (key, value) pair together with the canonical
// encoding of key, which is what this package actually sorts and compares
// on — the on-wire order is dictated by bytewise comparison of encoded
// keys, not by any property of the keys themselves.
type mapEntry struct {
	key        Value
	value      Value
	encodedKey []byte
}

// Map is a deterministic map: a sorted, duplicate-free sequence of entries
// ordered by bytewise lexicographic comparison of each key's canonical
// encoding. Map values are immutable; build one with MapBuilder.
type Map struct {
	entries []mapEntry
}

// Len returns the number of entries in m.
func (m Map) Len() int {
	return len(m.entries)
}

// Get returns the value associated with k, and whether it was found.
func (m Map) Get(k Value) (Value, bool) {
	ek := Encode(k)
	i, found := searchEntries(m.entries, ek)
	if !found {
		return Value{}, false
	}
	return m.entries[i].value, true
}

// Range calls f for each entry in the map's canonical sort order, stopping
// early if f returns false.
func (m Map) Range(f func(k, v Value) bool) {
	for _, e := range m.entries {
		if !f(e.key, e.value) {
			return
		}
	}
}

// rangeEncoded calls f for each entry in sort order, giving the encoder
// direct access to the already-computed key encoding so it never
// re-derives a sort key it has already computed once.
func (m Map) rangeEncoded(f func(encodedKey []byte, v Value)) {
	for _, e := range m.entries {
		f(e.encodedKey, e.value)
	}
}

// searchEntries binary-searches entries (sorted by encodedKey) for ek,
// returning the insertion point and whether ek was found there exactly.
func searchEntries(entries []mapEntry, ek []byte) (int, bool) {
	lo, hi := 0, len(entries)
	for lo < hi {
		mid := (lo + hi) / 2
		switch bytes.Compare(entries[mid].encodedKey, ek) {
		case 0:
			return mid, true
		case -1:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

// MapBuilder accumulates entries and produces a finalized, sorted Map.
// Insert computes each key's canonical encoding up front, which is both
// the map's sort key and (per spec §4.5) the basis for duplicate
// detection — two keys collide exactly when their encodings are
// byte-equal, regardless of how they were constructed.
type MapBuilder struct {
	entries []mapEntry
}

// NewMapBuilder returns an empty MapBuilder.
func NewMapBuilder() *MapBuilder {
	return &MapBuilder{}
}

// Insert adds a (k, v) pair, returning a *DecodeError of kind
// ErrDuplicateMapKey if k's encoding already appears in the builder.
func (b *MapBuilder) Insert(k, v Value) error {
	ek := Encode(k)
	i, found := searchEntries(b.entries, ek)
	if found {
		return newDecodeError(ErrDuplicateMapKey, -1, nil)
	}
	entry := mapEntry{key: k, value: v, encodedKey: ek}
	b.entries = append(b.entries, mapEntry{})
	copy(b.entries[i+1:], b.entries[i:])
	b.entries[i] = entry
	return nil
}

// Len returns the number of entries inserted so far.
func (b *MapBuilder) Len() int {
	return len(b.entries)
}

// Finalize returns the built Map. The builder must not be reused
// afterward, as the returned Map aliases the builder's backing array.
func (b *MapBuilder) Finalize() Map {
	return Map{entries: b.entries}
}

// rawMapBuilder is the decoder's internal counterpart to MapBuilder: the
// decoder already knows entries arrive in strictly increasing key order
// (C7 enforces this before ever calling append), so it only appends
// instead of searching.
type rawMapBuilder struct {
	entries []mapEntry
}

func (b *rawMapBuilder) append(encodedKey []byte, k, v Value) {
	b.entries = append(b.entries, mapEntry{key: k, value: v, encodedKey: encodedKey})
}

func (b *rawMapBuilder) finalize() Map {
	return Map{entries: b.entries}
}
