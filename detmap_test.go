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

package dcbor_test

import (
	"testing"

	"github.com/dcbor-io/dcbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapBuilderSortsByEncodedKey(t *testing.T) {
	b := dcbor.NewMapBuilder()
	require.NoError(t, b.Insert(dcbor.NewUnsigned(10), dcbor.NewText("ten")))
	require.NoError(t, b.Insert(dcbor.NewUnsigned(1), dcbor.NewText("one")))
	require.NoError(t, b.Insert(dcbor.NewUnsigned(100), dcbor.NewText("hundred")))
	m := b.Finalize()

	var order []uint64
	m.Range(func(k, v dcbor.Value) bool {
		u, _ := k.Unsigned()
		order = append(order, u)
		return true
	})
	// Bytewise order of canonical encodings: 1 (0x01), 10 (0x0a), 100
	// (0x18 0x64) — the one-byte heads sort before the two-byte head,
	// whatever the insertion order was.
	assert.Equal(t, []uint64{1, 10, 100}, order)
}

func TestMapBuilderRejectsDuplicateKey(t *testing.T) {
	b := dcbor.NewMapBuilder()
	require.NoError(t, b.Insert(dcbor.NewUnsigned(1), dcbor.NewText("a")))
	err := b.Insert(dcbor.NewUnsigned(1), dcbor.NewText("b"))
	require.Error(t, err)
}

func TestMapBuilderDuplicateByEncodingNotByConstructor(t *testing.T) {
	b := dcbor.NewMapBuilder()
	require.NoError(t, b.Insert(dcbor.NewInt(5), dcbor.NewText("a")))
	// NewUnsigned(5) and NewInt(5) encode identically; this must collide.
	err := b.Insert(dcbor.NewUnsigned(5), dcbor.NewText("b"))
	require.Error(t, err)
}

func TestMapGet(t *testing.T) {
	b := dcbor.NewMapBuilder()
	require.NoError(t, b.Insert(dcbor.NewText("k"), dcbor.NewUnsigned(42)))
	m := b.Finalize()

	v, ok := m.Get(dcbor.NewText("k"))
	require.True(t, ok)
	u, err := v.Unsigned()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), u)

	_, ok = m.Get(dcbor.NewText("missing"))
	assert.False(t, ok)
}
