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
	"math"
	"testing"

	"github.com/dcbor-io/dcbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIntRoundTrip(t *testing.T) {
	for _, i := range []int64{0, 1, -1, math.MaxInt64, math.MinInt64} {
		v := dcbor.NewInt(i)
		bi, err := v.BigInt()
		require.NoError(t, err)
		assert.Equal(t, i, bi.Int64())
	}
}

func TestNewNegativeNExtendedRange(t *testing.T) {
	// n = 2^64-1 denotes -1-n = -2^64, which has no int64 representation.
	v := dcbor.NewNegativeN(math.MaxUint64)
	bi, err := v.BigInt()
	require.NoError(t, err)
	assert.Equal(t, "-18446744073709551616", bi.String())
}

func TestAccessorWrongTypeErrors(t *testing.T) {
	v := dcbor.NewUnsigned(5)
	_, err := v.Text()
	require.Error(t, err)
	_, err = v.Bytes()
	require.Error(t, err)
	_, err = v.Bool()
	require.Error(t, err)
}

func TestEqualUsesCanonicalEncoding(t *testing.T) {
	a := dcbor.NewInt(5)
	b := dcbor.NewUnsigned(5)
	assert.True(t, a.Equal(b))

	c := dcbor.NewInt(-5)
	assert.False(t, a.Equal(c))
}

func TestNewTaggedRejectsSelfDescribe(t *testing.T) {
	_, err := dcbor.NewTagged(55799, dcbor.NewNull())
	require.Error(t, err)
}

func TestNewTextNormalizesToNFC(t *testing.T) {
	v := dcbor.NewText(decomposedForTest)
	s, err := v.Text()
	require.NoError(t, err)
	assert.Equal(t, precomposedForTest, s)
}

const (
	decomposedForTest  = "e\u0301"
	precomposedForTest = "é"
)

func TestBoolAndNull(t *testing.T) {
	tv := dcbor.NewBool(true)
	b, err := tv.Bool()
	require.NoError(t, err)
	assert.True(t, b)

	nv := dcbor.NewNull()
	assert.True(t, nv.IsNull())
	assert.False(t, tv.IsNull())
}
