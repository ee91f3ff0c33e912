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
	"time"

	"github.com/dcbor-io/dcbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatScalars(t *testing.T) {
	assert.Equal(t, "0", dcbor.Format(dcbor.NewUnsigned(0)))
	assert.Equal(t, "-1", dcbor.Format(dcbor.NewInt(-1)))
	assert.Equal(t, `"hello"`, dcbor.Format(dcbor.NewText("hello")))
	assert.Equal(t, "h'010203'", dcbor.Format(dcbor.NewBytes([]byte{1, 2, 3})))
	assert.Equal(t, "true", dcbor.Format(dcbor.NewBool(true)))
	assert.Equal(t, "false", dcbor.Format(dcbor.NewBool(false)))
	assert.Equal(t, "null", dcbor.Format(dcbor.NewNull()))
}

func TestFormatArrayAndMap(t *testing.T) {
	arr := dcbor.NewArray([]dcbor.Value{dcbor.NewUnsigned(1), dcbor.NewUnsigned(2)})
	assert.Equal(t, "[1, 2]", dcbor.Format(arr))

	b := dcbor.NewMapBuilder()
	require.NoError(t, b.Insert(dcbor.NewUnsigned(1), dcbor.NewText("a")))
	require.NoError(t, b.Insert(dcbor.NewUnsigned(2), dcbor.NewText("b")))
	m := dcbor.NewMapValue(b.Finalize())
	assert.Equal(t, `{1: "a", 2: "b"}`, dcbor.Format(m))
}

func TestFormatTaggedNumeric(t *testing.T) {
	v, err := dcbor.NewTagged(999, dcbor.NewUnsigned(1))
	require.NoError(t, err)
	assert.Equal(t, "999(1)", dcbor.Format(v))
}

func TestFormatTaggedWithRegisteredName(t *testing.T) {
	v := dcbor.NewDate(time.Unix(1700000000, 0).UTC())
	assert.Equal(t, "date(1700000000)", dcbor.Format(v))
}

func TestFormatTaggedWithCustomRegistry(t *testing.T) {
	v, err := dcbor.NewTagged(12345, dcbor.NewUnsigned(1))
	require.NoError(t, err)

	reg := dcbor.NewTagRegistry()
	require.NoError(t, reg.Register(12345, "widget"))
	assert.Equal(t, "widget(1)", dcbor.Format(v, dcbor.WithTagNames(reg)))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1.5", dcbor.Format(dcbor.NewFloat(1.5)))
	assert.Equal(t, "NaN", dcbor.Format(dcbor.NewFloat(math.NaN())))
}
