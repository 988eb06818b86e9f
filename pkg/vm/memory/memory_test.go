// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package memory

import (
	"errors"
	"math"
	"testing"

	"github.com/consensys/go-cairo/pkg/felt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Relocatable_01(t *testing.T) {
	addr, err := NewRelocatable(1, 2).AddUint(3)
	require.NoError(t, err)
	assert.Equal(t, NewRelocatable(1, 5), addr)
	assert.Equal(t, "1:5", addr.String())
}

func Test_Relocatable_02(t *testing.T) {
	addr, err := NewRelocatable(1, 17).AddInt(-17)
	require.NoError(t, err)
	assert.Equal(t, NewRelocatable(1, 0), addr)
	//
	addr, err = NewRelocatable(1, 17).AddInt(4)
	require.NoError(t, err)
	assert.Equal(t, NewRelocatable(1, 21), addr)
}

func Test_Relocatable_03(t *testing.T) {
	var subErr *RelocatableSubError
	//
	_, err := NewRelocatable(1, 0).AddInt(-1)
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, uint64(1), subErr.Offset)
	//
	_, err = NewRelocatable(1, 5).AddInt(math.MinInt64)
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, uint64(1)<<63, subErr.Offset)
}

func Test_Relocatable_04(t *testing.T) {
	var addErr *RelocatableAddError
	//
	_, err := NewRelocatable(0, math.MaxUint64).AddUint(1)
	require.True(t, errors.As(err, &addErr))
	assert.Equal(t, NewRelocatable(0, math.MaxUint64), addErr.Address)
}

func Test_MaybeRelocatable_01(t *testing.T) {
	var (
		one  = Uint64(1)
		addr = Addr(NewRelocatable(0, 1))
	)
	//
	assert.True(t, one.Equals(Int(felt.One())))
	assert.False(t, one.Equals(addr))
	assert.False(t, addr.Equals(one))
	assert.True(t, addr.Equals(Addr(NewRelocatable(0, 1))))
	assert.False(t, addr.Equals(Addr(NewRelocatable(1, 1))))
	assert.Equal(t, "0:1", addr.String())
	assert.Equal(t, "1", one.String())
}

func Test_Memory_01(t *testing.T) {
	var (
		segments = NewSegmentManager()
		base     = segments.Add()
	)
	//
	require.NoError(t, segments.Memory.Insert(base, Uint64(7)))
	value, err := segments.Memory.GetInteger(base)
	require.NoError(t, err)
	assert.True(t, value.Equals(felt.FromUint64(7)))
	// rewriting the same value is fine
	require.NoError(t, segments.Memory.Insert(base, Uint64(7)))
}

func Test_Memory_02(t *testing.T) {
	var (
		segments     = NewSegmentManager()
		base         = segments.Add()
		inconsistent *InconsistentMemoryError
	)
	//
	require.NoError(t, segments.Memory.Insert(base, Uint64(7)))
	err := segments.Memory.Insert(base, Uint64(8))
	require.True(t, errors.As(err, &inconsistent))
	assert.Equal(t, base, inconsistent.Address)
	assert.True(t, inconsistent.Old.Equals(Uint64(7)))
	assert.True(t, inconsistent.New.Equals(Uint64(8)))
	// original value retained
	value, err := segments.Memory.GetInteger(base)
	require.NoError(t, err)
	assert.True(t, value.Equals(felt.FromUint64(7)))
}

func Test_Memory_03(t *testing.T) {
	var (
		segments = NewSegmentManager()
		unknown  *UnknownMemoryCellError
		expected *ExpectedIntegerError
	)
	//
	segments.Add()
	segments.Add()
	// Gap at offset 1
	require.NoError(t, segments.Memory.Insert(NewRelocatable(1, 0), Addr(NewRelocatable(0, 0))))
	require.NoError(t, segments.Memory.Insert(NewRelocatable(1, 2), Uint64(2)))
	assert.Equal(t, uint64(3), segments.Memory.SegmentSize(1))
	//
	_, err := segments.Memory.GetInteger(NewRelocatable(1, 1))
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, NewRelocatable(1, 1), unknown.Address)
	//
	_, err = segments.Memory.GetInteger(NewRelocatable(1, 0))
	require.True(t, errors.As(err, &expected))
	// out of range reads are simply unknown
	_, ok := segments.Memory.Get(NewRelocatable(5, 0))
	assert.False(t, ok)
	_, ok = segments.Memory.Get(NewRelocatable(1, 100))
	assert.False(t, ok)
}

func Test_Memory_04(t *testing.T) {
	var (
		segments    = NewSegmentManager()
		unallocated *UnallocatedSegmentError
	)
	//
	err := segments.Memory.Insert(NewRelocatable(0, 0), Uint64(1))
	require.True(t, errors.As(err, &unallocated))
	assert.Equal(t, 0, unallocated.SegmentIndex)
	assert.Equal(t, uint(0), unallocated.NumSegments)
	//
	err = segments.Memory.Insert(NewRelocatable(-1, 0), Uint64(1))
	require.True(t, errors.As(err, &unallocated))
}

func Test_Memory_05(t *testing.T) {
	var (
		segments = NewSegmentManager()
		base     = segments.Add()
		expected *ExpectedRelocatableError
	)
	//
	require.NoError(t, segments.Memory.Insert(base, Addr(NewRelocatable(0, 3))))
	addr, err := segments.Memory.GetRelocatable(base)
	require.NoError(t, err)
	assert.Equal(t, NewRelocatable(0, 3), addr)
	//
	require.NoError(t, segments.Memory.Insert(NewRelocatable(0, 1), Uint64(3)))
	_, err = segments.Memory.GetRelocatable(NewRelocatable(0, 1))
	require.True(t, errors.As(err, &expected))
}

func Test_SegmentManager_01(t *testing.T) {
	var segments = NewSegmentManager()
	//
	assert.Equal(t, NewRelocatable(0, 0), segments.Add())
	assert.Equal(t, NewRelocatable(1, 0), segments.Add())
	assert.Equal(t, uint(2), segments.NumSegments())
	//
	end, err := segments.LoadData(NewRelocatable(1, 4), Uint64(1), Uint64(2), Uint64(3))
	require.NoError(t, err)
	assert.Equal(t, NewRelocatable(1, 7), end)
	//
	for i := uint64(0); i < 3; i++ {
		value, err := segments.Memory.GetInteger(NewRelocatable(1, 4+i))
		require.NoError(t, err)
		assert.True(t, value.Equals(felt.FromUint64(i+1)))
	}
}

func Test_SegmentManager_02(t *testing.T) {
	var segments = NewSegmentManager()
	//
	segments.Add()
	require.NoError(t, segments.Memory.Insert(NewRelocatable(0, 1), Uint64(9)))
	// load stops at the conflicting cell
	end, err := segments.LoadData(NewRelocatable(0, 0), Uint64(1), Uint64(2), Uint64(3))
	require.Error(t, err)
	assert.Equal(t, NewRelocatable(0, 1), end)
	_, ok := segments.Memory.Get(NewRelocatable(0, 2))
	assert.False(t, ok)
}
