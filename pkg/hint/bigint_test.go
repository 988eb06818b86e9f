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
package hint

import (
	"errors"
	"fmt"
	"testing"

	"github.com/consensys/go-cairo/pkg/felt"
	"github.com/consensys/go-cairo/pkg/vm/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Uint768_01(t *testing.T) {
	var machine = newTestMachine(t, 0,
		intCell(1, 0, 1), intCell(1, 1, 2), intCell(1, 2, 3),
		intCell(1, 3, 4), intCell(1, 4, 5), intCell(1, 5, 6))
	//
	x, err := Uint768FromBaseAddr(memory.NewRelocatable(1, 0), "x", machine)
	require.NoError(t, err)
	//
	for i, limb := range x.Limbs() {
		assert.True(t, limb.Equals(felt.FromUint64(uint64(i+1))), "limb d%d", i)
	}
}

// Missing each limb in turn, with all preceding limbs present.
func Test_Uint768_02(t *testing.T) {
	for k := 0; k < 6; k++ {
		checkMissingMember(t, 6, k, func(m memory.ReadOnlyMemory) error {
			_, err := Uint768FromBaseAddr(memory.NewRelocatable(1, 0), "x", m)
			return err
		})
	}
}

func Test_Uint768_03(t *testing.T) {
	// Uint768(x,2,x,x,x,x) fails on d0, even though d1 is present.
	var (
		machine = newTestMachine(t, 0, intCell(1, 1, 2))
		member  *IdentifierHasNoMemberError
	)
	//
	_, err := Uint768FromBaseAddr(memory.NewRelocatable(1, 0), "x", machine)
	require.True(t, errors.As(err, &member))
	assert.Equal(t, "x", member.Name)
	assert.Equal(t, "d0", member.Member)
	assert.Equal(t, "identifier x has no member d0", err.Error())
}

func Test_Uint768_04(t *testing.T) {
	var machine = newTestMachine(t, 1,
		intCell(1, 0, 1), intCell(1, 1, 2), intCell(1, 2, 3),
		intCell(1, 3, 4), intCell(1, 4, 5), intCell(1, 5, 6))
	//
	x, err := Uint768FromVarName("x", machine, simpleIds("x"), ApTracking{})
	require.NoError(t, err)
	assert.True(t, x[0].Equals(felt.One()))
	assert.True(t, x[1].Equals(felt.FromUint64(2)))
	assert.True(t, x[2].Equals(felt.FromUint64(3)))
	assert.True(t, x[5].Equals(felt.FromUint64(6)))
}

func Test_Uint768_05(t *testing.T) {
	var (
		machine = newTestMachine(t, 1, intCell(1, 0, 1), intCell(1, 1, 2))
		member  *IdentifierHasNoMemberError
	)
	//
	_, err := Uint768FromVarName("x", machine, simpleIds("x"), ApTracking{})
	require.True(t, errors.As(err, &member))
	assert.Equal(t, "x", member.Name)
	assert.Equal(t, "d2", member.Member)
}

func Test_Uint768_06(t *testing.T) {
	var (
		// fp is zero, so the reference fp - 1 is invalid
		machine = newTestMachine(t, 0, intCell(1, 0, 1), intCell(1, 1, 2), intCell(1, 2, 3))
		unknown *UnknownIdentifierError
	)
	//
	_, err := Uint768FromVarName("x", machine, simpleIds("x"), ApTracking{})
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "x", unknown.Name)
}

func Test_Uint768_07(t *testing.T) {
	// A limb holding an address is not an integer
	var (
		machine = newTestMachine(t, 0,
			intCell(1, 0, 1), intCell(1, 1, 2), intCell(1, 2, 3),
			addrCell(1, 3, memory.NewRelocatable(0, 0)), intCell(1, 4, 5), intCell(1, 5, 6))
		member *IdentifierHasNoMemberError
	)
	//
	_, err := Uint768FromBaseAddr(memory.NewRelocatable(1, 0), "y", machine)
	require.True(t, errors.As(err, &member))
	assert.Equal(t, "d3", member.Member)
}

func Test_Uint384_01(t *testing.T) {
	var machine = newTestMachine(t, 0, intCell(1, 0, 1), intCell(1, 1, 2), intCell(1, 2, 3))
	//
	x, err := Uint384FromBaseAddr(memory.NewRelocatable(1, 0), "x", machine)
	require.NoError(t, err)
	assert.Len(t, x.Limbs(), 3)
	assert.True(t, x[0].Equals(felt.One()))
	assert.True(t, x[1].Equals(felt.FromUint64(2)))
	assert.True(t, x[2].Equals(felt.FromUint64(3)))
}

func Test_Uint384_02(t *testing.T) {
	for k := 0; k < 3; k++ {
		checkMissingMember(t, 3, k, func(m memory.ReadOnlyMemory) error {
			_, err := Uint384FromBaseAddr(memory.NewRelocatable(1, 0), "x", m)
			return err
		})
	}
}

func Test_Uint384_03(t *testing.T) {
	var machine = newTestMachine(t, 3, intCell(1, 0, 7), intCell(1, 1, 8), intCell(1, 2, 9))
	//
	x, err := Uint384FromVarName("div", machine, IdsData{"div": NewSimpleReference(-3)}, ApTracking{})
	require.NoError(t, err)
	assert.Equal(t, "7", x[0].String())
	assert.Equal(t, "9", x[2].String())
	//
	_, err = Uint384FromVarName("other", machine, IdsData{"div": NewSimpleReference(-3)}, ApTracking{})
	assert.Equal(t, &UnknownIdentifierError{"other"}, err)
}

func Test_Uint384_04(t *testing.T) {
	// Reading across the end of a segment's address space
	var overflow *memory.RelocatableAddError
	//
	_, err := Uint384FromBaseAddr(memory.NewRelocatable(1, ^uint64(0)), "x", zeroMemory{})
	require.True(t, errors.As(err, &overflow))
}

// Check that reading an n-limb integer from memory holding only its first k
// limbs fails on limb k.
func checkMissingMember(t *testing.T, n int, k int, read func(memory.ReadOnlyMemory) error) {
	var (
		cells  []cell
		member *IdentifierHasNoMemberError
	)
	// Populate all limbs except k
	for i := 0; i < n; i++ {
		if i != k {
			cells = append(cells, intCell(1, uint64(i), uint64(i+1)))
		}
	}
	//
	err := read(newTestMachine(t, 0, cells...))
	require.True(t, errors.As(err, &member), "missing d%d", k)
	assert.Equal(t, "x", member.Name)
	assert.Equal(t, fmt.Sprintf("d%d", k), member.Member)
}

// zeroMemory answers every read with a zero integer.
type zeroMemory struct{}

func (p zeroMemory) Get(memory.Relocatable) (memory.MaybeRelocatable, bool) {
	return memory.Uint64(0), true
}

func (p zeroMemory) GetInteger(memory.Relocatable) (felt.Element, error) {
	return felt.Zero(), nil
}
