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
	"math/big"
	"testing"

	"github.com/consensys/go-cairo/pkg/felt"
	"github.com/consensys/go-cairo/pkg/vm"
	"github.com/consensys/go-cairo/pkg/vm/memory"
	"github.com/stretchr/testify/require"
)

// cell describes an initial memory assignment for a test machine.
type cell struct {
	segment int
	offset  uint64
	value   memory.MaybeRelocatable
}

func intCell(segment int, offset uint64, value uint64) cell {
	return cell{segment, offset, memory.Uint64(value)}
}

func bigCell(segment int, offset uint64, value string) cell {
	var val, ok = new(big.Int).SetString(value, 10)
	//
	if !ok {
		panic("invalid test value")
	}
	//
	return cell{segment, offset, memory.Int(felt.FromBigInt(val))}
}

func addrCell(segment int, offset uint64, ptr memory.Relocatable) cell {
	return cell{segment, offset, memory.Addr(ptr)}
}

// Construct a machine with the given frame pointer and initial memory.
func newTestMachine(t *testing.T, fp uint64, cells ...cell) *vm.VirtualMachine {
	var machine = vm.New().WithRunContext(vm.RunContext{FP: fp})
	//
	for _, c := range cells {
		for machine.Segments.NumSegments() <= uint(c.segment) {
			machine.Segments.Add()
		}
		//
		require.NoError(t, machine.InsertValue(memory.NewRelocatable(c.segment, c.offset), c.value))
	}
	//
	return machine
}

// Construct a symbol table where the ith of n names is located at fp - n + i.
func simpleIds(names ...string) IdsData {
	var (
		ids = make(IdsData)
		n   = int64(len(names))
	)
	//
	for i, name := range names {
		ids[name] = NewSimpleReference(int64(i) - n)
	}
	//
	return ids
}

// Check the integer held at a given address.
func checkCell(t *testing.T, machine *vm.VirtualMachine, segment int, offset uint64, expected string) {
	value, err := machine.GetInteger(memory.NewRelocatable(segment, offset))
	require.NoError(t, err)
	require.Equal(t, expected, value.String(), "cell %d:%d", segment, offset)
}

// Check that nothing has been written at a given address.
func checkUnwritten(t *testing.T, machine *vm.VirtualMachine, segment int, offset uint64) {
	_, ok := machine.Get(memory.NewRelocatable(segment, offset))
	require.False(t, ok, "cell %d:%d written", segment, offset)
}
