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

	"github.com/consensys/go-cairo/pkg/felt"
	"github.com/consensys/go-cairo/pkg/vm"
	"github.com/consensys/go-cairo/pkg/vm/memory"
)

// Names of the limb members of a multi-limb integer, in order of significance.
var limbNames = [...]string{"d0", "d1", "d2", "d3", "d4", "d5"}

// Uint384 is an unsigned integer represented by three limbs (d0, d1, d2) held
// in consecutive memory cells, where limb i contributes limb_i << (i * w) for
// a limb width w (typically 128 bits).  Limbs are not checked against the limb
// width when read.
type Uint384 [3]felt.Element

// Uint768 is an unsigned integer represented by six limbs (d0 .. d5) held in
// consecutive memory cells, following the same layout as Uint384.
type Uint768 [6]felt.Element

// Uint384FromBaseAddr reads a Uint384 whose first limb is held at the given
// address.  The name identifies the variable being read for the purposes of
// error reporting.
func Uint384FromBaseAddr(addr memory.Relocatable, name string, mem memory.ReadOnlyMemory) (Uint384, error) {
	var num Uint384
	//
	if err := readLimbs(addr, name, mem, num[:]); err != nil {
		return Uint384{}, err
	}
	//
	return num, nil
}

// Uint384FromVarName reads a Uint384 held in a named variable.
func Uint384FromVarName(name string, machine *vm.VirtualMachine, ids IdsData,
	apTracking ApTracking) (Uint384, error) {
	//
	addr, err := GetRelocatableFromVarName(name, machine, ids, apTracking)
	if err != nil {
		return Uint384{}, err
	}
	//
	return Uint384FromBaseAddr(addr, name, machine)
}

// Limbs returns the limbs of this integer, least significant first.
func (x Uint384) Limbs() []felt.Element {
	return x[:]
}

// Pack this integer into a single value, assuming limbs of the given width.
func (x Uint384) Pack(bitWidth uint) *big.Int {
	return Pack(x[:], bitWidth)
}

// Uint768FromBaseAddr reads a Uint768 whose first limb is held at the given
// address.  The name identifies the variable being read for the purposes of
// error reporting.
func Uint768FromBaseAddr(addr memory.Relocatable, name string, mem memory.ReadOnlyMemory) (Uint768, error) {
	var num Uint768
	//
	if err := readLimbs(addr, name, mem, num[:]); err != nil {
		return Uint768{}, err
	}
	//
	return num, nil
}

// Uint768FromVarName reads a Uint768 held in a named variable.
func Uint768FromVarName(name string, machine *vm.VirtualMachine, ids IdsData,
	apTracking ApTracking) (Uint768, error) {
	//
	addr, err := GetRelocatableFromVarName(name, machine, ids, apTracking)
	if err != nil {
		return Uint768{}, err
	}
	//
	return Uint768FromBaseAddr(addr, name, machine)
}

// Limbs returns the limbs of this integer, least significant first.
func (x Uint768) Limbs() []felt.Element {
	return x[:]
}

// Pack this integer into a single value, assuming limbs of the given width.
func (x Uint768) Pack(bitWidth uint) *big.Int {
	return Pack(x[:], bitWidth)
}

// Read consecutive limbs starting from a given base address, stopping at the
// first which cannot be read.
func readLimbs(base memory.Relocatable, name string, mem memory.ReadOnlyMemory, limbs []felt.Element) error {
	for i := range limbs {
		addr, err := base.AddUint(uint64(i))
		if err != nil {
			return err
		}
		//
		if limbs[i], err = mem.GetInteger(addr); err != nil {
			return &IdentifierHasNoMemberError{name, limbNames[i]}
		}
	}
	//
	return nil
}

// Write limbs into consecutive cells starting from a given base address,
// stopping at the first failing write.
func insertLimbs(machine *vm.VirtualMachine, base memory.Relocatable, limbs []*big.Int) error {
	for i, limb := range limbs {
		addr, err := base.AddUint(uint64(i))
		if err != nil {
			return err
		} else if err = machine.InsertValue(addr, memory.Int(felt.FromBigInt(limb))); err != nil {
			return err
		}
	}
	//
	return nil
}
