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
	"github.com/consensys/go-cairo/pkg/vm"
	"github.com/consensys/go-cairo/pkg/vm/memory"
)

// Register identifies one of the two registers against which a reference can
// be expressed.
type Register uint8

const (
	// AP is the allocation pointer.
	AP Register = iota
	// FP is the frame pointer.
	FP
)

// ApTracking identifies a position within a function relative to which the
// allocation pointer is known.  Within a group, the offset records how far ap
// has advanced since the start of that group.  Across groups, the relationship
// between ap values is unknown.
type ApTracking struct {
	Group  uint64
	Offset uint64
}

type offsetKind uint8

const (
	noOffset offsetKind = iota
	valueOffset
	referenceOffset
)

// OffsetValue is one operand of a reference expression.  This is either
// absent, a signed constant, or a register-relative location which may
// additionally be dereferenced (i.e. [fp + offset] rather than fp + offset).
type OffsetValue struct {
	kind     offsetKind
	register Register
	offset   int64
	deref    bool
}

// NoOffset constructs an absent operand.
func NoOffset() OffsetValue {
	return OffsetValue{kind: noOffset}
}

// Value constructs an operand holding a signed constant.
func Value(offset int64) OffsetValue {
	return OffsetValue{kind: valueOffset, offset: offset}
}

// Reference constructs an operand denoting register + offset or, when deref
// holds, the contents of memory at register + offset.
func Reference(register Register, offset int64, deref bool) OffsetValue {
	return OffsetValue{referenceOffset, register, offset, deref}
}

// HintReference describes how the address of a variable visible to a hint is
// computed from the registers of the machine.  The address is Offset1, plus
// Offset2 when present.
type HintReference struct {
	Offset1 OffsetValue
	Offset2 OffsetValue
	// Indicates whether the variable holds the value at its address (rather
	// than the address itself).
	Dereference bool
	// Tracking data for ap-based references (nil for fp-based references).
	ApTracking *ApTracking
	// Cairo type of the variable (informational only).
	CairoType string
}

// NewSimpleReference constructs a reference to the variable located at fp +
// offset.
func NewSimpleReference(offset int64) HintReference {
	return HintReference{
		Offset1:     Reference(FP, offset, false),
		Offset2:     Value(0),
		Dereference: true,
	}
}

// NewReference constructs a reference of the form [fp + offset1] + offset2
// when innerDeref holds, or fp + offset1 + offset2 otherwise.
func NewReference(offset1 int64, offset2 int64, innerDeref bool, dereference bool) HintReference {
	return HintReference{
		Offset1:     Reference(FP, offset1, innerDeref),
		Offset2:     Value(offset2),
		Dereference: dereference,
	}
}

// IdsData is the symbol table of a hint, mapping the names of variables
// visible to the hint onto their references.
type IdsData map[string]HintReference

// GetRelocatableFromVarName determines the address of a named variable in the
// current frame.  This fails with an UnknownIdentifierError if the name is not
// in the symbol table, or its reference cannot be evaluated.
func GetRelocatableFromVarName(name string, machine *vm.VirtualMachine, ids IdsData,
	apTracking ApTracking) (memory.Relocatable, error) {
	//
	if ref, ok := ids[name]; ok {
		if addr, ok := ComputeAddrFromReference(ref, machine, apTracking); ok {
			return addr, nil
		}
	}
	//
	return memory.Relocatable{}, &UnknownIdentifierError{name}
}

// ComputeAddrFromReference evaluates a reference against the current state of
// the machine.  The given ap tracking identifies the position of the hint
// being executed and is used to correct ap-based references.  This returns
// false if the reference cannot be evaluated.
func ComputeAddrFromReference(ref HintReference, machine *vm.VirtualMachine,
	apTracking ApTracking) (memory.Relocatable, bool) {
	// The first operand must always be a location
	if ref.Offset1.kind != referenceOffset {
		return memory.Relocatable{}, false
	}
	//
	value, ok := offsetValueReference(machine, ref, apTracking, ref.Offset1)
	if !ok {
		return memory.Relocatable{}, false
	}
	//
	base, ok := value.Address()
	if !ok {
		return memory.Relocatable{}, false
	}
	//
	switch ref.Offset2.kind {
	case referenceOffset:
		value, ok := offsetValueReference(machine, ref, apTracking, ref.Offset2)
		if !ok {
			return memory.Relocatable{}, false
		}
		//
		integer, ok := value.Integer()
		if !ok || !integer.ToBigInt().IsUint64() {
			return memory.Relocatable{}, false
		}
		//
		addr, err := base.AddUint(integer.ToBigInt().Uint64())
		//
		return addr, err == nil
	case valueOffset:
		addr, err := base.AddInt(ref.Offset2.offset)
		//
		return addr, err == nil
	default:
		return base, true
	}
}

// Evaluate a register-relative operand, which either gives an address or (when
// dereferenced) the contents of memory at that address.
func offsetValueReference(machine *vm.VirtualMachine, ref HintReference, apTracking ApTracking,
	value OffsetValue) (memory.MaybeRelocatable, bool) {
	var base memory.Relocatable
	//
	if value.register == FP {
		base = machine.GetFP()
	} else if ref.ApTracking == nil {
		// ap-based references require tracking data
		return memory.MaybeRelocatable{}, false
	} else if corrected, ok := applyApTrackingCorrection(machine.GetAP(), *ref.ApTracking, apTracking); ok {
		base = corrected
	} else {
		return memory.MaybeRelocatable{}, false
	}
	//
	addr, err := base.AddInt(value.offset)
	if err != nil {
		return memory.MaybeRelocatable{}, false
	} else if value.deref {
		return machine.Get(addr)
	}
	//
	return memory.Addr(addr), true
}

// Determine the value ap held when a reference was created, given its value
// now (i.e. at the point of the hint).  This is only possible when both lie
// within the same tracking group.
func applyApTrackingCorrection(ap memory.Relocatable, refTracking ApTracking,
	hintTracking ApTracking) (memory.Relocatable, bool) {
	//
	if refTracking.Group != hintTracking.Group || hintTracking.Offset < refTracking.Offset {
		return memory.Relocatable{}, false
	}
	//
	var diff = hintTracking.Offset - refTracking.Offset
	//
	if diff > ap.Offset {
		return memory.Relocatable{}, false
	}
	//
	return memory.NewRelocatable(ap.SegmentIndex, ap.Offset-diff), true
}
