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
package vm

import (
	"github.com/consensys/go-cairo/pkg/felt"
	"github.com/consensys/go-cairo/pkg/vm/memory"
)

// Conventional segment indices used by the runner.
const (
	// ProgramSegment holds the program bytecode, addressed by the pc register.
	ProgramSegment = 0
	// ExecutionSegment holds the execution stack, addressed by the ap and fp
	// registers.
	ExecutionSegment = 1
)

// RunContext holds the three registers of the machine.  The program counter
// is an offset into the program segment, whilst the allocation and frame
// pointers are offsets into the execution segment.
type RunContext struct {
	// Program counter
	PC uint64
	// Allocation pointer
	AP uint64
	// Frame pointer
	FP uint64
}

// VirtualMachine captures the state of an executing machine as seen by hints:
// its registers and its (segmented) memory.  A VirtualMachine is not safe for
// concurrent use.
type VirtualMachine struct {
	RunContext RunContext
	Segments   *memory.SegmentManager
}

// New constructs a machine with empty program and execution segments, and all
// registers zero.
func New() *VirtualMachine {
	var segments = memory.NewSegmentManager()
	// Program segment
	segments.Add()
	// Execution segment
	segments.Add()
	//
	return &VirtualMachine{RunContext{}, segments}
}

// WithRunContext returns this machine updated with the given registers.
func (p *VirtualMachine) WithRunContext(ctx RunContext) *VirtualMachine {
	p.RunContext = ctx
	//
	return p
}

// GetPC returns the current program counter as an address.
func (p *VirtualMachine) GetPC() memory.Relocatable {
	return memory.NewRelocatable(ProgramSegment, p.RunContext.PC)
}

// GetAP returns the current allocation pointer as an address.
func (p *VirtualMachine) GetAP() memory.Relocatable {
	return memory.NewRelocatable(ExecutionSegment, p.RunContext.AP)
}

// GetFP returns the current frame pointer as an address.
func (p *VirtualMachine) GetFP() memory.Relocatable {
	return memory.NewRelocatable(ExecutionSegment, p.RunContext.FP)
}

// Get implementation for the memory.ReadOnlyMemory interface.
func (p *VirtualMachine) Get(address memory.Relocatable) (memory.MaybeRelocatable, bool) {
	return p.Segments.Memory.Get(address)
}

// GetInteger implementation for the memory.ReadOnlyMemory interface.
func (p *VirtualMachine) GetInteger(address memory.Relocatable) (felt.Element, error) {
	return p.Segments.Memory.GetInteger(address)
}

// GetRelocatable reads the address held at a given address.
func (p *VirtualMachine) GetRelocatable(address memory.Relocatable) (memory.Relocatable, error) {
	return p.Segments.Memory.GetRelocatable(address)
}

// InsertValue writes a given value into memory.  Since memory is write-once,
// this fails if the cell already holds a different value.
func (p *VirtualMachine) InsertValue(address memory.Relocatable, value memory.MaybeRelocatable) error {
	return p.Segments.Memory.Insert(address, value)
}
