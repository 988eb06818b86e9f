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
	"github.com/consensys/go-cairo/pkg/felt"
)

// ReadOnlyMemory represents a view of memory which can be read, but not
// written.  Hints read their operands through this view.
type ReadOnlyMemory interface {
	// Get the value held at a given address, or false if that cell has not
	// been written.
	Get(address Relocatable) (MaybeRelocatable, bool)
	// GetInteger reads the integer held at a given address.  This fails if the
	// cell has not been written, or holds an address.
	GetInteger(address Relocatable) (felt.Element, error)
}

// WriteOnceMemory represents a form of memory where each cell can be written
// at most once.  Writing the value a cell already holds is permitted (and has
// no effect), whilst writing any other value fails.
type WriteOnceMemory interface {
	// Insert a given value at a given address.
	Insert(address Relocatable, value MaybeRelocatable) error
}

// Memory is the segmented, write-once memory of the VM.  Each segment is a
// contiguous sequence of cells, where a cell is either unwritten or holds a
// MaybeRelocatable.  Segments grow on demand as cells beyond their current end
// are written.
type Memory struct {
	data [][]cell
}

type cell struct {
	value MaybeRelocatable
	set   bool
}

// NewMemory constructs an initially empty memory with no segments.
func NewMemory() *Memory {
	return &Memory{}
}

// NumSegments returns the number of segments allocated in this memory.
func (p *Memory) NumSegments() uint {
	return uint(len(p.data))
}

// SegmentSize returns the number of cells spanned by the given segment, up to
// and including its last written cell.
func (p *Memory) SegmentSize(segment int) uint64 {
	if segment < 0 || segment >= len(p.data) {
		return 0
	}
	//
	return uint64(len(p.data[segment]))
}

// Get implementation for the ReadOnlyMemory interface.
func (p *Memory) Get(address Relocatable) (MaybeRelocatable, bool) {
	var segment = address.SegmentIndex
	//
	if segment < 0 || segment >= len(p.data) || address.Offset >= uint64(len(p.data[segment])) {
		return MaybeRelocatable{}, false
	}
	//
	c := p.data[segment][address.Offset]
	//
	return c.value, c.set
}

// GetInteger implementation for the ReadOnlyMemory interface.
func (p *Memory) GetInteger(address Relocatable) (felt.Element, error) {
	value, ok := p.Get(address)
	//
	if !ok {
		return felt.Element{}, &UnknownMemoryCellError{address}
	} else if integer, ok := value.Integer(); ok {
		return integer, nil
	}
	//
	return felt.Element{}, &ExpectedIntegerError{address}
}

// GetRelocatable reads the address held at a given address.  This fails if the
// cell has not been written, or holds an integer.
func (p *Memory) GetRelocatable(address Relocatable) (Relocatable, error) {
	value, ok := p.Get(address)
	//
	if !ok {
		return Relocatable{}, &UnknownMemoryCellError{address}
	} else if addr, ok := value.Address(); ok {
		return addr, nil
	}
	//
	return Relocatable{}, &ExpectedRelocatableError{address}
}

// Insert implementation for the WriteOnceMemory interface.
func (p *Memory) Insert(address Relocatable, value MaybeRelocatable) error {
	var segment = address.SegmentIndex
	//
	if segment < 0 || segment >= len(p.data) {
		return &UnallocatedSegmentError{segment, p.NumSegments()}
	}
	// Expand segment as necessary
	if n := uint64(len(p.data[segment])); n <= address.Offset {
		p.data[segment] = append(p.data[segment], make([]cell, address.Offset+1-n)...)
	}
	//
	c := &p.data[segment][address.Offset]
	//
	if c.set && !c.value.Equals(value) {
		return &InconsistentMemoryError{address, c.value, value}
	}
	//
	c.value, c.set = value, true
	//
	return nil
}

// allocate a fresh (empty) segment, returning its index.
func (p *Memory) allocate() int {
	p.data = append(p.data, nil)
	//
	return len(p.data) - 1
}
