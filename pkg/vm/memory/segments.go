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

// SegmentManager is responsible for allocating segments within a memory, and
// for loading data into them.
type SegmentManager struct {
	Memory *Memory
}

// NewSegmentManager constructs a segment manager over an initially empty
// memory.
func NewSegmentManager() *SegmentManager {
	return &SegmentManager{NewMemory()}
}

// Add allocates a new segment, returning the address of its first cell.
func (p *SegmentManager) Add() Relocatable {
	return Relocatable{p.Memory.allocate(), 0}
}

// NumSegments returns the number of segments allocated so far.
func (p *SegmentManager) NumSegments() uint {
	return p.Memory.NumSegments()
}

// LoadData writes a sequence of values into consecutive cells starting from a
// given address, returning the address immediately after the last cell
// written.  Loading stops at the first failing write.
func (p *SegmentManager) LoadData(ptr Relocatable, data ...MaybeRelocatable) (Relocatable, error) {
	for _, value := range data {
		if err := p.Memory.Insert(ptr, value); err != nil {
			return ptr, err
		}
		//
		next, err := ptr.AddUint(1)
		if err != nil {
			return ptr, err
		}
		//
		ptr = next
	}
	//
	return ptr, nil
}
