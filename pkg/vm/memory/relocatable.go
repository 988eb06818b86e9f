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
	"fmt"
	"math"
)

// Relocatable identifies a memory cell by the segment it belongs to, and its
// offset within that segment.  Segments are relocated into a single flat
// address space only once execution has finished and, hence, addresses are
// never compared or combined across segments during execution.
type Relocatable struct {
	SegmentIndex int
	Offset       uint64
}

// NewRelocatable constructs a new relocatable address.
func NewRelocatable(segment int, offset uint64) Relocatable {
	return Relocatable{segment, offset}
}

// AddUint returns the address n cells beyond this address, within the same
// segment.  This fails if the resulting offset cannot be represented.
func (p Relocatable) AddUint(n uint64) (Relocatable, error) {
	if n > math.MaxUint64-p.Offset {
		return Relocatable{}, &RelocatableAddError{p, n}
	}
	//
	return Relocatable{p.SegmentIndex, p.Offset + n}, nil
}

// AddInt returns the address shifted by a (possibly negative) number of cells,
// within the same segment.  This fails if the resulting offset would be
// negative, or cannot be represented.
func (p Relocatable) AddInt(n int64) (Relocatable, error) {
	if n >= 0 {
		return p.AddUint(uint64(n))
	}
	// Negation cannot overflow once widened to uint64.
	var m = uint64(-(n + 1)) + 1
	//
	if m > p.Offset {
		return Relocatable{}, &RelocatableSubError{p, m}
	}
	//
	return Relocatable{p.SegmentIndex, p.Offset - m}, nil
}

// Equals determines whether two addresses identify the same cell.
func (p Relocatable) Equals(other Relocatable) bool {
	return p == other
}

func (p Relocatable) String() string {
	return fmt.Sprintf("%d:%d", p.SegmentIndex, p.Offset)
}
