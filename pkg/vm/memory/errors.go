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

import "fmt"

// UnknownMemoryCellError signals a read from a cell which has not been
// written.
type UnknownMemoryCellError struct {
	Address Relocatable
}

func (e *UnknownMemoryCellError) Error() string {
	return fmt.Sprintf("unknown memory cell at address %s", e.Address)
}

// ExpectedIntegerError signals that a cell was expected to hold an integer,
// but holds an address instead.
type ExpectedIntegerError struct {
	Address Relocatable
}

func (e *ExpectedIntegerError) Error() string {
	return fmt.Sprintf("expected integer at address %s", e.Address)
}

// ExpectedRelocatableError signals that a cell was expected to hold an
// address, but holds an integer instead.
type ExpectedRelocatableError struct {
	Address Relocatable
}

func (e *ExpectedRelocatableError) Error() string {
	return fmt.Sprintf("expected relocatable at address %s", e.Address)
}

// InconsistentMemoryError signals an attempt to overwrite a cell with a value
// different from that which it already holds.  Memory cells are write-once.
type InconsistentMemoryError struct {
	Address Relocatable
	Old     MaybeRelocatable
	New     MaybeRelocatable
}

func (e *InconsistentMemoryError) Error() string {
	return fmt.Sprintf("inconsistent memory assignment at address %s (%s != %s)", e.Address, e.Old, e.New)
}

// UnallocatedSegmentError signals an access to a segment which has not been
// allocated.
type UnallocatedSegmentError struct {
	SegmentIndex int
	NumSegments  uint
}

func (e *UnallocatedSegmentError) Error() string {
	return fmt.Sprintf("segment %d unallocated (only %d segments)", e.SegmentIndex, e.NumSegments)
}

// RelocatableAddError signals that adding an offset to an address exceeds the
// addressable range of its segment.
type RelocatableAddError struct {
	Address Relocatable
	Offset  uint64
}

func (e *RelocatableAddError) Error() string {
	return fmt.Sprintf("offset overflow computing %s + %d", e.Address, e.Offset)
}

// RelocatableSubError signals that subtracting an offset from an address would
// produce a negative offset.
type RelocatableSubError struct {
	Address Relocatable
	Offset  uint64
}

func (e *RelocatableSubError) Error() string {
	return fmt.Sprintf("negative offset computing %s - %d", e.Address, e.Offset)
}
