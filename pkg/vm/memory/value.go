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

// MaybeRelocatable is the content of a single memory cell, which holds either
// an integer (i.e. a field element) or an address (i.e. a relocatable).
type MaybeRelocatable struct {
	integer felt.Element
	address Relocatable
	// Indicates whether this holds an address or an integer.
	isAddress bool
}

// Int constructs a cell value holding a given field element.
func Int(value felt.Element) MaybeRelocatable {
	return MaybeRelocatable{integer: value}
}

// Uint64 constructs a cell value holding the field element for a given uint64.
func Uint64(value uint64) MaybeRelocatable {
	return Int(felt.FromUint64(value))
}

// Addr constructs a cell value holding a given address.
func Addr(address Relocatable) MaybeRelocatable {
	return MaybeRelocatable{address: address, isAddress: true}
}

// IsAddress determines whether this value holds an address (or an integer).
func (p MaybeRelocatable) IsAddress() bool {
	return p.isAddress
}

// Integer returns the integer held by this value, or false if it holds an
// address.
func (p MaybeRelocatable) Integer() (felt.Element, bool) {
	return p.integer, !p.isAddress
}

// Address returns the address held by this value, or false if it holds an
// integer.
func (p MaybeRelocatable) Address() (Relocatable, bool) {
	return p.address, p.isAddress
}

// Equals determines whether two values are identical.  Observe that an integer
// is never equal to an address.
func (p MaybeRelocatable) Equals(other MaybeRelocatable) bool {
	if p.isAddress != other.isAddress {
		return false
	} else if p.isAddress {
		return p.address == other.address
	}
	//
	return p.integer.Equals(other.integer)
}

func (p MaybeRelocatable) String() string {
	if p.isAddress {
		return p.address.String()
	}
	//
	return p.integer.String()
}
