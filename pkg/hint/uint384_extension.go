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

	"github.com/consensys/go-cairo/pkg/vm"
)

// LimbWidth is the number of bits held in each limb of a Uint384 or Uint768.
const LimbWidth = 128

// UnsignedDivRemUint768ByUint384 computes the (floor) quotient and remainder of
// dividing a Uint768 by a Uint384.  This expects the following variables:
//
//	a: Uint768          // dividend (read)
//	div: Uint384        // divisor (read)
//	quotient: Uint768   // written
//	remainder: Uint384  // written
//
// All operands are read and all output addresses resolved before anything is
// written, and a zero divisor fails before anything is written.  The quotient
// is always written as six limbs.  A quotient which does not fit is truncated,
// though this cannot arise when every limb of the dividend fits in LimbWidth
// bits.
func UnsignedDivRemUint768ByUint384(machine *vm.VirtualMachine, ids IdsData, apTracking ApTracking) error {
	a, err := Uint768FromVarName("a", machine, ids, apTracking)
	if err != nil {
		return err
	}
	//
	div, err := Uint384FromVarName("div", machine, ids, apTracking)
	if err != nil {
		return err
	}
	//
	quotientAddr, err := GetRelocatableFromVarName("quotient", machine, ids, apTracking)
	if err != nil {
		return err
	}
	//
	remainderAddr, err := GetRelocatableFromVarName("remainder", machine, ids, apTracking)
	if err != nil {
		return err
	}
	//
	var (
		dividend = a.Pack(LimbWidth)
		divisor  = div.Pack(LimbWidth)
	)
	//
	if divisor.Sign() == 0 {
		return ErrDividedByZero
	}
	// Operands are non-negative, hence truncated division is floor division.
	quotient, remainder := new(big.Int).QuoRem(dividend, divisor, new(big.Int))
	//
	if err = insertLimbs(machine, quotientAddr, Split(quotient, LimbWidth, uint(len(a)))); err != nil {
		return err
	}
	//
	return insertLimbs(machine, remainderAddr, Split(remainder, LimbWidth, uint(len(div))))
}
