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
)

// Pack combines a sequence of limbs (least significant first) into a single
// integer, such that limb i contributes limb_i << (i * bitWidth).  A limb
// wider than bitWidth simply overlaps its neighbours in the sum.
func Pack(limbs []felt.Element, bitWidth uint) *big.Int {
	var res big.Int
	// Horner's rule, starting from the most significant limb.
	for i := len(limbs) - 1; i >= 0; i-- {
		res.Lsh(&res, bitWidth)
		res.Add(&res, limbs[i].ToBigInt())
	}
	//
	return &res
}

// Split decomposes a non-negative integer into exactly length limbs of
// bitWidth bits each, least significant first.  Limbs beyond the most
// significant bit of the value are zero.  The value is expected to be less
// than 2^(bitWidth * length); any bits above this are silently discarded.
func Split(value *big.Int, bitWidth uint, length uint) []*big.Int {
	var (
		num   = new(big.Int).Set(value)
		mask  = new(big.Int).Lsh(big.NewInt(1), bitWidth)
		limbs = make([]*big.Int, length)
	)
	//
	mask.Sub(mask, big.NewInt(1))
	//
	for i := range limbs {
		limbs[i] = new(big.Int).And(num, mask)
		num.Rsh(num, bitWidth)
	}
	//
	return limbs
}

// SplitChecked is as for Split, except that it fails (rather than truncating)
// when the value is negative or does not fit within the given limbs.
func SplitChecked(value *big.Int, bitWidth uint, length uint) ([]*big.Int, error) {
	if value.Sign() < 0 || uint(value.BitLen()) > bitWidth*length {
		return nil, &ValueOutOfRangeError{new(big.Int).Set(value), bitWidth, length}
	}
	//
	return Split(value, bitWidth, length), nil
}
