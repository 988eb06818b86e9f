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
package felt

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

// Element is a value of the prime field used by the Cairo VM to represent a
// single memory cell, where the prime is 2^251 + 17*2^192 + 1.  An element
// always holds its canonical representative in [0,p).  Elements are small
// fixed-width values and, hence, are passed around by value.
type Element struct {
	fp.Element
}

// Zero constructs a field element representing 0
func Zero() Element {
	return Element{}
}

// One constructs a field element representing 1
func One() Element {
	return FromUint64(1)
}

// FromUint64 constructs a field element from a given uint64
func FromUint64(val uint64) Element {
	var elem Element
	//
	elem.SetUint64(val)
	//
	return elem
}

// FromBigInt constructs a field element from a given big.Int.  Values outside
// [0,p) are reduced modulo p, and negative values are mapped onto their
// additive inverse.
func FromBigInt(val *big.Int) Element {
	var elem Element
	//
	elem.SetBigInt(val)
	//
	return elem
}

// FromString parses a field element from a string in the given base.  Base 0
// accepts the usual prefixes (e.g. "0x" for hexadecimal).  As for FromBigInt,
// the parsed value is reduced modulo p.
func FromString(text string, base int) (Element, error) {
	var val big.Int
	//
	if _, ok := val.SetString(text, base); !ok {
		return Element{}, fmt.Errorf("invalid field element \"%s\"", text)
	}
	//
	return FromBigInt(&val), nil
}

// Modulus returns the prime modulus of the field.
func Modulus() *big.Int {
	return fp.Modulus()
}

// ToBigInt returns the canonical (i.e. non-negative) integer representative of
// this element.
func (x Element) ToBigInt() *big.Int {
	var res big.Int
	//
	x.Element.BigInt(&res)
	//
	return &res
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res Element
	//
	res.Element.Add(&x.Element, &y.Element)
	//
	return res
}

// Sub x - y
func (x Element) Sub(y Element) Element {
	var res Element
	//
	res.Element.Sub(&x.Element, &y.Element)
	//
	return res
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var res Element
	//
	res.Element.Mul(&x.Element, &y.Element)
	//
	return res
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// Equals determines whether two elements represent the same value.
func (x Element) Equals(other Element) bool {
	return x == other
}

// IsZero checks whether this value is zero (or not).
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// Text returns the canonical numerical value of x in the given base.  Observe
// that this differs from fp.Element.Text, which prints values close to the
// modulus in negative form.
func (x Element) Text(base int) string {
	return x.ToBigInt().Text(base)
}

func (x Element) String() string {
	return x.Text(10)
}
