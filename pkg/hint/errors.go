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
	"fmt"
	"math/big"
	"strings"
)

// UnknownIdentifierError signals that a variable could not be resolved to an
// address, either because the symbol table has no entry for it, or because its
// reference cannot be evaluated in the current frame.
type UnknownIdentifierError struct {
	Name string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown identifier %s", e.Name)
}

// IdentifierHasNoMemberError signals that a variable resolved to an address,
// but the cell holding one of its members (e.g. limb "d2") could not be read as
// an integer.
type IdentifierHasNoMemberError struct {
	Name   string
	Member string
}

func (e *IdentifierHasNoMemberError) Error() string {
	return fmt.Sprintf("identifier %s has no member %s", e.Name, e.Member)
}

// MathError signals an arithmetic failure within a hint.
type MathError struct {
	Message string
}

func (e *MathError) Error() string {
	return e.Message
}

// ErrDividedByZero signals an attempt to divide by zero.
var ErrDividedByZero = &MathError{"attempted to divide by zero"}

// UnknownHintError signals that no hint is registered for the given code.
type UnknownHintError struct {
	Code string
}

func (e *UnknownHintError) Error() string {
	var code = e.Code
	// Report only the first line of (potentially long) hint code.
	if i := strings.IndexByte(code, '\n'); i >= 0 {
		code = code[:i] + " ..."
	}
	//
	return fmt.Sprintf("unknown hint \"%s\"", code)
}

// ValueOutOfRangeError signals that a value cannot be split into the requested
// number of limbs without losing information.
type ValueOutOfRangeError struct {
	Value    *big.Int
	BitWidth uint
	Length   uint
}

func (e *ValueOutOfRangeError) Error() string {
	return fmt.Sprintf("value %s does not fit in %d limbs of %d bits", e.Value, e.Length, e.BitWidth)
}
