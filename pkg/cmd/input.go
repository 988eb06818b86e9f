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
package cmd

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"

	"github.com/consensys/go-cairo/pkg/felt"
	"github.com/consensys/go-cairo/pkg/hint"
)

// Operands holds the inputs to a division, already decomposed into limbs.
type Operands struct {
	Dividend hint.Uint768
	Divisor  hint.Uint384
}

// ReadInputFile reads the operands of a division from a JSON file of the form:
//
//	{ "a": "0x1234...", "div": "5678" }
//
// Each operand is either a single number (decimal, or hex with a "0x" prefix)
// which is split into limbs, or an array holding the limbs themselves (least
// significant first).  Limbs given explicitly are not checked against the limb
// width.
func ReadInputFile(filename string) (Operands, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return Operands{}, err
	}
	//
	return parseJsonInput(bytes)
}

func parseJsonInput(bytes []byte) (Operands, error) {
	var (
		rawData  map[string]json.RawMessage
		operands Operands
	)
	//
	if err := json.Unmarshal(bytes, &rawData); err != nil {
		return operands, err
	} else if err := parseLimbs("a", rawData["a"], operands.Dividend[:]); err != nil {
		return operands, err
	} else if err := parseLimbs("div", rawData["div"], operands.Divisor[:]); err != nil {
		return operands, err
	}
	//
	return operands, nil
}

func parseLimbs(name string, raw json.RawMessage, limbs []felt.Element) error {
	var (
		text  string
		items []string
	)
	//
	if raw == nil {
		return fmt.Errorf("missing operand \"%s\"", name)
	} else if err := json.Unmarshal(raw, &text); err == nil {
		return splitOperand(name, text, limbs)
	} else if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("operand \"%s\" should be a number or an array of limbs", name)
	} else if len(items) != len(limbs) {
		return fmt.Errorf("operand \"%s\" should have %d limbs (found %d)", name, len(limbs), len(items))
	}
	//
	for i, item := range items {
		limb, err := felt.FromString(item, 0)
		if err != nil {
			return fmt.Errorf("operand \"%s\": %w", name, err)
		}
		//
		limbs[i] = limb
	}
	//
	return nil
}

// Parse an operand given as a single number, and split it into limbs.  This
// fails (rather than truncating) when the operand does not fit.
func splitOperand(name string, text string, limbs []felt.Element) error {
	var val big.Int
	//
	if _, ok := val.SetString(text, 0); !ok {
		return fmt.Errorf("operand \"%s\" is not a number (%s)", name, text)
	}
	//
	split, err := hint.SplitChecked(&val, hint.LimbWidth, uint(len(limbs)))
	if err != nil {
		return fmt.Errorf("operand \"%s\": %w", name, err)
	}
	//
	for i, limb := range split {
		limbs[i] = felt.FromBigInt(limb)
	}
	//
	return nil
}
