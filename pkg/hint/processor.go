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
	"github.com/consensys/go-cairo/pkg/vm"
	log "github.com/sirupsen/logrus"
)

// Function implements a hint natively.  The symbol table gives the variables
// visible to the hint, whilst the ap tracking identifies the position of the
// hint within its enclosing function.
type Function func(machine *vm.VirtualMachine, ids IdsData, apTracking ApTracking) error

// ProcessorData captures everything known about a hint at the point it is
// executed.
type ProcessorData struct {
	// Source text of the hint, as embedded in the compiled program.
	Code string
	// Position of the hint within its enclosing function.
	ApTracking ApTracking
	// Variables visible to the hint.
	IdsData IdsData
}

// BuiltinHintProcessor dispatches hints to their native implementations by
// matching on their source text.  Hints should be registered before execution
// begins, after which a processor can be shared.
type BuiltinHintProcessor struct {
	hints map[string]builtinHint
}

type builtinHint struct {
	name string
	fn   Function
}

// NewBuiltinHintProcessor constructs a processor with all builtin hints
// registered.
func NewBuiltinHintProcessor() *BuiltinHintProcessor {
	var p = &BuiltinHintProcessor{make(map[string]builtinHint)}
	//
	p.AddHint("unsigned_div_rem_uint768_by_uint384", UnsignedDivRemUint768ByUint384Code,
		UnsignedDivRemUint768ByUint384)
	//
	return p
}

// AddHint registers a native implementation for the given hint code,
// replacing any existing implementation.  The name is used only for logging.
func (p *BuiltinHintProcessor) AddHint(name string, code string, fn Function) {
	p.hints[code] = builtinHint{name, fn}
}

// HasHint determines whether an implementation is registered for the given
// hint code.
func (p *BuiltinHintProcessor) HasHint(code string) bool {
	_, ok := p.hints[code]
	//
	return ok
}

// ExecuteHint executes the native implementation registered for the given
// hint.  Any error arising from the hint is returned unmodified.
func (p *BuiltinHintProcessor) ExecuteHint(machine *vm.VirtualMachine, data ProcessorData) error {
	hint, ok := p.hints[data.Code]
	//
	if !ok {
		return &UnknownHintError{data.Code}
	}
	//
	log.Debugf("executing hint %s (pc=%s, fp=%s)", hint.name, machine.GetPC(), machine.GetFP())
	//
	if err := hint.fn(machine, data.IdsData, data.ApTracking); err != nil {
		log.Debugf("hint %s failed: %s", hint.name, err)
		return err
	}
	//
	return nil
}
