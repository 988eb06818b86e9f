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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-cairo/pkg/felt"
	"github.com/consensys/go-cairo/pkg/hint"
	"github.com/consensys/go-cairo/pkg/util"
	"github.com/consensys/go-cairo/pkg/vm"
	"github.com/consensys/go-cairo/pkg/vm/memory"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var divremCmd = &cobra.Command{
	Use:   "divrem [flags]",
	Short: "Divide a uint768 by a uint384.",
	Long: `Compute the quotient and remainder of dividing a uint768 by a uint384 by
	executing the native hint against a freshly constructed machine.  Operands are
	given either as flags, or in a JSON input file.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			operands Operands
			err      error
		)
		//
		if len(args) != 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		if input := GetString(cmd, "input"); input != "" {
			operands, err = ReadInputFile(input)
		} else {
			err = errors.Join(
				splitOperand("a", GetString(cmd, "dividend"), operands.Dividend[:]),
				splitOperand("div", GetString(cmd, "divisor"), operands.Divisor[:]))
		}
		// Check input
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		//
		stats := util.NewPerfStats()
		quotient, remainder, err := DivRem(operands)
		//
		stats.Log("unsigned_div_rem_uint768_by_uint384")
		//
		if err != nil {
			log.Error(err)
			os.Exit(3)
		}
		//
		base := 10
		if GetFlag(cmd, "hex") {
			base = 16
		}
		//
		if GetFlag(cmd, "limbs") {
			fmt.Printf("quotient: %s\n", formatLimbs(quotient.Limbs(), base))
			fmt.Printf("remainder: %s\n", formatLimbs(remainder.Limbs(), base))
		} else {
			fmt.Printf("quotient: %s\n", formatValue(quotient.Pack(hint.LimbWidth).Text(base), base))
			fmt.Printf("remainder: %s\n", formatValue(remainder.Pack(hint.LimbWidth).Text(base), base))
		}
	},
}

// Frame layout used when executing the division hint.  The frame pointer sits
// immediately after the last remainder limb.
const (
	divRemFramePointer    = 17
	divRemDividendOffset  = 0
	divRemDivisorOffset   = 6
	divRemQuotientOffset  = 9
	divRemRemainderOffset = 15
)

// DivRem executes the division hint on a fresh machine holding the given
// operands, and reads back the quotient and remainder it writes.  Any error
// reported by the hint is returned unmodified.
func DivRem(operands Operands) (hint.Uint768, hint.Uint384, error) {
	var (
		machine   = vm.New().WithRunContext(vm.RunContext{FP: divRemFramePointer})
		processor = hint.NewBuiltinHintProcessor()
		ids       = hint.IdsData{
			"a":         frameReference(divRemDividendOffset),
			"div":       frameReference(divRemDivisorOffset),
			"quotient":  frameReference(divRemQuotientOffset),
			"remainder": frameReference(divRemRemainderOffset),
		}
	)
	// Load operands
	if _, err := machine.Segments.LoadData(frameAddr(divRemDividendOffset),
		toCells(operands.Dividend.Limbs())...); err != nil {
		return hint.Uint768{}, hint.Uint384{}, err
	}
	//
	if _, err := machine.Segments.LoadData(frameAddr(divRemDivisorOffset),
		toCells(operands.Divisor.Limbs())...); err != nil {
		return hint.Uint768{}, hint.Uint384{}, err
	}
	// Execute hint
	data := hint.ProcessorData{Code: hint.UnsignedDivRemUint768ByUint384Code, IdsData: ids}
	//
	if err := processor.ExecuteHint(machine, data); err != nil {
		return hint.Uint768{}, hint.Uint384{}, err
	}
	// Read back results
	quotient, err := hint.Uint768FromBaseAddr(frameAddr(divRemQuotientOffset), "quotient", machine)
	if err != nil {
		return hint.Uint768{}, hint.Uint384{}, err
	}
	//
	remainder, err := hint.Uint384FromBaseAddr(frameAddr(divRemRemainderOffset), "remainder", machine)
	if err != nil {
		return hint.Uint768{}, hint.Uint384{}, err
	}
	//
	return quotient, remainder, nil
}

// Construct a reference to the variable at the given offset within the frame.
func frameReference(offset int64) hint.HintReference {
	return hint.NewSimpleReference(offset - divRemFramePointer)
}

// Construct the address of the given offset within the frame.
func frameAddr(offset uint64) memory.Relocatable {
	return memory.NewRelocatable(vm.ExecutionSegment, offset)
}

func toCells(limbs []felt.Element) []memory.MaybeRelocatable {
	var cells = make([]memory.MaybeRelocatable, len(limbs))
	//
	for i, limb := range limbs {
		cells[i] = memory.Int(limb)
	}
	//
	return cells
}

func formatLimbs(limbs []felt.Element, base int) string {
	var builder strings.Builder
	//
	builder.WriteString("[")
	//
	for i, limb := range limbs {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(formatValue(limb.Text(base), base))
	}
	//
	builder.WriteString("]")
	//
	return builder.String()
}

func formatValue(text string, base int) string {
	if base == 16 {
		return "0x" + text
	}
	//
	return text
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(divremCmd)
	divremCmd.Flags().StringP("input", "i", "", "read operands from a JSON input file")
	divremCmd.Flags().String("dividend", "0", "dividend (a uint768)")
	divremCmd.Flags().String("divisor", "1", "divisor (a uint384)")
	divremCmd.Flags().Bool("limbs", false, "print results as limbs")
	divremCmd.Flags().Bool("hex", false, "print results in hexadecimal")
}
