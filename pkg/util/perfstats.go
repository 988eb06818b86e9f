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
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the time and memory consumed by a task, measured from the
// point at which it was created.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation (in bytes)
	startMem uint64
	// Starting number of heap allocations
	startMallocs uint64
}

// NewPerfStats creates a new snapshot of the current time and memory
// allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.Mallocs}
}

// Log (at debug level) the time and memory consumed since this snapshot was
// taken.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	log.Debugf("%s took %s using %d bytes (%d allocations)", prefix, time.Since(p.startTime),
		m.TotalAlloc-p.startMem, m.Mallocs-p.startMallocs)
}
