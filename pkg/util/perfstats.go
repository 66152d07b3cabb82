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

// PerfStats provides a snapshot of memory allocation at a given point in time.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of heap allocations
	startMallocs uint64
	// Starting number of gc events
	startGc uint32
}

// PerfReport summarises the difference between two points in time.
type PerfReport struct {
	// Wall clock time elapsed
	Elapsed time.Duration
	// Bytes allocated on the heap
	Bytes uint64
	// Number of heap allocations
	Mallocs uint64
	// Number of gc events
	GCs uint32
}

// NewPerfStats creates a new snapshot of the current amount of memory allocated.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats

	startTime := time.Now()

	runtime.ReadMemStats(&m)

	return &PerfStats{startTime, m.TotalAlloc, m.Mallocs, m.NumGC}
}

// Report returns the difference between the state now and as it was when the
// PerfStats object was created.
func (p *PerfStats) Report() PerfReport {
	var m runtime.MemStats
	// Read clock first so the memory snapshot is not counted.
	elapsed := time.Since(p.startTime)

	runtime.ReadMemStats(&m)

	return PerfReport{
		Elapsed: elapsed,
		Bytes:   m.TotalAlloc - p.startMem,
		Mallocs: m.Mallocs - p.startMallocs,
		GCs:     m.NumGC - p.startGc,
	}
}

// Log logs the difference between the state now and as it was when the PerfStats object was created.
func (p *PerfStats) Log(prefix string) PerfReport {
	r := p.Report()

	log.Debugf("%s took %0.3fs using %v bytes in %v allocations (%v GC events)", prefix, r.Elapsed.Seconds(),
		r.Bytes, r.Mallocs, r.GCs)

	return r
}
