// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 SciCrypto Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"sync"
)

// Process - interface for a single background process
// the Run must loop until the shutdown channel is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// T - handle for the stop
type T struct {
	sync.WaitGroup
	finalise chan struct{}
}

// Start - start up a set of background processes
// all with the same arg value
func Start(processes Processes, args interface{}) *T {

	register := &T{
		finalise: make(chan struct{}),
	}

	// start each background
	for _, p := range processes {
		register.Add(1)
		go func(p Process) {
			// pass the shutdown channel to the Run loop
			p.Run(args, register.finalise)
			// flag the stop routine that this process has terminated
			register.Done()
		}(p)
	}
	return register
}

// Stop - stop a set of background processes
func (t *T) Stop() {

	if nil == t {
		return
	}

	// trigger shutdown of all background tasks
	close(t.finalise)

	// wait for all background tasks to terminate
	t.Wait()
}
