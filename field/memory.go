// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"sync"

	"github.com/cpmech/gosl/chk"
)

// Memory implements Storage with one slot per cell id in [0, n)
type Memory struct {
	states  []State // slots
	written []bool  // slot was written in this run
	mu      sync.RWMutex
}

// NewMemory returns a storage with n empty slots
func NewMemory(n int) *Memory {
	return &Memory{states: make([]State, n), written: make([]bool, n)}
}

// Save writes the slot of a cell
func (o *Memory) Save(id int, s State) error {
	if id < 0 || id >= len(o.states) {
		return chk.Err("cell id %d is out of range [0,%d)", id, len(o.states))
	}
	// slots of distinct cells never overlap; the lock only excludes Reset
	o.mu.RLock()
	defer o.mu.RUnlock()
	o.states[id] = s
	o.written[id] = true
	return nil
}

// Load reads the slot of a cell. Reading a slot never written in this run is an error
func (o *Memory) Load(id int) (s State, err error) {
	if id < 0 || id >= len(o.states) {
		return s, chk.Err("cell id %d is out of range [0,%d)", id, len(o.states))
	}
	o.mu.RLock()
	defer o.mu.RUnlock()
	if !o.written[id] {
		return s, chk.Err("slot of cell %d has not been computed in this run", id)
	}
	return o.states[id], nil
}

// Reset clears all slots; e.g. before a new run
func (o *Memory) Reset() {
	o.mu.Lock()
	defer o.mu.Unlock()
	for i := range o.states {
		o.states[i] = State{}
		o.written[i] = false
	}
}

// Len returns the number of slots
func (o *Memory) Len() int {
	return len(o.states)
}
