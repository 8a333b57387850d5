// runtime_status_test.go - published run-state snapshot

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeStatusSetAndSnapshot(t *testing.T) {
	e := newTestEmulator()
	e.pc = 0x1234
	e.undo.Enabled = true
	e.undo.Push(e)
	sched := newScheduler(e, StandardNTSC)
	sched.y = 5

	store := &runtimeStatusStore{}
	store.set(e, sched, true)

	snap := store.snapshot()
	assert.True(t, snap.running)
	assert.Equal(t, uint16(0x1234), snap.pc)
	assert.Equal(t, 5, snap.scanline)
	assert.Equal(t, 1, snap.undoDepth)
}

func TestRuntimeStatusSetWithNilSchedulerKeepsPriorScanline(t *testing.T) {
	e := newTestEmulator()
	store := &runtimeStatusStore{}
	store.set(e, newScheduler(e, StandardNTSC), false)
	store.runtimeStatusSnapshot.scanline = 9

	store.set(e, nil, true)
	assert.Equal(t, 9, store.snapshot().scanline)
}
