// debug_monitor_test.go - activate/deactivate lifecycle and breakpoint handling

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineMonitorActivateDeactivate(t *testing.T) {
	d, _ := newTestDebuggable()
	m := NewMachineMonitor(d)
	assert.False(t, m.IsActive())

	d.Resume()
	m.Activate()
	assert.True(t, m.IsActive())
	assert.False(t, d.IsRunning()) // Activate freezes a running CPU

	m.Deactivate()
	assert.False(t, m.IsActive())
	assert.True(t, d.IsRunning()) // Deactivate resumes since it was running before
}

func TestMachineMonitorActivateIsIdempotent(t *testing.T) {
	d, _ := newTestDebuggable()
	m := NewMachineMonitor(d)
	m.Activate()
	before := len(m.outputLines)
	m.Activate() // no-op the second time
	assert.Equal(t, before, len(m.outputLines))
}

func TestMachineMonitorDeactivateDoesNotResumeIfNotRunningBefore(t *testing.T) {
	d, _ := newTestDebuggable()
	m := NewMachineMonitor(d)
	m.Activate() // d was frozen already
	m.Deactivate()
	assert.False(t, d.IsRunning())
}

func TestMachineMonitorStartBreakpointListenerActivatesOnHit(t *testing.T) {
	d, e := newTestDebuggable()
	e.loadProgram(encodeImmediate(immLI, 0), 0x0005)
	m := NewMachineMonitor(d)
	m.StartBreakpointListener()

	d.SetBreakpoint(uint64(testProgramBase + 4))
	d.Resume()
	d.Step()

	require.Eventually(t, func() bool { return m.IsActive() }, time.Second, time.Millisecond)
}
