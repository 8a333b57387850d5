// scheduler_test.go - scanline pacing, VBL interrupt edge and line wraparound

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerRunScanlineRendersVisibleLines(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	sched := newScheduler(e, StandardNTSC)

	var gotY int
	var gotLen int
	sched.RunScanline(func(y int, line []byte) {
		gotY = y
		gotLen = len(line)
	})
	assert.Equal(t, 0, gotY)
	assert.Equal(t, maxLineWidth, gotLen)
	assert.Equal(t, 1, sched.y)
}

func TestSchedulerSkipsRenderCallbackOutsideVisibleLines(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	sched := newScheduler(e, StandardNTSC)
	sched.y = VisibleLines

	called := false
	sched.RunScanline(func(y int, line []byte) { called = true })
	assert.False(t, called)
}

func TestSchedulerVBLLineSetsStatusAndRequestsInterruptWhenEnabled(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	e.vdp.registers[1] |= r1IE
	sched := newScheduler(e, StandardNTSC)
	sched.y = VBLLine

	sched.RunScanline(nil)
	assert.NotZero(t, e.vdp.status&vdpStatusF)
	require.NotZero(t, e.pendingInterrupt)
}

func TestSchedulerVBLLineWithInterruptsDisabledStillSetsStatus(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	e.vdp.registers[1] &^= r1IE
	sched := newScheduler(e, StandardNTSC)
	sched.y = VBLLine

	sched.RunScanline(nil)
	assert.NotZero(t, e.vdp.status&vdpStatusF)
	assert.Zero(t, e.pendingInterrupt)
}

func TestSchedulerLineCounterWrapsAtStandardTotal(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	sched := newScheduler(e, StandardNTSC)
	sched.y = NTSCScanlines - 1

	sched.RunScanline(nil)
	assert.Equal(t, 0, sched.y)
	assert.Equal(t, 0, e.vdp.y)
}

func TestSchedulerPALUsesLongerFieldThanNTSC(t *testing.T) {
	ntsc := newScheduler(NewEmulator(NewHeadlessHost()), StandardNTSC)
	pal := newScheduler(NewEmulator(NewHeadlessHost()), StandardPAL)
	assert.Equal(t, NTSCScanlines, ntsc.totalLines())
	assert.Equal(t, PALScanlines, pal.totalLines())
	assert.Greater(t, pal.totalLines(), ntsc.totalLines())
}

func TestSchedulerRunFrameAdvancesThroughEveryLine(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	sched := newScheduler(e, StandardNTSC)

	lines := 0
	sched.RunFrame(func(y int, line []byte) { lines++ })
	assert.Equal(t, VisibleLines, lines)
	assert.Equal(t, 0, sched.y) // exactly one full field, back to line 0
}
