// scheduler.go - scanline-paced main loop (§4.F)
//
// Grounded on the teacher's scanline/frame pump (main.go's run loop driving
// SystemBus.Step in lockstep with the display refresh), generalized from a
// fixed-rate host tick to the explicit five-step per-scanline algorithm
// named in §4.F.

package main

// y tracks the current scanline and total scanline count per TV standard;
// these live alongside the VDP's own replicated y (vdp.y) because the
// scheduler's line counter governs interrupt timing and wraps at the
// standard's field length, while VDP.y is the raster position the render
// and sprite-coincidence logic consult.
type Scheduler struct {
	e        *Emulator
	y        int
	standard TVStandard
}

type TVStandard int

const (
	StandardNTSC TVStandard = iota
	StandardPAL
)

func newScheduler(e *Emulator, standard TVStandard) *Scheduler {
	return &Scheduler{e: e, standard: standard}
}

func (s *Scheduler) totalLines() int {
	if s.standard == StandardPAL {
		return PALScanlines
	}
	return NTSCScanlines
}

// maxLineWidth covers the widest line buffer RenderLine ever fills (the
// F18A double-width text mode, §4.C supplemental).
const maxLineWidth = 320

// RunScanline performs exactly one scanline's worth of §4.F's algorithm:
// render, VBL/interrupt edge, line-counter advance, cycle-budget
// replenishment, then run the CPU until its budget turns positive. render,
// if non-nil, receives the just-rendered line's pixels for visible
// scanlines.
func (s *Scheduler) RunScanline(render func(y int, line []byte)) {
	e := s.e
	var buf [maxLineWidth]byte
	if s.y < VisibleLines {
		e.vdp.RenderLine(s.y, buf[:])
		if render != nil {
			render(s.y, buf[:])
		}
	}
	if s.y == VBLLine {
		e.vdp.status |= vdpStatusF
		if e.vdp.ieEnabled() {
			e.requestInterrupt(1)
		}
	}
	s.y++
	if s.y >= s.totalLines() {
		s.y = 0
	}
	e.vdp.y = s.y

	e.totalCycles += 191
	e.cyc -= 191

	e.RunUntilPositive()
}

// RunFrame runs one full field (all scanlines).
func (s *Scheduler) RunFrame(render func(y int, line []byte)) {
	for i := 0; i < s.totalLines(); i++ {
		s.RunScanline(render)
	}
}
