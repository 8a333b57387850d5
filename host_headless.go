// host_headless.go - headless HostBoundary (SPEC_FULL §4.I)
//
// Grounded on the teacher's video_backend_headless.go build-tagged stub: a
// host backend that discards pixel lines but still counts them, used for CI and
// for the debugger TUI (which draws its own representation and has no use
// for a pixel sink).

package main

import "sync/atomic"

// HeadlessVideo discards pixel lines but counts them, mirroring the
// teacher's HeadlessVideoOutput.UpdateFrame bookkeeping.
type HeadlessVideo struct {
	lines uint64
}

func (h *HeadlessVideo) PixelLine(y int, pixels []byte) {
	atomic.AddUint64(&h.lines, 1)
}

func (h *HeadlessVideo) LineCount() uint64 {
	return atomic.LoadUint64(&h.lines)
}

// HeadlessAudio discards PSG bytes but counts them.
type HeadlessAudio struct {
	samples uint64
}

func (h *HeadlessAudio) AudioByte(b byte) {
	atomic.AddUint64(&h.samples, 1)
}

func (h *HeadlessAudio) SampleCount() uint64 {
	return atomic.LoadUint64(&h.samples)
}

// HeadlessHost is a HostBoundary with no real I/O: used by tests, `--headless`
// CLI runs, and the debugger TUI.
type HeadlessHost struct {
	video       *HeadlessVideo
	audio       *HeadlessAudio
	resetWanted bool
}

func NewHeadlessHost() *HeadlessHost {
	return &HeadlessHost{video: &HeadlessVideo{}, audio: &HeadlessAudio{}}
}

func (h *HeadlessHost) Video() VideoSink { return h.video }
func (h *HeadlessHost) Audio() AudioSink { return h.audio }

func (h *HeadlessHost) RequestReset() bool {
	want := h.resetWanted
	h.resetWanted = false
	return want
}

// LoadROM is a thin os.ReadFile wrapper satisfying HostBoundary; the CLI
// normally loads images directly via rom_loader.go instead.
func (h *HeadlessHost) LoadROM(path string) ([]byte, error) {
	return loadROMBytes(path)
}
