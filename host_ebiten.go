// host_ebiten.go - windowed ebiten HostBoundary (SPEC_FULL §4.I)
//
// Grounded on the teacher's video_backend_ebiten.go: an ebiten.Game whose
// Draw call blits an RGBA frame buffer built up from PixelLine callbacks,
// and whose Update call polls keyboard state (plus a clipboard-paste
// shortcut via golang.design/x/clipboard) into the emulator's keyboard
// matrix instead of the teacher's byte-stream MMIO handler.
//
//go:build !headless

package main

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
)

// EbitenVideo accumulates PixelLine callbacks into an RGBA frame buffer
// that the ebiten Game draws each tick.
type EbitenVideo struct {
	mu     sync.RWMutex
	vdp    *VDP
	width  int
	height int
	frame  []byte
	image  *ebiten.Image
}

func newEbitenVideo(vdp *VDP, width, height int) *EbitenVideo {
	return &EbitenVideo{
		vdp:    vdp,
		width:  width,
		height: height,
		frame:  make([]byte, width*height*4),
	}
}

// PixelLine implements VideoSink: palette-indexed bytes are expanded to
// RGBA using the VDP's currently active 16-entry palette (or F18A bank).
func (v *EbitenVideo) PixelLine(y int, pixels []byte) {
	if y < 0 || y >= v.height {
		return
	}
	pal := v.vdp.activePalette()
	v.mu.Lock()
	row := v.frame[y*v.width*4:]
	n := v.width
	if len(pixels) < n {
		n = len(pixels)
	}
	for x := 0; x < n; x++ {
		rgb := pal[pixels[x]&0xF]
		o := x * 4
		row[o] = byte(rgb >> 16)
		row[o+1] = byte(rgb >> 8)
		row[o+2] = byte(rgb)
		row[o+3] = 0xFF
	}
	v.mu.Unlock()
}

// EbitenAudio forwards PSG bytes nowhere; audio output is handled
// separately by host_audio_oto.go's OtoAudioSink, attached directly to
// the SoundChip rather than routed through the video Game loop.
type EbitenAudio struct{}

func (EbitenAudio) AudioByte(b byte) {}

// EbitenHost is a HostBoundary backed by a visible ebiten window. Run
// blocks on ebiten.RunGame; call it from main after wiring the emulator.
type EbitenHost struct {
	video *EbitenVideo
	audio EbitenAudio
	keys  *KeyboardAdapter

	resetRequested bool

	clipboardOnce sync.Once
	clipboardOK   bool
}

func NewEbitenHost(vdp *VDP, kb *Keyboard, width, height int) *EbitenHost {
	return &EbitenHost{
		video: newEbitenVideo(vdp, width, height),
		keys:  newKeyboardAdapter(kb),
	}
}

func (h *EbitenHost) Video() VideoSink { return h.video }
func (h *EbitenHost) Audio() AudioSink { return h.audio }

func (h *EbitenHost) RequestReset() bool {
	want := h.resetRequested
	h.resetRequested = false
	return want
}

func (h *EbitenHost) LoadROM(path string) ([]byte, error) {
	return loadROMBytes(path)
}

// Update implements ebiten.Game: polls key state and a clipboard-paste
// shortcut (Ctrl+Shift+V) once per tick.
func (h *EbitenHost) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		h.pasteClipboard()
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		if r > 0 && r <= 0xFF {
			h.keys.SetKey(byte(r), true)
			h.keys.SetKey(byte(r), false)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		h.keys.SetKey('\r', true)
		h.keys.SetKey('\r', false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		h.keys.SetKey(8, true)
		h.keys.SetKey(8, false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		h.resetRequested = true
	}
	return nil
}

func (h *EbitenHost) pasteClipboard() {
	h.clipboardOnce.Do(func() {
		h.clipboardOK = clipboard.Init() == nil
	})
	if !h.clipboardOK {
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}
	if len(data) > 4096 {
		data = data[:4096]
	}
	h.keys.TypeString(string(data))
}

// Draw implements ebiten.Game: blits the accumulated RGBA frame.
func (h *EbitenHost) Draw(screen *ebiten.Image) {
	v := h.video
	v.mu.RLock()
	if v.image == nil {
		v.image = ebiten.NewImage(v.width, v.height)
	}
	v.image.WritePixels(v.frame)
	v.mu.RUnlock()
	screen.DrawImage(v.image, nil)
}

// Layout implements ebiten.Game.
func (h *EbitenHost) Layout(_, _ int) (int, int) {
	return h.video.width, h.video.height
}

// Run opens the window and blocks until it is closed.
func (h *EbitenHost) Run(title string) error {
	ebiten.SetWindowSize(h.video.width*2, h.video.height*2)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	return ebiten.RunGame(h)
}
