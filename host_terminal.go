// host_terminal.go - raw-terminal text-mode HostBoundary (SPEC_FULL §4.I)
//
// Grounded on the teacher's terminal_host.go: raw mode via golang.org/x/term,
// a non-blocking stdin reader goroutine, and CR/DEL translation. Where the
// teacher routes bytes into a TerminalMMIO device, this routes them through
// a KeyboardAdapter into the CRU keyboard matrix. Video has no terminal
// analogue at this resolution, so TerminalVideo renders a coarse per-line
// checksum instead of real pixels — enough to see that frames are changing
// without needing a graphical surface.
//
//go:build !headless

package main

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// TerminalVideo prints one checksum character per scanline, wrapping every
// 80 characters to fit an 80-column tty.
type TerminalVideo struct {
	col int
}

func (t *TerminalVideo) PixelLine(y int, pixels []byte) {
	var sum byte
	for _, b := range pixels {
		sum += b
	}
	fmt.Printf("%c", '.'+rune(sum%32))
	t.col++
	if t.col >= 80 {
		fmt.Println()
		t.col = 0
	}
}

// TerminalAudio discards PSG bytes; a text terminal has no audio path.
type TerminalAudio struct{}

func (TerminalAudio) AudioByte(b byte) {}

// TerminalHost reads raw stdin and feeds ASCII bytes into a KeyboardAdapter.
// Only instantiated by the CLI's interactive run path — never in tests.
type TerminalHost struct {
	keys *KeyboardAdapter

	video TerminalVideo
	audio TerminalAudio

	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	fd           int
	nonblockSet  bool
	oldTermState *term.State

	resetRequested bool
}

// NewTerminalHost creates a host adapter that reads stdin into kb.
func NewTerminalHost(kb *Keyboard) *TerminalHost {
	return &TerminalHost{
		keys:   newKeyboardAdapter(kb),
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

func (h *TerminalHost) Video() VideoSink { return &h.video }
func (h *TerminalHost) Audio() AudioSink { return h.audio }

func (h *TerminalHost) RequestReset() bool {
	want := h.resetRequested
	h.resetRequested = false
	return want
}

func (h *TerminalHost) LoadROM(path string) ([]byte, error) {
	return loadROMBytes(path)
}

// Start puts stdin in raw, non-blocking mode and begins reading in a
// goroutine. Call Stop() to restore stdin.
func (h *TerminalHost) Start() {
	h.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(h.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "host_terminal: failed to set raw mode: %v\n", err)
		close(h.done)
		return
	}
	h.oldTermState = oldState

	if err := syscall.SetNonblock(h.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "host_terminal: failed to set nonblocking stdin: %v\n", err)
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
		close(h.done)
		return
	}
	h.nonblockSet = true

	go func() {
		defer close(h.done)
		buf := make([]byte, 1)

		for {
			select {
			case <-h.stopCh:
				return
			default:
			}

			n, err := syscall.Read(h.fd, buf)
			if n > 0 {
				b := buf[0]
				if b == '\r' {
					b = '\n'
				}
				if b == 0x7F {
					b = 0x08
				}
				if b == 0x03 { // Ctrl-C requests a machine reset rather than killing the host
					h.resetRequested = true
				} else {
					h.keys.SetKey(b, true)
					h.keys.SetKey(b, false)
				}
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
}

// Stop terminates the stdin reading goroutine and restores stdin to
// blocking, cooked mode.
func (h *TerminalHost) Stop() {
	h.stopped.Do(func() {
		close(h.stopCh)
	})
	<-h.done
	if h.nonblockSet {
		_ = syscall.SetNonblock(h.fd, false)
		h.nonblockSet = false
	}
	if h.oldTermState != nil {
		_ = term.Restore(h.fd, h.oldTermState)
		h.oldTermState = nil
	}
}
