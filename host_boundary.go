// host_boundary.go - the narrow engine/host interface (§6, SPEC_FULL §4.I)
//
// The core engine files never import ebiten or oto directly; they only define
// and exercises this boundary. Concrete backends (host_headless.go,
// host_terminal.go, host_ebiten.go, host_audio_oto.go) are CLI-level
// conveniences built on top of it.

package main

// VideoSink receives one rendered scanline's worth of palette-indexed
// pixels at a time, mirroring §6's vdp_pixel_line(y, bytes, length).
type VideoSink interface {
	PixelLine(y int, pixels []byte)
}

// AudioSink receives one PSG output sample at a time, mirroring §6's
// audio_byte(u8).
type AudioSink interface {
	AudioByte(b byte)
}

// KeyInput is the host-to-engine keyboard path, mirroring §6's
// set_key(code, down). code is a host-neutral key identifier resolved by
// the host into a keyboard matrix row/column by KeyboardAdapter
// (keyboard_map.go).
type KeyInput interface {
	SetKey(code byte, down bool)
}

// HostBoundary aggregates everything a running machine needs from its
// environment: where pixels and audio go, where reset requests come from,
// and how ROM bytes are loaded from outside the process. Key state does not
// pass through it; hosts drive a KeyInput directly.
type HostBoundary interface {
	Video() VideoSink
	Audio() AudioSink
	RequestReset() bool
	LoadROM(path string) ([]byte, error)
}
