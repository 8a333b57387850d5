// host_audio_oto.go - oto/v3 audio backend (SPEC_FULL §4.I)
//
// Grounded on the teacher's audio_backend_oto.go: an oto.Context plus a
// Player whose Read callback is driven by a lock-free ring rather than a
// mutex, with atomic.Uint64 head/tail counters guarding the hot path. The teacher's SoundChip
// is pull-based (ReadSampleFromRing); ours is push-based (sound.go forwards
// each written byte straight to the attached AudioSink), so the ring lives
// here instead of on SoundChip. Byte-wise PSG synthesis is out of scope
// (§1 Non-goals: "synthesizer sample generator"); each raw byte is treated
// as an unsigned 8-bit PCM sample and rescaled to oto's float32LE range,
// which is enough to drive a speaker from the write-port trace without
// implementing the chip's internal waveform generation.
//
//go:build !headless

package main

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/ebitengine/oto/v3"
)

// audioRingSize is deliberately small: PSG writes happen at CPU rates, and
// a large ring would add audible latency between a write and its sound.
const audioRingSize = 8192

// OtoAudioSink is an AudioSink backed by an oto/v3 player. PSG bytes pushed
// via AudioByte are queued into a ring; the player's Read callback drains
// it on oto's own goroutine.
type OtoAudioSink struct {
	ctx    *oto.Context
	player *oto.Player

	ring    [audioRingSize]byte
	head    atomic.Uint64
	tail    atomic.Uint64
	started atomic.Bool

	mutex sync.Mutex
}

// NewOtoAudioSink opens an oto context at sampleRate and returns a sink
// ready to be attached to a SoundChip via AttachSink.
func NewOtoAudioSink(sampleRate int) (*OtoAudioSink, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   4,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	sink := &OtoAudioSink{ctx: ctx}
	sink.player = ctx.NewPlayer(sink)
	return sink, nil
}

// AudioByte implements AudioSink. Called from the emulator's goroutine;
// drops the oldest unread byte if the ring is full rather than blocking the
// CPU loop.
func (s *OtoAudioSink) AudioByte(b byte) {
	head := s.head.Load()
	tail := s.tail.Load()
	if head-tail >= audioRingSize {
		s.tail.Add(1)
	}
	s.ring[head%audioRingSize] = b
	s.head.Add(1)
}

// Read implements io.Reader for oto.NewPlayer: each output sample is one
// ring byte rescaled from [0,255] to a centered float32 in [-1,1].
func (s *OtoAudioSink) Read(p []byte) (int, error) {
	n := len(p) / 4
	for i := 0; i < n; i++ {
		tail := s.tail.Load()
		var sample float32
		if s.head.Load() > tail {
			b := s.ring[tail%audioRingSize]
			s.tail.Add(1)
			sample = (float32(b) - 128) / 128
		}
		putFloat32LE(p[i*4:i*4+4], sample)
	}
	return n * 4, nil
}

func putFloat32LE(dst []byte, f float32) {
	bits := math.Float32bits(f)
	dst[0] = byte(bits)
	dst[1] = byte(bits >> 8)
	dst[2] = byte(bits >> 16)
	dst[3] = byte(bits >> 24)
}

// Start begins playback; safe to call once after AttachSink wiring.
func (s *OtoAudioSink) Start() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !s.started.Load() {
		s.player.Play()
		s.started.Store(true)
	}
}

func (s *OtoAudioSink) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.started.Load() {
		s.player.Close()
		s.started.Store(false)
	}
}
