// sound.go - programmable sound generator write port (§6)
//
// The core's only contract for sound is the write port at 0x8400 (a byte
// written into the high half of the word) and the documented 34-cycle
// penalty (§4.A); the PSG's own tone/noise synthesis is host-side per §1's
// "synthesizer sample generator" non-goal. SoundChip here is the narrow
// seam the host boundary's AudioSink attaches to.

package main

// SoundSampleRate is the host audio backend's playback rate; the PSG byte
// stream itself carries no sample-rate information (§1 non-goal), so this
// is purely a host_audio_oto.go presentation choice.
const SoundSampleRate = 44100

// SoundChip buffers the most recent byte written to the sound port and
// forwards it to the host's AudioSink, if one is attached.
type SoundChip struct {
	last byte
	sink AudioSink
}

func newSoundChip() *SoundChip {
	return &SoundChip{}
}

func (s *SoundChip) Reset() {
	s.last = 0
}

func (s *SoundChip) AttachSink(sink AudioSink) {
	s.sink = sink
}

func (s *SoundChip) Write(b byte) {
	s.last = b
	if s.sink != nil {
		s.sink.AudioByte(b)
	}
}
