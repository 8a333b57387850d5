// sound_test.go - sound port write forwarding to an attached AudioSink

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeAudioSink struct {
	bytes []byte
}

func (f *fakeAudioSink) AudioByte(b byte) { f.bytes = append(f.bytes, b) }

func TestSoundChipWriteWithNoSinkAttached(t *testing.T) {
	s := newSoundChip()
	s.Write(0x42) // must not panic with no sink
	assert.Equal(t, byte(0x42), s.last)
}

func TestSoundChipForwardsToAttachedSink(t *testing.T) {
	s := newSoundChip()
	sink := &fakeAudioSink{}
	s.AttachSink(sink)

	s.Write(0x01)
	s.Write(0x02)
	assert.Equal(t, []byte{0x01, 0x02}, sink.bytes)
	assert.Equal(t, byte(0x02), s.last)
}

func TestSoundChipReset(t *testing.T) {
	s := newSoundChip()
	s.Write(0xAB)
	s.Reset()
	assert.Zero(t, s.last)
}
