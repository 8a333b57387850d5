// host_headless_test.go - line/sample counting and reset-request latch

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadlessVideoCountsLines(t *testing.T) {
	v := &HeadlessVideo{}
	v.PixelLine(0, nil)
	v.PixelLine(1, nil)
	assert.Equal(t, uint64(2), v.LineCount())
}

func TestHeadlessAudioCountsBytes(t *testing.T) {
	a := &HeadlessAudio{}
	a.AudioByte(0x00)
	assert.Equal(t, uint64(1), a.SampleCount())
}

func TestHeadlessHostRequestResetIsOneShot(t *testing.T) {
	h := NewHeadlessHost()
	assert.False(t, h.RequestReset())

	h.resetWanted = true
	assert.True(t, h.RequestReset())
	assert.False(t, h.RequestReset()) // consumed, doesn't repeat
}

func TestHeadlessHostVideoAndAudioWireThrough(t *testing.T) {
	h := NewHeadlessHost()
	h.Video().PixelLine(5, nil)
	h.Audio().AudioByte(0x11)
	assert.Equal(t, uint64(1), h.video.LineCount())
	assert.Equal(t, uint64(1), h.audio.SampleCount())
}
