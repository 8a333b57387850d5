// cartridge_test.go - bank splitting, selection and overflow masking

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartridgeLoadSplitsIntoBanks(t *testing.T) {
	c := newCartridge()
	data := make([]byte, CartridgeBankSize*2)
	data[0] = 0x11
	data[CartridgeBankSize] = 0x22

	require.NoError(t, c.Load(data))
	assert.Len(t, c.banks, 2)
	assert.Equal(t, 0, c.bank)
	assert.Equal(t, uint16(0x1100), c.banks[0][0]) // big-endian pack, high byte first
	assert.Equal(t, uint16(0x2200), c.banks[1][0])
}

func TestCartridgeLoadRejectsBadLength(t *testing.T) {
	c := newCartridge()
	err := c.Load(make([]byte, 1))
	assert.Error(t, err)
}

func TestCartridgeCurrentBankEmptyWhenUnloaded(t *testing.T) {
	c := newCartridge()
	got := c.currentBank()
	assert.Len(t, got, CartridgeBankSize/2)
	for _, w := range got {
		assert.Zero(t, w)
	}
}

func TestCartridgeSelectMasksOverflow(t *testing.T) {
	e := NewEmulator(NewHeadlessHost())
	data := make([]byte, CartridgeBankSize*2) // bankCount=2 -> bankMask = nextPow2Mask(2) = 1
	require.NoError(t, e.cart.Load(data))

	e.cart.Select(e.mm, 0xFFFF) // (0xFFFF>>1)&1 selects bank 1
	assert.Equal(t, 1, e.cart.bank)

	e.cart.Select(e.mm, 0x0004) // (0x0004>>1)&1 = 2&1 = 0
	assert.Equal(t, 0, e.cart.bank)
}

func TestNextPow2Mask(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 3},
		{4, 3},
		{5, 7},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, nextPow2Mask(c.n))
	}
}
