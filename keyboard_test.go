// keyboard_test.go - matrix state and ASCII keycode adapter

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyboardSetKeyAndReadColumn(t *testing.T) {
	k := newKeyboard()
	k.SelectRow(4)
	k.SetKey(4, 2, true)
	assert.False(t, k.ReadColumn(2)) // held -> active-low -> reads false
	assert.True(t, k.ReadColumn(3))  // untouched column -> idle -> reads true

	k.SetKey(4, 2, false)
	assert.True(t, k.ReadColumn(2))
}

func TestKeyboardOutOfRangeSetKeyIgnored(t *testing.T) {
	k := newKeyboard()
	k.SetKey(8, 0, true)
	k.SetKey(0, 8, true)
	assert.Equal(t, [8]uint8{}, k.rows)
}

func TestKeyboardAlphaLockPseudoRow(t *testing.T) {
	k := newKeyboard()
	k.SelectRow(3)
	assert.True(t, k.ReadColumn(7)) // lock off -> active-low line idle (true)
	k.SetAlphaLock(true)
	assert.False(t, k.ReadColumn(7))
}

func TestKeyboardReset(t *testing.T) {
	k := newKeyboard()
	k.SetKey(1, 1, true)
	k.SelectRow(5)
	k.SetAlphaLock(true)
	k.Reset()
	assert.Equal(t, [8]uint8{}, k.rows)
	assert.Equal(t, uint8(0), k.selected)
	assert.False(t, k.alphaLock)
}

func TestKeyboardAdapterSetKeyTranslatesASCII(t *testing.T) {
	k := newKeyboard()
	a := newKeyboardAdapter(k)

	a.SetKey('q', true)
	assert.True(t, k.rows[1]&(1<<2) != 0) // 'q' is row 1, col 2 in asciiMatrix

	a.SetKey('q', false)
	assert.Zero(t, k.rows[1])
}

func TestKeyboardAdapterUppercaseMapsToSameCell(t *testing.T) {
	k := newKeyboard()
	a := newKeyboardAdapter(k)

	a.SetKey('Q', true)
	assert.True(t, k.rows[1]&(1<<2) != 0)
}

func TestKeyboardAdapterUnknownCodeIgnored(t *testing.T) {
	k := newKeyboard()
	a := newKeyboardAdapter(k)
	a.SetKey(0x01, true)
	assert.Equal(t, [8]uint8{}, k.rows)
}

func TestKeyboardAdapterTypeStringLeavesNoKeyHeld(t *testing.T) {
	k := newKeyboard()
	a := newKeyboardAdapter(k)
	a.TypeString("hi")
	assert.Equal(t, [8]uint8{}, k.rows)
}
