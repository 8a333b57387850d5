// keyboard_map.go - host keycode to (row, col) matrix translation (§4.E,
// §6 ADD)
//
// §6 specifies the host boundary as set_key(code, down) but leaves "code"
// host-defined; Keyboard's own SetKey(row, col, down) only understands
// matrix coordinates. KeyboardAdapter is the translation seam: it accepts
// plain ASCII (the common denominator every host in this repo can produce
// — terminal raw-mode bytes, ebiten's rune input, a pasted clipboard
// string) and maps it onto an 8x8 matrix position. This is a simplified
// code space rather than a literal reproduction of the TI-99/4A's physical
// scan matrix, which the spec does not pin down; see DESIGN.md.
package main

// KeyboardAdapter implements KeyInput on top of a *Keyboard, translating
// ASCII codes into matrix (row, col) pairs.
type KeyboardAdapter struct {
	kb *Keyboard
}

func newKeyboardAdapter(kb *Keyboard) *KeyboardAdapter {
	return &KeyboardAdapter{kb: kb}
}

// keyRow is one matrix row's worth of ASCII codes, column-indexed.
type keyRow [8]byte

// asciiMatrix lays out the common keys across the 8x8 matrix. 0 marks an
// unused cell. Row 3, column 7 stays unused: Keyboard.ReadColumn returns
// the alpha-lock state there.
var asciiMatrix = [8]keyRow{
	{'1', '2', '3', '4', '5', '6', '7', '8'},
	{'9', '0', 'q', 'w', 'e', 'r', 't', 'y'},
	{'u', 'i', 'o', 'p', 'a', 's', 'd', 'f'},
	{'g', 'h', 'j', 'k', 'l', 'z', 'x', 0},
	{'v', 'b', 'n', 'm', ',', '.', '/', ' '},
	{'\r', '\n', 8 /* backspace */, 27 /* esc */, '-', '=', ';', '\''},
	{'c', 0, 0, 0, 0, 0, 0, 0},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var asciiMatrixIndex map[byte][2]uint8

func init() {
	asciiMatrixIndex = make(map[byte][2]uint8, 64)
	for row, cols := range asciiMatrix {
		for col, code := range cols {
			if code == 0 {
				continue
			}
			asciiMatrixIndex[code] = [2]uint8{uint8(row), uint8(col)}
			upper := code
			if upper >= 'a' && upper <= 'z' {
				upper -= 'a' - 'A'
				asciiMatrixIndex[upper] = [2]uint8{uint8(row), uint8(col)}
			}
		}
	}
}

// SetKey implements KeyInput. Unknown codes are silently ignored — a host
// sending an unmapped key has no matrix position to press.
func (a *KeyboardAdapter) SetKey(code byte, down bool) {
	pos, ok := asciiMatrixIndex[code]
	if !ok {
		return
	}
	a.kb.SetKey(pos[0], pos[1], down)
}

// TypeString drives the adapter through a full key-down/key-up pair for
// every byte of s, in order — the mechanism clipboard paste (§6 ADD) and
// scripted test input both use.
func (a *KeyboardAdapter) TypeString(s string) {
	for i := 0; i < len(s); i++ {
		a.SetKey(s[i], true)
		a.SetKey(s[i], false)
	}
}
