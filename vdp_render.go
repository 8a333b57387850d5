// vdp_render.go - per-scanline renderer (§4.C)
//
// Draws one scanline's worth of palette-indexed pixels into the line
// buffer, selecting among the five TMS9918-family modes by the register
// bits decoded in vdp.go's mode().

package main

const (
	borderColorIndex = 7 // classic TMS9918A default border slot; RenderLine takes the border/backdrop from register 7's low nibble instead
)

// RenderLine fills line (256 or 320 bytes, depending on the active
// double-width text mode) with palette-indexed pixel values for scanline y
// (0..191 are visible, §4.C). Sprites are overlaid afterward except in the
// two text modes.
func (v *VDP) RenderLine(y int, line []byte) {
	width := 256
	if v.doubleWidthText() {
		width = 320
	}
	if len(line) < width {
		return
	}
	line = line[:width]
	bg := v.registers[7] & 0x0F
	for i := range line[:width] {
		line[i] = bg
	}

	switch v.mode() {
	case modeGraphics1:
		v.renderGraphics1(y, line)
		v.overlaySprites(y, line)
	case modeGraphics2Bitmap:
		v.renderGraphics2(y, line)
		v.overlaySprites(y, line)
	case modeMulticolor:
		v.renderMulticolor(y, line)
		v.overlaySprites(y, line)
	case modeText:
		v.renderText(y, line, 6)
	case modeTextBitmap:
		v.renderText(y, line, 6)
	}
}

// doubleWidthText reports the F18A-supplemental double-width text mode: the
// line widens to 320 pixels and the same 40 six-pixel columns are centred
// in it, so the side border grows from 8 to 40 pixels. No 80-column layout
// is rendered.
func (v *VDP) doubleWidthText() bool {
	return v.paletteUnlocked && v.mode() == modeText && v.registers[0]&r0ExtVideo != 0
}

func (v *VDP) renderGraphics1(y int, line []byte) {
	row := y / 8
	fine := y % 8
	screenBase := v.screenTableBase()
	patBase := v.patternTableBase()
	colorBase := v.colorTableBase()
	for col := 0; col < 32; col++ {
		name := v.vram[screenBase+uint16(row*32+col)]
		pat := v.vram[patBase+uint16(name)*8+uint16(fine)]
		colorByte := v.vram[colorBase+uint16(name)/8]
		fg := colorByte >> 4
		bgc := colorByte & 0x0F
		for bit := 0; bit < 8; bit++ {
			px := col*8 + bit
			if px >= len(line) {
				continue
			}
			if pat&(0x80>>uint(bit)) != 0 {
				line[px] = fg
			} else if bgc != 0 {
				line[px] = bgc
			}
		}
	}
}

func (v *VDP) renderGraphics2(y int, line []byte) {
	row := y / 8
	fine := y % 8
	screenBase := v.screenTableBase()
	// In bitmap mode the pattern/color tables are split into three 2KB
	// thirds selected by the top bits of the row.
	third := uint16(row/8) & 0x03
	patBase := v.patternTableBase() + third*2048
	colorBase := v.colorTableBase() + third*2048
	for col := 0; col < 32; col++ {
		name := v.vram[screenBase+uint16(row*32+col)]
		off := uint16(name)*8 + uint16(fine)
		pat := v.vram[patBase+off]
		colorByte := v.vram[colorBase+off]
		fg := colorByte >> 4
		bgc := colorByte & 0x0F
		for bit := 0; bit < 8; bit++ {
			px := col*8 + bit
			if px >= len(line) {
				continue
			}
			if pat&(0x80>>uint(bit)) != 0 {
				line[px] = fg
			} else if bgc != 0 {
				line[px] = bgc
			}
		}
	}
}

func (v *VDP) renderMulticolor(y int, line []byte) {
	row := y / 8
	block := (y % 8) / 4
	screenBase := v.screenTableBase()
	patBase := v.patternTableBase()
	for col := 0; col < 32; col++ {
		name := v.vram[screenBase+uint16(row*32+col)]
		colorByte := v.vram[patBase+uint16(name)*8+uint16(block)]
		fg := colorByte >> 4
		bgc := colorByte & 0x0F
		for px2 := 0; px2 < 8; px2++ {
			px := col*8 + px2
			if px >= len(line) {
				continue
			}
			if px2 < 4 {
				if fg != 0 {
					line[px] = fg
				}
			} else if bgc != 0 {
				line[px] = bgc
			}
		}
	}
}

func (v *VDP) renderText(y int, line []byte, charWidth int) {
	row := y / 8
	fine := y % 8
	screenBase := v.screenTableBase()
	patBase := v.patternTableBase()
	fg := v.registers[7] >> 4
	bgc := v.registers[7] & 0x0F
	border := (len(line) - 40*charWidth) / 2
	for i := 0; i < border && i < len(line); i++ {
		line[i] = bgc
	}
	for col := 0; col < 40; col++ {
		name := v.vram[screenBase+uint16(row*40+col)]
		pat := v.vram[patBase+uint16(name)*8+uint16(fine)]
		for bit := 0; bit < charWidth; bit++ {
			px := border + col*charWidth + bit
			if px < 0 || px >= len(line) {
				continue
			}
			if bit < 6 && pat&(0x80>>uint(bit)) != 0 {
				line[px] = fg
			} else {
				line[px] = bgc
			}
		}
	}
	for i := border + 40*charWidth; i < len(line); i++ {
		line[i] = bgc
	}
}
