// vdp_palette.go - fixed TMS9918A NTSC palette (§6); the F18A banks in vdp.go start from it

package main

// ntscPalette is the classic 16-entry TMS9918A NTSC palette, RGB888.
var ntscPalette = [16]uint32{
	0x000000, // 0 transparent
	0x000000, // 1 black
	0x21C842, // 2 medium green
	0x5EDC78, // 3 light green
	0x5455ED, // 4 dark blue
	0x7D76FC, // 5 light blue
	0xD4524D, // 6 dark red
	0x42EBF5, // 7 cyan
	0xFC5554, // 8 medium red
	0xFF7978, // 9 light red
	0xD4C154, // 10 dark yellow
	0xE6CE80, // 11 light yellow
	0x21B03C, // 12 dark green
	0xC95BBA, // 13 magenta
	0xCCCCCC, // 14 gray
	0xFFFFFF, // 15 white
}
