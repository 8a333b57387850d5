// cru_constants.go - CRU bit assignments (§4.E)

package main

const (
	cruBitTimerMode = 0
	cruBitVDPStatus = 2

	cruKeyboardFirstBit = 3
	cruKeyboardLastBit  = 10

	cruMaskFirstLowBit  = 1 // 1..8 set/clear interrupt mask bits on write
	cruMaskLastLowBit   = 8
	cruMaskFirstHighBit = 12 // 12..15 likewise
	cruMaskLastHighBit  = 15

	cruBitRowSelectFirst = 18
	cruBitRowSelectLast  = 20
	cruBitAlphaLock      = 21

	cruBitSAMSEnable  = 0x1E00 >> 1
	cruBitSAMSMode    = (0x1E00 >> 1) + 1
	cruBitSAMS4MBMode = (0x1E00 >> 1) + 2

	timerWindowBits = 14
)
