// debug_snapshot.go - coarse whole-machine snapshot for save/load (§4.H)
//
// Grounded on the teacher's debug_snapshot.go: a magic + version header
// followed by a gzip-compressed body, written with encoding/binary.
// Unlike the teacher (a single flat address space), this machine's state is
// spread across several backing stores (CPU registers, three RAM regions,
// VDP, GROM, CRU, keyboard, cartridge bank), so the snapshot lists each one
// explicitly rather than a single memory blob.

package main

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const (
	snapshotMagic   = "TI99"
	snapshotVersion = 1
)

// MachineSnapshot captures every piece of state named by §4.H's
// bit-identical replay requirement.
type MachineSnapshot struct {
	PC, WP, ST       uint16
	Cyc              int32
	TotalCycles      uint64
	PendingInterrupt int32

	FastRAM    []uint16
	LowExpRAM  []uint16
	HighExpRAM []uint16

	VRAM            []byte
	VDPAddr         uint16
	VDPLatchHigh    bool
	VDPLatchByte    byte
	VDPRegisters    [8]byte
	VDPStatus       byte
	VDPY            int32
	PaletteUnlocked bool
	PaletteBank     int32

	GROMData      []byte
	GROMAddr      uint16
	GROMLatchHigh bool
	GROMLatchByte byte
	GROMLastByte  byte

	CRUTimerMode   bool
	CRUSamsEnabled bool
	CRUSamsMode    bool
	CRUSams4MBMode bool

	KeyboardRows      [8]uint8
	KeyboardSelected  uint8
	KeyboardAlphaLock bool

	CartBank int32
}

// TakeSnapshot captures the current state of e.
func TakeSnapshot(e *Emulator) *MachineSnapshot {
	return &MachineSnapshot{
		PC: e.pc, WP: e.wp, ST: e.st,
		Cyc: e.cyc, TotalCycles: e.totalCycles,
		PendingInterrupt: int32(e.pendingInterrupt),

		FastRAM:    append([]uint16(nil), e.fastRAM...),
		LowExpRAM:  append([]uint16(nil), e.lowExpRAM...),
		HighExpRAM: append([]uint16(nil), e.highExpRAM...),

		VRAM:            append([]byte(nil), e.vdp.vram[:]...),
		VDPAddr:         e.vdp.addr,
		VDPLatchHigh:    e.vdp.latchHigh,
		VDPLatchByte:    e.vdp.latchByte,
		VDPRegisters:    e.vdp.registers,
		VDPStatus:       e.vdp.status,
		VDPY:            int32(e.vdp.y),
		PaletteUnlocked: e.vdp.paletteUnlocked,
		PaletteBank:     int32(e.vdp.paletteBank),

		GROMData:      append([]byte(nil), e.grom.data...),
		GROMAddr:      e.grom.addr,
		GROMLatchHigh: e.grom.latchHigh,
		GROMLatchByte: e.grom.latchByte,
		GROMLastByte:  e.grom.lastByte,

		CRUTimerMode:   e.cru.timerMode,
		CRUSamsEnabled: e.cru.samsEnabled,
		CRUSamsMode:    e.cru.samsMode,
		CRUSams4MBMode: e.cru.sams4MBMode,

		KeyboardRows:      e.keyboard.rows,
		KeyboardSelected:  e.keyboard.selected,
		KeyboardAlphaLock: e.keyboard.alphaLock,

		CartBank: int32(e.cart.bank),
	}
}

// RestoreSnapshot writes snap's state back onto e.
func RestoreSnapshot(e *Emulator, snap *MachineSnapshot) {
	e.pc, e.wp, e.st = snap.PC, snap.WP, snap.ST
	e.cyc, e.totalCycles = snap.Cyc, snap.TotalCycles
	e.pendingInterrupt = int(snap.PendingInterrupt)

	copy(e.fastRAM, snap.FastRAM)
	copy(e.lowExpRAM, snap.LowExpRAM)
	copy(e.highExpRAM, snap.HighExpRAM)

	copy(e.vdp.vram[:], snap.VRAM)
	e.vdp.addr = snap.VDPAddr
	e.vdp.latchHigh = snap.VDPLatchHigh
	e.vdp.latchByte = snap.VDPLatchByte
	e.vdp.registers = snap.VDPRegisters
	e.vdp.status = snap.VDPStatus
	e.vdp.y = int(snap.VDPY)
	e.vdp.paletteUnlocked = snap.PaletteUnlocked
	e.vdp.paletteBank = int(snap.PaletteBank)

	e.grom.data = append([]byte(nil), snap.GROMData...)
	e.grom.addr = snap.GROMAddr
	e.grom.latchHigh = snap.GROMLatchHigh
	e.grom.latchByte = snap.GROMLatchByte
	e.grom.lastByte = snap.GROMLastByte

	e.cru.timerMode = snap.CRUTimerMode
	e.cru.samsEnabled = snap.CRUSamsEnabled
	e.cru.samsMode = snap.CRUSamsMode
	e.cru.sams4MBMode = snap.CRUSams4MBMode

	e.keyboard.rows = snap.KeyboardRows
	e.keyboard.selected = snap.KeyboardSelected
	e.keyboard.alphaLock = snap.KeyboardAlphaLock

	e.cart.bank = int(snap.CartBank)
	e.mm.remap(CartridgeROMBase, CartridgeWindow, e.cart.currentBank())
}

func writeSlice16(buf *bytes.Buffer, s []uint16) {
	binary.Write(buf, binary.LittleEndian, uint32(len(s)))
	binary.Write(buf, binary.LittleEndian, s)
}

func readSlice16(r io.Reader) ([]uint16, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	s := make([]uint16, n)
	if err := binary.Read(r, binary.LittleEndian, s); err != nil {
		return nil, err
	}
	return s, nil
}

func writeSliceBytes(buf *bytes.Buffer, s []byte) {
	binary.Write(buf, binary.LittleEndian, uint32(len(s)))
	buf.Write(s)
}

func readSliceBytes(r io.Reader) ([]byte, error) {
	var n uint32
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return nil, err
	}
	s := make([]byte, n)
	if _, err := io.ReadFull(r, s); err != nil {
		return nil, err
	}
	return s, nil
}

// SaveSnapshotToFile writes a gzip-compressed snapshot to disk.
func SaveSnapshotToFile(snap *MachineSnapshot, path string) error {
	var body bytes.Buffer
	binary.Write(&body, binary.LittleEndian, snap.PC)
	binary.Write(&body, binary.LittleEndian, snap.WP)
	binary.Write(&body, binary.LittleEndian, snap.ST)
	binary.Write(&body, binary.LittleEndian, snap.Cyc)
	binary.Write(&body, binary.LittleEndian, snap.TotalCycles)
	binary.Write(&body, binary.LittleEndian, snap.PendingInterrupt)

	writeSlice16(&body, snap.FastRAM)
	writeSlice16(&body, snap.LowExpRAM)
	writeSlice16(&body, snap.HighExpRAM)

	writeSliceBytes(&body, snap.VRAM)
	binary.Write(&body, binary.LittleEndian, snap.VDPAddr)
	binary.Write(&body, binary.LittleEndian, snap.VDPLatchHigh)
	binary.Write(&body, binary.LittleEndian, snap.VDPLatchByte)
	binary.Write(&body, binary.LittleEndian, snap.VDPRegisters)
	binary.Write(&body, binary.LittleEndian, snap.VDPStatus)
	binary.Write(&body, binary.LittleEndian, snap.VDPY)
	binary.Write(&body, binary.LittleEndian, snap.PaletteUnlocked)
	binary.Write(&body, binary.LittleEndian, snap.PaletteBank)

	writeSliceBytes(&body, snap.GROMData)
	binary.Write(&body, binary.LittleEndian, snap.GROMAddr)
	binary.Write(&body, binary.LittleEndian, snap.GROMLatchHigh)
	binary.Write(&body, binary.LittleEndian, snap.GROMLatchByte)
	binary.Write(&body, binary.LittleEndian, snap.GROMLastByte)

	binary.Write(&body, binary.LittleEndian, snap.CRUTimerMode)
	binary.Write(&body, binary.LittleEndian, snap.CRUSamsEnabled)
	binary.Write(&body, binary.LittleEndian, snap.CRUSamsMode)
	binary.Write(&body, binary.LittleEndian, snap.CRUSams4MBMode)

	binary.Write(&body, binary.LittleEndian, snap.KeyboardRows)
	binary.Write(&body, binary.LittleEndian, snap.KeyboardSelected)
	binary.Write(&body, binary.LittleEndian, snap.KeyboardAlphaLock)

	binary.Write(&body, binary.LittleEndian, snap.CartBank)

	var out bytes.Buffer
	out.WriteString(snapshotMagic)
	binary.Write(&out, binary.LittleEndian, uint32(snapshotVersion))
	gz := gzip.NewWriter(&out)
	if _, err := gz.Write(body.Bytes()); err != nil {
		return fmt.Errorf("compressing snapshot: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("closing gzip: %w", err)
	}
	return os.WriteFile(path, out.Bytes(), 0644)
}

// LoadSnapshotFromFile reads and decompresses a snapshot from disk.
func LoadSnapshotFromFile(path string) (*MachineSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r := bytes.NewReader(data)
	magic := make([]byte, 4)
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if string(magic) != snapshotMagic {
		return nil, fmt.Errorf("invalid snapshot magic: %q", string(magic))
	}
	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("reading version: %w", err)
	}
	if version != snapshotVersion {
		return nil, fmt.Errorf("unsupported snapshot version: %d", version)
	}
	gz, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening gzip reader: %w", err)
	}
	defer gz.Close()

	snap := &MachineSnapshot{}
	binary.Read(gz, binary.LittleEndian, &snap.PC)
	binary.Read(gz, binary.LittleEndian, &snap.WP)
	binary.Read(gz, binary.LittleEndian, &snap.ST)
	binary.Read(gz, binary.LittleEndian, &snap.Cyc)
	binary.Read(gz, binary.LittleEndian, &snap.TotalCycles)
	binary.Read(gz, binary.LittleEndian, &snap.PendingInterrupt)

	if snap.FastRAM, err = readSlice16(gz); err != nil {
		return nil, fmt.Errorf("reading fast RAM: %w", err)
	}
	if snap.LowExpRAM, err = readSlice16(gz); err != nil {
		return nil, fmt.Errorf("reading low expansion RAM: %w", err)
	}
	if snap.HighExpRAM, err = readSlice16(gz); err != nil {
		return nil, fmt.Errorf("reading high expansion RAM: %w", err)
	}

	if snap.VRAM, err = readSliceBytes(gz); err != nil {
		return nil, fmt.Errorf("reading VRAM: %w", err)
	}
	binary.Read(gz, binary.LittleEndian, &snap.VDPAddr)
	binary.Read(gz, binary.LittleEndian, &snap.VDPLatchHigh)
	binary.Read(gz, binary.LittleEndian, &snap.VDPLatchByte)
	binary.Read(gz, binary.LittleEndian, &snap.VDPRegisters)
	binary.Read(gz, binary.LittleEndian, &snap.VDPStatus)
	binary.Read(gz, binary.LittleEndian, &snap.VDPY)
	binary.Read(gz, binary.LittleEndian, &snap.PaletteUnlocked)
	binary.Read(gz, binary.LittleEndian, &snap.PaletteBank)

	if snap.GROMData, err = readSliceBytes(gz); err != nil {
		return nil, fmt.Errorf("reading GROM data: %w", err)
	}
	binary.Read(gz, binary.LittleEndian, &snap.GROMAddr)
	binary.Read(gz, binary.LittleEndian, &snap.GROMLatchHigh)
	binary.Read(gz, binary.LittleEndian, &snap.GROMLatchByte)
	binary.Read(gz, binary.LittleEndian, &snap.GROMLastByte)

	binary.Read(gz, binary.LittleEndian, &snap.CRUTimerMode)
	binary.Read(gz, binary.LittleEndian, &snap.CRUSamsEnabled)
	binary.Read(gz, binary.LittleEndian, &snap.CRUSamsMode)
	binary.Read(gz, binary.LittleEndian, &snap.CRUSams4MBMode)

	binary.Read(gz, binary.LittleEndian, &snap.KeyboardRows)
	binary.Read(gz, binary.LittleEndian, &snap.KeyboardSelected)
	binary.Read(gz, binary.LittleEndian, &snap.KeyboardAlphaLock)

	binary.Read(gz, binary.LittleEndian, &snap.CartBank)

	return snap, nil
}
