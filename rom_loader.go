// rom_loader.go - ROM/GROM image loaders (§6, SPEC_FULL §6 ADD)
//
// Length mismatches are a Configuration error (§7): returned to the caller,
// never a panic.

package main

import "os"

// ROMImage is a loaded, length-validated ROM byte stream in big-endian word
// order (§6).
type ROMImage struct {
	Data []byte
}

// LoadSystemROM reads the 8 KiB system ROM image.
func LoadSystemROM(path string) (ROMImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ROMImage{}, configErrorf("system ROM", err)
	}
	if len(data) != SystemROMSize {
		return ROMImage{}, configErrorf("system ROM", &lengthError{"system ROM", len(data), SystemROMSize})
	}
	return ROMImage{Data: data}, nil
}

// LoadSystemGROM reads the 24 KiB system GROM image.
func LoadSystemGROM(path string) (ROMImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ROMImage{}, configErrorf("system GROM", err)
	}
	if len(data) != SystemGROMSize {
		return ROMImage{}, configErrorf("system GROM", &lengthError{"system GROM", len(data), SystemGROMSize})
	}
	return ROMImage{Data: data}, nil
}

// LoadCartridge reads an 8 KiB..512 KiB cartridge ROM image, optionally
// concatenating a second-half file (some cartridges ship as two files).
func LoadCartridge(path string, secondHalfPath string) (Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Cartridge{}, configErrorf("cartridge", err)
	}
	if secondHalfPath != "" {
		second, err := os.ReadFile(secondHalfPath)
		if err != nil {
			return Cartridge{}, configErrorf("cartridge second half", err)
		}
		data = append(data, second...)
	}
	c := newCartridge()
	if err := c.Load(data); err != nil {
		return Cartridge{}, err
	}
	return *c, nil
}

// LoadCartridgeGROM reads a cartridge GROM image. It does not install it;
// GROM.LoadCartridge appends the returned bytes above the system region.
func LoadCartridgeGROM(path string) (ROMImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ROMImage{}, configErrorf("cartridge GROM", err)
	}
	return ROMImage{Data: data}, nil
}

// loadROMBytes is the plain-bytes helper backing HostBoundary.LoadROM
// implementations that don't need length validation (that happens at the
// LoadSystemROM/LoadSystemGROM/LoadCartridge call sites instead).
func loadROMBytes(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, configErrorf("ROM", err)
	}
	return data, nil
}
