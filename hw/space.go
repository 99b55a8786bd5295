package hw

import (
	"c64mem/hw/hwdefs"
	"c64mem/roms"
)

const memSize = 0x10000

// AddressSpace owns the two 64KB images backing the machine. Every
// address is backed by both: writes to ROM-mapped locations land in the
// RAM image underneath, and the decode picks the visible one at read
// time. Pure storage, no decode logic.
type AddressSpace struct {
	ram [memSize]byte
	rom [memSize]byte
}

// powerOn seeds RAM with the pattern real DRAM shows after power up:
// even addresses 0x00, odd addresses 0xFF.
func (as *AddressSpace) powerOn() {
	for i := range as.ram {
		if i&1 != 0 {
			as.ram[i] = 0xFF
		} else {
			as.ram[i] = 0x00
		}
	}
}

// installROMs copies the firmware set into the ROM image at the fixed
// base addresses. The set must have been validated.
func (as *AddressSpace) installROMs(set *roms.Set) {
	copy(as.rom[hwdefs.BaseAddrBasic:], set.Basic)
	copy(as.rom[hwdefs.BaseAddrChars:], set.Chargen)
	copy(as.rom[hwdefs.BaseAddrKernal:], set.Kernal)
}

func (as *AddressSpace) RAM(addr uint16) uint8 {
	return as.ram[addr]
}

func (as *AddressSpace) SetRAM(addr uint16, val uint8) {
	as.ram[addr] = val
}

func (as *AddressSpace) ROM(addr uint16) uint8 {
	return as.rom[addr]
}

func (as *AddressSpace) SetROM(addr uint16, val uint8) {
	as.rom[addr] = val
}
