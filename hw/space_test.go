package hw

import (
	"testing"

	"c64mem/tests"
)

func TestPowerOnPattern(t *testing.T) {
	mem, _ := newTestMemory(t, PatchConfig{})

	// Alternating 0x00/0xFF, away from the zero-page bytes the boot
	// sequence writes.
	for addr := uint16(0x8000); addr < 0x8100; addr += 2 {
		if v := mem.Peek8(addr); v != 0x00 {
			t.Fatalf("ram[%04x]: got %02x, want 00", addr, v)
		}
		if v := mem.Peek8(addr + 1); v != 0xFF {
			t.Fatalf("ram[%04x]: got %02x, want ff", addr+1, v)
		}
	}
}

func TestROMInstall(t *testing.T) {
	mem, _ := newTestMemory(t, PatchConfig{})
	set := tests.ROMSet()

	space := &mem.space
	if v := space.ROM(0xA000); v != set.Basic[0] {
		t.Errorf("basic base: got %02x, want %02x", v, set.Basic[0])
	}
	if v := space.ROM(0xBFFF); v != set.Basic[len(set.Basic)-1] {
		t.Errorf("basic end: got %02x", v)
	}
	if v := space.ROM(0xD000); v != set.Chargen[0] {
		t.Errorf("chargen base: got %02x, want %02x", v, set.Chargen[0])
	}
	if v := space.ROM(0xE000); v != set.Kernal[0] {
		t.Errorf("kernal base: got %02x, want %02x", v, set.Kernal[0])
	}
}

func TestRawAccess(t *testing.T) {
	var space AddressSpace
	space.SetRAM(0x1234, 0xAB)
	if v := space.RAM(0x1234); v != 0xAB {
		t.Errorf("ram raw access: got %02x", v)
	}
	space.SetROM(0x1234, 0xCD)
	if v := space.ROM(0x1234); v != 0xCD {
		t.Errorf("rom raw access: got %02x", v)
	}
	// The two images are disjoint.
	if v := space.RAM(0x1234); v != 0xAB {
		t.Errorf("rom write leaked into ram: %02x", v)
	}
}
