package hw

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"c64mem/hw/hwdefs"
)

type assign struct {
	Basic, Kernal, Charen BankMode
}

// The full decode table, one entry per reachable latch value.
var bankTable = [8]assign{
	0: {BankRAM, BankRAM, BankROM},
	1: {BankRAM, BankRAM, BankROM}, // LORAM
	2: {BankRAM, BankROM, BankROM}, // HIRAM
	3: {BankROM, BankROM, BankROM}, // LORAM|HIRAM
	4: {BankRAM, BankRAM, BankRAM}, // CHAREN
	5: {BankRAM, BankRAM, BankIO},  // CHAREN|LORAM
	6: {BankRAM, BankROM, BankIO},  // CHAREN|HIRAM
	7: {BankROM, BankROM, BankIO},  // CHAREN|LORAM|HIRAM
}

func TestBankTable(t *testing.T) {
	var bc BankController
	var got [8]assign
	for v := uint8(0); v < 8; v++ {
		bc.Configure(v)
		got[v].Basic, got[v].Kernal, got[v].Charen = bc.Banks()
	}
	if diff := cmp.Diff(bankTable, got); diff != "" {
		t.Errorf("bank table mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigureIdempotent(t *testing.T) {
	var bc BankController
	for v := uint8(0); v < 8; v++ {
		bc.Configure(v)
		first := [3]BankMode{}
		first[0], first[1], first[2] = bc.Banks()
		bc.Configure(v)
		second := [3]BankMode{}
		second[0], second[1], second[2] = bc.Banks()
		if first != second {
			t.Errorf("latch %d: reconfiguration changed the assignment", v)
		}
		if bc.Latch() != v {
			t.Errorf("latch: got %d, want %d", bc.Latch(), v)
		}
	}
}

func TestResolveTotal(t *testing.T) {
	// Every (latch, address, direction) triple must decode to exactly
	// one of the three modes.
	var bc BankController
	for v := uint8(0); v < 8; v++ {
		bc.Configure(v)
		for a := 0; a <= 0xFFFF; a++ {
			for _, dir := range []Access{Read, Write} {
				mode := bc.Resolve(uint16(a), dir)
				if mode != BankRAM && mode != BankROM && mode != BankIO {
					t.Fatalf("latch %d, addr %04x, dir %d: invalid mode %d", v, a, dir, mode)
				}
			}
		}
	}
}

func TestResolveRegions(t *testing.T) {
	var bc BankController
	bc.Configure(hwdefs.LORAM | hwdefs.HIRAM | hwdefs.CHAREN)

	tests := []struct {
		addr uint16
		dir  Access
		want BankMode
	}{
		{0x0000, Read, BankRAM},
		{0x0801, Read, BankRAM},
		{0x9FFF, Read, BankRAM},
		{hwdefs.BasicFirst, Read, BankROM},
		{hwdefs.BasicLast, Read, BankROM},
		{0xC000, Read, BankRAM}, // gap between basic and the io page
		{hwdefs.CharenFirst, Read, BankIO},
		{hwdefs.CharenLast, Read, BankIO},
		{hwdefs.KernalFirst, Read, BankROM},
		{0xFFFF, Read, BankROM},

		// Writes to ROM-mapped locations resolve to the hidden RAM;
		// genuine I/O keeps its direction.
		{hwdefs.BasicFirst, Write, BankRAM},
		{hwdefs.KernalFirst, Write, BankRAM},
		{hwdefs.CharenFirst, Write, BankIO},
	}
	for _, tt := range tests {
		if mode := bc.Resolve(tt.addr, tt.dir); mode != tt.want {
			t.Errorf("resolve(%04x, %v): got %s, want %s", tt.addr, tt.dir, mode, tt.want)
		}
	}
}

func TestBankModeString(t *testing.T) {
	if BankRAM.String() != "ram" || BankROM.String() != "rom" || BankIO.String() != "io" {
		t.Errorf("got %s/%s/%s", BankRAM, BankROM, BankIO)
	}
}
