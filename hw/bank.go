package hw

import (
	"c64mem/emu/log"
	"c64mem/hw/hwdefs"
)

//go:generate go tool stringer -type=BankMode -linecomment

// BankMode is the resource answering for an address region under the
// current latch configuration.
type BankMode uint8

const (
	BankRAM BankMode = iota // ram
	BankROM                 // rom
	BankIO                  // io
)

// Access is the direction of a bus access. The decode only depends on
// it for the ROM-shadow rule and the zero-page configuration byte.
type Access int

const (
	Read Access = iota
	Write
)

type region int

const (
	regionBasic region = iota
	regionKernal
	regionCharen
	numRegions
)

// BankController holds the 3-bit configuration latch and the region
// assignments derived from it.
//
// The zero value decodes everything to RAM; Configure must be called
// once at power on (the Memory constructor does).
type BankController struct {
	latch uint8
	banks [numRegions]BankMode
}

// Configure stores a new latch value and recomputes the assignment of
// the three switchable regions. Total over all 8 latch values, and
// idempotent: reconfiguring with the same value changes nothing.
func (bc *BankController) Configure(v uint8) {
	loram := v&hwdefs.LORAM != 0
	hiram := v&hwdefs.HIRAM != 0
	charen := v&hwdefs.CHAREN != 0

	bc.latch = v
	for i := range bc.banks {
		bc.banks[i] = BankRAM
	}
	if hiram {
		bc.banks[regionKernal] = BankROM
	}
	if loram && hiram {
		bc.banks[regionBasic] = BankROM
	}
	switch {
	case charen && (loram || hiram):
		bc.banks[regionCharen] = BankIO
	case charen:
		bc.banks[regionCharen] = BankRAM
	default:
		bc.banks[regionCharen] = BankROM
	}

	log.ModBank.DebugZ("bank setup").
		Hex8("latch", v).
		Stringer("basic", bc.banks[regionBasic]).
		Stringer("kernal", bc.banks[regionKernal]).
		Stringer("charen", bc.banks[regionCharen]).
		End()
}

// Latch returns the current latch value.
func (bc *BankController) Latch() uint8 {
	return bc.latch
}

// Banks returns the current assignment of the three regions.
func (bc *BankController) Banks() (basic, kernal, charen BankMode) {
	return bc.banks[regionBasic], bc.banks[regionKernal], bc.banks[regionCharen]
}

// Resolve maps an address to the resource answering for it under the
// current latch. Writes that would hit ROM resolve to the hidden RAM
// underneath; genuine I/O keeps its direction. The zero-page
// configuration byte is intercepted by Memory before the general
// decode: here it resolves like ordinary RAM.
func (bc *BankController) Resolve(addr uint16, dir Access) BankMode {
	mode := BankRAM
	switch {
	case addr >= hwdefs.BasicFirst && addr <= hwdefs.BasicLast:
		mode = bc.banks[regionBasic]
	case addr >= hwdefs.CharenFirst && addr <= hwdefs.CharenLast:
		mode = bc.banks[regionCharen]
	case addr >= hwdefs.KernalFirst:
		mode = bc.banks[regionKernal]
	}
	if dir == Write && mode == BankROM {
		mode = BankRAM
	}
	return mode
}
