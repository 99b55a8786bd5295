// Package hwdefs holds the memory map of the machine: latch bits, region
// boundaries, peripheral windows and the handful of magic zero-page and
// vector locations the memory core needs to know about.
package hwdefs

// Configuration latch bits. The hardware latch has five, the two missing
// ones (tape control) play no role in bank switching.
const (
	LORAM  uint8 = 1 << iota // 0x01
	HIRAM                    // 0x02
	CHAREN                   // 0x04
)

// LatchMask covers the three bits driving the bank decode.
const LatchMask uint8 = LORAM | HIRAM | CHAREN

// Zero-page locations owned by the memory core.
const (
	AddrDataDirection uint16 = 0x0000 // CPU port data direction register
	AddrMemoryLayout  uint16 = 0x0001 // bank configuration latch
	AddrVarTabLo      uint16 = 0x002D // BASIC top-of-program pointer, low
	AddrVarTabHi      uint16 = 0x002E // BASIC top-of-program pointer, high
)

// DataDirectionDefault is the CPU port direction byte at power on.
const DataDirectionDefault uint8 = 0x2F

// BRK vector in the system vector table.
const (
	AddrBRKVectorLo uint16 = 0x0316
	AddrBRKVectorHi uint16 = 0x0317
)

// AddrBasicStart is where BASIC programs normally load.
const AddrBasicStart uint16 = 0x0801

// Base addresses of the three firmware images.
const (
	BaseAddrBasic  uint16 = 0xA000
	BaseAddrChars  uint16 = 0xD000
	BaseAddrKernal uint16 = 0xE000
)

// Switchable regions.
const (
	BasicFirst  uint16 = 0xA000
	BasicLast   uint16 = 0xBFFF
	CharenFirst uint16 = 0xD000
	CharenLast  uint16 = 0xDFFF
	KernalFirst uint16 = 0xE000
	KernalLast  uint16 = 0xFFFF
)

// Peripheral windows inside the I/O page, with the mask reducing a full
// address to the peripheral local register space.
const (
	VICFirst   uint16 = 0xD000
	VICLast    uint16 = 0xD3FF
	VICRegMask uint16 = 0x7F

	SIDFirst   uint16 = 0xD400
	SIDLast    uint16 = 0xD4FF
	SIDRegMask uint16 = 0xFF

	CIA1First uint16 = 0xDC00
	CIA1Last  uint16 = 0xDCFF

	CIA2First uint16 = 0xDD00
	CIA2Last  uint16 = 0xDDFF

	CIARegMask uint16 = 0x0F
)

// The VIC has 14 address lines; the missing two come from CIA2.
const VICAddrMask uint16 = 0x3FFF

// Character generator windows in the VIC view of memory. Both are 4KB
// aligned so a single high-nibble compare identifies them.
const (
	CharWin1 uint16 = 0x1000
	CharWin2 uint16 = 0x9000
)

// In-band load hook: an ordinary RAM write of LoadHookValue to
// LoadHookAddr re-injects the configured payload.
const (
	LoadHookAddr  uint16 = 0x0139
	LoadHookValue uint8  = 0xFF
)
