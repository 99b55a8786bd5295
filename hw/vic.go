package hw

import (
	"c64mem/hw/hwdefs"
)

// VideoView is the video chip read path into memory, independent of the
// CPU-side bank configuration. The VIC puts out 14 address bits; the
// top two come from the banker (CIA2 port A on the real machine). The
// view is RAM-only except for the two character generator windows,
// which always resolve to chargen ROM. It never sees BASIC or KERNAL
// ROM, nor I/O registers.
type VideoView struct {
	space *AddressSpace
	bank  VideoBanker
}

// Read8 reads the byte the video chip sees at its 14-bit address.
func (vv *VideoView) Read8(addr uint16) uint8 {
	var base uint16
	if vv.bank != nil {
		base = vv.bank.VideoBaseAddress()
	}
	full := base + (addr & hwdefs.VICAddrMask)
	if win := full & 0xF000; win == hwdefs.CharWin1 || win == hwdefs.CharWin2 {
		return vv.space.ROM(hwdefs.BaseAddrChars + (full & 0x0FFF))
	}
	return vv.space.RAM(full)
}
