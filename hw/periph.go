package hw

import (
	"fmt"

	"c64mem/hw/hwio"
)

// Ports is the register-access capability a peripheral exposes on the
// bus. Offsets are already reduced to the peripheral local register
// space by the dispatcher.
type Ports interface {
	ReadRegister(off uint16) uint8
	WriteRegister(off uint16, val uint8)
}

// VideoBanker supplies the two VIC address lines that do not come from
// the video chip itself.
type VideoBanker interface {
	VideoBaseAddress() uint16
}

// Peripherals are the borrowed references the memory core dispatches
// to. The core never owns peripheral lifetime and tolerates any
// conforming implementation; a nil entry behaves like an unpopulated
// window (accesses fall through to RAM).
type Peripherals struct {
	VIC  Ports
	SID  Ports
	CIA1 Ports
	CIA2 Ports

	// VideoBank provides the VIC bank selection, normally the CIA2.
	VideoBank VideoBanker
}

// RegPorts is a plain register file implementing Ports on top of
// hwio.Reg8. It stands in for peripherals whose internals are emulated
// elsewhere (or not at all, in tests and the inspection CLI).
type RegPorts struct {
	Name string
	Regs []hwio.Reg8
}

func NewRegPorts(name string, n int) *RegPorts {
	rp := &RegPorts{Name: name, Regs: make([]hwio.Reg8, n)}
	for i := range rp.Regs {
		rp.Regs[i].Name = fmt.Sprintf("%s[%02X]", name, i)
	}
	return rp
}

func (rp *RegPorts) ReadRegister(off uint16) uint8 {
	return rp.Regs[int(off)%len(rp.Regs)].Read8(off)
}

func (rp *RegPorts) WriteRegister(off uint16, val uint8) {
	rp.Regs[int(off)%len(rp.Regs)].Write8(off, val)
}

// CIA2Ports is a RegPorts with the video bank selection of the real
// CIA2: the inverted low bits of port A pick one of four 16KB banks.
type CIA2Ports struct {
	RegPorts
}

func NewCIA2Ports() *CIA2Ports {
	c := &CIA2Ports{RegPorts: *NewRegPorts("cia2", 16)}
	return c
}

func (c *CIA2Ports) VideoBaseAddress() uint16 {
	return uint16(^c.Regs[0].Value&0x03) << 14
}
