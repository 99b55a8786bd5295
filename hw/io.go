package hw

import (
	"c64mem/emu/log"
	"c64mem/hw/hwdefs"
)

// ioWindow is one populated range of the I/O page.
type ioWindow struct {
	first, last uint16
	mask        uint16 // reduces a full address to a local register offset
	ports       Ports
}

// Dispatcher routes accesses in the I/O-resolved CHAREN region to the
// peripheral owning the address. The hardware I/O page is only
// partially populated: addresses claimed by no window report a miss and
// the caller falls back to ordinary RAM access. Only consulted when the
// region currently resolves to I/O.
type Dispatcher struct {
	windows [4]ioWindow
}

func newDispatcher(p Peripherals) Dispatcher {
	return Dispatcher{windows: [4]ioWindow{
		{hwdefs.VICFirst, hwdefs.VICLast, hwdefs.VICRegMask, p.VIC},
		{hwdefs.SIDFirst, hwdefs.SIDLast, hwdefs.SIDRegMask, p.SID},
		{hwdefs.CIA1First, hwdefs.CIA1Last, hwdefs.CIARegMask, p.CIA1},
		{hwdefs.CIA2First, hwdefs.CIA2Last, hwdefs.CIARegMask, p.CIA2},
	}}
}

func (d *Dispatcher) find(addr uint16) *ioWindow {
	for i := range d.windows {
		w := &d.windows[i]
		if addr >= w.first && addr <= w.last && w.ports != nil {
			return w
		}
	}
	return nil
}

// Read8 reads a peripheral register. ok is false on unclaimed
// addresses.
func (d *Dispatcher) Read8(addr uint16) (val uint8, ok bool) {
	w := d.find(addr)
	if w == nil {
		log.ModIO.DebugZ("unclaimed io read").Hex16("addr", addr).End()
		return 0, false
	}
	return w.ports.ReadRegister(addr & w.mask), true
}

// Write8 writes a peripheral register. ok is false on unclaimed
// addresses.
func (d *Dispatcher) Write8(addr uint16, val uint8) (ok bool) {
	w := d.find(addr)
	if w == nil {
		log.ModIO.DebugZ("unclaimed io write").
			Hex16("addr", addr).
			Hex8("val", val).
			End()
		return false
	}
	w.ports.WriteRegister(addr&w.mask, val)
	return true
}
