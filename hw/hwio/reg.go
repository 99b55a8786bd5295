package hwio

import (
	"fmt"

	"c64mem/emu/log"
)

var modHwIo = log.NewModule("hwio")

type RegFlags uint8

const (
	RegFlagReadOnly RegFlags = 1 << iota
	RegFlagWriteOnly
)

// Reg8 is an 8-bit hardware register. RoMask marks bits the bus cannot
// change; the callbacks let a device react to accesses.
type Reg8 struct {
	Name   string
	Value  uint8
	RoMask uint8

	Flags   RegFlags
	ReadCb  func(val uint8) uint8
	WriteCb func(old, val uint8)
}

func (reg Reg8) String() string {
	return fmt.Sprintf("%s{%02x}", reg.Name, reg.Value)
}

func (reg *Reg8) Write8(addr uint16, val uint8) {
	if reg.Flags&RegFlagReadOnly != 0 {
		modHwIo.ErrorZ("Write8 to readonly reg").
			String("name", reg.Name).
			Hex16("addr", addr).
			End()
		return
	}
	old := reg.Value
	reg.Value = (reg.Value & reg.RoMask) | (val &^ reg.RoMask)
	if reg.WriteCb != nil {
		reg.WriteCb(old, reg.Value)
	}
}

func (reg *Reg8) Read8(addr uint16) uint8 {
	if reg.Flags&RegFlagWriteOnly != 0 {
		modHwIo.ErrorZ("Read8 from writeonly reg").
			String("name", reg.Name).
			Hex16("addr", addr).
			End()
		return 0
	}
	if reg.ReadCb != nil {
		return reg.ReadCb(reg.Value)
	}
	return reg.Value
}
