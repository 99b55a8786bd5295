package emu

import (
	"c64mem/hw"
	"c64mem/prg"
	"c64mem/roms"
)

// Machine is the memory core wired to plain register-file peripherals:
// enough to boot and inspect the address space without emulating the
// chips themselves. Real peripheral emulations plug into hw.Memory the
// same way, through hw.Peripherals.
type Machine struct {
	Mem  *hw.Memory
	VIC  *hw.RegPorts
	SID  *hw.RegPorts
	CIA1 *hw.RegPorts
	CIA2 *hw.CIA2Ports
}

// PowerUp assembles a machine from its configuration.
func PowerUp(cfg Config) (*Machine, error) {
	set, err := roms.Open(cfg.ROM.Basic, cfg.ROM.Chargen, cfg.ROM.Kernal)
	if err != nil {
		return nil, err
	}

	patch := hw.PatchConfig{
		Keyboard:   cfg.Patch.Keyboard,
		DriverHook: cfg.Patch.DriverHook,
		LoadHook:   cfg.Patch.LoadHook,
	}
	if cfg.Patch.Payload != "" {
		if patch.Payload, err = prg.Open(cfg.Patch.Payload); err != nil {
			return nil, err
		}
	}
	if cfg.Patch.Monitor != "" {
		if patch.Monitor, err = prg.Open(cfg.Patch.Monitor); err != nil {
			return nil, err
		}
	}

	mach := &Machine{
		VIC:  hw.NewRegPorts("vic", 0x80),
		SID:  hw.NewRegPorts("sid", 0x100),
		CIA1: hw.NewRegPorts("cia1", 0x10),
		CIA2: hw.NewCIA2Ports(),
	}
	mach.Mem, err = hw.NewMemory(set, hw.Peripherals{
		VIC:       mach.VIC,
		SID:       mach.SID,
		CIA1:      mach.CIA1,
		CIA2:      mach.CIA2,
		VideoBank: mach.CIA2,
	}, patch)
	if err != nil {
		return nil, err
	}
	return mach, nil
}
