package hw

import (
	"c64mem/emu/log"
	"c64mem/hw/hwdefs"
	"c64mem/prg"
)

// PatchConfig selects the boot-time firmware patches and RAM payloads.
// Every class is an explicit flag evaluated at construction, so a
// single build can run with or without each patch.
type PatchConfig struct {
	// Keyboard remaps the kernal keycode tables so emitted PETSCII
	// matches a PC keyboard.
	Keyboard bool

	// DriverHook reroutes the kernal serial-bus load/save routines to
	// an external storage driver.
	DriverHook bool

	// LoadHook enables the in-band hook: an ordinary RAM write of 0xFF
	// to 0x0139 re-injects Payload. Development aid, not hardware
	// behavior.
	LoadHook bool

	// Payload is a program image injected into RAM at boot, marked as
	// already loaded for the resident BASIC.
	Payload *prg.File

	// Monitor is a machine-language monitor image injected into RAM at
	// boot, hooked up through the BRK vector.
	Monitor *prg.File
}

type romPatch struct {
	off uint16
	val uint8
}

// Keycode-translation table patches. The two tables map hardware key
// numbers to PETSCII; the entries below replace codes that sit
// elsewhere on a PC keyboard.
const (
	keyTableUnshifted uint16 = 0xEB81
	keyTableShifted   uint16 = 0xEBC2
)

var keyboardPatches = []romPatch{
	{keyTableUnshifted + 46, 0x5B}, // [
	{keyTableUnshifted + 49, 0x5D}, // ]
	{keyTableUnshifted + 50, 0x27}, // '
	{keyTableUnshifted + 45, 0x3B}, // ;

	{keyTableShifted + 59, 0x40}, // @ on shift-2
	{keyTableShifted + 19, 0x5E}, // ^ on shift-6
	{keyTableShifted + 24, 0x26}, // & on shift-7
	{keyTableShifted + 27, 0x2A}, // * on shift-8
	{keyTableShifted + 32, 0x28}, // ( on shift-9
	{keyTableShifted + 35, 0x29}, // ) on shift-0
	{keyTableShifted + 50, 0x22}, // "
	{keyTableShifted + 45, 0x3A}, // :
	{keyTableShifted + 53, 0x2B}, // +
}

// Entry points of the kernal serial-bus routines overwritten by the
// driver hook.
const (
	driverLoadEntry uint16 = 0xF4C4
	driverSaveEntry uint16 = 0xF605
)

// driverLoadHook signals the storage driver through location 0x0002,
// checks the kernal STATUS byte (file-not-found branches to the stock
// error path), prints LOADING and returns the end address in X/Y.
var driverLoadHook = []byte{
	0xA9, 0x04, // LDA #$04
	0x8D, 0x02, 0x00, // STA $0002
	0xA5, 0x90, // LDA $90
	0x4A,       // LSR
	0x4A,       // LSR
	0xB0, 0x61, // BCS $F530
	0x20, 0xD2, 0xF5, // JSR $F5D2
	0x18,       // CLC
	0xA6, 0xAE, // LDX $AE
	0xA4, 0xAF, // LDY $AF
	0x60, // RTS
}

// driverSaveHook signals the storage driver and returns immediately.
var driverSaveHook = []byte{
	0xA9, 0x05, // LDA #$05
	0x8D, 0x02, 0x00, // STA $0002
	0x18, // CLC
	0x60, // RTS
}

// applyROMPatches mutates the ROM image according to the configured
// patch classes. Runs once, right after ROM install; the ROM image is
// read-only for everyone afterwards.
func (m *Memory) applyROMPatches() {
	if m.cfg.Keyboard {
		for _, p := range keyboardPatches {
			m.space.SetROM(p.off, p.val)
		}
		log.ModPatch.DebugZ("keyboard tables remapped").
			Int("entries", len(keyboardPatches)).
			End()
	}
	if m.cfg.DriverHook {
		for i, v := range driverLoadHook {
			m.space.SetROM(driverLoadEntry+uint16(i), v)
		}
		for i, v := range driverSaveHook {
			m.space.SetROM(driverSaveEntry+uint16(i), v)
		}
		log.ModPatch.DebugZ("serial bus routines hooked").
			Hex16("load", driverLoadEntry).
			Hex16("save", driverSaveEntry).
			End()
	}
}

// InjectProgram copies a program image into RAM at its load address and
// updates the BASIC top-of-program pointer so the resident interpreter
// sees it as already loaded.
func (m *Memory) InjectProgram(p *prg.File) {
	addr := p.LoadAddr
	for _, v := range p.Data {
		m.space.SetRAM(addr, v)
		addr++
	}

	end := hwdefs.AddrBasicStart + uint16(len(p.Data))
	m.space.SetRAM(hwdefs.AddrVarTabLo, uint8(end&0xFF))
	m.space.SetRAM(hwdefs.AddrVarTabHi, uint8(end>>8))

	log.ModPatch.InfoZ("program injected").
		Hex16("addr", p.LoadAddr).
		Int("size", len(p.Data)).
		End()
}

// injectMonitor loads a monitor image and points the BRK vector at it,
// so a BRK drops into the monitor.
func (m *Memory) injectMonitor(p *prg.File) {
	addr := p.LoadAddr
	for _, v := range p.Data {
		m.space.SetRAM(addr, v)
		addr++
	}
	m.space.SetRAM(hwdefs.AddrBRKVectorLo, uint8(p.LoadAddr&0xFF))
	m.space.SetRAM(hwdefs.AddrBRKVectorHi, uint8(p.LoadAddr>>8))

	log.ModPatch.InfoZ("monitor injected").
		Hex16("addr", p.LoadAddr).
		Int("size", len(p.Data)).
		End()
}
