package hw

import (
	"c64mem/emu/log"
	"c64mem/hw/hwdefs"
	"c64mem/hw/hwio"
	"c64mem/roms"
)

// Memory is the CPU-facing surface of the address space: a 64KB bus
// whose decode is driven by the bank configuration latch. Single
// threaded by design; the CPU and video loops call in synchronously,
// externally serialized.
type Memory struct {
	space AddressSpace
	banks BankController
	io    Dispatcher
	video VideoView
	cfg   PatchConfig
}

// NewMemory builds the address space: power-on RAM pattern, firmware
// install, ROM patches, default bank configuration, RAM payloads. A ROM
// set of the wrong shape is a fatal construction error; there are no
// runtime error paths after this returns.
func NewMemory(set *roms.Set, p Peripherals, cfg PatchConfig) (*Memory, error) {
	if err := set.Validate(); err != nil {
		return nil, err
	}

	m := &Memory{io: newDispatcher(p), cfg: cfg}
	m.video = VideoView{space: &m.space, bank: p.VideoBank}

	m.space.powerOn()
	m.space.installROMs(set)
	m.applyROMPatches()

	m.Configure(hwdefs.LORAM | hwdefs.HIRAM | hwdefs.CHAREN)
	m.Poke8(hwdefs.AddrDataDirection, hwdefs.DataDirectionDefault)

	if cfg.Payload != nil {
		m.InjectProgram(cfg.Payload)
	}
	if cfg.Monitor != nil {
		m.injectMonitor(cfg.Monitor)
	}

	log.ModMem.InfoZ("memory powered up").
		Hex8("latch", m.banks.Latch()).
		Bool("keyboard", cfg.Keyboard).
		Bool("driverhook", cfg.DriverHook).
		End()
	return m, nil
}

// Configure reconfigures the bank latch. The latch value is also
// observable as ordinary memory content at the zero-page configuration
// address.
func (m *Memory) Configure(v uint8) {
	m.banks.Configure(v)
	m.space.SetRAM(hwdefs.AddrMemoryLayout, v)
}

// Banks exposes the controller for decode inspection.
func (m *Memory) Banks() *BankController {
	return &m.banks
}

// Video returns the video chip view of memory.
func (m *Memory) Video() *VideoView {
	return &m.video
}

// Read8 reads a byte through the bank decode.
func (m *Memory) Read8(addr uint16) uint8 {
	switch m.banks.Resolve(addr, Read) {
	case BankROM:
		return m.space.ROM(addr)
	case BankIO:
		if v, ok := m.io.Read8(addr); ok {
			return v
		}
		return m.space.RAM(addr)
	default:
		return m.space.RAM(addr)
	}
}

// Write8 writes a byte through the bank decode. A write to the
// configuration address reconfigures the banks instead of storing;
// anything not claimed by a peripheral lands in RAM, including writes
// to ROM-mapped locations.
func (m *Memory) Write8(addr uint16, val uint8) {
	if addr == hwdefs.AddrMemoryLayout {
		m.Configure(val)
		return
	}
	if m.banks.Resolve(addr, Write) == BankIO {
		if m.io.Write8(addr, val) {
			return
		}
	}
	m.space.SetRAM(addr, val)

	if m.cfg.LoadHook && addr == hwdefs.LoadHookAddr && val == hwdefs.LoadHookValue {
		if m.cfg.Payload != nil {
			log.ModMem.DebugZ("load hook triggered").End()
			m.InjectProgram(m.cfg.Payload)
		}
	}
}

// Read16 reads a word, little-endian, through the bank decode.
func (m *Memory) Read16(addr uint16) uint16 {
	return hwio.Read16(m, addr)
}

// Write16 writes a word, little-endian, through the bank decode.
func (m *Memory) Write16(addr uint16, val uint16) {
	hwio.Write16(m, addr, val)
}

// noIO is the bookkeeping view of memory: always RAM, no peripheral
// side effects, no latch interception.
type noIO struct {
	m *Memory
}

func (n noIO) Read8(addr uint16) uint8 {
	return n.m.space.RAM(addr)
}

func (n noIO) Write8(addr uint16, val uint8) {
	n.m.space.SetRAM(addr, val)
}

// Peek8 reads a byte straight from RAM, regardless of configuration.
func (m *Memory) Peek8(addr uint16) uint8 {
	return m.space.RAM(addr)
}

// Poke8 writes a byte straight to RAM, regardless of configuration.
func (m *Memory) Poke8(addr uint16, val uint8) {
	m.space.SetRAM(addr, val)
}

// Peek16 reads a word straight from RAM, little-endian.
func (m *Memory) Peek16(addr uint16) uint16 {
	return hwio.Read16(noIO{m}, addr)
}

// Poke16 writes a word straight to RAM, little-endian.
func (m *Memory) Poke16(addr uint16, val uint16) {
	hwio.Write16(noIO{m}, addr, val)
}
