package hw

import (
	"fmt"
	"testing"

	"c64mem/tests"
)

/* general testing helpers */

func tcheck(tb testing.TB, err error) {
	if err == nil {
		return
	}

	tb.Helper()
	tb.Fatalf("fatal error:\n\n%s\n", err)
}

func tcheckf(tb testing.TB, err error, format string, args ...any) {
	if err == nil {
		return
	}

	tb.Helper()
	tb.Fatalf("fatal error:\n\n%s: %s\n", fmt.Sprintf(format, args...), err)
}

// testRig is a memory core wired to register-file peripheral stubs.
type testRig struct {
	vic  *RegPorts
	sid  *RegPorts
	cia1 *RegPorts
	cia2 *CIA2Ports
}

func newTestMemory(tb testing.TB, cfg PatchConfig) (*Memory, *testRig) {
	tb.Helper()

	rig := &testRig{
		vic:  NewRegPorts("vic", 0x80),
		sid:  NewRegPorts("sid", 0x100),
		cia1: NewRegPorts("cia1", 0x10),
		cia2: NewCIA2Ports(),
	}
	mem, err := NewMemory(tests.ROMSet(), Peripherals{
		VIC:       rig.vic,
		SID:       rig.sid,
		CIA1:      rig.cia1,
		CIA2:      rig.cia2,
		VideoBank: rig.cia2,
	}, cfg)
	tcheck(tb, err)
	return mem, rig
}

func checkedRead8(tb testing.TB, mem *Memory, addr uint16, want uint8) {
	tb.Helper()

	if v := mem.Read8(addr); v != want {
		tb.Errorf("mem[0x%04X] should be 0x%02X, got 0x%02X", addr, want, v)
	}
}
