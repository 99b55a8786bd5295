package prg

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestDecode(t *testing.T) {
	p, err := Decode([]byte{0x01, 0x08, 0xAA, 0xBB, 0xCC})
	if err != nil {
		t.Fatal(err)
	}
	if p.LoadAddr != 0x0801 {
		t.Errorf("load address: got %04x, want 0801", p.LoadAddr)
	}
	if !bytes.Equal(p.Data, []byte{0xAA, 0xBB, 0xCC}) {
		t.Errorf("data: got % 02x", p.Data)
	}
	if p.End() != 0x0804 {
		t.Errorf("end: got %04x, want 0804", p.End())
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := Decode([]byte{0x01, 0x08}); err == nil {
		t.Error("empty program accepted")
	}
	if _, err := Decode(nil); err == nil {
		t.Error("nil image accepted")
	}

	// 3 bytes at 0xFFFF run past the top of memory.
	if _, err := Decode([]byte{0xFF, 0xFF, 0x01, 0x02, 0x03}); err == nil {
		t.Error("overflowing program accepted")
	}
	// exactly reaching the top is fine.
	if _, err := Decode([]byte{0xFF, 0xFF, 0x01}); err != nil {
		t.Errorf("program ending at top of memory rejected: %v", err)
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.prg")
	if err := os.WriteFile(path, []byte{0x00, 0xC0, 0x60}, 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if p.LoadAddr != 0xC000 || len(p.Data) != 1 {
		t.Errorf("got addr %04x, %d bytes", p.LoadAddr, len(p.Data))
	}

	if _, err := Open(filepath.Join(t.TempDir(), "nope.prg")); err == nil {
		t.Error("missing file accepted")
	}
}
