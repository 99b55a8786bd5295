package roms

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	good := Set{
		Basic:   make([]byte, BasicSize),
		Chargen: make([]byte, ChargenSize),
		Kernal:  make([]byte, KernalSize),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("valid set rejected: %v", err)
	}

	tests := []struct {
		name string
		set  Set
		want string
	}{
		{"short basic", Set{make([]byte, 100), good.Chargen, good.Kernal}, "basic"},
		{"long chargen", Set{good.Basic, make([]byte, ChargenSize+1), good.Kernal}, "chargen"},
		{"empty kernal", Set{good.Basic, good.Chargen, nil}, "kernal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not name the %s image", err, tt.want)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	write := func(name string, size int) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, make([]byte, size), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	basic := write("basic.rom", BasicSize)
	chargen := write("chargen.rom", ChargenSize)
	kernal := write("kernal.rom", KernalSize)

	if _, err := Open(basic, chargen, kernal); err != nil {
		t.Fatalf("Open: %v", err)
	}

	bad := write("bad.rom", 16)
	if _, err := Open(basic, chargen, bad); err == nil {
		t.Fatal("undersized kernal image accepted")
	}
	if _, err := Open(filepath.Join(dir, "missing.rom"), chargen, kernal); err == nil {
		t.Fatal("missing file accepted")
	}
}
