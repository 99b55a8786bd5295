// Package tests provides synthetic fixtures shared by the test suites:
// deterministic firmware images (clearly not copyrighted ROM dumps) and
// small PRG programs.
package tests

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sync/errgroup"

	"c64mem/roms"
)

// ROMSet returns a deterministic synthetic firmware set. Every call
// returns identical content, so tests can recompute expected bytes.
func ROMSet() *roms.Set {
	return &roms.Set{
		Basic:   fill(roms.BasicSize, 0xA5),
		Chargen: fill(roms.ChargenSize, 0x3C),
		Kernal:  fill(roms.KernalSize, 0x5A),
	}
}

func fill(n int, seed byte) []byte {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = byte(i) ^ seed
	}
	return buf
}

// PRG builds an in-memory program image loading data at addr.
func PRG(addr uint16, data ...byte) []byte {
	return append([]byte{byte(addr), byte(addr >> 8)}, data...)
}

// PayloadData is the program body of the payload fixture written by
// WriteFixtures; it loads at 0x0801.
var PayloadData = []byte{0xA9, 0x93, 0x20, 0xD2, 0xFF, 0x60}

// FixturePaths locates the files written by WriteFixtures.
type FixturePaths struct {
	Basic   string
	Chargen string
	Kernal  string
	Payload string
}

// WriteFixtures materializes the synthetic firmware set and the payload
// program into dir.
func WriteFixtures(tb testing.TB, dir string) FixturePaths {
	tb.Helper()

	set := ROMSet()
	paths := FixturePaths{
		Basic:   filepath.Join(dir, "basic.rom"),
		Chargen: filepath.Join(dir, "chargen.rom"),
		Kernal:  filepath.Join(dir, "kernal.rom"),
		Payload: filepath.Join(dir, "payload.prg"),
	}
	files := map[string][]byte{
		paths.Basic:   set.Basic,
		paths.Chargen: set.Chargen,
		paths.Kernal:  set.Kernal,
		paths.Payload: PRG(0x0801, PayloadData...),
	}

	var g errgroup.Group
	for path, data := range files {
		path, data := path, data
		g.Go(func() error {
			return os.WriteFile(path, data, 0644)
		})
	}
	if err := g.Wait(); err != nil {
		tb.Fatalf("failed to write fixtures: %s", err)
	}
	return paths
}
