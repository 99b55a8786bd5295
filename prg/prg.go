// Package prg implements a reader for the PRG file format used for the
// distribution of C64 binary programs: a two-byte little-endian load
// address followed by the program bytes.
package prg

import (
	"fmt"
	"io"
	"os"
)

type File struct {
	LoadAddr uint16 // address the program loads at
	Data     []byte // program bytes, without the address header
}

// Open loads a program from file.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	p := new(File)
	if _, err := p.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// ReadFrom implements the io.ReaderFrom interface.
func (p *File) ReadFrom(r io.Reader) (int64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	if err := p.decode(buf); err != nil {
		return 0, err
	}
	return int64(len(buf)), nil
}

// Decode parses an in-memory PRG image.
func Decode(buf []byte) (*File, error) {
	p := new(File)
	if err := p.decode(buf); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *File) decode(buf []byte) error {
	if len(buf) < 3 {
		return fmt.Errorf("too small, needs a load address and at least one byte")
	}
	p.LoadAddr = uint16(buf[1])<<8 | uint16(buf[0])
	p.Data = buf[2:]
	if int(p.LoadAddr)+len(p.Data) > 0x10000 {
		return fmt.Errorf("program exceeds the address space: %04x + %d bytes",
			p.LoadAddr, len(p.Data))
	}
	return nil
}

// End returns the first address past the loaded program.
func (p *File) End() uint16 {
	return p.LoadAddr + uint16(len(p.Data))
}
