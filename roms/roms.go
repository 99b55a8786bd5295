// Package roms loads the three firmware images the machine boots from:
// BASIC interpreter, character generator and KERNAL. Images are opaque
// byte blobs; only their sizes are checked, strictly, since an image of
// the wrong size is a packaging error the core must refuse to start on.
package roms

import (
	"fmt"
	"os"
)

// Expected image sizes, in bytes.
const (
	BasicSize   = 8192
	ChargenSize = 4096
	KernalSize  = 8192
)

// Set holds the three firmware images.
type Set struct {
	Basic   []byte
	Chargen []byte
	Kernal  []byte
}

// Open loads the three images from files.
func Open(basic, chargen, kernal string) (*Set, error) {
	set := new(Set)
	var err error
	if set.Basic, err = os.ReadFile(basic); err != nil {
		return nil, fmt.Errorf("basic rom: %w", err)
	}
	if set.Chargen, err = os.ReadFile(chargen); err != nil {
		return nil, fmt.Errorf("chargen rom: %w", err)
	}
	if set.Kernal, err = os.ReadFile(kernal); err != nil {
		return nil, fmt.Errorf("kernal rom: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

// Validate checks the size of every image in the set.
func (s *Set) Validate() error {
	if len(s.Basic) != BasicSize {
		return fmt.Errorf("basic rom is %d bytes, want %d", len(s.Basic), BasicSize)
	}
	if len(s.Chargen) != ChargenSize {
		return fmt.Errorf("chargen rom is %d bytes, want %d", len(s.Chargen), ChargenSize)
	}
	if len(s.Kernal) != KernalSize {
		return fmt.Errorf("kernal rom is %d bytes, want %d", len(s.Kernal), KernalSize)
	}
	return nil
}
