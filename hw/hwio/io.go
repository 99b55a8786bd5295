// Package hwio provides the primitives shared by everything sitting on
// the 8-bit data bus: the device interface, little-endian word helpers
// and hardware registers.
package hwio

// BankIO8 is implemented by any device addressable through the bus.
type BankIO8 interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, val uint8)
}

// Write16 performs two byte writes at addr and addr+1, little-endian.
func Write16(b BankIO8, addr uint16, val uint16) {
	b.Write8(addr, uint8(val&0xFF))
	b.Write8(addr+1, uint8(val>>8))
}

// Read16 performs two byte reads at addr and addr+1, little-endian.
func Read16(b BankIO8, addr uint16) uint16 {
	lo := b.Read8(addr)
	hi := b.Read8(addr + 1)
	return uint16(hi)<<8 | uint16(lo)
}
