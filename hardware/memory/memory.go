// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package memory implements the 4096 bytes of addressable memory in the
// CHIP-8 machine.
//
// The memory map is flat but by convention is divided into two areas.
// Addresses below OriginCart are reserved for the interpreter; the only
// thing there in this implementation is the font table at OriginFont.
// Cartridge data is loaded at OriginCart, which is also where the program
// counter starts after a reset.
package memory

import (
	"github.com/hazzlik/gopher8/curated"
)

// The extent of addressable memory.
const AddressableSpace = 4096

// OriginFont is the address of the first byte of the font table.
const OriginFont = uint16(0x050)

// OriginCart is the address of the first byte of cartridge data. It is also
// the value of the program counter immediately after reset.
const OriginCart = uint16(0x200)

// MaxCartSize is the maximum number of cartridge bytes that will fit between
// OriginCart and the end of addressable memory.
const MaxCartSize = AddressableSpace - int(OriginCart)

// Sentinal errors returned by the memory package.
const (
	AccessError   = "memory: address %#04x is outside of addressable space"
	CartSizeError = "memory: cartridge size (%d bytes) is too large"
)

// Memory is the flat memory space of the CHIP-8 machine.
type Memory struct {
	ram [AddressableSpace]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.Reset()
	return mem
}

// Reset zeroes all memory and rewrites the font table.
func (mem *Memory) Reset() {
	for i := range mem.ram {
		mem.ram[i] = 0
	}
	copy(mem.ram[OriginFont:], fontTable[:])
}

// Read a byte from the specified address.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if int(address) >= AddressableSpace {
		return 0, curated.Errorf(AccessError, address)
	}
	return mem.ram[address], nil
}

// Write a byte to the specified address.
func (mem *Memory) Write(address uint16, data uint8) error {
	if int(address) >= AddressableSpace {
		return curated.Errorf(AccessError, address)
	}
	mem.ram[address] = data
	return nil
}

// LoadCart copies cartridge data into memory, starting at OriginCart. Data
// that will not fit is rejected before a single byte is copied.
//
// Note that LoadCart does not reset memory itself. The caller is expected to
// have done that already (see the AttachCartridge() function in the hardware
// package).
func (mem *Memory) LoadCart(data []byte) error {
	if len(data) > MaxCartSize {
		return curated.Errorf(CartSizeError, len(data))
	}
	copy(mem.ram[OriginCart:], data)
	return nil
}

// GlyphAddress returns the address of the font glyph for the supplied digit.
// Only the low nibble of the digit is significant.
func GlyphAddress(digit uint8) uint16 {
	return OriginFont + uint16(digit&0x0f)*glyphHeight
}
