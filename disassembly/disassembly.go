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

// Package disassembly is a linear disassembler for CHIP-8 cartridges.
//
// Linear means every pair of bytes is treated as an instruction, in order,
// from the start of the cartridge. CHIP-8 programs freely mix sprite data
// with code so some of the output will be data decoded as nonsense - the
// disassembler makes no attempt to follow the flow of the program and
// separate the two. Words with no instruction decoding at all are shown
// with the DW (data word) notation.
package disassembly

import (
	"fmt"
	"io"

	"github.com/hazzlik/gopher8/cartridgeloader"
	"github.com/hazzlik/gopher8/curated"
	"github.com/hazzlik/gopher8/hardware/cpu/instructions"
	"github.com/hazzlik/gopher8/hardware/memory"
)

// FromCartridge loads the cartridge and writes a disassembly of its
// contents to output.
func FromCartridge(cartload cartridgeloader.Loader, output io.Writer) error {
	err := cartload.Load()
	if err != nil {
		return curated.Errorf("disassembly: %v", err)
	}

	if len(cartload.Data) > memory.MaxCartSize {
		return curated.Errorf("disassembly: %v", fmt.Sprintf("cartridge is too large (%d bytes)", len(cartload.Data)))
	}

	Disassemble(cartload.Data, output)

	return nil
}

// Disassemble the data, assumed to have been loaded at the cartridge
// origin, and write the result to output.
func Disassemble(data []byte, output io.Writer) {
	for i := 0; i+1 < len(data); i += 2 {
		opcode := uint16(data[i])<<8 | uint16(data[i+1])
		ins := instructions.Decode(opcode)
		fmt.Fprintf(output, "$%03x  %04x  %s\n", int(memory.OriginCart)+i, opcode, ins.String())
	}

	// a trailing odd byte cannot be an instruction
	if len(data)%2 == 1 {
		fmt.Fprintf(output, "$%03x  %02x    DB $%02x\n", int(memory.OriginCart)+len(data)-1, data[len(data)-1], data[len(data)-1])
	}
}
