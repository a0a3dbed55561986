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

package instructions

import "fmt"

// String returns the instruction in the conventional CHIP-8 assembly
// notation found in the instruction set references.
func (ins Instruction) String() string {
	switch ins.Operation {
	case Sys:
		return fmt.Sprintf("SYS $%03x", ins.NNN)
	case Clear:
		return "CLS"
	case Return:
		return "RET"
	case Jump:
		return fmt.Sprintf("JP $%03x", ins.NNN)
	case Call:
		return fmt.Sprintf("CALL $%03x", ins.NNN)
	case SkipEqual:
		return fmt.Sprintf("SE V%X, $%02x", ins.X, ins.NN)
	case SkipNotEqual:
		return fmt.Sprintf("SNE V%X, $%02x", ins.X, ins.NN)
	case SkipEqualRegister:
		return fmt.Sprintf("SE V%X, V%X", ins.X, ins.Y)
	case Load:
		return fmt.Sprintf("LD V%X, $%02x", ins.X, ins.NN)
	case Add:
		return fmt.Sprintf("ADD V%X, $%02x", ins.X, ins.NN)
	case LoadRegister:
		return fmt.Sprintf("LD V%X, V%X", ins.X, ins.Y)
	case Or:
		return fmt.Sprintf("OR V%X, V%X", ins.X, ins.Y)
	case And:
		return fmt.Sprintf("AND V%X, V%X", ins.X, ins.Y)
	case Xor:
		return fmt.Sprintf("XOR V%X, V%X", ins.X, ins.Y)
	case AddRegister:
		return fmt.Sprintf("ADD V%X, V%X", ins.X, ins.Y)
	case SubRegister:
		return fmt.Sprintf("SUB V%X, V%X", ins.X, ins.Y)
	case ShiftRight:
		return fmt.Sprintf("SHR V%X", ins.X)
	case SubRegisterReverse:
		return fmt.Sprintf("SUBN V%X, V%X", ins.X, ins.Y)
	case ShiftLeft:
		return fmt.Sprintf("SHL V%X", ins.X)
	case SkipNotEqualRegister:
		return fmt.Sprintf("SNE V%X, V%X", ins.X, ins.Y)
	case LoadIndex:
		return fmt.Sprintf("LD I, $%03x", ins.NNN)
	case JumpOffset:
		return fmt.Sprintf("JP V0, $%03x", ins.NNN)
	case Random:
		return fmt.Sprintf("RND V%X, $%02x", ins.X, ins.NN)
	case Draw:
		return fmt.Sprintf("DRW V%X, V%X, $%01x", ins.X, ins.Y, ins.N)
	case SkipKeyPressed:
		return fmt.Sprintf("SKP V%X", ins.X)
	case SkipKeyNotPressed:
		return fmt.Sprintf("SKNP V%X", ins.X)
	case LoadFromDelay:
		return fmt.Sprintf("LD V%X, DT", ins.X)
	case WaitKey:
		return fmt.Sprintf("LD V%X, K", ins.X)
	case LoadDelay:
		return fmt.Sprintf("LD DT, V%X", ins.X)
	case LoadSound:
		return fmt.Sprintf("LD ST, V%X", ins.X)
	case AddIndex:
		return fmt.Sprintf("ADD I, V%X", ins.X)
	case LoadGlyph:
		return fmt.Sprintf("LD F, V%X", ins.X)
	case StoreDigits:
		return fmt.Sprintf("LD B, V%X", ins.X)
	case StoreRegisters:
		return fmt.Sprintf("LD [I], V%X", ins.X)
	case LoadRegisters:
		return fmt.Sprintf("LD V%X, [I]", ins.X)
	}

	return fmt.Sprintf("DW $%04x", ins.Opcode)
}
