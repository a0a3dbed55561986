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

package instructions_test

import (
	"testing"

	"github.com/hazzlik/gopher8/hardware/cpu/instructions"
	"github.com/hazzlik/gopher8/test"
)

func TestOperandExtraction(t *testing.T) {
	ins := instructions.Decode(0xd12f)

	test.Equate(t, int(ins.Operation), int(instructions.Draw))
	test.Equate(t, ins.X, 1)
	test.Equate(t, ins.Y, 2)
	test.Equate(t, ins.N, 0xf)
	test.Equate(t, ins.NN, 0x2f)
	test.Equate(t, ins.NNN, 0x12f)
}

func TestFamilies(t *testing.T) {
	// one opcode from every family, including each of the overloaded
	// sub-opcodes in families 0x0, 0x8, 0xe and 0xf
	expectations := map[uint16]instructions.Operation{
		0x00e0: instructions.Clear,
		0x00ee: instructions.Return,
		0x0123: instructions.Sys,
		0x1abc: instructions.Jump,
		0x2abc: instructions.Call,
		0x3a12: instructions.SkipEqual,
		0x4a12: instructions.SkipNotEqual,
		0x5ab0: instructions.SkipEqualRegister,
		0x6a12: instructions.Load,
		0x7a12: instructions.Add,
		0x8ab0: instructions.LoadRegister,
		0x8ab1: instructions.Or,
		0x8ab2: instructions.And,
		0x8ab3: instructions.Xor,
		0x8ab4: instructions.AddRegister,
		0x8ab5: instructions.SubRegister,
		0x8ab6: instructions.ShiftRight,
		0x8ab7: instructions.SubRegisterReverse,
		0x8abe: instructions.ShiftLeft,
		0x9ab0: instructions.SkipNotEqualRegister,
		0xaabc: instructions.LoadIndex,
		0xbabc: instructions.JumpOffset,
		0xca12: instructions.Random,
		0xdab5: instructions.Draw,
		0xea9e: instructions.SkipKeyPressed,
		0xeaa1: instructions.SkipKeyNotPressed,
		0xfa07: instructions.LoadFromDelay,
		0xfa0a: instructions.WaitKey,
		0xfa15: instructions.LoadDelay,
		0xfa18: instructions.LoadSound,
		0xfa1e: instructions.AddIndex,
		0xfa29: instructions.LoadGlyph,
		0xfa33: instructions.StoreDigits,
		0xfa55: instructions.StoreRegisters,
		0xfa65: instructions.LoadRegisters,
	}

	for opcode, operation := range expectations {
		ins := instructions.Decode(opcode)
		if ins.Operation != operation {
			t.Errorf("opcode %#04x decoded to the wrong operation", opcode)
		}
	}
}

func TestIllegal(t *testing.T) {
	// opcodes with no decoding at all
	for _, opcode := range []uint16{0x5ab1, 0x8ab8, 0x9ab1, 0xea00, 0xfa00, 0xfaff} {
		ins := instructions.Decode(opcode)
		test.Equate(t, int(ins.Operation), int(instructions.Illegal))
	}
}

func TestStrings(t *testing.T) {
	test.Equate(t, instructions.Decode(0x00e0).String(), "CLS")
	test.Equate(t, instructions.Decode(0x1abc).String(), "JP $abc")
	test.Equate(t, instructions.Decode(0x8ab4).String(), "ADD VA, VB")
	test.Equate(t, instructions.Decode(0xfa0a).String(), "LD VA, K")
	test.Equate(t, instructions.Decode(0xfaff).String(), "DW $faff")
}
