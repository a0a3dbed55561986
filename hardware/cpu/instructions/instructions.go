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

// Package instructions defines the CHIP-8 instruction set.
//
// The Decode() function is pure: it maps a 16 bit opcode to an Instruction
// value and touches no machine state. Execution of the decoded instruction
// happens in the cpu package. Keeping the two stages separate means the
// decoder can be tested (and reused by the disassembly package) without a
// machine being present.
package instructions

// Operation identifies what a decoded instruction does, independently of its
// operands.
type Operation int

// List of operations in the CHIP-8 instruction set.
//
// Sys is the machine-code-call instruction (opcode 0NNN) found on the
// original hardware. No modern interpreter implements it and it executes as
// a no-op. Illegal is any opcode with no decoding at all; it also executes
// as a no-op but the disassembler displays it differently.
const (
	Illegal Operation = iota
	Sys
	Clear
	Return
	Jump
	Call
	SkipEqual
	SkipNotEqual
	SkipEqualRegister
	Load
	Add
	LoadRegister
	Or
	And
	Xor
	AddRegister
	SubRegister
	ShiftRight
	SubRegisterReverse
	ShiftLeft
	SkipNotEqualRegister
	LoadIndex
	JumpOffset
	Random
	Draw
	SkipKeyPressed
	SkipKeyNotPressed
	LoadFromDelay
	WaitKey
	LoadDelay
	LoadSound
	AddIndex
	LoadGlyph
	StoreDigits
	StoreRegisters
	LoadRegisters
)

// Instruction is a decoded opcode. The operand fields are always populated,
// whether the operation uses them or not.
type Instruction struct {
	// the opcode the instruction was decoded from
	Opcode uint16

	Operation Operation

	// X and Y are register selectors (the second and third nibbles of the
	// opcode)
	X uint8
	Y uint8

	// N is the small immediate (fourth nibble), NN the byte immediate (low
	// byte) and NNN the address immediate (low twelve bits)
	N   uint8
	NN  uint8
	NNN uint16
}

// Decode a 16 bit opcode into an Instruction.
func Decode(opcode uint16) Instruction {
	ins := Instruction{
		Opcode:    opcode,
		Operation: Illegal,
		X:         uint8(opcode>>8) & 0x0f,
		Y:         uint8(opcode>>4) & 0x0f,
		N:         uint8(opcode) & 0x0f,
		NN:        uint8(opcode),
		NNN:       opcode & 0x0fff,
	}

	switch opcode & 0xf000 {
	case 0x0000:
		switch opcode {
		case 0x00e0:
			ins.Operation = Clear
		case 0x00ee:
			ins.Operation = Return
		default:
			ins.Operation = Sys
		}

	case 0x1000:
		ins.Operation = Jump

	case 0x2000:
		ins.Operation = Call

	case 0x3000:
		ins.Operation = SkipEqual

	case 0x4000:
		ins.Operation = SkipNotEqual

	case 0x5000:
		if ins.N == 0x0 {
			ins.Operation = SkipEqualRegister
		}

	case 0x6000:
		ins.Operation = Load

	case 0x7000:
		ins.Operation = Add

	case 0x8000:
		switch ins.N {
		case 0x0:
			ins.Operation = LoadRegister
		case 0x1:
			ins.Operation = Or
		case 0x2:
			ins.Operation = And
		case 0x3:
			ins.Operation = Xor
		case 0x4:
			ins.Operation = AddRegister
		case 0x5:
			ins.Operation = SubRegister
		case 0x6:
			ins.Operation = ShiftRight
		case 0x7:
			ins.Operation = SubRegisterReverse
		case 0xe:
			ins.Operation = ShiftLeft
		}

	case 0x9000:
		if ins.N == 0x0 {
			ins.Operation = SkipNotEqualRegister
		}

	case 0xa000:
		ins.Operation = LoadIndex

	case 0xb000:
		ins.Operation = JumpOffset

	case 0xc000:
		ins.Operation = Random

	case 0xd000:
		ins.Operation = Draw

	case 0xe000:
		switch ins.NN {
		case 0x9e:
			ins.Operation = SkipKeyPressed
		case 0xa1:
			ins.Operation = SkipKeyNotPressed
		}

	case 0xf000:
		switch ins.NN {
		case 0x07:
			ins.Operation = LoadFromDelay
		case 0x0a:
			ins.Operation = WaitKey
		case 0x15:
			ins.Operation = LoadDelay
		case 0x18:
			ins.Operation = LoadSound
		case 0x1e:
			ins.Operation = AddIndex
		case 0x29:
			ins.Operation = LoadGlyph
		case 0x33:
			ins.Operation = StoreDigits
		case 0x55:
			ins.Operation = StoreRegisters
		case 0x65:
			ins.Operation = LoadRegisters
		}
	}

	return ins
}
